// Package render turns store and journal data into the text the CLI prints.
package render

import (
	"fmt"
	"strings"
	"time"
)

// Unit sizes for decomposition. Calendar-exact arithmetic is deliberately
// avoided: a month is 30 days and a year is 365, which is what users expect
// from a "how long has it been" readout.
const (
	day   = 24 * time.Hour
	month = 30 * day
	year  = 365 * day
)

type unit struct {
	size     time.Duration
	singular string
}

var units = []unit{
	{year, "year"},
	{month, "month"},
	{day, "day"},
	{time.Hour, "hour"},
	{time.Minute, "minute"},
	{time.Second, "second"},
}

// Duration renders an elapsed duration as a human-readable phrase,
// decomposed into the largest applicable units: "3 days, 2 hours".
//
// All non-zero units are included. Anything under a second renders as
// "just now"; negative durations are clamped to zero.
func Duration(d time.Duration) string {
	if d < time.Second {
		return "just now"
	}

	var parts []string
	for _, u := range units {
		if n := d / u.size; n > 0 {
			parts = append(parts, pluralize(int64(n), u.singular))
			d -= n * u.size
		}
	}
	return strings.Join(parts, ", ")
}

func pluralize(n int64, singular string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %ss", n, singular)
}
