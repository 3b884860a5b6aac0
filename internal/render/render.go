package render

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/roach88/timesince/internal/event"
	"github.com/roach88/timesince/internal/history"
)

// List writes one line per event with the elapsed time since it was last
// done. Events render in the order given (the store already collates them).
// An empty store prints "No events found."
func List(w io.Writer, events []event.Event, now time.Time) error {
	if len(events) == 0 {
		_, err := fmt.Fprintln(w, "No events found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\n", e.Name, Duration(now.Sub(e.LastDone)))
	}
	return tw.Flush()
}

// Log writes the occurrence history of a single event, oldest first.
// Each row shows the timestamp, the kind of occurrence, and a relative
// phrase ("3 days ago") via go-humanize.
func Log(w io.Writer, name string, occs []history.Occurrence, now time.Time) error {
	if len(occs) == 0 {
		_, err := fmt.Fprintf(w, "No history recorded for %q.\n", name)
		return err
	}

	fmt.Fprintf(w, "History for %q (%d occurrence(s)):\n", name, len(occs))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, occ := range occs {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n",
			occ.OccurredAt.Format("2006-01-02 15:04"),
			occ.Kind,
			humanize.RelTime(occ.OccurredAt, now, "ago", "from now"),
		)
	}
	return tw.Flush()
}
