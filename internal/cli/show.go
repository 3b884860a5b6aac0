package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/timesince/internal/render"
)

// ShowResult is the JSON payload for a bare-name query.
type ShowResult struct {
	Name           string    `json:"name"`
	LastDone       time.Time `json:"last_done"`
	Elapsed        string    `json:"elapsed"`
	ElapsedSeconds float64   `json:"elapsed_seconds"`
}

// runShow handles the bare invocation form: "timesince <event>".
func runShow(opts *RootOptions, name string, cmd *cobra.Command) error {
	s, err := newSession(opts, cmd)
	if err != nil {
		return err
	}

	st, err := s.openStore()
	if err != nil {
		return err
	}

	elapsed, lastDone, err := st.Elapsed(name)
	if err != nil {
		return s.formatter.failure(err)
	}

	if s.formatter.Format == "json" {
		return s.formatter.Success(ShowResult{
			Name:           name,
			LastDone:       lastDone,
			Elapsed:        render.Duration(elapsed),
			ElapsedSeconds: elapsed.Seconds(),
		})
	}
	fmt.Fprintf(s.formatter.Writer, "Time since last %q: %s\n", name, render.Duration(elapsed))
	return nil
}
