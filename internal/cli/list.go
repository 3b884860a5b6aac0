package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/timesince/internal/render"
)

// ListEntry is one event in the JSON list payload.
type ListEntry struct {
	Name     string    `json:"name"`
	LastDone time.Time `json:"last_done"`
	Elapsed  string    `json:"elapsed"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List all events",
		Long:          "Display all tracked events with the time since they were last done.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	s, err := newSession(opts, cmd)
	if err != nil {
		return err
	}

	st, err := s.openStore()
	if err != nil {
		return err
	}

	events := st.List()
	now := st.Now()

	if s.formatter.Format == "json" {
		entries := make([]ListEntry, 0, len(events))
		for _, e := range events {
			entries = append(entries, ListEntry{
				Name:     e.Name,
				LastDone: e.LastDone,
				Elapsed:  render.Duration(now.Sub(e.LastDone)),
			})
		}
		return s.formatter.Success(entries)
	}

	return render.List(s.formatter.Writer, events, now)
}
