package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/timesince/internal/render"
)

// LogEntry is one occurrence in the JSON log payload.
type LogEntry struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewLogCommand creates the log command.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <event>",
		Short: "Show the occurrence history of an event",
		Long: `Show every recorded occurrence of an event, oldest first.

The journal is append-only: history survives 'remove', but log only
works for events currently tracked.

Example:
  timesince log workout`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runLog(opts *RootOptions, name string, cmd *cobra.Command) error {
	s, err := newSession(opts, cmd)
	if err != nil {
		return err
	}

	st, err := s.openStore()
	if err != nil {
		return err
	}

	// Reject names never added so log matches the other verbs.
	if _, _, err := st.Elapsed(name); err != nil {
		return s.formatter.failure(err)
	}

	j, err := s.openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	occs, err := j.ForEvent(cmd.Context(), name)
	if err != nil {
		return s.formatter.failure(err)
	}

	if s.formatter.Format == "json" {
		entries := make([]LogEntry, 0, len(occs))
		for _, occ := range occs {
			entries = append(entries, LogEntry{
				ID:         occ.ID,
				Kind:       string(occ.Kind),
				OccurredAt: occ.OccurredAt,
			})
		}
		return s.formatter.Success(entries)
	}

	return render.Log(s.formatter.Writer, name, occs, st.Now())
}
