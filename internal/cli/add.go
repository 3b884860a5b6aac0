package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/timesince/internal/history"
)

// AddResult is the JSON payload for a successful add.
type AddResult struct {
	Name     string    `json:"name"`
	LastDone time.Time `json:"last_done"`
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <event>",
		Short: "Add a new event",
		Long: `Add a new event and set its timestamp to now.

Example:
  timesince add workout`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runAdd(opts *RootOptions, name string, cmd *cobra.Command) error {
	s, err := newSession(opts, cmd)
	if err != nil {
		return err
	}

	st, err := s.openStore()
	if err != nil {
		return err
	}

	t, err := st.Add(name)
	if err != nil {
		return s.formatter.failure(err)
	}
	if err := st.Save(); err != nil {
		return s.formatter.failure(err)
	}
	if err := s.record(cmd.Context(), name, history.KindAdd, t); err != nil {
		return err
	}

	if s.formatter.Format == "json" {
		return s.formatter.Success(AddResult{Name: name, LastDone: t})
	}
	fmt.Fprintf(s.formatter.Writer, "✓ Added %q\n", name)
	return nil
}
