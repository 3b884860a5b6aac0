package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/timesince/internal/history"
)

// DidResult is the JSON payload for a successful did.
type DidResult struct {
	Name     string    `json:"name"`
	LastDone time.Time `json:"last_done"`
}

// NewDidCommand creates the did command (the "mark as done" verb).
func NewDidCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "did <event>",
		Short: "Mark an existing event as done now",
		Long: `Reset the timestamp of an existing event to now.

Example:
  timesince did workout`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDid(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runDid(opts *RootOptions, name string, cmd *cobra.Command) error {
	s, err := newSession(opts, cmd)
	if err != nil {
		return err
	}

	st, err := s.openStore()
	if err != nil {
		return err
	}

	t, err := st.Mark(name)
	if err != nil {
		return s.formatter.failure(err)
	}
	if err := st.Save(); err != nil {
		return s.formatter.failure(err)
	}
	if err := s.record(cmd.Context(), name, history.KindDid, t); err != nil {
		return err
	}

	if s.formatter.Format == "json" {
		return s.formatter.Success(DidResult{Name: name, LastDone: t})
	}
	fmt.Fprintf(s.formatter.Writer, "✓ Marked %q as done\n", name)
	return nil
}
