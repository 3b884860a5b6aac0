package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RemoveResult is the JSON payload for a successful remove.
type RemoveResult struct {
	Name string `json:"name"`
}

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <event>",
		Short: "Remove an event",
		Long: `Delete an event from the store.

Past occurrences stay in the journal; only the tracked event is removed.

Example:
  timesince remove workout`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runRemove(opts *RootOptions, name string, cmd *cobra.Command) error {
	s, err := newSession(opts, cmd)
	if err != nil {
		return err
	}

	st, err := s.openStore()
	if err != nil {
		return err
	}

	if err := st.Remove(name); err != nil {
		return s.formatter.failure(err)
	}
	if err := st.Save(); err != nil {
		return s.formatter.failure(err)
	}

	if s.formatter.Format == "json" {
		return s.formatter.Success(RemoveResult{Name: name})
	}
	fmt.Fprintf(s.formatter.Writer, "✓ Removed %q\n", name)
	return nil
}
