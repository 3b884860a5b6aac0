package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/timesince/internal/config"
	"github.com/roach88/timesince/internal/history"
	"github.com/roach88/timesince/internal/store"
)

// session bundles the per-invocation state every command needs: the output
// formatter and the resolved data directory.
type session struct {
	formatter *OutputFormatter
	dataDir   string
}

func newSession(opts *RootOptions, cmd *cobra.Command) (*session, error) {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	dataDir, err := config.ResolveDataDir(opts.DataDir)
	if err != nil {
		return nil, formatter.failure(err)
	}
	formatter.VerboseLog("Using data directory %s", dataDir)

	return &session{formatter: formatter, dataDir: dataDir}, nil
}

// openStore loads the event store. Errors are already reported and mapped
// to exit codes; callers just return them.
func (s *session) openStore() (*store.Store, error) {
	st, err := store.Open(config.StorePath(s.dataDir))
	if err != nil {
		return nil, s.formatter.failure(err)
	}
	s.formatter.VerboseLog("Loaded %d event(s) from %s", st.Len(), st.Path())
	return st, nil
}

// openJournal opens the occurrence journal. The caller owns Close.
func (s *session) openJournal() (*history.Journal, error) {
	j, err := history.Open(config.JournalPath(s.dataDir))
	if err != nil {
		return nil, s.formatter.failure(err)
	}
	return j, nil
}

// record appends one occurrence to the journal.
//
// The store file has already been saved when this runs; a journal failure
// still fails the invocation but does not roll the store back.
func (s *session) record(ctx context.Context, name string, kind history.Kind, at time.Time) error {
	j, err := s.openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	if _, err := j.Record(ctx, name, kind, at); err != nil {
		return s.formatter.failure(err)
	}
	return nil
}
