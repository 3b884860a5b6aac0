// Package store owns the durable mapping from event name to the time the
// event was last done.
//
// The store is a single JSON file: a flat object of name -> RFC 3339 UTC
// timestamp. The whole file is loaded at Open and rewritten by Save; there is
// no partial update. Save replaces the file atomically (temp file + rename)
// so a crash mid-write never leaves a half-written store behind.
//
// Concurrent invocations are not coordinated. Two processes saving at once
// race and the last writer wins. Accepted for a single-user CLI.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/roach88/timesince/internal/event"
)

// Store is the in-memory event mapping bound to a file path.
//
// Not safe for concurrent use. A CLI invocation owns exactly one Store.
type Store struct {
	path   string
	events map[string]time.Time
	dirty  bool

	// now is injectable for tests. Defaults to time.Now.
	now func() time.Time
}

// Option configures a Store at Open time.
type Option func(*Store)

// WithClock overrides the wall clock. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Open loads the store file at path.
//
// An absent file yields an empty store, not an error. A file that cannot be
// parsed fails with a CORRUPT_STORE error and leaves nothing loaded; a read
// failure fails with IO_FAILURE.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:   path,
		events: make(map[string]time.Time),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, event.NewIOFailure("read store file", err)
	}

	var raw map[string]time.Time
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, event.NewCorruptStore(path, err)
	}
	s.events = raw
	if s.events == nil {
		s.events = make(map[string]time.Time)
	}
	return s, nil
}

// Now returns the store's view of the current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// Path returns the file path the store was opened from.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of tracked events.
func (s *Store) Len() int {
	return len(s.events)
}

// Dirty reports whether the store has unsaved mutations.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Add inserts a new event stamped with the current time.
// Fails with INVALID_NAME for empty or malformed names and DUPLICATE_EVENT
// if the name is already tracked. The store is unchanged on failure.
func (s *Store) Add(name string) (time.Time, error) {
	if err := event.ValidateName(name); err != nil {
		return time.Time{}, err
	}
	if _, ok := s.events[name]; ok {
		return time.Time{}, event.NewDuplicate(name)
	}
	t := s.now().UTC()
	s.events[name] = t
	s.dirty = true
	return t, nil
}

// Mark resets an existing event's timestamp to the current time.
// Fails with EVENT_NOT_FOUND if the name was never added.
func (s *Store) Mark(name string) (time.Time, error) {
	if _, ok := s.events[name]; !ok {
		return time.Time{}, event.NewNotFound(name)
	}
	t := s.now().UTC()
	s.events[name] = t
	s.dirty = true
	return t, nil
}

// Elapsed returns the duration since the event was last done, along with the
// stored timestamp for display. Fails with EVENT_NOT_FOUND if absent.
func (s *Store) Elapsed(name string) (time.Duration, time.Time, error) {
	t, ok := s.events[name]
	if !ok {
		return 0, time.Time{}, event.NewNotFound(name)
	}
	return s.now().Sub(t), t, nil
}

// Remove deletes an event. Fails with EVENT_NOT_FOUND if absent.
func (s *Store) Remove(name string) error {
	if _, ok := s.events[name]; !ok {
		return event.NewNotFound(name)
	}
	delete(s.events, name)
	s.dirty = true
	return nil
}

// List returns all events ordered by name under English collation.
// The ordering is stable across calls for the same set of names.
func (s *Store) List() []event.Event {
	names := make([]string, 0, len(s.events))
	for name := range s.events {
		names = append(names, name)
	}
	collate.New(language.English).SortStrings(names)

	events := make([]event.Event, 0, len(names))
	for _, name := range names {
		events = append(events, event.Event{Name: name, LastDone: s.events[name]})
	}
	return events
}

// Save writes the mapping back to the store file, replacing its contents.
//
// The file is written to a temp file in the same directory and renamed into
// place so readers never observe a partial store. Parent directories are
// created on first save.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.events, "", "  ")
	if err != nil {
		return event.NewIOFailure("encode store", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return event.NewIOFailure("create store directory", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return event.NewIOFailure("create temp store file", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return event.NewIOFailure("write temp store file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return event.NewIOFailure("close temp store file", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return event.NewIOFailure("replace store file", err)
	}

	s.dirty = false
	return nil
}
