// Package sitemaster implements the construction-site management core: a
// single in-memory site document plus the mutation and derivation rules
// that operate on it. Every mutating operation persists the whole document
// before returning, so the durable copy never trails the in-memory one by
// more than one operation.
package sitemaster

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sitemasterhq/sitemaster/sitemaster/storage"
	"github.com/sitemasterhq/sitemaster/types"
)

// Store is the root state container. It owns the document exclusively;
// callers go through its operations and never mutate the document directly.
type Store struct {
	file *storage.File
	log  zerolog.Logger
	now  func() time.Time

	mu     sync.RWMutex
	doc    *types.Document
	lastID int64
}

// Option configures a Store at open time.
type Option func(*Store)

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open loads the document from the file slot at path. A missing slot
// yields the default document; unreadable content is logged and also falls
// back to defaults, never failing the caller. A timer left running by a
// previous session is credited with the elapsed wall-clock gap and resumed.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		file: storage.NewFile(path),
		log:  zerolog.Nop(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	doc, err := s.file.Load()
	if err != nil {
		var parseErr *storage.ParseError
		if !errors.As(err, &parseErr) {
			return nil, err
		}
		s.log.Warn().Err(err).Str("path", path).
			Msg("stored document is unreadable, starting from defaults")
		doc = nil
	}
	if doc == nil {
		doc = types.DefaultDocument()
	} else {
		doc.Normalize()
	}
	s.doc = doc
	s.lastID = maxID(doc)

	if resumed, err := s.resumeTimer(); err != nil {
		return nil, err
	} else if resumed {
		s.log.Info().Int64("totalSeconds", s.doc.Timer.TotalSeconds).
			Msg("resumed running timer from previous session")
	}
	return s, nil
}

// Close releases the file lock resources.
func (s *Store) Close() error {
	return s.file.Close()
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.file.Path()
}

// Document returns a deep copy of the current document for rendering.
func (s *Store) Document() *types.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// mutate applies fn to the document and persists the result. If fn fails,
// or the save fails, the in-memory document is rolled back to its prior
// state: a multi-field mutation either fully applies or not at all.
func (s *Store) mutate(fn func(doc *types.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutateLocked(fn)
}

func (s *Store) mutateLocked(fn func(doc *types.Document) error) error {
	snapshot := s.doc.Clone()
	if err := fn(s.doc); err != nil {
		s.doc = snapshot
		return err
	}
	if err := s.file.Save(s.doc); err != nil {
		s.doc = snapshot
		return fmt.Errorf("failed to persist document: %w", err)
	}
	return nil
}

// nextID allocates a process-unique entity id. Ids are wall-clock derived
// (milliseconds) and bumped past the last issued value, so two entities
// created within the same millisecond never collide.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// maxID finds the highest id across all collections, seeding the allocator
// so that loaded legacy ids are never reissued.
func maxID(doc *types.Document) int64 {
	var max int64
	bump := func(id int64) {
		if id > max {
			max = id
		}
	}
	for _, m := range doc.Materials {
		bump(m.ID)
	}
	for _, w := range doc.Workflow {
		bump(w.ID)
	}
	for _, l := range doc.TimeLogs {
		bump(l.ID)
	}
	for _, w := range doc.Workers {
		bump(w.ID)
	}
	for _, c := range doc.Stores {
		bump(c.ID)
	}
	for _, r := range doc.Rentals {
		bump(r.ID)
	}
	return max
}
