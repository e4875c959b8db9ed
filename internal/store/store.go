// Package store holds the in-memory profile and career entries and writes every
// mutation through to persistence.
package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/career-journal/internal/logging"
	"github.com/jonathan/career-journal/internal/persistence"
	"github.com/jonathan/career-journal/internal/types"
	"go.uber.org/zap"
)

// Persister saves a full snapshot of both aggregates
type Persister interface {
	Save(ctx context.Context, profile types.ProfileData, entries []types.CareerEntry) error
}

// Source is a Persister that can also restore a previous snapshot
type Source interface {
	Persister
	Load(ctx context.Context) persistence.LoadResult
}

// Store is the authoritative collection of career entries plus the profile.
// Entries are ordered newest-first by insertion.
type Store struct {
	mu        sync.Mutex
	profile   types.ProfileData
	entries   []types.CareerEntry
	newUser   bool
	persister Persister
	newID     func() string
	logger    *zap.Logger
}

// Option configures a Store
type Option func(*Store)

// WithIDGenerator replaces the UUID generator used for new entries
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New creates an empty store seeded with the default profile. A nil persister
// keeps everything in memory.
func New(persister Persister, logger *zap.Logger, opts ...Option) *Store {
	s := &Store{
		profile:   types.DefaultProfile(),
		entries:   []types.CareerEntry{},
		newUser:   true,
		persister: persister,
		newID:     uuid.NewString,
		logger:    logging.OrNop(logger),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a store from whatever src has saved. A missing or unreadable
// profile falls back to the default profile and marks the user as new; missing or
// unreadable entries start an empty timeline.
func Open(ctx context.Context, src Source, logger *zap.Logger, opts ...Option) *Store {
	s := New(src, logger, opts...)

	result := src.Load(ctx)
	if result.ProfileErr != nil {
		s.logger.Warn("Using default profile", zap.Error(result.ProfileErr))
	}
	if result.EntriesErr != nil {
		s.logger.Warn("Starting with no career entries", zap.Error(result.EntriesErr))
	}

	if result.HasProfile() {
		s.profile = *result.Profile
		s.newUser = false
	}
	if result.HasEntries() {
		s.entries = types.CloneEntries(result.Entries)
	}

	s.logger.Debug("Opened store",
		zap.Bool("new_user", s.newUser),
		zap.Int("entries", len(s.entries)))
	return s
}

// Profile returns the current profile
func (s *Store) Profile() types.ProfileData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// IsNewUser reports whether no profile has been loaded or set yet
func (s *Store) IsNewUser() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.newUser
}

// Entries returns a copy of the entries, newest first
func (s *Store) Entries() []types.CareerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return types.CloneEntries(s.entries)
}

// Entry looks up a single entry by id
func (s *Store) Entry(id string) (types.CareerEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.entries[i].Clone(), true
	}
	return types.CareerEntry{}, false
}

// Len returns the number of entries
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// AddEntry assigns a fresh id to entry, places it first and saves. Any id already
// on entry is ignored. The stored entry is returned even when saving fails.
func (s *Store) AddEntry(ctx context.Context, entry types.CareerEntry) (types.CareerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := entry.Clone()
	stored.ID = s.uniqueID()

	s.entries = append([]types.CareerEntry{stored}, s.entries...)
	s.logger.Debug("Added career entry", zap.String("entry_id", stored.ID))

	return stored.Clone(), s.persist(ctx, "add entry")
}

// UpdateEntry replaces the fields of the entry with the given id, keeping its id and
// position. An unknown id leaves the store untouched and reports false.
func (s *Store) UpdateEntry(ctx context.Context, id string, entry types.CareerEntry) (types.CareerEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("Ignoring update of unknown career entry", zap.String("entry_id", id))
		return types.CareerEntry{}, false, nil
	}

	updated := entry.Clone()
	updated.ID = id
	s.entries[i] = updated
	s.logger.Debug("Updated career entry", zap.String("entry_id", id))

	return updated.Clone(), true, s.persist(ctx, "update entry")
}

// DeleteEntry removes the entry with the given id and reports whether it existed.
// The current state is saved either way.
func (s *Store) DeleteEntry(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	if i := s.indexOf(id); i >= 0 {
		s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
		removed = true
	}
	s.logger.Debug("Deleted career entry", zap.String("entry_id", id), zap.Bool("removed", removed))

	return removed, s.persist(ctx, "delete entry")
}

// SetProfile replaces the profile and saves
func (s *Store) SetProfile(ctx context.Context, profile types.ProfileData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = profile
	s.newUser = false
	s.logger.Debug("Updated profile")

	return s.persist(ctx, "set profile")
}

func (s *Store) indexOf(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id
		}
	}
}

// persist must be called with mu held
func (s *Store) persist(ctx context.Context, op string) error {
	if s.persister == nil {
		return nil
	}
	if err := s.persister.Save(ctx, s.profile, types.CloneEntries(s.entries)); err != nil {
		s.logger.Error("Failed to save career data", zap.String("op", op), zap.Error(err))
		return &PersistError{Op: op, Cause: err}
	}
	return nil
}
