// Package persistence saves and loads the profile and career entries to durable slots.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/career-journal/internal/kv"
	"github.com/jonathan/career-journal/internal/logging"
	"github.com/jonathan/career-journal/internal/schemas"
	"github.com/jonathan/career-journal/internal/types"
	"go.uber.org/zap"
)

// Logical slot names. Each aggregate is stored independently under its own key.
const (
	ProfileKey = "profile"
	EntriesKey = "career-entries"
)

// DefaultNamespace prefixes the logical keys, giving journalize-profile and
// journalize-career-entries
const DefaultNamespace = "journalize-"

// Adapter serializes the store's two aggregates to a kv.Store
type Adapter struct {
	slots     kv.Store
	namespace string
	logger    *zap.Logger
}

// Option configures an Adapter
type Option func(*Adapter)

// WithNamespace overrides the key prefix
func WithNamespace(ns string) Option {
	return func(a *Adapter) { a.namespace = ns }
}

// New creates an adapter over slots. A nil logger disables logging.
func New(slots kv.Store, logger *zap.Logger, opts ...Option) *Adapter {
	a := &Adapter{
		slots:     slots,
		namespace: DefaultNamespace,
		logger:    logging.OrNop(logger),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Key returns the physical key for a logical slot name
func (a *Adapter) Key(name string) string {
	return a.namespace + name
}

// LoadResult carries each slot's outcome separately. A nil value with a nil error
// means the slot has never been written.
type LoadResult struct {
	Profile    *types.ProfileData
	Entries    []types.CareerEntry
	ProfileErr error
	EntriesErr error
}

// HasProfile reports whether a usable profile was loaded
func (r LoadResult) HasProfile() bool {
	return r.Profile != nil
}

// HasEntries reports whether a usable entry list was loaded
func (r LoadResult) HasEntries() bool {
	return r.Entries != nil
}

// LastSaved reports when the entries slot, the last one Save writes, was
// written. found is false when nothing is saved or the backend does not track
// write times.
func (a *Adapter) LastSaved(ctx context.Context) (time.Time, bool, error) {
	ts, ok := a.slots.(kv.Timestamped)
	if !ok {
		return time.Time{}, false, nil
	}
	return ts.UpdatedAt(ctx, a.Key(EntriesKey))
}

// Save writes both aggregates. The profile slot is written first; the first
// failing slot is reported as a *SaveError.
func (a *Adapter) Save(ctx context.Context, profile types.ProfileData, entries []types.CareerEntry) error {
	entries = storable(entries)

	profileDoc, err := json.Marshal(profile)
	if err != nil {
		return &SaveError{Key: a.Key(ProfileKey), Cause: fmt.Errorf("failed to marshal profile: %w", err)}
	}
	entriesDoc, err := json.Marshal(entries)
	if err != nil {
		return &SaveError{Key: a.Key(EntriesKey), Cause: fmt.Errorf("failed to marshal career entries: %w", err)}
	}

	if err := a.slots.Put(ctx, a.Key(ProfileKey), profileDoc); err != nil {
		return &SaveError{Key: a.Key(ProfileKey), Cause: err}
	}
	if err := a.slots.Put(ctx, a.Key(EntriesKey), entriesDoc); err != nil {
		return &SaveError{Key: a.Key(EntriesKey), Cause: err}
	}

	a.logger.Debug("Saved career data",
		zap.Int("profile_bytes", len(profileDoc)),
		zap.Int("entries_bytes", len(entriesDoc)),
		zap.Int("entries", len(entries)))
	return nil
}

// Load reads both aggregates independently. A slot that cannot be read, parsed or
// schema-checked yields a nil value and a *LoadError, without affecting the other slot.
func (a *Adapter) Load(ctx context.Context) LoadResult {
	var result LoadResult

	var profile types.ProfileData
	found, err := a.loadSlot(ctx, ProfileKey, schemas.Profile, &profile)
	switch {
	case err != nil:
		result.ProfileErr = err
	case found:
		result.Profile = &profile
	}

	var entries []types.CareerEntry
	found, err = a.loadSlot(ctx, EntriesKey, schemas.CareerEntries, &entries)
	switch {
	case err != nil:
		result.EntriesErr = err
	case found:
		if entries == nil {
			entries = []types.CareerEntry{}
		}
		result.Entries = entries
	}

	return result
}

func (a *Adapter) loadSlot(ctx context.Context, name, schema string, out any) (bool, error) {
	key := a.Key(name)

	raw, found, err := a.slots.Get(ctx, key)
	if err != nil {
		a.logger.Warn("Failed to read slot", zap.String("key", key), zap.Error(err))
		return false, &LoadError{Key: key, Message: "failed to read slot", Cause: err}
	}
	if !found {
		return false, nil
	}

	if err := schemas.ValidateDocument(schema, raw); err != nil {
		a.logger.Warn("Discarding malformed slot", zap.String("key", key), zap.Error(err))
		return false, &LoadError{Key: key, Message: "malformed document", Cause: err}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		a.logger.Warn("Discarding undecodable slot", zap.String("key", key), zap.Error(err))
		return false, &LoadError{Key: key, Message: "failed to unmarshal JSON", Cause: err}
	}

	return true, nil
}

// storable replaces nil required lists with empty ones so the document always
// passes the entries schema on the way back in
func storable(entries []types.CareerEntry) []types.CareerEntry {
	out := make([]types.CareerEntry, len(entries))
	for i, e := range entries {
		if e.Achievements == nil {
			e.Achievements = []string{}
		}
		if e.Responsibilities == nil {
			e.Responsibilities = []string{}
		}
		out[i] = e
	}
	return out
}
