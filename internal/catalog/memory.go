// Package catalog provides the in-memory activity store. The catalog is
// seeded once at startup; activities are never added or removed afterwards,
// only their participant lists change.
package catalog

import (
	"context"
	"sync"

	"example.com/activities/internal/domain"
)

// record pairs an activity with the mutex guarding its participant list.
// The enclosing map is read-only after construction, so only the per-record
// lock is needed to make check-then-act signup sequences atomic.
type record struct {
	mu       sync.Mutex
	activity domain.Activity
}

// Memory is an in-memory implementation of domain.Catalog.
type Memory struct {
	records map[string]*record
}

// NewMemory builds a Memory catalog from seed data. Participant slices are
// copied so callers cannot alias store state.
func NewMemory(seed map[string]domain.Activity) *Memory {
	records := make(map[string]*record, len(seed))
	for name, activity := range seed {
		activity.Participants = append([]string(nil), activity.Participants...)
		records[name] = &record{activity: activity}
	}
	return &Memory{records: records}
}

// Get returns a copy of the named activity, or domain.ErrActivityNotFound.
// Lookup is exact and case-sensitive.
func (m *Memory) Get(ctx context.Context, name string) (*domain.Activity, error) {
	rec, ok := m.records[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	copied := rec.activity
	copied.Participants = append([]string(nil), rec.activity.Participants...)
	return &copied, nil
}

// All returns a deep-copied snapshot of the whole catalog.
func (m *Memory) All(ctx context.Context) (map[string]domain.Activity, error) {
	out := make(map[string]domain.Activity, len(m.records))
	for name, rec := range m.records {
		rec.mu.Lock()
		copied := rec.activity
		copied.Participants = append([]string(nil), rec.activity.Participants...)
		rec.mu.Unlock()
		out[name] = copied
	}
	return out, nil
}

// AddParticipant appends email to the named activity's participant list.
// The duplicate check and the append happen under the record lock.
func (m *Memory) AddParticipant(ctx context.Context, name, email string) (int, error) {
	rec, ok := m.records[name]
	if !ok {
		return 0, domain.ErrActivityNotFound
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.activity.IsRegistered(email) {
		return 0, domain.ErrAlreadyRegistered
	}
	rec.activity.Participants = append(rec.activity.Participants, email)
	return len(rec.activity.Participants), nil
}

// RemoveParticipant removes email from the named activity's participant
// list, preserving the order of the remaining entries.
func (m *Memory) RemoveParticipant(ctx context.Context, name, email string) (int, error) {
	rec, ok := m.records[name]
	if !ok {
		return 0, domain.ErrActivityNotFound
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	participants := rec.activity.Participants
	for i, p := range participants {
		if p == email {
			rec.activity.Participants = append(participants[:i:i], participants[i+1:]...)
			return len(rec.activity.Participants), nil
		}
	}
	return 0, domain.ErrNotRegistered
}
