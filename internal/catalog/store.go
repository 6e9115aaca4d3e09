package catalog

import (
	"context"
	"sync"
)

// Store serves catalog entries to the API layer. Implementations must return
// entries in stable insertion order so evaluations stay deterministic.
type Store interface {
	ReplaceAll(ctx context.Context, entries []Entry) error
	Entries(ctx context.Context) ([]Entry, error)
	EntriesForCase(ctx context.Context, caseID string) ([]Entry, error)
	Cases(ctx context.Context) ([]Case, error)
}

type memoryStore struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryStore returns an in-memory store seeded with the given entries.
func NewMemoryStore(entries []Entry) Store {
	m := &memoryStore{}
	m.entries = append(m.entries, entries...)
	return m
}

func (m *memoryStore) ReplaceAll(_ context.Context, entries []Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append([]Entry(nil), entries...)
	return nil
}

func (m *memoryStore) Entries(_ context.Context) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Entry(nil), m.entries...), nil
}

func (m *memoryStore) EntriesForCase(_ context.Context, caseID string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Entry
	for _, e := range m.entries {
		if e.CaseID == caseID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memoryStore) Cases(_ context.Context) ([]Case, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Cases(m.entries), nil
}
