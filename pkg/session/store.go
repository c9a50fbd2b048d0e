package session

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// Store persists session records by id.
type Store interface {
	Load(ctx context.Context, id string) (Record, bool, error)
	Save(ctx context.Context, id string, rec Record) error
}

// MemoryStore keeps records in process memory. Records live until the process
// exits; the browser drops its session cookie when the session ends.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// Load returns the record stored under id.
func (m *MemoryStore) Load(ctx context.Context, id string) (Record, bool, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, false, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, false, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	return rec, ok, nil
}

// Save stores rec under id, replacing any previous record.
func (m *MemoryStore) Save(ctx context.Context, id string, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("session: id is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[id] = rec
	return nil
}

// Len reports the number of stored records.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
