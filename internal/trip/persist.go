// Package trip implements the trip state store: the single source of truth
// for one traveler session, persisted across reloads through a pluggable
// key/value port.
package trip

import (
	"context"
	"sync"
)

// Persisted key names. The layout is session-scoped key/value: each key holds
// a string (JSON for structured fields, a bare string otherwise).
const (
	KeyCity      = "selectedCity"    // JSON City
	KeyDays      = "tripDays"        // stringified integer
	KeyMode      = "exploreMode"     // ExploreMode string
	KeyCurated   = "customItinerary" // JSON []Location
	KeyDayPlan   = "dayPlan"         // JSON []PlannedDay
	KeyInterests = "tripInterests"   // JSON []string
)

// Persister is the storage port behind the trip store. Implementations must
// be safe for concurrent use. Writes are best-effort from the store's point
// of view: a failing Persister never surfaces an error to store callers.
type Persister interface {
	// Put stores one key for the session, replacing any previous value.
	Put(ctx context.Context, sessionID, key, value string) error

	// Load returns every stored key for the session. A session with no
	// stored state returns an empty map, not an error.
	Load(ctx context.Context, sessionID string) (map[string]string, error)

	// Clear removes all stored keys for the session.
	Clear(ctx context.Context, sessionID string) error
}

// MemoryPersister is an in-memory Persister for tests and single-process use.
type MemoryPersister struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

// NewMemoryPersister returns an empty in-memory persister.
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{data: make(map[string]map[string]string)}
}

// Put implements Persister.
func (m *MemoryPersister) Put(_ context.Context, sessionID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess := m.data[sessionID]
	if sess == nil {
		sess = make(map[string]string)
		m.data[sessionID] = sess
	}
	sess[key] = value
	return nil
}

// Load implements Persister.
func (m *MemoryPersister) Load(_ context.Context, sessionID string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.data[sessionID]))
	for k, v := range m.data[sessionID] {
		out[k] = v
	}
	return out, nil
}

// Clear implements Persister.
func (m *MemoryPersister) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, sessionID)
	return nil
}
