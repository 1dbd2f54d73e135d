package trip

import (
	"context"
	"log/slog"
	"sync"
)

// Manager hands out one Store per session ID, restoring persisted state the
// first time a session is seen. It is safe for concurrent use.
type Manager struct {
	mu        sync.Mutex
	stores    map[string]*Store
	persister Persister
	logger    *slog.Logger
}

// NewManager returns a manager backed by the given persister.
func NewManager(p Persister, logger *slog.Logger) *Manager {
	return &Manager{
		stores:    make(map[string]*Store),
		persister: p,
		logger:    logger,
	}
}

// Get returns the store for the session, creating and restoring it on first
// use. A restore failure is logged and the session starts blank; the traveler
// loses saved state but keeps a working session.
func (m *Manager) Get(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if st, ok := m.stores[sessionID]; ok {
		return st
	}
	st := NewStore(sessionID, m.persister, m.logger)
	if err := st.Restore(ctx); err != nil {
		m.logger.Warn("restoring session state failed", "session", sessionID, "error", err)
	}
	m.stores[sessionID] = st
	return st
}
