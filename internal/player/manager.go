package player

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// sessionTTL bounds how long an untouched session survives. Stale entries are
// swept lazily whenever a new session is created.
const sessionTTL = 2 * time.Hour

// Manager keeps live sessions in memory, keyed by uuid.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func (m *Manager) Create(playlist []Track) *Session {
	session := NewSession(uuid.New().String(), playlist)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruneLocked()
	m.sessions[session.ID] = session
	return session
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[id]
	return session, ok
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) pruneLocked() {
	cutoff := time.Now().Add(-sessionTTL)
	for id, session := range m.sessions {
		if session.idleSince().Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}
