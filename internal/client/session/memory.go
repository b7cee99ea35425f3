package session

import "sync"

// memTier holds the token in process memory, scoped to this CLI session.
type memTier struct {
	mu    sync.Mutex
	token string
}

func (m *memTier) get() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *memTier) set(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memTier) clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
