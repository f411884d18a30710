package credentials

import "sync"

type memoryProvider struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryProvider returns a process-local Provider. The token is lost when
// the process exits.
func NewMemoryProvider() Provider {
	return &memoryProvider{}
}

func (m *memoryProvider) Get() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *memoryProvider) Set(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memoryProvider) Clear() error {
	return m.Set("")
}

func (m *memoryProvider) Close() error {
	return nil
}
