package csrf

import (
	"context"
	"sync"
)

// SecretStore persists the per-session CSRF secret. Implementations
// are typically backed by the application's session storage.
type SecretStore interface {
	// Get retrieves the secret for a session.
	// Returns ErrNotFound if no secret has been issued yet.
	Get(ctx context.Context, sessionID string) ([]byte, error)

	// Set persists the secret for a session.
	Set(ctx context.Context, sessionID string, secret []byte) error
}

// MemoryStore is an in-process SecretStore, suitable for tests and
// single-instance deployments.
type MemoryStore struct {
	mu      sync.RWMutex
	secrets map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{secrets: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	secret, ok := m.secrets[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(secret))
	copy(out, secret)
	return out, nil
}

func (m *MemoryStore) Set(_ context.Context, sessionID string, secret []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(secret))
	copy(stored, secret)
	m.secrets[sessionID] = stored
	return nil
}
