package memory

import (
	"sync"

	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/core/ports/driven"
)

// Ensure SecretStore implements the interface.
var _ driven.SecretStore = (*SecretStore)(nil)

// SecretStore is an in-memory implementation of driven.SecretStore.
type SecretStore struct {
	mu      sync.RWMutex
	secrets map[string]string
}

// NewSecretStore creates a new in-memory secret store.
func NewSecretStore() *SecretStore {
	return &SecretStore{secrets: make(map[string]string)}
}

// Get retrieves a secret by name.
func (s *SecretStore) Get(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.secrets[name]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

// Set stores a secret.
func (s *SecretStore) Set(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secrets[name] = value
	return nil
}

// Delete removes a secret.
func (s *SecretStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.secrets, name)
	return nil
}
