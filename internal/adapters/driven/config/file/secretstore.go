package file

import (
	"strings"

	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/core/ports/driven"
)

// Ensure SecretStore implements the interface.
var _ driven.SecretStore = (*SecretStore)(nil)

// secretKeyPrefix namespaces secrets inside the config file.
const secretKeyPrefix = "secrets."

// SecretStore keeps secrets in the config file.
// It is the fallback when no OS keyring is available; the file is 0600.
type SecretStore struct {
	config driven.ConfigStore
}

// NewSecretStore creates a secret store on top of a config store.
func NewSecretStore(config driven.ConfigStore) *SecretStore {
	return &SecretStore{config: config}
}

// Get retrieves a secret by name.
func (s *SecretStore) Get(name string) (string, error) {
	value := s.config.GetString(secretKeyPrefix + name)
	if strings.TrimSpace(value) == "" {
		return "", domain.ErrNotFound
	}
	return value, nil
}

// Set stores a secret.
func (s *SecretStore) Set(name, value string) error {
	return s.config.Set(secretKeyPrefix+name, value)
}

// Delete removes a secret.
func (s *SecretStore) Delete(name string) error {
	return s.config.Delete(secretKeyPrefix + name)
}
