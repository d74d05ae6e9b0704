// Package keyring stores secrets in the operating system keyring.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/core/ports/driven"
)

// DefaultService is the keyring service name secrets are filed under.
const DefaultService = "vibepad"

// Ensure Store implements the interface.
var _ driven.SecretStore = (*Store)(nil)

// Store keeps secrets in the system keyring.
type Store struct {
	Service string
}

// New creates a keyring store for a service name.
// An empty service uses DefaultService.
func New(service string) *Store {
	return &Store{Service: service}
}

// Get retrieves a secret by name.
func (s *Store) Get(name string) (string, error) {
	val, err := keyring.Get(s.service(), name)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("read keyring: %w", err)
	}
	return val, nil
}

// Set stores a secret.
func (s *Store) Set(name, value string) error {
	if err := keyring.Set(s.service(), name, value); err != nil {
		return fmt.Errorf("write keyring: %w", err)
	}
	return nil
}

// Delete removes a secret. A missing secret is not an error.
func (s *Store) Delete(name string) error {
	err := keyring.Delete(s.service(), name)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("delete keyring: %w", err)
	}
	return nil
}

func (s *Store) service() string {
	if s != nil && s.Service != "" {
		return s.Service
	}
	return DefaultService
}

// Available reports whether a system keyring backend answers.
// A sentinel lookup that fails with anything but ErrNotFound means no usable backend.
func Available() bool {
	_, err := keyring.Get(DefaultService, "_availability_")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
