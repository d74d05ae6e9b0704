package services

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/core/ports/driven"
	"github.com/custodia-labs/vibepad/internal/core/ports/driving"
)

// Ensure CredentialsService implements the interface.
var _ driving.CredentialsService = (*CredentialsService)(nil)

// CredentialsService manages the Anthropic API key.
type CredentialsService struct {
	store driven.SecretStore
}

// NewCredentialsService creates a new credentials service.
func NewCredentialsService(store driven.SecretStore) *CredentialsService {
	return &CredentialsService{
		store: store,
	}
}

// Save validates and stores the key.
func (s *CredentialsService) Save(key string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	key, err := domain.ValidateAPIKey(key)
	if err != nil {
		return err
	}
	if err := s.store.Set(domain.APIKeyName, key); err != nil {
		return fmt.Errorf("store API key: %w", err)
	}
	return nil
}

// Load returns the stored key.
func (s *CredentialsService) Load() (string, error) {
	if s.store == nil {
		return "", domain.ErrNotImplemented
	}
	key, err := s.store.Get(domain.APIKeyName)
	if err != nil {
		return "", err
	}
	if key == "" {
		return "", domain.ErrNotFound
	}
	return key, nil
}

// Clear removes the stored key.
func (s *CredentialsService) Clear() error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if err := s.store.Delete(domain.APIKeyName); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("clear API key: %w", err)
	}
	return nil
}

// Masked returns the stored key with its middle hidden, or "" if none.
func (s *CredentialsService) Masked() string {
	key, err := s.Load()
	if err != nil {
		return ""
	}
	return domain.MaskAPIKey(key)
}
