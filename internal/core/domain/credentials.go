package domain

import "strings"

// APIKeyPrefix is the prefix every Anthropic API key carries.
//
//nolint:gosec // G101: This is a key prefix, not a credential.
const APIKeyPrefix = "sk-ant-"

// APIKeyName is the storage key of the Anthropic API key.
//
//nolint:gosec // G101: This is a storage key name, not a credential.
const APIKeyName = "anthropicApiKey"

// ValidateAPIKey trims the key and checks its shape.
// It returns the trimmed key.
func ValidateAPIKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrAPIKeyRequired
	}
	if !strings.HasPrefix(key, APIKeyPrefix) {
		return "", ErrAPIKeyFormat
	}
	return key, nil
}

// MaskAPIKey hides all but the first and last four characters.
func MaskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
