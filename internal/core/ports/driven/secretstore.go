package driven

// SecretStore persists secrets such as API keys.
// Backed by the OS keyring, or the config file where no keyring is available.
type SecretStore interface {
	// Get retrieves a secret by name.
	// Returns domain.ErrNotFound if the secret does not exist.
	Get(name string) (string, error)

	// Set stores a secret, replacing any existing value.
	Set(name, value string) error

	// Delete removes a secret. Deleting a missing secret is not an error.
	Delete(name string) error
}
