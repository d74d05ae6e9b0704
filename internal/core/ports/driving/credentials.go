package driving

// CredentialsService manages the Anthropic API key.
// The key is only stored; nothing in the application sends it anywhere.
type CredentialsService interface {
	// Save validates and stores the key.
	Save(key string) error

	// Load returns the stored key, or domain.ErrNotFound.
	Load() (string, error)

	// Clear removes the stored key. Clearing a missing key is not an error.
	Clear() error

	// Masked returns the stored key with its middle hidden, or "" if none.
	Masked() string
}
