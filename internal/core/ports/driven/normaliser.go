package driven

// Normaliser cleans up pasted Markdown without a full parse.
// Implementations must be pure: no I/O, no failure, same output for the same input.
type Normaliser interface {
	// Normalise returns the cleaned text.
	Normalise(text string) string
}
