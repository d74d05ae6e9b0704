package driven

// Clipboard reads and writes the system clipboard.
type Clipboard interface {
	// Read returns the clipboard text.
	Read() (string, error)

	// Write replaces the clipboard text.
	Write(text string) error
}
