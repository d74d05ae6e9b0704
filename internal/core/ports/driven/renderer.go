package driven

// Renderer turns Markdown into a displayable form (HTML or terminal output).
type Renderer interface {
	// Render returns the rendered document.
	Render(markdown string) (string, error)
}
