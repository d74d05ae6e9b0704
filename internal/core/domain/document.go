package domain

import "time"

// Document is the persisted content of one editor.
// There is at most one current document per EditorKind.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Kind is the editor the document belongs to.
	Kind EditorKind

	// Name is the file name the content was imported from, if any.
	Name string

	// Content is the raw editor text.
	Content string

	// CreatedAt is when the document was first saved.
	CreatedAt time.Time

	// UpdatedAt is when the document was last saved.
	UpdatedAt time.Time
}

// IsEmpty returns true if the document holds only whitespace.
func (d *Document) IsEmpty() bool {
	if d == nil {
		return true
	}
	for _, r := range d.Content {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			continue
		default:
			return false
		}
	}
	return true
}
