// Package renderer groups the Markdown preview adapters.
//
//   - html: goldmark with GitHub Flavored Markdown, sanitised with bluemonday
//   - terminal: glamour, styled for the active display theme
package renderer
