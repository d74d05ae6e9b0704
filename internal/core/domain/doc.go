// Package domain defines the core entities for vibepad.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: Persisted editor content for one editor kind
//   - ViewerOptions: JSON viewer preferences (theme, collapse depth, detection)
//   - FormatOptions: Settings handed to the Markdown formatter
//   - UIState: Active tab and panel split of the dual editor
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
