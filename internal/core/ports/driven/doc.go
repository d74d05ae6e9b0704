// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Normaliser: Synchronous Markdown cleanup
//   - ConfigStore: Application configuration and viewer options
//   - DocumentStore: Editor content persistence
//   - SecretStore: API key persistence
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Formatter: Markdown formatter. Without it, formatting falls back to the Normaliser.
//   - Renderer: Markdown preview. Without it, a placeholder is shown.
//   - Clipboard: System clipboard. Without it, paste commands are disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
