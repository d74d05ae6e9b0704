// Package services implements the driving port interfaces.
// Services contain the core editor logic and orchestrate
// calls to driven ports (adapters).
//
// Every driven port is optional: a service with a missing store returns
// domain.ErrNotImplemented, and a missing formatter or renderer degrades
// to the cleanup pass or a placeholder.
package services
