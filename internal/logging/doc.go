// Package logging provides a unified logging interface for dhcalc.
// It abstracts the underlying logging implementation, allowing consistent logging
// across the engine facade, the CLI and the TUI while supporting multiple backends.
package logging
