// Package ui holds the color themes shared by the CLI, the REPL and the TUI.
// Color accessors read the active theme, which honours --no-color and the
// NO_COLOR environment variable.
package ui
