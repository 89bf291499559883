// Package tui implements the --tui dashboard: a bubbletea program with a
// command line, a scrolling history of results and a panel of timing
// statistics. It accepts the same commands as the REPL.
package tui
