// Package cli renders dhcalc results on a terminal and hosts the
// interactive prompt. It implements the presentation interfaces of the
// orchestration package with colorized output.
package cli
