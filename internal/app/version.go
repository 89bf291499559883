package app

import (
	"fmt"
	"io"
	"runtime"
	"slices"
)

// Version is set at build time with -ldflags "-X github.com/agbru/dhcalc/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether args request the version, so that it can
// be printed before any configuration is parsed.
func HasVersionFlag(args []string) bool {
	return slices.ContainsFunc(args, func(a string) bool {
		switch a {
		case "--version", "-version", "-V", "--V":
			return true
		}
		return false
	})
}

// PrintVersion writes the version and build platform.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "dhcalc %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
