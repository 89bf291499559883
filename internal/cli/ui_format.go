// Number formatting utilities for CLI output.

package cli

import (
	"strconv"

	"github.com/agbru/dhcalc/internal/bigint"
)

// FormatResultValue renders a result in the given base. Compare results are
// rendered as their order (-1, 0 or 1) regardless of base.
func FormatResultValue(r bigint.Result, base int) string {
	if r.Op == bigint.OpCompare {
		return strconv.Itoa(r.Order)
	}
	if base == 0 {
		base = 10
	}
	return r.Value.Text(base)
}

// FormatQuietResult formats a result for quiet mode output: the bare value,
// suitable for scripting.
func FormatQuietResult(r bigint.Result, base int) string {
	return FormatResultValue(r, base)
}

func orderSymbol(order int) string {
	switch {
	case order < 0:
		return "a < b"
	case order > 0:
		return "a > b"
	default:
		return "a = b"
	}
}
