package format

import (
	"encoding/hex"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/ALTree/bigfloat"
	"github.com/zeebo/blake3"
)

// GroupDigits inserts sep every three digits from the right of a decimal
// string. A leading '-' is preserved.
func GroupDigits(s string, sep byte) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	b.Grow(len(sign) + len(s) + len(s)/3)
	b.WriteString(sign)
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if i > 0 {
			b.WriteByte(sep)
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Truncate shortens a long number to its first and last n characters.
func Truncate(s string, n int) string {
	if n <= 0 || len(s) <= 2*n+3 {
		return s
	}
	return s[:n] + "..." + s[len(s)-n:]
}

const magnitudePrec = 128

// Magnitude returns an approximation of x in scientific notation with four
// significant digits, e.g. "1.268e+30".
func Magnitude(x *big.Int) string {
	if x.Sign() == 0 {
		return "0"
	}
	abs := new(big.Int).Abs(x)
	if abs.BitLen() <= 53 {
		return fmt.Sprintf("%.3e", float64(x.Int64()))
	}

	ln := bigfloat.Log(new(big.Float).SetPrec(magnitudePrec).SetInt(abs))
	ln10 := bigfloat.Log(new(big.Float).SetPrec(magnitudePrec).SetInt64(10))
	log10, _ := new(big.Float).Quo(ln, ln10).Float64()

	exp := math.Floor(log10)
	mant := math.Pow(10, log10-exp)
	if mant >= 9.9995 {
		mant /= 10
		exp++
	}
	sign := ""
	if x.Sign() < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%.3fe+%d", sign, mant, int64(exp))
}

// Fingerprint returns a short BLAKE3 digest of a rendered value. Equal values
// rendered in the same base have equal fingerprints.
func Fingerprint(text string) string {
	hasher := blake3.New()
	_, _ = hasher.Write([]byte(text))
	return hex.EncodeToString(hasher.Sum(nil)[:8])
}
