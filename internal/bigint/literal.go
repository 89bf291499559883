package bigint

import (
	"strconv"

	apperrors "github.com/agbru/dhcalc/internal/errors"
)

// MaxBase is the largest base accepted by Init and Text.
const MaxBase = 36

// normalizeLiteral validates an init literal and resolves base 0 prefixes so
// that every engine receives the same canonical input: an optional '-' sign
// followed by digits valid in the returned base.
func normalizeLiteral(value string, base int) (string, int, error) {
	fail := func(reason string) (string, int, error) {
		return "", 0, apperrors.ParseError{Input: value, Base: base, Reason: reason}
	}

	if base != 0 && (base < 2 || base > MaxBase) {
		return fail("unsupported base")
	}

	body := value
	neg := false
	if body != "" && (body[0] == '+' || body[0] == '-') {
		neg = body[0] == '-'
		body = body[1:]
	}

	resolved := base
	if base == 0 {
		resolved, body = splitPrefix(body)
	}

	if body == "" {
		return fail("empty literal")
	}
	for i := 0; i < len(body); i++ {
		d := digitValue(body[i])
		if d < 0 || d >= resolved {
			return fail("invalid digit " + strconv.QuoteRune(rune(body[i])))
		}
	}

	if neg {
		return "-" + body, resolved, nil
	}
	return body, resolved, nil
}

// splitPrefix detects a base prefix on an unsigned literal.
func splitPrefix(s string) (int, string) {
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return 16, s[2:]
		case 'o', 'O':
			return 8, s[2:]
		case 'b', 'B':
			return 2, s[2:]
		default:
			return 8, s[1:]
		}
	}
	return 10, s
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// Domain checks shared by every engine.

func checkDivisor(op Op, d Int) error {
	if d.Sign() == 0 {
		return apperrors.DomainError{Operation: string(op), Operand: d.String(), Cause: apperrors.ErrDivisionByZero}
	}
	return nil
}

func checkExponent(op Op, e Int) error {
	if e.Sign() < 0 {
		return apperrors.DomainError{Operation: string(op), Operand: e.String(), Cause: apperrors.ErrNegativeExponent}
	}
	return nil
}

// maxPowExponentBits bounds pow exponents for bases other than 0 and ±1.
// Wider exponents yield results no machine can hold, and GMP would silently
// keep only the low word.
const maxPowExponentBits = 64

// powShortcut resolves a**x directly when |a| <= 1 and rejects exponents
// wider than maxPowExponentBits otherwise. done reports whether v is the
// result.
func powShortcut(op Op, a, x Int) (v int64, done bool, err error) {
	if err := checkExponent(op, x); err != nil {
		return 0, false, err
	}
	if a.BitLen() <= 1 {
		switch {
		case x.Sign() == 0:
			return 1, true, nil
		case a.Sign() == 0:
			return 0, true, nil
		case a.Sign() < 0 && x.Big().Bit(0) == 1:
			return -1, true, nil
		default:
			return 1, true, nil
		}
	}
	if x.BitLen() > maxPowExponentBits {
		return 0, false, apperrors.DomainError{Operation: string(op), Operand: x.String(), Cause: apperrors.ErrExponentTooLarge}
	}
	return 0, false, nil
}

func checkModulus(op Op, m Int) error {
	if m.Sign() <= 0 {
		return apperrors.DomainError{Operation: string(op), Operand: m.String(), Cause: apperrors.ErrNonPositiveModulus}
	}
	return nil
}

func checkRadicand(op Op, a Int) error {
	if a.Sign() < 0 {
		return apperrors.DomainError{Operation: string(op), Operand: a.String(), Cause: apperrors.ErrNegativeSquareRoot}
	}
	return nil
}
