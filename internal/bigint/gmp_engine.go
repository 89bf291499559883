//go:build gmp && cgo

package bigint

import (
	"math/big"

	"github.com/ncw/gmp"

	apperrors "github.com/agbru/dhcalc/internal/errors"
)

// gmpNumber wraps a *gmp.Int that is never mutated after construction.
type gmpNumber struct {
	v *gmp.Int
}

func (n gmpNumber) Sign() int   { return n.v.Sign() }
func (n gmpNumber) BitLen() int { return n.v.BitLen() }

func (n gmpNumber) Text(base int) string {
	if base == 10 {
		return n.v.String()
	}
	v, _ := new(big.Int).SetString(n.v.String(), 10)
	return v.Text(base)
}

// gmpEngine implements Engine on GNU MP. It is the primary variant when the
// binary is built with the gmp tag and cgo.
type gmpEngine struct{}

func probeGMP() error { return nil }

func newGMPEngine() (Engine, error) { return gmpEngine{}, nil }

func (gmpEngine) Name() EngineName { return EngineGMP }

func (gmpEngine) wrap(v *gmp.Int) Int {
	return Int{engine: EngineGMP, n: gmpNumber{v: v}}
}

func (gmpEngine) unwrap(x Int) *gmp.Int {
	switch n := x.n.(type) {
	case nil:
		return gmp.NewInt(0)
	case gmpNumber:
		return n.v
	default:
		v, _ := new(gmp.Int).SetString(n.Text(16), 16)
		return v
	}
}

func (e gmpEngine) Init(value string, base int) (Int, error) {
	lit, b, err := normalizeLiteral(value, base)
	if err != nil {
		return Int{}, err
	}
	v, ok := new(gmp.Int).SetString(lit, b)
	if !ok {
		return Int{}, apperrors.ParseError{Input: value, Base: base, Reason: "malformed literal"}
	}
	return e.wrap(v), nil
}

func (e gmpEngine) Add(a, b Int) (Int, error) {
	return e.wrap(new(gmp.Int).Add(e.unwrap(a), e.unwrap(b))), nil
}

func (e gmpEngine) Subtract(a, b Int) (Int, error) {
	return e.wrap(new(gmp.Int).Sub(e.unwrap(a), e.unwrap(b))), nil
}

func (e gmpEngine) Compare(a, b Int) (int, error) {
	return e.unwrap(a).Cmp(e.unwrap(b)), nil
}

func (e gmpEngine) Divide(a, b Int) (Int, error) {
	if err := checkDivisor(OpDivide, b); err != nil {
		return Int{}, err
	}
	return e.wrap(new(gmp.Int).Quo(e.unwrap(a), e.unwrap(b))), nil
}

func (e gmpEngine) Modulus(a, m Int) (Int, error) {
	if err := checkDivisor(OpModulus, m); err != nil {
		return Int{}, err
	}
	return e.wrap(new(gmp.Int).Mod(e.unwrap(a), e.unwrap(m))), nil
}

func (e gmpEngine) Multiply(a, b Int) (Int, error) {
	return e.wrap(new(gmp.Int).Mul(e.unwrap(a), e.unwrap(b))), nil
}

func (e gmpEngine) Pow(a, x Int) (Int, error) {
	v, done, err := powShortcut(OpPow, a, x)
	if err != nil {
		return Int{}, err
	}
	if done {
		return e.wrap(gmp.NewInt(v)), nil
	}
	return e.wrap(new(gmp.Int).Exp(e.unwrap(a), e.unwrap(x), nil)), nil
}

func (e gmpEngine) PowMod(a, x, m Int) (Int, error) {
	if err := checkExponent(OpPowMod, x); err != nil {
		return Int{}, err
	}
	if err := checkModulus(OpPowMod, m); err != nil {
		return Int{}, err
	}
	// Exp returns 1 for a zero exponent without reducing it, so powmod(a, 0, 1)
	// needs the final Mod.
	n := e.unwrap(m)
	r := new(gmp.Int).Exp(e.unwrap(a), e.unwrap(x), n)
	return e.wrap(r.Mod(r, n)), nil
}

func (e gmpEngine) Sqrt(a Int) (Int, error) {
	if err := checkRadicand(OpSqrt, a); err != nil {
		return Int{}, err
	}
	return e.wrap(new(gmp.Int).Sqrt(e.unwrap(a))), nil
}
