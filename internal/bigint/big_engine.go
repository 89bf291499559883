package bigint

import (
	"math/big"

	apperrors "github.com/agbru/dhcalc/internal/errors"
)

// bigNumber wraps a *big.Int that is never mutated after construction.
type bigNumber struct {
	v *big.Int
}

func (n bigNumber) Sign() int            { return n.v.Sign() }
func (n bigNumber) BitLen() int          { return n.v.BitLen() }
func (n bigNumber) Text(base int) string { return n.v.Text(base) }

// bigEngine implements Engine with the standard library math/big package.
// It is always available and serves as the fallback variant.
type bigEngine struct{}

func newBigEngine() (Engine, error) { return bigEngine{}, nil }

func (bigEngine) Name() EngineName { return EngineBig }

// wrap takes ownership of v.
func (bigEngine) wrap(v *big.Int) Int {
	return Int{engine: EngineBig, n: bigNumber{v: v}}
}

// unwrap returns a read-only view of x. Handles from other engines are
// imported through their hexadecimal text.
func (bigEngine) unwrap(x Int) *big.Int {
	if n, ok := x.n.(bigNumber); ok {
		return n.v
	}
	return x.Big()
}

func (e bigEngine) Init(value string, base int) (Int, error) {
	lit, b, err := normalizeLiteral(value, base)
	if err != nil {
		return Int{}, err
	}
	v, ok := new(big.Int).SetString(lit, b)
	if !ok {
		return Int{}, apperrors.ParseError{Input: value, Base: base, Reason: "malformed literal"}
	}
	return e.wrap(v), nil
}

func (e bigEngine) Add(a, b Int) (Int, error) {
	return e.wrap(new(big.Int).Add(e.unwrap(a), e.unwrap(b))), nil
}

func (e bigEngine) Subtract(a, b Int) (Int, error) {
	return e.wrap(new(big.Int).Sub(e.unwrap(a), e.unwrap(b))), nil
}

func (e bigEngine) Compare(a, b Int) (int, error) {
	return e.unwrap(a).Cmp(e.unwrap(b)), nil
}

func (e bigEngine) Divide(a, b Int) (Int, error) {
	if err := checkDivisor(OpDivide, b); err != nil {
		return Int{}, err
	}
	return e.wrap(new(big.Int).Quo(e.unwrap(a), e.unwrap(b))), nil
}

func (e bigEngine) Modulus(a, m Int) (Int, error) {
	if err := checkDivisor(OpModulus, m); err != nil {
		return Int{}, err
	}
	return e.wrap(new(big.Int).Mod(e.unwrap(a), e.unwrap(m))), nil
}

func (e bigEngine) Multiply(a, b Int) (Int, error) {
	return e.wrap(new(big.Int).Mul(e.unwrap(a), e.unwrap(b))), nil
}

func (e bigEngine) Pow(a, x Int) (Int, error) {
	v, done, err := powShortcut(OpPow, a, x)
	if err != nil {
		return Int{}, err
	}
	if done {
		return e.wrap(big.NewInt(v)), nil
	}
	return e.wrap(new(big.Int).Exp(e.unwrap(a), e.unwrap(x), nil)), nil
}

func (e bigEngine) PowMod(a, x, m Int) (Int, error) {
	if err := checkExponent(OpPowMod, x); err != nil {
		return Int{}, err
	}
	if err := checkModulus(OpPowMod, m); err != nil {
		return Int{}, err
	}
	// Exp with a negative base yields a value in (-m, m); normalise it.
	r := new(big.Int).Exp(e.unwrap(a), e.unwrap(x), e.unwrap(m))
	if r.Sign() < 0 {
		r.Add(r, e.unwrap(m))
	}
	return e.wrap(r), nil
}

func (e bigEngine) Sqrt(a Int) (Int, error) {
	if err := checkRadicand(OpSqrt, a); err != nil {
		return Int{}, err
	}
	return e.wrap(new(big.Int).Sqrt(e.unwrap(a))), nil
}
