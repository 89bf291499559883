package bigint

import "math/big"

// number is the engine-private representation behind an Int. Implementations
// are never mutated once wrapped.
type number interface {
	Sign() int
	BitLen() int
	Text(base int) string
}

// Int is an immutable arbitrary-precision integer produced by an engine.
// The zero value is the integer 0 and is accepted by every engine.
type Int struct {
	engine EngineName
	n      number
}

// Engine returns the name of the engine that produced x, or "" for the zero value.
func (x Int) Engine() EngineName { return x.engine }

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Int) Sign() int {
	if x.n == nil {
		return 0
	}
	return x.n.Sign()
}

// BitLen returns the length of the absolute value of x in bits.
func (x Int) BitLen() int {
	if x.n == nil {
		return 0
	}
	return x.n.BitLen()
}

// Text returns the representation of x in the given base (2..36).
func (x Int) Text(base int) string {
	if x.n == nil {
		return "0"
	}
	return x.n.Text(base)
}

// String returns the canonical decimal representation of x.
func (x Int) String() string { return x.Text(10) }

// Big returns a fresh *big.Int holding the value of x. Mutating the result
// does not affect x.
func (x Int) Big() *big.Int {
	switch n := x.n.(type) {
	case nil:
		return new(big.Int)
	case bigNumber:
		return new(big.Int).Set(n.v)
	default:
		v, _ := new(big.Int).SetString(n.Text(16), 16)
		return v
	}
}
