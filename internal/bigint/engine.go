//go:generate mockgen -source=engine.go -destination=mock_engine_test.go -package=bigint
//
// The engine tests run on every compiled-in engine. The gmp engine needs cgo
// and the gmp tag:
//
//	CGO_ENABLED=1 go test -tags gmp ./internal/bigint/...

package bigint

// EngineName identifies one engine variant of the closed set.
type EngineName string

// Known engine variants, listed in selection priority order.
const (
	EngineGMP EngineName = "gmp"
	EngineBig EngineName = "big"
)

// Engine is the arithmetic capability set implemented by every variant.
//
// Operands may be handles produced by another engine or the zero Int; an
// engine imports them before computing. Results are always new handles and
// operands are never modified. Failures are reported as apperrors.ParseError
// or apperrors.DomainError and are never replaced by a default value.
type Engine interface {
	// Name returns the variant identity.
	Name() EngineName
	// Init parses value in the given base (0 or 2..36).
	Init(value string, base int) (Int, error)
	// Add returns a + b.
	Add(a, b Int) (Int, error)
	// Subtract returns a - b.
	Subtract(a, b Int) (Int, error)
	// Compare returns -1, 0 or +1 as a is less than, equal to or greater than b.
	Compare(a, b Int) (int, error)
	// Divide returns a / b truncated toward zero.
	Divide(a, b Int) (Int, error)
	// Modulus returns the Euclidean remainder of a modulo m, in [0, |m|).
	Modulus(a, m Int) (Int, error)
	// Multiply returns a * b.
	Multiply(a, b Int) (Int, error)
	// Pow returns a**e for e >= 0.
	Pow(a, e Int) (Int, error)
	// PowMod returns a**e mod m for e >= 0 and m > 0.
	PowMod(a, e, m Int) (Int, error)
	// Sqrt returns the floor of the square root of a >= 0.
	Sqrt(a Int) (Int, error)
}
