// Package bigint is the arbitrary-precision integer layer used for
// Diffie-Hellman arithmetic.
//
// A Math facade binds exactly one Engine for its whole lifetime. The engine is
// chosen at construction from a closed set of variants, in priority order:
//
//   - "gmp": GNU MP through github.com/ncw/gmp. Only compiled in with the
//     "gmp" build tag and cgo enabled.
//   - "big": the Go standard library math/big. Always available.
//
// Every engine implements the same ten operations (init, add, subtract,
// compare, divide, modulus, multiply, pow, powmod, sqrt) with identical
// results. Values are exchanged as immutable Int handles.
//
// # Conventions
//
//   - divide truncates toward zero.
//   - modulus is Euclidean: the result is always in [0, |m|).
//   - pow and powmod reject negative exponents.
//   - powmod requires a positive modulus and returns a value in [0, m).
//   - sqrt returns the floor of the square root and rejects negative input.
//   - init accepts bases 0 and 2..36. Base 0 selects the base from a 0x, 0o,
//     0b or 0 prefix.
package bigint
