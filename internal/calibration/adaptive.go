// This file chooses the workload of a calibration run.

package calibration

import (
	"math/big"
	"math/rand/v2"
	"runtime"
)

// PrimaryBits is the modulus size the engine recommendation is based on.
// 2048 bits is the smallest MODP group recommended for Diffie-Hellman.
const PrimaryBits = 2048

// GenerateOperandSizes returns the modulus sizes to benchmark. 32-bit
// platforms skip the largest groups, whose powmod is several times slower
// with half-width limbs.
func GenerateOperandSizes() []int {
	if wordSize() == 32 {
		return []int{1024, PrimaryBits}
	}
	return []int{1024, PrimaryBits, 3072, 4096}
}

// GenerateQuickOperandSizes returns the reduced workload used by tests and
// by --calibrate with a short timeout.
func GenerateQuickOperandSizes() []int {
	return []int{PrimaryBits}
}

// SampleCount returns how many powmod samples to take per engine and size.
// More cores do not speed up a single powmod, so the count only scales down
// with operand size to keep a run under a few seconds.
func SampleCount(bits int) int {
	switch {
	case bits <= 1024:
		return 40
	case bits <= PrimaryBits:
		return 20
	default:
		return 8
	}
}

// Operands is a deterministic powmod workload of a given size.
type Operands struct {
	Bits     int
	Base     string
	Exponent string
	Modulus  string
}

// GenerateOperands returns reproducible hexadecimal operands: an odd modulus
// with its top bit set, and a base and exponent just below it. The same
// bits value always yields the same operands, so profiles are comparable.
func GenerateOperands(bits int) Operands {
	rng := rand.New(rand.NewPCG(uint64(bits), 0x6468_6361_6c63)) //nolint:gosec // benchmark input, not key material

	random := func(n int) *big.Int {
		buf := make([]byte, (n+7)/8)
		for i := range buf {
			buf[i] = byte(rng.Uint32())
		}
		v := new(big.Int).SetBytes(buf)
		return v.Rsh(v, uint(len(buf)*8-n))
	}

	m := random(bits)
	m.SetBit(m, bits-1, 1)
	m.SetBit(m, 0, 1)
	g := random(bits - 1)
	e := random(bits - 1)

	return Operands{Bits: bits, Base: g.Text(16), Exponent: e.Text(16), Modulus: m.Text(16)}
}

func wordSize() int { return 32 << (^uint(0) >> 63) }

func numCPU() int { return runtime.NumCPU() }
