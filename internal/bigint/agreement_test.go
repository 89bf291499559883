package bigint

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// randomDecimal returns a decimal literal of up to bits bits, negative with
// probability 1/2 when signed is set.
func randomDecimal(r *rand.Rand, bits int, signed bool) string {
	n := new(big.Int)
	for i := 0; i < bits; i += 32 {
		n.Lsh(n, 32)
		n.Or(n, big.NewInt(int64(r.Uint32())))
	}
	n.Rsh(n, uint(r.IntN(bits)))
	if signed && r.IntN(2) == 0 {
		n.Neg(n)
	}
	return n.String()
}

// TestEngines_Agree checks that every compiled-in engine returns the same
// value for the same random operands. It needs at least two engines, so it
// only runs in builds with the gmp tag.
func TestEngines_Agree(t *testing.T) {
	t.Parallel()
	engines := availableEngines(t)
	if len(engines) < 2 {
		t.Skip("only one engine compiled in; build with -tags gmp to compare engines")
	}

	r := rand.New(rand.NewPCG(0x6468, 0x63616c63))
	type call struct {
		op   Op
		args []string
	}
	var calls []call
	for range 200 {
		m := randomDecimal(r, 1024, false)
		if m == "0" {
			m = "1"
		}
		calls = append(calls,
			call{OpPowMod, []string{randomDecimal(r, 1024, true), randomDecimal(r, 512, false), m}},
			call{OpPow, []string{randomDecimal(r, 128, true), big.NewInt(int64(r.IntN(64))).String()}},
			call{OpModulus, []string{randomDecimal(r, 1024, true), nonZero(randomDecimal(r, 256, true))}},
			call{OpDivide, []string{randomDecimal(r, 1024, true), nonZero(randomDecimal(r, 256, true))}},
			call{OpSqrt, []string{randomDecimal(r, 2048, false)}},
		)
	}
	calls = append(calls,
		call{OpPowMod, []string{"7", "0", "1"}},
		call{OpPowMod, []string{"-7", "3", "1"}},
		call{OpPow, []string{"0", "18446744073709551616"}},
		call{OpPow, []string{"-1", "18446744073709551619"}},
	)

	for _, c := range calls {
		args := make([]any, len(c.args))
		for i, a := range c.args {
			args[i] = a
		}
		want, err := engines[0].Invoke(string(c.op), args...)
		require.NoError(t, err, "%s%v on %s", c.op, c.args, engines[0].Engine())
		for _, m := range engines[1:] {
			got, err := m.Invoke(string(c.op), args...)
			require.NoError(t, err, "%s%v on %s", c.op, c.args, m.Engine())
			require.Equal(t, want.Value.String(), got.Value.String(),
				"%s%v: %s and %s disagree", c.op, c.args, engines[0].Engine(), m.Engine())
		}
	}
}

func nonZero(s string) string {
	if s == "0" || s == "-0" {
		return "1"
	}
	return s
}
