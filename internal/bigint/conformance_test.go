package bigint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/dhcalc/internal/errors"
)

// availableEngines builds one facade per engine compiled into the test binary.
func availableEngines(t *testing.T) []*Math {
	t.Helper()
	var out []*Math
	for _, name := range Available() {
		m, err := New(string(name))
		require.NoError(t, err, "engine %s", name)
		out = append(out, m)
	}
	require.NotEmpty(t, out)
	return out
}

func mustInt(t *testing.T, m *Math, s string) Int {
	t.Helper()
	x, err := m.Init(s, 10)
	require.NoError(t, err, "Init(%q)", s)
	return x
}

func TestConformance_Arithmetic(t *testing.T) {
	t.Parallel()
	tests := []struct {
		op   Op
		args []string
		want string
	}{
		{OpAdd, []string{"2", "3"}, "5"},
		{OpAdd, []string{"-18446744073709551616", "18446744073709551617"}, "1"},
		{OpSubtract, []string{"3", "5"}, "-2"},
		{OpMultiply, []string{"-12345678901234567890", "98765432109876543210"}, "-1219326311370217952237463801111263526900"},
		{OpDivide, []string{"17", "5"}, "3"},
		{OpDivide, []string{"-17", "5"}, "-3"},
		{OpDivide, []string{"17", "-5"}, "-3"},
		{OpModulus, []string{"17", "5"}, "2"},
		{OpModulus, []string{"-17", "5"}, "3"},
		{OpModulus, []string{"17", "-5"}, "2"},
		{OpModulus, []string{"-17", "-5"}, "3"},
		{OpPow, []string{"2", "100"}, "1267650600228229401496703205376"},
		{OpPow, []string{"-3", "3"}, "-27"},
		{OpPow, []string{"0", "0"}, "1"},
		{OpPowMod, []string{"5", "6", "23"}, "8"},
		{OpPowMod, []string{"4", "13", "497"}, "445"},
		{OpPowMod, []string{"-2", "3", "7"}, "6"},
		{OpPowMod, []string{"7", "0", "1"}, "0"},
		{OpPowMod, []string{"7", "0", "13"}, "1"},
		{OpPowMod, []string{"-7", "0", "1"}, "0"},
		{OpPow, []string{"0", "18446744073709551616"}, "0"},
		{OpPow, []string{"1", "18446744073709551619"}, "1"},
		{OpPow, []string{"-1", "18446744073709551619"}, "-1"},
		{OpPow, []string{"-1", "18446744073709551616"}, "1"},
		{OpPow, []string{"-1", "0"}, "1"},
		{OpSqrt, []string{"0"}, "0"},
		{OpSqrt, []string{"1"}, "1"},
		{OpSqrt, []string{"15"}, "3"},
		{OpSqrt, []string{"16"}, "4"},
		{OpSqrt, []string{"1000000000000000000000000000000"}, "1000000000000000"},
	}

	for _, m := range availableEngines(t) {
		m := m
		t.Run(string(m.Engine()), func(t *testing.T) {
			t.Parallel()
			for _, tt := range tests {
				args := make([]any, len(tt.args))
				for i, a := range tt.args {
					args[i] = a
				}
				res, err := m.Invoke(string(tt.op), args...)
				require.NoError(t, err, "%s%v", tt.op, tt.args)
				require.Equal(t, tt.want, res.Value.String(), "%s%v", tt.op, tt.args)
				require.Equal(t, m.Engine(), res.Value.Engine())
			}
		})
	}
}

func TestConformance_Compare(t *testing.T) {
	t.Parallel()
	for _, m := range availableEngines(t) {
		small := mustInt(t, m, "-99999999999999999999999")
		zero := mustInt(t, m, "0")
		large := mustInt(t, m, "99999999999999999999999")

		for _, tt := range []struct {
			a, b Int
			want int
		}{
			{small, zero, -1},
			{zero, zero, 0},
			{large, small, 1},
			{Int{}, zero, 0},
		} {
			got, err := m.Compare(tt.a, tt.b)
			require.NoError(t, err)
			require.Equal(t, tt.want, got, "compare(%s, %s) on %s", tt.a, tt.b, m.Engine())
		}
	}
}

func TestConformance_DomainErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		op    Op
		args  []any
		cause error
	}{
		{OpDivide, []any{"1", "0"}, apperrors.ErrDivisionByZero},
		{OpModulus, []any{"1", "0"}, apperrors.ErrDivisionByZero},
		{OpPow, []any{"2", "-1"}, apperrors.ErrNegativeExponent},
		{OpPow, []any{"2", "18446744073709551619"}, apperrors.ErrExponentTooLarge},
		{OpPow, []any{"-3", "18446744073709551616"}, apperrors.ErrExponentTooLarge},
		{OpPowMod, []any{"2", "-1", "7"}, apperrors.ErrNegativeExponent},
		{OpPowMod, []any{"2", "3", "0"}, apperrors.ErrNonPositiveModulus},
		{OpPowMod, []any{"2", "3", "-7"}, apperrors.ErrNonPositiveModulus},
		{OpSqrt, []any{"-4"}, apperrors.ErrNegativeSquareRoot},
	}
	for _, m := range availableEngines(t) {
		for _, tt := range tests {
			res, err := m.Invoke(string(tt.op), tt.args...)
			require.ErrorIs(t, err, tt.cause, "%s%v on %s", tt.op, tt.args, m.Engine())
			var domainErr apperrors.DomainError
			require.ErrorAs(t, err, &domainErr)
			require.Equal(t, string(tt.op), domainErr.Operation)
			require.Zero(t, res)
		}
	}
}

func TestConformance_Init(t *testing.T) {
	t.Parallel()
	valid := []struct {
		in   string
		base int
		want string
	}{
		{"0", 10, "0"},
		{"-0", 10, "0"},
		{"+42", 10, "42"},
		{"000123", 10, "123"},
		{"ff", 16, "255"},
		{"FF", 16, "255"},
		{"-1010", 2, "-10"},
		{"zz", 36, "1295"},
		{"0x1F", 0, "31"},
		{"-0b101", 0, "-5"},
		{"0o17", 0, "15"},
		{"017", 0, "15"},
		{"17", 0, "17"},
		{"0", 0, "0"},
	}
	invalid := []struct {
		in   string
		base int
	}{
		{"", 10},
		{"-", 10},
		{"+-1", 10},
		{"12a", 10},
		{" 12", 10},
		{"1_000", 10},
		{"2", 2},
		{"0x", 0},
		{"08", 0},
		{"1", 1},
		{"1", 37},
		{"1", -2},
	}
	for _, m := range availableEngines(t) {
		for _, tt := range valid {
			x, err := m.Init(tt.in, tt.base)
			require.NoError(t, err, "Init(%q, %d) on %s", tt.in, tt.base, m.Engine())
			require.Equal(t, tt.want, x.String(), "Init(%q, %d) on %s", tt.in, tt.base, m.Engine())
		}
		for _, tt := range invalid {
			_, err := m.Init(tt.in, tt.base)
			var parseErr apperrors.ParseError
			require.ErrorAs(t, err, &parseErr, "Init(%q, %d) on %s", tt.in, tt.base, m.Engine())
			require.Equal(t, tt.in, parseErr.Input)
		}
	}
}

func TestConformance_TextAndBig(t *testing.T) {
	t.Parallel()
	for _, m := range availableEngines(t) {
		x := mustInt(t, m, "-255")
		require.Equal(t, "-ff", x.Text(16))
		require.Equal(t, "-11111111", x.Text(2))
		require.Equal(t, -1, x.Sign())
		require.Equal(t, 8, x.BitLen())
		require.Equal(t, 0, x.Big().Cmp(big.NewInt(-255)))

		b := x.Big()
		b.SetInt64(1)
		require.Equal(t, "-255", x.String(), "Big() must return a copy")
	}
	var zero Int
	require.Equal(t, "0", zero.String())
	require.Equal(t, 0, zero.Sign())
	require.Equal(t, EngineName(""), zero.Engine())
}

// foreignNumber stands in for a handle produced by an engine other than the
// one doing the computation.
type foreignNumber struct{ v *big.Int }

func (n foreignNumber) Sign() int            { return n.v.Sign() }
func (n foreignNumber) BitLen() int          { return n.v.BitLen() }
func (n foreignNumber) Text(base int) string { return n.v.Text(base) }

func TestConformance_ImportsForeignHandles(t *testing.T) {
	t.Parallel()
	foreign := Int{engine: "other", n: foreignNumber{v: big.NewInt(-1000)}}
	for _, m := range availableEngines(t) {
		seven := mustInt(t, m, "7")
		sum, err := m.Add(foreign, seven)
		require.NoError(t, err)
		require.Equal(t, "-993", sum.String())
		require.Equal(t, m.Engine(), sum.Engine())

		mod, err := m.Modulus(foreign, seven)
		require.NoError(t, err)
		require.Equal(t, "1", mod.String())
	}
}

func TestConformance_OperandsAreNotMutated(t *testing.T) {
	t.Parallel()
	for _, m := range availableEngines(t) {
		a := mustInt(t, m, "123456789")
		b := mustInt(t, m, "987654321")
		n := mustInt(t, m, "1000000007")
		_, _ = m.Add(a, b)
		_, _ = m.Multiply(a, b)
		_, _ = m.PowMod(a, b, n)
		_, _ = m.Sqrt(b)
		require.Equal(t, "123456789", a.String())
		require.Equal(t, "987654321", b.String())
		require.Equal(t, "1000000007", n.String())
	}
}
