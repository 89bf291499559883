package bigint

import "testing"

func TestNormalizeLiteral(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in       string
		base     int
		wantLit  string
		wantBase int
		wantErr  bool
	}{
		{"+12", 10, "12", 10, false},
		{"-0x1f", 0, "-1f", 16, false},
		{"0B11", 0, "11", 2, false},
		{"0O7", 0, "7", 8, false},
		{"0755", 0, "755", 8, false},
		{"Zz", 36, "Zz", 36, false},
		{"9", 8, "", 0, true},
		{"1 2", 10, "", 0, true},
		{"--1", 10, "", 0, true},
		{"1", 0, "1", 10, false},
		{"1", 63, "", 0, true},
	}
	for _, tt := range tests {
		lit, base, err := normalizeLiteral(tt.in, tt.base)
		if (err != nil) != tt.wantErr {
			t.Errorf("normalizeLiteral(%q, %d) error = %v, wantErr %v", tt.in, tt.base, err, tt.wantErr)
			continue
		}
		if lit != tt.wantLit || base != tt.wantBase {
			t.Errorf("normalizeLiteral(%q, %d) = (%q, %d), want (%q, %d)", tt.in, tt.base, lit, base, tt.wantLit, tt.wantBase)
		}
	}
}
