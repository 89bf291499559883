package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E verifies the built binary end to end.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	tmpDir := t.TempDir()
	binName := "dhcalc"
	if runtime.GOOS == "windows" {
		binName = "dhcalc.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs in the package directory; build from the module root.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/dhcalc")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build dhcalc: %v", err)
	}

	profile := filepath.Join(tmpDir, "profile.json")

	tests := []struct {
		name     string
		args     []string
		wantOut  string // case-insensitive substring
		wantCode int
	}{
		{"Modular Exponentiation", []string{"--engine", "big", "powmod", "5", "6", "23"}, "powmod = 8", 0},
		{"Quiet Mode", []string{"-q", "--engine", "big", "multiply", "12345678901234567890", "98765432109876543210"}, "1219326311370217952237463801111263526900", 0},
		{"Hex Input", []string{"-q", "--engine", "big", "--base", "16", "add", "ff", "1"}, "256", 0},
		{"Hex Output", []string{"-q", "--engine", "big", "--output-base", "16", "pow", "2", "64"}, "10000000000000000", 0},
		{"Compare", []string{"--engine", "big", "compare", "3", "7"}, "compare = -1", 0},
		{"All Engines", []string{"--engine", "all", "sqrt", "1000000"}, "all engines agree", 0},
		{"Division By Zero", []string{"--engine", "big", "divide", "1", "0"}, "", 5},
		{"Negative Square Root", []string{"-q", "--engine", "big", "sqrt", "-4"}, "", 5},
		{"Parse Error", []string{"-q", "--engine", "big", "add", "12x", "1"}, "", 5},
		{"Unknown Operation", []string{"-q", "--engine", "big", "gcd", "4", "6"}, "", 5},
		{"Unknown Engine", []string{"--engine", "openssl", "add", "1", "2"}, "Configuration error: unknown engine", 4},
		{"Missing Operation", []string{"--engine", "big"}, "Configuration error: missing operation", 4},
		{"List Engines", []string{"--list-engines"}, "big", 0},
		{"Help", []string{"--help"}, "usage", 0},
		{"Version Flag", []string{"--version"}, "dhcalc", 0},
		{"Completion", []string{"--completion", "bash"}, "complete", 0},
		{"Metrics", []string{"--engine", "big", "--metrics", "add", "1", "2"}, "dhcalc_operations_total", 0},
		{"Calibration", []string{"--calibrate", "--calibration-profile", profile}, "recommended", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1", "DHCALC_CONFIG=")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			if err != nil {
				var exitErr *exec.ExitError
				if !errors.As(err, &exitErr) {
					t.Fatalf("running binary: %v", err)
				}
				code = exitErr.ExitCode()
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput:\n%s", code, tt.wantCode, outStr)
			}

			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
