package orchestration

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/agbru/dhcalc/internal/bigint"
	apperrors "github.com/agbru/dhcalc/internal/errors"
)

// MockResultPresenter records what it was asked to present.
type MockResultPresenter struct {
	tableRows int
	presented *EvaluationResult
}

func (p *MockResultPresenter) PresentComparisonTable(results []EvaluationResult, _ PresentationOptions, _ io.Writer) {
	p.tableRows = len(results)
}

func (p *MockResultPresenter) PresentResult(result EvaluationResult, _ PresentationOptions, _ io.Writer) {
	p.presented = &result
}

type mockErrorHandler struct{}

func (mockErrorHandler) HandleError(err error, _ time.Duration, _ io.Writer) int {
	if apperrors.IsInputError(err) {
		return apperrors.ExitErrorInput
	}
	return apperrors.ExitErrorGeneric
}

func bigFactory(name bigint.EngineName) (*bigint.Math, error) {
	return bigint.New(string(name))
}

func valueResult(t *testing.T, s string) bigint.Result {
	t.Helper()
	m, err := bigint.New("big")
	if err != nil {
		t.Fatal(err)
	}
	res, err := m.Invoke("init", s)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	m, err := bigint.New("big")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{"powmod", Request{Op: "powmod", Operands: []string{"5", "6", "23"}, Base: 10}, "8"},
		{"hex operands", Request{Op: "add", Operands: []string{"ff", "1"}, Base: 16}, "256"},
		{"prefixed operands", Request{Op: "multiply", Operands: []string{"0x10", "0b11"}, Base: 0}, "48"},
		{"init default base", Request{Op: "init", Operands: []string{"777"}, Base: 8}, "511"},
		{"init explicit base", Request{Op: "init", Operands: []string{"777", "16"}, Base: 8}, "1911"},
		{"compare", Request{Op: "compare", Operands: []string{"3", "7"}, Base: 10}, "-1"},
		{"pow within limit", Request{Op: "pow", Operands: []string{"2", "64"}, Base: 10, MaxBits: 128}, "18446744073709551616"},
	}
	for _, tt := range tests {
		res, err := Evaluate(context.Background(), m, tt.req)
		if err != nil {
			t.Fatalf("%s: Evaluate() error = %v", tt.name, err)
		}
		if got := res.String(); got != tt.want {
			t.Errorf("%s: Evaluate() = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestEvaluate_Errors(t *testing.T) {
	t.Parallel()
	m, err := bigint.New("big")
	if err != nil {
		t.Fatal(err)
	}

	_, err = Evaluate(context.Background(), m, Request{Op: "xor", Operands: []string{"1", "2"}, Base: 10})
	var opErr apperrors.UnsupportedOperationError
	if !errors.As(err, &opErr) || opErr.Engine != "big" {
		t.Errorf("unsupported op error = %v", err)
	}

	_, err = Evaluate(context.Background(), m, Request{Op: "add", Operands: []string{"1"}, Base: 10})
	var valErr apperrors.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("arity error = %v, want ValidationError", err)
	}

	_, err = Evaluate(context.Background(), m, Request{Op: "add", Operands: []string{"1", "z"}, Base: 10})
	var parseErr apperrors.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("parse error = %v, want ParseError", err)
	}

	_, err = Evaluate(context.Background(), m, Request{Op: "add", Operands: []string{"1" + strings.Repeat("0", 40), "1"}, Base: 10, MaxBits: 64})
	if !errors.As(err, &valErr) {
		t.Errorf("oversized operand error = %v, want ValidationError", err)
	}

	_, err = Evaluate(context.Background(), m, Request{Op: "pow", Operands: []string{"3", "1000"}, Base: 10, MaxBits: 512})
	if !errors.As(err, &valErr) {
		t.Errorf("oversized pow error = %v, want ValidationError", err)
	}

	_, err = Evaluate(context.Background(), m, Request{Op: "sqrt", Operands: []string{"-1"}, Base: 10})
	if !errors.Is(err, apperrors.ErrNegativeSquareRoot) {
		t.Errorf("sqrt error = %v, want ErrNegativeSquareRoot", err)
	}
}

func TestEvaluate_InitSizeGuard(t *testing.T) {
	t.Parallel()
	m, err := bigint.New("big")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		operands  []string
		wantValue string
		wantErr   any
	}{
		{"decimal over limit", []string{"1" + strings.Repeat("0", 40)}, "", &apperrors.ValidationError{}},
		{"explicit base over limit", []string{strings.Repeat("f", 18), "16"}, "", &apperrors.ValidationError{}},
		{"at limit", []string{strings.Repeat("f", 16), "16"}, "18446744073709551615", nil},
		{"malformed literal", []string{"12x"}, "", &apperrors.ParseError{}},
		{"malformed base", []string{"12", "ten"}, "", &apperrors.ValidationError{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(context.Background(), m, Request{Op: "init", Operands: tt.operands, Base: 10, MaxBits: 64})
			switch target := tt.wantErr.(type) {
			case nil:
				if err != nil {
					t.Fatalf("Evaluate() error = %v", err)
				}
				if res.Value.String() != tt.wantValue {
					t.Errorf("value = %s, want %s", res.Value, tt.wantValue)
				}
			case *apperrors.ValidationError:
				if !errors.As(err, target) {
					t.Errorf("error = %v, want ValidationError", err)
				}
			case *apperrors.ParseError:
				if !errors.As(err, target) {
					t.Errorf("error = %v, want ParseError", err)
				}
			}
		})
	}
}

func TestEvaluate_Canceled(t *testing.T) {
	t.Parallel()
	m, err := bigint.New("big")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// A large pow keeps the worker busy long enough for cancellation to win.
	_, err = Evaluate(ctx, m, Request{Op: "pow", Operands: []string{"3", "50000000"}, Base: 10})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Evaluate() error = %v, want context.Canceled", err)
	}
}

func TestEnginesToRun(t *testing.T) {
	t.Parallel()
	available := []bigint.EngineName{"gmp", "big"}
	if got := EnginesToRun("all", available); len(got) != 2 {
		t.Errorf("EnginesToRun(all) = %v", got)
	}
	if got := EnginesToRun("", available); len(got) != 1 || got[0] != "gmp" {
		t.Errorf("EnginesToRun(\"\") = %v", got)
	}
	if got := EnginesToRun("", nil); got != nil {
		t.Errorf("EnginesToRun(\"\", nil) = %v", got)
	}
	if got := EnginesToRun("big", available); len(got) != 1 || got[0] != "big" {
		t.Errorf("EnginesToRun(big) = %v", got)
	}
}

func TestExecuteAcrossEngines(t *testing.T) {
	t.Parallel()
	engines := []bigint.EngineName{"big", "big", "bcmath"}
	var started, stopped int
	reporter := ProgressReporterFunc(func(string, io.Writer) func() {
		started++
		return func() { stopped++ }
	})

	results := ExecuteAcrossEngines(context.Background(), engines, bigFactory,
		Request{Op: "powmod", Operands: []string{"4", "13", "497"}, Base: 10}, reporter, io.Discard)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i := 0; i < 2; i++ {
		if results[i].Err != nil || results[i].Result.String() != "445" {
			t.Errorf("results[%d] = %+v", i, results[i])
		}
	}
	var cfgErr apperrors.ConfigError
	if !errors.As(results[2].Err, &cfgErr) {
		t.Errorf("unknown engine error = %v, want ConfigError", results[2].Err)
	}
	if started != 1 || stopped != 1 {
		t.Errorf("reporter started %d, stopped %d; want 1 and 1", started, stopped)
	}
}

func TestExecuteAcrossEngines_WrapsEngineErrors(t *testing.T) {
	t.Parallel()
	results := ExecuteAcrossEngines(context.Background(), []bigint.EngineName{"big"}, bigFactory,
		Request{Op: "divide", Operands: []string{"1", "0"}, Base: 10}, NullProgressReporter{}, io.Discard)

	var calcErr apperrors.CalculationError
	if !errors.As(results[0].Err, &calcErr) || calcErr.Engine != "big" {
		t.Fatalf("error = %v, want CalculationError for big", results[0].Err)
	}
	if !errors.Is(results[0].Err, apperrors.ErrDivisionByZero) {
		t.Error("CalculationError must keep the domain cause")
	}
}

// TestAnalyzeComparisonResults verifies the logic for comparing results from
// multiple engines.
func TestAnalyzeComparisonResults(t *testing.T) {
	t.Parallel()
	five, six := valueResult(t, "5"), valueResult(t, "6")
	tests := []struct {
		name           string
		results        []EvaluationResult
		expectedStatus int
		presented      bool
	}{
		{
			name: "All success",
			results: []EvaluationResult{
				{Engine: "gmp", Result: five, Duration: time.Millisecond},
				{Engine: "big", Result: five, Duration: 2 * time.Millisecond},
			},
			expectedStatus: apperrors.ExitSuccess,
			presented:      true,
		},
		{
			name: "Mismatch",
			results: []EvaluationResult{
				{Engine: "gmp", Result: five, Duration: time.Millisecond},
				{Engine: "big", Result: six, Duration: time.Millisecond},
			},
			expectedStatus: apperrors.ExitErrorMismatch,
		},
		{
			name: "All failure",
			results: []EvaluationResult{
				{Engine: "gmp", Err: errors.New("fail")},
				{Engine: "big", Err: errors.New("fail")},
			},
			expectedStatus: apperrors.ExitErrorGeneric,
		},
		{
			name: "All failure on input",
			results: []EvaluationResult{
				{Engine: "gmp", Err: apperrors.CalculationError{Engine: "gmp", Cause: apperrors.ParseError{Input: "x", Base: 10, Reason: "bad"}}},
			},
			expectedStatus: apperrors.ExitErrorInput,
		},
		{
			name: "Mixed success/failure",
			results: []EvaluationResult{
				{Engine: "gmp", Err: errors.New("fail")},
				{Engine: "big", Result: five, Duration: time.Millisecond},
			},
			expectedStatus: apperrors.ExitSuccess,
			presented:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			presenter := &MockResultPresenter{}
			var out bytes.Buffer
			status := AnalyzeComparisonResults(tt.results, PresentationOptions{}, presenter, mockErrorHandler{}, &out)
			if status != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, status)
			}
			if presenter.tableRows != len(tt.results) {
				t.Errorf("table rows = %d, want %d", presenter.tableRows, len(tt.results))
			}
			if (presenter.presented != nil) != tt.presented {
				t.Errorf("presented = %v, want %v", presenter.presented != nil, tt.presented)
			}
			if tt.results[0].Err != nil && tt.presented {
				t.Error("successful results must sort first")
			}
		})
	}
}
