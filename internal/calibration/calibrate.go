package calibration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/agbru/dhcalc/internal/bigint"
	"github.com/agbru/dhcalc/internal/metrics"
	"github.com/agbru/dhcalc/internal/orchestration"
)

// Options configures a calibration run.
type Options struct {
	// Sizes are the modulus sizes to benchmark. Defaults to
	// GenerateOperandSizes().
	Sizes []int
	// SavePath, when set, receives the resulting profile as JSON.
	SavePath string
	// Reporter displays progress per engine. Defaults to no output.
	Reporter orchestration.ProgressReporter
}

// calibrationResult is the measurement of one engine at one size.
type calibrationResult struct {
	Engine  bigint.EngineName
	Bits    int
	Timing  EngineTiming
	Err     error
	Samples []float64
}

// RunCalibration times powmod on every engine and recommends the fastest at
// PrimaryBits. Engines that fail are reported and excluded from the
// recommendation; the run fails only when none succeeds.
//
// Parameters:
//   - ctx: Cancels the run between samples.
//   - out: Receives the summary table.
//   - engines: The engines to benchmark.
//   - factory: Builds a facade for a given engine.
//   - opts: Workload and persistence options.
//
// Returns:
//   - *Profile: The profile describing the run.
//   - error: ctx.Err() on cancellation, or an error when no engine succeeded.
func RunCalibration(ctx context.Context, out io.Writer, engines []bigint.EngineName,
	factory orchestration.EngineFactory, opts Options) (*Profile, error) {
	sizes := opts.Sizes
	if len(sizes) == 0 {
		sizes = GenerateOperandSizes()
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = orchestration.NullProgressReporter{}
	}

	start := time.Now()
	var results []calibrationResult
	for _, name := range engines {
		stop := reporter.Begin(fmt.Sprintf("Calibrating %s", name), out)
		m, err := factory(name)
		if err != nil {
			stop()
			results = append(results, calibrationResult{Engine: name, Bits: PrimaryBits, Err: err})
			continue
		}
		for _, bits := range sizes {
			res := measure(ctx, m, bits, SampleCount(bits))
			if ctx.Err() != nil {
				stop()
				return nil, ctx.Err()
			}
			results = append(results, res)
		}
		stop()
	}

	profile := NewProfile()
	profile.CalibrationTime = time.Since(start).Round(time.Millisecond).String()
	best := -1
	for _, res := range results {
		if res.Bits != PrimaryBits || res.Err != nil {
			continue
		}
		profile.Engines = append(profile.Engines, res.Timing)
		if best < 0 || res.Timing.Median < profile.Engines[best].Median {
			best = len(profile.Engines) - 1
		}
	}
	if best >= 0 {
		profile.RecommendedEngine = profile.Engines[best].Engine
	}

	printCalibrationResults(out, results, profile.RecommendedEngine)
	if best < 0 {
		return nil, errors.New("calibration failed: no engine completed the benchmark")
	}
	printCalibrationOutput(out, profile)

	if opts.SavePath != "" {
		if err := profile.SaveProfile(opts.SavePath); err != nil {
			return profile, err
		}
	}
	return profile, nil
}

// measure runs samples powmods of the given size and summarises them.
func measure(ctx context.Context, m *bigint.Math, bits, samples int) calibrationResult {
	res := calibrationResult{Engine: m.Engine(), Bits: bits}
	ops := GenerateOperands(bits)

	g, err := m.Init(ops.Base, 16)
	if err == nil {
		var e, n bigint.Int
		if e, err = m.Init(ops.Exponent, 16); err == nil {
			n, err = m.Init(ops.Modulus, 16)
		}
		if err == nil {
			res.Samples, res.Timing.BytesPerOp, err = sample(ctx, m, g, e, n, samples)
		}
	}
	if err != nil {
		res.Err = err
		return res
	}

	res.Timing, res.Err = summarize(m.Engine(), res.Samples, res.Timing.BytesPerOp)
	return res
}

func sample(ctx context.Context, m *bigint.Math, g, e, n bigint.Int, samples int) ([]float64, uint64, error) {
	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	durations := make([]float64, 0, samples)
	for range samples {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		t0 := time.Now()
		if _, err := m.PowMod(g, e, n); err != nil {
			return nil, 0, err
		}
		durations = append(durations, float64(time.Since(t0)))
	}
	delta := collector.Snapshot().Since(before)
	return durations, delta.Bytes / uint64(samples), nil
}

func summarize(engine bigint.EngineName, samples []float64, bytesPerOp uint64) (EngineTiming, error) {
	data := stats.Float64Data(samples)
	mean, err := stats.Mean(data)
	if err != nil {
		return EngineTiming{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return EngineTiming{}, err
	}
	stddev, err := stats.StandardDeviation(data)
	if err != nil {
		return EngineTiming{}, err
	}
	return EngineTiming{
		Engine:     string(engine),
		Mean:       time.Duration(mean),
		Median:     time.Duration(median),
		StdDev:     time.Duration(stddev),
		Samples:    len(samples),
		BytesPerOp: bytesPerOp,
	}, nil
}
