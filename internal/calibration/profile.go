package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/agbru/dhcalc/internal/config"
)

// CurrentProfileVersion is bumped whenever the profile layout changes.
// Profiles with another version are ignored.
const CurrentProfileVersion = 1

// DefaultProfileName is the file name of the cached profile in the user's
// home directory.
const DefaultProfileName = ".dhcalc_calibration.json"

// EngineTiming holds the powmod statistics of one engine at PrimaryBits.
type EngineTiming struct {
	Engine     string        `json:"engine"`
	Mean       time.Duration `json:"mean_ns"`
	Median     time.Duration `json:"median_ns"`
	StdDev     time.Duration `json:"stddev_ns"`
	Samples    int           `json:"samples"`
	BytesPerOp uint64        `json:"bytes_per_op"`
}

// Profile is the persisted result of a calibration run. It is only reused on
// the machine and toolchain that produced it.
type Profile struct {
	ProfileVersion int       `json:"profile_version"`
	CalibratedAt   time.Time `json:"calibrated_at"`

	NumCPU    int    `json:"num_cpu"`
	GOARCH    string `json:"goarch"`
	GOOS      string `json:"goos"`
	GoVersion string `json:"go_version"`
	WordSize  int    `json:"word_size"`

	OperandBits       int            `json:"operand_bits"`
	RecommendedEngine string         `json:"recommended_engine"`
	Engines           []EngineTiming `json:"engines"`
	CalibrationTime   string         `json:"calibration_time,omitempty"`
}

// NewProfile returns an empty profile stamped with the current platform.
func NewProfile() *Profile {
	return &Profile{
		ProfileVersion: CurrentProfileVersion,
		CalibratedAt:   time.Now(),
		NumCPU:         numCPU(),
		GOARCH:         runtime.GOARCH,
		GOOS:           runtime.GOOS,
		GoVersion:      runtime.Version(),
		WordSize:       wordSize(),
		OperandBits:    PrimaryBits,
	}
}

// IsValid reports whether the profile was produced on this platform with
// this toolchain and still names a recommendation.
func (p *Profile) IsValid() bool {
	return p.ProfileVersion == CurrentProfileVersion &&
		p.NumCPU == numCPU() &&
		p.GOARCH == runtime.GOARCH &&
		p.GOOS == runtime.GOOS &&
		p.GoVersion == runtime.Version() &&
		p.WordSize == wordSize() &&
		p.RecommendedEngine != ""
}

// SaveProfile writes the profile as indented JSON, creating parent
// directories as needed.
func (p *Profile) SaveProfile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating profile directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // profile is not sensitive
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}

func loadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user's own configuration
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding profile %s: %w", path, err)
	}
	return &p, nil
}

// DefaultProfilePath returns the cached profile location, falling back to
// the working directory when no home directory is known.
func DefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfileName
	}
	return filepath.Join(home, DefaultProfileName)
}

// LoadCachedCalibration applies the engine recommended by a valid cached
// profile. The second result is false when no usable profile exists or a
// higher-priority source already chose an engine.
func LoadCachedCalibration(cfg config.AppConfig, path string) (config.AppConfig, bool) {
	if cfg.Engine != "" {
		return cfg, false
	}
	if path == "" {
		path = DefaultProfilePath()
	}
	p, err := loadProfile(path)
	if err != nil || !p.IsValid() {
		return cfg, false
	}
	return config.ApplyCalibratedEngine(cfg, p.RecommendedEngine), true
}
