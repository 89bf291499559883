package config

// Engine resolution chain (highest priority first):
//   1. CLI flag (--engine)
//   2. Environment variable (DHCALC_ENGINE)
//   3. Config file key (engine)
//   4. Calibration profile recommendation (--calibration-profile)
//   5. Engine priority order (gmp, then big)

// ApplyCalibratedEngine sets the engine recommended by a calibration profile
// when no higher-priority source selected one. An empty recommendation leaves
// the configuration unchanged.
func ApplyCalibratedEngine(cfg AppConfig, recommended string) AppConfig {
	if cfg.Engine == "" && recommended != "" {
		cfg.Engine = recommended
	}
	return cfg
}
