package geodeduce

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the process-wide tunables of a run: tolerances, retry
// budgets, and the matcher cache location. Zero value is not meaningful;
// use DefaultConfig or LoadConfig.
type Config struct {
	// PredicateTolerance is the epsilon used by predicate numeric checks
	// (looser than ATOM, which governs point identity).
	PredicateTolerance float64 `toml:"predicate_tolerance"`

	// ConstructionRetryBudget bounds how many times a construction
	// front-end may resample a degenerate configuration before giving up
	// (100 is a reasonable default). The engine itself never constructs
	// points; this is carried so a construction front-end and
	// internal/constructiontest's test helper share one source of truth.
	ConstructionRetryBudget int `toml:"construction_retry_budget"`

	// MatcherCachePath is the optional on-disk cache of rule description
	// -> discovered variable bindings. Empty disables the cache.
	MatcherCachePath string `toml:"matcher_cache_path"`

	// MaxSaturationSweeps bounds the number of full rule-reload sweeps
	// the saturation loop performs before treating the run as exhausted,
	// guarding against a pathological rule set that oscillates between
	// "progress" states without actually proving the goals.
	MaxSaturationSweeps int `toml:"max_saturation_sweeps"`
}

// DefaultConfig returns the engine's default tunables.
func DefaultConfig() Config {
	return Config{
		PredicateTolerance:      1e-9,
		ConstructionRetryBudget: 100,
		MatcherCachePath:        "",
		MaxSaturationSweeps:     1000,
	}
}

// LoadConfig reads a TOML config file, filling in DefaultConfig for any
// field the file leaves unset.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("geodeduce: loading config %s: %w", path, err)
	}
	return cfg, nil
}
