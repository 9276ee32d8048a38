package ldclump

import (
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/carbocation/pfx"
	"github.com/kelseyhightower/envconfig"
)

// Config carries the knobs a clumping driver exposes. It can be read from a
// TOML file and overridden from the environment.
type Config struct {
	DistanceBP        int64   `toml:"distance_bp" envconfig:"DISTANCE_BP"`
	R2Threshold       float64 `toml:"r2_threshold" envconfig:"R2_THRESHOLD"`
	PThreshold        float64 `toml:"p_threshold" envconfig:"P_THRESHOLD"`
	HardCallThreshold float64 `toml:"hard_call_threshold" envconfig:"HARD_CALL_THRESHOLD"`
	Method            string  `toml:"method" envconfig:"METHOD"`
	Workers           int     `toml:"workers" envconfig:"WORKERS"`
	CompressGenotypes bool    `toml:"compress_genotypes" envconfig:"COMPRESS_GENOTYPES"`
}

// DefaultConfig returns 250kb windows, r² 0.1 and every p-value eligible as
// an index.
func DefaultConfig() Config {
	return Config{
		DistanceBP:        250000,
		R2Threshold:       0.1,
		PThreshold:        1,
		HardCallThreshold: DefaultHardCallThreshold,
		Method:            Haplotype.String(),
		Workers:           1,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Keys the file sets
// that Config does not know are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, pfx.Err(err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, pfx.Err(fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", ")))
	}
	return cfg, nil
}

// ApplyEnv overrides fields from PREFIX_DISTANCE_BP, PREFIX_R2_THRESHOLD and
// so on. Unset variables leave the field alone.
func (c *Config) ApplyEnv(prefix string) error {
	if err := envconfig.Process(prefix, c); err != nil {
		return pfx.Err(err)
	}
	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	switch {
	case c.R2Threshold < 0 || c.R2Threshold > 1 || math.IsNaN(c.R2Threshold):
		return pfx.Err(fmt.Errorf("%w: r2_threshold %g must be in [0, 1]", ErrInvalidConfig, c.R2Threshold))
	case c.PThreshold < 0 || c.PThreshold > 1 || math.IsNaN(c.PThreshold):
		return pfx.Err(fmt.Errorf("%w: p_threshold %g must be in [0, 1]", ErrInvalidConfig, c.PThreshold))
	case c.HardCallThreshold < 0 || c.HardCallThreshold >= 0.5 || math.IsNaN(c.HardCallThreshold):
		return pfx.Err(fmt.Errorf("%w: hard_call_threshold %g must be in [0, 0.5)", ErrInvalidConfig, c.HardCallThreshold))
	case c.Workers < 1:
		return pfx.Err(fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers))
	}
	if _, err := ParseMethod(c.Method); err != nil {
		return pfx.Err(fmt.Errorf("%w: %v", ErrInvalidConfig, err))
	}
	return nil
}

// Params returns the clumping thresholds.
func (c Config) Params() ClumpParams {
	return ClumpParams{
		DistanceBP:  c.DistanceBP,
		R2Threshold: c.R2Threshold,
		PThreshold:  c.PThreshold,
	}
}

// Options converts the config into component options. logger may be nil.
func (c Config) Options(logger *Logger) ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, pfx.Err(err)
	}
	m, _ := ParseMethod(c.Method)
	return []Option{
		WithLogger(logger),
		WithMethod(m),
		WithWorkers(c.Workers),
		WithCompression(c.CompressGenotypes),
	}, nil
}
