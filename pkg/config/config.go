// Package config holds dupfinder's run configuration.
//
// By default nothing is read from disk: the zero configuration matches
// the documented CLI defaults. A TOML file is consulted only when the
// user passes --config explicitly; flags set on the command line always
// override file values.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/dupfinder/pkg/errors"
)

// Config is the resolved run configuration
type Config struct {
	// Similarity enables the near-duplicate phase when set to a value
	// strictly below 1.0. Nil means exact matching only.
	Similarity *float64 `toml:"similarity"`

	// Report is an optional path to write a scan report to. The format
	// is chosen by extension (.json, .yaml, .yml, .xml).
	Report string `toml:"report"`
}

// Default returns the configuration used when no config file is given
func Default() Config {
	return Config{}
}

// Load reads a TOML config file from an explicitly supplied path
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "could not read config file %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, errors.ErrConfigParse, "could not parse config file %s", path)
	}

	if cfg.Similarity != nil {
		if err := ValidateThreshold(*cfg.Similarity); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// ValidateThreshold checks that a similarity ratio is within [0.0, 1.0]
func ValidateThreshold(t float64) error {
	if t < 0.0 || t > 1.0 {
		return errors.Newf(errors.ErrThresholdRange,
			"similarity threshold must be between 0.0 and 1.0, got %v", t)
	}
	return nil
}
