// Package config loads the run configuration of the percolation tools from
// flags, PERCOLATION_* environment variables and an optional config file,
// in that order of precedence, and validates it.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/percolate/montecarlo"
)

// ErrInvalidConfig wraps validation failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Default values.
const (
	DefaultGridSize   = 200
	DefaultTrials     = 100
	DefaultLogLevel   = "info"
	DefaultConfidence = montecarlo.DefaultConfidence
)

// Config is the run configuration of cmd/percolationstats.
type Config struct {
	GridSize   int     `mapstructure:"grid_size" validate:"min=1"`
	Trials     int     `mapstructure:"trials" validate:"min=2"`
	Seed       int64   `mapstructure:"seed"` // 0 selects a clock-based seed
	LogLevel   string  `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Confidence float64 `mapstructure:"confidence" validate:"gt=0"`
}

// NewFlagSet returns the flag set understood by Load.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Int("grid-size", DefaultGridSize, "grid dimension N")
	fs.Int("trials", DefaultTrials, "number of independent trials T")
	fs.Int64("seed", 0, "random seed (0 = time-based)")
	fs.String("log-level", DefaultLogLevel, "log level: debug, info, warn, error")
	fs.Float64("confidence", DefaultConfidence, "z-value of the confidence interval")
	fs.String("config", "", "optional config file (yaml, toml or json)")
	return fs
}

// Load parses args with fs, merges environment and file settings, and
// validates the result. Two positional arguments are read as grid size and
// trial count and take precedence over everything else.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	v := viper.New()
	v.SetDefault("grid_size", DefaultGridSize)
	v.SetDefault("trials", DefaultTrials)
	v.SetDefault("seed", 0)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("confidence", DefaultConfidence)

	v.SetEnvPrefix("percolation")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		"grid_size":  "grid-size",
		"trials":     "trials",
		"seed":       "seed",
		"log_level":  "log-level",
		"confidence": "confidence",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", flag, err)
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	switch pos := fs.Args(); len(pos) {
	case 0:
	case 2:
		v.Set("grid_size", pos[0])
		v.Set("trials", pos[1])
	default:
		return nil, fmt.Errorf("%w: expected 0 or 2 positional arguments, got %d", ErrInvalidConfig, len(pos))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags of cfg.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
