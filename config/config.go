// SPDX-License-Identifier: MIT
// Package config loads and validates the run configuration from YAML or
// TOML. Values present in the file overlay Default(); absent keys keep
// their defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/geosocial/core"
	"github.com/katalvlaran/geosocial/logging"
	"github.com/katalvlaran/geosocial/pathsample"
	"github.com/katalvlaran/geosocial/sampler"
	"github.com/katalvlaran/geosocial/spanning"
)

// Defaults for the sampling pipeline.
const (
	DefaultTargetSize    = 50000
	DefaultMaxIterations = 50
	DefaultTopN          = 10

	DefaultSyntheticDegree   = 8.0
	DefaultSyntheticCoverage = 0.7
)

// ErrUnsupportedFormat is returned for a file extension other than
// .yaml, .yml or .toml.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Config is the whole run configuration.
type Config struct {
	// Seed drives every random stage; 0 selects the fixed default seed.
	Seed int64 `yaml:"seed" toml:"seed"`

	Input       Input          `yaml:"input" toml:"input"`
	Sampling    Sampling       `yaml:"sampling" toml:"sampling"`
	Communities Communities    `yaml:"communities" toml:"communities"`
	Forest      Forest         `yaml:"forest" toml:"forest"`
	Paths       Paths          `yaml:"paths" toml:"paths"`
	Logging     logging.Config `yaml:"logging" toml:"logging"`
	Metrics     Metrics        `yaml:"metrics" toml:"metrics"`
}

// Input names the data files, or requests a synthetic dataset.
type Input struct {
	Locations   string `yaml:"locations" toml:"locations"`
	Connections string `yaml:"connections" toml:"connections"`

	// Synthetic > 0 generates that many users instead of reading files.
	Synthetic         int     `yaml:"synthetic" toml:"synthetic" validate:"gte=0"`
	SyntheticDegree   float64 `yaml:"synthetic_degree" toml:"synthetic_degree" validate:"gte=0"`
	SyntheticCoverage float64 `yaml:"synthetic_coverage" toml:"synthetic_coverage" validate:"gte=0,lte=1"`
}

// Sampling configures the working-subgraph sampler.
type Sampling struct {
	TargetSize   int     `yaml:"target_size" toml:"target_size" validate:"gt=0"`
	HubFraction  float64 `yaml:"hub_fraction" toml:"hub_fraction" validate:"gte=0,lte=1"`
	DropIsolated bool    `yaml:"drop_isolated" toml:"drop_isolated"`
}

// Communities configures label propagation and its summary.
type Communities struct {
	MaxIterations int `yaml:"max_iterations" toml:"max_iterations" validate:"gt=0"`
	TopN          int `yaml:"top_n" toml:"top_n" validate:"gte=0"`
}

// Forest selects the spanning-forest algorithm.
type Forest struct {
	Method string `yaml:"method" toml:"method" validate:"oneof=kruskal prim"`
}

// Paths configures the path-length sampler.
type Paths struct {
	SampleSize int `yaml:"sample_size" toml:"sample_size" validate:"gt=0"`
}

// Metrics configures the optional Prometheus textfile export.
type Metrics struct {
	Textfile string `yaml:"textfile" toml:"textfile"`
}

// Default returns the documented defaults.
func Default() *Config {
	return &Config{
		Input: Input{
			SyntheticDegree:   DefaultSyntheticDegree,
			SyntheticCoverage: DefaultSyntheticCoverage,
		},
		Sampling: Sampling{
			TargetSize:  DefaultTargetSize,
			HubFraction: sampler.DefaultHubFraction,
		},
		Communities: Communities{MaxIterations: DefaultMaxIterations, TopN: DefaultTopN},
		Forest:      Forest{Method: spanning.MethodKruskal},
		Paths:       Paths{SampleSize: pathsample.DefaultSampleSize},
		Logging:     logging.DefaultConfig(),
	}
}

// Load reads path, overlays it on Default() and validates the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Decode parses r in the format named by ext (".yaml", ".yml", ".toml"),
// overlays it on Default() and validates the result. Unknown keys are errors.
func Decode(r io.Reader, ext string) (*Config, error) {
	cfg := Default()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: yaml: %v", core.ErrInvalidConfiguration, err)
		}
	case ".toml":
		md, err := toml.NewDecoder(r).Decode(cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: toml: %v", core.ErrInvalidConfiguration, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: toml: unknown keys %v", core.ErrInvalidConfiguration, undecoded)
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks struct-tag constraints and wraps failures in
// core.ErrInvalidConfiguration.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", core.ErrInvalidConfiguration, err)
	}
	var buf bytes.Buffer
	for i, fe := range verrs {
		if i > 0 {
			buf.WriteString("; ")
		}
		fmt.Fprintf(&buf, "%s failed %q", fe.Namespace(), fe.Tag())
		if fe.Param() != "" {
			fmt.Fprintf(&buf, " (%s)", fe.Param())
		}
	}

	return fmt.Errorf("%w: %s", core.ErrInvalidConfiguration, buf.String())
}

// validate is shared; validator caches struct metadata per type.
var validate = validator.New()
