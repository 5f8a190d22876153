// SPDX-License-Identifier: MIT
// Package logging builds the zap loggers used by the orchestrator, the
// loaders and the CLI. Algorithm packages never log; they expose hooks.
package logging

import (
	"fmt"
	"os"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/geosocial/core"
)

// Supported encodings.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config selects level, encoding and an optional rotated log file.
type Config struct {
	Level  string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" toml:"format" validate:"oneof=console json"`

	// File, when set, receives a copy of every entry, rotated by size.
	File       string `yaml:"file" toml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups" validate:"gte=0"`
}

// DefaultConfig logs info and above to stderr in console format.
func DefaultConfig() Config {
	return Config{Level: "info", Format: FormatConsole, MaxSizeMB: 100, MaxAgeDays: 7}
}

// New builds a logger from cfg. Entries go to stderr and, if cfg.File is
// set, to a lumberjack-rotated file in the same encoding.
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: logging: %v", core.ErrInvalidConfiguration, err)
	}
	enc, err := encoder(cfg.Format)
	if err != nil {
		return nil, err
	}

	cores := []zapcore.Core{zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level)}
	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB, // megabytes
			MaxAge:     cfg.MaxAgeDays,
			MaxBackups: cfg.MaxBackups,
		}
		cores = append(cores, zapcore.NewCore(enc.Clone(), zapcore.AddSync(rotator), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// NewWithCore wraps an existing core, for tests that observe entries.
func NewWithCore(c zapcore.Core) *zap.Logger { return zap.New(c) }

func encoder(format string) (zapcore.Encoder, error) {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "ts"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeDuration = zapcore.StringDurationEncoder

	switch format {
	case FormatJSON:
		return zapcore.NewJSONEncoder(ec), nil
	case FormatConsole, "":
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(ec), nil
	default:
		return nil, fmt.Errorf("%w: logging: unknown format %q", core.ErrInvalidConfiguration, format)
	}
}
