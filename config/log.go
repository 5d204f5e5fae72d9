package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig selects the zap logger built by Build.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func (l LogConfig) level() (zapcore.Level, error) {
	if l.Level == "" {
		return zap.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return lvl, fmt.Errorf("log level %q: %w", l.Level, ErrInvalid)
	}
	return lvl, nil
}

// Build returns a JSON production logger, or a console logger when
// Development is set. Both write to stderr.
func (l LogConfig) Build() (*zap.Logger, error) {
	lvl, err := l.level()
	if err != nil {
		return nil, err
	}

	cfg := zap.Config{
		Level:       zap.NewAtomicLevelAt(lvl),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	if l.Development {
		cfg.Development = true
		cfg.Sampling = nil
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
