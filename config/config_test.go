package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, BackendEbiten, cfg.Display.Backend)
	assert.Equal(t, 60, cfg.TPS)
	assert.NotEmpty(t, cfg.Entities)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
display:
  backend: headless
  width: 4
  height: 4
tps: 0
max_ticks: 10
entities:
  - {x: 2, y: 2, dx: 1, dy: 1}
diagnostics:
  period: 250ms
sound:
  enabled: true
  duration: 20ms
log:
  level: debug
  development: true
`))
	require.NoError(t, err)

	assert.Equal(t, BackendHeadless, cfg.Display.Backend)
	assert.Equal(t, 4, cfg.Display.Width)
	assert.Equal(t, 0, cfg.TPS)
	assert.Equal(t, uint64(10), cfg.MaxTicks)
	require.Len(t, cfg.Entities, 1)
	assert.Equal(t, EntityConfig{X: 2, Y: 2, DX: 1, DY: 1}, cfg.Entities[0])
	assert.Equal(t, 250*time.Millisecond, cfg.Diagnostics.Period)
	assert.Equal(t, 20*time.Millisecond, cfg.Sound.Duration)
	// Untouched keys keep their default.
	assert.Equal(t, 880.0, cfg.Sound.Frequency)
	assert.Equal(t, 16, cfg.Sprite.Diameter)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown backend", "display: {backend: sdl}"},
		{"zero width", "display: {width: 0}"},
		{"negative height", "display: {backend: headless, height: -1}"},
		{"endless headless", "display: {backend: headless}"},
		{"negative tps", "tps: -5"},
		{"negative fade", "fade_ticks: -1"},
		{"no sprite", "sprite: {diameter: 0}"},
		{"color range", "sprite: {color: [0, 300, 0]}"},
		{"silent chime", "sound: {enabled: true, frequency: 0}"},
		{"log level", "log: {level: loud}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("display: ["))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestTerminalIgnoresSize(t *testing.T) {
	cfg, err := Parse([]byte("display: {backend: terminal, width: 0, height: 0}"))
	require.NoError(t, err)
	assert.Equal(t, BackendTerminal, cfg.Display.Backend)
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tps: 30\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TPS)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogBuild(t *testing.T) {
	for _, lc := range []LogConfig{
		{},
		{Level: "warn"},
		{Level: "debug", Development: true},
	} {
		logger, err := lc.Build()
		require.NoError(t, err)
		require.NotNil(t, logger)
	}

	logger, err := LogConfig{Level: "warn"}.Build()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1)) // debug
	assert.True(t, logger.Core().Enabled(1))   // warn

	_, err = LogConfig{Level: "chatty"}.Build()
	assert.ErrorIs(t, err, ErrInvalid)
}
