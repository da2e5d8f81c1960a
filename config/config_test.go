package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/tetrus/config"
	"github.com/plus3/tetrus/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert.Equal(t, config.Defaults(), s)
	assert.Equal(t, time.Second/30, s.FrameInterval())

	cfg, err := s.SessionConfig()
	require.NoError(t, err)
	assert.Equal(t, tetris.DefaultGravityInterval, cfg.GravityInterval)
	assert.Equal(t, tetris.DefaultRotateDebounce, cfg.RotateDebounce)
	assert.IsType(t, &tetris.UniformRandomizer{}, cfg.Randomizer)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetrus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
gravity: 500ms
rotate-debounce: 50ms
randomizer: bag
seed: 99
tps: 60
`), 0o644))

	s, err := config.Load(config.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, s.Gravity)
	assert.Equal(t, 50*time.Millisecond, s.RotateDebounce)
	assert.Equal(t, config.RandomizerBag, s.Randomizer)
	assert.Equal(t, uint64(99), s.Seed)
	assert.Equal(t, 60, s.TPS)
	assert.Equal(t, tetris.DefaultSpawnColumn, s.SpawnColumn)

	cfg, err := s.SessionConfig()
	require.NoError(t, err)
	assert.IsType(t, &tetris.BagRandomizer{}, cfg.Randomizer)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(config.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("TETRUS_GRAVITY", "250ms")
	t.Setenv("TETRUS_SPAWN_COLUMN", "3")

	s, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, s.Gravity)
	assert.Equal(t, 3, s.SpawnColumn)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Settings)
		wantErr error
	}{
		{"unknown randomizer", func(s *config.Settings) { s.Randomizer = "fair-dice" }, config.ErrUnknownRandomizer},
		{"zero tps", func(s *config.Settings) { s.TPS = 0 }, tetris.ErrInvalidConfig},
		{"zero cell size", func(s *config.Settings) { s.CellSize = 0 }, tetris.ErrInvalidConfig},
		{"zero gravity", func(s *config.Settings) { s.Gravity = 0 }, tetris.ErrInvalidConfig},
		{"spawn column off grid", func(s *config.Settings) { s.SpawnColumn = tetris.Columns }, tetris.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := config.Defaults()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), tt.wantErr)
		})
	}
}

func TestSeededSessionsAreReproducible(t *testing.T) {
	s := config.Defaults()
	s.Seed = 1234

	draw := func() []tetris.Kind {
		cfg, err := s.SessionConfig()
		require.NoError(t, err)
		out := make([]tetris.Kind, 20)
		for i := range out {
			out[i] = cfg.Randomizer.Next()
		}
		return out
	}

	assert.Equal(t, draw(), draw())
}
