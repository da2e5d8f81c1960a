package tetris

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultGravityInterval = time.Second
	DefaultRotateDebounce  = 100 * time.Millisecond
	DefaultSpawnColumn     = 4
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config tunes a Session.
type Config struct {
	// GravityInterval is how long a piece rests on a row before falling
	// one row on its own.
	GravityInterval time.Duration
	// RotateDebounce is the minimum time between two accepted rotations.
	RotateDebounce time.Duration
	// SpawnColumn is the anchor column of every new piece.
	SpawnColumn int
	// Randomizer picks new pieces. Nil selects a time-seeded uniform
	// randomizer.
	Randomizer Randomizer
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		GravityInterval: DefaultGravityInterval,
		RotateDebounce:  DefaultRotateDebounce,
		SpawnColumn:     DefaultSpawnColumn,
	}
}

func (c Config) Validate() error {
	if c.GravityInterval <= 0 {
		return fmt.Errorf("%w: gravity interval must be positive, got %s", ErrInvalidConfig, c.GravityInterval)
	}
	if c.RotateDebounce < 0 {
		return fmt.Errorf("%w: rotate debounce must not be negative, got %s", ErrInvalidConfig, c.RotateDebounce)
	}
	// The widest footprint is four columns.
	if c.SpawnColumn < 0 || c.SpawnColumn > Columns-4 {
		return fmt.Errorf("%w: spawn column %d outside [0, %d]", ErrInvalidConfig, c.SpawnColumn, Columns-4)
	}
	return nil
}
