// Package config loads game and frontend settings from defaults, an
// optional config file, TETRUS_* environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/plus3/tetrus/tetris"
	"github.com/spf13/viper"
)

const EnvPrefix = "TETRUS"

// Setting keys. Flags bound to a Viper instance must use the same names.
const (
	KeyGravity        = "gravity"
	KeyRotateDebounce = "rotate-debounce"
	KeySpawnColumn    = "spawn-column"
	KeyRandomizer     = "randomizer"
	KeySeed           = "seed"
	KeyTPS            = "tps"
	KeyCellSize       = "cell-size"
	KeyDebug          = "debug"
)

const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

var ErrUnknownRandomizer = errors.New("unknown randomizer")

// Settings is the flattened configuration shared by every frontend.
type Settings struct {
	Gravity        time.Duration `mapstructure:"gravity"`
	RotateDebounce time.Duration `mapstructure:"rotate-debounce"`
	SpawnColumn    int           `mapstructure:"spawn-column"`
	Randomizer     string        `mapstructure:"randomizer"`
	// Seed of the piece randomizer; 0 seeds from the clock.
	Seed uint64 `mapstructure:"seed"`

	// TPS is the frame rate of the frontend loop.
	TPS      int  `mapstructure:"tps"`
	CellSize int  `mapstructure:"cell-size"`
	Debug    bool `mapstructure:"debug"`
}

// Defaults returns the reference settings.
func Defaults() Settings {
	return Settings{
		Gravity:        tetris.DefaultGravityInterval,
		RotateDebounce: tetris.DefaultRotateDebounce,
		SpawnColumn:    tetris.DefaultSpawnColumn,
		Randomizer:     RandomizerUniform,
		TPS:            30,
		CellSize:       30,
	}
}

// New returns a Viper instance primed with defaults and environment
// lookup.
func New() *viper.Viper {
	v := viper.New()

	d := Defaults()
	v.SetDefault(KeyGravity, d.Gravity)
	v.SetDefault(KeyRotateDebounce, d.RotateDebounce)
	v.SetDefault(KeySpawnColumn, d.SpawnColumn)
	v.SetDefault(KeyRandomizer, d.Randomizer)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyTPS, d.TPS)
	v.SetDefault(KeyCellSize, d.CellSize)
	v.SetDefault(KeyDebug, d.Debug)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path into v and decodes the
// merged result. The file format follows the extension.
func Load(v *viper.Viper, path string) (Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) Validate() error {
	if s.TPS <= 0 {
		return fmt.Errorf("%w: tps must be positive, got %d", tetris.ErrInvalidConfig, s.TPS)
	}
	if s.CellSize <= 0 {
		return fmt.Errorf("%w: cell size must be positive, got %d", tetris.ErrInvalidConfig, s.CellSize)
	}
	if _, err := s.newRandomizer(1); err != nil {
		return err
	}
	return s.session(nil).Validate()
}

// FrameInterval is the wall-clock length of one frontend tick.
func (s Settings) FrameInterval() time.Duration {
	return time.Second / time.Duration(s.TPS)
}

// SessionConfig builds the engine configuration. A zero Seed is replaced
// by the current time.
func (s Settings) SessionConfig() (tetris.Config, error) {
	seed := s.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	r, err := s.newRandomizer(seed)
	if err != nil {
		return tetris.Config{}, err
	}
	cfg := s.session(r)
	return cfg, cfg.Validate()
}

func (s Settings) session(r tetris.Randomizer) tetris.Config {
	return tetris.Config{
		GravityInterval: s.Gravity,
		RotateDebounce:  s.RotateDebounce,
		SpawnColumn:     s.SpawnColumn,
		Randomizer:      r,
	}
}

func (s Settings) newRandomizer(seed uint64) (tetris.Randomizer, error) {
	switch strings.ToLower(s.Randomizer) {
	case RandomizerUniform, "":
		return tetris.NewUniformRandomizer(seed), nil
	case RandomizerBag:
		return tetris.NewBagRandomizer(seed), nil
	default:
		return nil, fmt.Errorf("%w %q (want %s or %s)", ErrUnknownRandomizer, s.Randomizer, RandomizerUniform, RandomizerBag)
	}
}
