package main

import (
	"os"

	"github.com/plus3/tetrus/config"
	"github.com/plus3/tetrus/tetris"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	settings   = config.New()
	configPath string
)

var rootCmd = &cobra.Command{
	Use:          "tetrus",
	Short:        "Falling-block puzzle game",
	Long:         "tetrus runs the falling-block puzzle engine in a window, in the terminal, or headless as a benchmark.",
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to a config file (yaml, json or toml)")
	flags.Duration(config.KeyGravity, tetris.DefaultGravityInterval, "time between gravity drops")
	flags.Duration(config.KeyRotateDebounce, tetris.DefaultRotateDebounce, "minimum time between two rotations")
	flags.Int(config.KeySpawnColumn, tetris.DefaultSpawnColumn, "anchor column of new pieces")
	flags.String(config.KeyRandomizer, config.RandomizerUniform, "piece randomizer: uniform or bag")
	flags.Uint64(config.KeySeed, 0, "randomizer seed (0 seeds from the clock)")
	flags.Int(config.KeyTPS, config.Defaults().TPS, "ticks per second")
	flags.Int(config.KeyCellSize, config.Defaults().CellSize, "cell size in pixels (window only)")

	if err := settings.BindPFlags(flags); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(playCmd, termCmd, benchCmd)
}

func bindFlag(v *viper.Viper, cmd *cobra.Command, key string) {
	if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
		panic(err)
	}
}

func loadSettings() (config.Settings, error) {
	return config.Load(settings, configPath)
}

// newSession builds a session from s and logs every lock to the console.
func newSession(s config.Settings) (*tetris.Session, error) {
	cfg, err := s.SessionConfig()
	if err != nil {
		return nil, err
	}
	session, err := tetris.NewSession(cfg)
	if err != nil {
		return nil, err
	}
	session.OnLock(logLock)
	return session, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
