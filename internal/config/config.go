package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds every tunable the mini-programs read. All fields have
// working defaults; a config file is never required.
type Config struct {
	Guess    GuessConfig
	Grades   GradesConfig
	Password PasswordConfig
	UI       UIConfig
	Debug    bool
}

type GuessConfig struct {
	Min         int
	Max         int
	MaxAttempts int // 0 means unlimited
}

type GradesConfig struct {
	Min float64
	Max float64
}

type PasswordConfig struct {
	Length  int
	Classes string // subset of "luds": lower, upper, digits, symbols
}

type UIConfig struct {
	Theme   string
	NoColor bool
}

// Load reads defaults, then ~/.kata/config.yaml if present, then KATA_*
// environment variables.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".kata"))
	}
	v.SetEnvPrefix("KATA")
	v.AutomaticEnv()

	v.SetDefault("guess.min", 1)
	v.SetDefault("guess.max", 100)
	v.SetDefault("guess.max_attempts", 0)
	v.SetDefault("grades.min", 0.0)
	v.SetDefault("grades.max", 100.0)
	v.SetDefault("password.length", 12)
	v.SetDefault("password.classes", "luds")
	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.no_color", false)
	v.SetDefault("debug", false)

	v.BindEnv("guess.min", "KATA_GUESS_MIN")
	v.BindEnv("guess.max", "KATA_GUESS_MAX")
	v.BindEnv("guess.max_attempts", "KATA_GUESS_MAX_ATTEMPTS")
	v.BindEnv("grades.min", "KATA_GRADES_MIN")
	v.BindEnv("grades.max", "KATA_GRADES_MAX")
	v.BindEnv("password.length", "KATA_PASSWORD_LENGTH")
	v.BindEnv("password.classes", "KATA_PASSWORD_CLASSES")
	v.BindEnv("ui.theme", "KATA_THEME")
	v.BindEnv("ui.no_color", "KATA_NO_COLOR")
	v.BindEnv("debug", "KATA_DEBUG")

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Guess: GuessConfig{
			Min:         v.GetInt("guess.min"),
			Max:         v.GetInt("guess.max"),
			MaxAttempts: v.GetInt("guess.max_attempts"),
		},
		Grades: GradesConfig{
			Min: v.GetFloat64("grades.min"),
			Max: v.GetFloat64("grades.max"),
		},
		Password: PasswordConfig{
			Length:  v.GetInt("password.length"),
			Classes: v.GetString("password.classes"),
		},
		UI: UIConfig{
			Theme:   v.GetString("ui.theme"),
			NoColor: v.GetBool("ui.no_color"),
		},
		Debug: v.GetBool("debug"),
	}
	cfg.normalize()
	return cfg, nil
}

// normalize repairs inverted or nonsensical ranges instead of failing;
// a broken config file should not lock the user out of the tools.
func (c *Config) normalize() {
	if c.Guess.Min >= c.Guess.Max {
		c.Guess.Min, c.Guess.Max = 1, 100
	}
	if c.Guess.MaxAttempts < 0 {
		c.Guess.MaxAttempts = 0
	}
	if c.Grades.Min >= c.Grades.Max {
		c.Grades.Min, c.Grades.Max = 0, 100
	}
	if c.Password.Length <= 0 {
		c.Password.Length = 12
	}
	if c.Password.Classes == "" {
		c.Password.Classes = "luds"
	}
}
