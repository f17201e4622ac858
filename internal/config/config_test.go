package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // no config file, no surprises

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Guess.Min)
	assert.Equal(t, 100, cfg.Guess.Max)
	assert.Equal(t, 0, cfg.Guess.MaxAttempts)
	assert.Equal(t, 0.0, cfg.Grades.Min)
	assert.Equal(t, 100.0, cfg.Grades.Max)
	assert.Equal(t, 12, cfg.Password.Length)
	assert.Equal(t, "luds", cfg.Password.Classes)
	assert.Equal(t, "classic", cfg.UI.Theme)
	assert.False(t, cfg.Debug)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("KATA_GUESS_MAX", "50")
	t.Setenv("KATA_PASSWORD_LENGTH", "20")
	t.Setenv("KATA_THEME", "neon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Guess.Max)
	assert.Equal(t, 20, cfg.Password.Length)
	assert.Equal(t, "neon", cfg.UI.Theme)
}

func TestLoadConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".kata")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(
		"guess:\n  min: 1\n  max: 10\ngrades:\n  max: 20\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Guess.Max)
	assert.Equal(t, 20.0, cfg.Grades.Max)
}

func TestNormalizeRepairsBrokenRanges(t *testing.T) {
	cfg := Config{
		Guess:    GuessConfig{Min: 50, Max: 10, MaxAttempts: -1},
		Grades:   GradesConfig{Min: 90, Max: 10},
		Password: PasswordConfig{Length: -5},
	}
	cfg.normalize()

	assert.Equal(t, 1, cfg.Guess.Min)
	assert.Equal(t, 100, cfg.Guess.Max)
	assert.Equal(t, 0, cfg.Guess.MaxAttempts)
	assert.Equal(t, 0.0, cfg.Grades.Min)
	assert.Equal(t, 100.0, cfg.Grades.Max)
	assert.Equal(t, 12, cfg.Password.Length)
	assert.Equal(t, "luds", cfg.Password.Classes)
}
