package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/kata/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		Guess:    config.GuessConfig{Min: 1, Max: 100},
		Grades:   config.GradesConfig{Min: 0, Max: 100},
		Password: config.PasswordConfig{Length: 12, Classes: "luds"},
	}
}

func TestRunUsageErrors(t *testing.T) {
	cfg := testConfig()

	assert.Equal(t, 2, Run(nil, cfg))
	assert.Equal(t, 2, Run([]string{"bogus"}, cfg))
	assert.Equal(t, 2, Run([]string{"todo"}, cfg))
	assert.Equal(t, 2, Run([]string{"todo", "frob"}, cfg))
	assert.Equal(t, 2, Run([]string{"todo", "add"}, cfg))
	assert.Equal(t, 2, Run([]string{"todo", "done", "x"}, cfg))
	assert.Equal(t, 0, Run([]string{"help"}, cfg))
}

func TestRunPasswd(t *testing.T) {
	cfg := testConfig()

	assert.Equal(t, 0, Run([]string{"passwd", "-n", "8", "-classes", "d"}, cfg))
	assert.Equal(t, 2, Run([]string{"passwd", "-n", "0"}, cfg))
	assert.Equal(t, 2, Run([]string{"passwd", "-classes", "zz"}, cfg))
	assert.Equal(t, 0, Run([]string{"passwd", "-check", "Abcdef1!"}, cfg))
}

func TestRunTodoCRUD(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg := testConfig()

	require.Equal(t, 0, Run([]string{"todo", "add", "buy", "milk"}, cfg))
	require.Equal(t, 0, Run([]string{"todo", "done", "1"}, cfg))
	require.Equal(t, 2, Run([]string{"todo", "done", "5"}, cfg))
	require.Equal(t, 0, Run([]string{"todo", "rm", "1"}, cfg))
	require.Equal(t, 2, Run([]string{"todo", "rm", "1"}, cfg))

	wd, err := os.Getwd()
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(wd, "todos.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}
