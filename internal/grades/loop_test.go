package grades

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/kata/internal/ui"
)

func runScript(t *testing.T, script string) string {
	t.Helper()
	ui.SetTheme("mono")
	var out bytes.Buffer
	err := RunLoop(strings.NewReader(script), &out, 0, 100)
	require.NoError(t, err)
	return out.String()
}

func TestLoopRecordsAndAverages(t *testing.T) {
	out := runScript(t, "add Ana 90\nadd Ana 80\navg Ana\nquit\n")

	assert.Contains(t, out, "recorded 90 for Ana")
	assert.Contains(t, out, "Ana: 85.0")
}

func TestLoopRejectsBadScores(t *testing.T) {
	out := runScript(t, "add Ana 150\nadd Ana pizza\navg Ana\nquit\n")

	assert.Contains(t, out, "score out of range")
	assert.Contains(t, out, "not a number: pizza")
	assert.Contains(t, out, "unknown student")
}

func TestLoopMultiWordNames(t *testing.T) {
	out := runScript(t, "add Ana Maria 90\navg Ana Maria\nquit\n")
	assert.Contains(t, out, "Ana Maria: 90.0")
}

func TestLoopStatsAndReport(t *testing.T) {
	out := runScript(t, "stats\nadd Ana 70\nadd Bob 90\nstats\nreport\nquit\n")

	assert.Contains(t, out, "no data")
	assert.Contains(t, out, "min:    70.0")
	assert.Contains(t, out, "max:    90.0")
	assert.Contains(t, out, "mean:   80.0")
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "Bob")
}

func TestLoopUnknownCommand(t *testing.T) {
	out := runScript(t, "frobnicate\nquit\n")
	assert.Contains(t, out, "unknown command: frobnicate")
}
