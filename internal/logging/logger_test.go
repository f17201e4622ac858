package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWriterLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf)
	log.Debug("store load", "items", 3)

	out := buf.String()
	assert.Contains(t, out, "store load")
	assert.Contains(t, out, "items=3")
}

func TestNopLoggerIsSilent(t *testing.T) {
	// must not panic, must not write anywhere
	log := Nop()
	log.Debug("x")
	log.Info("x")
	log.Warn("x")
	log.Error("x")
}

func TestNewDisabled(t *testing.T) {
	assert.Equal(t, Nop(), New(false))
}
