// Package logging is a thin wrapper over slog. The mini-programs talk to
// the user through internal/ui; this logger only records diagnostics for
// the store and the command router, and stays silent unless debug is
// enabled in the config.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the minimal interface the rest of the code depends on.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type slogAdapter struct{ l *slog.Logger }

func (s slogAdapter) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s slogAdapter) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s slogAdapter) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s slogAdapter) Error(msg string, args ...any) { s.l.Error(msg, args...) }

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Nop returns a logger that discards everything.
func Nop() Logger { return nopLogger{} }

// New returns a debug logger writing to ~/.kata/debug.log, or a nop
// logger when debug is off or the file cannot be opened. Log output must
// not reach the terminal: it would tear the Bubble Tea views.
func New(debug bool) Logger {
	if !debug {
		return Nop()
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Nop()
	}
	dir := filepath.Join(home, ".kata")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return Nop()
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return Nop()
	}
	return NewWriter(f)
}

// NewWriter builds a debug-level text logger on an arbitrary writer.
func NewWriter(w io.Writer) Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slogAdapter{l: slog.New(h)}
}
