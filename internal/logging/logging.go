// Package logging wraps zerolog behind a small surface the rest of the
// pipeline depends on, so packages don't each import zerolog directly and
// the ambient logging policy (level, output format) lives in one place.
//
// This replaces the original implementation's HOPPE_LOG macro (a
// compile-time printf switch, see original_source/hoppe/Hoppe.hpp) with
// structured, leveled logging: info for normal progress, warn for the
// recoverable conditions spec.md §7 calls out (degenerate neighborhoods,
// disconnected orientation graphs). Out-of-support SDF queries are not logged.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger exposing the handful of
// call shapes the pipeline needs.
type Logger struct {
	z zerolog.Logger
}

// New returns a Logger writing human-readable console output to w at the
// given minimum level. Pass zerolog.Disabled to silence all output (used
// by benchmarks and by tests that don't want pipeline chatter).
func New(w io.Writer, level zerolog.Level) *Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	z := zerolog.New(console).Level(level).With().Timestamp().Logger()
	return &Logger{z: z}
}

// Default returns a Logger writing to stderr at info level, suitable for
// the CLI's default behavior.
func Default() *Logger {
	return New(os.Stderr, zerolog.InfoLevel)
}

var (
	noop     *Logger
	noopOnce sync.Once
)

// Noop returns a Logger that discards everything, for callers (tests,
// library embedders) that don't want console output.
func Noop() *Logger {
	noopOnce.Do(func() {
		noop = New(io.Discard, zerolog.Disabled)
	})
	return noop
}

// Infof logs a formatted message at info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.z.Info().Msgf(format, args...)
}

// Warnf logs a formatted message at warn level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.z.Warn().Msgf(format, args...)
}

// Errorf logs a formatted message at error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.z.Error().Msgf(format, args...)
}

// WithField returns a Logger with one structured field attached to every
// subsequent message, for contexts (e.g. worker ids) that recur across a
// burst of log lines.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{z: l.z.With().Interface(key, value).Logger()}
}
