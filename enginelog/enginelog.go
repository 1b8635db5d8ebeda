// Package enginelog is a thin zerolog wrapper around an optional progress
// side channel with no back-pressure semantics. No engine package depends
// on it directly; cmd/hypercore wires it in around each engine's update
// loop so the core maintenance logic stays free of logging concerns.
package enginelog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger reports engine progress as structured events. A nil *Logger is
// valid and silently discards every call, so callers that don't want
// logging can simply pass nil through instead of branching.
type Logger struct {
	log zerolog.Logger
}

// New returns a Logger writing to w at the given level. A nil w defaults to
// os.Stderr.
func New(w io.Writer, level zerolog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{log: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// Progress reports that engine has processed n updates so far.
func (l *Logger) Progress(engine string, n int) {
	if l == nil {
		return
	}
	l.log.Info().Str("engine", engine).Int("updates", n).Msg("progress")
}

// Event logs msg at info level with the given structured fields attached.
func (l *Logger) Event(msg string, fields map[string]any) {
	if l == nil {
		return
	}
	ev := l.log.Info()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

// Error logs err at error level, tagged with the engine name.
func (l *Logger) Error(engine string, err error) {
	if l == nil {
		return
	}
	l.log.Error().Str("engine", engine).Err(err).Msg("engine error")
}
