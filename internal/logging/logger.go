// Package logging provides structured logging for the browser CLI.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Logger wraps zerolog with the console formatting used across the CLI.
type Logger struct {
	zlog zerolog.Logger
}

// NewLogger creates a console logger writing to w. Colour is enabled only
// when w is a terminal.
func NewLogger(w io.Writer) *Logger {
	l := &Logger{}
	l.SetOutput(w)
	return l
}

// NewDefaultCLILogger creates a logger on stderr; stdout is reserved for
// listings and search results.
func NewDefaultCLILogger() *Logger {
	return NewLogger(os.Stderr)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

// Info returns an info level event.
func (l *Logger) Info() *zerolog.Event {
	return l.zlog.Info()
}

// Error returns an error level event.
func (l *Logger) Error() *zerolog.Event {
	return l.zlog.Error()
}

// Debug returns a debug level event.
func (l *Logger) Debug() *zerolog.Event {
	return l.zlog.Debug()
}

// Warn returns a warn level event.
func (l *Logger) Warn() *zerolog.Event {
	return l.zlog.Warn()
}

// With creates a child context; finish it with Logger() and wrap the
// result with Derive.
func (l *Logger) With() zerolog.Context {
	return l.zlog.With()
}

// Derive wraps a zerolog logger built from With.
func (l *Logger) Derive(z zerolog.Logger) *Logger {
	return &Logger{zlog: z}
}

// Component returns a child logger tagged with a component name.
func (l *Logger) Component(name string) *Logger {
	return l.Derive(l.zlog.With().Str("component", name).Logger())
}

// SetOutput changes the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.zlog = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    !isTerminal(w),
	}).With().Timestamp().Logger()
}

// SetGlobalLevel sets the global log level.
func SetGlobalLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
