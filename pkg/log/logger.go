// Package log wraps zerolog with process-wide event constructors.
package log

import (
	"io"
	stdlog "log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var (
	logger     = zerolog.New(os.Stderr).Level(zerolog.WarnLevel).With().Timestamp().Logger()
	loggerLock sync.RWMutex
)

// Configure replaces the process logger. Output goes to stderr, as a console
// stream when stderr is a terminal and JSON lines otherwise.
func Configure(levelStr string) {
	var output io.Writer = os.Stderr
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}
	SetOutput(output, levelStr)
}

// SetOutput points the logger at w with the given level. Tests use it to
// capture log lines.
func SetOutput(w io.Writer, levelStr string) {
	loggerLock.Lock()
	defer loggerLock.Unlock()
	logger = zerolog.New(w).
		Level(parseLogLevel(levelStr)).
		With().
		Timestamp().
		Logger()
}

// SetLevel sets the log level at runtime.
func SetLevel(levelStr string) {
	loggerLock.Lock()
	logger = logger.Level(parseLogLevel(levelStr))
	loggerLock.Unlock()
}

func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "", "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

func current() *zerolog.Logger {
	loggerLock.RLock()
	defer loggerLock.RUnlock()
	l := logger
	return &l
}

// Debug starts a debug level event.
func Debug() *zerolog.Event {
	return current().Debug()
}

// Info starts an info level event.
func Info() *zerolog.Event {
	return current().Info()
}

// Warn starts a warning level event.
func Warn() *zerolog.Event {
	return current().Warn()
}

// Error starts an error level event.
func Error() *zerolog.Event {
	return current().Error()
}

// Logger returns a copy of the underlying logger.
func Logger() zerolog.Logger {
	return *current()
}

// StdLogger returns a stdlib logger writing through zerolog at warn level.
// The MCP HTTP server uses it for its ErrorLog.
func StdLogger() *stdlog.Logger {
	return stdlog.New(zerologWriter{logger: Logger()}, "", 0)
}

type zerologWriter struct {
	logger zerolog.Logger
}

func (w zerologWriter) Write(p []byte) (int, error) {
	w.logger.Warn().Msg(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
