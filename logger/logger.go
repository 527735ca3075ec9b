package logger

import (
	"io"
	"os"
	"time"

	"codeberg.org/verist/errkit/errchain"
	"github.com/rs/zerolog"
)

// Disabled until Init or InitWriter is called.
var log = zerolog.Nop()

type LogLevel int8

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

type LogEvent struct {
	*zerolog.Event
}

func (e *LogEvent) Msg(msg string) {
	e.Event.Msg(msg)
}

func (e *LogEvent) Send() {
	e.Event.Send()
}

// Init initializes the logger at the given level, writing to stderr
func Init(level LogLevel) {
	InitWriter(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}, level)
}

// InitWriter initializes the logger with a custom writer
func InitWriter(w io.Writer, level LogLevel) {
	log = zerolog.New(w).With().Timestamp().Logger()
	SetLogLevel(level)
}

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	zerolog.SetGlobalLevel(zerolog.Level(level))
}

// ParseLevel maps a configured level name to a LogLevel
func ParseLevel(name string) LogLevel {
	switch name {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Debug logs a debug message
func Debug() *LogEvent {
	return &LogEvent{log.Debug()}
}

// Info logs an info message
func Info() *LogEvent {
	return &LogEvent{log.Info()}
}

// Warn logs a warning message
func Warn() *LogEvent {
	return &LogEvent{log.Warn()}
}

// Error logs an error message
func Error() *LogEvent {
	return &LogEvent{log.Error()}
}

// Fatal logs a fatal message and exits the program
func Fatal() *LogEvent {
	return &LogEvent{log.Fatal()}
}

// ErrorWithChain logs an error message with the rendered failure chain
func ErrorWithChain(f errchain.Factory, c *errchain.Chain) *LogEvent {
	return &LogEvent{log.Error().
		Str("error_code", string(c.Code())).
		Int("cause_depth", c.Depth()).
		Str("error_chain", f.Render(c))}
}

// Report logs a KO chain at the given level and releases it. OK chains are
// released without producing a log line. The chain must not be used after
// reporting.
func Report(f errchain.Factory, level LogLevel, c *errchain.Chain, msg string) {
	defer f.Release(c)

	if f.Classify(c) == errchain.ClassOK {
		return
	}

	log.WithLevel(zerolog.Level(level)).
		Str("error_code", string(c.Code())).
		Int("cause_depth", c.Depth()).
		Str("error_chain", f.Render(c)).
		Msg(msg)
}
