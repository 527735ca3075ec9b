package logger

import "codeberg.org/verist/errkit/errchain"

// Logger defines the interface for logging operations.
type Logger interface {
	Debug() *LogEvent
	Info() *LogEvent
	Warn() *LogEvent
	Error() *LogEvent
	ErrorWithChain(f errchain.Factory, c *errchain.Chain) *LogEvent
	Report(f errchain.Factory, level LogLevel, c *errchain.Chain, msg string)
}
