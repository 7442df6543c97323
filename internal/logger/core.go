package logger

import (
	"go.uber.org/zap/zapcore"
)

// StoreCore is a custom Zap Core that intercepts log entries and hands them
// to the async store writer in addition to the wrapped core.
type StoreCore struct {
	zapcore.Core
	writer *StoreLogWriter
}

// NewStoreCore wraps an existing core (like the console logger) and adds
// database logging
func NewStoreCore(baseCore zapcore.Core, writer *StoreLogWriter) zapcore.Core {
	return &StoreCore{
		Core:   baseCore,
		writer: writer,
	}
}

// Write is called for every log entry
func (c *StoreCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	c.writer.AddLog(LogEntry{
		Level:   entry.Level,
		Message: entry.Message,
		Caller:  entry.Caller.Function,
	})

	return c.Core.Write(entry, fields)
}

// Check decides if we should log this level
func (c *StoreCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// With keeps the wrapper around the derived core
func (c *StoreCore) With(fields []zapcore.Field) zapcore.Core {
	return &StoreCore{
		Core:   c.Core.With(fields),
		writer: c.writer,
	}
}
