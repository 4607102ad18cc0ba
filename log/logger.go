package log

import (
	"github.com/tableauio/jsonsh/log/core"
	"github.com/tableauio/jsonsh/log/driver"
)

// Logger filters records by level and hands them to a driver.
type Logger struct {
	level  core.Level
	driver driver.Driver
}

func NewLogger(drv driver.Driver) *Logger {
	return &Logger{
		level:  drv.GetLevel(),
		driver: drv,
	}
}

func (l *Logger) enabled(level core.Level) bool {
	return l.driver != nil && level >= l.level
}

func (l *Logger) logf(level core.Level, format string, args []any) {
	if !l.enabled(level) {
		return
	}
	l.driver.Print(&core.Record{Level: level, Format: &format, Args: args})
}

func (l *Logger) logw(level core.Level, msg string, kvs []any) {
	if !l.enabled(level) {
		return
	}
	l.driver.Print(&core.Record{Level: level, Format: &msg, KVs: kvs})
}

// Debugf uses fmt.Sprintf to log a templated message.
func (l *Logger) Debugf(format string, args ...any) { l.logf(core.DebugLevel, format, args) }

// Infof uses fmt.Sprintf to log a templated message.
func (l *Logger) Infof(format string, args ...any) { l.logf(core.InfoLevel, format, args) }

// Warnf uses fmt.Sprintf to log a templated message.
func (l *Logger) Warnf(format string, args ...any) { l.logf(core.WarnLevel, format, args) }

// Errorf uses fmt.Sprintf to log a templated message.
func (l *Logger) Errorf(format string, args ...any) { l.logf(core.ErrorLevel, format, args) }

// Debugw logs a message with some additional context. The variadic
// key-value pairs are treated as they are in zap's SugaredLogger.With.
func (l *Logger) Debugw(msg string, keysAndValues ...any) { l.logw(core.DebugLevel, msg, keysAndValues) }

// Infow logs a message with some additional context.
func (l *Logger) Infow(msg string, keysAndValues ...any) { l.logw(core.InfoLevel, msg, keysAndValues) }

// Warnw logs a message with some additional context.
func (l *Logger) Warnw(msg string, keysAndValues ...any) { l.logw(core.WarnLevel, msg, keysAndValues) }

// Errorw logs a message with some additional context.
func (l *Logger) Errorw(msg string, keysAndValues ...any) { l.logw(core.ErrorLevel, msg, keysAndValues) }
