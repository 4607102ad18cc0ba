// Package log is the leveled logger of jsonsh. Records are printed by a
// zap driver to the console (stderr), to rotated files, or to both.
package log

import (
	"github.com/tableauio/jsonsh/log/driver"
	"github.com/tableauio/jsonsh/log/driver/zapdriver"
)

var defaultLogger *Logger

func init() {
	opts := NewDefault()
	drv, err := zapdriver.New(opts.Mode, opts.Level, opts.Filename, opts.Sink)
	if err != nil {
		panic(err)
	}
	defaultLogger = NewLogger(drv)
}

// Init set the log options.
func Init(opts *Options) error {
	if opts == nil {
		opts = NewDefault()
	}
	drv, err := zapdriver.New(opts.Mode, opts.Level, opts.Filename, opts.Sink)
	if err != nil {
		return err
	}
	SetDriver(drv)
	return nil
}

// SetDriver replaces the driver of the default logger.
func SetDriver(drv driver.Driver) {
	defaultLogger = NewLogger(drv)
}

// Level returns the upper-case name of the current level, e.g. "INFO".
func Level() string {
	return defaultLogger.level.CapitalString()
}

// Sync flushes any buffered log entries.
func Sync() error {
	return defaultLogger.driver.Sync()
}

func Debugf(format string, args ...any) { defaultLogger.Debugf(format, args...) }
func Infof(format string, args ...any)  { defaultLogger.Infof(format, args...) }
func Warnf(format string, args ...any)  { defaultLogger.Warnf(format, args...) }
func Errorf(format string, args ...any) { defaultLogger.Errorf(format, args...) }

func Debugw(msg string, keysAndValues ...any) { defaultLogger.Debugw(msg, keysAndValues...) }
func Infow(msg string, keysAndValues ...any)  { defaultLogger.Infow(msg, keysAndValues...) }
func Warnw(msg string, keysAndValues ...any)  { defaultLogger.Warnw(msg, keysAndValues...) }
func Errorw(msg string, keysAndValues ...any) { defaultLogger.Errorw(msg, keysAndValues...) }
