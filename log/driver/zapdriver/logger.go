package zapdriver

import (
	"github.com/tableauio/jsonsh/log/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapDriver struct {
	logger *zap.Logger
	level  core.Level
}

// SkipUntilTrueCaller is the skip level which prints out the actual caller
// instead of the log package wrappers.
const SkipUntilTrueCaller = 3

// New creates a driver over a logger built by NewLogger.
func New(mode, level, filename, sink string) (*ZapDriver, error) {
	logger, err := NewLogger(mode, level, filename, sink)
	if err != nil {
		return nil, err
	}
	lvl, err := core.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return NewWithLogger(lvl, logger), nil
}

func NewWithLogger(level core.Level, logger *zap.Logger) *ZapDriver {
	return &ZapDriver{
		logger: logger,
		level:  level,
	}
}

func (*ZapDriver) Name() string {
	return "zap"
}

func (d *ZapDriver) Print(r *core.Record) {
	sugar := d.logger.Sugar()
	if len(r.KVs) != 0 {
		msg := ""
		if r.Format != nil {
			msg = *r.Format
		}
		sugar.Logw(toZapLevel(r.Level), msg, r.KVs...)
		return
	}
	if r.Format == nil {
		sugar.Log(toZapLevel(r.Level), r.Args...)
		return
	}
	sugar.Logf(toZapLevel(r.Level), *r.Format, r.Args...)
}

func (d *ZapDriver) GetLevel() core.Level {
	return d.level
}

func (d *ZapDriver) Sync() error {
	return d.logger.Sync()
}

func toZapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
