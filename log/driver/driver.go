package driver

import (
	"github.com/tableauio/jsonsh/log/core"
)

// refer: https://github.com/go-eden/slf4go/blob/master/slf_model.go

// Driver define the standard log print specification
type Driver interface {
	// Retrieve the name of current driver, like 'zap', 'logrus' ...
	Name() string

	// Print responsible of printing the standard Log
	Print(r *core.Record)

	// Retrieve log level of the driver, it should return the lowest Level
	// that could be print, which can help invoker to decide whether prepare
	// print or not.
	GetLevel() core.Level

	// Sync flushes any buffered log entries.
	Sync() error
}
