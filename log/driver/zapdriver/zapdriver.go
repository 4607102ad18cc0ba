package zapdriver

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tableauio/jsonsh/log/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var modeMap = map[core.Mode]LogModeEncoder{
	core.ModeSimple: getSimpleEncoder,
	core.ModeFull:   getFullEncoder,
}

// ConsoleWriter is where console sinks write. Logs go to stderr so they
// never mix with command output on stdout.
var ConsoleWriter io.Writer = os.Stderr

// NewLogger creates a zap logger writing to the given sink.
func NewLogger(mode, level, filename, sink string) (*zap.Logger, error) {
	sinkType, err := core.GetSinkType(sink)
	if err != nil {
		return nil, err
	}
	modeEncoder, zapLevel, err := getEncoderAndLevel(mode, level)
	if err != nil {
		return nil, err
	}
	var ws zapcore.WriteSyncer
	switch sinkType {
	case core.SinkFile:
		ws, err = createFileWriter(filename)
	case core.SinkMulti:
		var fileSyncer zapcore.WriteSyncer
		fileSyncer, err = createFileWriter(filename)
		ws = zapcore.NewMultiWriteSyncer(createConsoleWriter(), fileSyncer)
	default:
		ws = createConsoleWriter()
	}
	if err != nil {
		return nil, fmt.Errorf("create file logger failed: %s", err)
	}
	zcore := zapcore.NewCore(modeEncoder(), ws, zapLevel)
	return zap.New(zcore, zap.AddCaller(), zap.AddCallerSkip(SkipUntilTrueCaller)), nil
}

func getEncoderAndLevel(mode, level string) (LogModeEncoder, zapcore.Level, error) {
	modeEncoder, ok := modeMap[core.Mode(strings.ToUpper(mode))]
	if !ok {
		return nil, zapcore.DebugLevel, fmt.Errorf("illegal log mode: %s", mode)
	}
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, zapcore.DebugLevel, fmt.Errorf("illegal log level: %s", level)
	}
	return modeEncoder, zapLevel, nil
}

func createConsoleWriter() zapcore.WriteSyncer {
	return zapcore.AddSync(ConsoleWriter)
}

func createFileWriter(filename string) (zapcore.WriteSyncer, error) {
	if filename == "" {
		return nil, fmt.Errorf("log filename is required by file sink")
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   filename,
		MaxSize:    10, // megabytes
		MaxAge:     30, // days
		MaxBackups: 7,
		LocalTime:  true,
	}), nil
}

type LogModeEncoder func() zapcore.Encoder

func getSimpleEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.CallerKey = ""
	encoderConfig.FunctionKey = ""
	encoderConfig.EncodeTime = nil
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.ConsoleSeparator = "|"
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func getFullEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.FunctionKey = "func"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.ConsoleSeparator = "|"
	return zapcore.NewConsoleEncoder(encoderConfig)
}
