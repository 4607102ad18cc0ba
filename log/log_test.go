package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tableauio/jsonsh/log/core"
	"github.com/tableauio/jsonsh/log/driver/zapdriver"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, level core.Level) *observer.ObservedLogs {
	t.Helper()
	zcore, logs := observer.New(zapcore.DebugLevel)
	prev := defaultLogger
	t.Cleanup(func() { defaultLogger = prev })
	SetDriver(zapdriver.NewWithLogger(level, zap.New(zcore)))
	return logs
}

func Test_logs(t *testing.T) {
	logs := observe(t, core.DebugLevel)

	Debugf("count: %d", 1)
	Infof("count: %d", 2)
	Warnf("count: %d", 3)
	Errorf("count: %d", 4)
	Infow("saved", "file", "a.json", "bytes", 10)

	entries := logs.AllUntimed()
	require.Len(t, entries, 5)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "count: 1", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "count: 4", entries[3].Message)
	assert.Equal(t, "saved", entries[4].Message)
	assert.Equal(t, map[string]any{"file": "a.json", "bytes": int64(10)}, entries[4].ContextMap())
}

func TestLevelFilter(t *testing.T) {
	logs := observe(t, core.WarnLevel)

	Debugf("hidden")
	Infow("hidden", "k", "v")
	Warnf("shown")
	Errorw("shown", "k", "v")

	assert.Equal(t, 2, logs.Len())
	assert.Equal(t, "WARN", Level())
}

func TestInit(t *testing.T) {
	prev := defaultLogger
	t.Cleanup(func() { defaultLogger = prev })

	require.NoError(t, Init(&Options{Mode: "FULL", Level: "DEBUG", Sink: "CONSOLE"}))
	assert.Equal(t, "DEBUG", Level())

	require.NoError(t, Init(nil))
	assert.Equal(t, "INFO", Level())

	assert.Error(t, Init(&Options{Mode: "SIMPLE", Level: "LOUD"}))
	assert.Error(t, Init(&Options{Mode: "PLAIN", Level: "INFO"}))
	assert.Error(t, Init(&Options{Mode: "SIMPLE", Level: "INFO", Sink: "SYSLOG"}))
	assert.Error(t, Init(&Options{Mode: "SIMPLE", Level: "INFO", Sink: "FILE"}))
}

func TestInit_FileSink(t *testing.T) {
	prev := defaultLogger
	t.Cleanup(func() { defaultLogger = prev })

	filename := filepath.Join(t.TempDir(), "jsonsh.log")
	require.NoError(t, Init(&Options{Mode: "SIMPLE", Level: "INFO", Filename: filename, Sink: "FILE"}))
	Infof("document %s loaded", "a.json")
	Debugf("not written")

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(content), "document a.json loaded")
	assert.NotContains(t, string(content), "not written")
}

func TestInit_ConsoleWriter(t *testing.T) {
	prev, prevWriter := defaultLogger, zapdriver.ConsoleWriter
	t.Cleanup(func() {
		defaultLogger = prev
		zapdriver.ConsoleWriter = prevWriter
	})

	buf := new(bytes.Buffer)
	zapdriver.ConsoleWriter = buf
	require.NoError(t, Init(&Options{Mode: "SIMPLE", Level: "INFO"}))
	Warnf("location %s no longer resolves", "/a/b")
	assert.Equal(t, "WARN|location /a/b no longer resolves\n", buf.String())
}
