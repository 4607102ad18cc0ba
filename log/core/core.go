package core

import (
	"fmt"
	"strings"
)

// refer: https://github.com/go-eden/slf4go/blob/master/slf_model.go

type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var levelNames = map[Level]string{
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
}

// CapitalString returns the upper-case name of the level, e.g. "DEBUG".
func (l Level) CapitalString() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

func (l Level) String() string {
	return strings.ToLower(l.CapitalString())
}

// ParseLevel parses a case-insensitive level name.
func ParseLevel(s string) (Level, error) {
	for level, name := range levelNames {
		if strings.EqualFold(s, name) {
			return level, nil
		}
	}
	return DebugLevel, fmt.Errorf("illegal log level: %s", s)
}

// Record represent an log, contains all properties.
type Record struct {
	Level Level

	Format *string
	Args   []any

	KVs []any // additional custom variadic key-value pairs
}

type Mode string

const (
	ModeSimple Mode = "SIMPLE"
	ModeFull   Mode = "FULL"
)

type SinkType int

const (
	SinkConsole SinkType = iota // default
	SinkFile
	SinkMulti
)

var sinkMap = map[string]SinkType{
	"":        SinkConsole,
	"CONSOLE": SinkConsole,
	"FILE":    SinkFile,
	"MULTI":   SinkMulti,
}

func GetSinkType(sink string) (SinkType, error) {
	sinkType, ok := sinkMap[strings.ToUpper(sink)]
	if !ok {
		return SinkConsole, fmt.Errorf("illegal sink: %s", sink)
	}
	return sinkType, nil
}
