package log

type Options struct {
	// Log mode: SIMPLE, FULL.
	//
	// Default: "SIMPLE".
	Mode string `yaml:"mode"`
	// Log level: DEBUG, INFO, WARN, ERROR.
	//
	// Default: "INFO".
	Level string `yaml:"level"`
	// Log filename: set this if you want to write log messages to files.
	//
	// Default: "".
	Filename string `yaml:"filename"`
	// Log sink: CONSOLE, FILE, and MULTI.
	//
	// Default: "CONSOLE".
	Sink string `yaml:"sink"`
}

// NewDefault returns the default log options.
func NewDefault() *Options {
	return &Options{
		Mode:  "SIMPLE",
		Level: "INFO",
		Sink:  "CONSOLE",
	}
}
