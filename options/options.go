package options

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/tableauio/jsonsh/format"
	"github.com/tableauio/jsonsh/log"
	"github.com/tableauio/jsonsh/xerrors"
	"gopkg.in/yaml.v3"
)

// Options is the wrapper of jsonsh params.
// Options follow the design of Functional Options (https://github.com/tmrts/go-patterns/blob/master/idiom/functional-options.md).
type Options struct {
	Log    *log.Options  `yaml:"log"`    // Log options.
	Store  *StoreOption  `yaml:"store"`  // Document save options.
	Export *ExportOption `yaml:"export"` // Export options.
	Shell  *ShellOption  `yaml:"shell"`  // Interactive shell options.
}

type StoreOption struct {
	// Indent the saved document, one element per line.
	//
	// Default: false.
	Pretty bool `yaml:"pretty"`
	// Indent string used when Pretty is set.
	//
	// Default: "    " (four spaces).
	Indent string `yaml:"indent"`
}

type ExportOption struct {
	// Formats exported when the session exits: json, yaml, xml, xlsx, bin, txt.
	//
	// Default: nil.
	Formats []format.Format `yaml:"formats"`
	// Directory the exported files are written to.
	//
	// Default: ".".
	Outdir string `yaml:"outdir"`
}

// Prompt display modes.
const (
	ShowPromptAuto   = "auto"   // show the prompt only on an interactive terminal
	ShowPromptAlways = "always" // always show the prompt
	ShowPromptNever  = "never"  // never show the prompt
)

type ShellOption struct {
	// Prompt printed before each command line.
	//
	// Default: "> ".
	Prompt string `yaml:"prompt"`
	// When to print the prompt: auto, always, never.
	//
	// Default: "auto".
	ShowPrompt string `yaml:"showPrompt"`
}

// Option is the functional option type.
type Option func(*Options)

// Log sets log options.
func Log(o *log.Options) Option {
	return func(opts *Options) {
		opts.Log = o
	}
}

// Store sets document save options.
func Store(o *StoreOption) Option {
	return func(opts *Options) {
		opts.Store = o
	}
}

// Pretty sets whether the saved document is indented.
func Pretty(v bool) Option {
	return func(opts *Options) {
		opts.Store.Pretty = v
	}
}

// Export sets export options.
func Export(o *ExportOption) Option {
	return func(opts *Options) {
		opts.Export = o
	}
}

// Shell sets interactive shell options.
func Shell(o *ShellOption) Option {
	return func(opts *Options) {
		opts.Shell = o
	}
}

// NewDefault returns a default Options.
func NewDefault() *Options {
	return &Options{
		Log: log.NewDefault(),
		Store: &StoreOption{
			Indent: "    ",
		},
		Export: &ExportOption{
			Outdir: ".",
		},
		Shell: &ShellOption{
			Prompt:     "> ",
			ShowPrompt: ShowPromptAuto,
		},
	}
}

// ParseOptions parses functional options and merge them to default Options.
func ParseOptions(setters ...Option) *Options {
	// Default Options
	opts := NewDefault()
	for _, setter := range setters {
		setter(opts)
	}
	return opts
}

// Load reads a YAML config file and merges it over the default Options.
// Sections or fields absent from the file keep their defaults.
func Load(filename string, setters ...Option) (*Options, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, xerrors.Wrapf(xerrors.ErrIO, err, "read config %s", filename)
	}
	opts := NewDefault()
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(opts); err != nil && !errors.Is(err, io.EOF) {
		return nil, xerrors.Wrapf(xerrors.ErrParse, err, "parse config %s", filename)
	}
	defaults := NewDefault()
	if opts.Log == nil {
		opts.Log = defaults.Log
	}
	if opts.Store == nil {
		opts.Store = defaults.Store
	}
	if opts.Export == nil {
		opts.Export = defaults.Export
	}
	if opts.Shell == nil {
		opts.Shell = defaults.Shell
	}
	for _, f := range opts.Export.Formats {
		if !format.IsExportFormat(f) {
			return nil, xerrors.Newf(xerrors.ErrParse, "config %s: unknown export format %q", filename, f)
		}
	}
	for _, setter := range setters {
		setter(opts)
	}
	return opts, nil
}

// Template returns the default Options as YAML, as a starting point for a
// config file.
func Template() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(NewDefault()); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
