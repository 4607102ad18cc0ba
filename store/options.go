package store

type Options struct {
	// Specify output file name (without file extension) of exports.
	//
	// Default: "document".
	Name string
	// Output pretty format of JSON, XML and Text, with multiline and indent.
	//
	// Default: false.
	Pretty bool
	// Indent string of pretty output.
	//
	// Default: "    " (four spaces).
	Indent string
}

// Option is the functional option type.
type Option func(*Options)

// newDefault returns a default Options.
func newDefault() *Options {
	return &Options{
		Name:   "document",
		Indent: "    ",
	}
}

// ParseOptions parses functional options and merge them to default Options.
func ParseOptions(setters ...Option) *Options {
	// Default Options
	opts := newDefault()
	for _, setter := range setters {
		setter(opts)
	}
	return opts
}

// Name specifies the output file name (without file extension).
func Name(v string) Option {
	return func(opts *Options) {
		if v != "" {
			opts.Name = v
		}
	}
}

// Pretty specifies whether to prettify JSON, XML and Text output with
// multiline and indent.
func Pretty(v bool) Option {
	return func(opts *Options) {
		opts.Pretty = v
	}
}

// Indent specifies the indent string of pretty output.
func Indent(v string) Option {
	return func(opts *Options) {
		if v != "" {
			opts.Indent = v
		}
	}
}
