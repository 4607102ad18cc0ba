package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tableauio/jsonsh"
	"github.com/tableauio/jsonsh/format"
	"github.com/tableauio/jsonsh/internal/shell"
	"github.com/tableauio/jsonsh/log"
	"github.com/tableauio/jsonsh/options"
	"github.com/tableauio/jsonsh/store"
)

var (
	pretty             bool
	configPath         string
	exportFormats      []string
	outdir             string
	logLevel           string
	needOutputConfTmpl bool
)

func main() {
	os.Exit(run())
}

func run() int {
	var rootCmd = &cobra.Command{
		Use:     "jsonsh [flags] FILE",
		Version: jsonsh.GetVersionInfo().String(),
		Short:   "Jsonsh is an interactive shell for browsing and editing JSON documents",
		Long: `Jsonsh opens FILE, a JSON document whose root is an object, and reads
commands from standard input. Nested objects are directories: "cd" moves
between them, "ls" lists them, and "get", "set", "ins" and "del" read and
edit their members. Type "help" for the list of commands.

The document is saved back to FILE when the session ends. A missing FILE
starts an empty document.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent the saved document")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.Flags().StringSliceVarP(&exportFormats, "export", "e", nil, "Formats to export on exit: json, yaml, xml, xlsx, bin, txt")
	rootCmd.Flags().StringVarP(&outdir, "outdir", "o", ".", "Output directory of exports, default is current directory")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.Flags().BoolVarP(&needOutputConfTmpl, "output-config-template", "t", false, "Output config template")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		log.Debugf("%+v", err)
		return 1
	}
	return 0
}

func runCmd(cmd *cobra.Command, args []string) error {
	if needOutputConfTmpl {
		return outputConfTmpl(cmd)
	}
	if len(args) != 1 {
		return errors.New("requires the document FILE")
	}
	filename := args[0]

	opts, err := loadOptions(cmd)
	if err != nil {
		return errors.WithMessage(err, "load config(options) failed")
	}
	if err := log.Init(opts.Log); err != nil {
		return errors.WithMessage(err, "init log failed")
	}
	defer func() { _ = log.Sync() }()
	log.Debugf("loaded jsonsh config: %+v", spew.Sdump(opts))

	doc, err := store.Load(filename)
	if err != nil {
		return err
	}
	sh, err := shell.New(doc, filename, opts, os.Stdin, os.Stdout)
	if err != nil {
		return errors.WithMessagef(err, "open %s", filename)
	}

	// SIGINT only interrupts the current input line; SIGTERM ends the
	// session without saving.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	return sh.Run(ctx, interrupts)
}

// loadOptions loads the config file, if any, and applies the command line
// flags over it.
func loadOptions(cmd *cobra.Command) (*options.Options, error) {
	var setters []options.Option
	flags := cmd.Flags()
	if flags.Changed("pretty") {
		setters = append(setters, options.Pretty(pretty))
	}
	var (
		opts *options.Options
		err  error
	)
	if configPath != "" {
		opts, err = options.Load(configPath, setters...)
		if err != nil {
			return nil, err
		}
	} else {
		opts = options.ParseOptions(setters...)
	}
	if flags.Changed("export") {
		opts.Export.Formats = nil
		for _, name := range exportFormats {
			f := format.Parse(name)
			if f == format.UnknownFormat {
				return nil, errors.Errorf("unknown export format: %s", name)
			}
			opts.Export.Formats = append(opts.Export.Formats, f)
		}
	}
	if flags.Changed("outdir") {
		opts.Export.Outdir = outdir
	}
	if logLevel != "" {
		opts.Log.Level = logLevel
	}
	return opts, nil
}

func outputConfTmpl(cmd *cobra.Command) error {
	out, err := options.Template()
	if err != nil {
		return errors.WithMessage(err, "marshal failed")
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
