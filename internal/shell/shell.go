// Package shell implements the interactive jsonsh session: a line-based
// command loop over one JSON document, with shell-like commands to move
// around nested objects and to read and edit their members.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/tableauio/jsonsh/format"
	"github.com/tableauio/jsonsh/internal/navigator"
	"github.com/tableauio/jsonsh/log"
	"github.com/tableauio/jsonsh/node"
	"github.com/tableauio/jsonsh/options"
	"github.com/tableauio/jsonsh/store"
	"github.com/tableauio/jsonsh/xerrors"
)

// maxLineSize is the longest input line accepted, in bytes.
const maxLineSize = 16 * 1024 * 1024

// Shell is one session over a document loaded from filename.
type Shell struct {
	nav      *navigator.Navigator
	filename string
	opts     *options.Options

	in  io.Reader
	out io.Writer

	ctx     context.Context
	done    bool  // set by exit
	exitErr error // failure of the final save
}

// New creates a session over doc, which is saved back to filename. Commands
// read from in and write to out. A nil opts means default options.
func New(doc *node.Node, filename string, opts *options.Options, in io.Reader, out io.Writer) (*Shell, error) {
	nav, err := navigator.New(doc)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = options.NewDefault()
	}
	return &Shell{
		nav:      nav,
		filename: filename,
		opts:     opts,
		in:       in,
		out:      out,
		ctx:      context.Background(),
	}, nil
}

// Doc returns the document of the session.
func (s *Shell) Doc() *node.Node {
	return s.nav.Doc()
}

// Pwd returns the display form of the current location.
func (s *Shell) Pwd() string {
	return s.nav.Pwd()
}

// Done reports whether the session has ended.
func (s *Shell) Done() bool {
	return s.done
}

// Exec runs one command line. Errors are returned with the name of the
// failing command as op. Blank lines do nothing.
func (s *Shell) Exec(line string) error {
	words, err := Tokenize(line)
	if err != nil {
		return xerrors.WithOp(err, progName)
	}
	if len(words) == 0 {
		return nil
	}
	return s.runCommand(words[0], words[1:])
}

// Run reads and executes commands until exit or end of input, which
// behaves like exit. An interrupt received while waiting for input is
// reported and the prompt is shown again.
//
// Run returns the error of the final save, if any. If ctx is done before,
// Run returns ctx.Err() without saving.
func (s *Shell) Run(ctx context.Context, interrupts <-chan os.Signal) error {
	s.ctx = ctx
	defer func() { s.ctx = context.Background() }()

	stop := make(chan struct{})
	defer close(stop)
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	interactive := s.interactive()
	for !s.done {
		if interactive {
			fmt.Fprint(s.out, s.prompt())
		}
		select {
		case <-ctx.Done():
			log.Warnf("session canceled, %s is not saved", s.filename)
			return ctx.Err()
		case <-interrupts:
			fmt.Fprintln(s.out, "CTRL-C")
		case line, ok := <-lines:
			if !ok {
				if interactive {
					fmt.Fprintln(s.out)
				}
				if err := <-readErr; err != nil {
					log.Errorf("read input: %v", err)
				}
				if err := s.exit(true); err != nil {
					s.printError(xerrors.WithOp(err, "exit"))
				}
				continue
			}
			if err := s.Exec(line); err != nil {
				s.printError(err)
			}
		}
	}
	return s.exitErr
}

func (s *Shell) printError(err error) {
	fmt.Fprintf(s.out, "error: %v\n", err)
}

func (s *Shell) prompt() string {
	return s.nav.Pwd() + s.opts.Shell.Prompt
}

func (s *Shell) interactive() bool {
	switch s.opts.Shell.ShowPrompt {
	case options.ShowPromptAlways:
		return true
	case options.ShowPromptNever:
		return false
	default:
		f, ok := s.in.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}

// Save writes the document back to its file.
func (s *Shell) Save(pretty bool) error {
	return store.Save(s.nav.Doc(), s.filename,
		store.Pretty(pretty || s.opts.Store.Pretty),
		store.Indent(s.opts.Store.Indent),
	)
}

// Export writes the document to dir in each of the given formats. An empty
// dir means the configured output directory.
func (s *Shell) Export(dir string, formats ...format.Format) error {
	if dir == "" {
		dir = s.opts.Export.Outdir
	}
	return store.ExportAll(s.ctx, s.nav.Doc(), dir, formats, s.storeOptions()...)
}

func (s *Shell) storeOptions() []store.Option {
	base := filepath.Base(s.filename)
	return []store.Option{
		store.Name(strings.TrimSuffix(base, filepath.Ext(base))),
		store.Pretty(s.opts.Store.Pretty),
		store.Indent(s.opts.Store.Indent),
	}
}

// exit ends the session. When save is set, the document is saved and then
// exported to the configured formats. A failed save is kept as the result
// of Run; a failed export is only reported.
func (s *Shell) exit(save bool) error {
	s.done = true
	if !save {
		log.Infof("exit without saving %s", s.filename)
		return nil
	}
	if err := s.Save(false); err != nil {
		s.exitErr = err
		return err
	}
	if formats := s.opts.Export.Formats; len(formats) != 0 {
		if err := s.Export("", formats...); err != nil {
			return err
		}
	}
	return nil
}
