package shell

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/flynn/go-docopt"
	"github.com/tableauio/jsonsh/log"
	"github.com/tableauio/jsonsh/xerrors"
)

// progName is the op of errors raised before a command is found.
const progName = "jsonsh"

type command struct {
	usage   string
	summary string
	f       func(s *Shell, args *docopt.Args) error
}

var commands = make(map[string]*command)

// register adds a command. The usage is a docopt usage text whose program
// name is the command name; its first paragraph after the usage section
// is the summary shown by help.
func register(name string, f func(s *Shell, args *docopt.Args) error, usage string) *command {
	usage = strings.TrimLeftFunc(usage, unicode.IsSpace)
	c := &command{usage: usage, summary: summary(usage), f: f}
	commands[name] = c
	return c
}

func summary(usage string) string {
	paragraphs := strings.Split(usage, "\n\n")
	if len(paragraphs) < 2 {
		return ""
	}
	line, _, _ := strings.Cut(strings.TrimSpace(paragraphs[1]), "\n")
	return line
}

// commandNames returns the registered command names in order.
func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Shell) runCommand(name string, args []string) error {
	cmd, ok := commands[name]
	if !ok {
		return xerrors.WithOp(xerrors.Newf(xerrors.ErrNotFound, "command '%s' not found", name), progName)
	}
	argv := make([]string, 0, len(args))
	argv = append(argv, args...)
	parsedArgs, err := parseArgs(cmd.usage, argv)
	if err != nil {
		return xerrors.WithOp(xerrors.Newf(xerrors.ErrParse, "invalid arguments, see 'help %s'", name), name)
	}
	log.Debugw("exec", "cmd", name, "args", args)
	return xerrors.WithOp(cmd.f(s, parsedArgs), name)
}

var stdoutMu sync.Mutex

// parseArgs parses argv against a command usage. docopt prints the usage
// to os.Stdout on a user error, so os.Stdout points at the null device
// while it runs; callers report the error through the shell's writer.
func parseArgs(usage string, argv []string) (*docopt.Args, error) {
	stdoutMu.Lock()
	defer stdoutMu.Unlock()
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return nil, err
	}
	defer devNull.Close()
	stdout := os.Stdout
	os.Stdout = devNull
	defer func() { os.Stdout = stdout }()
	return docopt.Parse(usage, argv, false, "", false, false)
}

func runHelp(s *Shell, args *docopt.Args) error {
	if name := args.String["<command>"]; name != "" {
		cmd, ok := commands[name]
		if !ok {
			return xerrors.Newf(xerrors.ErrNotFound, "command '%s' not found", name)
		}
		fmt.Fprintln(s.out, strings.TrimRightFunc(cmd.usage, unicode.IsSpace))
		return nil
	}
	fmt.Fprintln(s.out, "commands:")
	for _, name := range commandNames() {
		fmt.Fprintf(s.out, "    %-8s %s\n", name, commands[name].summary)
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "See 'help <command>' for more information on a specific command.")
	return nil
}

func init() {
	register("help", runHelp, `
usage: help [<command>]

Show the available commands, or the usage of one command.
`)
}
