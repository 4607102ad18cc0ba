package shell

import (
	"fmt"

	"github.com/flynn/go-docopt"
	"github.com/tableauio/jsonsh/format"
	"github.com/tableauio/jsonsh/xerrors"
)

// clearScreen moves the cursor home and erases the screen.
const clearScreen = "\033[H\033[2J"

func init() {
	register("save", runSave, `
usage: save [-p]

Save the document to its file.

Options:
	-p, --pretty  indent the saved document
`)
	register("export", runExport, `
usage: export [-o <dir>] <format>...

Export the document to other formats: json, yaml, xml, xlsx, bin, txt.

Options:
	-o, --outdir=<dir>  directory to write to, the configured one by default

Each format is written to a file named after the document, such as
"config.yaml" for "config.json".
`)
	register("clear", runClear, `
usage: clear

Clear the screen.
`)
	register("exit", runExit, `
usage: exit [--no-save]

Save the document and end the session.

Options:
	--no-save  end the session without saving

The configured export formats are written after the document is saved.
`)
}

func runSave(s *Shell, args *docopt.Args) error {
	return s.Save(args.Bool["--pretty"])
}

func runExport(s *Shell, args *docopt.Args) error {
	var formats []format.Format
	for _, arg := range args.All["<format>"].([]string) {
		f := format.Parse(arg)
		if f == format.UnknownFormat {
			return xerrors.Newf(xerrors.ErrParse, "unknown export format: %s", arg)
		}
		formats = append(formats, f)
	}
	return s.Export(args.String["--outdir"], formats...)
}

func runClear(s *Shell, args *docopt.Args) error {
	fmt.Fprint(s.out, clearScreen)
	return nil
}

func runExit(s *Shell, args *docopt.Args) error {
	return s.exit(!args.Bool["--no-save"])
}
