package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/flynn/go-docopt"
	"github.com/olekukonko/tablewriter"
	"github.com/tableauio/jsonsh/internal/printer"
	"github.com/tableauio/jsonsh/node"
	"github.com/tableauio/jsonsh/store/jsonparser"
	"golang.org/x/text/width"
)

// maxValueWidth is the widest value shown by "ls -l", in terminal columns.
const maxValueWidth = 40

func init() {
	register("ls", runLs, `
usage: ls [-r | -l] [--] [<path>]

List the members of an object with their types.

Options:
	-r, --recursive  list nested objects as a tree
	-l, --long       list keys, types, lengths and values in a table

Examples:

	/> ls
	name [string]
	servers [object]
	/> ls -r
	/
	├── name [string]
	└── servers [object]
	    └── main [object]
`)
	register("lsr", runLsr, `
usage: lsr [--] [<path>]

List nested objects as a tree, same as "ls -r".
`)
}

func runLs(s *Shell, args *docopt.Args) error {
	return s.list(args.String["<path>"], args.Bool["--recursive"], args.Bool["--long"])
}

func runLsr(s *Shell, args *docopt.Args) error {
	return s.list(args.String["<path>"], true, false)
}

func (s *Shell) list(expr string, recursive, long bool) error {
	obj, display := s.nav.Node(), s.nav.Pwd()
	if expr != "" {
		p, n, err := s.nav.Resolve(expr)
		if err != nil {
			return err
		}
		obj, display = n, s.nav.Current().Origin.Append(p...).String()
	}
	switch {
	case recursive:
		fmt.Fprint(s.out, printer.RenderTree(buildTree(display, obj)))
	case long:
		table := tablewriter.NewWriter(s.out)
		table.SetAutoWrapText(false)
		table.SetHeader([]string{"KEY", "TYPE", "LEN", "VALUE"})
		obj.Each(func(key string, value *node.Node) {
			table.Append([]string{key, value.Kind().String(), lenOf(value), preview(value)})
		})
		table.Render()
	default:
		p := printer.New()
		obj.Each(func(key string, value *node.Node) {
			p.P(label(key, value))
		})
		_, err := p.WriteTo(s.out)
		return err
	}
	return nil
}

func label(key string, value *node.Node) string {
	return key + " [" + value.Kind().String() + "]"
}

// buildTree returns the tree of obj: every member is a child, and members
// holding objects have their own members as children.
func buildTree(name string, obj *node.Node) *printer.Tree {
	tree := printer.NewTree(name)
	obj.Each(func(key string, value *node.Node) {
		if value.IsObject() {
			tree.Add(buildTree(label(key, value), value))
		} else {
			tree.Add(printer.NewTree(label(key, value)))
		}
	})
	return tree
}

func lenOf(n *node.Node) string {
	length, err := n.Len()
	if err != nil {
		return "-"
	}
	return strconv.Itoa(length)
}

// preview returns the JSON text of n, cut to maxValueWidth columns.
func preview(n *node.Node) string {
	text := jsonparser.MarshalString(n)
	if columns(text) <= maxValueWidth {
		return text
	}
	var (
		sb    strings.Builder
		total int
	)
	for _, r := range text {
		w := runeColumns(r)
		if total+w > maxValueWidth-len(ellipsis) {
			break
		}
		sb.WriteRune(r)
		total += w
	}
	return sb.String() + ellipsis
}

const ellipsis = "..."

func columns(s string) int {
	total := 0
	for _, r := range s {
		total += runeColumns(r)
	}
	return total
}

// runeColumns returns the number of terminal columns r occupies.
func runeColumns(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
