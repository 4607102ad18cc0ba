package printer

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Indent indents each depth two spaces "  ".
func Indent(depth int) string {
	return strings.Repeat("  ", depth)
}

type Printer struct {
	buf bytes.Buffer
}

// New creates a new printer.
func New() *Printer {
	return &Printer{}
}

// P prints a line to the printer. It converts each parameter to a
// string following the same rules as fmt.Print. It never inserts spaces
// between parameters.
func (p *Printer) P(v ...any) {
	for _, x := range v {
		fmt.Fprint(&p.buf, x)
	}
	fmt.Fprintln(&p.buf)
}

// Bytes returns the bytes content of printer.
func (p *Printer) Bytes() []byte {
	return p.buf.Bytes()
}

// String returns the string content of printer.
func (p *Printer) String() string {
	return p.buf.String()
}

// WriteTo writes the printer content to w.
func (p *Printer) WriteTo(w io.Writer) (int64, error) {
	return p.buf.WriteTo(w)
}
