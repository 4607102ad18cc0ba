// Package store loads a JSON document from storage, saves it back, and
// exports it to other formats: json, yaml, xml, xlsx, bin, and txt.
package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/tableauio/jsonsh/format"
	"github.com/tableauio/jsonsh/internal/x/xfs"
	"github.com/tableauio/jsonsh/log"
	"github.com/tableauio/jsonsh/node"
	"github.com/tableauio/jsonsh/store/jsonparser"
	"github.com/tableauio/jsonsh/xerrors"
	"golang.org/x/sync/errgroup"
)

// Load reads and parses the document stored in filename. A missing file is
// not an error: it yields an empty object.
func Load(filename string) (*node.Node, error) {
	existed, err := xfs.Exists(filename)
	if err != nil {
		return nil, xerrors.Wrapf(xerrors.ErrIO, err, "stat %s", filename)
	}
	if !existed {
		log.Infof("%s does not exist, starting with an empty document", filename)
		return node.NewObject(), nil
	}
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, xerrors.Wrapf(xerrors.ErrIO, err, "read %s", filename)
	}
	root, err := jsonparser.ParseBytes(content)
	if err != nil {
		return nil, xerrors.Wrapf(xerrors.ErrParse, err, "parse %s", filename)
	}
	log.Infow("document loaded", "file", filename, "bytes", len(content))
	return root, nil
}

// Save writes root to filename as JSON, followed by a newline. The write is
// atomic: on failure the previous content of filename is kept.
func Save(root *node.Node, filename string, options ...Option) error {
	opts := ParseOptions(options...)
	out, err := MarshalToJSON(root, opts.Pretty, opts.Indent)
	if err != nil {
		return xerrors.Wrapf(xerrors.ErrIO, err, "marshal %s", filename)
	}
	out = append(out, '\n')
	if err := xfs.WriteFile(filename, out); err != nil {
		return xerrors.Wrapf(xerrors.ErrIO, err, "write %s", filename)
	}
	log.Infow("document saved", "file", filename, "bytes", len(out))
	return nil
}

// Marshal encodes root in the given format.
func Marshal(root *node.Node, f format.Format, options ...Option) ([]byte, error) {
	opts := ParseOptions(options...)
	switch f {
	case format.JSON:
		return MarshalToJSON(root, opts.Pretty, opts.Indent)
	case format.YAML:
		return MarshalToYAML(root)
	case format.XML:
		return MarshalToXML(root, opts.Pretty), nil
	case format.Excel:
		return MarshalToExcel(root)
	case format.Bin:
		return MarshalToBin(root)
	case format.Text:
		return MarshalToText(root, opts.Pretty, opts.Indent)
	default:
		return nil, xerrors.Newf(xerrors.ErrParse, "unknown export format: %s", f)
	}
}

// Export writes root to file "<Name><ext>" in dir, in the given format.
func Export(root *node.Node, dir string, f format.Format, options ...Option) error {
	opts := ParseOptions(options...)
	out, err := Marshal(root, f, options...)
	if err != nil {
		if xerrors.Code(err) != "" {
			return err
		}
		return xerrors.Wrapf(xerrors.ErrIO, err, "export %s to %s", opts.Name, f)
	}
	filename := filepath.Join(dir, opts.Name+format.Format2Ext(f))
	if err := xfs.WriteFile(filename, out); err != nil {
		return xerrors.Wrapf(xerrors.ErrIO, err, "write %s", filename)
	}
	log.Infof("%18s: %s", "exported "+string(f), filename)
	return nil
}

// ExportAll exports root to each of formats in parallel. root must not be
// modified until ExportAll returns. The first error cancels the exports
// not yet started.
func ExportAll(ctx context.Context, root *node.Node, dir string, formats []format.Format, options ...Option) error {
	group, ctx := errgroup.WithContext(ctx)
	for _, f := range formats {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return Export(root, dir, f, options...)
		})
	}
	return group.Wait()
}
