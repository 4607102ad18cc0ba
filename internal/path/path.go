// Package path resolves slash-delimited location expressions against a
// document tree.
//
// Only objects are directories: every plain segment must name an object
// member whose value is itself an object. Parents are never stored; `..`
// shortens the path and resolves it again from the root.
package path

import (
	"strconv"
	"strings"

	"github.com/tableauio/jsonsh/node"
	"github.com/tableauio/jsonsh/xerrors"
)

const (
	Sep    = "/"
	Parent = ".."
)

// Segment is one path component: a plain object key, or a key annotated
// with the index of an object element in the array at that key.
type Segment struct {
	Key     string
	Index   int
	Indexed bool
}

// Key returns a plain segment.
func Key(key string) Segment {
	return Segment{Key: key}
}

// Elem returns a segment addressing the index-th element of the array at key.
func Elem(key string, index int) Segment {
	return Segment{Key: key, Index: index, Indexed: true}
}

func (s Segment) String() string {
	if s.Indexed {
		return s.Key + "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Key
}

// Path is an ordered list of segments from a root object. The empty path
// designates the root itself.
type Path []Segment

// String returns the display form of p, e.g. "/servers/list[1]". The root
// is "/".
func (p Path) String() string {
	if len(p) == 0 {
		return Sep
	}
	var sb strings.Builder
	for _, seg := range p {
		sb.WriteString(Sep)
		sb.WriteString(seg.String())
	}
	return sb.String()
}

// IsRoot reports whether p designates the root.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Append returns a new path with segs after p. p is never modified.
func (p Path) Append(segs ...Segment) Path {
	joined := make(Path, 0, len(p)+len(segs))
	joined = append(joined, p...)
	return append(joined, segs...)
}

// Parent returns p without its last segment. The parent of the root is the
// root.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	return p.Append()[:len(p)-1]
}

// Split splits an expression into its non-empty segments and reports
// whether it is absolute.
func Split(expr string) (absolute bool, segments []string) {
	absolute = strings.HasPrefix(expr, Sep)
	for _, seg := range strings.Split(expr, Sep) {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return absolute, segments
}

// Resolve evaluates expr starting at (basePath, baseNode) and returns the
// destination path and object. An absolute expr starts over at root with
// an empty path.
//
// The result is all-or-nothing: on error the returned path and node are nil
// and the caller keeps its location.
func Resolve(root *node.Node, basePath Path, baseNode *node.Node, expr string) (Path, *node.Node, error) {
	absolute, segments := Split(expr)
	curPath, curNode := basePath.Append(), baseNode
	if absolute {
		curPath, curNode = Path{}, root
	}
	for _, seg := range segments {
		if seg == Parent {
			if curPath.IsRoot() {
				continue
			}
			parentPath := curPath.Parent()
			parentNode, err := Lookup(root, parentPath)
			if err != nil {
				return nil, nil, err
			}
			curPath, curNode = parentPath, parentNode
			continue
		}
		child, err := Child(curNode, seg)
		if err != nil {
			return nil, nil, err
		}
		curPath, curNode = curPath.Append(Key(seg)), child
	}
	return curPath, curNode, nil
}

// Lookup walks p from root and returns the object it designates.
func Lookup(root *node.Node, p Path) (*node.Node, error) {
	if !root.IsObject() {
		return nil, xerrors.Newf(xerrors.ErrTypeMismatch, "root is not an object")
	}
	cur := root
	for _, seg := range p {
		next, err := step(cur, seg)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Prefix returns the longest prefix of p that still resolves from root,
// together with the object it designates.
func Prefix(root *node.Node, p Path) (Path, *node.Node) {
	cur := root
	for i, seg := range p {
		next, err := step(cur, seg)
		if err != nil {
			return p[:i:i], cur
		}
		cur = next
	}
	return p, cur
}

// Child returns the object stored at key of object n.
func Child(n *node.Node, key string) (*node.Node, error) {
	if !n.IsObject() {
		return nil, xerrors.Newf(xerrors.ErrTypeMismatch, "current location is not an object")
	}
	value, err := n.Get(key)
	if err != nil {
		return nil, err
	}
	if !value.IsObject() {
		return nil, xerrors.Newf(xerrors.ErrTypeMismatch, "value at '%s' is not an object", key)
	}
	return value, nil
}

// Element returns the object stored at index of the array at key of n.
func Element(n *node.Node, key string, index int) (*node.Node, error) {
	if !n.IsObject() {
		return nil, xerrors.Newf(xerrors.ErrTypeMismatch, "current location is not an object")
	}
	value, err := n.Get(key)
	if err != nil {
		return nil, err
	}
	if !value.IsArray() {
		return nil, xerrors.Newf(xerrors.ErrTypeMismatch, "value at '%s' is not an array", key)
	}
	elem, err := value.Index(index)
	if err != nil {
		return nil, err
	}
	if !elem.IsObject() {
		return nil, xerrors.Newf(xerrors.ErrTypeMismatch, "value at '%s' is not an object", Elem(key, index))
	}
	return elem, nil
}

func step(n *node.Node, seg Segment) (*node.Node, error) {
	if seg.Indexed {
		return Element(n, seg.Key, seg.Index)
	}
	return Child(n, seg.Key)
}
