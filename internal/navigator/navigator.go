// Package navigator keeps the current location of a shell session and the
// location stack used by load and unload.
package navigator

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/tableauio/jsonsh/internal/path"
	"github.com/tableauio/jsonsh/log"
	"github.com/tableauio/jsonsh/node"
	"github.com/tableauio/jsonsh/xerrors"
)

// Location is where the session is: a path and the object it designates.
type Location struct {
	// Origin is the absolute path, from the document root, of the object
	// the location is relative to. It is empty unless the object was
	// entered with load.
	Origin path.Path
	// Root is the object Path is relative to. Absolute expressions start
	// over at Root, and ".." never climbs above it.
	Root *node.Node
	// Path is the location relative to Root.
	Path path.Path
	// Node is the object designated by Path.
	Node *node.Node
}

// Abs returns the absolute path of the location from the document root.
func (l Location) Abs() path.Path {
	return l.Origin.Append(l.Path...)
}

func (l Location) String() string {
	return l.Abs().String()
}

// Navigator holds the current location and the saved locations below it.
// The stack is never empty: its bottom entry is the document root.
type Navigator struct {
	doc   *node.Node
	stack *arraystack.Stack // element: *Location
}

// New creates a navigator positioned at the root of doc, which must be an
// object.
func New(doc *node.Node) (*Navigator, error) {
	if !doc.IsObject() {
		return nil, xerrors.Newf(xerrors.ErrTypeMismatch, "document root is %s, not an object", doc.Kind())
	}
	stack := arraystack.New()
	stack.Push(&Location{Root: doc, Path: path.Path{}, Node: doc})
	return &Navigator{doc: doc, stack: stack}, nil
}

// Doc returns the document root.
func (nav *Navigator) Doc() *node.Node {
	return nav.doc
}

func (nav *Navigator) top() *Location {
	value, _ := nav.stack.Peek()
	return value.(*Location)
}

// Current returns a copy of the current location.
func (nav *Navigator) Current() Location {
	return *nav.top()
}

// Node returns the object of the current location.
func (nav *Navigator) Node() *node.Node {
	return nav.top().Node
}

// Pwd returns the display form of the current location, such as "/a/b".
func (nav *Navigator) Pwd() string {
	return nav.top().String()
}

// Depth returns the number of locations on the stack, 1 when nothing is
// loaded.
func (nav *Navigator) Depth() int {
	return nav.stack.Size()
}

// Resolve evaluates expr from the current location without moving there.
func (nav *Navigator) Resolve(expr string) (path.Path, *node.Node, error) {
	cur := nav.top()
	return path.Resolve(cur.Root, cur.Path, cur.Node, expr)
}

// Cd changes the current location to expr. On error the location is
// unchanged.
func (nav *Navigator) Cd(expr string) error {
	newPath, newNode, err := nav.Resolve(expr)
	if err != nil {
		return err
	}
	cur := nav.top()
	cur.Path, cur.Node = newPath, newNode
	return nil
}

// CdElem changes the current location to the object at index of the array
// stored at key, without saving the current location. The new path ends
// with the indexed segment "key[index]".
func (nav *Navigator) CdElem(key string, index int) error {
	cur := nav.top()
	target, err := path.Element(cur.Node, key, index)
	if err != nil {
		return err
	}
	cur.Path, cur.Node = cur.Path.Append(path.Elem(key, index)), target
	return nil
}

// Push saves the current location and enters the object stored at key of
// the current object, or at index of the array stored there when indexed
// is set.
func (nav *Navigator) Push(key string, index int, indexed bool) error {
	cur := nav.top()
	seg := path.Key(key)
	var (
		target *node.Node
		err    error
	)
	if indexed {
		seg = path.Elem(key, index)
		target, err = path.Element(cur.Node, key, index)
	} else {
		target, err = path.Child(cur.Node, key)
	}
	if err != nil {
		return err
	}
	nav.stack.Push(&Location{
		Origin: cur.Abs().Append(seg),
		Root:   target,
		Path:   path.Path{},
		Node:   target,
	})
	return nil
}

// Pop discards the current location and returns to the saved one below it.
//
// The restored location is resolved again from the document root, since
// commands run since it was saved may have replaced objects along its path.
// If the path no longer resolves, the location falls back to the longest
// prefix that still does.
func (nav *Navigator) Pop() error {
	if nav.stack.Size() <= 1 {
		return xerrors.Newf(xerrors.ErrStack, "nothing left to unload")
	}
	nav.stack.Pop()
	prev := nav.top()

	root, err := path.Lookup(nav.doc, prev.Origin)
	if err != nil {
		origin, obj := path.Prefix(nav.doc, prev.Origin)
		log.Warnf("location %s no longer resolves (%v), falling back to %s", prev, err, origin)
		prev.Origin, prev.Root = origin, obj
		prev.Path, prev.Node = path.Path{}, obj
		return nil
	}
	prev.Root = root

	obj, err := path.Lookup(root, prev.Path)
	if err != nil {
		fallback, obj := path.Prefix(root, prev.Path)
		log.Warnf("location %s no longer resolves (%v), falling back to %s", prev, err, prev.Origin.Append(fallback...))
		prev.Path, prev.Node = fallback, obj
		return nil
	}
	prev.Node = obj
	return nil
}
