package printer

// Tree is a labelled node of a tree to be rendered.
type Tree struct {
	Name     string
	Children []*Tree
}

// NewTree creates a tree node with the given name and children.
func NewTree(name string, children ...*Tree) *Tree {
	return &Tree{Name: name, Children: children}
}

// Add appends child to t and returns child.
func (t *Tree) Add(child *Tree) *Tree {
	t.Children = append(t.Children, child)
	return child
}

const (
	branchPrefix   = "├── "
	lastPrefix     = "└── "
	verticalPrefix = "│   "
	emptyPrefix    = "    "
)

// RenderTree renders t line by line with box-drawing branches:
//
//	root
//	├── a
//	│   └── b
//	└── c
func RenderTree(t *Tree) string {
	p := New()
	p.P(t.Name)
	renderChildren(p, t, "")
	return p.String()
}

func renderChildren(p *Printer, t *Tree, fill string) {
	for i, child := range t.Children {
		if i == len(t.Children)-1 {
			p.P(fill, lastPrefix, child.Name)
			renderChildren(p, child, fill+emptyPrefix)
		} else {
			p.P(fill, branchPrefix, child.Name)
			renderChildren(p, child, fill+verticalPrefix)
		}
	}
}
