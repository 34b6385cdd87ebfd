package tree

import "sort"

// Connector glyphs and the guide segments that continue them one level
// deeper.
const (
	connectorMiddle = "├── "
	connectorLast   = "└── "
	guideMiddle     = "│   "
	guideLast       = "    "
)

// Line is one rendered display line. It derives purely from the
// immutable tree: rendering the same tree twice yields the same lines.
type Line struct {
	// Prefix holds the indentation guides plus the sibling connector.
	Prefix string
	// Code is the two-character status code, empty for plain
	// directories.
	Code string
	// Name is the segment name; directories carry a trailing slash.
	Name string
	// IsDir reports whether the line is a directory header.
	IsDir bool
	// Depth is the number of path segments from the root.
	Depth int
}

// Text returns the undecorated display line.
func (l Line) Text() string {
	if l.Code == "" {
		return l.Prefix + l.Name
	}
	return l.Prefix + l.Code + " " + l.Name
}

// Render walks the tree depth-first and returns the display lines. The
// synthetic root is skipped. Children are visited in a fixed order:
// directories first, then files, each sorted lexicographically — the
// same order used to pick the last-sibling connector. The tree is not
// mutated.
func Render(root *Node) []Line {
	var lines []Line
	walk(root, "", 1, &lines)
	return lines
}

func walk(n *Node, guides string, depth int, lines *[]Line) {
	children := sortedChildren(n)
	for i, child := range children {
		last := i == len(children)-1

		connector := connectorMiddle
		guide := guideMiddle
		if last {
			connector = connectorLast
			guide = guideLast
		}

		name := child.Name
		if !child.IsFile {
			name += "/"
		}
		*lines = append(*lines, Line{
			Prefix: guides + connector,
			Code:   child.Code,
			Name:   name,
			IsDir:  !child.IsFile,
			Depth:  depth,
		})
		walk(child, guides+guide, depth+1, lines)
	}
}

// sortedChildren returns a sorted copy so rendering never reorders the
// tree itself.
func sortedChildren(n *Node) []*Node {
	children := make([]*Node, len(n.Children))
	copy(children, n.Children)
	sort.Slice(children, func(i, j int) bool {
		if children[i].IsFile != children[j].IsFile {
			return !children[i].IsFile
		}
		return children[i].Name < children[j].Name
	})
	return children
}
