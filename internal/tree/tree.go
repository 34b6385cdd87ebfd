// Package tree groups parsed status records by directory hierarchy and
// renders the result as an indented tree with branch connectors.
package tree

import (
	"fmt"
	"strings"

	"github.com/chmouel/gitstatustree/internal/status"
)

// Node is one path segment in the status tree. A node is either a file
// (Code set, no children) or a directory (children, no code) — never
// both. Directory entries reported by git itself (trailing slash, e.g.
// from --ignored) are directories that additionally carry a code.
type Node struct {
	Name     string
	Code     string
	IsFile   bool
	Children []*Node

	byName map[string]*Node
}

// ConflictError reports a path segment used as both a file and a
// directory within the same run. Merging the two would corrupt the
// displayed tree, so this is fatal.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("path %q is reported as both a file and a directory", e.Path)
}

// Root returns the synthetic root node. The root itself is never
// rendered; only its descendants are.
func Root() *Node {
	return &Node{}
}

// Insert adds one record to the tree, creating intermediate directory
// nodes as needed. The final segment becomes a file node carrying the
// record's code, or a coded directory node for trailing-slash entries.
func (n *Node) Insert(rec status.Record) error {
	segments := rec.Segments()
	cur := n
	for i, seg := range segments {
		last := i == len(segments)-1

		child, ok := cur.child(seg)
		if !ok {
			child = &Node{Name: seg}
			if last {
				child.Code = rec.Code
				child.IsFile = !rec.IsDirEntry
			}
			cur.addChild(child)
			cur = child
			continue
		}

		switch {
		case !last && child.IsFile:
			return &ConflictError{Path: strings.Join(segments[:i+1], "/")}
		case last && rec.IsDirEntry == child.IsFile:
			return &ConflictError{Path: rec.Path}
		case last:
			// Duplicate record for the same entry: last code wins.
			child.Code = rec.Code
		}
		cur = child
	}
	return nil
}

// FileCount returns the number of file leaf nodes in the subtree.
func (n *Node) FileCount() int {
	count := 0
	if n.IsFile {
		count++
	}
	for _, child := range n.Children {
		count += child.FileCount()
	}
	return count
}

func (n *Node) child(name string) (*Node, bool) {
	if n.byName == nil {
		return nil, false
	}
	child, ok := n.byName[name]
	return child, ok
}

func (n *Node) addChild(child *Node) {
	if n.byName == nil {
		n.byName = make(map[string]*Node)
	}
	n.byName[child.Name] = child
	n.Children = append(n.Children, child)
}
