package engine

import (
	"fmt"
	"io"
	"strings"
)

// SearchNode is one visited position in a traced search.
//
// Move is the column played to reach the node; the root instead carries the
// column the search chose. Leaves have no children. Children are listed in
// the order they were explored, so pruned siblings are simply absent.
type SearchNode struct {
	Move     int
	Score    int
	Children []*SearchNode
}

// Count returns the number of nodes in the tree rooted at n.
func (n *SearchNode) Count() int {
	if n == nil {
		return 0
	}
	count := 1
	for _, c := range n.Children {
		count += c.Count()
	}
	return count
}

// Walk visits the tree depth first, parents before children. Returning false
// from fn skips that node's children.
func (n *SearchNode) Walk(fn func(node *SearchNode, depth int) bool) {
	n.walk(fn, 0)
}

func (n *SearchNode) walk(fn func(node *SearchNode, depth int) bool, depth int) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Format writes an indented dump of the tree, down to maxDepth levels below
// the root (negative means no limit).
func (n *SearchNode) Format(w io.Writer, maxDepth int) error {
	var err error
	n.Walk(func(node *SearchNode, depth int) bool {
		if err != nil {
			return false
		}
		col := "-"
		if node.Move != NoColumn {
			col = fmt.Sprint(node.Move)
		}
		_, err = fmt.Fprintf(w, "%scol %s score %d\n", strings.Repeat("  ", depth), col, node.Score)
		return maxDepth < 0 || depth < maxDepth
	})
	return err
}
