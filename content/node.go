// Package content holds the authored document tree whose nodes carry
// parameter bags for style resolution.
package content

import (
	"docstyle/params"
)

// Node is a single element of the document tree.
type Node struct {
	Kind     Kind
	ID       string
	Children []*Node

	params params.Object
}

// NewNode creates node with given parameters.
func NewNode(kind Kind, id string, p params.Object, children ...*Node) *Node {
	return &Node{Kind: kind, ID: id, params: p, Children: children}
}

// Params returns node parameters. Nil node has none.
func (n *Node) Params() params.Object {
	if n == nil {
		return params.Object{}
	}
	return n.params
}

// Walk visits n and its descendants depth first, parents before children.
// Ancestors are passed outermost first and must not be retained by fn.
// Returning false from fn skips the children of the visited node.
func (n *Node) Walk(fn func(node *Node, ancestors []*Node) bool) {
	if n == nil {
		return
	}
	n.walk(fn, make([]*Node, 0, 8))
}

func (n *Node) walk(fn func(*Node, []*Node) bool, ancestors []*Node) {
	if !fn(n, ancestors) {
		return
	}
	ancestors = append(ancestors, n)
	for _, c := range n.Children {
		c.walk(fn, ancestors)
	}
}

// Count returns number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node, []*Node) bool {
		count++
		return true
	})
	return count
}
