// File: node.go
// Role: Node construction, child lookup and count mutation.
// Determinism:
//   - Children() returns children in creation order.
// Concurrency:
//   - Node methods take no locks; Tree.Insert is the only writer.

package fptree

import "strconv"

// newNode allocates a node owned by t and, unless parent is nil, attaches it
// as the newest child of parent.
func newNode(t *Tree, label string, count int, parent *Node) *Node {
	n := &Node{
		label:    label,
		count:    count,
		parent:   parent,
		tree:     t,
		children: make(map[string]*Node),
	}
	if parent != nil {
		parent.children[label] = n
		parent.order = append(parent.order, n)
	}

	return n
}

// Label returns the item label. It never changes after creation.
func (n *Node) Label() string { return n.label }

// Count returns the number of transactions whose prefix passed through n.
func (n *Node) Count() int { return n.count }

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// IsRoot reports whether n is the root sentinel of its tree.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Child returns the child labeled label, if any.
// Complexity: O(1) expected.
func (n *Node) Child(label string) (*Node, bool) {
	c, ok := n.children[label]

	return c, ok
}

// Children returns the children of n in creation order.
// The result is never nil and is a copy: reordering it does not affect n.
// Complexity: O(children)
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.order))
	copy(out, n.order)

	return out
}

// IncrementCount adds one to the count of n. Every holder of n, including
// the header table, observes the new value.
func (n *Node) IncrementCount() { n.count++ }

// Depth returns the number of edges between n and the root (root = 0).
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}

	return d
}

// PrefixPath returns the labels on the path from the root to n, excluding
// both the root and n itself, ordered from the root downwards. Paired with
// Count it forms one entry of n's conditional pattern base.
// Complexity: O(Depth())
func (n *Node) PrefixPath() []string {
	var path []string
	for p := n.parent; p != nil && p.parent != nil; p = p.parent {
		path = append(path, p.label)
	}
	// Collected leaf-first; flip to root-first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// String renders n as "label:count".
func (n *Node) String() string {
	return n.label + ":" + strconv.Itoa(n.count)
}
