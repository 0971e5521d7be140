// File: walk.go
// Role: Depth-first traversal and structural self-check.
// Concurrency:
//   - Walk and Validate hold mu shared for their whole duration. Callbacks
//     must not call back into the Tree.

package fptree

import "fmt"

// Walk visits every node, root first, in pre-order with children in creation
// order. depth is 0 for the root. A non-nil error from visit stops the walk
// and is returned unchanged.
// Complexity: O(N)
func (t *Tree) Walk(visit func(n *Node, depth int) error) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return walk(t.root, 0, visit)
}

func walk(n *Node, depth int, visit func(*Node, int) error) error {
	if err := visit(n, depth); err != nil {
		return err
	}
	for _, c := range n.order {
		if err := walk(c, depth+1, visit); err != nil {
			return err
		}
	}

	return nil
}

// Validate checks the structural invariants of the tree and returns an error
// wrapping ErrInvariant for the first violation found:
//
//   - the root has the reserved label, count 0, no parent, no header entry;
//   - every child links back to its parent, sibling labels are unique and
//     the lookup map agrees with the ordered child list;
//   - every non-root node has count ≥ 1 and, while every Insert started at
//     the root, ≥ the sum of its children's counts;
//   - every non-root node appears exactly once in the header table under its
//     own label, and the header table holds nothing else;
//   - HasOneBranch is true iff every header entry has exactly one node.
//
// Complexity: O(N)
func (t *Tree) Validate() error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	r := t.root
	if r.parent != nil || r.count != 0 || r.label != t.rootLabel {
		return fmt.Errorf("%w: malformed root %s", ErrInvariant, r)
	}
	if _, ok := t.header[t.rootLabel]; ok {
		return fmt.Errorf("%w: root label %q in header table", ErrInvariant, t.rootLabel)
	}

	// Expected header positions, built from the tree side.
	indexed := make(map[*Node]int, t.nodes)
	for item, links := range t.header {
		if len(links) == 0 {
			return fmt.Errorf("%w: empty header entry %q", ErrInvariant, item)
		}
		for _, n := range links {
			if n.label != item {
				return fmt.Errorf("%w: node %s filed under %q", ErrInvariant, n, item)
			}
			indexed[n]++
		}
	}

	seen := 0
	err := walk(r, 0, func(n *Node, _ int) error {
		if len(n.children) != len(n.order) {
			return fmt.Errorf("%w: child index of %s out of sync", ErrInvariant, n)
		}
		sum := 0
		for _, c := range n.order {
			if c.parent != n || c.tree != t {
				return fmt.Errorf("%w: %s does not link back to %s", ErrInvariant, c, n)
			}
			if n.children[c.label] != c {
				return fmt.Errorf("%w: duplicate or unindexed label %q under %s", ErrInvariant, c.label, n)
			}
			sum += c.count
		}
		if n == r {
			return nil
		}

		seen++
		if n.count < 1 || (t.rooted && n.count < sum) {
			return fmt.Errorf("%w: %s has children counting %d", ErrInvariant, n, sum)
		}
		if k := indexed[n]; k != 1 {
			return fmt.Errorf("%w: %s appears %d times in header table", ErrInvariant, n, k)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if seen != len(indexed) || seen != t.nodes {
		return fmt.Errorf("%w: %d nodes in tree, %d in header table, %d counted",
			ErrInvariant, seen, len(indexed), t.nodes)
	}

	single := true
	for _, links := range t.header {
		if len(links) > 1 {
			single = false
			break
		}
	}
	if single != t.hasOneBranch {
		return fmt.Errorf("%w: hasOneBranch=%t but header table says %t", ErrInvariant, t.hasOneBranch, single)
	}

	return nil
}
