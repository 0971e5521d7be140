// File: tree.go
// Role: Transaction insertion (insert_tree) and basic tree queries.
// Policy:
//   - Insert validates the whole transaction before mutating anything.
//   - The header table gains an entry only when a node is created.
// Concurrency:
//   - Insert holds mu exclusively; getters hold it shared.

package fptree

import "fmt"

// Insert adds the items of one transaction below parent, following Han's
// insert_tree procedure.
//
// Implementation:
//   - Stage 1: Validate parent and items (see errors below). Nothing is
//     mutated if validation fails.
//   - Stage 2: Walk items with a cursor. For each item either increment the
//     count of parent's matching child or create a child with count 1 and
//     append it to the header table. The child becomes the next parent.
//
// Behavior highlights:
//   - Empty items is a no-op.
//   - A created node whose label already had a header entry sets
//     HasOneBranch to false for good. Count increments never touch it.
//
// Inputs:
//   - items: remaining items of a transaction, sorted by descending global
//     frequency; ties are the caller's business.
//   - parent: node reached by the already consumed prefix (Root() initially).
//
// Errors:
//   - ErrNilParent, ErrForeignParent: invalid parent.
//   - ErrEmptyItem, ErrReservedItem: invalid items.
//   - ErrDuplicateItem: a label repeats within items or already lies on the
//     path from the root to parent.
//   - ErrUnrankedItem, ErrUnsortedTransaction: only with WithItemRank.
//
// Complexity:
//   - Time O(k) expected for k items, Space O(k).
func (t *Tree) Insert(items []string, parent *Node) error {
	return t.insertChecked(items, parent, false)
}

// InsertTransaction inserts a whole transaction from the root and counts it
// in Transactions().
func (t *Tree) InsertTransaction(items []string) error {
	return t.insertChecked(items, t.root, true)
}

// insertChecked validates, then inserts under the write lock.
func (t *Tree) insertChecked(items []string, parent *Node, countTx bool) error {
	if parent == nil {
		return ErrNilParent
	}
	if parent.tree != t {
		return ErrForeignParent
	}
	if err := t.checkItems(items, parent); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.insert(items, parent)
	if len(items) > 0 && parent != t.root {
		// Inner inserts bump descendants but not parent: counts no longer
		// dominate their children's sums.
		t.rooted = false
	}
	if countTx {
		t.transactions++
	}

	return nil
}

// insert is the unlocked body of Insert. Caller holds mu.
func (t *Tree) insert(items []string, parent *Node) {
	var (
		child *Node
		ok    bool
	)
	for _, item := range items {
		if child, ok = parent.Child(item); ok {
			child.IncrementCount()
			parent = child
			continue
		}

		// New node: an existing header entry means the label now lives at
		// two tree positions.
		child = newNode(t, item, 1, parent)
		t.nodes++
		if len(t.header[item]) > 0 {
			if t.hasOneBranch {
				t.log.Debug().
					Str("item", item).
					Int("depth", child.Depth()).
					Msg("fptree: item branched, tree has more than one branch")
			}
			t.hasOneBranch = false
		}
		t.header[item] = append(t.header[item], child)
		t.log.Debug().Str("item", item).Str("parent", parent.label).Msg("fptree: node created")

		parent = child
	}
}

// checkItems validates a transaction without touching tree state.
// rootLabel, rank and the labels and parent links of existing nodes are
// fixed once set, so no lock is needed.
func (t *Tree) checkItems(items []string, parent *Node) error {
	if len(items) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(items))
	for p := parent; p != nil && p.parent != nil; p = p.parent {
		seen[p.label] = struct{}{}
	}
	prev := -1
	for i, item := range items {
		if item == "" {
			return fmt.Errorf("%w: position %d", ErrEmptyItem, i)
		}
		if item == t.rootLabel {
			return fmt.Errorf("%w: %q at position %d", ErrReservedItem, item, i)
		}
		if _, dup := seen[item]; dup {
			return fmt.Errorf("%w: %q at position %d", ErrDuplicateItem, item, i)
		}
		seen[item] = struct{}{}

		if t.rank == nil {
			continue
		}
		r, ok := t.rank[item]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnrankedItem, item)
		}
		if r <= prev {
			return fmt.Errorf("%w: %q (rank %d) after rank %d", ErrUnsortedTransaction, item, r, prev)
		}
		prev = r
	}

	return nil
}

// Root returns the root sentinel. It is never replaced.
func (t *Tree) Root() *Node { return t.root }

// RootLabel returns the reserved label of the root.
func (t *Tree) RootLabel() string { return t.rootLabel }

// HasOneBranch reports whether no item label has more than one node.
// Once false it stays false.
func (t *Tree) HasOneBranch() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.hasOneBranch
}

// NodeCount returns the number of nodes excluding the root.
func (t *Tree) NodeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.nodes
}

// Transactions returns how many transactions went through InsertTransaction,
// including empty ones.
func (t *Tree) Transactions() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.transactions
}

// IsSinglePath reports whether the tree is one unbranched chain, i.e. no
// node (root included) has more than one child. This is stricter than
// HasOneBranch, which only tracks repeated labels.
// Complexity: O(N)
func (t *Tree) IsSinglePath() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for n := t.root; ; {
		switch len(n.order) {
		case 0:
			return true
		case 1:
			n = n.order[0]
		default:
			return false
		}
	}
}

// SinglePath returns the nodes of the chain below the root when
// IsSinglePath holds, and false otherwise. A miner enumerates every frequent
// itemset of such a tree as a combination of these nodes.
func (t *Tree) SinglePath() ([]*Node, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	path := make([]*Node, 0, t.nodes)
	for n := t.root; len(n.order) > 0; {
		if len(n.order) > 1 {
			return nil, false
		}
		n = n.order[0]
		path = append(path, n)
	}

	return path, true
}
