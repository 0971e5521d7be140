// File: headers.go
// Role: Header-table queries and frequency-ordered item enumeration.
// Determinism:
//   - Items() is sorted by label ascending.
//   - HeadersDescending() is sorted by support descending, then label ascending.

package fptree

import "sort"

// HeaderTable returns a copy of the header table. The slices are fresh; the
// nodes are the live tree nodes.
// Complexity: O(N)
func (t *Tree) HeaderTable() map[string][]*Node {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string][]*Node, len(t.header))
	for item, links := range t.header {
		out[item] = append([]*Node(nil), links...)
	}

	return out
}

// Nodes returns the node-links of item in creation order, or nil if the item
// is not in the tree.
func (t *Tree) Nodes(item string) []*Node {
	t.mu.RLock()
	defer t.mu.RUnlock()

	links, ok := t.header[item]
	if !ok {
		return nil
	}

	return append([]*Node(nil), links...)
}

// Items returns every label of the header table, sorted ascending.
func (t *Tree) Items() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	items := make([]string, 0, len(t.header))
	for item := range t.header {
		items = append(items, item)
	}
	sort.Strings(items)

	return items
}

// Support returns the total count of item across all of its nodes, which is
// the number of inserted transactions containing it. Unknown items have
// support 0.
func (t *Tree) Support(item string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return support(t.header[item])
}

// Headers returns one Header per item ordered like HeadersDescending.
// Complexity: O(N + I·log I)
func (t *Tree) Headers() []Header {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.headers()
}

// HeadersDescending returns the item labels ordered by support descending;
// items with equal support are ordered by label ascending.
func (t *Tree) HeadersDescending() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	hs := t.headers()
	items := make([]string, len(hs))
	for i, h := range hs {
		items[i] = h.Item
	}

	return items
}

// HeadersAscending returns the exact reverse of HeadersDescending: least
// frequent item first, the order in which FP-growth picks suffixes.
func (t *Tree) HeadersAscending() []string {
	items := t.HeadersDescending()
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}

	return items
}

// headers builds the sorted header rows. Caller holds mu.
func (t *Tree) headers() []Header {
	hs := make([]Header, 0, len(t.header))
	for item, links := range t.header {
		hs = append(hs, Header{
			Item:    item,
			Support: support(links),
			Nodes:   append([]*Node(nil), links...),
		})
	}
	// Labels are unique, so this order is total.
	sort.Slice(hs, func(i, j int) bool {
		if hs[i].Support != hs[j].Support {
			return hs[i].Support > hs[j].Support
		}
		return hs[i].Item < hs[j].Item
	})

	return hs
}

func support(links []*Node) int {
	s := 0
	for _, n := range links {
		s += n.count
	}

	return s
}
