// Package fptree builds FP-trees (Frequent-Pattern trees): prefix-sharing
// tries that compactly encode a transaction database for frequent-itemset
// mining in the FP-growth family of algorithms.
//
// What:
//
//   - Node: one position in the prefix tree. It carries an item label, an
//     occurrence count, a non-owning parent link, and its children keyed by
//     label (O(1) lookup) and kept in insertion order (deterministic output).
//   - Tree: owns the root sentinel (label RootLabel, count 0) and the header
//     table, an index from item label to every node carrying that label in
//     creation order ("node-links").
//
// Insertion follows Han's insert_tree procedure. For a transaction already
// sorted by descending global item frequency:
//
//	parent := root
//	for each item in transaction:
//	    if parent has a child labeled item: child.count++
//	    else: create child(item, 1), append it to header[item]
//	    parent = child
//
// Single-branch tracking:
//
// HasOneBranch starts true and flips to false, permanently, the first time an
// item that already has a header entry gets a second node somewhere in the
// tree. Incrementing the count of an existing node never affects it, and
// neither does a node gaining a second child with a brand new label: for
// [a b c] followed by [a b d] the flag stays true, for [a b] followed by
// [c b] it becomes false at the second "b". IsSinglePath reports the purely
// structural property (no node has two children) for callers that need it.
//
// Header traversal:
//
// HeadersDescending orders items by support (sum of node counts for the
// label) descending; equal supports are ordered by label ascending, so the
// result is fully deterministic. HeadersAscending is its exact reverse, the
// order a suffix-first miner consumes.
//
// Errors:
//
//	ErrNilParent           – Insert called with a nil parent
//	ErrForeignParent       – parent node belongs to another tree
//	ErrEmptyItem           – an item label is ""
//	ErrReservedItem        – an item equals the root label
//	ErrDuplicateItem       – the same label twice in one transaction
//	ErrUnrankedItem        – WithItemRank set and an item has no rank
//	ErrUnsortedTransaction – WithItemRank set and ranks do not increase
//	ErrInvariant           – wrapped by Validate on a structural violation
//
// Every error from Insert is reported before the tree is touched, so a
// rejected transaction leaves the tree exactly as it was.
//
// Concurrency:
//
// Tree guards its state with a single sync.RWMutex: Insert holds it
// exclusively, queries hold it shared. Node accessors are not synchronized;
// read nodes directly only after construction has finished.
//
// Complexity:
//
//   - Insert:            Time O(k) for k items, Memory O(k) new nodes worst case
//   - Support:           Time O(n_item) over the item's node-links
//   - HeadersDescending: Time O(N + I·log I) for N nodes and I items
//   - Walk, WriteTo:     Time O(N)
package fptree
