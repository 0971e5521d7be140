// Package fpgrowth is the home of an FP-tree (Frequent-Pattern tree)
// construction engine and the tooling around it.
//
// What is an FP-tree?
//
//	A prefix-sharing trie over transactions whose items are sorted by
//	descending global frequency. Shared prefixes collapse into one path with
//	aggregated counts, and a header table links every node of each item, so
//	a miner can visit all occurrences of an item without rescanning the tree.
//
// Layout:
//
//	fptree/     Node, Tree, insert_tree, header table, single-branch
//	            tracking, structural dump and self-validation
//	itemset/    reading transactions, support counting, item ranking and
//	            reordering (the preprocessing the tree expects)
//	cmd/fptree  command-line front end: build, headers
//	examples/   runnable walkthroughs
//
// Quick ASCII example (baskets [a b], [a], [b]):
//
//	RootNode:0
//	├── a:2
//	│   └── b:1
//	└── b:1
//
// "b" lives at two positions, so the tree no longer has one branch.
//
// Mining itself (conditional pattern bases and conditional trees) is not
// part of this module; fptree exposes what a miner needs: node-links per
// item, prefix paths, support-ordered headers and the single-path check.
//
//	go get github.com/katalvlaran/fpgrowth/fptree
package fpgrowth
