// Package fptree declares Node, Tree, Header, Option, the sentinel errors,
// and the NewTree constructor.
package fptree

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// RootLabel is the default reserved label of the root sentinel.
const RootLabel = "RootNode"

// Sentinel errors for tree construction.
var (
	// ErrNilParent indicates Insert was called with a nil parent node.
	ErrNilParent = errors.New("fptree: parent node is nil")

	// ErrForeignParent indicates the parent node was not created by this tree.
	ErrForeignParent = errors.New("fptree: parent node belongs to another tree")

	// ErrEmptyItem indicates a transaction contains an empty item label.
	ErrEmptyItem = errors.New("fptree: item label is empty")

	// ErrReservedItem indicates a transaction contains the root label.
	ErrReservedItem = errors.New("fptree: item label is reserved for the root")

	// ErrDuplicateItem indicates the same label occurs twice in one transaction,
	// or already lies on the path from the root to the parent node.
	ErrDuplicateItem = errors.New("fptree: duplicate item in transaction")

	// ErrUnrankedItem indicates an item missing from the rank given by WithItemRank.
	ErrUnrankedItem = errors.New("fptree: item has no rank")

	// ErrUnsortedTransaction indicates items are not in descending-frequency order.
	ErrUnsortedTransaction = errors.New("fptree: transaction not in rank order")

	// ErrInvariant is wrapped by Validate when the tree is structurally inconsistent.
	ErrInvariant = errors.New("fptree: invariant violated")
)

// Node is one position in the prefix tree.
//
// A Node is created once per (prefix, item) combination and afterwards only
// its count changes. parent is a back reference used for traversal only;
// children are owned by their parent.
type Node struct {
	label    string
	count    int
	parent   *Node
	tree     *Tree            // owning tree; checked by Insert
	children map[string]*Node // label → child, O(1) lookup
	order    []*Node          // children in creation order
}

// Header is one row of the header table with its aggregated support.
type Header struct {
	// Item is the item label.
	Item string

	// Support is the sum of counts of every node labeled Item.
	Support int

	// Nodes are the node-links for Item in creation order.
	Nodes []*Node
}

// Option configures a Tree before creation.
type Option func(t *Tree)

// WithRootLabel overrides the reserved root label. An empty label is ignored.
func WithRootLabel(label string) Option {
	return func(t *Tree) {
		if label != "" {
			t.rootLabel = label
		}
	}
}

// WithItemRank makes Insert verify transaction order: every item must have a
// rank and ranks must strictly increase along the transaction (rank 0 is the
// most frequent item). The map is copied.
func WithItemRank(rank map[string]int) Option {
	return func(t *Tree) {
		t.rank = make(map[string]int, len(rank))
		for item, r := range rank {
			t.rank[item] = r
		}
	}
}

// WithLogger installs a logger for debug-level construction events.
func WithLogger(l zerolog.Logger) Option {
	return func(t *Tree) { t.log = l }
}

// Tree is an FP-tree: a root sentinel plus the header table indexing every
// non-root node by label.
//
// mu serializes Insert against every query. hasOneBranch only moves from true
// to false.
type Tree struct {
	mu sync.RWMutex

	// Configuration
	rootLabel string
	rank      map[string]int // nil disables order validation
	log       zerolog.Logger

	// Storage
	root         *Node
	header       map[string][]*Node // item → node-links in creation order
	hasOneBranch bool
	rooted       bool // every non-empty Insert started at the root
	nodes        int  // non-root nodes
	transactions int  // InsertTransaction calls
}

// NewTree creates an empty Tree: a root with count 0, an empty header table
// and HasOneBranch() == true.
// Complexity: O(len(opts))
func NewTree(opts ...Option) *Tree {
	t := &Tree{
		rootLabel:    RootLabel,
		log:          zerolog.Nop(),
		header:       make(map[string][]*Node),
		hasOneBranch: true,
		rooted:       true,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.root = newNode(t, t.rootLabel, 0, nil)

	return t
}
