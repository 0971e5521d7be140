package fptree_test

import (
	"bytes"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fpgrowth/fptree"
)

func TestNewTree_Empty(t *testing.T) {
	tree := fptree.NewTree()
	root := tree.Root()

	assert.Equal(t, fptree.RootLabel, root.Label())
	assert.Equal(t, 0, root.Count())
	assert.Nil(t, root.Parent())
	assert.True(t, root.IsRoot())
	assert.NotNil(t, root.Children())
	assert.Empty(t, root.Children())

	assert.True(t, tree.HasOneBranch())
	assert.Equal(t, 0, tree.NodeCount())
	assert.Empty(t, tree.Items())
	assert.Empty(t, tree.HeaderTable())
	assert.NoError(t, tree.Validate())
}

func TestNewTree_WithRootLabel(t *testing.T) {
	tree := fptree.NewTree(fptree.WithRootLabel("null"))
	assert.Equal(t, "null", tree.Root().Label())
	assert.Equal(t, "null", tree.RootLabel())

	// Empty label keeps the default.
	tree = fptree.NewTree(fptree.WithRootLabel(""))
	assert.Equal(t, fptree.RootLabel, tree.RootLabel())
}

func TestInsert_SameSingleItemTwice(t *testing.T) {
	tree := buildTree(t, []string{"a"}, []string{"a"})

	a := mustChild(t, tree.Root(), "a")
	assert.Equal(t, 2, a.Count())
	assert.Len(t, tree.Root().Children(), 1)
	assert.Len(t, tree.Nodes("a"), 1)
	assert.Same(t, a, tree.Nodes("a")[0])
	assert.Equal(t, 1, tree.NodeCount())
	assert.True(t, tree.HasOneBranch())
	assert.Equal(t, 0, tree.Root().Count(), "root count never changes")
}

func TestInsert_PrefixSharing(t *testing.T) {
	tree := buildTree(t, []string{"a", "b", "c"})
	assert.True(t, tree.HasOneBranch())

	require.NoError(t, tree.InsertTransaction([]string{"a", "b", "d"}))

	a := mustChild(t, tree.Root(), "a")
	b := mustChild(t, a, "b")
	assert.Equal(t, []string{"b"}, childLabels(a))
	assert.Equal(t, []string{"c", "d"}, childLabels(b))
	assert.Equal(t, 2, a.Count())
	assert.Equal(t, 2, b.Count())
	assert.Equal(t, 1, mustChild(t, b, "c").Count())
	assert.Equal(t, 1, mustChild(t, b, "d").Count())

	// "d" is a first occurrence: branching by shared prefix does not flip the label rule.
	assert.True(t, tree.HasOneBranch())
	assert.False(t, tree.IsSinglePath())
	assert.NoError(t, tree.Validate())
}

func TestInsert_NewLabelSiblingKeepsOneBranch(t *testing.T) {
	tree := buildTree(t, []string{"a", "b", "c"}, []string{"a", "e"})

	assert.Equal(t, []string{"b", "e"}, childLabels(mustChild(t, tree.Root(), "a")))
	assert.True(t, tree.HasOneBranch())
	assert.False(t, tree.IsSinglePath())
}

func TestInsert_RepeatedLabelBranches(t *testing.T) {
	tree := buildTree(t, []string{"a", "b"})
	assert.True(t, tree.HasOneBranch())

	require.NoError(t, tree.InsertTransaction([]string{"c", "b"}))
	assert.False(t, tree.HasOneBranch())

	links := tree.Nodes("b")
	require.Len(t, links, 2)
	assert.Equal(t, "a", links[0].Parent().Label())
	assert.Equal(t, "c", links[1].Parent().Label())
	assert.NoError(t, tree.Validate())
}

func TestInsert_BranchFlagIsMonotonic(t *testing.T) {
	tree := buildTree(t, []string{"a", "b"}, []string{"b"})
	require.False(t, tree.HasOneBranch())

	// Only count increments and fresh labels from here on.
	for i := 0; i < 10; i++ {
		require.NoError(t, tree.InsertTransaction([]string{"a", "b"}))
		require.NoError(t, tree.InsertTransaction([]string{"b"}))
		assert.False(t, tree.HasOneBranch())
	}
	require.NoError(t, tree.InsertTransaction([]string{"z"}))
	assert.False(t, tree.HasOneBranch())
}

func TestInsert_IncrementDoesNotBranch(t *testing.T) {
	tree := buildTree(t, []string{"a", "b", "c"})
	for i := 0; i < 5; i++ {
		require.NoError(t, tree.InsertTransaction([]string{"a", "b"}))
	}

	assert.True(t, tree.HasOneBranch())
	assert.True(t, tree.IsSinglePath())
	assert.Equal(t, 6, mustChild(t, tree.Root(), "a", "b").Count())
	assert.Equal(t, 1, mustChild(t, tree.Root(), "a", "b", "c").Count())
}

func TestInsert_EmptyTransaction(t *testing.T) {
	tree := buildTree(t, []string{"a", "b"}, []string{"a"})
	before := tree.String()

	require.NoError(t, tree.InsertTransaction(nil))
	require.NoError(t, tree.InsertTransaction([]string{}))
	require.NoError(t, tree.Insert(nil, mustChild(t, tree.Root(), "a")))

	assert.Equal(t, before, tree.String())
	assert.Equal(t, 2, tree.NodeCount())
	assert.Equal(t, 4, tree.Transactions(), "empty transactions still count as input records")
}

func TestInsert_FromInnerParent(t *testing.T) {
	tree := buildTree(t, []string{"a"})
	a := mustChild(t, tree.Root(), "a")

	require.NoError(t, tree.Insert([]string{"b", "c"}, a))
	require.NoError(t, tree.Insert([]string{"b"}, a))

	assert.Equal(t, 1, a.Count(), "parent itself is not incremented")
	assert.Equal(t, 2, mustChild(t, a, "b").Count())
	assert.Equal(t, 1, mustChild(t, a, "b", "c").Count())
	assert.Equal(t, 1, tree.Transactions())
	require.NoError(t, tree.Validate())
}

func TestInsert_FromInnerParentRejectsLabelOnPath(t *testing.T) {
	tree := buildTree(t, []string{"a", "b"})
	b := mustChild(t, tree.Root(), "a", "b")
	before := tree.String()

	assert.ErrorIs(t, tree.Insert([]string{"a"}, b), fptree.ErrDuplicateItem)
	assert.ErrorIs(t, tree.Insert([]string{"c", "b"}, b), fptree.ErrDuplicateItem)
	assert.Equal(t, before, tree.String())

	// Labels off the path are fine.
	require.NoError(t, tree.Insert([]string{"c"}, b))
	assert.Equal(t, 1, mustChild(t, b, "c").Count())
	require.NoError(t, tree.Validate())
}

func TestInsert_CountVisibleThroughHeaderTable(t *testing.T) {
	tree := buildTree(t, []string{"a"})
	link := tree.Nodes("a")[0]
	assert.Equal(t, 1, link.Count())

	require.NoError(t, tree.InsertTransaction([]string{"a"}))
	assert.Equal(t, 2, link.Count())
	assert.Equal(t, 2, tree.Support("a"))
}

func TestInsert_Errors(t *testing.T) {
	other := fptree.NewTree()

	cases := []struct {
		name   string
		items  []string
		parent func(tr *fptree.Tree) *fptree.Node
		want   error
	}{
		{"nil parent", []string{"a"}, func(*fptree.Tree) *fptree.Node { return nil }, fptree.ErrNilParent},
		{"foreign parent", []string{"a"}, func(*fptree.Tree) *fptree.Node { return other.Root() }, fptree.ErrForeignParent},
		{"empty item", []string{"a", ""}, (*fptree.Tree).Root, fptree.ErrEmptyItem},
		{"reserved item", []string{fptree.RootLabel}, (*fptree.Tree).Root, fptree.ErrReservedItem},
		{"duplicate item", []string{"a", "x", "a"}, (*fptree.Tree).Root, fptree.ErrDuplicateItem},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tree := buildTree(t, []string{"a", "b"}, []string{"c"})
			before := tree.String()

			err := tree.Insert(tc.items, tc.parent(tree))
			assert.ErrorIs(t, err, tc.want)

			// Rejected transactions leave no trace.
			assert.Equal(t, before, tree.String())
			assert.True(t, tree.HasOneBranch())
			assert.NoError(t, tree.Validate())
		})
	}
}

func TestInsert_WithItemRank(t *testing.T) {
	rank := map[string]int{"f": 0, "c": 1, "a": 2}
	tree := fptree.NewTree(fptree.WithItemRank(rank))

	// Mutating the caller's map afterwards has no effect.
	rank["zz"] = 9

	require.NoError(t, tree.InsertTransaction([]string{"f", "c", "a"}))
	require.NoError(t, tree.InsertTransaction([]string{"f", "a"}))

	assert.ErrorIs(t, tree.InsertTransaction([]string{"c", "f"}), fptree.ErrUnsortedTransaction)
	assert.ErrorIs(t, tree.InsertTransaction([]string{"f", "zz"}), fptree.ErrUnrankedItem)
	assert.Equal(t, 2, tree.Transactions())
	assert.NoError(t, tree.Validate())
}

func TestInsert_LoggerReportsBranching(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	tree := fptree.NewTree(fptree.WithLogger(log))

	require.NoError(t, tree.InsertTransaction([]string{"a", "b"}))
	assert.NotContains(t, buf.String(), "item branched")

	require.NoError(t, tree.InsertTransaction([]string{"b"}))
	assert.Contains(t, buf.String(), "item branched")
	assert.Equal(t, 1, strings.Count(buf.String(), "item branched"))

	// Already false: no repeated event.
	require.NoError(t, tree.InsertTransaction([]string{"c", "b"}))
	assert.Equal(t, 1, strings.Count(buf.String(), "item branched"))
}

// TestInsert_RandomWorkload checks count conservation and header completeness
// against a brute-force recount over generated transactions.
func TestInsert_RandomWorkload(t *testing.T) {
	alphabet := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	rng := rand.New(rand.NewSource(42))

	tree := fptree.NewTree()
	var txs [][]string
	for i := 0; i < 500; i++ {
		var tx []string
		for _, item := range alphabet {
			if rng.Intn(3) == 0 {
				tx = append(tx, item) // alphabet order stands in for frequency order
			}
		}
		txs = append(txs, tx)
		require.NoError(t, tree.InsertTransaction(tx))
	}
	require.NoError(t, tree.Validate())

	// Every node's count equals the number of transactions whose prefix is
	// exactly the node's root path.
	prefixCount := make(map[string]int)
	for _, tx := range txs {
		for k := 1; k <= len(tx); k++ {
			prefixCount[strings.Join(tx[:k], "/")]++
		}
	}

	visited := 0
	err := tree.Walk(func(n *fptree.Node, depth int) error {
		if n.IsRoot() {
			return nil
		}
		visited++
		path := append(n.PrefixPath(), n.Label())
		assert.Equal(t, depth, n.Depth())
		assert.Equal(t, prefixCount[strings.Join(path, "/")], n.Count(), "node %v", path)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, len(prefixCount), visited)
	assert.Equal(t, visited, tree.NodeCount())

	// Header completeness: every node once, under its own label.
	total := 0
	for item, links := range tree.HeaderTable() {
		for _, n := range links {
			assert.Equal(t, item, n.Label())
		}
		total += len(links)
	}
	assert.Equal(t, visited, total)

	// Support equals plain transaction frequency.
	for _, item := range alphabet {
		want := 0
		for _, tx := range txs {
			if i := sort.SearchStrings(tx, item); i < len(tx) && tx[i] == item {
				want++
			}
		}
		assert.Equal(t, want, tree.Support(item), "support of %q", item)
	}
}

func TestSinglePath(t *testing.T) {
	tree := buildTree(t, []string{"a", "b", "c"}, []string{"a", "b"})

	path, ok := tree.SinglePath()
	require.True(t, ok)
	require.Len(t, path, 3)
	assert.Equal(t, "a:2", path[0].String())
	assert.Equal(t, "b:2", path[1].String())
	assert.Equal(t, "c:1", path[2].String())

	require.NoError(t, tree.InsertTransaction([]string{"x"}))
	path, ok = tree.SinglePath()
	assert.False(t, ok)
	assert.Nil(t, path)
	assert.True(t, tree.HasOneBranch(), "label rule and structural rule differ here")

	empty := fptree.NewTree()
	path, ok = empty.SinglePath()
	assert.True(t, ok)
	assert.Empty(t, path)
	assert.True(t, empty.IsSinglePath())
}

func TestWalk_StopsOnError(t *testing.T) {
	tree := buildTree(t, []string{"a", "b"}, []string{"c"})
	stop := assert.AnError

	var seen []string
	err := tree.Walk(func(n *fptree.Node, _ int) error {
		seen = append(seen, n.Label())
		if n.Label() == "b" {
			return stop
		}
		return nil
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{fptree.RootLabel, "a", "b"}, seen)
}
