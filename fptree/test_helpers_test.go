package fptree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fpgrowth/fptree"
)

// buildTree inserts every transaction from the root and fails the test on error.
func buildTree(t *testing.T, txs ...[]string) *fptree.Tree {
	t.Helper()

	tree := fptree.NewTree()
	for _, tx := range txs {
		require.NoError(t, tree.InsertTransaction(tx), "InsertTransaction(%v)", tx)
	}

	return tree
}

// mustChild follows labels from n and fails the test if any step is missing.
func mustChild(t *testing.T, n *fptree.Node, labels ...string) *fptree.Node {
	t.Helper()

	for _, l := range labels {
		c, ok := n.Child(l)
		require.True(t, ok, "no child %q under %s", l, n)
		n = c
	}

	return n
}

// childLabels lists the labels of n's children in order.
func childLabels(n *fptree.Node) []string {
	var out []string
	for _, c := range n.Children() {
		out = append(out, c.Label())
	}

	return out
}
