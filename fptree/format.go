// File: format.go
// Role: Deterministic text rendering for logs and golden tests.
// Not a wire format; the layout may change between versions.

package fptree

import (
	"bufio"
	"io"
	"sort"
	"strings"
)

const indentUnit = "  "

// WriteTo writes the diagnostic dump of t to w: one header-table line
// followed by the tree in pre-order, each node indented two spaces per level.
//
//	FPTree [headerTable = {a:[a:2], b:[b:1 b:1]}]
//	RootNode:0
//	  a:2
//	    b:1
//	  b:1
//
// Header entries are sorted by label; nodes and children keep creation
// order, so an unchanged tree always renders to the same bytes.
func (t *Tree) WriteTo(w io.Writer) (int64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	t.writeHeader(bw)
	_ = walk(t.root, 0, func(n *Node, depth int) error {
		for i := 0; i < depth; i++ {
			bw.WriteString(indentUnit)
		}
		bw.WriteString(n.String())
		bw.WriteByte('\n')
		return nil
	})
	// bufio.Writer is sticky on errors; Flush reports the first one.
	err := bw.Flush()

	return cw.n, err
}

// String returns the same dump as WriteTo.
func (t *Tree) String() string {
	var sb strings.Builder
	_, _ = t.WriteTo(&sb)

	return sb.String()
}

// writeHeader renders the header line. Caller holds mu.
func (t *Tree) writeHeader(bw *bufio.Writer) {
	items := make([]string, 0, len(t.header))
	for item := range t.header {
		items = append(items, item)
	}
	sort.Strings(items)

	bw.WriteString("FPTree [headerTable = {")
	for i, item := range items {
		if i > 0 {
			bw.WriteString(", ")
		}
		bw.WriteString(item)
		bw.WriteString(":[")
		for j, n := range t.header[item] {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(n.String())
		}
		bw.WriteByte(']')
	}
	bw.WriteString("}]\n")
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	k, err := c.w.Write(p)
	c.n += int64(k)

	return k, err
}
