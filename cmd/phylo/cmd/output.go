package cmd

import (
	"fmt"
	"strings"

	"github.com/corey/phylo/internal/domain/newick"
	"github.com/corey/phylo/internal/domain/tree"
)

// formatNodeTable renders the flattened node sequence, one line per node in
// parse order. The root is always the last line.
func formatNodeTable(nodes []newick.Node) string {
	var b strings.Builder
	for i, n := range nodes {
		fmt.Fprintf(&b, "%4d  ", i)
		if n.IsLeaf() {
			fmt.Fprintf(&b, "leaf     %-12q", n.Label)
		} else {
			fmt.Fprintf(&b, "internal children=%v", n.Children)
		}
		if n.Length != nil {
			fmt.Fprintf(&b, "  length=%g", *n.Length)
		}
		for _, a := range n.Annotations {
			fmt.Fprintf(&b, "  %s=%s", a.Name, a.Value)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// formatIndent renders the tree root-first with two-space indenting per
// level, the way a directory listing reads.
func formatIndent(nodes []newick.Node) string {
	var b strings.Builder

	var walk func(i, depth int)
	walk = func(i, depth int) {
		n := nodes[i]
		label := n.Label
		if label == "" {
			label = "·"
		}
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(label)
		if n.Length != nil {
			fmt.Fprintf(&b, " (%g)", *n.Length)
		}
		b.WriteByte('\n')
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(tree.Root(nodes), 0)
	return b.String()
}
