// Package tree provides traversal and measurement utilities over the
// flattened node sequences produced by the newick parser. All walks are
// iterative — tree shape never dictates call-stack depth here.
package tree

import (
	"fmt"

	"github.com/corey/phylo/internal/domain/newick"
)

// Root returns the position of the root node. The parser always appends the
// root last.
func Root(nodes []newick.Node) int {
	return len(nodes) - 1
}

// Validate checks the structural invariants of a flattened tree: the
// sequence is non-empty, every internal node has at least one child, and
// every child position is strictly less than its parent's own position.
func Validate(nodes []newick.Node) error {
	if len(nodes) == 0 {
		return fmt.Errorf("empty node sequence")
	}
	for i, n := range nodes {
		if n.IsLeaf() {
			continue
		}
		if len(n.Children) == 0 {
			return fmt.Errorf("node %d: internal node with no children", i)
		}
		for _, c := range n.Children {
			if c < 0 || c >= i {
				return fmt.Errorf("node %d: child position %d does not precede it", i, c)
			}
		}
	}
	return nil
}

// PreOrder returns node positions root-first, children in input order.
func PreOrder(nodes []newick.Node) []int {
	if len(nodes) == 0 {
		return nil
	}
	order := make([]int, 0, len(nodes))
	stack := []int{Root(nodes)}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, i)
		kids := nodes[i].Children
		for k := len(kids) - 1; k >= 0; k-- {
			stack = append(stack, kids[k])
		}
	}
	return order
}

// PostOrder returns node positions children-first, ending at the root.
func PostOrder(nodes []newick.Node) []int {
	if len(nodes) == 0 {
		return nil
	}
	// A pre-order walk that visits children right-to-left, reversed, is a
	// left-to-right post-order.
	order := make([]int, 0, len(nodes))
	stack := []int{Root(nodes)}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, i)
		for _, c := range nodes[i].Children {
			stack = append(stack, c)
		}
	}
	for l, r := 0, len(order)-1; l < r; l, r = l+1, r-1 {
		order[l], order[r] = order[r], order[l]
	}
	return order
}

// Leaves returns the positions of all leaf nodes, in pre-order.
func Leaves(nodes []newick.Node) []int {
	var leaves []int
	for _, i := range PreOrder(nodes) {
		if nodes[i].IsLeaf() {
			leaves = append(leaves, i)
		}
	}
	return leaves
}

// Depths returns, for every node, the sum of branch lengths from the root
// down to that node. A missing branch length counts as zero.
func Depths(nodes []newick.Node) []float64 {
	depths := make([]float64, len(nodes))
	for _, i := range PreOrder(nodes) {
		for _, c := range nodes[i].Children {
			d := depths[i]
			if nodes[c].Length != nil {
				d += *nodes[c].Length
			}
			depths[c] = d
		}
	}
	return depths
}

// Height returns the maximum root-to-leaf branch-length sum.
func Height(nodes []newick.Node) float64 {
	depths := Depths(nodes)
	max := 0.0
	for _, i := range Leaves(nodes) {
		if depths[i] > max {
			max = depths[i]
		}
	}
	return max
}

// Stats summarizes a flattened tree.
type Stats struct {
	Nodes    int
	Leaves   int
	Internal int
	Height   float64
	MaxDepth int // edges on the longest root-to-leaf path
}

// Summarize computes Stats in one pass over the traversal.
func Summarize(nodes []newick.Node) Stats {
	s := Stats{Nodes: len(nodes), Height: Height(nodes)}
	levels := make([]int, len(nodes))
	for _, i := range PreOrder(nodes) {
		for _, c := range nodes[i].Children {
			levels[c] = levels[i] + 1
		}
		if nodes[i].IsLeaf() {
			s.Leaves++
			if levels[i] > s.MaxDepth {
				s.MaxDepth = levels[i]
			}
		} else {
			s.Internal++
		}
	}
	return s
}
