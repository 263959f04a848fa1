// Package newick parses Newick-format phylogenetic trees, optionally
// annotated with inline [&name=value,...] metadata blocks, into a flattened,
// index-addressed node sequence. Children are recorded as positions into the
// same backing slice rather than pointers, so a parsed tree has no cycles by
// construction and needs no ownership bookkeeping.
//
// The parse is all-or-nothing: any structural violation anywhere in the
// input aborts the whole parse and nothing built so far is visible to the
// caller.
package newick

// Annotation is a single name=value pair from a [&...] block, in the order
// it appeared in the input.
type Annotation struct {
	Name  string
	Value string
}

// Node is one parsed tree node, leaf or internal.
type Node struct {
	// Label is the text attached directly to the node. Internal nodes have
	// an empty label; leaves may too (an unnamed taxon).
	Label string

	// Length is the branch length to the parent, or nil if the input had
	// no :<number> suffix for this node.
	Length *float64

	// Children holds the positions of this node's children in the backing
	// slice, in left-to-right input order. Every child position is strictly
	// less than the node's own position. nil marks a leaf.
	Children []int

	// Annotations holds the [&...] pairs attached to this node, if any.
	Annotations []Annotation
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Children == nil
}
