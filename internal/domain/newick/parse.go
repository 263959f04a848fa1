package newick

import (
	"fmt"
	"strconv"
)

// labelStops are the bytes that terminate an unquoted leaf label, along
// with whitespace.
const labelStops = ":[,()]"

// DefaultMaxDepth caps parenthesis nesting so that a pathological input
// cannot exhaust the call stack.
const DefaultMaxDepth = 4096

// ParseError describes a structural failure in the input. Offset is the
// byte position of the violation.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("newick: %s at offset %d", e.Msg, e.Offset)
}

// Opts controls parse behavior outside the grammar itself.
type Opts struct {
	// AllowTrailing accepts arbitrary unconsumed text after a structurally
	// complete tree. When false (the default) only whitespace and a single
	// ';' terminator may follow; anything else is an error.
	AllowTrailing bool

	// MaxDepth caps parenthesis nesting. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Parse parses a Newick tree description with default options. On success
// the returned slice is non-empty and its last element is the root; every
// internal node's child positions point strictly backwards. On failure the
// result is nil — a failed parse never yields a partial sequence.
func Parse(text string) ([]Node, error) {
	return ParseWith(text, Opts{})
}

// ParseWith is Parse with explicit options.
func ParseWith(text string, opts Opts) ([]Node, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	lead := skipSpaces(text)
	if lead == len(text) {
		return nil, &ParseError{Offset: 0, Msg: "empty input"}
	}

	p := &parser{input: text, maxDepth: maxDepth}
	n, err := p.subtree(0, 0)
	if err != nil {
		return nil, err
	}

	if !opts.AllowTrailing {
		if off, ok := trailingStart(text, n); ok {
			return nil, &ParseError{
				Offset: off,
				Msg:    fmt.Sprintf("trailing characters after tree: %q", clip(text[off:])),
			}
		}
	}
	return p.nodes, nil
}

// trailingStart reports whether text[consumed:] holds anything beyond
// whitespace and one optional ';' terminator, and where it starts.
func trailingStart(text string, consumed int) (int, bool) {
	i := consumed + skipSpaces(text[consumed:])
	if i < len(text) && text[i] == ';' {
		i++
		i += skipSpaces(text[i:])
	}
	if i < len(text) {
		return i, true
	}
	return 0, false
}

func clip(s string) string {
	if len(s) > 8 {
		return s[:8] + "..."
	}
	return s
}

// parser owns the growing node sequence for a single parse invocation. It
// is never shared: a failed parse simply drops the whole thing.
type parser struct {
	input    string
	nodes    []Node
	maxDepth int
}

// subtree parses one subtree starting at absolute offset pos, appends the
// records for its descendants and then its own record to p.nodes, and
// returns the number of input bytes consumed.
func (p *parser) subtree(pos, depth int) (int, error) {
	if depth > p.maxDepth {
		return 0, &ParseError{Offset: pos, Msg: "nesting exceeds depth limit"}
	}

	cur := pos + skipSpaces(p.input[pos:])
	var node Node

	if cur < len(p.input) && p.input[cur] == '(' {
		cur++ // consume '('

		// A group with zero children is malformed.
		if probe := cur + skipSpaces(p.input[cur:]); probe < len(p.input) && p.input[probe] == ')' {
			return 0, &ParseError{Offset: probe, Msg: "empty parenthesis group"}
		}

		var children []int
		for {
			used, err := p.subtree(cur, depth+1)
			if err != nil {
				return 0, err
			}
			cur += used
			children = append(children, len(p.nodes)-1)

			cur += skipSpaces(p.input[cur:])
			if cur >= len(p.input) {
				return 0, &ParseError{Offset: cur, Msg: "unterminated parenthesis group"}
			}
			if p.input[cur] == ',' {
				cur++
				continue
			}
			if p.input[cur] != ')' {
				return 0, &ParseError{
					Offset: cur,
					Msg:    fmt.Sprintf("expected ',' or ')', got %q", p.input[cur]),
				}
			}
			cur++
			break
		}
		node.Children = children
	} else {
		// A terminal: the label is a maximal run of non-delimiter bytes,
		// possibly empty.
		start := cur
		for cur < len(p.input) && !isSpace(p.input[cur]) && !containsChar(p.input[cur], labelStops) {
			cur++
		}
		node.Label = p.input[start:cur]
	}

	cur += skipSpaces(p.input[cur:])

	if cur+1 < len(p.input) && p.input[cur] == '[' && p.input[cur+1] == '&' {
		pairs, used, err := parseAnnotations(p.input[cur+2:], cur+2)
		if err != nil {
			return 0, err
		}
		node.Annotations = pairs
		cur += used + 2
		cur += skipSpaces(p.input[cur:])
	}

	if cur < len(p.input) && p.input[cur] == ':' {
		cur++
		cur += skipSpaces(p.input[cur:])
		width := numeralLen(p.input[cur:])
		if width == 0 {
			return 0, &ParseError{Offset: cur, Msg: "malformed branch length"}
		}
		length, err := strconv.ParseFloat(p.input[cur:cur+width], 64)
		if err != nil {
			return 0, &ParseError{Offset: cur, Msg: "malformed branch length"}
		}
		node.Length = &length
		cur += width
	}

	p.nodes = append(p.nodes, node)
	return cur - pos, nil
}
