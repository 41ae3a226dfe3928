package pratt

import (
	"strconv"
	"strings"
)

// Node is a node in the abstract syntax tree of an expression. A tree is not
// modified once the parse that produced it completes.
type Node struct {
	Kind NodeKind
	// Value is the literal text of a leaf or the identity of an operator.
	// String leaves hold their content without quotes.
	Value string
	// Args are the operands of an operator, in source order. Leaves have none.
	Args []*Node
	// BP is the left binding power of the operator's symbol at the time the
	// node was created.
	BP int
	// Right is whether the operator's symbol is right-associative.
	Right bool
	// Const is the value registered for a constant word, or nil.
	Const interface{}
	// Pos is the source position of the token that created the node. Nodes
	// created outside of parsing have the zero Pos.
	Pos Pos
}

// NodeKind is the category of a Node.
type NodeKind int8

const (
	NodeNone NodeKind = iota

	NodeNumber   // numeric literal
	NodeString   // string literal
	NodeWord     // variable or constant name
	NodeOperator // operator applied to Args
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=NodeKind -trimprefix=Node
//go:generate go mod tidy

// IsLeaf returns whether n is a literal or a name.
func (n *Node) IsLeaf() bool {
	return n.Kind != NodeOperator
}

// String formats the tree with every operand bracketed, alternating round and
// square brackets by depth. It is meant for debugging; use Evaluator.Render
// for source text.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.Kind {
	case NodeNumber, NodeWord:
		b.WriteString(n.Value)
	case NodeString:
		b.WriteString(strconv.Quote(n.Value))
	case NodeOperator:
		switch len(n.Args) {
		case 0:
			b.WriteString(n.Value)
		case 1:
			b.WriteString(n.Value)
			n.Args[0].fmt(b, !square)
		default:
			for i, arg := range n.Args {
				if i > 0 {
					b.WriteString(n.Value)
				}
				arg.fmt(b, !square)
			}
		}
	default:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		b.WriteString(n.Value)
		b.WriteByte('$')
	}
}

// Equal returns whether two trees have the same structure, kinds, and values.
// Binding powers and positions are ignored.
func (n *Node) Equal(m *Node) bool {
	if n == nil || m == nil {
		return n == m
	}
	if n.Kind != m.Kind || n.Value != m.Value || len(n.Args) != len(m.Args) {
		return false
	}
	for i := range n.Args {
		if !n.Args[i].Equal(m.Args[i]) {
			return false
		}
	}
	return true
}
