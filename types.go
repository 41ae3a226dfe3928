package pratt

// Type supplies the evaluation rules for one kind of literal. The operator
// rules of the NodeNumber type are used for every operator node.
type Type struct {
	// Name identifies the type in messages.
	Name string
	// Text renders a literal in compiled text. If nil, the literal text is
	// used as is.
	Text func(lit string) string
	// Value converts a literal to a runtime value. If nil, the literal text
	// itself is the value.
	Value func(lit string) (interface{}, error)
	// Ops holds the rules for each operator identity.
	Ops map[string]*Op
}

// Op is the set of rules for one operator.
type Op struct {
	// Text renders the operator applied to compiled operand texts.
	Text func(args ...string) string
	// Fn computes the operator. It receives one argument per operand and must
	// not modify them, since compiled literals are shared between calls.
	Fn func(args ...interface{}) (interface{}, error)
	// Inv holds the inverse rules by the operand position that contains the
	// variable being solved for. Inv[0](g, r, b) gives a node computing a
	// from r = a op b; Inv[1](g, r, a) gives a node computing b. A nil rule
	// means the operator cannot be inverted on that side.
	Inv [2]InverseFunc
}

// InverseFunc builds the node that undoes one operator application. r is the
// node computing the operator's result, and other is the operand that does
// not contain the variable.
type InverseFunc func(g *Grammar, r, other *Node) *Node

// Types maps literal kinds to their evaluation rules. Only NodeNumber and
// NodeString are consulted.
type Types map[NodeKind]*Type

// op returns the rule for an operator, or nil.
func (t Types) op(name string) *Op {
	num := t[NodeNumber]
	if num == nil {
		return nil
	}
	return num.Ops[name]
}
