package pratt

import "strconv"

// Invert solves n = result for the variable name, giving a new tree that
// computes name from a variable named result. The variable must occur exactly
// once in n, and every operator on the path to it must have an inverse rule
// for the side that holds it. n is not modified.
func (e *Evaluator) Invert(name string, n *Node, result string) (*Node, error) {
	if !contains(name, n) {
		return nil, &Error{
			Code: MissingVariable,
			Msg:  "variable " + strconv.Quote(name) + " does not occur in the expression",
			At:   n.Pos,
			Args: []interface{}{name},
		}
	}
	return e.invert(name, n, e.g.Variable(result))
}

// invert unwinds n, which contains name, around the accumulated result r.
func (e *Evaluator) invert(name string, n *Node, r *Node) (*Node, error) {
	switch n.Kind {
	case NodeWord:
		if n.Value != name {
			panic("pratt: invert reached " + strconv.Quote(n.Value) + " looking for " + strconv.Quote(name))
		}
		return r, nil
	case NodeOperator:
		// handled below
	default:
		panic("pratt: invert reached a " + n.Kind.String() + " literal looking for " + strconv.Quote(name))
	}
	if len(n.Args) != 2 {
		return nil, &Error{
			Code: Uninvertible,
			Msg:  "cannot invert expression " + n.Value + "RES",
			At:   n.Pos,
			Args: []interface{}{n.Value, n.Value + "RES"},
		}
	}
	a, b := n.Args[0], n.Args[1]
	inA, inB := contains(name, a), contains(name, b)
	var (
		side       int
		path, with *Node
		dir        string
	)
	switch {
	case inA && inB:
		return nil, &Error{
			Code: MultipleUse,
			Msg:  "multiple use of variable " + strconv.Quote(name),
			At:   n.Pos,
			Args: []interface{}{name},
		}
	case inA:
		side, path, with, dir = 0, a, b, "RES"+n.Value+"val"
	case inB:
		side, path, with, dir = 1, b, a, "val"+n.Value+"RES"
	default:
		panic("pratt: invert reached " + n.String() + " which does not contain " + strconv.Quote(name))
	}
	var inv InverseFunc
	if op := e.types.op(n.Value); op != nil {
		inv = op.Inv[side]
	}
	if inv == nil {
		return nil, &Error{
			Code: Uninvertible,
			Msg:  "cannot invert expression " + dir,
			At:   n.Pos,
			Args: []interface{}{n.Value, dir},
		}
	}
	return e.invert(name, path, inv(e.g, r, with))
}
