package pratt

import (
	"strconv"
	"strings"
)

// Evaluator renders, compiles, and inverts expression trees. It is safe for
// concurrent use once its Grammar and Types are no longer modified.
type Evaluator struct {
	g     *Grammar
	types Types
}

// NewEvaluator creates an evaluator for trees parsed with g, using types for
// literal and operator rules.
func NewEvaluator(g *Grammar, types Types) *Evaluator {
	return &Evaluator{g: g, types: types}
}

// Grammar returns the evaluator's grammar.
func (e *Evaluator) Grammar() *Grammar {
	return e.g
}

// Func is a compiled expression. Names that were known globals at compile
// time are looked up in globals and all others in locals.
type Func func(globals, locals map[string]interface{}) (interface{}, error)

// CompileText renders n as an expression in the notation of the evaluation
// types. Names in globals render as g.name and all others as l.name.
func (e *Evaluator) CompileText(n *Node, globals map[string]bool) (string, error) {
	switch n.Kind {
	case NodeNumber, NodeString:
		t := e.types[n.Kind]
		if t == nil || t.Text == nil {
			if n.Kind == NodeString {
				return strconv.Quote(n.Value), nil
			}
			return n.Value, nil
		}
		return t.Text(n.Value), nil
	case NodeWord:
		if globals[n.Value] {
			return "g." + n.Value, nil
		}
		return "l." + n.Value, nil
	case NodeOperator:
		op := e.types.op(n.Value)
		if op == nil || op.Text == nil {
			return "", unknownOperation(n)
		}
		args := make([]string, len(n.Args))
		for i, arg := range n.Args {
			s, err := e.CompileText(arg, globals)
			if err != nil {
				return "", err
			}
			args[i] = s
		}
		return op.Text(args...), nil
	default:
		panic("pratt: invalid node kind " + n.Kind.String())
	}
}

// Compile converts n into a function. Whether each name refers to a global or
// a local is decided now from globals, not when the function is called.
func (e *Evaluator) Compile(n *Node, globals map[string]bool) (Func, error) {
	switch n.Kind {
	case NodeNumber, NodeString:
		v, err := e.literal(n)
		if err != nil {
			return nil, err
		}
		return func(_, _ map[string]interface{}) (interface{}, error) {
			return v, nil
		}, nil
	case NodeWord:
		name, global := n.Value, globals[n.Value]
		c, isConst := e.g.constant(name)
		if n.Const != nil {
			c, isConst = n.Const, true
		}
		return func(g, l map[string]interface{}) (interface{}, error) {
			vars := l
			if global {
				vars = g
			}
			if v, ok := vars[name]; ok {
				return v, nil
			}
			if isConst {
				return c, nil
			}
			return nil, &NameError{Name: name, Global: global}
		}, nil
	case NodeOperator:
		op := e.types.op(n.Value)
		if op == nil || op.Fn == nil {
			return nil, unknownOperation(n)
		}
		args := make([]Func, len(n.Args))
		for i, arg := range n.Args {
			f, err := e.Compile(arg, globals)
			if err != nil {
				return nil, err
			}
			args[i] = f
		}
		fn := op.Fn
		return func(g, l map[string]interface{}) (interface{}, error) {
			vals := make([]interface{}, len(args))
			for i, f := range args {
				v, err := f(g, l)
				if err != nil {
					return nil, err
				}
				vals[i] = v
			}
			return fn(vals...)
		}, nil
	default:
		panic("pratt: invalid node kind " + n.Kind.String())
	}
}

// Eval compiles n with the names in globals as known globals and calls the
// result.
func (e *Evaluator) Eval(n *Node, globals, locals map[string]interface{}) (interface{}, error) {
	known := make(map[string]bool, len(globals))
	for k := range globals {
		known[k] = true
	}
	f, err := e.Compile(n, known)
	if err != nil {
		return nil, err
	}
	return f(globals, locals)
}

// literal converts a literal node to its runtime value.
func (e *Evaluator) literal(n *Node) (interface{}, error) {
	t := e.types[n.Kind]
	if t == nil || t.Value == nil {
		return n.Value, nil
	}
	v, err := t.Value(n.Value)
	if err != nil {
		return nil, &Error{
			Code: BadLiteral,
			Msg:  "invalid " + strings.ToLower(n.Kind.String()) + " " + strconv.Quote(n.Value) + " for " + t.Name + ": " + err.Error(),
			At:   n.Pos,
			Args: []interface{}{n.Value},
		}
	}
	return v, nil
}

func unknownOperation(n *Node) error {
	return &Error{
		Code: UnknownOperation,
		Msg:  "unknown operator " + strconv.Quote(n.Value),
		At:   n.Pos,
		Args: []interface{}{n.Value},
	}
}

// Contains returns whether the name occurs anywhere in n.
func (e *Evaluator) Contains(name string, n *Node) bool {
	return contains(name, n)
}

func contains(name string, n *Node) bool {
	if n.Kind == NodeWord && n.Value == name {
		return true
	}
	for _, arg := range n.Args {
		if contains(name, arg) {
			return true
		}
	}
	return false
}
