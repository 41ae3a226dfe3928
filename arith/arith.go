// Package arith provides an arithmetic grammar and evaluation types for
// package pratt: float64 numbers, arbitrary-precision decimals, and strings.
//
// The grammar has the usual powers, from loosest to tightest: comparisons
// (right-associative), + and -, * and /, then ^ (right-associative). Prefix -
// and ! bind more tightly than any infix operator, so "-2^2" is "(-2)^2". The
// names in Functions are prefix operators of the same power: "sqrt x^2" is
// "(sqrt x)^2", and "sqrt(x^2)" needs its brackets.
//
package arith

import (
	"fmt"
	"math"
	"strconv"

	"github.com/zephyrtronium/pratt"
)

// Binding powers of the arithmetic grammar.
const (
	CmpPower = 40
	AddPower = 50
	MulPower = 60
	PowPower = 70
)

// Grammar creates the arithmetic grammar over pratt.DefaultLexicon.
func Grammar() *pratt.Grammar {
	g := pratt.NewGrammar(pratt.DefaultLexicon())
	g.Declare(",", 0)
	g.Declare(";", 0)

	g.Constant("true", true)
	g.Constant("false", false)
	g.Constant("null", nil)
	g.Constant("pi", math.Pi)

	for _, op := range []string{"<", "<=", ">", ">=", "==", "!="} {
		g.InfixRight(op, CmpPower, nil)
	}
	g.InfixLeft("+", AddPower, nil)
	g.InfixLeft("-", AddPower, nil)
	g.InfixLeft("*", MulPower, nil)
	g.InfixLeft("/", MulPower, nil)
	g.InfixRight("^", PowPower, nil)

	g.Prefix("!", nil)
	g.Prefix("-", nil)
	for _, name := range Functions {
		g.Prefix(name, nil)
	}
	g.Groups()
	return g
}

// inverses holds the inverse rules shared by every numeric type.
var inverses = map[string][2]pratt.InverseFunc{
	"+": {
		// r = a+b -> a = r-b
		func(g *pratt.Grammar, r, b *pratt.Node) *pratt.Node { return g.Operator("-", r, b) },
		// r = a+b -> b = r-a
		func(g *pratt.Grammar, r, a *pratt.Node) *pratt.Node { return g.Operator("-", r, a) },
	},
	"-": {
		// r = a-b -> a = r+b
		func(g *pratt.Grammar, r, b *pratt.Node) *pratt.Node { return g.Operator("+", r, b) },
		// r = a-b -> b = a-r
		func(g *pratt.Grammar, r, a *pratt.Node) *pratt.Node { return g.Operator("-", a, r) },
	},
	"*": {
		func(g *pratt.Grammar, r, b *pratt.Node) *pratt.Node { return g.Operator("/", r, b) },
		func(g *pratt.Grammar, r, a *pratt.Node) *pratt.Node { return g.Operator("/", r, a) },
	},
	"/": {
		// r = a/b -> a = r*b
		func(g *pratt.Grammar, r, b *pratt.Node) *pratt.Node { return g.Operator("*", r, b) },
		// r = a/b -> b = a/r
		func(g *pratt.Grammar, r, a *pratt.Node) *pratt.Node { return g.Operator("/", a, r) },
	},
}

// OperandError is an error from an operator applied to a value of the wrong
// type.
type OperandError struct {
	// Op is the operator.
	Op string
	// Arg is the 1-based index of the operand.
	Arg int
	// Value is the operand.
	Value interface{}
	// Want names the type the operator requires.
	Want string
}

func (err *OperandError) Error() string {
	return "operand " + strconv.Itoa(err.Arg) + " of " + strconv.Quote(err.Op) + " is not a " + err.Want
}

// arity checks the operand count for an operator that accepts any of the given
// counts.
func arity(op string, args []interface{}, n ...int) error {
	for _, k := range n {
		if len(args) == k {
			return nil
		}
	}
	return &pratt.Error{
		Code: pratt.UnknownOperation,
		Msg:  "no " + strconv.Itoa(len(args)) + "-operand form of " + strconv.Quote(op),
		Args: []interface{}{op},
	}
}

// binaryText creates a text rule from a format with one verb per operand.
func binaryText(format string) func(args ...string) string {
	return func(args ...string) string {
		v := make([]interface{}, len(args))
		for i, arg := range args {
			v[i] = arg
		}
		return fmt.Sprintf(format, v...)
	}
}

// unaryText extends a binary text rule with a prefix form.
func unaryText(op string, binary func(args ...string) string) func(args ...string) string {
	return func(args ...string) string {
		if len(args) == 1 {
			return "(" + op + args[0] + ")"
		}
		return binary(args...)
	}
}

// String returns the evaluation type for string literals.
func String() *pratt.Type {
	return &pratt.Type{
		Name: "string",
		Text: strconv.Quote,
	}
}
