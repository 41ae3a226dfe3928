package arith

import (
	"math"
	"strconv"

	"github.com/zephyrtronium/pratt"
)

// Float returns the evaluation type for float64 numbers. Operations follow
// IEEE 754, so division by zero gives an infinity rather than an error. int
// and int64 operands are converted.
func Float() *pratt.Type {
	t := &pratt.Type{
		Name: "float",
		Value: func(lit string) (interface{}, error) {
			return strconv.ParseFloat(lit, 64)
		},
		Ops: map[string]*pratt.Op{
			"+": floatOp("+", "(%s+%s)", func(a, b float64) float64 { return a + b }),
			"-": floatOp("-", "(%s-%s)", func(a, b float64) float64 { return a - b }),
			"*": floatOp("*", "(%s*%s)", func(a, b float64) float64 { return a * b }),
			"/": floatOp("/", "(%s/%s)", func(a, b float64) float64 { return a / b }),
			"^": floatOp("^", "math.Pow(%s, %s)", math.Pow),
		},
	}
	neg := t.Ops["-"]
	binary := neg.Fn
	neg.Text = unaryText("-", neg.Text)
	neg.Fn = func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return binary(args...)
		}
		x, err := floats("-", args)
		if err != nil {
			return nil, err
		}
		return -x[0], nil
	}
	for name, inv := range inverses {
		t.Ops[name].Inv = inv
	}
	floatFuncs(t.Ops)
	return t
}

// FloatTypes returns the types for evaluating with float64 numbers.
func FloatTypes() pratt.Types {
	return pratt.Types{
		pratt.NodeNumber: Float(),
		pratt.NodeString: String(),
	}
}

func floatOp(op, format string, f func(a, b float64) float64) *pratt.Op {
	return &pratt.Op{
		Text: binaryText(format),
		Fn: func(args ...interface{}) (interface{}, error) {
			if err := arity(op, args, 2); err != nil {
				return nil, err
			}
			x, err := floats(op, args)
			if err != nil {
				return nil, err
			}
			return f(x[0], x[1]), nil
		},
	}
}

func floats(op string, args []interface{}) ([]float64, error) {
	r := make([]float64, len(args))
	for i, arg := range args {
		switch x := arg.(type) {
		case float64:
			r[i] = x
		case int64:
			r[i] = float64(x)
		case int:
			r[i] = float64(x)
		default:
			return nil, &OperandError{Op: op, Arg: i + 1, Value: arg, Want: "float"}
		}
	}
	return r, nil
}
