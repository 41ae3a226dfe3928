package arith

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
	"github.com/zephyrtronium/pratt"
)

// Functions are the names of the functions of one variable that the Float and
// Decimal types implement. Grammar registers each as a prefix operator, so
// "exp x" and "exp(x+1)" both apply exp to the operand.
var Functions = []string{"abs", "exp", "ln", "log", "sqrt"}

func floatFuncs(ops map[string]*pratt.Op) {
	ops["abs"] = floatFunc("abs", "math.Abs", math.Abs)
	ops["exp"] = floatFunc("exp", "math.Exp", math.Exp)
	ops["ln"] = floatFunc("ln", "math.Log", math.Log)
	ops["log"] = floatFunc("log", "math.Log10", math.Log10)
	ops["sqrt"] = floatFunc("sqrt", "math.Sqrt", math.Sqrt)
}

func floatFunc(name, text string, f func(float64) float64) *pratt.Op {
	return &pratt.Op{
		Text: func(args ...string) string {
			return text + "(" + args[0] + ")"
		},
		Fn: func(args ...interface{}) (interface{}, error) {
			if err := arity(name, args, 1); err != nil {
				return nil, err
			}
			x, err := floats(name, args)
			if err != nil {
				return nil, err
			}
			return f(x[0]), nil
		},
	}
}

func (d decimal) funcs(ops map[string]*pratt.Op) {
	ops["abs"] = d.monadic("abs", "Abs", nil, (*big.Float).Abs)
	ops["exp"] = d.monadic("exp", "Exp", finite, exp)
	ops["ln"] = d.monadic("ln", "Ln", positive, bigfloat.Log)
	ops["log"] = d.monadic("log", "Log", positive, func(out, in *big.Float) *big.Float {
		bigfloat.Log(out, in)
		ten := new(big.Float).SetPrec(out.Prec()).SetInt64(10)
		bigfloat.Log(ten, ten)
		return out.Quo(out, ten)
	})
	ops["sqrt"] = d.monadic("sqrt", "Sqrt", nonnegative, (*big.Float).Sqrt)
}

// exp computes e^in, going directly to Inf or 0 when the result is out of
// range.
func exp(out, in *big.Float) *big.Float {
	f, _ := in.Float64()
	switch overflow(f * math.Log2E) {
	case 1:
		return out.SetInf(false)
	case -1:
		return out.SetInt64(0)
	}
	return bigfloat.Exp(out, in)
}

func finite(x *big.Float) bool {
	return !x.IsInf()
}

func positive(x *big.Float) bool {
	return x.Sign() > 0 && !x.IsInf()
}

func nonnegative(x *big.Float) bool {
	return x.Sign() >= 0
}

// monadic wraps a function of one variable. f must set out to its result; its
// return value is ignored. If domain is not nil, arguments for which it
// returns false give a DomainError.
func (d decimal) monadic(name, method string, domain func(*big.Float) bool, f func(out, in *big.Float) *big.Float) *pratt.Op {
	return &pratt.Op{
		Text: func(args ...string) string {
			return args[0] + "." + method + "()"
		},
		Fn: func(args ...interface{}) (r interface{}, err error) {
			if err := arity(name, args, 1); err != nil {
				return nil, err
			}
			x, err := d.operands(name, args)
			if err != nil {
				return nil, err
			}
			if domain != nil && !domain(x[0]) {
				return nil, &DomainError{X: x[0], Arg: 1, Func: name}
			}
			defer catchNaN(&err)
			out := d.new()
			f(out, x[0])
			return out, nil
		},
	}
}
