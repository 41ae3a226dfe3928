package arith

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
	"github.com/zephyrtronium/pratt"
)

// ErrDivisionByZero is returned by decimal operations that divide by zero.
var ErrDivisionByZero = errors.New("division by zero")

// DomainError is an error returned when an operator is applied to operands
// outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X *big.Float
	// Arg is the 1-based index of the argument.
	Arg int
	// Func is a name identifying the operator.
	Func string
}

func (err *DomainError) Error() string {
	r := err.X.String() + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

// Decimal returns the evaluation type for arbitrary-precision numbers with
// prec bits of mantissa. Results are new *big.Float values; operands are never
// modified. float64 and int64 operands, such as the values of constants, are
// converted. Operations with no defined result, like Inf-Inf, return a
// big.ErrNaN. Results too large or too small for a big.Float are Inf or 0.
func Decimal(prec uint) *pratt.Type {
	d := decimal{prec: prec}
	t := &pratt.Type{
		Name: "decimal",
		Text: func(lit string) string {
			return "dec(" + strconv.Quote(lit) + ")"
		},
		Value: func(lit string) (interface{}, error) {
			r, _, err := d.new().Parse(lit, 10)
			if err != nil {
				return nil, err
			}
			return r, nil
		},
		Ops: map[string]*pratt.Op{
			"+": d.op("+", "%s.Add(%s)", func(z, x, y *big.Float) (*big.Float, error) { return z.Add(x, y), nil }),
			"-": d.op("-", "%s.Sub(%s)", func(z, x, y *big.Float) (*big.Float, error) { return z.Sub(x, y), nil }),
			"*": d.op("*", "%s.Mul(%s)", func(z, x, y *big.Float) (*big.Float, error) { return z.Mul(x, y), nil }),
			"/": d.op("/", "%s.Quo(%s)", d.quo),
			"^": d.op("^", "%s.Pow(%s)", d.pow),
		},
	}
	neg := t.Ops["-"]
	binary := neg.Fn
	neg.Text = func(args ...string) string {
		if len(args) == 1 {
			return args[0] + ".Neg()"
		}
		return binaryText("%s.Sub(%s)")(args...)
	}
	neg.Fn = func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return binary(args...)
		}
		x, err := d.operands("-", args)
		if err != nil {
			return nil, err
		}
		return d.new().Neg(x[0]), nil
	}
	for name, inv := range inverses {
		t.Ops[name].Inv = inv
	}
	d.funcs(t.Ops)
	return t
}

// DecimalTypes returns the types for evaluating with arbitrary-precision
// numbers.
func DecimalTypes(prec uint) pratt.Types {
	return pratt.Types{
		pratt.NodeNumber: Decimal(prec),
		pratt.NodeString: String(),
	}
}

// DecimalConstants returns pi and e to prec bits, suitable as globals for
// evaluating with the Decimal type.
func DecimalConstants(prec uint) map[string]interface{} {
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	return map[string]interface{}{
		"pi": bigfloat.Pi(new(big.Float).SetPrec(prec)),
		"e":  bigfloat.Exp(new(big.Float).SetPrec(prec), one),
	}
}

type decimal struct {
	prec uint
}

func (d decimal) new() *big.Float {
	return new(big.Float).SetPrec(d.prec)
}

func (d decimal) op(op, format string, f func(z, x, y *big.Float) (*big.Float, error)) *pratt.Op {
	return &pratt.Op{
		Text: binaryText(format),
		Fn: func(args ...interface{}) (r interface{}, err error) {
			if err := arity(op, args, 2); err != nil {
				return nil, err
			}
			x, err := d.operands(op, args)
			if err != nil {
				return nil, err
			}
			defer catchNaN(&err)
			z, err := f(d.new(), x[0], x[1])
			if err != nil {
				return nil, err
			}
			return z, nil
		},
	}
}

func (d decimal) operands(op string, args []interface{}) ([]*big.Float, error) {
	r := make([]*big.Float, len(args))
	for i, arg := range args {
		switch x := arg.(type) {
		case *big.Float:
			r[i] = x
		case float64:
			r[i] = d.new().SetFloat64(x)
		case int64:
			r[i] = d.new().SetInt64(x)
		case int:
			r[i] = d.new().SetInt64(int64(x))
		default:
			return nil, &OperandError{Op: op, Arg: i + 1, Value: arg, Want: "decimal"}
		}
	}
	return r, nil
}

func (d decimal) quo(z, x, y *big.Float) (*big.Float, error) {
	if y.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	if x.IsInf() && y.IsInf() {
		return nil, &DomainError{X: y, Arg: 2, Func: "/"}
	}
	return z.Quo(x, y), nil
}

func (d decimal) pow(z, x, y *big.Float) (*big.Float, error) {
	if n, acc := y.Int64(); acc == big.Exact && y.IsInt() {
		return d.powi(z, x, n)
	}
	if x.IsInf() || y.IsInf() {
		return nil, &DomainError{X: y, Arg: 2, Func: "^"}
	}
	switch x.Sign() {
	case -1:
		return nil, &DomainError{X: x, Arg: 1, Func: "^"}
	case 0:
		if y.Sign() < 0 {
			return nil, ErrDivisionByZero
		}
		return z.SetInt64(0), nil
	}
	if l := log2(x); l != 0 {
		yf, _ := y.Float64()
		switch overflow(yf * l) {
		case 1:
			return z.SetInf(false), nil
		case -1:
			return z.SetInt64(0), nil
		}
	}
	return bigfloat.Pow(z, x, y), nil
}

// log2 approximates the binary logarithm of x > 0.
func log2(x *big.Float) float64 {
	var m big.Float
	e := x.MantExp(&m)
	f, _ := m.Float64()
	return float64(e) + math.Log2(f)
}

// overflow classifies a result by its binary logarithm t: 1 if it is too
// large for a big.Float, -1 if it is too small, and 0 otherwise.
func overflow(t float64) int {
	switch {
	case t > big.MaxExp:
		return 1
	case t < big.MinExp:
		return -1
	}
	return 0
}

// powi computes x^n by repeated squaring, which is exact where the result
// fits in the precision.
func (d decimal) powi(z, x *big.Float, n int64) (*big.Float, error) {
	neg := n < 0
	if neg {
		n = -n
	}
	z.SetInt64(1)
	b := d.new().Set(x)
	for n > 0 {
		if n&1 != 0 {
			z.Mul(z, b)
		}
		b.Mul(b, b)
		n >>= 1
	}
	if neg {
		if z.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		z.Quo(d.new().SetInt64(1), z)
	}
	return z, nil
}

// catchNaN recovers a big.ErrNaN panic into err. Other panics continue.
func catchNaN(err *error) {
	p := recover()
	if p == nil {
		return
	}
	nan, ok := p.(big.ErrNaN)
	if !ok {
		panic(p)
	}
	*err = nan
}
