//go:build go1.18
// +build go1.18

package pratt_test

import (
	"testing"

	"github.com/zephyrtronium/pratt"
	"github.com/zephyrtronium/pratt/arith"
)

func FuzzEval(f *testing.F) {
	f.Add("x")
	f.Add("y")
	f.Add("3*(4-2/x)+5")
	f.Add("2^x^ -x")
	g := arith.Grammar()
	ev := pratt.NewEvaluator(g, arith.DecimalTypes(32))
	f.Fuzz(func(t *testing.T, s string) {
		n, err := g.Parse(s)
		if err != nil {
			return
		}
		ev.Eval(n, nil, map[string]interface{}{"x": 1.0})
		ev.Invert("x", n, "r")
	})
}
