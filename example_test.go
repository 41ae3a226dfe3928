package pratt_test

import (
	"fmt"

	"github.com/zephyrtronium/pratt"
	"github.com/zephyrtronium/pratt/arith"
)

func Example() {
	g := arith.Grammar()
	ev := pratt.NewEvaluator(g, arith.FloatTypes())

	n, _ := g.Parse("3*x + 5")
	inv, _ := ev.Invert("x", n, "r")
	fmt.Println(ev.Render(n, 0))
	fmt.Println(ev.Render(inv, 0))

	y, _ := ev.Eval(n, nil, map[string]interface{}{"x": 4.0})
	x, _ := ev.Eval(inv, nil, map[string]interface{}{"r": y})
	fmt.Println(y, x)

	// Output:
	// 3*x+5
	// (r-5)/3
	// 17 4
}

func ExampleScanner() {
	scan := pratt.NewScanner("x += 1 // inc", nil)
	for scan.Token().Kind != pratt.KindEnd {
		tok, err := scan.Next()
		if err != nil {
			panic(err)
		}
		fmt.Printf("%v %q\n", tok, tok.Trivia)
	}

	// Output:
	// Word:x@1:1 ""
	// Operator:+=@1:3 " "
	// Number:1@1:6 " "
	// End:@1:14 " // inc"
}

func ExampleGrammar_Prefix() {
	g := arith.Grammar()
	// abs(x) parses as a prefix operator that requires a group.
	g.Prefix("abs", func(p *pratt.Parser, t pratt.Token) (*pratt.Node, error) {
		if err := p.Advance(pratt.KindChar, "("); err != nil {
			return nil, err
		}
		arg, err := p.Expression(0)
		if err != nil {
			return nil, err
		}
		if err := p.Advance(pratt.KindChar, ")"); err != nil {
			return nil, err
		}
		return &pratt.Node{Kind: pratt.NodeOperator, Value: t.Text, Args: []*pratt.Node{arg}, Pos: t.Pos}, nil
	})
	n, err := g.Parse("abs(x-1)*2")
	fmt.Println(n, err)
	_, err = g.Parse("abs x")
	fmt.Println(err)

	// Output:
	// ([abs([x]-[1])]*[2]) <nil>
	// 1:5: expected "(" but got "x"
}

func ExampleEvaluator_CompileText() {
	g := arith.Grammar()
	n, _ := g.Parse("2^x - y")
	s, _ := pratt.NewEvaluator(g, arith.FloatTypes()).CompileText(n, map[string]bool{"y": true})
	fmt.Println(s)
	s, _ = pratt.NewEvaluator(g, arith.DecimalTypes(64)).CompileText(n, nil)
	fmt.Println(s)

	// Output:
	// (math.Pow(2, l.x)-g.y)
	// dec("2").Pow(l.x).Sub(l.y)
}
