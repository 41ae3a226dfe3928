package grammarfile_test

import (
	"os"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/pratt"
	"github.com/zephyrtronium/pratt/arith"
	"github.com/zephyrtronium/pratt/grammarfile"
)

func TestLoadMatchesArith(t *testing.T) {
	t.Parallel()

	g, err := grammarfile.Load("testdata/arith.toml")
	require.NoError(t, err)
	want := arith.Grammar()
	srcs := []string{
		"3-2+1",
		"2^3^2",
		"x*2+ -3.5*(x+3)",
		"a<b<c",
		"a<=b+c",
		"-x^2",
		"![x]",
		"{1}*pi",
		"sqrt x^2",
		`"s"+'t'`,
	}
	for _, src := range srcs {
		a, err := g.Parse(src)
		require.NoError(t, err, src)
		b, err := want.Parse(src)
		require.NoError(t, err, src)
		assert.True(t, a.Equal(b), "%s: %v vs %v", src, a, b)
	}
	sym := g.Symbol(",")
	require.NotNil(t, sym)
	assert.Equal(t, 0, sym.LBP)
	assert.Nil(t, sym.Infix)
}

func TestLoadEval(t *testing.T) {
	t.Parallel()

	g, err := grammarfile.Load("testdata/arith.toml")
	require.NoError(t, err)
	ev := pratt.NewEvaluator(g, arith.FloatTypes())
	n, err := g.Parse("pi*2")
	require.NoError(t, err)
	r, err := ev.Eval(n, nil, nil)
	require.NoError(t, err)
	assert.InDelta(t, 6.283185307179586, r, 1e-15)

	n, err = g.Parse("3*x+5")
	require.NoError(t, err)
	inv, err := ev.Invert("x", n, "r")
	require.NoError(t, err)
	assert.Equal(t, "(r-5)/3", ev.Render(inv, 0))
}

func TestLoadLexicon(t *testing.T) {
	t.Parallel()

	g, err := grammarfile.Load("testdata/lisp.toml")
	require.NoError(t, err)
	lex := g.Lexicon()
	assert.Equal(t, "+*<>=&|", lex.Operators)
	assert.Equal(t, "`", lex.Quotes)

	n, err := g.Parse("[first-arg + rest-2] * `s` && x")
	require.NoError(t, err)
	assert.Equal(t, `([([first-arg]+[rest-2])*("s")]&&[x])`, n.String())

	_, err = g.Parse("(x)")
	assert.ErrorIs(t, err, &pratt.Error{Code: pratt.UnexpectedCharacter})
	_, err = g.Parse("x - y")
	assert.ErrorIs(t, err, &pratt.Error{Code: pratt.UnexpectedCharacter})
	_, err = g.Parse("x < y")
	assert.ErrorIs(t, err, &pratt.Error{Code: pratt.UnknownOperator})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	_, err := grammarfile.Load("testdata/bad.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "testdata/bad.toml")

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr), "%#v", err)
	msgs := make([]string, len(merr.Errors))
	for i, e := range merr.Errors {
		msgs[i] = e.Error()
	}
	want := []string{
		"lexicon has 2 open brackets but 1 close brackets",
		`constant "2pi" is not a word`,
		`operator 1 ("+"): negative power -1`,
		`operator 2: "+a" does not scan as one token`,
		"operator 3 has no id",
		`operator 4 ("*"): unknown assoc "middle"`,
		`group 1: bracket "<" is not a single char of the lexicon`,
		`group 1: bracket ">" is not a single char of the lexicon`,
	}
	assert.ElementsMatch(t, want, msgs)
}

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	g, err := grammarfile.Parse([]byte(`
[[operator]]
id = "+"
power = 10
`))
	require.NoError(t, err)
	assert.Equal(t, pratt.DefaultLexicon(), g.Lexicon())

	n, err := g.Parse("[a]+(b)+{c}")
	require.NoError(t, err)
	assert.Equal(t, "([(a)+(b)]+[c])", n.String())
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	g, err := grammarfile.Parse(nil)
	require.NoError(t, err)
	n, err := g.Parse("x")
	require.NoError(t, err)
	assert.Equal(t, pratt.NodeWord, n.Kind)
	_, err = g.Parse("x+y")
	assert.ErrorIs(t, err, &pratt.Error{Code: pratt.UnknownOperator})
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	_, err := grammarfile.Parse([]byte("[[operator]]\nid = \"+\"\npower = \"high\"\n"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "decoding grammar: "), err.Error())

	_, err = grammarfile.Parse([]byte("[lexicon\n"))
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	_, err := grammarfile.Load("testdata/missing.toml")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)), "%#v", err)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("testdata/arith.toml")
	require.NoError(t, err)
	f, err := grammarfile.Decode(data)
	require.NoError(t, err)
	assert.Len(t, f.Operators, 16)
	assert.Equal(t, grammarfile.Operator{ID: "^", Power: 70, Assoc: grammarfile.AssocRight}, f.Operators[12])
	assert.Equal(t, grammarfile.Operator{ID: "+", Power: 50}, f.Operators[8])
	assert.Equal(t, true, f.Constants["true"])
	assert.Empty(t, f.Groups)
	assert.NoError(t, f.Validate())
}
