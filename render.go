package pratt

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Render formats n as source text that parses back to the same tree, using
// only the parentheses that parsing requires. bp is the binding power of the
// context the text will appear in; use 0 for a complete expression.
//
// Unary operands are rendered as if parsed at PrefixPower, so the result is
// only exact for grammars whose prefix operators bind more tightly than every
// infix operator.
func (e *Evaluator) Render(n *Node, bp int) string {
	return e.operand(n, bp, true)
}

// operand renders a child of an operator with binding power bp. assoc is
// whether a child of the same power would be grouped there without brackets,
// as for the left operand of a left-associative operator.
func (e *Evaluator) operand(n *Node, bp int, assoc bool) string {
	s := e.render(n)
	if n.Kind == NodeOperator && len(n.Args) >= 2 && (n.BP < bp || n.BP == bp && !assoc) {
		return "(" + s + ")"
	}
	return s
}

func (e *Evaluator) render(n *Node) string {
	switch n.Kind {
	case NodeNumber, NodeWord:
		return n.Value
	case NodeString:
		return e.quote(n.Value)
	case NodeOperator:
		// handled below
	default:
		panic("pratt: invalid node kind " + n.Kind.String())
	}
	switch len(n.Args) {
	case 0:
		return n.Value
	case 1:
		return e.join(n.Value, e.operand(n.Args[0], PrefixPower, false))
	}
	s := e.operand(n.Args[0], n.BP, !n.Right)
	for _, arg := range n.Args[1:] {
		s = e.join(s, n.Value)
		s = e.join(s, e.operand(arg, n.BP, n.Right))
	}
	return s
}

// join concatenates two pieces of text, separated by a space if the runes
// where they meet would otherwise scan as one token.
func (e *Evaluator) join(a, b string) string {
	if a == "" || b == "" {
		return a + b
	}
	l, _ := utf8.DecodeLastRuneInString(a)
	r, _ := utf8.DecodeRuneInString(b)
	lex := e.g.lex
	switch {
	case lex.IsOperator(l) && lex.IsOperator(r):
		return a + " " + b
	case strings.ContainsRune(lex.Word, l) && strings.ContainsRune(lex.Word, r):
		return a + " " + b
	case '0' <= l && l <= '9' && r == '.':
		// A number would take the dot.
		return a + " " + b
	}
	return a + b
}

// quote formats a string literal with the lexicon's first quote character,
// escaping that quote and backslashes.
func (e *Evaluator) quote(s string) string {
	q, _ := utf8.DecodeRuneInString(e.g.lex.Quotes)
	if q == utf8.RuneError {
		return strconv.Quote(s)
	}
	var b strings.Builder
	b.WriteRune(q)
	for _, r := range s {
		if r == q || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteRune(q)
	return b.String()
}
