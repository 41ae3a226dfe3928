package pratt

import (
	"strconv"
	"strings"
)

// Parser holds the state of one parse. Rules registered in a Grammar receive
// the Parser to parse operands and consume required tokens. It is not safe to
// use a Parser concurrently.
type Parser struct {
	g    *Grammar
	scan *Scanner
	// tok is the current token, i.e. the next one to be consumed, and sym is
	// its symbol.
	tok Token
	sym *Symbol
}

// end is the symbol of the End token. It has no binding power and no rules.
var end = &Symbol{ID: "(end)"}

// Parse parses text as a single expression. The options are applied in
// order.
func (g *Grammar) Parse(text string, opts ...ParseOption) (*Node, error) {
	var o parseopts
	for _, opt := range opts {
		o = opt.parseOption(o)
	}
	p := g.parser(text)
	if err := p.Advance(KindNone, ""); err != nil {
		return nil, err
	}
	n, err := p.Expression(0)
	if err != nil {
		return nil, err
	}
	if !o.partial && p.sym != end {
		return nil, p.unexpected()
	}
	return n, nil
}

// ParseList parses text as a list of expressions separated by sep, which must
// be a registered token with no binding power, e.g. ";". An empty text gives
// an empty list.
func (g *Grammar) ParseList(text, sep string) ([]*Node, error) {
	p := g.parser(text)
	if err := p.Advance(KindNone, ""); err != nil {
		return nil, err
	}
	var r []*Node
	for p.sym != end {
		n, err := p.Expression(0)
		if err != nil {
			return nil, err
		}
		r = append(r, n)
		switch {
		case p.sym == end:
		case p.tok.Text == sep && (p.tok.Kind == KindChar || p.tok.Kind == KindOperator):
			if err := p.Advance(KindNone, ""); err != nil {
				return nil, err
			}
		default:
			return nil, p.unexpected()
		}
	}
	return r, nil
}

func (g *Grammar) parser(text string) *Parser {
	return &Parser{g: g, scan: NewScanner(text, g.lex)}
}

// Grammar returns the grammar in use by the parser.
func (p *Parser) Grammar() *Grammar {
	return p.g
}

// Token returns the current token, which has not yet been consumed.
func (p *Parser) Token() Token {
	return p.tok
}

// AtEnd returns whether the parser has consumed all input.
func (p *Parser) AtEnd() bool {
	return p.sym == end
}

// Expression parses an expression whose operators bind more tightly than rbp.
func (p *Parser) Expression(rbp int) (*Node, error) {
	t, sym := p.tok, p.sym
	if sym == end {
		return nil, &Error{
			Code: UndefinedLeadingToken,
			Msg:  "unexpected end of input",
			At:   t.Pos,
			Args: []interface{}{""},
		}
	}
	if err := p.Advance(KindNone, ""); err != nil {
		return nil, err
	}
	if sym.Prefix == nil {
		return nil, &Error{
			Code: UndefinedLeadingToken,
			Msg:  strconv.Quote(t.Text) + " cannot begin an expression",
			At:   t.Pos,
			Args: []interface{}{t.Text},
		}
	}
	left, err := sym.Prefix(p, t)
	if err != nil {
		return nil, err
	}
	for rbp < p.sym.LBP {
		t, sym = p.tok, p.sym
		if err := p.Advance(KindNone, ""); err != nil {
			return nil, err
		}
		if sym.Infix == nil {
			return nil, &Error{
				Code: MissingOperator,
				Msg:  "no infix rule for " + strconv.Quote(t.Text),
				At:   t.Pos,
				Args: []interface{}{t.Text},
			}
		}
		left, err = sym.Infix(p, t, left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// Advance consumes the current token and scans the next. If id is not empty,
// the current token must have the given kind and text; otherwise, if kind is
// not KindNone, the current token must have the given kind.
func (p *Parser) Advance(kind Kind, id string) error {
	if p.tok.Kind != KindNone {
		switch {
		case id != "" && (p.tok.Kind != kind || p.tok.Text != id):
			return &Error{
				Code: ExpectedToken,
				Msg:  "expected " + strconv.Quote(id) + " but got " + describe(p.tok),
				At:   p.tok.Pos,
				Args: []interface{}{id, p.tok.Text},
			}
		case id == "" && kind != KindNone && p.tok.Kind != kind:
			return &Error{
				Code: ExpectedType,
				Msg:  "expected " + strings.ToLower(kind.String()) + " but got " + describe(p.tok),
				At:   p.tok.Pos,
				Args: []interface{}{kind},
			}
		}
	}
	t, err := p.scan.Next()
	if err != nil {
		return err
	}
	var sym *Symbol
	switch t.Kind {
	case KindWord:
		sym = p.g.syms[t.Text]
		if sym == nil {
			sym = p.g.syms[NameSymbol]
		}
	case KindOperator, KindChar:
		sym = p.g.syms[t.Text]
		if sym == nil {
			return &Error{
				Code: UnknownOperator,
				Msg:  "unknown operator " + strconv.Quote(t.Text),
				At:   t.Pos,
				Args: []interface{}{t.Text},
			}
		}
	case KindNumber:
		sym = p.g.syms[NumberSymbol]
	case KindString:
		sym = p.g.syms[StringSymbol]
	case KindEnd:
		sym = end
	}
	if sym == nil {
		return &Error{
			Code: UnexpectedToken,
			Msg:  "unexpected " + strings.ToLower(t.Kind.String()) + " token " + strconv.Quote(t.Text),
			At:   t.Pos,
			Args: []interface{}{t.Kind, t.Text},
		}
	}
	p.tok, p.sym = t, sym
	return nil
}

// unexpected returns an error for a token left over after an expression.
func (p *Parser) unexpected() error {
	return &Error{
		Code: UnexpectedToken,
		Msg:  "unexpected " + describe(p.tok) + " after expression",
		At:   p.tok.Pos,
		Args: []interface{}{p.tok.Kind, p.tok.Text},
	}
}

// describe names a token for error messages.
func describe(t Token) string {
	if t.Kind == KindEnd {
		return "end of input"
	}
	return strconv.Quote(t.Text)
}
