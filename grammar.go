package pratt

import "strconv"

// PrefixPower is the binding power at which the default prefix rule parses
// its operand. It binds more tightly than every operator in the usual
// arithmetic grammars; a grammar with an infix operator of this power or
// higher should supply its own prefix rules.
const PrefixPower = 70

// Reserved symbol identities for tokens that are not looked up by their text.
// The scanner can never produce these as token text.
const (
	NameSymbol   = "(name)"
	NumberSymbol = "(number)"
	StringSymbol = "(string)"
)

// PrefixRule parses a token in a leading position. t has already been
// consumed; p's current token is the one after it.
type PrefixRule func(p *Parser, t Token) (*Node, error)

// InfixRule parses a token that follows a complete left operand. t has
// already been consumed.
type InfixRule func(p *Parser, t Token, left *Node) (*Node, error)

// Symbol describes how the parser treats one token identity.
type Symbol struct {
	// ID is the token identity: operator or punctuation text, a keyword, or a
	// reserved symbol.
	ID string
	// LBP is the left binding power. A token ends the operand being parsed
	// when its LBP is no greater than the right binding power of the parse.
	LBP int
	// Right is whether the symbol's infix form is right-associative.
	Right bool
	// Prefix and Infix are the parse rules, or nil if the token cannot be
	// used in the respective position.
	Prefix PrefixRule
	Infix  InfixRule
	// Const is the value of a constant registered with Grammar.Constant, and
	// IsConst is whether there is one. A constant's value may be nil.
	Const   interface{}
	IsConst bool
}

// Grammar is a symbol table for a Pratt parser. Registration methods must all
// be called before the first Parse; afterward, a Grammar is read-only and
// safe to use for concurrent parses.
type Grammar struct {
	lex  *Lexicon
	syms map[string]*Symbol
}

// NewGrammar creates a grammar over the given lexicon, with literal rules for
// names, numbers, and strings already registered. If lex is nil, the grammar
// uses DefaultLexicon.
func NewGrammar(lex *Lexicon) *Grammar {
	if lex == nil {
		lex = DefaultLexicon()
	}
	g := &Grammar{lex: lex, syms: make(map[string]*Symbol)}
	g.Literal(NameSymbol, NodeWord)
	g.Literal(NumberSymbol, NodeNumber)
	g.Literal(StringSymbol, NodeString)
	return g
}

// Lexicon returns the grammar's lexicon.
func (g *Grammar) Lexicon() *Lexicon {
	return g.lex
}

// Symbol returns the symbol registered for id, or nil if there is none.
func (g *Grammar) Symbol(id string) *Symbol {
	return g.syms[id]
}

// Declare gets or creates the symbol for id, raising its binding power to bp
// if it is lower. Panics if bp is negative.
func (g *Grammar) Declare(id string, bp int) *Symbol {
	if bp < 0 {
		panic("pratt: negative binding power " + strconv.Itoa(bp) + " for " + strconv.Quote(id))
	}
	sym := g.syms[id]
	if sym == nil {
		sym = &Symbol{ID: id}
		g.syms[id] = sym
	}
	if bp > sym.LBP {
		sym.LBP = bp
	}
	return sym
}

// Literal sets the prefix rule of id to produce a leaf of the given kind from
// the token text.
func (g *Grammar) Literal(id string, kind NodeKind) *Symbol {
	sym := g.Declare(id, 0)
	sym.Prefix = func(p *Parser, t Token) (*Node, error) {
		return &Node{Kind: kind, Value: t.Text, Pos: t.Pos}, nil
	}
	return sym
}

// Constant registers a keyword that parses as a name with an associated value.
// Evaluation uses the value when the name is not otherwise defined.
func (g *Grammar) Constant(name string, value interface{}) *Symbol {
	sym := g.Declare(name, 0)
	sym.Const, sym.IsConst = value, true
	sym.Prefix = func(p *Parser, t Token) (*Node, error) {
		return &Node{Kind: NodeWord, Value: name, Const: value, Pos: t.Pos}, nil
	}
	return sym
}

// InfixLeft registers a left-associative binary operator. If led is nil, the
// right operand is parsed at binding power bp.
func (g *Grammar) InfixLeft(id string, bp int, led InfixRule) *Symbol {
	sym := g.Declare(id, bp)
	if led == nil {
		led = binary(sym, bp)
	}
	sym.Infix = led
	return sym
}

// InfixRight registers a right-associative binary operator. If led is nil,
// the right operand is parsed at binding power bp-1, so that a following
// operator of the same power takes the operand first.
func (g *Grammar) InfixRight(id string, bp int, led InfixRule) *Symbol {
	sym := g.Declare(id, bp)
	sym.Right = true
	if led == nil {
		led = binary(sym, bp-1)
	}
	sym.Infix = led
	return sym
}

func binary(sym *Symbol, rbp int) InfixRule {
	return func(p *Parser, t Token, left *Node) (*Node, error) {
		right, err := p.Expression(rbp)
		if err != nil {
			return nil, err
		}
		return &Node{
			Kind:  NodeOperator,
			Value: t.Text,
			Args:  []*Node{left, right},
			BP:    sym.LBP,
			Right: sym.Right,
			Pos:   t.Pos,
		}, nil
	}
}

// Prefix registers a unary prefix operator. If nud is nil, the operand is
// parsed at PrefixPower.
func (g *Grammar) Prefix(id string, nud PrefixRule) *Symbol {
	sym := g.Declare(id, 0)
	if nud == nil {
		nud = func(p *Parser, t Token) (*Node, error) {
			operand, err := p.Expression(PrefixPower)
			if err != nil {
				return nil, err
			}
			return &Node{
				Kind:  NodeOperator,
				Value: t.Text,
				Args:  []*Node{operand},
				BP:    sym.LBP,
				Right: sym.Right,
				Pos:   t.Pos,
			}, nil
		}
	}
	sym.Prefix = nud
	return sym
}

// Group registers open as a prefix that parses a complete subexpression and
// then requires close. The subexpression is returned without a node for the
// brackets.
func (g *Grammar) Group(open, close string) *Symbol {
	g.Declare(close, 0)
	return g.Prefix(open, func(p *Parser, t Token) (*Node, error) {
		n, err := p.Expression(0)
		if err != nil {
			return nil, err
		}
		if err := p.Advance(KindChar, close); err != nil {
			return nil, err
		}
		return n, nil
	})
}

// Groups registers every bracket pair of the grammar's lexicon with Group.
func (g *Grammar) Groups() {
	open := []rune(g.lex.Open)
	close := []rune(g.lex.Close)
	if len(open) != len(close) {
		panic("pratt: lexicon has " + strconv.Itoa(len(open)) + " open brackets but " + strconv.Itoa(len(close)) + " close brackets")
	}
	for i := range open {
		g.Group(string(open[i]), string(close[i]))
	}
}

// Operator creates an operator node for a registered symbol without parsing.
// Panics if op is not registered.
func (g *Grammar) Operator(op string, args ...*Node) *Node {
	sym := g.syms[op]
	if sym == nil {
		panic("pratt: operator " + strconv.Quote(op) + " is not registered")
	}
	return &Node{
		Kind:  NodeOperator,
		Value: op,
		Args:  args,
		BP:    sym.LBP,
		Right: sym.Right,
	}
}

// Variable creates a name node without parsing.
func (g *Grammar) Variable(name string) *Node {
	n := &Node{Kind: NodeWord, Value: name}
	if sym := g.syms[name]; sym != nil && sym.IsConst {
		n.Const = sym.Const
	}
	return n
}

// constant returns the value of the constant name and whether it exists.
func (g *Grammar) constant(name string) (interface{}, bool) {
	sym := g.syms[name]
	if sym == nil || !sym.IsConst {
		return nil, false
	}
	return sym.Const, true
}
