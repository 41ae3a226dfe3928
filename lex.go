package pratt

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Token is a single lexical token.
type Token struct {
	// Kind is the token's category.
	Kind Kind
	// Text is the source text of the token. For strings, it is the content
	// between the quotes with escapes removed.
	Text string
	// Pos is the position of the first rune of the token.
	Pos Pos
	// Trivia is the whitespace and comments consumed immediately before the
	// token.
	Trivia string
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + t.Pos.String()
}

// Kind is a token category.
type Kind int8

const (
	KindNone Kind = iota
	// KindStart is the token a Scanner holds before scanning anything.
	KindStart
	// KindEnd indicates the end of the input.
	KindEnd
	// KindWord is a name, keyword, or constant.
	KindWord
	// KindNumber is a decimal number.
	KindNumber
	// KindString is a quoted string.
	KindString
	// KindOperator is a maximal run of operator characters.
	KindOperator
	// KindChar is a single punctuation character, e.g. (. The character itself
	// is the token text.
	KindChar
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind
//go:generate go mod tidy

// Pos is a position in source text. Lines and columns are 1-based, and
// columns count runes.
type Pos struct {
	Line, Col int
}

func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

// Lexicon describes the character classes a Scanner uses to form tokens.
// A Lexicon must not be modified once a Scanner or Grammar uses it.
type Lexicon struct {
	// Operators contains the runes which form operator tokens. A contiguous
	// run of operator runes is always a single token.
	Operators string
	// WordStart contains the runes which may begin a word.
	WordStart string
	// Word contains the runes which may continue a word.
	Word string
	// Chars contains the runes which are tokens on their own. Chars take
	// priority over Operators.
	Chars string
	// Open and Close contain grouping brackets. The bracket at byte position
	// k in Open is closed by the bracket at byte position k in Close.
	Open, Close string
	// Quotes contains the runes which delimit strings.
	Quotes string
}

const (
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
)

// DefaultLexicon returns a Lexicon for C-like expressions.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Operators: "+-*/^.:%|!?#&<>=",
		WordStart: letters + "_$",
		Word:      letters + digits + "_$",
		Chars:     ".,:;()[]{}",
		Open:      "([{",
		Close:     ")]}",
		Quotes:    `"'`,
	}
}

// IsOperator returns whether r belongs to the operator character class.
func (l *Lexicon) IsOperator(r rune) bool {
	return strings.ContainsRune(l.Operators, r)
}

// Scanner converts text into tokens. It is not safe to use a Scanner
// concurrently.
type Scanner struct {
	src string
	lex *Lexicon
	// pos is the byte offset of the next unscanned rune.
	pos int
	// line is the current line, and lineStart is the byte offset at which it
	// starts.
	line      int
	lineStart int
	tok       Token
}

// NewScanner creates a Scanner over text. If lex is nil, the scanner uses
// DefaultLexicon.
func NewScanner(text string, lex *Lexicon) *Scanner {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Scanner{
		src:  text,
		lex:  lex,
		line: 1,
		tok:  Token{Kind: KindStart, Pos: Pos{Line: 1, Col: 1}},
	}
}

// Token returns the most recently scanned token.
func (s *Scanner) Token() Token {
	return s.tok
}

// peek returns the rune at byte offset i, or -1 at the end of input.
func (s *Scanner) peek(i int) (rune, int) {
	if i >= len(s.src) {
		return -1, 0
	}
	return utf8.DecodeRuneInString(s.src[i:])
}

// position returns the line and column of byte offset i, which must be on the
// current line.
func (s *Scanner) position(i int) Pos {
	return Pos{Line: s.line, Col: utf8.RuneCountInString(s.src[s.lineStart:i]) + 1}
}

// newline records a line break whose newline character ends at byte offset i.
func (s *Scanner) newline(i int) {
	s.line++
	s.lineStart = i
}

// skip consumes whitespace and comments.
func (s *Scanner) skip() {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '\n':
			s.pos++
			s.newline(s.pos)
		case c == ' ', c == '\t', c == '\r':
			s.pos++
		case strings.HasPrefix(s.src[s.pos:], "//"):
			k := strings.IndexByte(s.src[s.pos:], '\n')
			if k < 0 {
				s.pos = len(s.src)
				return
			}
			s.pos += k + 1
			s.newline(s.pos)
		case strings.HasPrefix(s.src[s.pos:], "/*"):
			// Block comments do not nest. An unterminated comment runs to the
			// end of the input.
			end := strings.Index(s.src[s.pos+2:], "*/")
			stop := len(s.src)
			if end >= 0 {
				stop = s.pos + 2 + end + 2
			}
			for i := s.pos; i < stop; i++ {
				if s.src[i] == '\n' {
					s.newline(i + 1)
				}
			}
			s.pos = stop
		default:
			return
		}
	}
}

// Next scans the next token from the input. Once the input is exhausted,
// every call returns an End token.
func (s *Scanner) Next() (Token, error) {
	ws := s.pos
	s.skip()
	tok := Token{Pos: s.position(s.pos), Trivia: s.src[ws:s.pos]}
	start := s.pos
	r, sz := s.peek(s.pos)
	switch {
	case r < 0:
		tok.Kind = KindEnd
	case strings.ContainsRune(s.lex.WordStart, r):
		s.pos += sz
		s.pos = s.scanWhile(s.pos, s.lex.Word)
		tok.Kind = KindWord
		tok.Text = s.src[start:s.pos]
	case '0' <= r && r <= '9':
		s.scanNum()
		tok.Kind = KindNumber
		tok.Text = s.src[start:s.pos]
	case strings.ContainsRune(s.lex.Quotes, r):
		text, err := s.scanString(r, tok.Pos)
		if err != nil {
			return tok, err
		}
		tok.Kind = KindString
		tok.Text = text
	case strings.ContainsRune(s.lex.Chars, r):
		s.pos += sz
		tok.Kind = KindChar
		tok.Text = s.src[start:s.pos]
	case strings.ContainsRune(s.lex.Operators, r):
		s.pos += sz
		s.pos = s.scanWhile(s.pos, s.lex.Operators)
		tok.Kind = KindOperator
		tok.Text = s.src[start:s.pos]
	default:
		return tok, &Error{
			Code: UnexpectedCharacter,
			Msg:  "unexpected character " + strconv.QuoteRune(r),
			At:   tok.Pos,
			Args: []interface{}{r},
		}
	}
	s.tok = tok
	return tok, nil
}

// scanWhile returns the offset of the first rune at or after i that is not in
// class.
func (s *Scanner) scanWhile(i int, class string) int {
	for {
		r, sz := s.peek(i)
		if r < 0 || !strings.ContainsRune(class, r) {
			return i
		}
		i += sz
	}
}

// scanNum scans digits with an optional fractional part. A dot with no digits
// following it is still part of the number.
func (s *Scanner) scanNum() {
	s.pos = s.scanWhile(s.pos, digits)
	if s.pos < len(s.src) && s.src[s.pos] == '.' {
		s.pos = s.scanWhile(s.pos+1, digits)
	}
}

// scanString scans a string opened by quote. A backslash is dropped and the
// rune after it is taken literally.
func (s *Scanner) scanString(quote rune, at Pos) (string, error) {
	var b strings.Builder
	i := s.pos + utf8.RuneLen(quote)
	for {
		r, sz := s.peek(i)
		switch r {
		case -1:
			return "", &Error{
				Code: UnclosedQuote,
				Msg:  "unclosed quote " + strconv.QuoteRune(quote),
				At:   at,
				Args: []interface{}{quote},
			}
		case quote:
			s.pos = i + sz
			return b.String(), nil
		case '\\':
			i += sz
			r, sz = s.peek(i)
			if r < 0 {
				continue
			}
		}
		if r == '\n' {
			s.newline(i + sz)
		}
		b.WriteRune(r)
		i += sz
	}
}
