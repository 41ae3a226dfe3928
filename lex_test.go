package pratt

import (
	"fmt"
	"regexp"
	"testing"
)

// tokenize scans src until the end of input or an error. The End token is
// included in the result.
func tokenize(src string, lex *Lexicon) ([]Token, error) {
	scan := NewScanner(src, lex)
	var r []Token
	for {
		tok, err := scan.Next()
		if err != nil {
			return r, err
		}
		r = append(r, tok)
		if tok.Kind == KindEnd {
			return r, nil
		}
	}
}

func TestScan(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []Token
	}{
		{"empty", "", []Token{{Kind: KindEnd, Pos: Pos{1, 1}}}},
		{"spaces", " \t\r\n ", []Token{{Kind: KindEnd, Pos: Pos{2, 2}, Trivia: " \t\r\n "}}},
		{"integer", "42", []Token{
			{Kind: KindNumber, Text: "42", Pos: Pos{1, 1}},
			{Kind: KindEnd, Pos: Pos{1, 3}},
		}},
		{"decimal", "42.123", []Token{
			{Kind: KindNumber, Text: "42.123", Pos: Pos{1, 1}},
			{Kind: KindEnd, Pos: Pos{1, 7}},
		}},
		{"trailing-dot", "3.", []Token{
			{Kind: KindNumber, Text: "3.", Pos: Pos{1, 1}},
			{Kind: KindEnd, Pos: Pos{1, 3}},
		}},
		{"trailing-dot-word", "3.x", []Token{
			{Kind: KindNumber, Text: "3.", Pos: Pos{1, 1}},
			{Kind: KindWord, Text: "x", Pos: Pos{1, 3}},
			{Kind: KindEnd, Pos: Pos{1, 4}},
		}},
		{"word", "word", []Token{
			{Kind: KindWord, Text: "word", Pos: Pos{1, 1}},
			{Kind: KindEnd, Pos: Pos{1, 5}},
		}},
		{"word-digits", "_x1$", []Token{
			{Kind: KindWord, Text: "_x1$", Pos: Pos{1, 1}},
			{Kind: KindEnd, Pos: Pos{1, 5}},
		}},
		{"operator", "+", []Token{
			{Kind: KindOperator, Text: "+", Pos: Pos{1, 1}},
			{Kind: KindEnd, Pos: Pos{1, 2}},
		}},
		{"munch", "++=", []Token{
			{Kind: KindOperator, Text: "++=", Pos: Pos{1, 1}},
			{Kind: KindEnd, Pos: Pos{1, 4}},
		}},
		{"string", `"string"`, []Token{
			{Kind: KindString, Text: "string", Pos: Pos{1, 1}},
			{Kind: KindEnd, Pos: Pos{1, 9}},
		}},
		{"single-quote", `'it"s'`, []Token{
			{Kind: KindString, Text: `it"s`, Pos: Pos{1, 1}},
			{Kind: KindEnd, Pos: Pos{1, 7}},
		}},
		{"escaped-quote", `"\"string"`, []Token{
			{Kind: KindString, Text: `"string`, Pos: Pos{1, 1}},
			{Kind: KindEnd, Pos: Pos{1, 11}},
		}},
		{"escaped-quote-end", `"string\""`, []Token{
			{Kind: KindString, Text: `string"`, Pos: Pos{1, 1}},
			{Kind: KindEnd, Pos: Pos{1, 11}},
		}},
		{"escaped-letter", `"a\nb"`, []Token{
			{Kind: KindString, Text: "anb", Pos: Pos{1, 1}},
			{Kind: KindEnd, Pos: Pos{1, 7}},
		}},
		{"multiline-string", "\"a\nb\" x", []Token{
			{Kind: KindString, Text: "a\nb", Pos: Pos{1, 1}},
			{Kind: KindWord, Text: "x", Pos: Pos{2, 4}, Trivia: " "},
			{Kind: KindEnd, Pos: Pos{2, 5}},
		}},
		{"runes", `"é"+x`, []Token{
			{Kind: KindString, Text: "é", Pos: Pos{1, 1}},
			{Kind: KindOperator, Text: "+", Pos: Pos{1, 4}},
			{Kind: KindWord, Text: "x", Pos: Pos{1, 5}},
			{Kind: KindEnd, Pos: Pos{1, 6}},
		}},
		{"space", " 1", []Token{
			{Kind: KindNumber, Text: "1", Pos: Pos{1, 2}, Trivia: " "},
			{Kind: KindEnd, Pos: Pos{1, 3}},
		}},
		{"lines", "1 \n  word", []Token{
			{Kind: KindNumber, Text: "1", Pos: Pos{1, 1}},
			{Kind: KindWord, Text: "word", Pos: Pos{2, 3}, Trivia: " \n  "},
			{Kind: KindEnd, Pos: Pos{2, 7}},
		}},
		{"block-comment", " /* comment */1", []Token{
			{Kind: KindNumber, Text: "1", Pos: Pos{1, 15}, Trivia: " /* comment */"},
			{Kind: KindEnd, Pos: Pos{1, 16}},
		}},
		{"block-comment-lines", "1 /*\n */ word", []Token{
			{Kind: KindNumber, Text: "1", Pos: Pos{1, 1}},
			{Kind: KindWord, Text: "word", Pos: Pos{2, 5}, Trivia: " /*\n */ "},
			{Kind: KindEnd, Pos: Pos{2, 9}},
		}},
		{"block-comment-nested", "1 /* a /* b */ c */", []Token{
			{Kind: KindNumber, Text: "1", Pos: Pos{1, 1}},
			{Kind: KindWord, Text: "c", Pos: Pos{1, 16}, Trivia: " /* a /* b */ "},
			{Kind: KindOperator, Text: "*/", Pos: Pos{1, 18}, Trivia: " "},
			{Kind: KindEnd, Pos: Pos{1, 20}},
		}},
		{"block-comment-unclosed", "1 /* x", []Token{
			{Kind: KindNumber, Text: "1", Pos: Pos{1, 1}},
			{Kind: KindEnd, Pos: Pos{1, 7}, Trivia: " /* x"},
		}},
		{"line-comment", "1 // comment\n  word", []Token{
			{Kind: KindNumber, Text: "1", Pos: Pos{1, 1}},
			{Kind: KindWord, Text: "word", Pos: Pos{2, 3}, Trivia: " // comment\n  "},
			{Kind: KindEnd, Pos: Pos{2, 7}},
		}},
		{"line-comment-end", "1//", []Token{
			{Kind: KindNumber, Text: "1", Pos: Pos{1, 1}},
			{Kind: KindEnd, Pos: Pos{1, 4}, Trivia: "//"},
		}},
		{"add", "1+2", []Token{
			{Kind: KindNumber, Text: "1", Pos: Pos{1, 1}},
			{Kind: KindOperator, Text: "+", Pos: Pos{1, 2}},
			{Kind: KindNumber, Text: "2", Pos: Pos{1, 3}},
			{Kind: KindEnd, Pos: Pos{1, 4}},
		}},
		{"parens", "9-(2+3)", []Token{
			{Kind: KindNumber, Text: "9", Pos: Pos{1, 1}},
			{Kind: KindOperator, Text: "-", Pos: Pos{1, 2}},
			{Kind: KindChar, Text: "(", Pos: Pos{1, 3}},
			{Kind: KindNumber, Text: "2", Pos: Pos{1, 4}},
			{Kind: KindOperator, Text: "+", Pos: Pos{1, 5}},
			{Kind: KindNumber, Text: "3", Pos: Pos{1, 6}},
			{Kind: KindChar, Text: ")", Pos: Pos{1, 7}},
			{Kind: KindEnd, Pos: Pos{1, 8}},
		}},
		{"chars-before-operators", "a.b", []Token{
			{Kind: KindWord, Text: "a", Pos: Pos{1, 1}},
			{Kind: KindChar, Text: ".", Pos: Pos{1, 2}},
			{Kind: KindWord, Text: "b", Pos: Pos{1, 3}},
			{Kind: KindEnd, Pos: Pos{1, 4}},
		}},
		{"munch-unary", "1+-2", []Token{
			{Kind: KindNumber, Text: "1", Pos: Pos{1, 1}},
			{Kind: KindOperator, Text: "+-", Pos: Pos{1, 2}},
			{Kind: KindNumber, Text: "2", Pos: Pos{1, 4}},
			{Kind: KindEnd, Pos: Pos{1, 5}},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := tokenize(c.src, nil)
			if err != nil {
				t.Fatalf("scanning %q: unexpected error %v", c.src, err)
			}
			if len(got) != len(c.tokens) {
				t.Fatalf("scanning %q: want %d tokens %v, got %d %v", c.src, len(c.tokens), c.tokens, len(got), got)
			}
			for i, want := range c.tokens {
				if got[i] != want {
					t.Errorf("scanning %q: token %d: want %#v, got %#v", c.src, i, want, got[i])
				}
			}
		})
	}
}

func TestScanAfterEnd(t *testing.T) {
	scan := NewScanner("x", nil)
	if tok := scan.Token(); tok.Kind != KindStart {
		t.Errorf("initial token is %v, not Start", tok)
	}
	for i := 0; i < 3; i++ {
		if _, err := scan.Next(); err != nil {
			t.Fatal(err)
		}
	}
	if tok := scan.Token(); tok.Kind != KindEnd {
		t.Errorf("token after end is %v, not End", tok)
	}
}

func TestScanLexicon(t *testing.T) {
	lex := &Lexicon{
		Operators: "+×",
		WordStart: "αβγ",
		Word:      "αβγ'",
		Chars:     "()",
		Open:      "(",
		Close:     ")",
		Quotes:    "`",
	}
	got, err := tokenize("α'×(β+`q`)", lex)
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Kind: KindWord, Text: "α'", Pos: Pos{1, 1}},
		{Kind: KindOperator, Text: "×", Pos: Pos{1, 3}},
		{Kind: KindChar, Text: "(", Pos: Pos{1, 4}},
		{Kind: KindWord, Text: "β", Pos: Pos{1, 5}},
		{Kind: KindOperator, Text: "+", Pos: Pos{1, 6}},
		{Kind: KindString, Text: "q", Pos: Pos{1, 7}},
		{Kind: KindChar, Text: ")", Pos: Pos{1, 10}},
		{Kind: KindEnd, Pos: Pos{1, 11}},
	}
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: want %#v, got %#v", i, want[i], got[i])
		}
	}
}

func TestScanErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		code Code
		pos  Pos
		arg  interface{}
		re   string
	}{
		{"unclosed", `"string`, UnclosedQuote, Pos{1, 1}, '"', `(?i)\bunclosed quote\b.*'"'`},
		{"unclosed-single", `x + 'abc`, UnclosedQuote, Pos{1, 5}, '\'', `(?i)\bunclosed quote\b`},
		{"unclosed-escape", `"abc\"`, UnclosedQuote, Pos{1, 1}, '"', `(?i)\bunclosed quote\b`},
		{"unclosed-backslash", `"abc\`, UnclosedQuote, Pos{1, 1}, '"', `(?i)\bunclosed quote\b`},
		{"backtick", "`", UnexpectedCharacter, Pos{1, 1}, '`', "(?i)\\bunexpected character\\b.*'`'"},
		{"at", "1 @", UnexpectedCharacter, Pos{1, 3}, '@', `'@'`},
		{"second-line", "1\n  @", UnexpectedCharacter, Pos{2, 3}, '@', `^2:3: `},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := tokenize(c.src, nil)
			if err == nil {
				t.Fatalf("scanning %q gave no error", c.src)
			}
			e, ok := err.(*Error)
			if !ok {
				t.Fatalf("scanning %q gave %#v, not *Error", c.src, err)
			}
			if e.Code != c.code {
				t.Errorf("scanning %q: want code %s, got %s", c.src, c.code, e.Code)
			}
			if e.Pos() != c.pos {
				t.Errorf("scanning %q: want position %v, got %v", c.src, c.pos, e.Pos())
			}
			if len(e.Args) != 1 || e.Args[0] != c.arg {
				t.Errorf("scanning %q: want args [%q], got %v", c.src, c.arg, e.Args)
			}
			if msg := err.Error(); !regexp.MustCompile(c.re).MatchString(msg) {
				t.Errorf("error message %q does not match %s", msg, c.re)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	cases := map[fmt.Stringer]string{
		KindNone:     "None",
		KindEnd:      "End",
		KindOperator: "Operator",
		KindChar:     "Char",
		Kind(42):     "Kind(42)",
		NodeNumber:   "Number",
		NodeOperator: "Operator",
		NodeKind(-1): "NodeKind(-1)",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%#v: want %q, got %q", k, want, got)
		}
	}
}
