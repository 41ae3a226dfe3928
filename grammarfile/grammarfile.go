// Package grammarfile loads pratt grammars described in TOML.
//
// A grammar file has an optional lexicon, constants, operators, and groups:
//
//	[lexicon]
//	operators = "+-*/^"
//	chars = "(),"
//	open = "("
//	close = ")"
//
//	[constants]
//	pi = 3.141592653589793
//
//	[[operator]]
//	id = "+"
//	power = 50
//	assoc = "left"
//
//	[[group]]
//	open = "("
//	close = ")"
//
// Lexicon classes that are omitted or empty take their values from
// pratt.DefaultLexicon. assoc is one of left, right, prefix, or declare; it
// defaults to left. A declared operator has a binding power but no rules, as
// for separators. If there are no groups, every bracket pair of the lexicon is
// a group.
//
package grammarfile

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/zephyrtronium/pratt"
)

// File is the decoded form of a grammar file.
type File struct {
	Lexicon   Lexicon                `toml:"lexicon"`
	Constants map[string]interface{} `toml:"constants"`
	Operators []Operator             `toml:"operator"`
	Groups    []Group                `toml:"group"`
}

// Lexicon holds the character classes of a grammar file.
type Lexicon struct {
	Operators string `toml:"operators"`
	WordStart string `toml:"word_start"`
	Word      string `toml:"word"`
	Chars     string `toml:"chars"`
	Open      string `toml:"open"`
	Close     string `toml:"close"`
	Quotes    string `toml:"quotes"`
}

// Operator is one operator entry.
type Operator struct {
	ID    string `toml:"id"`
	Power int    `toml:"power"`
	Assoc string `toml:"assoc"`
}

// Group is one bracket pair.
type Group struct {
	Open  string `toml:"open"`
	Close string `toml:"close"`
}

// Associativities of operator entries.
const (
	AssocLeft    = "left"
	AssocRight   = "right"
	AssocPrefix  = "prefix"
	AssocDeclare = "declare"
)

// Load reads and builds the grammar in the file at path.
func Load(path string) (*pratt.Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading grammar")
	}
	g, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading grammar %s", path)
	}
	return g, nil
}

// Parse decodes and builds a grammar.
func Parse(data []byte) (*pratt.Grammar, error) {
	f, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return f.Grammar()
}

// Decode decodes a grammar file without validating it.
func Decode(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "decoding grammar")
	}
	return &f, nil
}

// Lex returns the lexicon the file describes.
func (f *File) Lex() *pratt.Lexicon {
	lex := pratt.DefaultLexicon()
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&lex.Operators, f.Lexicon.Operators)
	set(&lex.WordStart, f.Lexicon.WordStart)
	set(&lex.Word, f.Lexicon.Word)
	set(&lex.Chars, f.Lexicon.Chars)
	set(&lex.Open, f.Lexicon.Open)
	set(&lex.Close, f.Lexicon.Close)
	set(&lex.Quotes, f.Lexicon.Quotes)
	return lex
}

// Validate checks the file for every problem that would prevent building its
// grammar. The result is a *multierror.Error listing all of them, or nil.
func (f *File) Validate() error {
	var result *multierror.Error
	lex := f.Lex()
	if o, c := utf8.RuneCountInString(lex.Open), utf8.RuneCountInString(lex.Close); o != c {
		result = multierror.Append(result, errors.Errorf("lexicon has %d open brackets but %d close brackets", o, c))
	}
	for name := range f.Constants {
		if !isWord(lex, name) {
			result = multierror.Append(result, errors.Errorf("constant %q is not a word", name))
		}
	}
	for i, op := range f.Operators {
		switch {
		case op.ID == "":
			result = multierror.Append(result, errors.Errorf("operator %d has no id", i+1))
			continue
		case !isToken(lex, op.ID):
			result = multierror.Append(result, errors.Errorf("operator %d: %q does not scan as one token", i+1, op.ID))
		}
		if op.Power < 0 {
			result = multierror.Append(result, errors.Errorf("operator %d (%q): negative power %d", i+1, op.ID, op.Power))
		}
		switch op.Assoc {
		case "", AssocLeft, AssocRight, AssocPrefix, AssocDeclare:
		default:
			result = multierror.Append(result, errors.Errorf("operator %d (%q): unknown assoc %q", i+1, op.ID, op.Assoc))
		}
	}
	for i, grp := range f.Groups {
		for _, b := range []string{grp.Open, grp.Close} {
			if utf8.RuneCountInString(b) != 1 || !strings.Contains(lex.Chars, b) {
				result = multierror.Append(result, errors.Errorf("group %d: bracket %q is not a single char of the lexicon", i+1, b))
			}
		}
	}
	return result.ErrorOrNil()
}

// Grammar validates the file and builds its grammar.
func (f *File) Grammar() (*pratt.Grammar, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	g := pratt.NewGrammar(f.Lex())
	for name, v := range f.Constants {
		g.Constant(name, v)
	}
	for _, op := range f.Operators {
		switch op.Assoc {
		case "", AssocLeft:
			g.InfixLeft(op.ID, op.Power, nil)
		case AssocRight:
			g.InfixRight(op.ID, op.Power, nil)
		case AssocPrefix:
			g.Prefix(op.ID, nil)
		case AssocDeclare:
			g.Declare(op.ID, op.Power)
		}
	}
	if len(f.Groups) == 0 {
		g.Groups()
	}
	for _, grp := range f.Groups {
		g.Group(grp.Open, grp.Close)
	}
	return g, nil
}

// isToken returns whether the scanner would produce id as a single operator,
// char, or word token.
func isToken(lex *pratt.Lexicon, id string) bool {
	if utf8.RuneCountInString(id) == 1 && strings.Contains(lex.Chars, id) {
		return true
	}
	if isWord(lex, id) {
		return true
	}
	for _, r := range id {
		if !lex.IsOperator(r) || strings.ContainsRune(lex.Chars, r) {
			return false
		}
	}
	return true
}

func isWord(lex *pratt.Lexicon, s string) bool {
	for i, r := range s {
		class := lex.Word
		if i == 0 {
			class = lex.WordStart
		}
		if !strings.ContainsRune(class, r) {
			return false
		}
	}
	return s != ""
}
