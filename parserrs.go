package pratt

import "strconv"

// Code identifies a kind of failure.
type Code string

const (
	// UnclosedQuote is a string with no closing quote. Args holds the quote.
	UnclosedQuote Code = "unclosed-quote"
	// UnexpectedCharacter is a rune that begins no token. Args holds the
	// rune.
	UnexpectedCharacter Code = "unexpected-character"

	// UndefinedLeadingToken is a token with no prefix rule in a leading
	// position. Args holds the token text.
	UndefinedLeadingToken Code = "undefined-leading-token"
	// MissingOperator is a token with a nonzero binding power but no infix
	// rule. Args holds the token text.
	MissingOperator Code = "missing-operator"
	// ExpectedToken is a mismatch with a required token. Args holds the
	// expected and the actual token text.
	ExpectedToken Code = "expected-token"
	// ExpectedType is a mismatch with a required token kind. Args holds the
	// expected Kind.
	ExpectedType Code = "expected-type"
	// UnknownOperator is operator or punctuation text with no registered
	// symbol. Args holds the text.
	UnknownOperator Code = "unknown-operator"
	// UnexpectedToken is a token that cannot appear where it does. Args holds
	// its Kind and text.
	UnexpectedToken Code = "unexpected-token"

	// UnknownOperation is an operator with no rule in the evaluation type.
	// Args holds the operator.
	UnknownOperation Code = "unknown-operation"
	// BadLiteral is a literal the evaluation type cannot convert. Args holds
	// the literal text.
	BadLiteral Code = "bad-literal"

	// MultipleUse is a variable that occurs more than once in an expression
	// being inverted. Args holds the variable name.
	MultipleUse Code = "multiple-use"
	// Uninvertible is an operator with no inverse rule for the side holding
	// the variable. Args holds the operator and the direction, e.g. "RES^val".
	Uninvertible Code = "uninvertible"
	// MissingVariable is a variable that does not occur in an expression
	// being inverted. Args holds the variable name.
	MissingVariable Code = "missing-variable"
)

// Error is a failure to scan, parse, compile, or invert an expression. It
// implements InputError.
type Error struct {
	// Code identifies the failure.
	Code Code
	// Msg is a human-readable description.
	Msg string
	// At is the source position of the failure, or the zero Pos if none
	// applies.
	At Pos
	// Args holds values describing the failure. Each Code documents its
	// Args.
	Args []interface{}
}

func (err *Error) Error() string {
	if err.At == (Pos{}) {
		return err.Msg
	}
	return errpos(err.At, err.Msg)
}

func (err *Error) Pos() Pos {
	return err.At
}

// Is reports whether target is an *Error with the same Code, so that
// errors.Is(err, &Error{Code: MultipleUse}) matches any such failure.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == err.Code
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos Pos, msg string) string {
	return pos.String() + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the token that caused the error, or the
	// zero Pos if the error is not tied to source text.
	Pos() Pos
}

// NameError is an error from a lookup for a variable that is missing from the
// evaluation environment.
type NameError struct {
	// Name is the name that was missing.
	Name string
	// Global is whether the name was looked up among globals.
	Global bool
}

func (err *NameError) Error() string {
	if err.Global {
		return "undefined global variable: " + strconv.Quote(err.Name)
	}
	return "undefined variable: " + strconv.Quote(err.Name)
}

var (
	_ InputError = (*Error)(nil)
)
