// Package pratt implements a grammar-agnostic operator-precedence parser.
//
// A Scanner splits text into tokens according to a Lexicon of character
// classes. A Grammar maps token identities to binding powers and parse rules;
// it is built once by registering operators, then used read-only to Parse any
// number of expressions. An Evaluator renders, compiles, or inverts the
// resulting trees using a caller-supplied table of Types.
//
// "3*x+5" parses as ((3*x)+5) with the usual arithmetic powers, and inverting
// it for x with the result named r gives the tree for "(r-5)/3".
//
package pratt
