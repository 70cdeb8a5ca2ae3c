package eval

import (
	"errors"
	"fmt"

	"github.com/takoeight0821/bitparse/token"
)

// ErrNoInput is returned when evaluation finishes with no value, i.e.
// the expression was empty.
var ErrNoInput = errors.New("no input")

type UnknownTokenError struct {
	Token token.Token
}

func (e UnknownTokenError) Error() string {
	return fmt.Sprintf("unrecognized token %q at offset %d", e.Token.Text, e.Token.Pos)
}

type NumberError struct {
	Token token.Token
	Err   error
}

func (e NumberError) Error() string {
	return fmt.Sprintf("unrecognized number %q", e.Token.Text)
}

func (e NumberError) Unwrap() error {
	return e.Err
}

// SyntaxError reports a binary operator in a position where a value
// was expected: at the start of the expression, after `(`, or after
// another binary operator.
type SyntaxError struct {
	Token token.Token
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at token %q", e.Token.Text)
}

// MissingOpenBracketError reports a `)` with no matching `(`.
type MissingOpenBracketError struct {
	Token token.Token
}

func (e MissingOpenBracketError) Error() string {
	return "missing open bracket"
}

// UnexpectedOpenBracketError reports a `(` still unmatched when the
// expression ends.
type UnexpectedOpenBracketError struct {
	Token token.Token
}

func (e UnexpectedOpenBracketError) Error() string {
	return "unexpected open bracket"
}

// MissingOperandError reports an operator applied with fewer operands
// available than it needs.
type MissingOperandError struct {
	Token token.Token
}

func (e MissingOperandError) Error() string {
	return fmt.Sprintf("not enough operands for %q", e.Token.Text)
}

type DivideByZeroError struct {
	Op       string
	Dividend uint64
}

func (e DivideByZeroError) Error() string {
	return fmt.Sprintf("divide by zero in %d %s 0", e.Dividend, e.Op)
}
