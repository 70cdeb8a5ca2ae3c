// Package eval reduces arithmetic/bitwise expressions to unsigned
// 64-bit values.
//
// It is a single left-to-right pass over the lexed tokens with two
// stacks, one of pending operands and one of pending operators; an
// incoming operator first fires every tighter-binding operator already
// on the stack, so no syntax tree is ever built. Arithmetic wraps
// modulo 2^64 and shift counts of 64 or more shift the value out to
// zero.
package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/takoeight0821/bitparse/lexer"
	"github.com/takoeight0821/bitparse/token"
)

// Operator precedence, lower binds tighter. Unary operators outrank
// everything; the open-paren frame ranks loosest of all so that no
// precedence comparison ever pops it, only its matching `)` does.
const (
	precUnary = 1
	precParen = 100
)

func precedence(op string) int {
	switch op {
	case "*", "/", "%":
		return 2
	case "+", "-":
		return 3
	case "<<", ">>":
		return 4
	case "&", "^":
		return 5
	case "|":
		return 6
	}

	return precParen - 1 // not reachable for lexed operators
}

// operator is a stack frame pairing a queued token with its rank.
type operator struct {
	tok  token.Token
	prec int
}

type evaluation struct {
	operators []operator
	operands  []uint64
}

// Evaluate lexes input and reduces it to a single value.
func Evaluate(input string) (uint64, error) {
	tokens, err := lexer.Lex(input)
	if err != nil {
		return 0, fmt.Errorf("lex: %w", err)
	}

	eval := evaluation{}

	prevValue := false
	for _, tok := range tokens {
		switch tok.Kind {
		case token.OPENPAREN:
			// Pushed directly: the frame must neither reduce what
			// sits below it nor be reduced by anything but `)`.
			eval.operators = append(eval.operators, operator{tok: tok, prec: precParen})
		case token.CLOSEPAREN:
			if err := eval.closeBracket(tok); err != nil {
				return 0, err
			}
		case token.UNARY:
			if err := eval.queue(tok, precUnary); err != nil {
				return 0, err
			}
		case token.OPERATOR:
			if !prevValue {
				return 0, SyntaxError{Token: tok}
			}
			if err := eval.queue(tok, precedence(tok.Text)); err != nil {
				return 0, err
			}
		case token.NUMBER:
			value, err := parseNumber(tok.Text)
			if err != nil {
				return 0, NumberError{Token: tok, Err: err}
			}
			eval.operands = append(eval.operands, value)
		case token.IDENT:
			// reserved for functions, ignored
		case token.UNKNOWN:
			return 0, UnknownTokenError{Token: tok}
		}
		prevValue = tok.Kind == token.NUMBER || tok.Kind == token.IDENT || tok.Kind == token.CLOSEPAREN
	}

	for len(eval.operators) > 0 {
		op := eval.pop()
		if op.tok.Kind == token.OPENPAREN {
			return 0, UnexpectedOpenBracketError{Token: op.tok}
		}
		if err := eval.apply(op); err != nil {
			return 0, err
		}
	}

	if len(eval.operands) == 0 {
		return 0, ErrNoInput
	}

	return eval.operands[len(eval.operands)-1], nil
}

func (e *evaluation) pop() operator {
	op := e.operators[len(e.operators)-1]
	e.operators = e.operators[:len(e.operators)-1]

	return op
}

// queue fires every stacked operator that binds tighter than the
// incoming one, then pushes it. The comparison is strict, so frames of
// equal rank stay put and the reduction order matches left-associative
// evaluation.
func (e *evaluation) queue(tok token.Token, prec int) error {
	for len(e.operators) > 0 {
		if e.operators[len(e.operators)-1].prec >= prec {
			break
		}
		if err := e.apply(e.pop()); err != nil {
			return err
		}
	}
	e.operators = append(e.operators, operator{tok: tok, prec: prec})

	return nil
}

// closeBracket fires every operator queued since the nearest `(`, then
// discards that frame.
func (e *evaluation) closeBracket(tok token.Token) error {
	for len(e.operators) > 0 {
		op := e.pop()
		if op.tok.Kind == token.OPENPAREN {
			return nil
		}
		if err := e.apply(op); err != nil {
			return err
		}
	}

	return MissingOpenBracketError{Token: tok}
}

func (e *evaluation) popOperand(tok token.Token) (uint64, error) {
	if len(e.operands) == 0 {
		return 0, MissingOperandError{Token: tok}
	}
	value := e.operands[len(e.operands)-1]
	e.operands = e.operands[:len(e.operands)-1]

	return value, nil
}

func (e *evaluation) apply(op operator) error {
	b, err := e.popOperand(op.tok)
	if err != nil {
		return err
	}

	if op.tok.Kind == token.UNARY {
		switch op.tok.Text {
		case "~":
			e.operands = append(e.operands, ^b)
		case "!":
			if b == 0 {
				e.operands = append(e.operands, 1)
			} else {
				e.operands = append(e.operands, 0)
			}
		}

		return nil
	}

	a, err := e.popOperand(op.tok)
	if err != nil {
		return err
	}

	var result uint64
	switch op.tok.Text {
	case "*":
		result = a * b
	case "/":
		if b == 0 {
			return DivideByZeroError{Op: "/", Dividend: a}
		}
		result = a / b
	case "%":
		if b == 0 {
			return DivideByZeroError{Op: "%", Dividend: a}
		}
		result = a % b
	case "+":
		result = a + b
	case "-":
		result = a - b
	case "<<":
		result = a << b
	case ">>":
		result = a >> b
	case "|":
		result = a | b
	case "&":
		result = a & b
	case "^":
		result = a ^ b
	}
	e.operands = append(e.operands, result)

	return nil
}

// parseNumber converts a literal's raw text. A 0x/0o/0b prefix picks
// the base, otherwise decimal. Digits invalid for the base, an empty
// remainder, and values past 64 bits all fail.
func parseNumber(text string) (uint64, error) {
	base := 10
	if rest, ok := strings.CutPrefix(text, "0x"); ok {
		text, base = rest, 16
	} else if rest, ok := strings.CutPrefix(text, "0o"); ok {
		text, base = rest, 8
	} else if rest, ok := strings.CutPrefix(text, "0b"); ok {
		text, base = rest, 2
	}

	return strconv.ParseUint(text, base, 64)
}
