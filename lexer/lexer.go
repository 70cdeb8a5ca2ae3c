package lexer

import (
	"github.com/takoeight0821/bitparse/token"
)

// Lex converts an expression into tokens, left to right. It never
// fails: unclassifiable characters become UNKNOWN tokens and are
// rejected by the evaluator, so the error is always nil today.
func Lex(source string) ([]token.Token, error) {
	lexer := lexer{
		source: source,
		tokens: []token.Token{},
	}

	for !lexer.isAtEnd() {
		lexer.scanToken()
	}

	return lexer.tokens, nil
}

type lexer struct {
	source string
	tokens []token.Token

	start   int // start of current lexeme
	current int // current position in source
}

func (l lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l lexer) peek() byte {
	if l.isAtEnd() {
		return '\x00'
	}

	return l.source[l.current]
}

func (l *lexer) advance() byte {
	c := l.source[l.current]
	l.current++

	return c
}

func (l *lexer) addToken(kind token.Kind) {
	text := l.source[l.start:l.current]
	l.tokens = append(l.tokens, token.Token{Kind: kind, Text: text, Pos: l.start})
}

func (l *lexer) scanToken() {
	l.start = l.current
	char := l.advance()
	switch char {
	case ' ', '\r', '\t', '\n':
		// ignore whitespace
	case '(':
		l.addToken(token.OPENPAREN)
	case ')':
		l.addToken(token.CLOSEPAREN)
	case '<':
		if l.peek() == '<' {
			l.advance()
			l.addToken(token.OPERATOR)
		} else {
			l.addToken(token.UNKNOWN)
		}
	case '>':
		if l.peek() == '>' {
			l.advance()
			l.addToken(token.OPERATOR)
		} else {
			l.addToken(token.UNKNOWN)
		}
	case '~', '!':
		l.addToken(token.UNARY)
	case '^', '*', '/', '%', '+', '-', '|', '&':
		l.addToken(token.OPERATOR)
	case 'x', 'o', 'b':
		// base-prefix letters are only meaningful inside a 0x/0o/0b
		// literal, which number() consumes; on their own they are
		// skipped
	default:
		if isDigit(char) {
			l.number(char)
		} else if isAlpha(char) {
			l.identifier()
		} else {
			l.addToken(token.UNKNOWN)
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// number consumes a literal. A leading zero may declare a base with a
// b/o/x prefix letter; after that, any hex digit is taken regardless
// of the declared base. Whether the digits fit the base is the number
// parser's problem, not ours.
func (l *lexer) number(first byte) {
	if first == '0' {
		switch l.peek() {
		case 'b', 'o', 'x':
			l.advance()
		}
	}
	for isHexDigit(l.peek()) {
		l.advance()
	}
	l.addToken(token.NUMBER)
}

func (l *lexer) identifier() {
	for isAlpha(l.peek()) {
		l.advance()
	}
	l.addToken(token.IDENT)
}
