package token

import "fmt"

type Kind int

const (
	// UNKNOWN marks any character the lexer cannot classify. It is
	// carried through the token stream and rejected during evaluation.
	UNKNOWN Kind = iota

	OPENPAREN
	CLOSEPAREN

	// UNARY is one of `~` (bitwise complement) or `!` (zero test).
	UNARY
	// OPERATOR is a binary operator: * / % + - << >> | & ^.
	OPERATOR

	// NUMBER holds a literal's raw text, including any 0x/0o/0b
	// prefix. Digit validity is checked at parse time, not lex time.
	NUMBER
	// IDENT is a run of alphabetic characters. Reserved; evaluation
	// ignores it.
	IDENT
)

var kindNames = [...]string{
	UNKNOWN:    "UNKNOWN",
	OPENPAREN:  "OPENPAREN",
	CLOSEPAREN: "CLOSEPAREN",
	UNARY:      "UNARY",
	OPERATOR:   "OPERATOR",
	NUMBER:     "NUMBER",
	IDENT:      "IDENT",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

type Token struct {
	Kind Kind
	Text string
	Pos  int // byte offset of the first character in the input
}

func (t Token) String() string {
	return fmt.Sprintf("{%v, %q, %d}", t.Kind, t.Text, t.Pos)
}
