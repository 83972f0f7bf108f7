package token

import "fmt"

type Kind int

const (
	EOF Kind = iota

	// Single-character tokens.
	LEFTPAREN
	RIGHTPAREN

	// Literals and identifiers.
	IDENT
	OPERATOR
	INTEGER
	STRING
)

var kindNames = [...]string{
	EOF:        "EOF",
	LEFTPAREN:  "LEFTPAREN",
	RIGHTPAREN: "RIGHTPAREN",
	IDENT:      "IDENT",
	OPERATOR:   "OPERATOR",
	INTEGER:    "INTEGER",
	STRING:     "STRING",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexeme of the tree notation. Literal holds the
// decoded value for INTEGER and STRING tokens.
type Token struct {
	Kind    Kind
	Lexeme  string
	Line    int
	Literal any
}

// String returns the lexeme as it appeared in the input, so printed
// trees round-trip through the lexer.
func (t Token) String() string {
	return t.Lexeme
}

// Dump returns a debug representation, one token per line in the lexer
// golden files.
func (t Token) Dump() string {
	return fmt.Sprintf("{%v, %q, %d, %v}", t.Kind, t.Lexeme, t.Line, t.Literal)
}

func (t Token) Base() Token {
	return t
}
