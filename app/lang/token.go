package lang

import "fmt"

// TokenType represents the type of a lexer token.
type TokenType int

const (
	TOKEN_NUMBER TokenType = iota
	TOKEN_IDENT
	TOKEN_PLUSMINUS
	TOKEN_MULDIV
	TOKEN_LPAREN
	TOKEN_RPAREN
	TOKEN_EOF
)

var tokenNames = [...]string{
	TOKEN_NUMBER:    "Number",
	TOKEN_IDENT:     "Identifier",
	TOKEN_PLUSMINUS: "PlusMinus",
	TOKEN_MULDIV:    "MulDivide",
	TOKEN_LPAREN:    "LParen",
	TOKEN_RPAREN:    "RParen",
	TOKEN_EOF:       "EOF",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token represents a single lexer token.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int // byte offset in the input
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q, %d)", t.Type, t.Literal, t.Pos)
}
