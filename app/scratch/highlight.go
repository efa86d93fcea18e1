package scratch

import (
	"errors"
	"image/color"
	"unicode/utf8"

	"qtycalc/app/lang"
)

// TokenKind represents the category of a syntax token.
type TokenKind int

const (
	TokenPlain TokenKind = iota
	TokenNumber
	TokenComment
	TokenOperator
	TokenUnit
	TokenParen
	TokenInvalid
)

// Token is a span of text with a syntax category.
type Token struct {
	Text string
	Kind TokenKind
}

// tokenColors maps token kinds to colors. Dark-theme oriented.
var tokenColors = map[TokenKind]color.NRGBA{
	TokenPlain:    {R: 0xD4, G: 0xD4, B: 0xD4, A: 0xFF}, // light gray
	TokenNumber:   {R: 0xB5, G: 0xCE, B: 0xA8, A: 0xFF}, // green
	TokenComment:  {R: 0x6A, G: 0x99, B: 0x55, A: 0xFF}, // dark green
	TokenOperator: {R: 0xA0, G: 0xA0, B: 0xA0, A: 0xFF}, // gray
	TokenUnit:     {R: 0x4E, G: 0xC9, B: 0xB0, A: 0xFF}, // teal
	TokenParen:    {R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}, // yellow
	TokenInvalid:  {R: 0xF4, G: 0x47, B: 0x47, A: 0xFF}, // red
}

// TokenColor returns the color for a token kind.
func TokenColor(kind TokenKind) color.NRGBA {
	if c, ok := tokenColors[kind]; ok {
		return c
	}
	return tokenColors[TokenPlain]
}

// tokenKind maps a lang token to a highlight TokenKind. Identifiers are
// units when the unit table knows them.
func tokenKind(t lang.Token) TokenKind {
	switch t.Type {
	case lang.TOKEN_NUMBER:
		return TokenNumber
	case lang.TOKEN_IDENT:
		if _, err := lang.ClassifyUnit(t.Literal); err != nil {
			return TokenInvalid
		}
		return TokenUnit
	case lang.TOKEN_PLUSMINUS, lang.TOKEN_MULDIV:
		return TokenOperator
	case lang.TOKEN_LPAREN, lang.TOKEN_RPAREN:
		return TokenParen
	default:
		return TokenPlain
	}
}

// Tokenize splits a line into highlighted tokens using the lang lexer.
// Characters the lexer rejects are marked invalid and lexing resumes after
// them.
func Tokenize(line string) []Token {
	if line == "" {
		return nil
	}
	if lang.IsComment(line) {
		return []Token{{Text: line, Kind: TokenComment}}
	}

	var result []Token
	lastEnd := 0
	emit := func(start, end int, kind TokenKind) {
		if start > lastEnd {
			result = append(result, Token{Text: line[lastEnd:start], Kind: TokenPlain})
		}
		result = append(result, Token{Text: line[start:end], Kind: kind})
		lastEnd = end
	}

	offset := 0
	for offset < len(line) {
		end := len(line)
		bad := -1
		tokens, err := lang.Lex(line[offset:])
		if err != nil {
			var lexErr *lang.LexError
			if !errors.As(err, &lexErr) {
				break
			}
			bad = offset + lexErr.Pos()
			end = bad
			// Everything before the rejected character lexes cleanly.
			tokens, _ = lang.Lex(line[offset:end])
		}

		for _, lt := range tokens {
			if lt.Type == lang.TOKEN_EOF {
				break
			}
			start := offset + lt.Pos
			emit(start, start+len(lt.Literal), tokenKind(lt))
		}

		if bad < 0 {
			break
		}
		_, size := utf8.DecodeRuneInString(line[bad:])
		emit(bad, bad+size, TokenInvalid)
		offset = bad + size
	}

	// Any trailing text
	if lastEnd < len(line) {
		result = append(result, Token{Text: line[lastEnd:], Kind: TokenPlain})
	}
	return result
}
