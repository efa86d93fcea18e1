package lang

// Lex tokenizes an expression into a slice of tokens terminated by TOKEN_EOF.
// Whitespace is skipped. Signs are never part of a number; the parser handles
// them as unary operators.
func Lex(input string) ([]Token, error) {
	var tokens []Token
	i := 0
	for i < len(input) {
		ch := input[i]

		if isSpace(ch) {
			i++
			continue
		}

		switch ch {
		case '+', '-':
			tokens = append(tokens, Token{Type: TOKEN_PLUSMINUS, Literal: input[i : i+1], Pos: i})
			i++
		case '*', '/':
			tokens = append(tokens, Token{Type: TOKEN_MULDIV, Literal: input[i : i+1], Pos: i})
			i++
		case '(':
			tokens = append(tokens, Token{Type: TOKEN_LPAREN, Literal: "(", Pos: i})
			i++
		case ')':
			tokens = append(tokens, Token{Type: TOKEN_RPAREN, Literal: ")", Pos: i})
			i++
		default:
			switch {
			case isDigit(ch) || ch == '.':
				end, ok := scanNumber(input, i)
				if !ok {
					return nil, &LexError{Col: i, Char: ch}
				}
				tokens = append(tokens, Token{Type: TOKEN_NUMBER, Literal: input[i:end], Pos: i})
				i = end
			case isLetter(ch):
				start := i
				for i < len(input) && isLetter(input[i]) {
					i++
				}
				tokens = append(tokens, Token{Type: TOKEN_IDENT, Literal: input[start:i], Pos: start})
			default:
				return nil, &LexError{Col: i, Char: ch}
			}
		}
	}
	tokens = append(tokens, Token{Type: TOKEN_EOF, Literal: "", Pos: i})
	return tokens, nil
}

// scanNumber matches digits with an optional fraction ("12", "12.", "12.5")
// or a leading-dot fraction (".5") starting at pos.
// Returns (endPos, true) if matched, (0, false) otherwise.
func scanNumber(input string, pos int) (int, bool) {
	i := pos
	if input[i] == '.' {
		i++
		if i >= len(input) || !isDigit(input[i]) {
			return 0, false
		}
		for i < len(input) && isDigit(input[i]) {
			i++
		}
		return i, true
	}
	for i < len(input) && isDigit(input[i]) {
		i++
	}
	if i < len(input) && input[i] == '.' {
		i++
		for i < len(input) && isDigit(input[i]) {
			i++
		}
	}
	return i, true
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\v' || ch == '\f'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
