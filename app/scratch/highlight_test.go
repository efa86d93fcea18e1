package scratch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		line string
		want []Token
	}{
		{"", nil},
		{"5 mm", []Token{{"5", TokenNumber}, {" ", TokenPlain}, {"mm", TokenUnit}}},
		{"(2+3) in", []Token{
			{"(", TokenParen}, {"2", TokenNumber}, {"+", TokenOperator}, {"3", TokenNumber},
			{")", TokenParen}, {" ", TokenPlain}, {"in", TokenUnit},
		}},
		{"5 bananas", []Token{{"5", TokenNumber}, {" ", TokenPlain}, {"bananas", TokenInvalid}}},
		{"2 $ 3 deg", []Token{
			{"2", TokenNumber}, {" ", TokenPlain}, {"$", TokenInvalid}, {" ", TokenPlain},
			{"3", TokenNumber}, {" ", TokenPlain}, {"deg", TokenUnit},
		}},
		{"// note", []Token{{"// note", TokenComment}}},
		{"5 µm", []Token{{"5", TokenNumber}, {" ", TokenPlain}, {"µ", TokenInvalid}, {"m", TokenUnit}}},
		{"1 ft  ", []Token{{"1", TokenNumber}, {" ", TokenPlain}, {"ft", TokenUnit}, {"  ", TokenPlain}}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Tokenize(tt.line), "Tokenize(%q)", tt.line)
	}
}

func TestTokenizeCoversLine(t *testing.T) {
	for _, line := range []string{"5 mm + 2 in", "1.5.5 $$ ..", "((3)) rad / 2", "µm", "  7 * -2 yd"} {
		var b strings.Builder
		for _, tok := range Tokenize(line) {
			b.WriteString(tok.Text)
		}
		assert.Equal(t, line, b.String(), "Tokenize(%q) should cover the whole line", line)
	}
}
