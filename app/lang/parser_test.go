package lang

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"3.50", "3.50"},
		{".5mm", ".5 mm"},
		{"10 MM", "10 mm"},
		{"5 millimeters", "5 mm"},
		{"2+3", "2 + 3"},
		{"(2+3)mm", "(2 + 3) mm"},
		{"((2))", "((2))"},
		{"-5 mm", "-5 mm"},
		{"--5", "--5"},
		{"+-5", "+-5"},
		{"5+-3", "5 + -3"},
		{"  7   mm   +   3 mm ", "7 mm + 3 mm"},
		{"2*(3+4) in", "2 * (3 + 4) in"},
		{"10/2 deg", "10 / 2 deg"},
		{"1 ft + 6 inches", "1 ft + 6 in"},
	}

	for _, tt := range tests {
		node, err := ParseExpression(tt.input)
		require.NoError(t, err, "ParseExpression(%q)", tt.input)
		assert.Equal(t, tt.want, Stringify(node), "Stringify(ParseExpression(%q))", tt.input)
	}
}

func TestParsePrecedence(t *testing.T) {
	node, err := ParseExpression("1 + 2 * 3 - 4")
	require.NoError(t, err)

	// ((1 + (2 * 3)) - 4)
	sub, ok := node.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, byte('-'), sub.Op)
	add, ok := sub.Left.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, byte('+'), add.Op)
	mul, ok := add.Right.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, byte('*'), mul.Op)
}

func TestParseUnaryBindsTighterThanMul(t *testing.T) {
	node, err := ParseExpression("-2 * 3")
	require.NoError(t, err)

	mul, ok := node.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, byte('*'), mul.Op)
	neg, ok := mul.Left.(*UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, byte('-'), neg.Op)
}

func TestParseLeftAssociative(t *testing.T) {
	node, err := ParseExpression("8 / 4 / 2")
	require.NoError(t, err)

	outer, ok := node.(*BinaryExpr)
	require.True(t, ok)
	_, ok = outer.Left.(*BinaryExpr)
	assert.True(t, ok, "left operand should be the inner division")
	_, ok = outer.Right.(*ValueLit)
	assert.True(t, ok)
}

func TestParseValueLiteral(t *testing.T) {
	node, err := ParseExpression("2.5 in")
	require.NoError(t, err)

	lit, ok := node.(*ValueLit)
	require.True(t, ok)
	assert.Equal(t, "2.5", lit.Raw)
	assert.Equal(t, Inch, lit.Unit)
	assert.Equal(t, DimLength, lit.Dimension())
	assert.InDelta(t, 0.0635, lit.Value, 1e-12)
}

func TestParseUnitApplication(t *testing.T) {
	node, err := ParseExpression("(2 + 3) mm")
	require.NoError(t, err)

	app, ok := node.(*UnitExpr)
	require.True(t, ok)
	assert.Equal(t, Millimeter, app.Unit)
	_, ok = app.Expr.(*ParenExpr)
	assert.True(t, ok)
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"5 +",
		"(5",
		"5)",
		"()",
		"mm",
		"5 mm mm",
		"* 5",
		"5 5",
		"(2)(3)",
		"",
		strings.Repeat("(", MaxDepth+1) + "1" + strings.Repeat(")", MaxDepth+1),
		strings.Repeat("-", MaxDepth+1) + "1",
	} {
		_, err := ParseExpression(input)
		var inputErr InputError
		require.ErrorAs(t, err, &inputErr, "ParseExpression(%q)", input)
	}
}

func TestParseUnknownUnit(t *testing.T) {
	for _, input := range []string{"5 bananas", "(5) bananas"} {
		_, err := ParseExpression(input)
		var evalErr *EvalError
		require.ErrorAs(t, err, &evalErr, "ParseExpression(%q)", input)
		assert.Equal(t, "Unknown unit: bananas", evalErr.Msg)
	}
}

func TestParseNestingWithinLimit(t *testing.T) {
	input := strings.Repeat("(", MaxDepth) + "1" + strings.Repeat(")", MaxDepth)
	_, err := ParseExpression(input)
	assert.NoError(t, err)
}
