package lang

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalString(t *testing.T, input string, kind QuantityKind) (ValueWithUnits, error) {
	t.Helper()
	node, err := ParseExpression(input)
	require.NoError(t, err, "ParseExpression(%q)", input)
	return Eval(node, kind)
}

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		kind  QuantityKind
		value float64
		dim   Dimension
	}{
		{"42", QuantityReal, 42, DimNumber},
		{"10 mm", QuantityLength, 0.01, DimLength},
		{"5 mm + 5 mm", QuantityLength, 0.01, DimLength},
		{"15 mm - 5 mm", QuantityLength, 0.01, DimLength},
		{"2 * 5 mm", QuantityLength, 0.01, DimLength},
		{"5 mm * 2", QuantityLength, 0.01, DimLength},
		{"10 / 2 mm", QuantityLength, 0.005, DimLength},
		{"(2+3) mm", QuantityLength, 0.005, DimLength},
		{"-5 mm", QuantityLength, -0.005, DimLength},
		{"+5 mm", QuantityLength, 0.005, DimLength},
		{"--5", QuantityReal, 5, DimNumber},
		{"5+-3", QuantityReal, 2, DimNumber},
		{"2 + 3", QuantityLength, 5, DimNumber},
		{"1 ft + 6 in", QuantityLength, 0.4572, DimLength},
		{"180 deg", QuantityAngle, math.Pi, DimAngle},
		{"90 deg / 2", QuantityAngle, math.Pi / 4, DimAngle},
		{"3 * 4", QuantityInteger, 12, DimNumber},
		{"(1 + 1) * (2 + 2)", QuantityReal, 8, DimNumber},
	}

	for _, tt := range tests {
		got, err := evalString(t, tt.input, tt.kind)
		require.NoError(t, err, "Eval(%q)", tt.input)
		assert.Equal(t, tt.dim, got.Dim, "Eval(%q) dimension", tt.input)
		assert.InDelta(t, tt.value, got.Value, 1e-12, "Eval(%q) value", tt.input)
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  QuantityKind
		kindE ErrorKind
		msg   string
	}{
		{"5 mm + 2 deg", QuantityLength, ErrDimension, "Cannot add length and angle"},
		{"5 mm - 2", QuantityLength, ErrDimension, "Cannot subtract length and number"},
		{"2 + 5 mm", QuantityLength, ErrDimension, "Cannot add number and length"},
		{"5 mm * 2 mm", QuantityLength, ErrDimension, "Cannot multiply length and length"},
		{"5 mm / 2 mm", QuantityLength, ErrDimension, "Cannot divide length by length"},
		{"5 / (2 mm)", QuantityLength, ErrDimension, "Cannot divide number by length"},
		{"10 mm / 0", QuantityLength, ErrDivideByZero, "Cannot divide by 0"},
		{"10 / (1 - 1)", QuantityReal, ErrDivideByZero, "Cannot divide by 0"},
		{"10 mm / 0.00000000000001", QuantityLength, ErrDivideByZero, "Cannot divide by 0"},
		{"(5 mm) mm", QuantityLength, ErrDimension, "Cannot add unit to length expression"},
		{"5 mm", QuantityReal, ErrDimension, "Number cannot have length unit millimeter"},
		{"5 deg", QuantityInteger, ErrDimension, "Number cannot have angle unit degree"},
		{"5 in", QuantityAngle, ErrDimension, "Angle cannot have length unit inch"},
	}

	for _, tt := range tests {
		_, err := evalString(t, tt.input, tt.kind)
		var evalErr *EvalError
		require.ErrorAs(t, err, &evalErr, "Eval(%q)", tt.input)
		assert.Equal(t, tt.kindE, evalErr.Kind, "Eval(%q) kind", tt.input)
		assert.Equal(t, tt.msg, evalErr.Msg, "Eval(%q) message", tt.input)
	}
}

func TestEvalDoesNotMutateTree(t *testing.T) {
	node, err := ParseExpression("-(2 + 3) mm * 2")
	require.NoError(t, err)
	before := Stringify(node)

	first, err := Eval(node, QuantityLength)
	require.NoError(t, err)
	second, err := Eval(node, QuantityLength)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, Stringify(node))
}

func TestTolerantComparisons(t *testing.T) {
	a := ValueWithUnits{Value: 0.1, Dim: DimLength}
	b := ValueWithUnits{Value: 0.1 + 5e-9, Dim: DimLength}

	eq, err := TolerantEquals(a, b)
	require.NoError(t, err)
	assert.True(t, eq)

	less, err := TolerantLess(a, b)
	require.NoError(t, err)
	assert.False(t, less)

	greater, err := TolerantGreater(ValueWithUnits{Value: 0.2, Dim: DimLength}, a)
	require.NoError(t, err)
	assert.True(t, greater)

	_, err = TolerantEquals(a, ValueWithUnits{Value: 0.1, Dim: DimAngle})
	var evalErr *EvalError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, ErrCompare, evalErr.Kind)
}

func TestTolerance(t *testing.T) {
	assert.Equal(t, 1e-13, Tolerance(DimNumber))
	assert.Equal(t, 1e-8, Tolerance(DimLength))
	assert.Equal(t, 1e-11, Tolerance(DimAngle))
}

func TestParseQuantityKind(t *testing.T) {
	for _, k := range []QuantityKind{QuantityLength, QuantityAngle, QuantityInteger, QuantityReal} {
		got, ok := ParseQuantityKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	got, ok := ParseQuantityKind("angle")
	assert.True(t, ok)
	assert.Equal(t, QuantityAngle, got)

	_, ok = ParseQuantityKind("volume")
	assert.False(t, ok)
}
