package lang

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyUnit(t *testing.T) {
	aliases := map[Unit][]string{
		Meter:      {"m", "meter", "meters"},
		Centimeter: {"cm", "centimeter", "centimeters"},
		Millimeter: {"mm", "millimeter", "millimeters"},
		Inch:       {"in", "inch", "inches"},
		Foot:       {"ft", "foot", "feet"},
		Yard:       {"yd", "yard", "yards"},
		Degree:     {"deg", "degree", "degrees"},
		Radian:     {"rad", "radian", "radians"},
	}

	for want, names := range aliases {
		for _, name := range names {
			for _, variant := range []string{name, strings.ToUpper(name), strings.ToUpper(name[:1]) + name[1:]} {
				got, err := ClassifyUnit(variant)
				require.NoError(t, err, "ClassifyUnit(%q)", variant)
				assert.Equal(t, want, got, "ClassifyUnit(%q)", variant)
			}
		}
	}
}

func TestClassifyUnitUnknown(t *testing.T) {
	for _, name := range []string{"", "bananas", "km", "mi", "unitless", "mms", "grad"} {
		_, err := ClassifyUnit(name)
		var evalErr *EvalError
		require.ErrorAs(t, err, &evalErr, "ClassifyUnit(%q)", name)
		assert.Equal(t, ErrUnknownUnit, evalErr.Kind)
		assert.Equal(t, "Unknown unit: "+name, evalErr.Msg)
	}
}

func TestUnitTable(t *testing.T) {
	tests := []struct {
		unit   Unit
		factor float64
		dim    Dimension
		code   string
		name   string
	}{
		{Meter, 1, DimLength, "m", "meter"},
		{Centimeter, 0.01, DimLength, "cm", "centimeter"},
		{Millimeter, 0.001, DimLength, "mm", "millimeter"},
		{Yard, 0.9144, DimLength, "yd", "yard"},
		{Foot, 0.3048, DimLength, "ft", "foot"},
		{Inch, 0.0254, DimLength, "in", "inch"},
		{Degree, math.Pi / 180, DimAngle, "deg", "degree"},
		{Radian, 1, DimAngle, "rad", "radian"},
		{Unitless, 1, DimNumber, "", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.factor, tt.unit.Factor(), "%v factor", tt.name)
		assert.Equal(t, tt.dim, tt.unit.Dimension(), "%v dimension", tt.name)
		assert.Equal(t, tt.code, tt.unit.Code(), "%v code", tt.name)
		assert.Equal(t, tt.name, tt.unit.String())
	}
}

func TestParseUnit(t *testing.T) {
	u, ok := ParseUnit("")
	assert.True(t, ok)
	assert.Equal(t, Unitless, u)

	u, ok = ParseUnit("millimeter")
	assert.True(t, ok)
	assert.Equal(t, Millimeter, u)

	u, ok = ParseUnit(" IN ")
	assert.True(t, ok)
	assert.Equal(t, Inch, u)

	_, ok = ParseUnit("parsec")
	assert.False(t, ok)
}

func TestDimensionString(t *testing.T) {
	assert.Equal(t, "length", DimLength.String())
	assert.Equal(t, "angle", DimAngle.String())
	assert.Equal(t, "number", DimNumber.String())

	for _, d := range []Dimension{DimLength, DimAngle, DimNumber} {
		got, ok := ParseDimension(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := ParseDimension("area")
	assert.False(t, ok)
}
