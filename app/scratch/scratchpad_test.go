package scratch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qtycalc/app/lang"
)

const scratchSheet = `
settings:
  angleUnit: rad
parameters:
  - id: width
    name: Width
    default: 10 mm
    quantityType: LENGTH
  - id: tilt
    default: 0.5 rad
    quantityType: ANGLE
`

func TestScratchpadDefault(t *testing.T) {
	sp := NewScratchpad()
	assert.Equal(t, "LENGTH mm", sp.Label())
	assert.Equal(t, lang.QuantityLength, sp.Options().QuantityKind)
	assert.Equal(t, lang.Millimeter, sp.Options().DisplayUnit)
	assert.Empty(t, sp.Default())
	assert.NoError(t, sp.Next())

	res := lang.EvaluateExpression("1 in", sp.Options())
	assert.Equal(t, "25.4 mm", res.DisplayExpression)
}

func TestScratchpadSheet(t *testing.T) {
	sp := NewScratchpad()
	require.NoError(t, sp.LoadSheet("part.yaml", []byte(scratchSheet)))
	assert.Equal(t, "Width LENGTH mm", sp.Label())
	assert.Equal(t, "10 mm", sp.Default())

	require.NoError(t, sp.Next())
	assert.Equal(t, "tilt ANGLE rad", sp.Label())
	assert.Equal(t, lang.QuantityAngle, sp.Options().QuantityKind)
	assert.Equal(t, "0.5 rad", sp.Default())

	require.NoError(t, sp.Next())
	assert.Equal(t, "Width LENGTH mm", sp.Label())
}

func TestScratchpadSeed(t *testing.T) {
	sp := NewScratchpad()
	_, ok := sp.Seed("")
	assert.False(t, ok)

	require.NoError(t, sp.LoadSheet("part.yaml", []byte(scratchSheet)))
	text, ok := sp.Seed(" \n\t")
	assert.True(t, ok)
	assert.Equal(t, "10 mm", text)

	_, ok = sp.Seed("5 in")
	assert.False(t, ok)

	require.NoError(t, sp.Next())
	text, ok = sp.Seed("")
	assert.True(t, ok)
	assert.Equal(t, "0.5 rad", text)
}

func TestScratchpadLoadErrors(t *testing.T) {
	sp := NewScratchpad()
	assert.Error(t, sp.LoadSheet("part.txt", []byte(scratchSheet)))
	assert.Error(t, sp.LoadSheet("part.json", []byte(scratchSheet)))
	assert.Error(t, sp.LoadSheet("empty.yaml", []byte("parameters: []\n")))
	assert.Nil(t, sp.Sheet)
	assert.Equal(t, "LENGTH mm", sp.Label())
}

func TestIsSheetPath(t *testing.T) {
	assert.True(t, IsSheetPath("/tmp/part.yaml"))
	assert.True(t, IsSheetPath("part.JSON"))
	assert.False(t, IsSheetPath("notes.txt"))
	assert.False(t, IsSheetPath("notes"))
}
