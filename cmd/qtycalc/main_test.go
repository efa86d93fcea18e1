package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"qtycalc/app/lang"
	"qtycalc/app/param"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewCmdRoot(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

const testSheet = `
parameters:
  - id: width
    name: Width
    default: 2+3
    quantityType: LENGTH
    unit: mm
    min: 0
    max: 100
  - id: count
    name: Count
    default: 4 in
    quantityType: INTEGER
  - id: ratio
    name: Ratio
    default: 1/3
    quantityType: REAL
`

func writeSheet(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSheet), 0o644))
	return path
}

func TestEvalText(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"eval", "1 ft + 6 in", "--unit", "in"}, "1 ft + 6 in = 18 in\n"},
		{[]string{"eval", "2 + 3"}, "(2 + 3) mm = 5 mm\n"},
		{[]string{"eval", "3.14159265359 rad", "--kind", "angle", "--unit", "rad"}, "3.14159265359 rad = 3.14 rad\n"},
		{[]string{"eval", "7/2", "--kind", "real", "--precision", "1"}, "7 / 2 = 3.5\n"},
		{[]string{"eval", "7/2", "--kind", "INTEGER"}, "7 / 2 = 4\n"},
		{[]string{"eval", "1 in", "--precision", "0"}, "1 in = 25 mm\n"},
	}

	for _, tt := range tests {
		out, _, err := run(t, tt.args...)
		require.NoError(t, err, "%v", tt.args)
		assert.Equal(t, tt.want, out, "%v", tt.args)
	}
}

func TestEvalErrorResult(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"eval", "100 deg", "--kind", "angle", "--min", "0", "--max", "90"}, "100 deg: Value must be less than 90 deg\n"},
		{[]string{"eval", "5 mm", "--kind", "real"}, "5 mm: Number cannot have length unit millimeter\n"},
		{[]string{"eval", "5 +"}, "5 +: Invalid expression\n"},
		{[]string{"eval", "--min", "0", "--", "-1"}, "-1 mm: Value must be greater than 0 mm\n"},
	}

	for _, tt := range tests {
		out, _, err := run(t, tt.args...)
		assert.ErrorIs(t, err, errEvaluation, "%v", tt.args)
		assert.Equal(t, tt.want, out, "%v", tt.args)
	}
}

func TestEvalStructuredOutput(t *testing.T) {
	out, _, err := run(t, "eval", "10 mm", "-o", "json")
	require.NoError(t, err)
	var got evalResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "10 mm", got.Expression)
	assert.Equal(t, "10 mm", got.DisplayExpression)
	assert.InDelta(t, 0.01, got.Value, 1e-15)
	assert.False(t, got.HasError)

	out, _, err = run(t, "eval", "5 bananas", "-o", "yaml")
	assert.ErrorIs(t, err, errEvaluation)
	got = evalResult{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.True(t, got.HasError)
	assert.Equal(t, "Unknown unit: bananas", got.ErrorMessage)
	assert.Equal(t, "unknown_unit", got.ErrorKind)
}

func TestEvalInvalidInvocation(t *testing.T) {
	tests := [][]string{
		{"eval"},
		{"eval", "5", "-o", "xml"},
		{"eval", "5", "--kind", "volume"},
		{"eval", "5", "--kind", "real", "--unit", "mm"},
		{"eval", "5", "--unit", "deg"},
		{"eval", "5", "--param", "width"},
		{"eval", "5", "6"},
	}

	for _, args := range tests {
		_, _, err := run(t, args...)
		require.Error(t, err, "%v", args)
		assert.NotErrorIs(t, err, errEvaluation, "%v", args)
	}
}

func TestEvalSheet(t *testing.T) {
	path := writeSheet(t)

	out, _, err := run(t, "eval", "12", "--sheet", path, "--param", "width")
	require.NoError(t, err)
	assert.Equal(t, "12 mm = 12 mm\n", out)

	out, _, err = run(t, "eval", "--sheet", path, "--param", "width")
	require.NoError(t, err)
	assert.Equal(t, "(2 + 3) mm = 5 mm\n", out)

	out, _, err = run(t, "eval", "200", "--sheet", path, "--param", "width")
	assert.ErrorIs(t, err, errEvaluation)
	assert.Equal(t, "200 mm: Value must be less than 100 mm\n", out)

	_, _, err = run(t, "eval", "1", "--sheet", path, "--param", "depth")
	assert.Error(t, err)
}

func TestVerboseAndStats(t *testing.T) {
	_, errOut, err := run(t, "--verbose", "--stats", "eval", "5 mm")
	require.NoError(t, err)
	assert.Contains(t, errOut, "evaluating expression")
	assert.Contains(t, errOut, "evaluations:")
	assert.Regexp(t, `LENGTH\s+ok\s+1`, errOut)

	_, errOut, err = run(t, "eval", "5 mm")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestDefaults(t *testing.T) {
	path := writeSheet(t)

	out, errOut, err := run(t, "--stats", "defaults", path)
	assert.ErrorIs(t, err, errEvaluation)
	assert.Equal(t, "width\t(2 + 3) mm = 5 mm\ncount\t4 in: Number cannot have length unit inch\nratio\t1 / 3 = 0.333\n", out)
	assert.Regexp(t, `INTEGER\s+dimension\s+1`, errOut)
	assert.Regexp(t, `REAL\s+ok\s+1`, errOut)

	out, _, err = run(t, "defaults", path, "-o", "json")
	assert.ErrorIs(t, err, errEvaluation)
	var cleaned []param.Cleaned
	require.NoError(t, json.Unmarshal([]byte(out), &cleaned))
	require.Len(t, cleaned, 3)
	assert.Equal(t, "width", cleaned[0].ID)
	assert.Equal(t, "(2 + 3) mm", cleaned[0].Expression)
	assert.Equal(t, "Number cannot have length unit inch", cleaned[1].Error)
}

func TestDefaultsWrite(t *testing.T) {
	path := writeSheet(t)

	_, _, err := run(t, "defaults", path, "--write")
	assert.ErrorIs(t, err, errEvaluation)

	sheet, err := param.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "(2 + 3) mm", sheet.Parameters[0].Default)
	assert.Equal(t, "4 in", sheet.Parameters[1].Default)
	assert.Equal(t, "1 / 3", sheet.Parameters[2].Default)
}

func TestDefaultsMissingFile(t *testing.T) {
	_, _, err := run(t, "defaults", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, errEvaluation)
}

func TestFlagValues(t *testing.T) {
	var k kindValue
	require.NoError(t, k.Set("Angle"))
	assert.Equal(t, kindValue(lang.QuantityAngle), k)
	assert.Equal(t, "angle", k.String())
	assert.Error(t, k.Set("area"))

	var f outputFormat
	require.NoError(t, f.Set("yaml"))
	assert.Equal(t, "yaml", f.String())
	assert.Error(t, f.Set("xml"))
}
