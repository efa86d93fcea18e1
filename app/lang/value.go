package lang

import "math"

// ValueWithUnits pairs a value in base units (meters, radians, or a plain
// number) with its dimension.
type ValueWithUnits struct {
	Value float64
	Dim   Dimension
}

// NewValue converts v, expressed in unit, to a ValueWithUnits.
func NewValue(v float64, unit Unit) ValueWithUnits {
	return ValueWithUnits{Value: v * unit.Factor(), Dim: unit.Dimension()}
}

// In returns the value expressed in unit.
func (v ValueWithUnits) In(unit Unit) float64 {
	return v.Value / unit.Factor()
}

// Absolute tolerances per dimension, in base units.
var tolerances = [...]float64{
	DimNumber: 1e-13,
	DimLength: 1e-8,
	DimAngle:  1e-11,
}

// Tolerance returns the absolute comparison tolerance for d.
func Tolerance(d Dimension) float64 {
	if d < 0 || int(d) >= len(tolerances) {
		return tolerances[DimNumber]
	}
	return tolerances[d]
}

func checkComparable(a, b ValueWithUnits) error {
	if a.Dim != b.Dim {
		return &EvalError{Kind: ErrCompare, Msg: "Cannot compare values with different units"}
	}
	return nil
}

// TolerantEquals reports whether a and b differ by less than their
// dimension's tolerance.
func TolerantEquals(a, b ValueWithUnits) (bool, error) {
	if err := checkComparable(a, b); err != nil {
		return false, err
	}
	return math.Abs(a.Value-b.Value) < Tolerance(a.Dim), nil
}

// TolerantLess reports whether a is below b by more than the tolerance.
func TolerantLess(a, b ValueWithUnits) (bool, error) {
	if err := checkComparable(a, b); err != nil {
		return false, err
	}
	return a.Value < b.Value-Tolerance(a.Dim), nil
}

// TolerantGreater reports whether a is above b by more than the tolerance.
func TolerantGreater(a, b ValueWithUnits) (bool, error) {
	if err := checkComparable(a, b); err != nil {
		return false, err
	}
	return a.Value > b.Value+Tolerance(a.Dim), nil
}

// Unbounded returns the lowest and highest values of dimension d, for
// options that should accept any magnitude.
func Unbounded(d Dimension) (lo, hi ValueWithUnits) {
	return ValueWithUnits{Value: math.Inf(-1), Dim: d}, ValueWithUnits{Value: math.Inf(1), Dim: d}
}
