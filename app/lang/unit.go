package lang

import (
	"math"
	"strings"
)

// Dimension classifies what a unit measures.
type Dimension int

const (
	DimNumber Dimension = iota
	DimLength
	DimAngle
)

func (d Dimension) String() string {
	switch d {
	case DimLength:
		return "length"
	case DimAngle:
		return "angle"
	default:
		return "number"
	}
}

// ParseDimension maps "length", "angle" or "number" to a Dimension.
func ParseDimension(s string) (Dimension, bool) {
	switch strings.ToLower(s) {
	case "length":
		return DimLength, true
	case "angle":
		return DimAngle, true
	case "number", "":
		return DimNumber, true
	}
	return DimNumber, false
}

// Unit is one of the units an expression may carry.
type Unit int

const (
	Unitless Unit = iota
	Meter
	Centimeter
	Millimeter
	Yard
	Foot
	Inch
	Degree
	Radian
)

// unitDef defines a unit with its dimension and conversion factor to the base unit.
type unitDef struct {
	Short  string // display code (e.g. "mm")
	Full   string // full singular name (e.g. "millimeter")
	FullPl string // full plural name (e.g. "millimeters")
	Dim    Dimension
	// ToBase is the conversion factor: value_in_base = value * ToBase
	ToBase float64
}

var allUnits = [...]unitDef{
	Unitless: {Short: "", Full: "", FullPl: "", Dim: DimNumber, ToBase: 1},

	// Length (base: meters)
	Meter:      {Short: "m", Full: "meter", FullPl: "meters", Dim: DimLength, ToBase: 1},
	Centimeter: {Short: "cm", Full: "centimeter", FullPl: "centimeters", Dim: DimLength, ToBase: 0.01},
	Millimeter: {Short: "mm", Full: "millimeter", FullPl: "millimeters", Dim: DimLength, ToBase: 0.001},
	Yard:       {Short: "yd", Full: "yard", FullPl: "yards", Dim: DimLength, ToBase: 0.9144},
	Foot:       {Short: "ft", Full: "foot", FullPl: "feet", Dim: DimLength, ToBase: 0.3048},
	Inch:       {Short: "in", Full: "inch", FullPl: "inches", Dim: DimLength, ToBase: 0.0254},

	// Angle (base: radians)
	Degree: {Short: "deg", Full: "degree", FullPl: "degrees", Dim: DimAngle, ToBase: math.Pi / 180},
	Radian: {Short: "rad", Full: "radian", FullPl: "radians", Dim: DimAngle, ToBase: 1},
}

// unitLookup maps lower-cased short names, full singular, and full plural to units.
// Unitless has no textual alias.
var unitLookup map[string]Unit

func init() {
	unitLookup = make(map[string]Unit, len(allUnits)*3)
	for u, def := range allUnits {
		if Unit(u) == Unitless {
			continue
		}
		unitLookup[def.Short] = Unit(u)
		unitLookup[def.Full] = Unit(u)
		unitLookup[def.FullPl] = Unit(u)
	}
}

// ClassifyUnit looks up a unit by short name, full name, or plural name,
// ignoring case.
func ClassifyUnit(name string) (Unit, error) {
	if u, ok := unitLookup[strings.ToLower(name)]; ok {
		return u, nil
	}
	return Unitless, &EvalError{Kind: ErrUnknownUnit, Msg: "Unknown unit: " + name}
}

// ParseUnit maps a unit's long name ("millimeter", "" for unitless) or any
// alias accepted by ClassifyUnit to a Unit. It is meant for configuration,
// where Unitless must be expressible.
func ParseUnit(name string) (Unit, bool) {
	if strings.TrimSpace(name) == "" {
		return Unitless, true
	}
	u, err := ClassifyUnit(strings.TrimSpace(name))
	return u, err == nil
}

func (u Unit) def() unitDef {
	if u < 0 || int(u) >= len(allUnits) {
		return allUnits[Unitless]
	}
	return allUnits[u]
}

// Factor returns the multiplier converting a value in u to its base unit.
func (u Unit) Factor() float64 {
	return u.def().ToBase
}

// Dimension returns what u measures.
func (u Unit) Dimension() Dimension {
	return u.def().Dim
}

// Code returns the short display label, "" for Unitless.
func (u Unit) Code() string {
	return u.def().Short
}

// String returns the unit's long name, "" for Unitless.
func (u Unit) String() string {
	return u.def().Full
}
