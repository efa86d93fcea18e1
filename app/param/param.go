package param

import (
	"fmt"

	"qtycalc/app/lang"
)

// QuantityParameter is a named, bounded input whose value is entered as an
// expression. Min and Max are expressed in Unit; nil means unbounded.
type QuantityParameter struct {
	ID           string   `yaml:"id" json:"id"`
	Name         string   `yaml:"name" json:"name"`
	Default      string   `yaml:"default" json:"default"`
	QuantityType string   `yaml:"quantityType" json:"quantityType"`
	Unit         string   `yaml:"unit,omitempty" json:"unit,omitempty"`
	Min          *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max          *float64 `yaml:"max,omitempty" json:"max,omitempty"`
}

// Settings are the user's display preferences.
type Settings struct {
	LengthUnit      string `yaml:"lengthUnit" json:"lengthUnit"`
	LengthPrecision uint   `yaml:"lengthPrecision" json:"lengthPrecision"`
	AngleUnit       string `yaml:"angleUnit" json:"angleUnit"`
	AnglePrecision  uint   `yaml:"anglePrecision" json:"anglePrecision"`
	RealPrecision   uint   `yaml:"realPrecision" json:"realPrecision"`
}

// DefaultSettings returns millimeters and degrees at two decimals, and
// three decimals for real numbers.
func DefaultSettings() Settings {
	return Settings{
		LengthUnit:      "mm",
		LengthPrecision: 2,
		AngleUnit:       "deg",
		AnglePrecision:  2,
		RealPrecision:   3,
	}
}

// Options builds the engine options for entering p under settings s.
func Options(p QuantityParameter, s Settings) (lang.EvaluateOptions, error) {
	kind, ok := lang.ParseQuantityKind(p.QuantityType)
	if !ok {
		return lang.EvaluateOptions{}, fmt.Errorf("parameter %q: unknown quantity type %q", p.ID, p.QuantityType)
	}

	opts := lang.EvaluateOptions{QuantityKind: kind}
	var err error
	switch kind {
	case lang.QuantityLength:
		opts.DisplayPrecision = s.LengthPrecision
		opts.DisplayUnit, err = unitOf(s.LengthUnit, lang.DimLength)
	case lang.QuantityAngle:
		opts.DisplayPrecision = s.AnglePrecision
		opts.DisplayUnit, err = unitOf(s.AngleUnit, lang.DimAngle)
	case lang.QuantityReal:
		opts.DisplayPrecision = s.RealPrecision
	case lang.QuantityInteger:
		opts.DisplayPrecision = 0
	}
	if err != nil {
		return lang.EvaluateOptions{}, fmt.Errorf("settings: %w", err)
	}

	// Bounds without a unit are taken in the display unit.
	boundUnit := opts.DisplayUnit
	if p.Unit != "" {
		boundUnit, err = unitOf(p.Unit, opts.DisplayUnit.Dimension())
		if err != nil {
			return lang.EvaluateOptions{}, fmt.Errorf("parameter %q: %w", p.ID, err)
		}
	}

	opts.Min, opts.Max = lang.Unbounded(boundUnit.Dimension())
	if p.Min != nil {
		opts.Min = lang.NewValue(*p.Min, boundUnit)
	}
	if p.Max != nil {
		opts.Max = lang.NewValue(*p.Max, boundUnit)
	}
	return opts, nil
}

func unitOf(name string, want lang.Dimension) (lang.Unit, error) {
	u, ok := lang.ParseUnit(name)
	if !ok {
		return lang.Unitless, fmt.Errorf("unknown unit %q", name)
	}
	if u.Dimension() != want {
		return lang.Unitless, fmt.Errorf("unit %q is not a %s unit", name, want)
	}
	return u, nil
}
