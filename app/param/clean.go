package param

import "qtycalc/app/lang"

// Cleaned is the outcome of normalizing one parameter's stored default.
type Cleaned struct {
	ID                string `yaml:"id" json:"id"`
	Input             string `yaml:"input" json:"input"`
	Expression        string `yaml:"expression,omitempty" json:"expression,omitempty"`
	DisplayExpression string `yaml:"displayExpression,omitempty" json:"displayExpression,omitempty"`
	Error             string `yaml:"error,omitempty" json:"error,omitempty"`

	// Result is the engine result, nil when the parameter's options could
	// not be built.
	Result *lang.Result `yaml:"-" json:"-"`
}

// OK reports whether the default was cleaned without error.
func (c Cleaned) OK() bool {
	return c.Error == ""
}

// CleanDefault runs p's stored default through the engine under s.
func CleanDefault(p QuantityParameter, s Settings) Cleaned {
	c := Cleaned{ID: p.ID, Input: p.Default}
	opts, err := Options(p, s)
	if err != nil {
		c.Error = err.Error()
		return c
	}
	res := lang.CleanDefault(p.Default, opts)
	c.Result = &res
	if res.HasError {
		c.Error = res.ErrorMessage
	} else {
		c.Expression = res.Expression
		c.DisplayExpression = res.DisplayExpression
	}
	return c
}

// CleanDefaults cleans every parameter default of s. A failure means the
// stored default is inconsistent with its parameter.
func CleanDefaults(s *Sheet) []Cleaned {
	out := make([]Cleaned, 0, len(s.Parameters))
	for _, p := range s.Parameters {
		out = append(out, CleanDefault(p, s.Settings))
	}
	return out
}

// ApplyCleaned replaces each default with its cleaned expression. Defaults
// that failed to clean are left untouched. It returns the number replaced.
func (s *Sheet) ApplyCleaned(cleaned []Cleaned) int {
	n := 0
	for _, c := range cleaned {
		if !c.OK() {
			continue
		}
		for i := range s.Parameters {
			if s.Parameters[i].ID == c.ID && s.Parameters[i].Default != c.Expression {
				s.Parameters[i].Default = c.Expression
				n++
			}
		}
	}
	return n
}
