// Package scratch holds the editor-independent parts of the scratchpad:
// syntax highlighting and the parameter lines are evaluated against.
package scratch

import (
	"fmt"
	"path/filepath"
	"strings"

	"qtycalc/app/lang"
	"qtycalc/app/param"
)

// Scratchpad tracks which parameter the editor lines are evaluated against.
// Without a sheet every line is a length in millimeters.
type Scratchpad struct {
	Sheet *param.Sheet
	index int
	opts  lang.EvaluateOptions
	label string
}

// NewScratchpad returns a scratchpad evaluating unbounded lengths.
func NewScratchpad() *Scratchpad {
	sp := &Scratchpad{}
	sp.reset()
	return sp
}

func (sp *Scratchpad) reset() {
	sp.Sheet = nil
	sp.index = 0
	// The fallback parameter is always valid.
	sp.opts, _ = param.Options(param.QuantityParameter{ID: "scratch", QuantityType: "LENGTH"}, param.DefaultSettings())
	sp.label = "LENGTH mm"
}

// Options returns the engine options for the active parameter.
func (sp *Scratchpad) Options() lang.EvaluateOptions {
	return sp.opts
}

// Label describes the active parameter for the window title.
func (sp *Scratchpad) Label() string {
	return sp.label
}

// IsSheetPath reports whether path names a parameter sheet rather than a
// plain text buffer.
func IsSheetPath(path string) bool {
	_, err := param.FormatForPath(filepath.Base(path))
	return err == nil
}

// LoadSheet parses data in the format implied by path and activates its
// first parameter.
func (sp *Scratchpad) LoadSheet(path string, data []byte) error {
	format, err := param.FormatForPath(path)
	if err != nil {
		return err
	}
	var sheet *param.Sheet
	if format == param.FormatJSON {
		sheet, err = param.FromJSON(data)
	} else {
		sheet, err = param.FromYAML(data)
	}
	if err != nil {
		return err
	}
	if len(sheet.Parameters) == 0 {
		return fmt.Errorf("%s: sheet has no parameters", filepath.Base(path))
	}
	sp.Sheet = sheet
	return sp.activate(0)
}

// Next activates the sheet's next parameter, wrapping around. It does
// nothing without a sheet.
func (sp *Scratchpad) Next() error {
	if sp.Sheet == nil {
		return nil
	}
	return sp.activate((sp.index + 1) % len(sp.Sheet.Parameters))
}

// Default returns the active parameter's stored default, if any.
func (sp *Scratchpad) Default() string {
	if sp.Sheet == nil {
		return ""
	}
	return sp.Sheet.Parameters[sp.index].Default
}

// Seed returns the text an editor holding buffer should switch to: the
// active parameter's default when buffer is blank.
func (sp *Scratchpad) Seed(buffer string) (string, bool) {
	def := sp.Default()
	if def == "" || strings.TrimSpace(buffer) != "" {
		return "", false
	}
	return def, true
}

func (sp *Scratchpad) activate(i int) error {
	p := sp.Sheet.Parameters[i]
	opts, err := param.Options(p, sp.Sheet.Settings)
	if err != nil {
		return err
	}
	sp.index = i
	sp.opts = opts
	name := p.Name
	if name == "" {
		name = p.ID
	}
	sp.label = name + " " + opts.QuantityKind.String()
	if code := opts.DisplayUnit.Code(); code != "" {
		sp.label += " " + code
	}
	return nil
}
