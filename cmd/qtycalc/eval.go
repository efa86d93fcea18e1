package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"qtycalc/app/lang"
	"qtycalc/app/metrics"
	"qtycalc/app/param"
)

var evalExample = `  # evaluate a length, displayed in inches
  qtycalc eval "1 ft + 6 in" --unit in

  # bare numbers adopt the display unit
  qtycalc eval "2 + 3" --kind length --unit mm

  # check an angle against bounds given in the display unit
  qtycalc eval "100 deg" --kind angle --min 0 --max 90

  # evaluate against a parameter from a sheet, as JSON
  qtycalc eval "12" --sheet part.yaml --param width -o json`

// errEvaluation marks a command that ran but produced an error result.
var errEvaluation = errors.New("evaluation failed")

type EvalFlags struct {
	Kind      kindValue
	Unit      string
	Precision uint
	Min       float64
	Max       float64
	Sheet     string
	Param     string
	Output    outputFormat

	precisionSet bool
	minSet       bool
	maxSet       bool
}

type EvalOptions struct {
	Input     string
	Parameter param.QuantityParameter
	Settings  param.Settings
	Output    string

	Options lang.EvaluateOptions

	Global *globalOptions
	Out    io.Writer
}

func NewCmdEval(g *globalOptions, out io.Writer) *cobra.Command {
	flags := &EvalFlags{Kind: kindValue(lang.QuantityLength), Output: outputText}

	cmd := &cobra.Command{
		Use:     "eval EXPRESSION",
		Short:   "Evaluate one expression",
		Example: evalExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			flags.precisionSet = c.Flags().Changed("precision")
			flags.minSet = c.Flags().Changed("min")
			flags.maxSet = c.Flags().Changed("max")

			opts, err := flags.ToOptions(g, args, out)
			if err != nil {
				return err
			}
			if err := opts.Complete(); err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			ctx := c.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			defer g.Finish(ctx)
			return opts.Run(ctx)
		},
	}

	cmd.Flags().Var(&flags.Kind, "kind", "quantity type of the expression. One of: length, angle, integer, real.")
	cmd.Flags().StringVar(&flags.Unit, "unit", flags.Unit, "display unit; defaults to mm for lengths and deg for angles.")
	cmd.Flags().UintVar(&flags.Precision, "precision", flags.Precision, "number of decimals displayed.")
	cmd.Flags().Float64Var(&flags.Min, "min", flags.Min, "lowest accepted value, in the display unit.")
	cmd.Flags().Float64Var(&flags.Max, "max", flags.Max, "highest accepted value, in the display unit.")
	cmd.Flags().StringVar(&flags.Sheet, "sheet", flags.Sheet, "parameter sheet (.yaml, .yml or .json) to take the options from.")
	cmd.Flags().StringVar(&flags.Param, "param", flags.Param, "id of the parameter in --sheet; without an expression its default is evaluated.")
	cmd.Flags().VarP(&flags.Output, "output", "o", "output format. One of: text, json, yaml.")
	return cmd
}

func (f *EvalFlags) ToOptions(g *globalOptions, args []string, out io.Writer) (*EvalOptions, error) {
	o := &EvalOptions{
		Output: string(f.Output),
		Global: g,
		Out:    out,
	}
	if len(args) == 1 {
		o.Input = args[0]
	}

	if f.Sheet != "" {
		if f.Param == "" {
			return nil, errors.New("--param is required with --sheet")
		}
		sheet, err := param.FromFile(f.Sheet)
		if err != nil {
			return nil, err
		}
		p, ok := sheet.Parameter(f.Param)
		if !ok {
			return nil, fmt.Errorf("parameter %q not found in %s", f.Param, f.Sheet)
		}
		o.Parameter = p
		o.Settings = sheet.Settings
		if len(args) == 0 {
			o.Input = p.Default
		}
		return o, nil
	}
	if f.Param != "" {
		return nil, errors.New("--param requires --sheet")
	}
	if len(args) == 0 {
		return nil, errors.New("an expression is required")
	}

	kind := lang.QuantityKind(f.Kind)
	o.Parameter = param.QuantityParameter{ID: "expression", QuantityType: kind.String()}
	o.Settings = param.DefaultSettings()
	switch kind {
	case lang.QuantityLength:
		if f.Unit != "" {
			o.Settings.LengthUnit = f.Unit
		}
		if f.precisionSet {
			o.Settings.LengthPrecision = f.Precision
		}
	case lang.QuantityAngle:
		if f.Unit != "" {
			o.Settings.AngleUnit = f.Unit
		}
		if f.precisionSet {
			o.Settings.AnglePrecision = f.Precision
		}
	case lang.QuantityReal:
		if f.precisionSet {
			o.Settings.RealPrecision = f.Precision
		}
	}
	if kind.IsUnitless() && f.Unit != "" {
		return nil, fmt.Errorf("%s values cannot have a display unit", strings.ToLower(kind.String()))
	}
	if f.minSet {
		o.Parameter.Min = &f.Min
	}
	if f.maxSet {
		o.Parameter.Max = &f.Max
	}
	return o, nil
}

func (o *EvalOptions) Complete() error {
	opts, err := param.Options(o.Parameter, o.Settings)
	if err != nil {
		return err
	}
	o.Options = opts
	return nil
}

func (o *EvalOptions) Validate() error {
	return validateOutput(o.Output)
}

// evalResult is the structured form of an evaluation.
type evalResult struct {
	Input             string  `json:"input" yaml:"input"`
	HasError          bool    `json:"hasError" yaml:"hasError"`
	Expression        string  `json:"expression" yaml:"expression"`
	DisplayExpression string  `json:"displayExpression,omitempty" yaml:"displayExpression,omitempty"`
	Value             float64 `json:"value" yaml:"value"`
	ErrorMessage      string  `json:"errorMessage,omitempty" yaml:"errorMessage,omitempty"`
	ErrorKind         string  `json:"errorKind,omitempty" yaml:"errorKind,omitempty"`
}

func newEvalResult(input string, res lang.Result) evalResult {
	r := evalResult{
		Input:             input,
		HasError:          res.HasError,
		Expression:        res.Expression,
		DisplayExpression: res.DisplayExpression,
		Value:             res.Value,
	}
	if res.HasError {
		r.ErrorMessage = res.ErrorMessage
		r.ErrorKind = res.ErrorKind.String()
	}
	return r
}

// Run evaluates the expression and prints the result. An error result is
// printed and reported as errEvaluation.
func (o *EvalOptions) Run(ctx context.Context) error {
	o.Global.Logger.Debug("evaluating expression",
		slog.String("input", o.Input),
		slog.String("kind", o.Options.QuantityKind.String()),
		slog.String("display_unit", o.Options.DisplayUnit.Code()),
		slog.Uint64("precision", uint64(o.Options.DisplayPrecision)),
	)

	res := metrics.Evaluate(ctx, o.Global.Recorder, o.Input, o.Options)

	if o.Output == outputText {
		if res.HasError {
			fmt.Fprintf(o.Out, "%s: %s\n", res.Expression, res.ErrorMessage)
		} else {
			fmt.Fprintf(o.Out, "%s = %s\n", res.Expression, res.DisplayExpression)
		}
	} else if err := printStructured(o.Out, o.Output, newEvalResult(o.Input, res)); err != nil {
		return err
	}

	if res.HasError {
		o.Global.Logger.Debug("evaluation failed",
			slog.String("kind", res.ErrorKind.String()),
			slog.String("error", res.ErrorMessage))
		return errEvaluation
	}
	return nil
}
