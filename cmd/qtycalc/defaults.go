package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"qtycalc/app/lang"
	"qtycalc/app/param"
)

var defaultsExample = `  # check every stored default of a sheet
  qtycalc defaults part.yaml

  # rewrite the sheet with the cleaned defaults
  qtycalc defaults part.yaml --write`

type DefaultsFlags struct {
	Output outputFormat
	Write  bool
}

type DefaultsOptions struct {
	Path   string
	Output string
	Write  bool

	Sheet *param.Sheet

	Global *globalOptions
	Out    io.Writer
}

func NewCmdDefaults(g *globalOptions, out io.Writer) *cobra.Command {
	flags := &DefaultsFlags{Output: outputText}

	cmd := &cobra.Command{
		Use:     "defaults FILE",
		Short:   "Clean the stored default of every parameter in a sheet",
		Example: defaultsExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
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

	cmd.Flags().VarP(&flags.Output, "output", "o", "output format. One of: text, json, yaml.")
	cmd.Flags().BoolVarP(&flags.Write, "write", "w", flags.Write, "write the cleaned defaults back to FILE.")
	return cmd
}

func (f *DefaultsFlags) ToOptions(g *globalOptions, args []string, out io.Writer) (*DefaultsOptions, error) {
	return &DefaultsOptions{
		Path:   args[0],
		Output: string(f.Output),
		Write:  f.Write,
		Global: g,
		Out:    out,
	}, nil
}

func (o *DefaultsOptions) Complete() error {
	sheet, err := param.FromFile(o.Path)
	if err != nil {
		return err
	}
	o.Sheet = sheet
	return nil
}

func (o *DefaultsOptions) Validate() error {
	return validateOutput(o.Output)
}

// Run cleans and prints every default. It fails when any default does not
// clean, after writing the ones that did when --write is set.
func (o *DefaultsOptions) Run(ctx context.Context) error {
	cleaned := make([]param.Cleaned, 0, len(o.Sheet.Parameters))
	failed := 0
	for _, p := range o.Sheet.Parameters {
		start := time.Now()
		c := param.CleanDefault(p, o.Sheet.Settings)
		if c.Result != nil {
			kind, _ := lang.ParseQuantityKind(p.QuantityType)
			o.Global.Recorder.RecordEvaluation(ctx, kind, *c.Result, time.Since(start))
		}
		if !c.OK() {
			failed++
			o.Global.Logger.Debug("default did not clean",
				slog.String("param", p.ID),
				slog.String("error", c.Error))
		}
		cleaned = append(cleaned, c)
	}

	if o.Output == outputText {
		for _, c := range cleaned {
			if c.OK() {
				fmt.Fprintf(o.Out, "%s\t%s = %s\n", c.ID, c.Expression, c.DisplayExpression)
			} else {
				fmt.Fprintf(o.Out, "%s\t%s: %s\n", c.ID, c.Input, c.Error)
			}
		}
	} else if err := printStructured(o.Out, o.Output, cleaned); err != nil {
		return err
	}

	if o.Write {
		n := o.Sheet.ApplyCleaned(cleaned)
		if n > 0 {
			if err := o.Sheet.WriteFile(o.Path); err != nil {
				return err
			}
		}
		o.Global.Logger.Info("updated sheet defaults",
			slog.String("path", o.Path),
			slog.Int("changed", n))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d defaults did not clean: %w", failed, len(cleaned), errEvaluation)
	}
	return nil
}
