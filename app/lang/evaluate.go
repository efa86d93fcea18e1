package lang

import (
	"errors"
	"math"
	"strings"
)

// EvaluateOptions describes how one expression is checked and displayed.
type EvaluateOptions struct {
	QuantityKind QuantityKind
	// DisplayPrecision is the number of decimals shown; 0 for INTEGER and REAL.
	DisplayPrecision uint
	// DisplayUnit is used for the display expression, and adopted by unitless
	// LENGTH and ANGLE input. Unitless for INTEGER and REAL.
	DisplayUnit Unit
	Min         ValueWithUnits
	Max         ValueWithUnits
}

// Result is the outcome of evaluating an expression. HasError selects which
// of DisplayExpression/Value or ErrorMessage/ErrorKind is meaningful.
type Result struct {
	HasError bool
	// Expression is the cleaned-up expression on success or after a bounds
	// failure, and the raw input for any other failure.
	Expression string
	// DisplayExpression is the rounded value with its display unit, e.g. "12 in".
	DisplayExpression string
	// Value is the canonical value: meters, radians, or a plain number.
	Value float64

	ErrorMessage string
	ErrorKind    ErrorKind
}

const invalidExpression = "Invalid expression"

// EvaluateExpression parses, checks, evaluates and formats input. It never
// panics; every failure is reported through the returned Result.
func EvaluateExpression(input string, opts EvaluateOptions) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = errorResult(input, &SyntaxError{Msg: invalidExpression})
		}
	}()

	if strings.TrimSpace(input) == "" {
		return errorResult(input, &EvalError{Kind: ErrEmpty, Msg: "Enter an expression"})
	}

	node, err := ParseExpression(input)
	if err != nil {
		return errorResult(input, err)
	}
	value, err := Eval(node, opts.QuantityKind)
	if err != nil {
		return errorResult(input, err)
	}
	// Inf and NaN slip past the bounds check and do not parse back.
	if math.IsInf(value.Value, 0) || math.IsNaN(value.Value) {
		return errorResult(input, &EvalError{Kind: ErrOverflow, Msg: "Value is too large"})
	}
	return formatExpression(node, value, opts)
}

// CleanDefault normalizes a trusted stored default through the same pipeline
// as EvaluateExpression. A failing result means the stored default is bad.
func CleanDefault(input string, opts EvaluateOptions) Result {
	return EvaluateExpression(input, opts)
}

func errorResult(expression string, err error) Result {
	res := Result{HasError: true, Expression: expression, ErrorMessage: invalidExpression, ErrorKind: ErrSyntax}
	var ee *EvalError
	if errors.As(err, &ee) {
		res.ErrorMessage = ee.Msg
		res.ErrorKind = ee.Kind
	}
	return res
}

// formatExpression renders the expression and display value, adopting the
// display unit for unitless LENGTH/ANGLE input, then applies the bounds.
func formatExpression(node Node, value ValueWithUnits, opts EvaluateOptions) Result {
	expression := Stringify(node)
	if opts.QuantityKind.HasUnits() && value.Dim == DimNumber {
		value = NewValue(value.Value, opts.DisplayUnit)
		if _, ok := node.(*BinaryExpr); ok {
			expression = "(" + expression + ")"
		}
		if code := opts.DisplayUnit.Code(); code != "" {
			expression += " " + code
		}
	}

	if err := checkBounds(value, opts); err != nil {
		return errorResult(expression, err)
	}

	return Result{
		Expression:        expression,
		DisplayExpression: FormatValue(value, opts.DisplayUnit, opts.DisplayPrecision),
		Value:             value.Value,
	}
}

// checkBounds rejects values outside [Min, Max] by more than the tolerance.
func checkBounds(value ValueWithUnits, opts EvaluateOptions) error {
	below, err := TolerantLess(value, opts.Min)
	if err != nil {
		return err
	}
	if below {
		return &EvalError{Kind: ErrBounds, Msg: "Value must be greater than " + FormatValue(opts.Min, opts.DisplayUnit, opts.DisplayPrecision)}
	}
	above, err := TolerantGreater(value, opts.Max)
	if err != nil {
		return err
	}
	if above {
		return &EvalError{Kind: ErrBounds, Msg: "Value must be less than " + FormatValue(opts.Max, opts.DisplayUnit, opts.DisplayPrecision)}
	}
	return nil
}
