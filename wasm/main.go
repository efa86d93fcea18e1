package main

import (
	"math"
	"strings"
	"syscall/js"

	"qtycalc/app/lang"
)

var evalState = &lang.EvalState{}

func main() {
	// evaluateExpression(input, options) -> result
	js.Global().Set("evaluateExpression", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) < 2 {
			return nil
		}
		opts := optionsFromJS(args[1])
		return resultToJS(lang.EvaluateExpression(args[0].String(), opts))
	}))

	// cleanDefault(input, options) -> result
	js.Global().Set("cleanDefault", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) < 2 {
			return nil
		}
		opts := optionsFromJS(args[1])
		return resultToJS(lang.CleanDefault(args[0].String(), opts))
	}))

	// evaluate(text, options) -> [{text, isErr}] for a multi-line scratchpad
	js.Global().Set("evaluate", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) < 2 {
			return nil
		}
		lines := strings.Split(args[0].String(), "\n")
		results := evalState.EvalAllIncremental(lines, optionsFromJS(args[1]))

		arr := js.Global().Get("Array").New(len(results))
		for i, r := range results {
			obj := js.Global().Get("Object").New()
			obj.Set("text", r.Text)
			obj.Set("isErr", r.IsErr)
			arr.SetIndex(i, obj)
		}
		return arr
	}))

	// Signal that WASM is ready
	js.Global().Set("_wasmReady", true)
	onReady := js.Global().Get("_onWasmReady")
	if !onReady.IsUndefined() && !onReady.IsNull() {
		onReady.Invoke()
	}

	// Block forever
	select {}
}

// optionsFromJS reads {quantityType, displayPrecision, displayUnit, min, max}.
// Bounds are {value, type} with a canonical value and a dimension name;
// a missing bound is unbounded. Unknown fields fall back to their zero value.
func optionsFromJS(v js.Value) lang.EvaluateOptions {
	var opts lang.EvaluateOptions
	if kind, ok := lang.ParseQuantityKind(stringField(v, "quantityType")); ok {
		opts.QuantityKind = kind
	}
	if p := v.Get("displayPrecision"); p.Type() == js.TypeNumber && p.Float() > 0 {
		opts.DisplayPrecision = uint(p.Int())
	}
	if u, ok := lang.ParseUnit(stringField(v, "displayUnit")); ok {
		opts.DisplayUnit = u
	}

	lo, hi := lang.Unbounded(opts.DisplayUnit.Dimension())
	opts.Min = boundFromJS(v.Get("min"), lo)
	opts.Max = boundFromJS(v.Get("max"), hi)
	return opts
}

func boundFromJS(v js.Value, fallback lang.ValueWithUnits) lang.ValueWithUnits {
	if v.Type() != js.TypeObject {
		return fallback
	}
	value := v.Get("value")
	if value.Type() != js.TypeNumber || math.IsNaN(value.Float()) {
		return fallback
	}
	dim, ok := lang.ParseDimension(stringField(v, "type"))
	if !ok {
		return fallback
	}
	return lang.ValueWithUnits{Value: value.Float(), Dim: dim}
}

func stringField(v js.Value, name string) string {
	if v.Type() != js.TypeObject {
		return ""
	}
	f := v.Get(name)
	if f.Type() != js.TypeString {
		return ""
	}
	return f.String()
}

func resultToJS(res lang.Result) js.Value {
	obj := js.Global().Get("Object").New()
	obj.Set("hasError", res.HasError)
	obj.Set("expression", res.Expression)
	if res.HasError {
		obj.Set("errorMessage", res.ErrorMessage)
		obj.Set("errorKind", res.ErrorKind.String())
		return obj
	}
	obj.Set("displayExpression", res.DisplayExpression)
	obj.Set("value", res.Value)
	return obj
}
