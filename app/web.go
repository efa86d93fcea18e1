//go:build js && wasm

package main

import (
	"syscall/js"

	"gioui.org/app"

	"qtycalc/app/scratch"
)

// registerWebCallbacks exposes the scratchpad to the hosting page. Every
// callback is handed to the event loop through the returned channel, since
// the editor and scratchpad are only touched from there.
func registerWebCallbacks(es *EditorState, sp *scratch.Scratchpad, w *app.Window) <-chan func() {
	actions := make(chan func(), 8)
	// Callbacks must not block the JS event loop.
	post := func(f func()) {
		go func() {
			actions <- f
			w.Invalidate()
		}()
	}

	js.Global().Set("getEditorText", js.FuncOf(func(this js.Value, args []js.Value) any {
		return es.Editor.Text()
	}))
	js.Global().Set("setEditorText", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			text := args[0].String()
			post(func() { es.Editor.SetText(text) })
		}
		return nil
	}))
	js.Global().Set("currentParameter", js.FuncOf(func(this js.Value, args []js.Value) any {
		return sp.Label()
	}))
	// loadSheet(text, name) parses a YAML or JSON sheet; name picks the format.
	js.Global().Set("loadSheet", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) < 2 {
			return "loadSheet: want (text, name)"
		}
		data, name := []byte(args[0].String()), args[1].String()
		if !scratch.IsSheetPath(name) {
			return name + ": not a YAML or JSON sheet"
		}
		post(func() {
			if err := sp.LoadSheet(name, data); err != nil {
				js.Global().Get("console").Call("error", err.Error())
				return
			}
			seedEditor(es, sp)
		})
		return nil
	}))
	js.Global().Set("nextParameter", js.FuncOf(func(this js.Value, args []js.Value) any {
		post(func() {
			if err := sp.Next(); err != nil {
				js.Global().Get("console").Call("error", err.Error())
				return
			}
			seedEditor(es, sp)
		})
		return nil
	}))

	// Initial text from the URL, decoded by the page before the module started.
	initialText := js.Global().Get("_initialText")
	if !initialText.IsUndefined() && !initialText.IsNull() && initialText.String() != "" {
		es.Editor.SetText(initialText.String())
	}
	return actions
}
