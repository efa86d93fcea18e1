//go:build !(js && wasm)

package main

import (
	"gioui.org/app"

	"qtycalc/app/scratch"
)

// registerWebCallbacks has no page to talk to outside the browser; the nil
// channel never delivers.
func registerWebCallbacks(es *EditorState, sp *scratch.Scratchpad, w *app.Window) <-chan func() {
	return nil
}
