package main

import (
	"os"
	"path/filepath"
	"strings"

	"gioui.org/widget"

	"qtycalc/app/scratch"
)

// EditorState holds the state for the text editor.
type EditorState struct {
	Editor   widget.Editor
	FilePath string
	Dirty    bool
}

// NewEditorState creates a new editor with default settings.
func NewEditorState() *EditorState {
	es := &EditorState{}
	es.Editor.SingleLine = false
	es.Editor.Submit = false
	return es
}

// Lines returns the text buffer as a slice of lines.
func (es *EditorState) Lines() []string {
	t := es.Editor.Text()
	if t == "" {
		return []string{""}
	}
	return strings.Split(t, "\n")
}

// LineCount returns the number of lines in the buffer.
func (es *EditorState) LineCount() int {
	return len(es.Lines())
}

// LoadFile reads a file and sets the editor content.
func (es *EditorState) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	es.SetContent(data)
	es.FilePath = path
	return nil
}

// SetContent replaces the buffer, normalizing line endings.
func (es *EditorState) SetContent(data []byte) {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	es.Editor.SetText(content)
	es.Dirty = false
}

// SaveFile writes the editor content to the given path.
func (es *EditorState) SaveFile(path string) error {
	err := os.WriteFile(path, []byte(es.Editor.Text()), 0644)
	if err != nil {
		return err
	}
	es.FilePath = path
	es.Dirty = false
	return nil
}

// Title returns a window title showing the filename, dirty state and the
// label of the parameter lines are evaluated against.
func (es *EditorState) Title(label string) string {
	name := "untitled"
	if es.FilePath != "" {
		name = filepath.Base(es.FilePath)
	}
	if es.Dirty {
		return "* " + name + " · " + label + " · qtycalc"
	}
	return name + " · " + label + " · qtycalc"
}

// seedEditor fills an empty buffer with the active parameter's default.
func seedEditor(es *EditorState, sp *scratch.Scratchpad) {
	if text, ok := sp.Seed(es.Editor.Text()); ok {
		es.Editor.SetText(text)
	}
}
