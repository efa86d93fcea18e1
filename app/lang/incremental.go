package lang

import "strings"

// CachedLine holds the cached state for a single line.
type CachedLine struct {
	Text    string
	Result  Result
	IsEmpty bool // line was blank or comment
}

// LineResult is the result of evaluating a single line.
type LineResult struct {
	Text  string // display expression or error message
	IsErr bool
}

// EvalState evaluates a multi-line buffer, one expression per line, and
// caches each line's result until its text or the options change.
type EvalState struct {
	Lines []CachedLine
	opts  EvaluateOptions
	valid bool
}

// IsComment reports whether a line is blank or a comment.
func IsComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, ";") || strings.HasPrefix(trimmed, "//")
}

// EvalAllIncremental evaluates lines against opts, reusing cached results
// where possible.
func (es *EvalState) EvalAllIncremental(lines []string, opts EvaluateOptions) []LineResult {
	results := make([]LineResult, len(lines))

	// Full reset when line count or options change
	if !es.valid || opts != es.opts || len(lines) != len(es.Lines) {
		es.Lines = make([]CachedLine, len(lines))
		for i := range es.Lines {
			es.Lines[i].Text = "\x00" // force dirty
		}
		es.opts = opts
		es.valid = true
	}

	for i, line := range lines {
		cached := &es.Lines[i]
		if cached.Text != line {
			cached.Text = line
			cached.IsEmpty = IsComment(line)
			cached.Result = Result{}
			if !cached.IsEmpty {
				cached.Result = EvaluateExpression(line, opts)
			}
		}

		switch {
		case cached.IsEmpty:
			results[i] = LineResult{}
		case cached.Result.HasError:
			results[i] = LineResult{Text: cached.Result.ErrorMessage, IsErr: true}
		default:
			results[i] = LineResult{Text: cached.Result.DisplayExpression}
		}
	}

	return results
}
