package lang

import "strconv"

// ErrorKind classifies an EvalError.
type ErrorKind int

const (
	ErrSyntax ErrorKind = iota
	ErrEmpty
	ErrUnknownUnit
	ErrDimension
	ErrDivideByZero
	ErrBounds
	ErrCompare
	ErrOverflow
)

var errorKindNames = [...]string{
	ErrSyntax:       "syntax",
	ErrEmpty:        "empty",
	ErrUnknownUnit:  "unknown_unit",
	ErrDimension:    "dimension",
	ErrDivideByZero: "divide_by_zero",
	ErrBounds:       "bounds",
	ErrCompare:      "compare",
	ErrOverflow:     "overflow",
}

func (k ErrorKind) String() string {
	if k >= 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// EvalError is an error whose message is meant for the person who typed the
// expression. The facade surfaces Msg verbatim.
type EvalError struct {
	Kind ErrorKind
	Msg  string
}

func (e *EvalError) Error() string {
	return e.Msg
}

// LexError indicates a character that starts no token. It implements InputError.
type LexError struct {
	// Col is the byte offset of the character.
	Col int
	// Char is the offending byte.
	Char byte
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unexpected character "+strconv.QuoteRune(rune(err.Char)))
}

func (err *LexError) Pos() int {
	return err.Col
}

// SyntaxError indicates a token sequence that matches no production, or
// tokens left over after a complete expression. It implements InputError.
type SyntaxError struct {
	// Col is the byte offset of the token that caused the error.
	Col int
	// Msg describes what the parser expected.
	Msg string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, err.Msg)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// InputError is an error with position information. Lexing and parsing
// failures implement it; the facade reports them as "Invalid expression".
type InputError interface {
	error
	// Pos returns the byte offset of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
)

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}
