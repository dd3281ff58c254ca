package formula

import "strconv"

// InputError is an error with position information. Every error
// returned by Compile implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based position of the input that caused the
	// error.
	Pos() int
}

// LexError indicates a character that cannot start or continue any
// token: a symbol outside the delimiter table, or a decimal point with
// no digit after it.
type LexError struct {
	// Col is the position of the offending character.
	Col int
	// Text is the offending character, or what was scanned of the
	// malformed token.
	Text string
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// NameError indicates an alphabetic run that names no known function.
type NameError struct {
	// Col is the position of the start of the name.
	Col int
	// Name is the unrecognized name.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "unknown function "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// SyntaxError indicates a token the grammar does not allow at its
// position.
type SyntaxError struct {
	// Col is the position of the unexpected token.
	Col int
	// Got is the token that was found.
	Got Token
	// Want describes the token the grammar required, e.g. ")". Empty
	// when no single token would have done.
	Want string
}

func (err *SyntaxError) Error() string {
	got := strconv.Quote(err.Got.String())
	if err.Got.Kind == End {
		got = "end of input"
	}
	if err.Want == "" {
		return errpos(err.Col, "unexpected "+got)
	}
	return errpos(err.Col, "expected "+strconv.Quote(err.Want)+", found "+got)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*SyntaxError)(nil)
)
