package lexer

import (
	"baby/pkg/color"
	"errors"
	"fmt"
)

var (
	ErrIllegalCharacter   = errors.New("illegal character")
	ErrUnterminatedString = errors.New("unterminated string literal")
	ErrUnknownEscape      = errors.New("unknown escape sequence")
)

// Error is a lexical error anchored at a source position.
type Error struct {
	Err error
	Msg string
	Pos Position
}

func (e *Error) Error() string {
	return color.RedText(e.Msg) + " at " +
		color.YellowText(fmt.Sprintf("Line: %d, Column %d", e.Pos.Line, e.Pos.Column))
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(err error, pos Position, format string, args ...any) *Error {
	return &Error{
		Err: err,
		Msg: fmt.Sprintf(format, args...),
		Pos: pos,
	}
}
