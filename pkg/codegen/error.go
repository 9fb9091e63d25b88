package codegen

import (
	"baby/pkg/color"
	"baby/pkg/lexer"
	"errors"
	"fmt"
)

var (
	ErrUndeclaredVariable = errors.New("undeclared variable")
	ErrVariableRedeclared = errors.New("variable redeclared in scope")
	ErrStringRedeclared   = errors.New("string variable redeclared")
	ErrNotStringLiteral   = errors.New("string declaration without string literal")
	ErrStringOperand      = errors.New("string used as integer")
	ErrIntegerRange       = errors.New("integer literal out of range")
)

// SemanticError is a code generation failure tied to a source token.
type SemanticError struct {
	Err   error
	Msg   string
	Token lexer.Token
}

func (e *SemanticError) Error() string {
	pos := e.Token.Pos
	msg := color.RedText(e.Msg)
	if e.Token.Lexeme != "" {
		msg += " `" + color.BlueText(e.Token.Lexeme) + "`"
	}
	msg += " at " + color.YellowText(fmt.Sprintf("Line: %d, Column %d", pos.Line, pos.Column))
	return msg
}

func (e *SemanticError) Unwrap() error {
	return e.Err
}

func undefinedVariableError(tok lexer.Token) error {
	return &SemanticError{Err: ErrUndeclaredVariable, Msg: "Undeclared variable", Token: tok}
}

func redeclarationError(tok lexer.Token) error {
	return &SemanticError{Err: ErrVariableRedeclared, Msg: "Redeclaration of variable", Token: tok}
}

func stringRedeclarationError(tok lexer.Token) error {
	return &SemanticError{Err: ErrStringRedeclared, Msg: "Redeclaration of string variable", Token: tok}
}

func notStringLiteralError(tok lexer.Token) error {
	return &SemanticError{Err: ErrNotStringLiteral, Msg: "String variable must be initialized with a string literal", Token: tok}
}

func stringOperandError(tok lexer.Token) error {
	return &SemanticError{Err: ErrStringOperand, Msg: "String value used where an integer is required", Token: tok}
}

func integerRangeError(tok lexer.Token) error {
	return &SemanticError{Err: ErrIntegerRange, Msg: "Integer literal does not fit in 64 bits", Token: tok}
}
