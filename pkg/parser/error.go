package parser

import (
	"baby/pkg/color"
	"baby/pkg/lexer"
	"errors"
	"fmt"
)

var (
	ErrMissingToken      = errors.New("missing token")
	ErrInvalidStatement  = errors.New("invalid statement")
	ErrMissingExpression = errors.New("missing expression")
	ErrInvalidOperand    = errors.New("invalid operand")
	ErrUnknownOperator   = errors.New("unknown binary operator")
	ErrUnterminatedScope = errors.New("unterminated scope")
)

// SyntaxError is the first parse failure of a program.
type SyntaxError struct {
	Err   error
	Msg   string
	Token lexer.Token
}

func (e *SyntaxError) Error() string {
	pos := e.Token.Pos
	return color.RedText(e.Msg) + " at " + color.YellowText(fmt.Sprintf("Line: %d, Column %d", pos.Line, pos.Column))
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// errorf builds a syntax error anchored at the current token
func (p *Parser) errorf(kind error, format string, args ...any) error {
	return &SyntaxError{
		Err:   kind,
		Msg:   fmt.Sprintf(format, args...),
		Token: p.peek(0),
	}
}

// categorizeError provides a specific error message based on the expected and current token
func (p *Parser) categorizeError(expected lexer.TokenType, current lexer.Token) string {
	// Delimiters
	switch expected {
	case lexer.RPAREN:
		return "Missing closing parenthesis"
	case lexer.RBRACE:
		return "Missing closing brace"
	case lexer.LBRACE:
		return "Missing opening brace"
	case lexer.SEMICOLON:
		return "Missing semicolon"
	case lexer.ASSIGN:
		return "Missing assignment operator"
	case lexer.LPAREN:
		if current.Type == lexer.LBRACE {
			return "Wrong bracket type - expected parenthesis"
		}
		return "Missing opening parenthesis"
	case lexer.DQUOTE:
		return "Missing closing quote"
	}

	// Identifiers and literals
	switch expected {
	case lexer.ID:
		if current.Type == lexer.ASSIGN || current.Type == lexer.SEMICOLON {
			return "Missing identifier"
		}
		if current.Type.GetCategory() == lexer.KEYWORD {
			return fmt.Sprintf("Cannot use reserved keyword '%s' as identifier", current.Lexeme)
		}
		return "Expected identifier"
	case lexer.STRING:
		return "Expected string"
	}

	return "Syntax error"
}
