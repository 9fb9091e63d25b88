package lexer

import (
	"fmt"
)

type TokenType int
type TokenCategory int

type Token struct {
	Type    TokenType // Type of the token
	Lexeme  string    // Actual string from source code
	Literal string    // Literal value (if applicable), empty string if not
	Pos     Position  // Position in source code
}

// NewToken creates a new Token instance
func NewToken(tokenType TokenType, lexeme string, literal string, Pos Position) Token {
	return Token{
		Type:    tokenType,
		Lexeme:  lexeme,
		Literal: literal,
		Pos:     Pos,
	}
}

const (
	NONE TokenCategory = iota
	KEYWORD
	IDENTIFIER
	LITERAL
	OPERATOR
	DELIMITER
)

const (
	EOF TokenType = iota // End of file

	BYE       // bye
	HOPE      // hope
	DILLUSION // dillusion
	TELL_ME   // tell_me
	MAYBE     // maybe
	ORMAYBE   // ormaybe
	MOVEON    // moveon
	WAIT      // wait

	ID     // id (identifier)
	NUM    // num (integer literal)
	STRING // string literal payload, between two DQUOTE tokens

	ASSIGN // =
	PLUS   // +
	MINUS  // -
	MULT   // *
	DIV    // /
	LT     // <
	GT     // >
	LE     // <=
	GE     // >=
	EQ     // ==
	NE     // !=

	SEMICOLON // ;
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	DQUOTE    // "

	ILLEGAL // illegal token
)

// Words that start a comment instead of producing a token.
const (
	lineComment  = "secret"
	blockComment = "hide"
)

var Keywords = map[string]TokenType{
	"bye":       BYE,
	"hope":      HOPE,
	"dillusion": DILLUSION,
	"tell_me":   TELL_ME,
	"maybe":     MAYBE,
	"ormaybe":   ORMAYBE,
	"moveon":    MOVEON,
	"wait":      WAIT,
}

var tokenNames = map[TokenType]string{
	BYE:       "bye",
	HOPE:      "hope",
	DILLUSION: "dillusion",
	TELL_ME:   "tell_me",
	MAYBE:     "maybe",
	ORMAYBE:   "ormaybe",
	MOVEON:    "moveon",
	WAIT:      "wait",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	SEMICOLON: ";",
	DQUOTE:    `"`,
	ASSIGN:    "=",
	PLUS:      "+",
	MINUS:     "-",
	MULT:      "*",
	DIV:       "/",
	LT:        "<",
	GT:        ">",
	LE:        "<=",
	GE:        ">=",
	EQ:        "==",
	NE:        "!=",
	ID:        "id",
	NUM:       "num",
	STRING:    "string",
	ILLEGAL:   "illegal",
	EOF:       "$",
}

// TokenToString converts a TokenType to its string representation
func (t Token) TokenToString() (string, bool) {
	str, ok := tokenNames[t.Type]
	return str, ok
}

// String returns a string representation of the Token
func (t Token) String() string {
	if t.Literal == "" {
		return fmt.Sprintf("T_{%s, %v, nil, %s}",
			t.Type, t.Lexeme, t.Pos.String())
	}

	return fmt.Sprintf("T_{%s, %v, %q, %s}",
		t.Type, t.Lexeme, t.Literal, t.Pos.String())
}

// String returns a string representation of the TokenType
func (t TokenType) String() string {
	if str, ok := (Token{Type: t}).TokenToString(); ok {
		return str
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// GetCategory returns the category of the token
func (t TokenType) GetCategory() TokenCategory {
	switch t {
	case BYE, HOPE, DILLUSION, TELL_ME, MAYBE, ORMAYBE, MOVEON, WAIT:
		return KEYWORD
	case ID:
		return IDENTIFIER
	case NUM, STRING:
		return LITERAL
	case ASSIGN, PLUS, MINUS, MULT, DIV, LT, GT, LE, GE, EQ, NE:
		return OPERATOR
	case SEMICOLON, LPAREN, RPAREN, LBRACE, RBRACE, DQUOTE:
		return DELIMITER
	default:
		return NONE
	}
}

// IsKeyword checks if the given identifier is a keyword and returns its TokenType if it is
func IsKeyword(identifier string) (TokenType, bool) {
	tokenType, ok := Keywords[identifier]
	return tokenType, ok
}
