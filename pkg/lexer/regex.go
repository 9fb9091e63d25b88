package lexer

import (
	"regexp"
)

type tokenRegex struct {
	Pattern *regexp.Regexp
	Raw     string
}

// Token regex patterns
var tokenRegexes = map[TokenType]tokenRegex{
	LE: {regexp.MustCompile(`^<=`), `^<=`},
	GE: {regexp.MustCompile(`^>=`), `^>=`},
	EQ: {regexp.MustCompile(`^==`), `^==`},
	NE: {regexp.MustCompile(`^!=`), `^!=`},

	ASSIGN: {regexp.MustCompile(`^=`), `^=`},
	PLUS:   {regexp.MustCompile(`^\+`), `^\+`},
	MINUS:  {regexp.MustCompile(`^-`), `^-`},
	MULT:   {regexp.MustCompile(`^\*`), `^\*`},
	DIV:    {regexp.MustCompile(`^/`), `^/`},
	LT:     {regexp.MustCompile(`^<`), `^<`},
	GT:     {regexp.MustCompile(`^>`), `^>`},

	SEMICOLON: {regexp.MustCompile(`^;`), `^;`},
	LPAREN:    {regexp.MustCompile(`^\(`), `^\(`},
	RPAREN:    {regexp.MustCompile(`^\)`), `^\)`},
	LBRACE:    {regexp.MustCompile(`^\{`), `^\{`},
	RBRACE:    {regexp.MustCompile(`^\}`), `^\}`},
	DQUOTE:    {regexp.MustCompile(`^"`), `^"`},

	NUM: {regexp.MustCompile(`^[0-9]+`), `^[0-9]+`},
	ID:  {regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*`), `^[a-zA-Z][a-zA-Z0-9_]*`},
}

var whitespaceRegex = regexp.MustCompile(`^\s+`)

// Token precedence order for matching (longer patterns first)
var tokenPrecedenceOrder = []TokenType{
	LE, GE, EQ, NE, ASSIGN, PLUS, MINUS, MULT, DIV, LT, GT,
	SEMICOLON, LPAREN, RPAREN, LBRACE, RBRACE, DQUOTE,
	NUM, ID,
}

// Get the regex pattern for a token type
func (t TokenType) Regex() *regexp.Regexp {
	if regex, ok := tokenRegexes[t]; ok {
		return regex.Pattern
	}

	return nil
}

// Get the raw regex string for a token type
func (t TokenType) RawRegex() string {
	if regex, ok := tokenRegexes[t]; ok {
		return regex.Raw
	}

	return ""
}

// MatchToken matches the longest token at the start of the string.
// Words are looked up in the keyword table after matching, so a keyword
// prefix never splits an identifier ("hopeful" is an ID).
func MatchToken(s string) (TokenType, string, bool) {
	if s == "" {
		return EOF, "", false
	} else if match := whitespaceRegex.FindString(s); match != "" {
		return EOF, match, true
	}

	for _, tokenType := range tokenPrecedenceOrder {
		regex := tokenRegexes[tokenType]
		match := regex.Pattern.FindString(s)
		if match == "" {
			continue
		}

		if tokenType == ID {
			if keyword, ok := IsKeyword(match); ok {
				return keyword, match, true
			}
		}

		return tokenType, match, true
	}

	return ILLEGAL, string(s[0]), false
}

// matchWord returns the identifier-shaped word at the start of s, if any.
func matchWord(s string) string {
	return tokenRegexes[ID].Pattern.FindString(s)
}
