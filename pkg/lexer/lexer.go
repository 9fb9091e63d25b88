package lexer

import (
	"strings"
)

var escapes = map[byte]byte{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'0':  0,
	'\\': '\\',
	'"':  '"',
}

type Lexer struct {
	input    string  // input string to be tokenized
	length   int     // length of the input string
	position int     // current position in the input string
	line     int     // current line number for error reporting
	column   int     // current column number for error reporting
	pending  []Token // string payload and closing quote still to be returned
}

// Create a new lexer instance
func NewLexer(s string) *Lexer {
	return &Lexer{
		input:    s,
		length:   len(s),
		position: 0,
		line:     1,
		column:   1,
	}
}

// Tokenize lexes a whole source text.
func Tokenize(s string) ([]Token, error) {
	return NewLexer(s).Tokenize()
}

// Tokenize returns every remaining token, without the trailing EOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Get the next token from the input
func (l *Lexer) NextToken() (Token, error) {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok, nil
	}

	l.skipWhitespace()

	// End of input
	if l.position >= l.length {
		return NewToken(EOF, "", "", l.currentPosition()), nil
	}

	pos := l.currentPosition()
	remaining := l.input[l.position:]
	tokenType, lexeme, matched := MatchToken(remaining)

	if !matched {
		ch := l.input[l.position]
		if ch == '!' {
			return Token{}, newError(ErrIllegalCharacter, pos, "Unexpected character '!' (did you mean '!='?)")
		}
		return Token{}, newError(ErrIllegalCharacter, pos, "Illegal character %q (byte %d)", ch, ch)
	}

	if tokenType == DQUOTE {
		return l.readString(pos)
	}

	tok := NewToken(tokenType, lexeme, lexeme, pos)
	l.advance(len(lexeme))

	return tok, nil
}

// readString consumes a quoted literal and returns the opening quote,
// queueing the payload and the closing quote.
func (l *Lexer) readString(open Position) (Token, error) {
	l.advance(1)

	contentPos := l.currentPosition()
	start := l.position

	var sb strings.Builder
	for {
		if l.position >= l.length {
			return Token{}, newError(ErrUnterminatedString, open, "Unterminated string literal")
		}

		ch := l.input[l.position]
		if ch == '"' {
			break
		}

		if ch == '\\' {
			if l.position+1 >= l.length {
				return Token{}, newError(ErrUnterminatedString, open, "Unterminated string literal")
			}
			decoded, ok := escapes[l.input[l.position+1]]
			if !ok {
				return Token{}, newError(ErrUnknownEscape, l.currentPosition(),
					"Unknown escape sequence \\%c", l.input[l.position+1])
			}
			sb.WriteByte(decoded)
			l.advance(2)
			continue
		}

		sb.WriteByte(ch)
		l.advance(1)
	}

	raw := l.input[start:l.position]
	closePos := l.currentPosition()
	l.advance(1)

	l.pending = append(l.pending,
		NewToken(STRING, raw, sb.String(), contentPos),
		NewToken(DQUOTE, `"`, "", closePos),
	)

	return NewToken(DQUOTE, `"`, "", open), nil
}

// Check if there are more characters to read
func (l *Lexer) HasMore() bool {
	return len(l.pending) > 0 || l.position < l.length
}

// Skip whitespace and comments
func (l *Lexer) skipWhitespace() {
	for l.position < l.length {
		remaining := l.input[l.position:]

		if ws := whitespaceRegex.FindString(remaining); ws != "" {
			l.advance(len(ws))
			continue
		}

		switch matchWord(remaining) {
		case lineComment:
			end := strings.IndexByte(remaining, '\n')
			if end < 0 {
				end = len(remaining)
			}
			l.advance(end)
		case blockComment:
			l.advance(len(blockComment))
			end := strings.Index(l.input[l.position:], blockComment)
			if end < 0 {
				// an unclosed block comment runs to the end of input
				l.advance(l.length - l.position)
			} else {
				l.advance(end + len(blockComment))
			}
		default:
			return
		}
	}
}

// Advance the lexer position by n characters
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.position >= l.length {
			break
		}

		if l.input[l.position] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}

		l.position++
	}
}

// Get the current position of the lexer
func (l *Lexer) currentPosition() Position {
	return Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}
}
