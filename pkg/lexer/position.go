package lexer

import "fmt"

// Position is a 1-based line and column plus a byte offset into the source.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Advance returns the position just past lexeme, which must not span lines
func (p Position) Advance(lexeme string) Position {
	return Position{
		Line:   p.Line,
		Column: p.Column + len(lexeme),
		Offset: p.Offset + len(lexeme),
	}
}

// Creates a new Position instance
func NewPosition(line, column, offset int) Position {
	return Position{
		Line:   line,
		Column: column,
		Offset: offset,
	}
}
