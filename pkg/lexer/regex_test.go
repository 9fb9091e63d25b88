package lexer_test

import (
	"baby/pkg/lexer"
	"testing"
)

func TestNumbers(t *testing.T) {
	tests := []struct {
		input       string
		expected    lexer.TokenType
		lexeme      string
		description string
	}{
		{"42", lexer.NUM, "42", "integer"},
		{"0", lexer.NUM, "0", "zero"},
		{"007", lexer.NUM, "007", "leading zeros"},
		{"1000000", lexer.NUM, "1000000", "large integer"},
		{"3.14", lexer.NUM, "3", "no fractional part"},
		{"1e5", lexer.NUM, "1", "no exponent"},
	}

	for _, test := range tests {
		tokenType, lexeme, matched := lexer.MatchToken(test.input)
		if !matched {
			t.Errorf("Failed to match %s (%s)", test.input, test.description)
		}
		if tokenType != test.expected {
			t.Errorf("Input %s (%s): expected %s, got %s", test.input, test.description, test.expected, tokenType)
		}
		if lexeme != test.lexeme {
			t.Errorf("Input %s (%s): expected lexeme %s, got %s", test.input, test.description, test.lexeme, lexeme)
		}
	}
}

func TestKeywordsMatch(t *testing.T) {
	for word, expected := range lexer.Keywords {
		tokenType, lexeme, matched := lexer.MatchToken(word + " ")
		if !matched || tokenType != expected || lexeme != word {
			t.Errorf("keyword %s: got (%s, %q, %v)", word, tokenType, lexeme, matched)
		}
		if tokenType.GetCategory() != lexer.KEYWORD {
			t.Errorf("keyword %s: not categorized as keyword", word)
		}
	}
}

func TestIllegalMatch(t *testing.T) {
	tokenType, lexeme, matched := lexer.MatchToken("!x")
	if matched || tokenType != lexer.ILLEGAL || lexeme != "!" {
		t.Errorf("expected illegal '!', got (%s, %q, %v)", tokenType, lexeme, matched)
	}
}
