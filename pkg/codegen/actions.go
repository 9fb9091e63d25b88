package codegen

import (
	"baby/pkg/ast"
	"baby/pkg/lexer"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
)

// BeginScope opens a lexical scope
func (c *Codegen) BeginScope() {
	c.scopes.Push(len(c.vars))
}

// EndScope closes the innermost scope, forgetting the variables declared
// in it. It returns how many operand-stack words those variables held.
func (c *Codegen) EndScope() int {
	mark, ok := c.scopes.Pop()
	if !ok {
		panic("codegen: end of scope without a matching begin")
	}

	released := len(c.vars) - mark
	c.vars = c.vars[:mark]
	c.depth -= released

	return released
}

// currentScope returns the variables declared in the innermost scope
func (c *Codegen) currentScope() []Variable {
	mark, ok := c.scopes.Peek()
	if !ok {
		mark = 0
	}
	return c.vars[mark:]
}

// Lookup finds the innermost visible variable called name
func (c *Codegen) Lookup(name string) (Variable, bool) {
	for i := len(c.vars) - 1; i >= 0; i-- {
		if c.vars[i].Name == name {
			return c.vars[i], true
		}
	}
	return Variable{}, false
}

// Resolve looks up the variable named by tok
func (c *Codegen) Resolve(tok lexer.Token) (Variable, error) {
	if v, ok := c.Lookup(tok.Lexeme); ok {
		return v, nil
	}
	return Variable{}, undefinedVariableError(tok)
}

// Declare binds tok's name to an operand-stack slot. The name must not
// already be declared in the innermost scope; outer declarations are shadowed.
func (c *Codegen) Declare(tok lexer.Token, slot int) (Variable, error) {
	if err := c.CheckDeclarable(tok); err != nil {
		return Variable{}, err
	}

	v := Variable{Name: tok.Lexeme, Slot: slot}
	c.vars = append(c.vars, v)

	return v, nil
}

// CheckDeclarable fails when tok's name is already declared in the innermost scope
func (c *Codegen) CheckDeclarable(tok lexer.Token) error {
	for _, v := range c.currentScope() {
		if v.Name == tok.Lexeme {
			return redeclarationError(tok)
		}
	}
	return nil
}

// Intern returns the literal for text, creating it on first use
func (c *Codegen) Intern(text string) Literal {
	if lit, ok := c.literals[text]; ok {
		return lit
	}

	lit := Literal{Label: fmt.Sprintf("str_%d", len(c.order)), Text: text}
	c.literals[text] = lit
	c.order = append(c.order, lit)
	log.Debug("Interned string literal", "label", lit.Label, "bytes", lit.Len())

	return lit
}

// BindString declares the string variable named by tok, initialized by
// expr, which must be a string literal. String bindings are program-global
// and never released.
func (c *Codegen) BindString(arena *ast.Arena, tok lexer.Token, expr ast.ExprID) (Literal, error) {
	if _, ok := c.bindings[tok.Lexeme]; ok {
		return Literal{}, stringRedeclarationError(tok)
	}

	str, ok := StringLiteral(arena, expr)
	if !ok {
		return Literal{}, notStringLiteralError(tok)
	}

	lit := c.Intern(str.Value())
	c.bindings[tok.Lexeme] = lit

	return lit, nil
}

// LookupString finds the string variable called name
func (c *Codegen) LookupString(name string) (Literal, bool) {
	lit, ok := c.bindings[name]
	return lit, ok
}

// StringLiteral returns the literal an expression denotes when it is a
// bare string literal term.
func StringLiteral(arena *ast.Arena, id ast.ExprID) (ast.StrLit, bool) {
	te, ok := arena.Expr(id).(ast.TermExpr)
	if !ok {
		return ast.StrLit{}, false
	}

	str, ok := arena.Term(te.Term).(ast.StrLit)
	return str, ok
}

// IsString reports whether an expression is string-typed: a string literal
// or a string variable, possibly parenthesized.
func (c *Codegen) IsString(arena *ast.Arena, id ast.ExprID) bool {
	te, ok := arena.Expr(id).(ast.TermExpr)
	if !ok {
		return false
	}

	switch t := arena.Term(te.Term).(type) {
	case ast.StrLit:
		return true
	case ast.Ident:
		_, ok := c.LookupString(t.Name())
		return ok
	case ast.Paren:
		return c.IsString(arena, t.Expr)
	}
	return false
}

// RequireInteger fails when an expression used for its value is string-typed
func (c *Codegen) RequireInteger(arena *ast.Arena, id ast.ExprID) error {
	if c.IsString(arena, id) {
		return stringOperandError(ExprToken(arena, id))
	}
	return nil
}

// IntValue parses an integer literal token
func (c *Codegen) IntValue(tok lexer.Token) (int64, error) {
	n, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil {
		return 0, integerRangeError(tok)
	}
	return n, nil
}

// ExprToken returns the token that best locates an expression in the source
func ExprToken(arena *ast.Arena, id ast.ExprID) lexer.Token {
	switch e := arena.Expr(id).(type) {
	case ast.BinExpr:
		return ExprToken(arena, e.LHS)
	case ast.TermExpr:
		switch t := arena.Term(e.Term).(type) {
		case ast.IntLit:
			return t.Token
		case ast.Ident:
			return t.Token
		case ast.StrLit:
			return t.Token
		case ast.Paren:
			return ExprToken(arena, t.Expr)
		}
	}
	return lexer.Token{}
}
