package parser

import (
	"baby/pkg/ast"
	"baby/pkg/lexer"
)

type Parser struct {
	tokens   []lexer.Token // token stream, without EOF
	position int           // index of the current token
	arena    *ast.Arena    // node storage for the program being built
	table    ParsingTable  // keyword-led statement rules
}

// NewParser creates a new parser instance
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens: tokens,
		arena:  ast.NewArena(),
		table:  NewParsingTable(),
	}
}

// ParseSource lexes and parses a whole source text.
func ParseSource(src string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).Parse()
}

// Parse parses statements until the token stream is exhausted. The first
// error stops parsing.
func (p *Parser) Parse() (*ast.Program, error) {
	prog := &ast.Program{Arena: p.arena}

	for p.position < len(p.tokens) {
		stmt, ok, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, p.errorf(ErrInvalidStatement, "Invalid statement starting with '%s'", p.peek(0).Lexeme)
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}

	return prog, nil
}

// parseStmt returns ok == false when no statement starts at the current token
func (p *Parser) parseStmt() (ast.StmtID, bool, error) {
	tok := p.peek(0)

	if rule, ok := p.table[tok.Type]; ok {
		p.advance()
		stmt, err := rule(p, tok)
		if err != nil {
			return 0, false, err
		}
		return p.arena.NewStmt(stmt), true, nil
	}

	switch {
	case tok.Type == lexer.ID && p.peek(1).Type == lexer.ASSIGN:
		p.advance()
		p.advance()
		expr, err := p.requireExpr()
		if err != nil {
			return 0, false, err
		}
		if _, err := p.expect(lexer.SEMICOLON); err != nil {
			return 0, false, err
		}
		return p.arena.NewStmt(ast.AssignStmt{Ident: tok, Expr: expr}), true, nil

	case tok.Type == lexer.LBRACE:
		scope, err := p.parseScope()
		if err != nil {
			return 0, false, err
		}
		return p.arena.NewStmt(ast.BlockStmt{Scope: scope}), true, nil
	}

	return 0, false, nil
}

// parseScope parses `{ stmt* }`
func (p *Parser) parseScope() (ast.ScopeID, error) {
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return 0, err
	}

	var stmts []ast.StmtID
	for !p.check(lexer.RBRACE) {
		if p.check(lexer.EOF) {
			return 0, p.errorf(ErrUnterminatedScope, "Missing closing brace")
		}

		stmt, ok, err := p.parseStmt()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, p.errorf(ErrInvalidStatement, "Invalid statement starting with '%s'", p.peek(0).Lexeme)
		}
		stmts = append(stmts, stmt)
	}
	p.advance()

	return p.arena.NewScope(ast.Scope{Stmts: stmts}), nil
}

// parseExpr parses by precedence climbing: operators binding at least as
// tight as minPrec extend the left operand.
func (p *Parser) parseExpr(minPrec int) (ast.ExprID, bool, error) {
	term, ok, err := p.parseTerm()
	if err != nil || !ok {
		return 0, ok, err
	}
	lhs := p.arena.NewExpr(ast.TermExpr{Term: term})

	for {
		opTok := p.peek(0)
		prec, isOp := binaryPrecedence(opTok.Type)
		if !isOp || prec < minPrec {
			break
		}
		p.advance()

		rhs, ok, err := p.parseExpr(prec + 1)
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return 0, false, p.errorf(ErrInvalidOperand, "Invalid right-hand side of '%s'", opTok.Lexeme)
		}

		op, known := binaryOp(opTok.Type)
		if !known {
			return 0, false, &SyntaxError{
				Err:   ErrUnknownOperator,
				Msg:   "Unsupported binary operator '" + opTok.Lexeme + "'",
				Token: opTok,
			}
		}

		lhs = p.arena.NewExpr(ast.BinExpr{Op: op, LHS: lhs, RHS: rhs, Token: opTok})
	}

	return lhs, true, nil
}

// requireExpr parses an expression that must be present
func (p *Parser) requireExpr() (ast.ExprID, error) {
	expr, ok, err := p.parseExpr(0)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, p.errorf(ErrMissingExpression, "Missing expression")
	}
	return expr, nil
}

// parseTerm returns ok == false when no term starts at the current token
func (p *Parser) parseTerm() (ast.TermID, bool, error) {
	tok := p.peek(0)

	switch tok.Type {
	case lexer.NUM:
		p.advance()
		return p.arena.NewTerm(ast.IntLit{Token: tok}), true, nil

	case lexer.ID:
		p.advance()
		return p.arena.NewTerm(ast.Ident{Token: tok}), true, nil

	case lexer.LPAREN:
		p.advance()
		expr, err := p.requireExpr()
		if err != nil {
			return 0, false, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return 0, false, err
		}
		return p.arena.NewTerm(ast.Paren{Expr: expr}), true, nil

	case lexer.DQUOTE:
		p.advance()
		content, err := p.expect(lexer.STRING)
		if err != nil {
			return 0, false, err
		}
		if _, err := p.expect(lexer.DQUOTE); err != nil {
			return 0, false, err
		}
		return p.arena.NewTerm(ast.StrLit{Token: content}), true, nil
	}

	return 0, false, nil
}

// peek returns the token offset positions ahead, or EOF past the end
func (p *Parser) peek(offset int) lexer.Token {
	idx := p.position + offset
	if idx < len(p.tokens) {
		return p.tokens[idx]
	}

	pos := lexer.NewPosition(1, 1, 0)
	if n := len(p.tokens); n > 0 {
		last := p.tokens[n-1]
		pos = last.Pos.Advance(last.Lexeme)
	}
	return lexer.NewToken(lexer.EOF, "", "", pos)
}

func (p *Parser) advance() lexer.Token {
	tok := p.peek(0)
	if p.position < len(p.tokens) {
		p.position++
	}
	return tok
}

func (p *Parser) check(t lexer.TokenType) bool {
	return p.peek(0).Type == t
}

// expect consumes a token of type t or reports what is missing
func (p *Parser) expect(t lexer.TokenType) (lexer.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorf(ErrMissingToken, "%s", p.categorizeError(t, p.peek(0)))
}
