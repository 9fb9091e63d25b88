package parser

import (
	"baby/pkg/ast"
	"baby/pkg/lexer"
)

// stmtRule parses the rest of a statement whose leading keyword has
// already been consumed.
type stmtRule func(p *Parser, keyword lexer.Token) (ast.Stmt, error)

// ParsingTable maps a statement's leading keyword to the rule that parses it.
type ParsingTable map[lexer.TokenType]stmtRule

// NewParsingTable creates the statement dispatch table
func NewParsingTable() ParsingTable {
	return ParsingTable{
		lexer.BYE:       (*Parser).parseExit,
		lexer.HOPE:      (*Parser).parseDeclare,
		lexer.DILLUSION: (*Parser).parseStringDeclare,
		lexer.TELL_ME:   (*Parser).parsePrint,
		lexer.MAYBE:     (*Parser).parseIf,
		lexer.ORMAYBE:   (*Parser).parseElseIf,
		lexer.MOVEON:    (*Parser).parseOnce,
		lexer.WAIT:      (*Parser).parseWait,
	}
}

// bye ( expr ) ;
func (p *Parser) parseExit(keyword lexer.Token) (ast.Stmt, error) {
	expr, err := p.parseCall()
	if err != nil {
		return nil, err
	}
	return ast.ExitStmt{Token: keyword, Expr: expr}, nil
}

// tell_me ( expr ) ;
func (p *Parser) parsePrint(keyword lexer.Token) (ast.Stmt, error) {
	expr, err := p.parseCall()
	if err != nil {
		return nil, err
	}
	return ast.PrintStmt{Token: keyword, Expr: expr}, nil
}

// hope id = expr ;
func (p *Parser) parseDeclare(lexer.Token) (ast.Stmt, error) {
	ident, expr, err := p.parseBinding()
	if err != nil {
		return nil, err
	}
	return ast.DeclareStmt{Ident: ident, Expr: expr}, nil
}

// dillusion id = expr ;
func (p *Parser) parseStringDeclare(lexer.Token) (ast.Stmt, error) {
	ident, expr, err := p.parseBinding()
	if err != nil {
		return nil, err
	}
	return ast.StringDeclareStmt{Ident: ident, Expr: expr}, nil
}

// maybe ( expr ) scope
func (p *Parser) parseIf(keyword lexer.Token) (ast.Stmt, error) {
	cond, scope, err := p.parseGuardedScope()
	if err != nil {
		return nil, err
	}
	return ast.IfStmt{Token: keyword, Cond: cond, Scope: scope}, nil
}

// ormaybe ( expr ) scope
func (p *Parser) parseElseIf(keyword lexer.Token) (ast.Stmt, error) {
	cond, scope, err := p.parseGuardedScope()
	if err != nil {
		return nil, err
	}
	return ast.ElseIfStmt{Token: keyword, Cond: cond, Scope: scope}, nil
}

// wait ( expr ) scope
func (p *Parser) parseWait(keyword lexer.Token) (ast.Stmt, error) {
	cond, scope, err := p.parseGuardedScope()
	if err != nil {
		return nil, err
	}
	return ast.WaitStmt{Token: keyword, Cond: cond, Scope: scope}, nil
}

// moveon scope
func (p *Parser) parseOnce(keyword lexer.Token) (ast.Stmt, error) {
	scope, err := p.parseScope()
	if err != nil {
		return nil, err
	}
	return ast.OnceStmt{Token: keyword, Scope: scope}, nil
}

// ( expr ) ;
func (p *Parser) parseCall() (ast.ExprID, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return 0, err
	}
	expr, err := p.requireExpr()
	if err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return 0, err
	}
	return expr, nil
}

// id = expr ;
func (p *Parser) parseBinding() (lexer.Token, ast.ExprID, error) {
	ident, err := p.expect(lexer.ID)
	if err != nil {
		return lexer.Token{}, 0, err
	}
	if _, err := p.expect(lexer.ASSIGN); err != nil {
		return lexer.Token{}, 0, err
	}
	expr, err := p.requireExpr()
	if err != nil {
		return lexer.Token{}, 0, err
	}
	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return lexer.Token{}, 0, err
	}
	return ident, expr, nil
}

// ( expr ) scope
func (p *Parser) parseGuardedScope() (ast.ExprID, ast.ScopeID, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return 0, 0, err
	}
	if p.check(lexer.RPAREN) {
		return 0, 0, p.errorf(ErrMissingExpression, "Empty condition")
	}
	cond, err := p.requireExpr()
	if err != nil {
		return 0, 0, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return 0, 0, err
	}
	scope, err := p.parseScope()
	if err != nil {
		return 0, 0, err
	}
	return cond, scope, nil
}
