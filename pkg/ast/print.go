package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Sprint renders a program as one S-expression per top-level statement.
func Sprint(prog *Program) string {
	p := printer{arena: prog.Arena}
	lines := make([]string, len(prog.Stmts))
	for i, id := range prog.Stmts {
		lines[i] = p.stmt(id)
	}
	return strings.Join(lines, "\n")
}

// SprintExpr renders a single expression.
func SprintExpr(arena *Arena, id ExprID) string {
	return printer{arena: arena}.expr(id)
}

type printer struct {
	arena *Arena
}

func (p printer) term(id TermID) string {
	switch t := p.arena.Term(id).(type) {
	case IntLit:
		return t.Token.Lexeme
	case Ident:
		return t.Name()
	case Paren:
		return "(group " + p.expr(t.Expr) + ")"
	case StrLit:
		return strconv.Quote(t.Value())
	default:
		panic(fmt.Sprintf("ast: unknown term %T", t))
	}
}

func (p printer) expr(id ExprID) string {
	switch e := p.arena.Expr(id).(type) {
	case TermExpr:
		return p.term(e.Term)
	case BinExpr:
		return fmt.Sprintf("(%s %s %s)", e.Op, p.expr(e.LHS), p.expr(e.RHS))
	default:
		panic(fmt.Sprintf("ast: unknown expression %T", e))
	}
}

func (p printer) scope(id ScopeID) string {
	stmts := p.arena.Scope(id).Stmts
	if len(stmts) == 0 {
		return "{}"
	}
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = p.stmt(s)
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func (p printer) stmt(id StmtID) string {
	switch s := p.arena.Stmt(id).(type) {
	case ExitStmt:
		return "(bye " + p.expr(s.Expr) + ")"
	case DeclareStmt:
		return fmt.Sprintf("(hope %s %s)", s.Ident.Lexeme, p.expr(s.Expr))
	case StringDeclareStmt:
		return fmt.Sprintf("(dillusion %s %s)", s.Ident.Lexeme, p.expr(s.Expr))
	case AssignStmt:
		return fmt.Sprintf("(set %s %s)", s.Ident.Lexeme, p.expr(s.Expr))
	case PrintStmt:
		return "(tell_me " + p.expr(s.Expr) + ")"
	case BlockStmt:
		return p.scope(s.Scope)
	case IfStmt:
		return fmt.Sprintf("(maybe %s %s)", p.expr(s.Cond), p.scope(s.Scope))
	case ElseIfStmt:
		return fmt.Sprintf("(ormaybe %s %s)", p.expr(s.Cond), p.scope(s.Scope))
	case OnceStmt:
		return "(moveon " + p.scope(s.Scope) + ")"
	case WaitStmt:
		return fmt.Sprintf("(wait %s %s)", p.expr(s.Cond), p.scope(s.Scope))
	default:
		panic(fmt.Sprintf("ast: unknown statement %T", s))
	}
}
