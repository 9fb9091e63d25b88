package ast_test

import (
	"baby/pkg/ast"
	"baby/pkg/lexer"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intTerm(a *ast.Arena, lexeme string) ast.ExprID {
	tok := lexer.NewToken(lexer.NUM, lexeme, lexeme, lexer.Position{})
	return a.NewExpr(ast.TermExpr{Term: a.NewTerm(ast.IntLit{Token: tok})})
}

func TestArenaHandles(t *testing.T) {
	a := ast.NewArena()

	one := intTerm(a, "1")
	two := intTerm(a, "2")
	sum := a.NewExpr(ast.BinExpr{Op: ast.OpAdd, LHS: one, RHS: two})

	assert.Equal(t, ast.ExprID(0), one)
	assert.Equal(t, ast.ExprID(1), two)
	assert.Equal(t, ast.ExprID(2), sum)

	bin, ok := a.Expr(sum).(ast.BinExpr)
	require.True(t, ok)
	assert.Equal(t, one, bin.LHS)
	assert.Equal(t, two, bin.RHS)
	assert.Equal(t, "(+ 1 2)", ast.SprintExpr(a, sum))
	assert.Equal(t, 5, a.Len())
}

func TestArenaReset(t *testing.T) {
	a := ast.NewArena()
	intTerm(a, "7")
	a.NewScope(ast.Scope{})
	require.Equal(t, 3, a.Len())

	a.Reset()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, ast.ExprID(0), intTerm(a, "8"))
}

func TestSprintProgram(t *testing.T) {
	a := ast.NewArena()
	x := lexer.NewToken(lexer.ID, "x", "x", lexer.Position{})
	s := lexer.NewToken(lexer.STRING, "hi", "hi", lexer.Position{})

	decl := a.NewStmt(ast.DeclareStmt{Ident: x, Expr: intTerm(a, "3")})
	cond := a.NewExpr(ast.TermExpr{Term: a.NewTerm(ast.Ident{Token: x})})
	str := a.NewExpr(ast.TermExpr{Term: a.NewTerm(ast.StrLit{Token: s})})
	body := a.NewScope(ast.Scope{Stmts: []ast.StmtID{a.NewStmt(ast.PrintStmt{Expr: str})}})
	loop := a.NewStmt(ast.WaitStmt{Cond: cond, Scope: body})
	once := a.NewStmt(ast.OnceStmt{Scope: a.NewScope(ast.Scope{})})

	prog := &ast.Program{Stmts: []ast.StmtID{decl, loop, once}, Arena: a}
	assert.Equal(t, "(hope x 3)\n(wait x {(tell_me \"hi\")})\n(moveon {})", ast.Sprint(prog))
}

func TestBinOpString(t *testing.T) {
	assert.Equal(t, "<=", ast.OpLe.String())
	assert.True(t, ast.OpNe.IsComparison())
	assert.False(t, ast.OpDiv.IsComparison())
}
