package codegen_test

import (
	"baby/pkg/ast"
	"testing"

	"github.com/stretchr/testify/require"
)

// exprOf returns the initializer of a string declaration
func exprOf(t *testing.T, prog *ast.Program, id ast.StmtID) ast.ExprID {
	t.Helper()
	decl, ok := prog.Arena.Stmt(id).(ast.StringDeclareStmt)
	require.True(t, ok)
	return decl.Expr
}
