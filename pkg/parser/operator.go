package parser

import (
	"baby/pkg/ast"
	"baby/pkg/lexer"
)

// Binding strength of binary operators. Higher binds tighter; every level
// is left-associative.
var precedence = map[lexer.TokenType]int{
	lexer.EQ:    0,
	lexer.NE:    0,
	lexer.LT:    0,
	lexer.LE:    0,
	lexer.GT:    0,
	lexer.GE:    0,
	lexer.PLUS:  1,
	lexer.MINUS: 1,
	lexer.MULT:  2,
	lexer.DIV:   2,
}

var binaryOps = map[lexer.TokenType]ast.BinOp{
	lexer.EQ:    ast.OpEq,
	lexer.NE:    ast.OpNe,
	lexer.LT:    ast.OpLt,
	lexer.LE:    ast.OpLe,
	lexer.GT:    ast.OpGt,
	lexer.GE:    ast.OpGe,
	lexer.PLUS:  ast.OpAdd,
	lexer.MINUS: ast.OpSub,
	lexer.MULT:  ast.OpMul,
	lexer.DIV:   ast.OpDiv,
}

// binaryPrecedence reports the precedence of t, or false when t does not
// continue an expression.
func binaryPrecedence(t lexer.TokenType) (int, bool) {
	prec, ok := precedence[t]
	return prec, ok
}

func binaryOp(t lexer.TokenType) (ast.BinOp, bool) {
	op, ok := binaryOps[t]
	return op, ok
}
