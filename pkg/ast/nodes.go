package ast

import "baby/pkg/lexer"

// Term is one of IntLit, Ident, Paren or StrLit.
type Term interface {
	termNode()
}

type IntLit struct {
	Token lexer.Token
}

type Ident struct {
	Token lexer.Token
}

type Paren struct {
	Expr ExprID
}

type StrLit struct {
	Token lexer.Token
}

func (IntLit) termNode() {}
func (Ident) termNode()  {}
func (Paren) termNode()  {}
func (StrLit) termNode() {}

// Value returns the decoded payload of the literal.
func (s StrLit) Value() string {
	return s.Token.Literal
}

func (i Ident) Name() string {
	return i.Token.Lexeme
}

type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

var binOpNames = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpEq:  "==",
	OpNe:  "!=",
	OpLt:  "<",
	OpLe:  "<=",
	OpGt:  ">",
	OpGe:  ">=",
}

func (op BinOp) String() string {
	if int(op) < len(binOpNames) {
		return binOpNames[op]
	}
	return "?"
}

// IsComparison reports whether op yields 1 or 0 rather than an arithmetic result.
func (op BinOp) IsComparison() bool {
	return op >= OpEq
}

// Expr is either a TermExpr or a BinExpr.
type Expr interface {
	exprNode()
}

type TermExpr struct {
	Term TermID
}

type BinExpr struct {
	Op    BinOp
	LHS   ExprID
	RHS   ExprID
	Token lexer.Token
}

func (TermExpr) exprNode() {}
func (BinExpr) exprNode()  {}

type Stmt interface {
	stmtNode()
}

// ExitStmt is `bye(expr);`.
type ExitStmt struct {
	Token lexer.Token
	Expr  ExprID
}

// DeclareStmt is `hope name = expr;`.
type DeclareStmt struct {
	Ident lexer.Token
	Expr  ExprID
}

// StringDeclareStmt is `dillusion name = "text";`.
type StringDeclareStmt struct {
	Ident lexer.Token
	Expr  ExprID
}

// AssignStmt is `name = expr;`.
type AssignStmt struct {
	Ident lexer.Token
	Expr  ExprID
}

// PrintStmt is `tell_me(expr);`.
type PrintStmt struct {
	Token lexer.Token
	Expr  ExprID
}

type BlockStmt struct {
	Scope ScopeID
}

// IfStmt is `maybe (cond) { ... }`.
type IfStmt struct {
	Token lexer.Token
	Cond  ExprID
	Scope ScopeID
}

// ElseIfStmt is `ormaybe (cond) { ... }`. It is not linked to a preceding
// IfStmt and behaves as an independent conditional.
type ElseIfStmt struct {
	Token lexer.Token
	Cond  ExprID
	Scope ScopeID
}

// OnceStmt is `moveon { ... }`, a block that always runs exactly once.
type OnceStmt struct {
	Token lexer.Token
	Scope ScopeID
}

// WaitStmt is `wait (cond) { ... }`, a loop running while cond is nonzero.
type WaitStmt struct {
	Token lexer.Token
	Cond  ExprID
	Scope ScopeID
}

func (ExitStmt) stmtNode()          {}
func (DeclareStmt) stmtNode()       {}
func (StringDeclareStmt) stmtNode() {}
func (AssignStmt) stmtNode()        {}
func (PrintStmt) stmtNode()         {}
func (BlockStmt) stmtNode()         {}
func (IfStmt) stmtNode()            {}
func (ElseIfStmt) stmtNode()        {}
func (OnceStmt) stmtNode()          {}
func (WaitStmt) stmtNode()          {}

type Scope struct {
	Stmts []StmtID
}

type Program struct {
	Stmts []StmtID
	Arena *Arena
}
