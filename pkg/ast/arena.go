package ast

type (
	TermID  int
	ExprID  int
	StmtID  int
	ScopeID int
)

// store is a growable slab of nodes of one family. Nodes are never freed
// individually; handles stay valid until the owning Arena is reset.
type store[T any] struct {
	nodes []T
}

func (s *store[T]) alloc(n T) int {
	s.nodes = append(s.nodes, n)
	return len(s.nodes) - 1
}

func (s *store[T]) at(i int) T {
	return s.nodes[i]
}

func (s *store[T]) reset() {
	clear(s.nodes)
	s.nodes = s.nodes[:0]
}

// Arena owns every node of a program.
type Arena struct {
	terms  store[Term]
	exprs  store[Expr]
	stmts  store[Stmt]
	scopes store[Scope]
}

func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) NewTerm(t Term) TermID {
	return TermID(a.terms.alloc(t))
}

func (a *Arena) NewExpr(e Expr) ExprID {
	return ExprID(a.exprs.alloc(e))
}

func (a *Arena) NewStmt(s Stmt) StmtID {
	return StmtID(a.stmts.alloc(s))
}

func (a *Arena) NewScope(s Scope) ScopeID {
	return ScopeID(a.scopes.alloc(s))
}

func (a *Arena) Term(id TermID) Term {
	return a.terms.at(int(id))
}

func (a *Arena) Expr(id ExprID) Expr {
	return a.exprs.at(int(id))
}

func (a *Arena) Stmt(id StmtID) Stmt {
	return a.stmts.at(int(id))
}

func (a *Arena) Scope(id ScopeID) Scope {
	return a.scopes.at(int(id))
}

// Len reports the number of nodes held, across all families.
func (a *Arena) Len() int {
	return len(a.terms.nodes) + len(a.exprs.nodes) + len(a.stmts.nodes) + len(a.scopes.nodes)
}

// Reset drops every node at once. Handles issued before the reset are invalid.
func (a *Arena) Reset() {
	a.terms.reset()
	a.exprs.reset()
	a.stmts.reset()
	a.scopes.reset()
}
