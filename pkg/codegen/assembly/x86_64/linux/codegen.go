package x86_64_linux

import (
	"baby/pkg/ast"
	"baby/pkg/codegen"
	"baby/pkg/lexer"
	"fmt"
)

// Linux system call numbers
const (
	sysWrite = 1
	sysExit  = 60
	stdout   = 1
)

func (a *x86_64Linux) genStmt(id ast.StmtID) error {
	arena := a.prog.Arena

	switch s := arena.Stmt(id).(type) {
	case ast.ExitStmt:
		if err := a.genValue(s.Expr); err != nil {
			return err
		}
		a.emit(codegen.OpMov, codegen.RAX, codegen.Imm(sysExit))
		a.pop(codegen.RDI)
		a.emit(codegen.OpSyscall, nil, nil)

	case ast.DeclareStmt:
		if err := a.cg.CheckDeclarable(s.Ident); err != nil {
			return err
		}
		return a.genBinding(s.Ident, s.Expr)

	case ast.StringDeclareStmt:
		// bound at compile time; no code
		_, err := a.cg.BindString(arena, s.Ident, s.Expr)
		return err

	case ast.AssignStmt:
		v, ok := a.cg.Lookup(s.Ident.Lexeme)
		if !ok {
			// assignment to an unknown name declares it in the current scope
			return a.genBinding(s.Ident, s.Expr)
		}
		if err := a.genValue(s.Expr); err != nil {
			return err
		}
		a.pop(codegen.RAX)
		a.emit(codegen.OpMov, codegen.Mem{Disp: a.cg.Offset(v)}, codegen.RAX)

	case ast.PrintStmt:
		if a.cg.IsString(arena, s.Expr) {
			// evaluating a string term writes it
			return a.genExpr(s.Expr)
		}
		if err := a.genValue(s.Expr); err != nil {
			return err
		}
		a.pop(codegen.RAX)
		a.emit(codegen.OpCall, codegen.Sym(codegen.PrintIntLabel), nil)

	case ast.BlockStmt:
		return a.genScope(s.Scope)

	case ast.IfStmt:
		return a.genIf(s.Cond, s.Scope)

	case ast.ElseIfStmt:
		return a.genIf(s.Cond, s.Scope)

	case ast.OnceStmt:
		return a.genScope(s.Scope)

	case ast.WaitStmt:
		start := a.cg.NewLabel()
		end := a.cg.NewLabel()

		a.label(start)
		if err := a.genCondition(s.Cond, end); err != nil {
			return err
		}
		if err := a.genScope(s.Scope); err != nil {
			return err
		}
		a.emit(codegen.OpJmp, codegen.Sym(start), nil)
		a.label(end)

	default:
		return fmt.Errorf("unsupported statement %T", s)
	}

	return nil
}

// genBinding evaluates an initializer into a new slot and names it. The
// initializer still sees any outer variable of the same name.
func (a *x86_64Linux) genBinding(ident lexer.Token, expr ast.ExprID) error {
	slot := a.cg.Depth()

	if err := a.genValue(expr); err != nil {
		return err
	}

	_, err := a.cg.Declare(ident, slot)
	return err
}

// genIf emits a conditional block: the scope runs when cond is nonzero
func (a *x86_64Linux) genIf(cond ast.ExprID, scope ast.ScopeID) error {
	end := a.cg.NewLabel()

	if err := a.genCondition(cond, end); err != nil {
		return err
	}
	if err := a.genScope(scope); err != nil {
		return err
	}
	a.label(end)

	return nil
}

// genCondition jumps to target when cond evaluates to zero
func (a *x86_64Linux) genCondition(cond ast.ExprID, target string) error {
	if err := a.genValue(cond); err != nil {
		return err
	}
	a.pop(codegen.RAX)
	a.emit(codegen.OpTest, codegen.RAX, codegen.RAX)
	a.emit(codegen.OpJz, codegen.Sym(target), nil)

	return nil
}

// genScope emits a block and releases the slots of its variables
func (a *x86_64Linux) genScope(id ast.ScopeID) error {
	a.cg.BeginScope()

	for _, stmt := range a.prog.Arena.Scope(id).Stmts {
		if err := a.genStmt(stmt); err != nil {
			return err
		}
	}

	if released := a.cg.EndScope(); released > 0 {
		a.emit(codegen.OpAdd, codegen.RSP, codegen.Imm(released*codegen.WordSize))
	}

	return nil
}

// genValue evaluates an integer expression, leaving it on the operand stack
func (a *x86_64Linux) genValue(id ast.ExprID) error {
	if err := a.cg.RequireInteger(a.prog.Arena, id); err != nil {
		return err
	}
	return a.genExpr(id)
}

func (a *x86_64Linux) genExpr(id ast.ExprID) error {
	switch e := a.prog.Arena.Expr(id).(type) {
	case ast.TermExpr:
		return a.genTerm(e.Term)

	case ast.BinExpr:
		if err := a.genValue(e.LHS); err != nil {
			return err
		}
		if err := a.genValue(e.RHS); err != nil {
			return err
		}
		a.pop(codegen.RBX)
		a.pop(codegen.RAX)

		switch e.Op {
		case ast.OpAdd:
			a.emit(codegen.OpAdd, codegen.RAX, codegen.RBX)
		case ast.OpSub:
			a.emit(codegen.OpSub, codegen.RAX, codegen.RBX)
		case ast.OpMul:
			a.emit(codegen.OpImul, codegen.RAX, codegen.RBX)
		case ast.OpDiv:
			a.emit(codegen.OpCqo, nil, nil)
			a.emit(codegen.OpIdiv, codegen.RBX, nil)
		default:
			set, ok := codegen.SetOperation(e.Op)
			if !ok {
				return fmt.Errorf("unsupported binary operator %s", e.Op)
			}
			a.emit(codegen.OpCmp, codegen.RAX, codegen.RBX)
			a.emit(set, codegen.AL, nil)
			a.emit(codegen.OpMovzx, codegen.RAX, codegen.AL)
		}

		a.push(codegen.RAX)
		return nil

	default:
		return fmt.Errorf("unsupported expression %T", e)
	}
}

func (a *x86_64Linux) genTerm(id ast.TermID) error {
	switch t := a.prog.Arena.Term(id).(type) {
	case ast.IntLit:
		n, err := a.cg.IntValue(t.Token)
		if err != nil {
			return err
		}
		a.emit(codegen.OpMov, codegen.RAX, codegen.Imm(n))
		a.push(codegen.RAX)

	case ast.Ident:
		if lit, ok := a.cg.LookupString(t.Name()); ok {
			a.write(lit)
			return nil
		}
		v, err := a.cg.Resolve(t.Token)
		if err != nil {
			return err
		}
		a.push(codegen.Mem{Disp: a.cg.Offset(v)})

	case ast.Paren:
		return a.genExpr(t.Expr)

	case ast.StrLit:
		a.write(a.cg.Intern(t.Value()))

	default:
		return fmt.Errorf("unsupported term %T", t)
	}

	return nil
}

// write emits a write(2) of an interned literal to stdout
func (a *x86_64Linux) write(lit codegen.Literal) {
	a.emit(codegen.OpMov, codegen.RAX, codegen.Imm(sysWrite))
	a.emit(codegen.OpMov, codegen.RDI, codegen.Imm(stdout))
	a.emit(codegen.OpMov, codegen.RSI, codegen.Sym(lit.Label))
	a.emit(codegen.OpMov, codegen.RDX, codegen.Imm(lit.Len()))
	a.emit(codegen.OpSyscall, nil, nil)
}
