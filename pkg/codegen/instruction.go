package codegen

import (
	"baby/pkg/ast"
	"fmt"
	"strings"
)

type Operation string

// Instructions emitted for program bodies
const (
	OpMov     Operation = "mov"
	OpMovzx   Operation = "movzx"
	OpPush    Operation = "push"
	OpPop     Operation = "pop"
	OpAdd     Operation = "add"
	OpSub     Operation = "sub"
	OpImul    Operation = "imul"
	OpCqo     Operation = "cqo"
	OpIdiv    Operation = "idiv"
	OpCmp     Operation = "cmp"
	OpTest    Operation = "test"
	OpSete    Operation = "sete"
	OpSetne   Operation = "setne"
	OpSetl    Operation = "setl"
	OpSetle   Operation = "setle"
	OpSetg    Operation = "setg"
	OpSetge   Operation = "setge"
	OpJmp     Operation = "jmp"
	OpJz      Operation = "jz"
	OpCall    Operation = "call"
	OpSyscall Operation = "syscall"
	OpLabel   Operation = "label"
)

// Operand is a Register, Imm, Mem or Sym.
type Operand interface {
	String() string
}

// PrintIntLabel is the runtime routine writing rax as signed decimal
// followed by a newline.
const PrintIntLabel = "print_int"

type Register string

const (
	RAX Register = "rax"
	RBX Register = "rbx"
	RDX Register = "rdx"
	RSI Register = "rsi"
	RDI Register = "rdi"
	RSP Register = "rsp"
	AL  Register = "al"
)

func (r Register) String() string {
	return string(r)
}

// Imm is an immediate integer
type Imm int64

func (i Imm) String() string {
	return fmt.Sprintf("%d", int64(i))
}

// Mem is the quadword at [rsp + Disp]
type Mem struct {
	Disp int
}

func (m Mem) String() string {
	if m.Disp == 0 {
		return "QWORD [rsp]"
	}
	return fmt.Sprintf("QWORD [rsp + %d]", m.Disp)
}

// Sym is the address of a label
type Sym string

func (s Sym) String() string {
	return string(s)
}

type Instruction struct {
	Op Operation

	Dst Operand
	Src Operand
}

// String returns the NASM form of the instruction, without indentation
func (i Instruction) String() string {
	if i.Op == OpLabel {
		return i.Dst.String() + ":"
	}

	var sb strings.Builder
	sb.WriteString(string(i.Op))
	if i.Dst != nil {
		sb.WriteString(" ")
		sb.WriteString(i.Dst.String())
	}
	if i.Src != nil {
		sb.WriteString(", ")
		sb.WriteString(i.Src.String())
	}
	return sb.String()
}

// Listing is a generated program in executable form.
type Listing struct {
	Entry string        // label execution starts at
	Text  []Instruction // program body, ending in the default exit
	Data  []Literal     // interned string constants
}

// SetOperation maps a comparison to the setCC instruction materializing it
func SetOperation(op ast.BinOp) (Operation, bool) {
	switch op {
	case ast.OpEq:
		return OpSete, true
	case ast.OpNe:
		return OpSetne, true
	case ast.OpLt:
		return OpSetl, true
	case ast.OpLe:
		return OpSetle, true
	case ast.OpGt:
		return OpSetg, true
	case ast.OpGe:
		return OpSetge, true
	default:
		return "", false
	}
}
