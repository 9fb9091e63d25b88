package x86_64_linux

import (
	"bytes"

	"baby/pkg/ast"
	"baby/pkg/codegen"
	"baby/pkg/codegen/assembly"

	"github.com/charmbracelet/log"
)

const entryLabel = "_start"

type x86_64Linux struct {
	prog *ast.Program    // program being compiled
	cg   *codegen.Codegen // symbol table, literals and stack depth

	output string // output executable name

	body []codegen.Instruction // entry routine, ending in the default exit

	text bytes.Buffer // .text section
	bss  bytes.Buffer // .bss section
	data bytes.Buffer // .data section (interned string literals)
}

// NewX86_64Linux creates a new x86_64Linux assembly generator instance
func NewX86_64Linux(prog *ast.Program, output string) assembly.Assembly {
	return &x86_64Linux{
		prog:   prog,
		cg:     codegen.NewCodegen(),
		output: output,
	}
}

// Generate lowers the program to NASM assembly. It stops at the first
// semantic error.
func (a *x86_64Linux) Generate() error {
	a.label(entryLabel)

	for _, id := range a.prog.Stmts {
		if err := a.genStmt(id); err != nil {
			return err
		}
	}

	// default exit(0)
	a.emit(codegen.OpMov, codegen.RAX, codegen.Imm(60))
	a.emit(codegen.OpMov, codegen.RDI, codegen.Imm(0))
	a.emit(codegen.OpSyscall, nil, nil)

	a.addText("global " + entryLabel)
	a.addText("section .text")
	for _, instr := range a.body {
		a.addText(formatInstruction(instr))
	}
	a.addText("")
	a.addText(runtimeHelpers)

	a.addBss(digitBuffer + ": resb " + itoa(digitBufferSize))

	for _, lit := range a.cg.Literals() {
		a.addData(lit.Label + ": db " + escapeString(lit.Text))
	}

	log.Debug("Generated assembly",
		"instructions", len(a.body),
		"literals", len(a.cg.Literals()),
		"depth", a.cg.Depth())

	return nil
}

// GetCode returns the generated assembly code as a string
func (a *x86_64Linux) GetCode() string {
	var b bytes.Buffer

	b.Write(a.text.Bytes())

	b.WriteString("\nsection .bss\n")
	b.Write(a.bss.Bytes())

	// .data only when some literal was interned
	if a.data.Len() > 0 {
		b.WriteString("\nsection .data\n")
		b.Write(a.data.Bytes())
	}

	return b.String()
}

// Listing returns the entry routine and its string constants
func (a *x86_64Linux) Listing() codegen.Listing {
	return codegen.Listing{
		Entry: entryLabel,
		Text:  a.body,
		Data:  a.cg.Literals(),
	}
}
