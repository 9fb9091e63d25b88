package x86_64_linux

import (
	"baby/pkg/codegen"
	"strconv"
	"strings"
)

// addText adds a line to the text section
func (a *x86_64Linux) addText(line string) {
	a.text.WriteString(line + "\n")
}

// addBss adds a line to the bss section
func (a *x86_64Linux) addBss(line string) {
	a.bss.WriteString(line + "\n")
}

// addData adds a line to the data section
func (a *x86_64Linux) addData(line string) {
	a.data.WriteString(line + "\n")
}

// emit appends an instruction to the entry routine
func (a *x86_64Linux) emit(op codegen.Operation, dst, src codegen.Operand) {
	a.body = append(a.body, codegen.Instruction{Op: op, Dst: dst, Src: src})
}

func (a *x86_64Linux) label(name string) {
	a.emit(codegen.OpLabel, codegen.Sym(name), nil)
}

// push emits a push and accounts for the new operand-stack word
func (a *x86_64Linux) push(src codegen.Operand) {
	a.emit(codegen.OpPush, src, nil)
	a.cg.Push()
}

// pop emits a pop and accounts for the released operand-stack word
func (a *x86_64Linux) pop(dst codegen.Register) {
	a.emit(codegen.OpPop, dst, nil)
	a.cg.Pop()
}

func formatInstruction(instr codegen.Instruction) string {
	if instr.Op == codegen.OpLabel {
		return instr.String()
	}
	return "    " + instr.String()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// escapeString renders s as NASM db operands with a trailing NUL. Printable
// runs are quoted; quotes and other bytes are written as numbers.
func escapeString(s string) string {
	var parts []string
	var run strings.Builder

	flush := func() {
		if run.Len() > 0 {
			parts = append(parts, `"`+run.String()+`"`)
			run.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= ' ' && b <= '~' && b != '"' {
			run.WriteByte(b)
			continue
		}
		flush()
		parts = append(parts, strconv.Itoa(int(b)))
	}
	flush()

	return strings.Join(append(parts, "0"), ", ")
}
