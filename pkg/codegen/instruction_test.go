package codegen_test

import (
	"baby/pkg/ast"
	"baby/pkg/codegen"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructionString(t *testing.T) {
	tests := []struct {
		instr    codegen.Instruction
		expected string
	}{
		{codegen.Instruction{Op: codegen.OpMov, Dst: codegen.RAX, Src: codegen.Imm(-3)}, "mov rax, -3"},
		{codegen.Instruction{Op: codegen.OpPush, Dst: codegen.Mem{Disp: 16}}, "push QWORD [rsp + 16]"},
		{codegen.Instruction{Op: codegen.OpPush, Dst: codegen.Mem{}}, "push QWORD [rsp]"},
		{codegen.Instruction{Op: codegen.OpMov, Dst: codegen.Mem{Disp: 8}, Src: codegen.RAX}, "mov QWORD [rsp + 8], rax"},
		{codegen.Instruction{Op: codegen.OpMov, Dst: codegen.RSI, Src: codegen.Sym("str_0")}, "mov rsi, str_0"},
		{codegen.Instruction{Op: codegen.OpCqo}, "cqo"},
		{codegen.Instruction{Op: codegen.OpLabel, Dst: codegen.Sym("label_3")}, "label_3:"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.instr.String())
	}
}

func TestSetOperation(t *testing.T) {
	op, ok := codegen.SetOperation(ast.OpLe)
	assert.True(t, ok)
	assert.Equal(t, codegen.OpSetle, op)

	_, ok = codegen.SetOperation(ast.OpAdd)
	assert.False(t, ok)
}
