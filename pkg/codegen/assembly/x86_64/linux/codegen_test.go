package x86_64_linux_test

import (
	"baby/pkg/codegen"
	x86_64_linux "baby/pkg/codegen/assembly/x86_64/linux"
	"baby/pkg/parser"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, src string) (string, error) {
	t.Helper()
	prog, err := parser.ParseSource(src)
	require.NoError(t, err)

	arch := x86_64_linux.NewX86_64Linux(prog, "a.out")
	if err := arch.Generate(); err != nil {
		return "", err
	}
	return arch.GetCode(), nil
}

func mustGenerate(t *testing.T, src string) string {
	t.Helper()
	code, err := generate(t, src)
	require.NoError(t, err)
	return code
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func TestExitStatement(t *testing.T) {
	code := mustGenerate(t, "bye(5);")

	assert.Contains(t, code, lines(
		"_start:",
		"    mov rax, 5",
		"    push rax",
		"    mov rax, 60",
		"    pop rdi",
		"    syscall",
	))
}

func TestLayout(t *testing.T) {
	code := mustGenerate(t, `tell_me("hi"); tell_me(1);`)

	order := []string{
		"global _start",
		"section .text",
		"_start:",
		lines("    mov rax, 60", "    mov rdi, 0", "    syscall"),
		"itoa:",
		"print_int:",
		"section .bss\ndigit_buf: resb 32",
		"section .data\nstr_0: db \"hi\", 0",
	}

	last := -1
	for _, part := range order {
		idx := strings.Index(code, part)
		require.GreaterOrEqual(t, idx, 0, "missing %q", part)
		assert.Greater(t, idx, last, "%q out of order", part)
		last = idx
	}
}

func TestNoDataSectionWithoutStrings(t *testing.T) {
	code := mustGenerate(t, "hope x = 1; tell_me(x);")
	assert.NotContains(t, code, "section .data")
	assert.Contains(t, code, "section .bss")
}

func TestStringLiteralsAreInterned(t *testing.T) {
	code := mustGenerate(t, `dillusion s = "hi"; tell_me(s); tell_me("hi"); tell_me("bye"); tell_me("hi");`)

	assert.Equal(t, 1, strings.Count(code, `db "hi", 0`))
	assert.Contains(t, code, `str_0: db "hi", 0`)
	assert.Contains(t, code, `str_1: db "bye", 0`)
	assert.Equal(t, 3, strings.Count(code, "mov rsi, str_0"))
	assert.Contains(t, code, lines(
		"    mov rax, 1",
		"    mov rdi, 1",
		"    mov rsi, str_1",
		"    mov rdx, 3",
		"    syscall",
	))
}

func TestVariableAccess(t *testing.T) {
	code := mustGenerate(t, "hope a = 1; hope b = 2; tell_me(a); a = 3;")

	assert.Contains(t, code, lines(
		"    push QWORD [rsp + 8]",
		"    pop rax",
		"    call print_int",
	))
	assert.Contains(t, code, lines(
		"    mov rax, 3",
		"    push rax",
		"    pop rax",
		"    mov QWORD [rsp + 8], rax",
	))
}

func TestScopeReleasesSlots(t *testing.T) {
	code := mustGenerate(t, "{ hope a = 1; hope b = 2; } { } hope c = 3;")

	assert.Equal(t, 1, strings.Count(code, "add rsp"))
	assert.Contains(t, code, "    add rsp, 16\n")
}

func TestArithmetic(t *testing.T) {
	code := mustGenerate(t, "tell_me(8 / 2 - 1);")

	assert.Contains(t, code, lines(
		"    pop rbx",
		"    pop rax",
		"    cqo",
		"    idiv rbx",
		"    push rax",
	))
	assert.Contains(t, code, "    sub rax, rbx\n")
}

func TestComparison(t *testing.T) {
	code := mustGenerate(t, "tell_me(1 < 2);")

	assert.Contains(t, code, lines(
		"    cmp rax, rbx",
		"    setl al",
		"    movzx rax, al",
		"    push rax",
	))
}

func TestControlFlowLabels(t *testing.T) {
	code := mustGenerate(t, "hope i = 2; wait (i) { i = i - 1; } maybe (i) { }")

	assert.Contains(t, code, "label_0:\n")
	assert.Contains(t, code, "    jz label_1\n")
	assert.Contains(t, code, "    jmp label_0\n")
	assert.Contains(t, code, "label_1:\n")
	assert.Contains(t, code, "    jz label_2\n")
	assert.Contains(t, code, "label_2:\n")
}

func TestDivisionByZeroCompiles(t *testing.T) {
	_, err := generate(t, "tell_me(1 / 0);")
	assert.NoError(t, err)
}

func TestSemanticErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected error
	}{
		{"tell_me(x);", codegen.ErrUndeclaredVariable},
		{"{ hope y = 1; } tell_me(y);", codegen.ErrUndeclaredVariable},
		{"hope x = x;", codegen.ErrUndeclaredVariable},
		{"hope x = 1; hope x = 2;", codegen.ErrVariableRedeclared},
		{"{ hope x = 1; x = 2; hope x = 3; }", codegen.ErrVariableRedeclared},
		{`dillusion s = "a"; dillusion s = "b";`, codegen.ErrStringRedeclared},
		{`{ dillusion s = "a"; } dillusion s = "b";`, codegen.ErrStringRedeclared},
		{"dillusion s = 5;", codegen.ErrNotStringLiteral},
		{`dillusion s = ("a");`, codegen.ErrNotStringLiteral},
		{`hope x = "a";`, codegen.ErrStringOperand},
		{`tell_me("a" + 1);`, codegen.ErrStringOperand},
		{`dillusion s = "a"; bye(s);`, codegen.ErrStringOperand},
		{`dillusion s = "a"; wait (s) { }`, codegen.ErrStringOperand},
		{"tell_me(99999999999999999999);", codegen.ErrIntegerRange},
	}

	for _, test := range tests {
		_, err := generate(t, test.input)
		assert.ErrorIs(t, err, test.expected, "input %q", test.input)
	}
}

func TestShadowingIsAllowed(t *testing.T) {
	_, err := generate(t, "hope x = 1; { hope x = 2; { hope x = 3; } } { hope y = 1; } hope y = 2;")
	assert.NoError(t, err)
}

func TestListing(t *testing.T) {
	prog, err := parser.ParseSource(`tell_me("a");`)
	require.NoError(t, err)

	arch := x86_64_linux.NewX86_64Linux(prog, "a.out")
	require.NoError(t, arch.Generate())

	listing := arch.Listing()
	require.NotEmpty(t, listing.Text)
	assert.Equal(t, "_start", listing.Entry)
	assert.Equal(t, codegen.OpLabel, listing.Text[0].Op)
	assert.Equal(t, codegen.OpSyscall, listing.Text[len(listing.Text)-1].Op)
	assert.Equal(t, []codegen.Literal{{Label: "str_0", Text: "a"}}, listing.Data)
}
