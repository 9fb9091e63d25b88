package compiler_test

import (
	"baby/internal/compiler"
	"baby/pkg/codegen"
	"baby/pkg/color"
	"baby/pkg/lexer"
	"baby/pkg/parser"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.EnableColor(false)
	os.Exit(m.Run())
}

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func newCompiler(t *testing.T, src string) (*compiler.Compiler, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	var out bytes.Buffer
	return &compiler.Compiler{
		SourceFile: writeSource(t, dir, "main.baby", src),
		OutputFile: filepath.Join(dir, "a.out"),
		TargetArch: compiler.DefaultTarget,
		Stdout:     &out,
	}, &out
}

func TestPrintsAssemblyByDefault(t *testing.T) {
	c, out := newCompiler(t, "bye(3);")

	require.NoError(t, c.Compile())
	assert.True(t, strings.HasPrefix(out.String(), "global _start\nsection .text\n"))
	assert.Contains(t, out.String(), "    mov rax, 3\n")
	assert.Contains(t, out.String(), "section .bss\n")
}

func TestInterpret(t *testing.T) {
	c, out := newCompiler(t, `
hope x = 1 + 2;
tell_me(x);
tell_me("done\n");
bye(x * 2 + 1);
`)
	c.ShouldInterpret = true

	require.NoError(t, c.Compile())
	assert.Equal(t, 7, c.ExitCode)
	assert.Contains(t, out.String(), "=== Program Output ===\n3\ndone\n")
	assert.Contains(t, out.String(), "=== Exit Status: 7 ===")
	assert.NotContains(t, out.String(), "global _start")
}

func TestInterpretStepLimit(t *testing.T) {
	c, _ := newCompiler(t, "hope i = 1; wait (i) { i = i + 0; }")
	c.ShouldInterpret = true
	c.MaxSteps = 1000

	err := c.Compile()
	require.Error(t, err)
	assert.ErrorContains(t, err, "interpretation failed")
}

func TestEmitAssemblyFile(t *testing.T) {
	c, out := newCompiler(t, `tell_me("hi");`)
	c.EmitAssembly = true

	require.NoError(t, c.Compile())
	assert.Empty(t, out.String())

	code, err := os.ReadFile(c.OutputFile + ".asm")
	require.NoError(t, err)
	assert.Contains(t, string(code), "str_0: db \"hi\", 0")
}

func TestVerboseDumpsTreeAndAssembly(t *testing.T) {
	c, out := newCompiler(t, "hope x = 10;")
	c.Verbose = true

	require.NoError(t, c.Compile())
	assert.Contains(t, out.String(), "=== Syntax Tree ===")
	assert.Contains(t, out.String(), "(hope x 10)")
	assert.Contains(t, out.String(), "=== Generated Assembly ===")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		heading string
		target  error
	}{
		{"lexical", "bye(1) !", "=== Lexical Errors ===", lexer.ErrIllegalCharacter},
		{"syntax", "bye(1)", "=== Syntax Errors ===", parser.ErrMissingToken},
		{"semantic", "bye(x);", "=== Semantic Errors ===", codegen.ErrUndeclaredVariable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newCompiler(t, tt.src)

			err := c.Compile()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.Contains(t, out.String(), tt.heading)
		})
	}
}

func TestErrorShowsSourceLine(t *testing.T) {
	c, out := newCompiler(t, "hope a = 1;\nbye(a + x);\n")

	require.Error(t, c.Compile())
	assert.Contains(t, out.String(), "Error at 2:9: Undeclared variable `x`\nbye(a + x);\n        ^")
}

func TestUnsupportedTarget(t *testing.T) {
	c, _ := newCompiler(t, "bye(0);")
	c.TargetArch = "arm64-macos"

	assert.ErrorIs(t, c.Compile(), compiler.ErrUnsupportedTarget)
}

func TestMissingSource(t *testing.T) {
	c := &compiler.Compiler{SourceFile: filepath.Join(t.TempDir(), "nope.baby")}

	err := c.Compile()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCompileAllOrdersReports(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeSource(t, dir, "one.baby", "tell_me(1); bye(1);"),
		writeSource(t, dir, "two.baby", "tell_me(2); bye(2);"),
		writeSource(t, dir, "three.baby", "tell_me(3); bye(3);"),
	}

	var out bytes.Buffer
	base := compiler.Compiler{ShouldInterpret: true, OutputFile: "a.out", Stdout: &out}

	units, err := compiler.CompileAll(context.Background(), base, files)
	require.NoError(t, err)
	require.Len(t, units, 3)

	for i, u := range units {
		assert.Equal(t, i+1, u.ExitCode)
		assert.Equal(t, strings.TrimSuffix(files[i], ".baby"), u.OutputFile)
	}

	report := out.String()
	first := strings.Index(report, "==> "+files[0])
	second := strings.Index(report, "==> "+files[1])
	third := strings.Index(report, "==> "+files[2])
	require.GreaterOrEqual(t, first, 0)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestCompileAllSingleFileKeepsOutput(t *testing.T) {
	dir := t.TempDir()
	file := writeSource(t, dir, "main.baby", "bye(0);")

	var out bytes.Buffer
	units, err := compiler.CompileAll(context.Background(), compiler.Compiler{OutputFile: "prog", Stdout: &out}, []string{file})
	require.NoError(t, err)
	assert.Equal(t, "prog", units[0].OutputFile)
	assert.NotContains(t, out.String(), "==>")
	assert.Contains(t, out.String(), "_start:")
}

func TestCompileAllReportsFailingFile(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "good.baby", "bye(0);")
	bad := writeSource(t, dir, "bad.baby", "bye(y);")

	var out bytes.Buffer
	_, err := compiler.CompileAll(context.Background(), compiler.Compiler{Stdout: &out}, []string{good, bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, codegen.ErrUndeclaredVariable)
	assert.Contains(t, err.Error(), bad)
}
