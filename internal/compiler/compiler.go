package compiler

import (
	"baby/internal/panicerr"
	"baby/pkg/ast"
	"baby/pkg/codegen"
	"baby/pkg/codegen/assembly"
	x86_64_linux "baby/pkg/codegen/assembly/x86_64/linux"
	"baby/pkg/color"
	"baby/pkg/interpreter"
	"baby/pkg/lexer"
	"baby/pkg/parser"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

const DefaultTarget = "x86_64-linux"

var ErrUnsupportedTarget = errors.New("unsupported target architecture")

type Compiler struct {
	Help            bool      // Show help message
	Verbose         bool      // Enable verbose output
	ShouldInterpret bool      // Whether to interpret the code
	ShouldCompile   bool      // Whether to build an executable
	EmitAssembly    bool      // Whether to write <output>.asm
	NoColor         bool      // Disable colored output
	TargetArch      string    // Target architecture for compilation (e.g., "x86_64-linux")
	SourceFile      string    // Path to the source file
	OutputFile      string    // Path to the output file
	MaxSteps        int       // Interpreter step bound, 0 for none
	Stdout          io.Writer // Report and program output, os.Stdout when nil

	ExitCode int // Status of the interpreted program
}

func (opts *Compiler) stdout() io.Writer {
	if opts.Stdout == nil {
		return os.Stdout
	}
	return opts.Stdout
}

// Compile processes the source file, generates assembly, and then prints,
// writes, builds or interprets it based on the options set.
func (opts *Compiler) Compile() error {
	log.Info("Processing file", "file", opts.SourceFile)

	input, err := os.ReadFile(opts.SourceFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", opts.SourceFile, err)
	}

	var arch assembly.Assembly
	err = panicerr.Recover(opts.SourceFile, func() error {
		var genErr error
		arch, genErr = opts.generate(string(input))
		return genErr
	})
	if err != nil {
		return opts.report(err, string(input))
	}

	return opts.emit(arch)
}

// generate runs the front end and the code generator for the target
func (opts *Compiler) generate(src string) (assembly.Assembly, error) {
	out := opts.stdout()

	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}

	prog, err := parser.NewParser(tokens).Parse()
	if err != nil {
		return nil, err
	}

	if opts.Verbose {
		fmt.Fprintln(out, color.GreenText("=== Syntax Tree ==="))
		if len(prog.Stmts) == 0 {
			fmt.Fprintln(out, color.GrayText("Empty program."))
		} else {
			fmt.Fprint(out, ast.Sprint(prog))
		}
	}

	var arch assembly.Assembly
	switch opts.TargetArch {
	case DefaultTarget, "":
		arch = x86_64_linux.NewX86_64Linux(prog, opts.OutputFile)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTarget, opts.TargetArch)
	}

	if err := arch.Generate(); err != nil {
		return nil, err
	}
	return arch, nil
}

// report prints a front end error under a heading for its phase, with
// the offending source line
func (opts *Compiler) report(err error, src string) error {
	out := opts.stdout()

	var (
		lexErr    *lexer.Error
		syntaxErr *parser.SyntaxError
		semErr    *codegen.SemanticError
	)

	var (
		heading string
		msg     string
		pos     lexer.Position
		wrapped error
	)
	switch {
	case errors.As(err, &lexErr):
		heading, msg, pos = "Lexical Errors", lexErr.Msg, lexErr.Pos
		wrapped = fmt.Errorf("lexing failed: %w", err)
	case errors.As(err, &syntaxErr):
		heading, msg, pos = "Syntax Errors", syntaxErr.Msg, syntaxErr.Token.Pos
		wrapped = fmt.Errorf("parsing failed: %w", err)
	case errors.As(err, &semErr):
		heading, msg, pos = "Semantic Errors", semErr.Msg, semErr.Token.Pos
		if semErr.Token.Lexeme != "" {
			msg += " `" + color.BlueText(semErr.Token.Lexeme) + "`"
		}
		wrapped = fmt.Errorf("semantic analysis failed: %w", err)
	case panicerr.IsPanic(err):
		log.Debug("Compiler panic", "file", opts.SourceFile, "stack", panicerr.PanicStack(err))
		return fmt.Errorf("internal compiler error: %w", err)
	default:
		return err
	}

	fmt.Fprintln(out, color.BrightRedText("=== "+heading+" ==="))
	fmt.Fprintln(out, color.ErrorWithPosition(pos.Line, pos.Column, msg, sourceContext(src, pos)))
	return wrapped
}

// sourceContext returns the line holding pos with a caret under its column
func sourceContext(src string, pos lexer.Position) string {
	lines := strings.Split(src, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return ""
	}

	line := strings.TrimRight(lines[pos.Line-1], "\r")
	col := max(pos.Column-1, 0)
	return line + "\n" + strings.Repeat(" ", col) + "^"
}

// emit delivers generated code according to the -S, -c and -r options
func (opts *Compiler) emit(arch assembly.Assembly) error {
	out := opts.stdout()
	code := arch.GetCode()

	if opts.Verbose {
		fmt.Fprintln(out, color.GreenText("\n=== Generated Assembly ==="))
		fmt.Fprintln(out, color.Code(code))
	}

	if !opts.EmitAssembly && !opts.ShouldCompile && !opts.ShouldInterpret {
		if !opts.Verbose {
			fmt.Fprint(out, code)
		}
		return nil
	}

	if opts.EmitAssembly {
		asmFile := opts.OutputFile + ".asm"
		if err := os.WriteFile(asmFile, []byte(code), 0644); err != nil {
			return fmt.Errorf("failed to write assembly: %w", err)
		}
		log.Info("Wrote assembly", "file", asmFile)
	}

	if opts.ShouldCompile {
		if err := arch.Build(); err != nil {
			return fmt.Errorf("assembly build failed: %w", err)
		}
		fmt.Fprintln(out, color.Success("built "+opts.OutputFile))
	}

	if opts.ShouldInterpret {
		intr := interpreter.NewInterpreter(arch.Listing(),
			interpreter.WithWriter(out),
			interpreter.WithMaxSteps(opts.MaxSteps))

		fmt.Fprintln(out, color.GreenText("=== Program Output ==="))
		if err := intr.Run(); err != nil {
			return fmt.Errorf("interpretation failed: %w", err)
		}
		opts.ExitCode = intr.ExitCode()
		fmt.Fprintln(out, color.GreenText(fmt.Sprintf("\n=== Exit Status: %d ===", opts.ExitCode)))
	}

	return nil
}
