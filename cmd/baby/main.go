package main

import (
	"baby/internal/compiler"
	"baby/internal/logger"
	"baby/pkg/color"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// Main entry point for the baby compiler.
func main() {
	options := compiler.Compiler{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.ShouldInterpret, "r", false, "Run with interpreter")
	flag.BoolVar(&options.ShouldCompile, "c", false, "Compile to binary (needs nasm and ld)")
	flag.BoolVar(&options.EmitAssembly, "S", false, "Write assembly to <output>.asm")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.StringVar(&options.TargetArch, "a", compiler.DefaultTarget, "Target architecture")
	flag.StringVar(&options.OutputFile, "o", "a.out", "Output binary name")
	flag.IntVar(&options.MaxSteps, "max-steps", 0, "Interpreter step limit (0 = unlimited)")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] <file>...\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if len(args) == 0 {
		log.Fatal("No input file provided", "help", fmt.Sprintf("%s -h", os.Args[0]))
	}

	units, err := compiler.CompileAll(context.Background(), options, args)
	if err != nil {
		log.Fatal("Compilation failed", "error", err)
	}

	// a single interpreted program exits with its own status
	if options.ShouldInterpret && len(units) == 1 {
		os.Exit(units[0].ExitCode)
	}
}
