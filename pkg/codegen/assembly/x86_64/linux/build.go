package x86_64_linux

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Build assembles and links the x86-64 assembly code into a static Linux executable
func (a *x86_64Linux) Build() error {
	for _, tool := range []string{"nasm", "ld"} {
		if _, err := exec.LookPath(tool); err != nil {
			return fmt.Errorf("%s not found in PATH: %w", tool, err)
		}
	}

	tempDir, err := os.MkdirTemp("", "baby_build_")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	asmFile := filepath.Join(tempDir, "program.asm")
	if err := os.WriteFile(asmFile, []byte(a.GetCode()), 0644); err != nil {
		return fmt.Errorf("failed to write assembly file: %w", err)
	}

	// Assemble to object file using nasm
	objFile := filepath.Join(tempDir, "program.o")
	assembleCmd := exec.Command("nasm", "-f", "elf64", "-o", objFile, asmFile)
	if output, err := assembleCmd.CombinedOutput(); err != nil {
		return fmt.Errorf("assembly failed: %w\nOutput: %s", err, output)
	}

	// Link without libc; _start is the entry point
	execFile := filepath.Join(tempDir, "program")
	linkCmd := exec.Command("ld", "-o", execFile, objFile)
	if output, err := linkCmd.CombinedOutput(); err != nil {
		return fmt.Errorf("linking failed: %w\nOutput: %s", err, output)
	}

	if err := copyExecutable(execFile, a.output); err != nil {
		return fmt.Errorf("failed to copy executable: %w", err)
	}

	log.Info("Built executable", "output", a.output)
	return nil
}

func copyExecutable(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
