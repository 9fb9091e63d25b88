package compiler

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// CompileAll compiles each file with the options in base. A single file
// keeps base.OutputFile; with several, each output is named after its
// source. Reports are written to base.Stdout in input order once every
// compilation has finished. The first failure cancels files not yet started.
func CompileAll(ctx context.Context, base Compiler, files []string) ([]*Compiler, error) {
	units := make([]*Compiler, len(files))
	bufs := make([]bytes.Buffer, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, file := range files {
		file := file
		unit := base
		unit.SourceFile = file
		unit.Stdout = &bufs[i]
		if len(files) > 1 {
			unit.OutputFile = outputName(file)
		}
		units[i] = &unit

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := unit.Compile(); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			return nil
		})
	}

	err := g.Wait()

	out := base.stdout()
	for i := range bufs {
		if bufs[i].Len() == 0 {
			continue
		}
		if len(files) > 1 {
			fmt.Fprintf(out, "==> %s <==\n", files[i])
		}
		bufs[i].WriteTo(out)
	}

	return units, err
}

// outputName strips the source extension, so prog.baby builds prog
func outputName(src string) string {
	name := strings.TrimSuffix(src, filepath.Ext(src))
	if name == src || name == "" {
		return src + ".out"
	}
	return name
}
