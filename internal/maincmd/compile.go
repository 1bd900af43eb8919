package maincmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/mna/stackasm/lang/codegen"
	"github.com/mna/stackasm/lang/optimizer"
	"github.com/mna/stackasm/lang/parser"
	"github.com/mna/stackasm/lang/typecheck"
)

// Compile runs the full pipeline (lex, parse, typecheck, codegen) for a
// single source file and writes the generated ARM64/Darwin assembly to
// stdout, or to the path named by -o/--output.
func (c *Cmd) Compile(ctx context.Context, stdio mainer.Stdio, args []string) error {
	if len(args) != 1 {
		return printError(stdio, fmt.Errorf("compile: exactly one source file must be provided, got %d", len(args)))
	}

	files, err := readSources(args)
	if err != nil {
		return printError(stdio, err)
	}
	f := files[0]

	prog, err := parser.Parse(f.src, f.name)
	if err != nil {
		return printError(stdio, err)
	}
	if c.Optimize {
		optimizer.Program(prog)
	}
	if err := typecheck.Validate(prog); err != nil {
		return printError(stdio, err)
	}

	opts := codegen.Options{
		DebugComments: c.DebugComments,
		DedupStrings:  c.DedupStrings,
	}

	out := stdio.Stdout
	if c.Output != "" {
		file, err := os.Create(c.Output)
		if err != nil {
			return printError(stdio, err)
		}
		defer file.Close()
		w := bufio.NewWriter(file)
		if err := codegen.Generate(w, prog, opts); err != nil {
			return printError(stdio, err)
		}
		if err := w.Flush(); err != nil {
			return printError(stdio, err)
		}
		return nil
	}

	if err := codegen.Generate(out, prog, opts); err != nil {
		return printError(stdio, err)
	}
	return nil
}
