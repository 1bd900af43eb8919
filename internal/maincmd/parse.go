package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/stackasm/lang/parser"
)

// Parse runs the parser phase of the compilation for each file argument
// and prints the resulting operator sequence, followed by the declared
// function table.
func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	files, err := readSources(args)
	if err != nil {
		return printError(stdio, err)
	}

	for _, f := range files {
		prog, err := parser.Parse(f.src, f.name)
		if err != nil {
			return printError(stdio, err)
		}

		fmt.Fprintf(stdio.Stdout, "; %s: %d top-level operator(s)\n", f.name, len(prog.Operators))
		for i, op := range prog.Operators {
			fmt.Fprintf(stdio.Stdout, "%4d  %s\n", i, op)
		}

		for _, name := range prog.SortedFunctionNames() {
			fn, _ := prog.Function(name)
			kind := "defined"
			if fn.IsExternallyDefined {
				kind = "extern"
			}
			fmt.Fprintf(stdio.Stdout, "; func %s (%s): %v -> %v\n", fn.Name, kind, fn.InputContract, fn.OutputContract)
			for i, op := range fn.Operators {
				fmt.Fprintf(stdio.Stdout, "%4d  %s\n", i, op)
			}
		}
	}
	return nil
}
