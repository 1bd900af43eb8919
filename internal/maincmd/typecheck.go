package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/stackasm/lang/parser"
	"github.com/mna/stackasm/lang/typecheck"
)

// Typecheck runs the lexer, parser and type-checker phases of the
// compilation for each file argument, reporting the first type error
// encountered, or confirming the program is well-typed.
func (c *Cmd) Typecheck(ctx context.Context, stdio mainer.Stdio, args []string) error {
	files, err := readSources(args)
	if err != nil {
		return printError(stdio, err)
	}

	for _, f := range files {
		prog, err := parser.Parse(f.src, f.name)
		if err != nil {
			return printError(stdio, err)
		}
		if err := typecheck.Validate(prog); err != nil {
			return printError(stdio, err)
		}
		fmt.Fprintf(stdio.Stdout, "%s: ok\n", f.name)
	}
	return nil
}
