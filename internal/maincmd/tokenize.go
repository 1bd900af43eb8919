package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/stackasm/lang/lexer"
)

// Tokenize runs the lexer phase of the compilation for each file argument
// and prints the resulting tokens, one per line, each followed by its
// source position.
func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	files, err := readSources(args)
	if err != nil {
		return printError(stdio, err)
	}

	for _, f := range files {
		toks, err := lexer.Lex(f.src, f.name)
		if err != nil {
			return printError(stdio, err)
		}
		for _, tok := range toks {
			fmt.Fprintf(stdio.Stdout, "%s\n", tok)
		}
	}
	return nil
}
