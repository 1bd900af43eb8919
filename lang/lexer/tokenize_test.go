package lexer_test

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"
	"github.com/mna/stackasm/internal/filetest"
	"github.com/mna/stackasm/internal/maincmd"
)

var testUpdateLexerTests = flag.Bool("test.update-lexer-tests", false, "If set, replace expected lexer test results with actual results.")

func TestTokenizeFiles(t *testing.T) {
	ctx := context.Background()
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".stk") {
		t.Run(fi.Name(), func(t *testing.T) {
			var buf, ebuf bytes.Buffer
			stdio := mainer.Stdio{
				Stdout: &buf,
				Stderr: &ebuf,
			}

			// error is ignored, we just want it to be printed to ebuf
			c := &maincmd.Cmd{}
			_ = c.Tokenize(ctx, stdio, []string{filepath.Join(srcDir, fi.Name())})
			filetest.DiffOutput(t, fi, buf.String(), resultDir, testUpdateLexerTests)
			filetest.DiffErrors(t, fi, ebuf.String(), resultDir, testUpdateLexerTests)
		})
	}
}
