package codegen

import (
	"bufio"
	"fmt"
	"io"
)

// asmWriter streams assembly text to an io.Writer through a bufio.Writer
// rather than building the whole output in memory: the caller provides
// the sink, and text reaches it whenever the default-sized buffer fills
// and on the final flush. Lines are not flushed one at a time.
type asmWriter struct {
	w   *bufio.Writer
	err error
}

func newAsmWriter(w io.Writer) *asmWriter {
	return &asmWriter{w: bufio.NewWriter(w)}
}

// write emits each line, each indented with a single tab and terminated
// by a newline.
func (a *asmWriter) write(lines ...string) {
	if a.err != nil {
		return
	}
	for _, line := range lines {
		if _, err := a.w.WriteString("\t" + line + "\n"); err != nil {
			a.err = err
			return
		}
	}
}

// writef formats and emits a single indented line.
func (a *asmWriter) writef(format string, args ...any) {
	a.write(fmt.Sprintf(format, args...))
}

// label emits a label line (no indentation, terminated by ":\n").
func (a *asmWriter) label(name string) {
	if a.err != nil {
		return
	}
	if _, err := a.w.WriteString(name + ":\n"); err != nil {
		a.err = err
	}
}

// raw emits a line verbatim, with no indentation added.
func (a *asmWriter) raw(line string) {
	if a.err != nil {
		return
	}
	if _, err := a.w.WriteString(line + "\n"); err != nil {
		a.err = err
	}
}

// flush flushes the underlying buffered writer and returns the first
// error encountered by any write, if any.
func (a *asmWriter) flush() error {
	if a.err != nil {
		return a.err
	}
	if err := a.w.Flush(); err != nil {
		return err
	}
	return nil
}
