// Package codegen lowers a type-checked *ir.Program to ARM64/Darwin
// assembly text.
//
// The data stack lives on the hardware SP in 16-byte slots so SP stays
// aligned; syscalls take their number in X16 and arguments in X0-X5,
// trapping with svc #0. Functions are emitted as plain labels called
// with bl, entry is the global _start symbol.
package codegen

import (
	"fmt"
	"io"
	"time"

	"github.com/mna/stackasm/lang/ir"
)

// Options controls optional generator behavior.
type Options struct {
	// DebugComments, when true, emits a header banner and a per-operator
	// source comment ahead of each instruction group.
	DebugComments bool

	// DedupStrings, when true, backs the string intern table with a
	// dedup index so identical literal payloads share one label.
	DedupStrings bool

	// Now supplies the timestamp for the debug header banner. Defaults to
	// time.Now if the zero value is passed.
	Now time.Time
}

// Generate writes prog's ARM64/Darwin assembly text to w. prog is
// assumed to have already passed typecheck.Validate; Generate itself
// only raises the two structural errors a malformed *ir.Program can
// still trigger: an unknown call target or an operator kind it does not
// recognize.
func Generate(w io.Writer, prog *ir.Program, opts Options) error {
	g := &generator{
		asm:     newAsmWriter(w),
		prog:    prog,
		strings: newStringTable(opts.DedupStrings),
		opts:    opts,
	}
	return g.run()
}

type generator struct {
	asm     *asmWriter
	prog    *ir.Program
	strings *stringTable
	opts    Options
	err     error
}

func (g *generator) run() error {
	if g.opts.DebugComments {
		g.writeDebugHeader()
	}

	g.writeFunctionDeclarations()
	if g.err != nil {
		return g.err
	}

	g.asm.raw(".global _start")
	g.asm.raw(".align 4")
	g.asm.raw("")
	g.asm.label("_start")

	g.writeBody("", g.prog.Operators)
	if g.err != nil {
		return g.err
	}

	g.writeProgramEpilogue()
	g.writeStaticSegment()

	if err := g.asm.flush(); err != nil {
		return err
	}
	return g.err
}

func (g *generator) writeDebugHeader() {
	g.asm.raw("// Assembly generated by stackasm codegen backend")
	g.asm.raw("//")
	now := g.opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	g.asm.raw(fmt.Sprintf("// Generated at: %s", now.Format(time.RFC3339)))
	g.asm.raw("// Target: ARM64, Darwin")
	g.asm.raw("")
}

// writeFunctionDeclarations emits a callable label for every function
// that has a real body, in a deterministic (sorted) order so output is
// stable across runs despite the function table being a hash map.
func (g *generator) writeFunctionDeclarations() {
	for _, name := range g.prog.SortedFunctionNames() {
		fn, _ := g.prog.Function(name)
		if fn.EmitInlineBody || fn.IsExternallyDefined {
			continue
		}
		g.asm.label(fn.Name)
		g.writeBody(fn.Name, fn.Operators)
		if g.err != nil {
			return
		}
		g.asm.write("ret")
	}
}

func (g *generator) writeProgramEpilogue() {
	if g.opts.DebugComments {
		g.asm.raw("// Program epilogue (exit code 0, always included)")
	}
	g.asm.write(
		"mov X0, #0",
		"mov X16, #1",
		"svc #0",
	)
}

func (g *generator) writeStaticSegment() {
	g.asm.raw("mem_buffer: .space 1000")
	g.strings.each(func(label, payload string) {
		g.asm.raw(fmt.Sprintf("%s: .string %q", label, payload))
	})
}

// ctxLabel and ctxOverLabel name the labels for operator index i within
// the sequence identified by scope (the owning function's name, or ""
// for the top-level program). Computed lazily from the index, never
// stored, per the construct's position in its enclosing sequence; scope
// is prefixed so sequences with overlapping local indices (e.g. two
// functions each with an `if` at local index 2) don't collide in the
// single flat assembly namespace.
func ctxLabel(scope string, i int) string {
	if scope == "" {
		return fmt.Sprintf(".ctx_%d", i)
	}
	return fmt.Sprintf(".ctx_%s_%d", scope, i)
}

func ctxOverLabel(scope string, i int) string {
	return ctxLabel(scope, i) + "_over"
}

func (g *generator) fail(err error) {
	if g.err == nil {
		g.err = err
	}
}
