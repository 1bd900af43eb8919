package codegen

import (
	"fmt"

	"github.com/mna/stackasm/lang/ir"
	"github.com/mna/stackasm/lang/typecheck"
)

// writeBody emits the instruction sequence for ops, which belongs to the
// sequence named scope ("" for the top-level program, otherwise the
// owning function's name) for label-namespacing purposes.
func (g *generator) writeBody(scope string, ops []*ir.Operator) {
	for i, op := range ops {
		if g.err != nil {
			return
		}
		if g.opts.DebugComments {
			g.writeDebugOperatorComment(op)
		}
		g.writeOperator(scope, i, op)
	}
}

func (g *generator) writeDebugOperatorComment(op *ir.Operator) {
	var comment string
	if op.Kind == ir.INTRINSIC {
		intr, _ := op.IntrinsicOperand()
		comment = fmt.Sprintf("// Intrinsic %s", intr)
	} else {
		comment = fmt.Sprintf("// Operator %s", op.Kind)
	}
	comment += fmt.Sprintf(" from %s", op.Token.Pos)
	if op.Optimization.HasOptimizations() {
		if intr, ok := op.IntrinsicOperand(); ok && intr.IsSyscall() {
			comment += fmt.Sprintf(" [optimized, omit result: %t, injected args: %v]",
				op.Optimization.SyscallOmitResult, op.Optimization.SyscallInjectedArgs)
		} else {
			inferred := "as-is"
			if op.Optimization.InferTypeAfterOptimization != nil {
				inferred = op.Optimization.InferTypeAfterOptimization.String()
			}
			comment += fmt.Sprintf(" [optimized, infer type: %s]", inferred)
		}
	}
	g.asm.raw(comment)
}

func (g *generator) writeOperator(scope string, index int, op *ir.Operator) {
	switch op.Kind {
	case ir.PUSH_INTEGER:
		v, _ := op.IntegerOperand()
		g.asm.write(
			"sub SP, SP, #16",
			fmt.Sprintf("mov X0, #%d", v),
			"str X0, [SP]",
		)

	case ir.PUSH_STRING:
		payload, _ := op.StringOperand()
		label := g.strings.intern(payload)
		g.asm.write(
			"sub SP, SP, #16",
			fmt.Sprintf("adr X0, %s", label),
			"str X0, [SP]",
			"sub SP, SP, #16",
			fmt.Sprintf("mov X0, #%d", len(payload)),
			"str X0, [SP]",
		)

	case ir.DO:
		g.asm.write(
			"ldr X0, [SP]",
			"add SP, SP, #16",
			"cmp X0, #1",
			fmt.Sprintf("bne %s", ctxOverLabel(scope, *op.JumpsTo)),
		)

	case ir.IF:
		g.asm.write(
			"ldr X0, [SP]",
			"add SP, SP, #16",
			"cmp X0, #1",
			fmt.Sprintf("bne %s", ctxLabel(scope, *op.JumpsTo)),
		)

	case ir.END, ir.WHILE:
		if op.JumpsTo != nil {
			g.asm.write(fmt.Sprintf("b %s", ctxLabel(scope, *op.JumpsTo)))
			g.asm.label(ctxOverLabel(scope, index))
		} else {
			g.asm.label(ctxLabel(scope, index))
		}

	case ir.INTRINSIC:
		intr, _ := op.IntrinsicOperand()
		g.writeIntrinsic(op, intr)

	case ir.CALL:
		g.writeCall(op)

	default:
		g.fail(&typecheck.UnimplementedOperatorError{Operator: op})
	}
}

func (g *generator) writeIntrinsic(op *ir.Operator, intr ir.Intrinsic) {
	switch intr {
	case ir.MEMORY_LOAD:
		g.asm.write(
			"ldr X0, [SP]",
			"ldr X1, [X0]",
			"str X1, [SP]",
		)
	case ir.MEMORY_STORE:
		g.asm.write(
			"ldr X0, [SP]",
			"add SP, SP, #16",
			"ldr X1, [SP]",
			"add SP, SP, #16",
			"str X0, [X1]",
		)
	case ir.DROP:
		g.asm.write("add SP, SP, #16")
	case ir.PLUS:
		g.asm.write(
			"ldr X0, [SP]",
			"add SP, SP, #16",
			"ldr X1, [SP]",
			"add SP, SP, #16",
			"add X0, X1, X0",
			"sub SP, SP, #16",
			"str X0, [SP]",
		)
	case ir.MINUS:
		g.asm.write(
			"ldr X0, [SP]",
			"add SP, SP, #16",
			"ldr X1, [SP]",
			"add SP, SP, #16",
			"sub X0, X1, X0",
			"sub SP, SP, #16",
			"str X0, [SP]",
		)
	case ir.COPY:
		g.asm.write(
			"ldr X0, [SP]",
			"str X0, [SP]",
			"sub SP, SP, #16",
			"str X0, [SP]",
		)
	case ir.INCREMENT:
		g.asm.write(
			"ldr X0, [SP]",
			"add X0, X0, #1",
			"str X0, [SP]",
		)
	case ir.DECREMENT:
		g.asm.write(
			"ldr X0, [SP]",
			"sub X0, X0, #1",
			"str X0, [SP]",
		)
	case ir.MULTIPLY:
		g.asm.write(
			"ldr X0, [SP]",
			"add SP, SP, #16",
			"ldr X1, [SP]",
			"add SP, SP, #16",
			"mul X0, X1, X0",
			"sub SP, SP, #16",
			"str X0, [SP]",
		)
	case ir.DIVIDE:
		g.asm.write(
			"ldr X0, [SP]",
			"add SP, SP, #16",
			"ldr X1, [SP]",
			"add SP, SP, #16",
			"sdiv X0, X1, X0",
			"sub SP, SP, #16",
			"str X0, [SP]",
		)
	case ir.MODULUS:
		g.asm.write(
			"ldr X0, [SP]",
			"add SP, SP, #16",
			"ldr X1, [SP]",
			"add SP, SP, #16",
			"udiv X2, X1, X0",
			"mul X2, X2, X0",
			"sub X0, X1, X2",
			"sub SP, SP, #16",
			"str X0, [SP]",
		)
	case ir.NOT_EQUAL:
		g.writeComparison("ne", true)
	case ir.GREATER_EQUAL_THAN:
		g.writeComparison("ge", false)
	case ir.LESS_EQUAL_THAN:
		g.writeComparison("le", true)
	case ir.LESS_THAN:
		g.writeComparison("lt", true)
	case ir.GREATER_THAN:
		g.writeComparison("gt", false)
	case ir.EQUAL:
		g.writeComparison("eq", true)
	case ir.SWAP:
		g.asm.write(
			"ldr X0, [SP]",
			"add SP, SP, #16",
			"ldr X1, [SP]",
			"str X0, [SP]",
			"sub SP, SP, #16",
			"str X1, [SP]",
		)
	default:
		if intr.IsSyscall() {
			g.writeSyscall(op, intr)
			return
		}
		g.fail(&typecheck.UnimplementedOperatorError{Operator: op})
	}
}

// writeComparison emits a cmp/cset pair for a comparison intrinsic.
// swapped selects which operand load order is used: when swapped (==, !=,
// <, <=) the top value is popped into X1 and the deeper (first-pushed)
// one into X0, so cmp X0, X1 tests (deeper op top); otherwise (>, >=) the
// top value goes to X0 and the deeper one to X1, so the condition
// applies to (top op deeper).
func (g *generator) writeComparison(cond string, swapped bool) {
	if swapped {
		g.asm.write(
			"ldr X1, [SP]",
			"add SP, SP, #16",
			"ldr X0, [SP]",
			"add SP, SP, #16",
		)
	} else {
		g.asm.write(
			"ldr X0, [SP]",
			"add SP, SP, #16",
			"ldr X1, [SP]",
			"add SP, SP, #16",
		)
	}
	g.asm.write(
		"cmp X0, X1",
		fmt.Sprintf("cset X0, %s", cond),
		"sub SP, SP, #16",
		"str X0, [SP]",
	)
}

func (g *generator) writeSyscall(op *ir.Operator, intr ir.Intrinsic) {
	arity := intr.SyscallArity()

	injected := make([]*int64, arity)
	if op.Optimization.HasOptimizations() {
		copy(injected, op.Optimization.SyscallInjectedArgs)
	}

	last := injected[arity-1]
	if last == nil {
		g.asm.write("ldr X16, [SP]", "add SP, SP, #16")
	} else {
		g.asm.writef("mov X16, #%d", *last)
	}

	for r := arity - 2; r >= 0; r-- {
		if inj := injected[r]; inj != nil {
			g.asm.writef("mov X%d, #%d", r, *inj)
		} else {
			g.asm.writef("ldr X%d, [SP]", r)
			g.asm.write("add SP, SP, #16")
		}
	}

	g.asm.write("svc #0")

	omitResult := op.Optimization.HasOptimizations() && op.Optimization.SyscallOmitResult
	if !omitResult {
		g.asm.write("sub SP, SP, #16", "str X0, [SP]")
	}
}

func (g *generator) writeCall(op *ir.Operator) {
	name, _ := op.CallTarget()
	fn, ok := g.prog.Function(name)
	if !ok {
		g.fail(&typecheck.UnknownCallTargetError{Operator: op, Name: name})
		return
	}

	if fn.IsExternallyDefined {
		for argRegister := len(fn.InputContract) - 1; argRegister >= 0; argRegister-- {
			g.asm.writef("ldr X%d, [SP]", argRegister)
			g.asm.write("add SP, SP, #16")
		}
	}

	g.asm.writef("bl %s", name)
	if len(fn.OutputContract) > 0 {
		g.asm.write("sub SP, SP, #16", "str X0, [SP]")
	}
}
