// Package typecheck statically validates a parsed program's operator
// sequences against the stack-oriented type-safety rules: every operator
// that consumes values requires them to already be present with the
// right semantic type, and every sequence (program entry or function
// body) must leave the abstract stack in its declared final shape.
package typecheck

import "github.com/mna/stackasm/lang/ir"

// Validate runs the type-checker over prog's entry-point operator
// sequence and, recursively, over every declared function's body (except
// externally-defined functions, which have no body to check, and
// functions flagged EmitInlineBody). It returns
// the first error encountered, or nil if the whole program is well-typed.
func Validate(prog *ir.Program) error {
	if err := validateSequence(prog, prog.Operators, nil, nil); err != nil {
		return err
	}

	var firstErr error
	prog.EachFunction(func(_ string, fn *ir.Function) bool {
		if fn.IsExternallyDefined || fn.EmitInlineBody {
			return false
		}
		if err := validateSequence(prog, fn.Operators, fn.InputContract, fn.OutputContract); err != nil {
			firstErr = err
			return true
		}
		return false
	})
	return firstErr
}

// validateSequence simulates ops against an abstract stack seeded with
// in (or empty, for the top-level program) and requires the final shape
// to equal out (or empty).
func validateSequence(prog *ir.Program, ops []*ir.Operator, in, out []ir.SemanticType) error {
	stack := newAbstractStack(in)

	for _, op := range ops {
		if err := validateOperator(prog, stack, op); err != nil {
			return err
		}
	}

	if !stack.equalTo(out) {
		return &NonEmptyStackAtEndError{StackSize: stack.len()}
	}
	return nil
}

func validateOperator(prog *ir.Program, stack *abstractStack, op *ir.Operator) error {
	switch op.Kind {
	case ir.WHILE, ir.END:
		return nil

	case ir.PUSH_INTEGER:
		typ := ir.INTEGER
		if op.Optimization.HasOptimizations() && op.Optimization.InferTypeAfterOptimization != nil {
			typ = *op.Optimization.InferTypeAfterOptimization
		}
		stack.push(typ)
		return nil

	case ir.PUSH_STRING:
		stack.push(ir.POINTER, ir.INTEGER)
		return nil

	case ir.INTRINSIC:
		intr, _ := op.IntrinsicOperand()
		return validateIntrinsic(stack, op, intr)

	case ir.IF, ir.DO:
		if err := stack.requireDepth(op, 1); err != nil {
			return err
		}
		_, err := stack.popAndRequire(op, ir.BOOLEAN)
		return err

	case ir.CALL:
		return validateCall(prog, stack, op)

	default:
		return &UnimplementedOperatorError{Operator: op}
	}
}

func validateIntrinsic(stack *abstractStack, op *ir.Operator, intr ir.Intrinsic) error {
	switch intr {
	case ir.MEMORY_STORE:
		if err := stack.requireDepth(op, 2); err != nil {
			return err
		}
		upper := stack.pop()
		if upper != ir.INTEGER {
			return &InvalidArgumentTypeError{Operator: op, Expected: ir.INTEGER, Actual: upper}
		}
		lower := stack.pop()
		if lower != ir.POINTER {
			return &InvalidArgumentTypeError{Operator: op, Expected: ir.POINTER, Actual: lower}
		}
		return nil

	case ir.MEMORY_LOAD:
		if err := stack.requireDepth(op, 2); err != nil {
			return err
		}
		upper := stack.pop()
		if upper != ir.INTEGER {
			return &InvalidArgumentTypeError{Operator: op, Expected: ir.INTEGER, Actual: upper}
		}
		lower := stack.pop()
		if lower != ir.POINTER {
			return &InvalidArgumentTypeError{Operator: op, Expected: ir.POINTER, Actual: lower}
		}
		stack.push(ir.INTEGER)
		return nil

	case ir.INCREMENT, ir.DECREMENT:
		if err := stack.requireDepth(op, 1); err != nil {
			return err
		}
		if _, err := stack.popAndRequire(op, ir.INTEGER); err != nil {
			return err
		}
		stack.push(ir.INTEGER)
		return nil

	case ir.DROP:
		if err := stack.requireDepth(op, 1); err != nil {
			return err
		}
		stack.pop()
		return nil

	case ir.EQUAL, ir.NOT_EQUAL, ir.LESS_THAN, ir.LESS_EQUAL_THAN, ir.GREATER_THAN, ir.GREATER_EQUAL_THAN:
		if err := stack.requireDepth(op, 2); err != nil {
			return err
		}
		stack.pop()
		stack.pop()
		stack.push(ir.BOOLEAN)
		return nil

	case ir.PLUS, ir.MINUS:
		return validatePlusMinus(stack, op)

	case ir.MULTIPLY, ir.DIVIDE, ir.MODULUS:
		if err := stack.requireDepth(op, 2); err != nil {
			return err
		}
		b, a := stack.pop(), stack.pop()
		if a != ir.INTEGER || b != ir.INTEGER {
			return &InvalidBinaryMathArithmeticError{Operator: op, Lower: a, Upper: b}
		}
		stack.push(ir.INTEGER)
		return nil

	case ir.COPY:
		if err := stack.requireDepth(op, 1); err != nil {
			return err
		}
		t := stack.pop()
		stack.push(t, t)
		return nil

	case ir.SWAP:
		if err := stack.requireDepth(op, 2); err != nil {
			return err
		}
		a := stack.pop()
		b := stack.pop()
		stack.push(a, b)
		return nil

	default:
		if intr.IsSyscall() {
			return validateSyscall(stack, op, intr)
		}
		return &UnimplementedOperatorError{Operator: op}
	}
}

// validatePlusMinus implements the asymmetric pointer-arithmetic rule:
// pop top two as b then a (a is the lower element). If a is POINTER, b
// must be INTEGER and the result is POINTER. Otherwise both must be
// INTEGER and the result is INTEGER.
func validatePlusMinus(stack *abstractStack, op *ir.Operator) error {
	if err := stack.requireDepth(op, 2); err != nil {
		return err
	}
	b, a := stack.pop(), stack.pop()

	if a == ir.POINTER {
		if b != ir.INTEGER {
			return &InvalidPointerArithmeticError{Operator: op, Lower: a, Upper: b}
		}
		stack.push(ir.POINTER)
		return nil
	}

	if a != ir.INTEGER || b != ir.INTEGER {
		return &InvalidPointerArithmeticError{Operator: op, Lower: a, Upper: b}
	}
	stack.push(ir.INTEGER)
	return nil
}

// validateSyscall implements the syscall arity and injected-argument
// rule: for each non-nil injected-arg slot, one INTEGER is pushed
// speculatively (it is supplied as a compile-time immediate and is not
// popped from the caller's stack) before the full arity is popped. If
// omit_result is not set, one INTEGER is pushed as the syscall's result.
func validateSyscall(stack *abstractStack, op *ir.Operator, intr ir.Intrinsic) error {
	arity := intr.SyscallArity()

	var omitResult bool
	var injected []*int64
	if op.Optimization.HasOptimizations() {
		omitResult = op.Optimization.SyscallOmitResult
		injected = op.Optimization.SyscallInjectedArgs
	}

	for _, arg := range injected {
		if arg != nil {
			stack.push(ir.INTEGER)
		}
	}

	if err := stack.requireDepth(op, arity); err != nil {
		return err
	}
	for i := 0; i < arity; i++ {
		stack.pop()
	}

	if !omitResult {
		stack.push(ir.INTEGER)
	}
	return nil
}

func validateCall(prog *ir.Program, stack *abstractStack, op *ir.Operator) error {
	name, _ := op.CallTarget()
	fn, ok := prog.Function(name)
	if !ok {
		return &UnknownCallTargetError{Operator: op, Name: name}
	}

	if err := stack.requireDepth(op, len(fn.InputContract)); err != nil {
		return err
	}
	for i := len(fn.InputContract) - 1; i >= 0; i-- {
		want := fn.InputContract[i]
		if _, err := stack.popAndRequire(op, want); err != nil {
			return err
		}
	}
	stack.push(fn.OutputContract...)
	return nil
}
