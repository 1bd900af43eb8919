// Package optimizer applies the peephole pass the compile pipeline can
// run between parsing and type-checking: a constant pushed immediately
// before a syscall is folded into the syscall's injected-argument block,
// so the backend emits it as an immediate instead of a stack slot.
package optimizer

import "github.com/mna/stackasm/lang/ir"

// Program rewrites prog's entry-point sequence and every declared
// function body in place, folding constant syscall numbers. Jump targets
// are renumbered to account for removed operators, so the sequences stay
// consistent for the type-checker and the code generator.
func Program(prog *ir.Program) {
	prog.Operators = foldSyscallNumbers(prog.Operators)
	prog.EachFunction(func(_ string, fn *ir.Function) bool {
		fn.Operators = foldSyscallNumbers(fn.Operators)
		return false
	})
}

// foldSyscallNumbers scans ops for a PUSH_INTEGER immediately followed by
// a syscall intrinsic. The pushed constant becomes the syscall's last
// injected argument (the syscall-number slot) and the push is removed.
func foldSyscallNumbers(ops []*ir.Operator) []*ir.Operator {
	for i := 0; i < len(ops)-1; i++ {
		push, sys := ops[i], ops[i+1]
		if push.Kind != ir.PUSH_INTEGER || push.Optimization.HasOptimizations() {
			continue
		}
		intr, ok := sys.IntrinsicOperand()
		if !ok || !intr.IsSyscall() {
			continue
		}
		if sys.Optimization != nil && sys.Optimization.SyscallInjectedArgs != nil {
			continue
		}

		v, _ := push.IntegerOperand()
		injected := make([]*int64, intr.SyscallArity())
		injected[len(injected)-1] = &v
		if sys.Optimization == nil {
			sys.Optimization = &ir.Optimization{}
		}
		sys.Optimization.SyscallInjectedArgs = injected

		ops = removeAt(ops, i)
	}
	return ops
}

// removeAt deletes ops[i] and renumbers every JumpsTo link that points
// past the removed position.
func removeAt(ops []*ir.Operator, i int) []*ir.Operator {
	ops = append(ops[:i], ops[i+1:]...)
	for _, op := range ops {
		if op.JumpsTo != nil && *op.JumpsTo > i {
			target := *op.JumpsTo - 1
			op.JumpsTo = &target
		}
	}
	return ops
}
