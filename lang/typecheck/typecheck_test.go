package typecheck

import (
	"testing"

	"github.com/mna/stackasm/lang/ir"
	"github.com/mna/stackasm/lang/parser"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *ir.Program {
	t.Helper()
	prog, err := parser.Parse([]byte(src), "t.stk")
	require.NoError(t, err)
	return prog
}

func TestValidateEmptyProgram(t *testing.T) {
	prog := mustParse(t, ``)
	require.NoError(t, Validate(prog))
}

func TestValidateSimpleArithmetic(t *testing.T) {
	prog := mustParse(t, `34 35 + drop`)
	require.NoError(t, Validate(prog))
}

func TestValidateNonEmptyStackAtEnd(t *testing.T) {
	prog := mustParse(t, `34 35`)
	err := Validate(prog)
	require.Error(t, err)
	var target *NonEmptyStackAtEndError
	require.ErrorAs(t, err, &target)
	require.Equal(t, 2, target.StackSize)
}

func TestValidateInsufficientOperands(t *testing.T) {
	prog := mustParse(t, `34 +`)
	err := Validate(prog)
	require.Error(t, err)
	var target *InsufficientOperandsError
	require.ErrorAs(t, err, &target)
}

func TestValidatePointerPlusIntegerAccepted(t *testing.T) {
	// A function taking (ptr, int) and returning ptr exercises the
	// accepted direction of the asymmetric PLUS rule.
	prog := mustParse(t, `
func advance : ptr int -> ptr in
  +
end
`)
	require.NoError(t, Validate(prog))
}

func TestValidateIntegerPlusPointerRejected(t *testing.T) {
	prog := mustParse(t, `
func bad : int ptr -> ptr in
  +
end
`)
	err := Validate(prog)
	require.Error(t, err)
	var target *InvalidPointerArithmeticError
	require.ErrorAs(t, err, &target)
}

func TestValidateBinaryMathRejectsPointer(t *testing.T) {
	prog := mustParse(t, `
func bad : ptr int -> int in
  *
end
`)
	err := Validate(prog)
	require.Error(t, err)
	var target *InvalidBinaryMathArithmeticError
	require.ErrorAs(t, err, &target)
}

func TestValidateComparisonProducesBoolean(t *testing.T) {
	prog := mustParse(t, `1 2 < if 3 drop end`)
	require.NoError(t, Validate(prog))
}

func TestValidateStringSwapDrop(t *testing.T) {
	// a string pushes ptr then len; swapping and dropping both empties it
	prog := mustParse(t, `"hi" swap drop drop`)
	require.NoError(t, Validate(prog))
}

func TestValidateStringPointerArithmetic(t *testing.T) {
	// dropping the length leaves a ptr, which accepts + with an int
	prog := mustParse(t, `"x" drop 1 + drop`)
	require.NoError(t, Validate(prog))
}

func TestValidatePointerOnUpperSlotRejected(t *testing.T) {
	prog := mustParse(t, `5 "x" drop +`)
	err := Validate(prog)
	require.Error(t, err)
	var target *InvalidPointerArithmeticError
	require.ErrorAs(t, err, &target)
}

func TestValidateCopyPreservesType(t *testing.T) {
	prog := mustParse(t, `
func dup_bool : bool -> bool bool in
  dup
end
`)
	require.NoError(t, Validate(prog))
}

func TestValidateSwapTwiceUnchanged(t *testing.T) {
	prog := mustParse(t, `
func noop : int bool -> int bool in
  swap swap
end
`)
	require.NoError(t, Validate(prog))
}

func TestValidateUnknownCallTarget(t *testing.T) {
	prog := mustParse(t, `undefined_function`)
	err := Validate(prog)
	require.Error(t, err)
	var target *UnknownCallTargetError
	require.ErrorAs(t, err, &target)
	require.Equal(t, "undefined_function", target.Name)
}

func TestValidateCallRespectsContract(t *testing.T) {
	prog := mustParse(t, `
func add : int int -> int in
  +
end

1 2 add drop
`)
	require.NoError(t, Validate(prog))
}

func TestValidateExternCallUsesDeclaredContract(t *testing.T) {
	prog := mustParse(t, `
extern write : ptr int -> int

"hi" write drop
`)
	require.NoError(t, Validate(prog))
}

func TestValidateMemoryLoadStoreRequirePointerInteger(t *testing.T) {
	prog := mustParse(t, `
func bad : int int -> int in
  @
end
`)
	err := Validate(prog)
	require.Error(t, err)
	var target *InvalidArgumentTypeError
	require.ErrorAs(t, err, &target)
}

func TestValidateMemoryLoadStoreAccepted(t *testing.T) {
	prog := mustParse(t, `
func peek : ptr int -> int in
  @
end

func poke : ptr int int -> in
  !
end
`)
	require.NoError(t, Validate(prog))
}

func TestValidateSyscallWithInjectedArgsAndOmitResult(t *testing.T) {
	prog := mustParse(t, `syscall0`)
	num := int64(1)
	prog.Operators[0].Optimization = &ir.Optimization{
		SyscallOmitResult:   true,
		SyscallInjectedArgs: []*int64{&num},
	}
	require.NoError(t, Validate(prog))
}

func TestValidateWhileLoop(t *testing.T) {
	prog := mustParse(t, `
0
while dup 10 < do
  1 +
end
drop
`)
	require.NoError(t, Validate(prog))
}

func TestValidateIfDoesNotLeakIntoStackBalance(t *testing.T) {
	// if/end with no else: both paths must leave the stack shape untouched
	// for the check after `end` to hold.
	prog := mustParse(t, `1 2 < if 3 drop end 4 drop`)
	require.NoError(t, Validate(prog))
}
