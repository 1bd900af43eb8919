package typecheck

import (
	"fmt"

	"github.com/mna/stackasm/lang/ir"
)

// InsufficientOperandsError reports that an operator required more
// operands than the abstract stack currently holds.
type InsufficientOperandsError struct {
	Operator *ir.Operator
	Required int
	Actual   int
}

func (e *InsufficientOperandsError) Error() string {
	return fmt.Sprintf("%s at %s: requires %d operand(s), stack has %d",
		e.Operator.Kind, e.Operator.Token.Pos, e.Required, e.Actual)
}

// InvalidArgumentTypeError reports that an operand at a given stack depth
// did not have the semantic type the operator required.
type InvalidArgumentTypeError struct {
	Operator *ir.Operator
	Expected ir.SemanticType
	Actual   ir.SemanticType
}

func (e *InvalidArgumentTypeError) Error() string {
	return fmt.Sprintf("%s at %s: expected %s argument, got %s",
		e.Operator.Kind, e.Operator.Token.Pos, e.Expected, e.Actual)
}

// InvalidPointerArithmeticError reports a PLUS/MINUS whose operand types
// are neither POINTER below INTEGER nor INTEGER below INTEGER (e.g. a
// POINTER lower operand with a non-INTEGER upper one, or INTEGER below
// POINTER).
type InvalidPointerArithmeticError struct {
	Operator *ir.Operator
	Lower    ir.SemanticType
	Upper    ir.SemanticType
}

func (e *InvalidPointerArithmeticError) Error() string {
	return fmt.Sprintf("%s at %s: invalid pointer arithmetic, lhs=%s rhs=%s",
		e.Operator.Kind, e.Operator.Token.Pos, e.Lower, e.Upper)
}

// InvalidBinaryMathArithmeticError reports a MULTIPLY/DIVIDE/MODULUS with
// a non-integer operand.
type InvalidBinaryMathArithmeticError struct {
	Operator *ir.Operator
	Lower    ir.SemanticType
	Upper    ir.SemanticType
}

func (e *InvalidBinaryMathArithmeticError) Error() string {
	return fmt.Sprintf("%s at %s: binary math arithmetic requires two integers, lhs=%s rhs=%s",
		e.Operator.Kind, e.Operator.Token.Pos, e.Lower, e.Upper)
}

// NonEmptyStackAtEndError reports that the abstract stack was non-empty
// (or did not match the declared output contract) at the end of an
// operator sequence.
type NonEmptyStackAtEndError struct {
	StackSize int
}

func (e *NonEmptyStackAtEndError) Error() string {
	return fmt.Sprintf("non-empty stack at end: %d residual value(s)", e.StackSize)
}

// UnknownCallTargetError reports a CALL naming a function absent from
// both the function table and the external-function set.
type UnknownCallTargetError struct {
	Operator *ir.Operator
	Name     string
}

func (e *UnknownCallTargetError) Error() string {
	return fmt.Sprintf("call at %s: unknown call target %q", e.Operator.Token.Pos, e.Name)
}

// UnimplementedOperatorError reports an operator kind the consumer (the
// type-checker or the generator) does not recognize.
type UnimplementedOperatorError struct {
	Operator *ir.Operator
}

func (e *UnimplementedOperatorError) Error() string {
	return fmt.Sprintf("unimplemented operator %s at %s", e.Operator.Kind, e.Operator.Token.Pos)
}
