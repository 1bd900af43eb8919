package ir

import (
	"testing"

	"github.com/mna/stackasm/lang/token"
	"github.com/stretchr/testify/require"
)

func TestSemanticTypeString(t *testing.T) {
	for typ := SemanticType(0); typ < maxSemanticType; typ++ {
		require.NotContains(t, typ.String(), "illegal type")
	}
	require.Contains(t, maxSemanticType.String(), "illegal type")
}

func TestIntrinsicString(t *testing.T) {
	for i := Intrinsic(0); i < maxIntrinsic; i++ {
		require.NotContains(t, i.String(), "illegal intrinsic")
	}
}

func TestIntrinsicSyscallArity(t *testing.T) {
	require.Equal(t, 1, SYSCALL0.SyscallArity())
	require.Equal(t, 7, SYSCALL6.SyscallArity())
	require.Panics(t, func() { PLUS.SyscallArity() })
}

func TestIntrinsicIsComparison(t *testing.T) {
	require.True(t, EQUAL.IsComparison())
	require.True(t, GREATER_EQUAL_THAN.IsComparison())
	require.False(t, PLUS.IsComparison())
}

func TestOperatorAccessors(t *testing.T) {
	push := &Operator{Kind: PUSH_INTEGER, Operand: int64(42), Token: token.Token{Kind: token.INT, Literal: "42"}}
	v, ok := push.IntegerOperand()
	require.True(t, ok)
	require.Equal(t, int64(42), v)

	_, ok = push.StringOperand()
	require.False(t, ok)

	str := &Operator{Kind: PUSH_STRING, Operand: "hi"}
	s, ok := str.StringOperand()
	require.True(t, ok)
	require.Equal(t, "hi", s)

	intr := &Operator{Kind: INTRINSIC, Operand: SWAP}
	i, ok := intr.IntrinsicOperand()
	require.True(t, ok)
	require.Equal(t, SWAP, i)

	call := &Operator{Kind: CALL, Operand: "main"}
	name, ok := call.CallTarget()
	require.True(t, ok)
	require.Equal(t, "main", name)
}

func TestOptimizationHasOptimizations(t *testing.T) {
	var opt *Optimization
	require.False(t, opt.HasOptimizations())

	opt = &Optimization{}
	require.False(t, opt.HasOptimizations())

	opt = &Optimization{SyscallOmitResult: true}
	require.True(t, opt.HasOptimizations())
}

func TestProgramFunctionTable(t *testing.T) {
	p := NewProgram()
	p.AddFunction(&Function{Name: "add", InputContract: []SemanticType{INTEGER, INTEGER}, OutputContract: []SemanticType{INTEGER}})
	p.AddFunction(&Function{Name: "write", IsExternallyDefined: true, InputContract: []SemanticType{POINTER, INTEGER, INTEGER}, OutputContract: []SemanticType{INTEGER}})

	require.Equal(t, 2, p.FunctionCount())

	fn, ok := p.Function("add")
	require.True(t, ok)
	require.Equal(t, 2, fn.Arity())
	require.False(t, p.IsExternFunction("add"))

	require.True(t, p.IsExternFunction("write"))

	_, ok = p.Function("missing")
	require.False(t, ok)

	require.Equal(t, []string{"add", "write"}, p.SortedFunctionNames())
}
