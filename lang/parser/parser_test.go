package parser

import (
	"testing"

	"github.com/mna/stackasm/lang/ir"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleArithmetic(t *testing.T) {
	prog, err := Parse([]byte(`34 35 + drop`), "t.stk")
	require.NoError(t, err)
	require.Len(t, prog.Operators, 4)
	require.Equal(t, ir.PUSH_INTEGER, prog.Operators[0].Kind)
	require.Equal(t, ir.PUSH_INTEGER, prog.Operators[1].Kind)
	require.Equal(t, ir.INTRINSIC, prog.Operators[2].Kind)
	intr, _ := prog.Operators[2].IntrinsicOperand()
	require.Equal(t, ir.PLUS, intr)
	require.Equal(t, ir.INTRINSIC, prog.Operators[3].Kind)
}

func TestParseIfEnd(t *testing.T) {
	prog, err := Parse([]byte(`1 if 2 drop end`), "t.stk")
	require.NoError(t, err)
	// ops: PUSH_INTEGER(0) IF(1) PUSH_INTEGER(2) INTRINSIC drop(3) END(4)
	require.Len(t, prog.Operators, 5)
	ifOp := prog.Operators[1]
	require.Equal(t, ir.IF, ifOp.Kind)
	require.NotNil(t, ifOp.JumpsTo)
	require.Equal(t, 4, *ifOp.JumpsTo)
}

func TestParseWhileDoEnd(t *testing.T) {
	prog, err := Parse([]byte(`while 1 do 2 drop end`), "t.stk")
	require.NoError(t, err)
	// ops: WHILE(0) PUSH_INTEGER(1) DO(2) PUSH_INTEGER(3) INTRINSIC(4) END(5)
	require.Len(t, prog.Operators, 6)
	whileOp := prog.Operators[0]
	doOp := prog.Operators[2]
	endOp := prog.Operators[5]

	require.Equal(t, ir.WHILE, whileOp.Kind)
	require.Equal(t, ir.DO, doOp.Kind)
	require.Equal(t, ir.END, endOp.Kind)

	require.NotNil(t, doOp.JumpsTo)
	require.Equal(t, 5, *doOp.JumpsTo)
	require.NotNil(t, endOp.JumpsTo)
	require.Equal(t, 0, *endOp.JumpsTo)
}

func TestParseUnclosedIf(t *testing.T) {
	_, err := Parse([]byte(`1 if 2 drop`), "t.stk")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unclosed")
}

func TestParseStrayEnd(t *testing.T) {
	_, err := Parse([]byte(`1 end`), "t.stk")
	require.Error(t, err)
}

func TestParseDoWithoutWhile(t *testing.T) {
	_, err := Parse([]byte(`1 do 2 end`), "t.stk")
	require.Error(t, err)
}

func TestParseFuncDecl(t *testing.T) {
	prog, err := Parse([]byte(`
func add : int int -> int in
  +
end

34 35 add drop
`), "t.stk")
	require.NoError(t, err)
	fn, ok := prog.Function("add")
	require.True(t, ok)
	require.Equal(t, []ir.SemanticType{ir.INTEGER, ir.INTEGER}, fn.InputContract)
	require.Equal(t, []ir.SemanticType{ir.INTEGER}, fn.OutputContract)
	require.Len(t, fn.Operators, 1)
	require.False(t, fn.IsExternallyDefined)

	require.Len(t, prog.Operators, 4)
	call := prog.Operators[2]
	require.Equal(t, ir.CALL, call.Kind)
	name, _ := call.CallTarget()
	require.Equal(t, "add", name)
}

func TestParseExternDecl(t *testing.T) {
	prog, err := Parse([]byte(`extern write : ptr int -> int`), "t.stk")
	require.NoError(t, err)
	fn, ok := prog.Function("write")
	require.True(t, ok)
	require.True(t, fn.IsExternallyDefined)
	require.True(t, prog.IsExternFunction("write"))
	require.Equal(t, []ir.SemanticType{ir.POINTER, ir.INTEGER}, fn.InputContract)
	require.Equal(t, []ir.SemanticType{ir.INTEGER}, fn.OutputContract)
}

func TestParseFuncBodyUnclosedIf(t *testing.T) {
	_, err := Parse([]byte(`
func f : -> in
  1 if 2 drop
end
`), "t.stk")
	require.Error(t, err)
}

func TestParsePushString(t *testing.T) {
	prog, err := Parse([]byte(`"hello"`), "t.stk")
	require.NoError(t, err)
	require.Len(t, prog.Operators, 1)
	s, ok := prog.Operators[0].StringOperand()
	require.True(t, ok)
	require.Equal(t, "hello", s)
}
