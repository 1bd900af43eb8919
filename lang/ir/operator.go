package ir

import (
	"fmt"

	"github.com/mna/stackasm/lang/token"
)

// OperatorKind is the closed set of operator shapes produced by the
// parser.
type OperatorKind int8

const ( //nolint:revive
	PUSH_INTEGER OperatorKind = iota
	PUSH_STRING
	INTRINSIC
	IF
	DO
	WHILE
	END
	CALL

	maxOperatorKind
)

var operatorKindNames = [...]string{
	PUSH_INTEGER: "push_integer",
	PUSH_STRING:  "push_string",
	INTRINSIC:    "intrinsic",
	IF:           "if",
	DO:           "do",
	WHILE:        "while",
	END:          "end",
	CALL:         "call",
}

func (k OperatorKind) String() string {
	if k >= 0 && k < maxOperatorKind {
		if s := operatorKindNames[k]; s != "" {
			return s
		}
	}
	return fmt.Sprintf("illegal operator kind (%d)", k)
}

// Optimization carries optional compile-time refinements attached to an
// Operator by the parser or an optimization pass. A zero-value
// Optimization changes nothing.
type Optimization struct {
	// InferTypeAfterOptimization, if non-nil, overrides the semantic type
	// a PUSH_INTEGER operator pushes.
	InferTypeAfterOptimization *SemanticType

	// SyscallOmitResult, if true, suppresses pushing the syscall's return
	// value.
	SyscallOmitResult bool

	// SyscallInjectedArgs, if non-nil, has one entry per syscall argument
	// position (arity-many). A nil entry means "pop from the stack at
	// runtime"; a non-nil entry is a compile-time-known immediate value
	// that is emitted directly and not popped.
	SyscallInjectedArgs []*int64
}

// HasOptimizations reports whether opt carries any non-default field.
func (opt *Optimization) HasOptimizations() bool {
	if opt == nil {
		return false
	}
	return opt.InferTypeAfterOptimization != nil || opt.SyscallOmitResult || opt.SyscallInjectedArgs != nil
}

// Operator is one instruction in a parsed operator sequence: its kind, its
// operand (whose concrete type depends on Kind), the source token it was
// parsed from, an optional jump target index for structured control flow,
// and an optional optimization block.
type Operator struct {
	Kind  OperatorKind
	Token token.Token

	// Operand holds, depending on Kind:
	//   PUSH_INTEGER -> int64
	//   PUSH_STRING  -> string (raw payload, unescaped, unquoted)
	//   INTRINSIC    -> Intrinsic
	//   CALL         -> string (callee name)
	// IF, DO, WHILE, END carry no operand.
	Operand any

	// JumpsTo is the index, within the enclosing operator sequence, that
	// this operator branches to. Set by the parser for IF and DO, and for
	// an END that closes a while/do loop (pointing back at the WHILE); nil
	// otherwise (or until wired).
	JumpsTo *int

	// Optimization carries optional compile-time refinements; nil means
	// none.
	Optimization *Optimization
}

// IntegerOperand returns the operand as an int64, and whether Kind ==
// PUSH_INTEGER.
func (o *Operator) IntegerOperand() (int64, bool) {
	if o.Kind != PUSH_INTEGER {
		return 0, false
	}
	v, _ := o.Operand.(int64)
	return v, true
}

// StringOperand returns the operand as a string, and whether Kind ==
// PUSH_STRING.
func (o *Operator) StringOperand() (string, bool) {
	if o.Kind != PUSH_STRING {
		return "", false
	}
	v, _ := o.Operand.(string)
	return v, true
}

// IntrinsicOperand returns the operand as an Intrinsic, and whether Kind
// == INTRINSIC.
func (o *Operator) IntrinsicOperand() (Intrinsic, bool) {
	if o.Kind != INTRINSIC {
		return 0, false
	}
	v, _ := o.Operand.(Intrinsic)
	return v, true
}

// CallTarget returns the operand as a callee name, and whether Kind ==
// CALL.
func (o *Operator) CallTarget() (string, bool) {
	if o.Kind != CALL {
		return "", false
	}
	v, _ := o.Operand.(string)
	return v, true
}

func (o *Operator) String() string {
	if o.Operand != nil {
		return fmt.Sprintf("%s(%v) at %s", o.Kind, o.Operand, o.Token.Pos)
	}
	return fmt.Sprintf("%s at %s", o.Kind, o.Token.Pos)
}
