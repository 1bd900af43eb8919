package typecheck

import "github.com/mna/stackasm/lang/ir"

// abstractStack models the type shape of the runtime data stack at a
// single program point. Push appends to the right (top); pop removes
// from the right.
type abstractStack struct {
	types []ir.SemanticType
}

func newAbstractStack(initial []ir.SemanticType) *abstractStack {
	s := &abstractStack{}
	s.types = append(s.types, initial...)
	return s
}

func (s *abstractStack) push(types ...ir.SemanticType) {
	s.types = append(s.types, types...)
}

// pop removes and returns the top value. The caller must have already
// verified depth via requireDepth.
func (s *abstractStack) pop() ir.SemanticType {
	n := len(s.types)
	t := s.types[n-1]
	s.types = s.types[:n-1]
	return t
}

func (s *abstractStack) len() int {
	return len(s.types)
}

// requireDepth returns an InsufficientOperandsError if the stack holds
// fewer than n values.
func (s *abstractStack) requireDepth(op *ir.Operator, n int) error {
	if s.len() < n {
		return &InsufficientOperandsError{Operator: op, Required: n, Actual: s.len()}
	}
	return nil
}

// popAndRequire pops the top value and verifies it matches want, as used
// for the IF/DO condition, INCREMENT/DECREMENT and CALL arguments.
func (s *abstractStack) popAndRequire(op *ir.Operator, want ir.SemanticType) (ir.SemanticType, error) {
	got := s.pop()
	if got != want {
		return got, &InvalidArgumentTypeError{Operator: op, Expected: want, Actual: got}
	}
	return got, nil
}

// equalTo reports whether the stack's current type shape matches want
// exactly, element for element.
func (s *abstractStack) equalTo(want []ir.SemanticType) bool {
	if len(s.types) != len(want) {
		return false
	}
	for i, t := range s.types {
		if t != want[i] {
			return false
		}
	}
	return true
}
