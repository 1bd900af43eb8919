package ir

// Function is a declared function: its name, input/output contracts, body
// operators and the two flags that control how CALL lowers against it.
type Function struct {
	Name string

	// InputContract and OutputContract are the function's declared
	// parameter and return types, in source order.
	InputContract  []SemanticType
	OutputContract []SemanticType

	// Operators is the function's body, empty for externally-defined
	// functions.
	Operators []*Operator

	// EmitInlineBody, when true, tells the generator not to emit a callable
	// label and body for the function. Call sites still emit `bl NAME`;
	// the body is not spliced in at the call site.
	EmitInlineBody bool

	// IsExternallyDefined marks a function declared with `extern`: it has
	// no body in this program and is called via the platform's standard
	// calling convention rather than an internal label.
	IsExternallyDefined bool
}

// Arity returns the number of input arguments this function's contract
// declares.
func (f *Function) Arity() int {
	return len(f.InputContract)
}
