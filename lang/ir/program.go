package ir

import "github.com/dolthub/swiss"

// Program is the top-level parse result: the entry point's operator
// sequence plus the function table and external-function set shared by
// the type-checker and code generator.
type Program struct {
	// Operators is the top-level (entry point) operator sequence.
	Operators []*Operator

	functions *swiss.Map[string, *Function]

	// externFunctions is the set of names declared via `extern`.
	externFunctions map[string]struct{}
}

// NewProgram returns an empty Program ready to have functions added via
// AddFunction.
func NewProgram() *Program {
	return &Program{
		functions:       swiss.NewMap[string, *Function](8),
		externFunctions: make(map[string]struct{}),
	}
}

// AddFunction registers fn in the program's function table, indexing it
// by name. If fn.IsExternallyDefined, its name is also recorded in the
// external-function set.
func (p *Program) AddFunction(fn *Function) {
	p.functions.Put(fn.Name, fn)
	if fn.IsExternallyDefined {
		p.externFunctions[fn.Name] = struct{}{}
	}
}

// Function looks up a declared function by name.
func (p *Program) Function(name string) (*Function, bool) {
	return p.functions.Get(name)
}

// IsExternFunction reports whether name was declared via `extern`.
func (p *Program) IsExternFunction(name string) bool {
	_, ok := p.externFunctions[name]
	return ok
}

// FunctionCount returns the number of declared functions.
func (p *Program) FunctionCount() int {
	return p.functions.Count()
}

// EachFunction calls fn for every declared function, in unspecified
// (hash-table) order. Use SortedFunctionNames for a deterministic
// traversal order.
func (p *Program) EachFunction(fn func(name string, f *Function) bool) {
	p.functions.Iter(fn)
}

// SortedFunctionNames returns the names of all declared functions sorted
// lexicographically, so callers that must emit output deterministically
// (e.g. the code generator) have a stable function declaration order
// despite the function table being a hash map.
func (p *Program) SortedFunctionNames() []string {
	names := make([]string, 0, p.functions.Count())
	p.functions.Iter(func(name string, _ *Function) bool {
		names = append(names, name)
		return false
	})
	sortStrings(names)
	return names
}
