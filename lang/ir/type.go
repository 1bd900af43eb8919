// Package ir defines the shared data model produced by the parser and
// consumed by the type-checker and code generator: semantic types,
// operators, intrinsics, function records and the program context.
package ir

import "fmt"

// SemanticType is the closed set of abstract stack-slot types tracked by
// the type-checker. There is no subtyping: equality is nominal.
type SemanticType int8

const ( //nolint:revive
	INTEGER SemanticType = iota
	POINTER
	BOOLEAN

	maxSemanticType
)

var semanticTypeNames = [...]string{
	INTEGER: "int",
	POINTER: "ptr",
	BOOLEAN: "bool",
}

func (t SemanticType) String() string {
	if t >= 0 && t < maxSemanticType {
		if s := semanticTypeNames[t]; s != "" {
			return s
		}
	}
	return fmt.Sprintf("illegal type (%d)", t)
}
