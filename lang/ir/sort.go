package ir

import "golang.org/x/exp/slices"

// sortStrings sorts names in place. Isolated in its own function so the
// x/exp/slices dependency has a single, obvious call site: deterministic
// iteration over the swiss-map-backed function table.
func sortStrings(names []string) {
	slices.Sort(names)
}
