package codegen

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// stringTable assigns stable labels to interned string literal payloads,
// in first-seen encounter order (str_0, str_1, ...).
//
// By default every PUSH_STRING occurrence gets its own fresh label, even
// if its payload duplicates an earlier one, preserving positional
// distinctness the way the reference generator does. Constructing the
// table with dedup enabled backs lookup with a swiss hash map so that
// identical payloads share one label instead.
type stringTable struct {
	dedup   bool
	labels  []string                   // in encounter order, parallel to payloads
	payload []string                   // payload for labels[i]
	index   *swiss.Map[string, string] // payload -> label, only used when dedup
}

// newStringTable returns an empty table. When dedup is true, interning
// the same payload twice returns the same label; otherwise every call
// returns a fresh label.
func newStringTable(dedup bool) *stringTable {
	t := &stringTable{dedup: dedup}
	if dedup {
		t.index = swiss.NewMap[string, string](8)
	}
	return t
}

// intern returns a stable label for payload, assigning a fresh one
// (str_<n>, in encounter order) the first time a given payload is seen
// under dedup mode, or every time under positional mode.
func (t *stringTable) intern(payload string) string {
	if t.dedup {
		if label, ok := t.index.Get(payload); ok {
			return label
		}
	}
	label := fmt.Sprintf("str_%d", len(t.labels))
	t.labels = append(t.labels, label)
	t.payload = append(t.payload, payload)
	if t.dedup {
		t.index.Put(payload, label)
	}
	return label
}

// each calls fn for every interned label in encounter order.
func (t *stringTable) each(fn func(label, payload string)) {
	for i, label := range t.labels {
		fn(label, t.payload[i])
	}
}
