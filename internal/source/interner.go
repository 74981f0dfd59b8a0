package source

import (
	"fmt"

	"fortio.org/safecast"
)

// StringID is a compact handle to an interned string (identifiers mostly).
// Zero is reserved for "no string".
type StringID uint32

const NoStringID StringID = 0

// Interner дедуплицирует строки: одинаковые идентификаторы получают один ID.
type Interner struct {
	index map[string]StringID
	items []string // items[0] зарезервирован под NoStringID
}

func NewInterner() *Interner {
	return &Interner{
		index: make(map[string]StringID),
		items: []string{""},
	}
}

// Intern returns the ID for s, allocating one on first use.
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.index[s]; ok {
		return id
	}
	lenItems, err := safecast.Conv[uint32](len(in.items))
	if err != nil {
		panic(fmt.Errorf("interner overflow: %w", err))
	}
	id := StringID(lenItems)
	in.items = append(in.items, s)
	in.index[s] = id
	return id
}

// Lookup returns the string for id; empty string for NoStringID or
// out-of-range ids.
func (in *Interner) Lookup(id StringID) string {
	if id == NoStringID || int(id) >= len(in.items) {
		return ""
	}
	return in.items[id]
}

// Len returns the number of interned strings (excluding the reserved slot).
func (in *Interner) Len() int {
	return len(in.items) - 1
}
