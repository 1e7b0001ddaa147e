package source

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

type StringID uint32

const NoStringID StringID = 0

// Interner maps VHDL designators to stable IDs. Two spellings of the same
// basic identifier intern to the same ID: names are NFC-normalized and, for
// basic identifiers, case-folded before lookup, so "Ent", "ENT" and "ent"
// are the same symbol. Extended identifiers (backslash-delimited) keep their
// case. The first spelling seen is the one Lookup returns.
type Interner struct {
	byID  []string            // id -> first-seen spelling (byID[0] = "" for NoStringID)
	index map[string]StringID // canonical key -> id
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// canonical produces the lookup key for a designator.
func canonical(s string) string {
	s = norm.NFC.String(s)
	if strings.HasPrefix(s, `\`) {
		// Extended identifiers are case-sensitive.
		return s
	}
	return strings.ToLower(s)
}

// Intern inserts a designator and returns its ID. A designator already known
// under another spelling returns the existing ID.
func (i *Interner) Intern(s string) StringID {
	key := canonical(s)
	if id, ok := i.index[key]; ok {
		return id
	}

	// Copy so the interner does not alias the caller's buffer.
	cpy := string([]byte(s))
	id := StringID(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.index[key] = id
	return id
}

// Lookup returns the first-seen spelling for the ID.
func (i *Interner) Lookup(id StringID) (string, bool) {
	if !i.Has(id) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup returns the spelling for the ID and panics on an invalid ID.
func (i *Interner) MustLookup(id StringID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic("invalid string ID")
	}
	return s
}

// Has reports whether the ID is valid.
func (i *Interner) Has(id StringID) bool {
	return int(id) >= 0 && int(id) < len(i.byID)
}

// Len returns the number of interned symbols, NoStringID included.
func (i *Interner) Len() int {
	return len(i.byID)
}
