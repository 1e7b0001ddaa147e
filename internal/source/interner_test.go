package source

import (
	"testing"
)

func TestInternerBasic(t *testing.T) {
	interner := NewInterner()

	if s, ok := interner.Lookup(NoStringID); !ok || s != "" {
		t.Errorf("NoStringID should map to the empty string, got %q, ok=%v", s, ok)
	}

	id1 := interner.Intern("ent")
	if id1 == NoStringID {
		t.Error("Intern must not return NoStringID for a non-empty string")
	}

	id2 := interner.Intern("ent")
	if id1 != id2 {
		t.Errorf("same designator must intern to the same ID: %d != %d", id1, id2)
	}

	if s, ok := interner.Lookup(id1); !ok || s != "ent" {
		t.Errorf("Lookup returned %q, ok=%v", s, ok)
	}

	id3 := interner.Intern("arch")
	if id3 == id1 {
		t.Error("distinct designators must get distinct IDs")
	}

	if interner.Len() != 3 { // "", "ent", "arch"
		t.Errorf("Len = %d, want 3", interner.Len())
	}
}

func TestInternerCaseInsensitive(t *testing.T) {
	interner := NewInterner()

	// VHDL basic identifiers compare case-insensitively.
	lower := interner.Intern("counter")
	upper := interner.Intern("COUNTER")
	mixed := interner.Intern("Counter")
	if lower != upper || lower != mixed {
		t.Fatalf("case variants must share an ID: %d %d %d", lower, upper, mixed)
	}

	// First-seen spelling wins for display.
	if s := interner.MustLookup(lower); s != "counter" {
		t.Errorf("MustLookup = %q, want first-seen spelling %q", s, "counter")
	}
}

func TestInternerExtendedIdentifiers(t *testing.T) {
	interner := NewInterner()

	// Extended identifiers are case-sensitive.
	a := interner.Intern(`\Counter\`)
	b := interner.Intern(`\counter\`)
	if a == b {
		t.Fatalf("extended identifiers with different case must not collide")
	}

	// And they do not collide with the basic identifier of the same name.
	c := interner.Intern("counter")
	if c == a || c == b {
		t.Fatalf("basic identifier must be distinct from extended forms")
	}
}

func TestInternerMustLookupPanics(t *testing.T) {
	interner := NewInterner()

	defer func() {
		if recover() == nil {
			t.Fatal("MustLookup on an invalid ID must panic")
		}
	}()
	interner.MustLookup(StringID(999))
}
