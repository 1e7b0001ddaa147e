package diag

import (
	"testing"

	"govhdl/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(Error(SemNoDeclaration, source.Span{File: 1, Start: 0, End: 3}, "No declaration of 'a'")) {
		t.Fatal("first add must succeed")
	}
	if !bag.Add(Error(SemNoDeclaration, source.Span{File: 1, Start: 4, End: 7}, "No declaration of 'b'")) {
		t.Fatal("second add must succeed")
	}
	if bag.Add(Error(SemNoDeclaration, source.Span{File: 1, Start: 8, End: 11}, "No declaration of 'c'")) {
		t.Fatal("add past the limit must be dropped")
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

func TestBagSortDeterministic(t *testing.T) {
	bag := NewBag(8)
	bag.Add(Warning(SemDuplicatePrimaryUnit, source.Span{File: 2, Start: 5, End: 8}, "w"))
	bag.Add(Error(SemNoPrimaryUnit, source.Span{File: 1, Start: 10, End: 13}, "b"))
	bag.Add(Error(SemNoPrimaryUnit, source.Span{File: 1, Start: 2, End: 5}, "a"))
	bag.Add(Error(SemNoPrimaryUnit, source.Span{File: 2, Start: 5, End: 8}, "c"))

	bag.Sort()

	items := bag.Items()
	wantMsgs := []string{"a", "b", "c", "w"}
	for i, want := range wantMsgs {
		if items[i].Message != want {
			t.Fatalf("items[%d].Message = %q, want %q", i, items[i].Message, want)
		}
	}
}

func TestBagMergeGrows(t *testing.T) {
	a := NewBag(1)
	a.Add(Error(SemNoPrimaryUnit, source.Span{File: 1}, "a"))

	b := NewBag(1)
	b.Add(Error(SemNoPrimaryUnit, source.Span{File: 2}, "b"))

	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("merged Len = %d, want 2", a.Len())
	}
	if !a.HasErrors() {
		t.Fatal("merged bag must report errors")
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(4)
	span := source.Span{File: 1, Start: 0, End: 3}
	bag.Add(Error(SemNoDeclaration, span, "No declaration of 'x'"))
	bag.Add(Error(SemNoDeclaration, span, "No declaration of 'x'"))
	bag.Add(Error(SemNoPrimaryUnit, span, "other code survives"))

	bag.Dedup()
	if bag.Len() != 2 {
		t.Fatalf("Len after Dedup = %d, want 2", bag.Len())
	}
}

func TestBagReporter(t *testing.T) {
	bag := NewBag(4)
	var r Reporter = BagReporter{Bag: bag}

	r.Report(Error(SemNoPrimaryUnit, source.Span{File: 1}, "m"))
	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}

	// Nil bag and NopReporter are both safe no-ops.
	BagReporter{}.Report(Error(SemNoPrimaryUnit, source.Span{}, "m"))
	NopReporter{}.Report(Error(SemNoPrimaryUnit, source.Span{}, "m"))
}
