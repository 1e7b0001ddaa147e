package testkit

import (
	"sort"
	"testing"

	"govhdl/internal/diag"
	"govhdl/internal/source"
)

// ExpectedDiagnostic pins the observable part of a diagnostic: where it
// points and what it says.
type ExpectedDiagnostic struct {
	Span    source.Span
	Message string
}

// Expect is shorthand for an expected error diagnostic.
func Expect(span source.Span, message string) ExpectedDiagnostic {
	return ExpectedDiagnostic{Span: span, Message: message}
}

// CheckNoDiagnostics fails the test when the bag is not empty.
func CheckNoDiagnostics(t *testing.T, bag *diag.Bag) {
	t.Helper()
	if bag.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %d: %+v", bag.Len(), bag.Items())
	}
}

// CheckDiagnostics fails the test unless the bag holds exactly the expected
// diagnostics, compared order-insensitively on span and message.
func CheckDiagnostics(t *testing.T, bag *diag.Bag, want []ExpectedDiagnostic) {
	t.Helper()
	items := bag.Items()
	if len(items) != len(want) {
		t.Fatalf("expected %d diagnostics, got %d: %+v", len(want), len(items), items)
	}

	matched := make([]bool, len(items))
	for _, w := range want {
		found := false
		for i, d := range items {
			if matched[i] {
				continue
			}
			if d.Primary == w.Span && d.Message == w.Message {
				matched[i] = true
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing diagnostic %q at %v; got %+v", w.Message, w.Span, items)
		}
	}
}

// CheckSpansUnordered fails the test unless got and want hold the same
// spans, in any order.
func CheckSpansUnordered(t *testing.T, got, want []source.Span) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d spans, got %d: %v vs %v", len(want), len(got), got, want)
	}

	key := func(s source.Span) [3]uint32 {
		return [3]uint32{uint32(s.File), s.Start, s.End}
	}
	g := append([]source.Span(nil), got...)
	w := append([]source.Span(nil), want...)
	less := func(s []source.Span) func(i, j int) bool {
		return func(i, j int) bool {
			a, b := key(s[i]), key(s[j])
			for k := 0; k < 3; k++ {
				if a[k] != b[k] {
					return a[k] < b[k]
				}
			}
			return false
		}
	}
	sort.Slice(g, less(g))
	sort.Slice(w, less(w))
	for i := range g {
		if g[i] != w[i] {
			t.Fatalf("span sets differ: %v vs %v", g, w)
		}
	}
}
