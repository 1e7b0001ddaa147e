package sema

import (
	"govhdl/internal/ast"
	"govhdl/internal/search"
	"govhdl/internal/source"
)

// ResolveReference returns the span of the declaration named by the
// occurrence under the cursor. It returns false when the cursor is not on a
// name occurrence or the occurrence is unresolved. Only valid after Analyze
// has completed.
func (r *DesignRoot) ResolveReference(file source.FileID, cursor uint32) (source.Span, bool) {
	s := &referenceSearcher{file: file, cursor: cursor}
	for _, lib := range r.libraries {
		for _, u := range lib.units {
			if span, ok := search.Unit[source.Span](u, s).Get(); ok {
				return span, true
			}
		}
	}
	return source.Span{}, false
}

// FindAllReferences returns the position of every occurrence bound to the
// declaration at decl, the declaration's own position included. The order
// of the result is unspecified.
func (r *DesignRoot) FindAllReferences(decl source.Span) []source.Span {
	s := &allReferencesSearcher{decl: decl}
	for _, lib := range r.libraries {
		for _, u := range lib.units {
			search.Unit[struct{}](u, s)
		}
	}
	return s.refs
}

// referenceSearcher finds the designator under a cursor. Units from other
// files and spans away from the cursor are pruned; the first designator
// reached decides the whole query.
type referenceSearcher struct {
	search.NopSearcher[source.Span]
	file   source.FileID
	cursor uint32
}

func (s *referenceSearcher) SearchSource(file source.FileID) search.State[source.Span] {
	if file == s.file {
		return search.NotFinished[source.Span]()
	}
	return search.Finished(search.NotFound[source.Span]())
}

// The cursor sits in the gap between characters, so an offset touching
// either boundary of a span matches it.
func (s *referenceSearcher) SearchPos(span source.Span) search.State[source.Span] {
	if span.Contains(s.file, s.cursor) {
		return search.NotFinished[source.Span]()
	}
	return search.Finished(search.NotFound[source.Span]())
}

func (s *referenceSearcher) SearchDesignatorRef(ref *ast.Ref) search.State[source.Span] {
	if span, ok := ref.Reference(); ok {
		return search.Finished(search.Found(span))
	}
	// Cursor on an unresolved name: the query has its answer, and it is
	// "nothing".
	return search.Finished(search.NotFound[source.Span]())
}

// allReferencesSearcher accumulates every occurrence bound to one
// declaration. It never finishes, so the walk is exhaustive.
type allReferencesSearcher struct {
	search.NopSearcher[struct{}]
	decl source.Span
	refs []source.Span
}

func (s *allReferencesSearcher) SearchDesignatorRef(ref *ast.Ref) search.State[struct{}] {
	if span, ok := ref.Reference(); ok && span == s.decl {
		s.refs = append(s.refs, ref.Span)
	}
	return search.NotFinished[struct{}]()
}
