package ast

import (
	"govhdl/internal/source"
)

// Ident is one occurrence of a designator: the interned symbol, the spelling
// as written, and the span of the occurrence.
type Ident struct {
	Sym  source.StringID
	Name string
	Span source.Span
}

// Ref is a designator occurrence carrying a resolution slot. Resolved is nil
// until the resolver binds the occurrence to a declaration, and then holds
// the span of that declaration's identifier. The slot is written at most
// once per analysis run.
type Ref struct {
	Ident
	Resolved *source.Span
}

// MakeRef builds an unresolved occurrence.
func MakeRef(sym source.StringID, name string, span source.Span) Ref {
	return Ref{Ident: Ident{Sym: sym, Name: name, Span: span}}
}

// SetReference binds the occurrence to the declaration at span.
func (r *Ref) SetReference(span source.Span) {
	s := span
	r.Resolved = &s
}

// Reference returns the bound declaration span, if any.
func (r *Ref) Reference() (source.Span, bool) {
	if r.Resolved == nil {
		return source.Span{}, false
	}
	return *r.Resolved, true
}

// SelectedName is an optionally library-qualified designator, e.g. `ent`,
// `work.ent` or `lib2.ent`. Span covers the whole dotted form, which is
// where library-mismatch diagnostics anchor.
type SelectedName struct {
	Prefix     *Ref // library prefix, nil when the name is unqualified
	Designator Ref
	Span       source.Span
}

// HasPrefix reports whether the name carries a library prefix.
func (n *SelectedName) HasPrefix() bool {
	return n.Prefix != nil
}
