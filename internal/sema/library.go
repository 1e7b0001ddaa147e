package sema

import (
	"fmt"

	"govhdl/internal/ast"
	"govhdl/internal/diag"
	"govhdl/internal/source"
)

// Library is a named collection of design units. Units are kept in
// declaration order; the primary-unit index is rebuilt by every Analyze run.
type Library struct {
	Sym  source.StringID
	Name string

	units   []*ast.DesignUnit
	primary map[source.StringID]*ast.DesignUnit
	archs   map[archKey]*ast.DesignUnit
}

// archKey identifies an architecture: an entity may have several
// architectures, unique per (entity, architecture label) pair.
type archKey struct {
	entity source.StringID
	arch   source.StringID
}

// AddUnit appends a design unit and stamps it with the owning library.
func (l *Library) AddUnit(u *ast.DesignUnit) {
	u.Library = l.Sym
	l.units = append(l.units, u)
}

// Units returns the library's design units in declaration order.
// Do not modify the returned slice.
func (l *Library) Units() []*ast.DesignUnit {
	return l.units
}

// index builds the primary-unit and architecture indexes, reporting
// duplicates. The first declaration of a name stays authoritative.
func (l *Library) index(reporter diag.Reporter) {
	l.primary = make(map[source.StringID]*ast.DesignUnit)
	l.archs = make(map[archKey]*ast.DesignUnit)

	for _, u := range l.units {
		switch {
		case u.Kind.IsPrimary():
			if prev, ok := l.primary[u.Sym()]; ok {
				reporter.Report(diag.Error(diag.SemDuplicatePrimaryUnit, u.Ident().Span,
					fmt.Sprintf("Duplicate primary unit '%s'", u.Name())).
					WithNote(prev.Ident().Span, "previously declared here"))
				continue
			}
			l.primary[u.Sym()] = u

		case u.Kind == ast.UnitArchitecture:
			key := archKey{entity: u.Arch.EntityName.Sym, arch: u.Sym()}
			if prev, ok := l.archs[key]; ok {
				reporter.Report(diag.Error(diag.SemDuplicateArchitecture, u.Ident().Span,
					fmt.Sprintf("Duplicate architecture '%s' of entity '%s'", u.Name(), u.Arch.EntityName.Name)).
					WithNote(prev.Ident().Span, "previously declared here"))
				continue
			}
			l.archs[key] = u
		}
	}
}

// primaryUnit looks up a primary unit of the given kind. A primary unit of
// another kind under the same name does not match.
func (l *Library) primaryUnit(sym source.StringID, kind ast.UnitKind) (*ast.DesignUnit, bool) {
	u, ok := l.primary[sym]
	if !ok || u.Kind != kind {
		return nil, false
	}
	return u, true
}

// DesignRoot is the set of all libraries under analysis. The library named
// `work` is not special here: `work` prefixes in names denote the owning
// library of the unit using the name.
type DesignRoot struct {
	interner  *source.Interner
	libraries []*Library
	byName    map[source.StringID]*Library
	workSym   source.StringID
}

// NewDesignRoot creates an empty root sharing the parser's interner.
func NewDesignRoot(interner *source.Interner) *DesignRoot {
	return &DesignRoot{
		interner: interner,
		byName:   make(map[source.StringID]*Library),
		workSym:  interner.Intern("work"),
	}
}

// EnsureLibrary returns the library with the given name, creating it on
// first use. Library names follow VHDL identifier rules, so lookup is
// case-insensitive.
func (r *DesignRoot) EnsureLibrary(name string) *Library {
	sym := r.interner.Intern(name)
	if lib, ok := r.byName[sym]; ok {
		return lib
	}
	lib := &Library{Sym: sym, Name: name}
	r.libraries = append(r.libraries, lib)
	r.byName[sym] = lib
	return lib
}

// Library returns the named library, if it exists.
func (r *DesignRoot) Library(name string) (*Library, bool) {
	lib, ok := r.byName[r.interner.Intern(name)]
	return lib, ok
}

func (r *DesignRoot) libraryBySym(sym source.StringID) (*Library, bool) {
	lib, ok := r.byName[sym]
	return lib, ok
}

// Libraries returns all libraries in creation order.
// Do not modify the returned slice.
func (r *DesignRoot) Libraries() []*Library {
	return r.libraries
}
