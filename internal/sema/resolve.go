package sema

import (
	"fmt"

	"govhdl/internal/ast"
	"govhdl/internal/diag"
	"govhdl/internal/search"
	"govhdl/internal/source"
)

// resolveLibrary resolves every unit of one library. Units never block each
// other: a failure is reported and the loop moves on.
func (r *DesignRoot) resolveLibrary(lib *Library, reporter diag.Reporter) {
	for _, u := range lib.units {
		r.resolveUnit(lib, u, reporter)
	}
}

func (r *DesignRoot) resolveUnit(lib *Library, u *ast.DesignUnit, reporter diag.Reporter) {
	// A declaration is its own first reference. The package body's
	// identifier is not a declaration: it names the package it extends and
	// is bound below.
	if u.Kind != ast.UnitPackageBody {
		ident := u.Ident()
		ident.SetReference(ident.Span)
	}

	switch u.Kind {
	case ast.UnitArchitecture:
		a := u.Arch
		if ent, ok := lib.primaryUnit(a.EntityName.Sym, ast.UnitEntity); ok {
			a.EntityName.SetReference(ent.Ident().Span)
		} else {
			reporter.Report(diag.Error(diag.SemNoPrimaryUnit, a.EntityName.Span,
				fmt.Sprintf("No primary unit '%s' within '%s'", a.EntityName.Name, lib.Name)))
		}

	case ast.UnitConfiguration:
		r.resolveConfiguration(lib, u, reporter)

	case ast.UnitPackageBody:
		p := u.PkgBody
		if pkg, ok := lib.primaryUnit(p.Ident.Sym, ast.UnitPackage); ok {
			p.Ident.SetReference(pkg.Ident().Span)
		} else {
			reporter.Report(diag.Error(diag.SemNoPrimaryUnit, p.Ident.Span,
				fmt.Sprintf("No primary unit '%s' within '%s'", p.Ident.Name, lib.Name)))
		}

	case ast.UnitPackageInstance:
		r.resolveSelected(lib, &u.PkgInst.PackageName, ast.UnitPackage, reporter)
	}

	// Walk the unit's regions once: component declarations register
	// themselves and become visible to instantiation statements, which are
	// resolved as the walk reaches them. Declarative regions precede
	// statement parts in walk order, so visibility follows the source.
	// Statement labels register as declarations of themselves.
	rs := &regionSearcher{
		root:       r,
		lib:        lib,
		reporter:   reporter,
		components: make(map[source.StringID]*ast.ComponentDecl),
	}
	search.Unit[struct{}](u, rs)
}

// regionSearcher resolves the statement-level references of a single unit.
// It never finishes the walk; everything happens as side effects.
type regionSearcher struct {
	search.NopSearcher[struct{}]
	root       *DesignRoot
	lib        *Library
	reporter   diag.Reporter
	components map[source.StringID]*ast.ComponentDecl
}

func (s *regionSearcher) SearchDeclaration(d *ast.Declaration) search.State[struct{}] {
	if d.Kind == ast.DeclComponent {
		c := d.Component
		c.Ident.SetReference(c.Ident.Span)
		if _, ok := s.components[c.Ident.Sym]; !ok {
			s.components[c.Ident.Sym] = c
		}
	}
	return search.NotFinished[struct{}]()
}

func (s *regionSearcher) SearchConcurrentStatement(stmt *ast.ConcurrentStatement) search.State[struct{}] {
	if stmt.Label != nil {
		stmt.Label.SetReference(stmt.Label.Span)
	}
	if stmt.Kind == ast.ConcInstantiation {
		s.root.resolveInstantiation(s.lib, stmt.Instantiation, s.components, s.reporter)
	}
	return search.NotFinished[struct{}]()
}

func (s *regionSearcher) SearchSequentialStatement(stmt *ast.SequentialStatement) search.State[struct{}] {
	if stmt.Label != nil {
		stmt.Label.SetReference(stmt.Label.Span)
	}
	return search.NotFinished[struct{}]()
}

func (r *DesignRoot) resolveInstantiation(
	lib *Library,
	inst *ast.InstantiationStatement,
	components map[source.StringID]*ast.ComponentDecl,
	reporter diag.Reporter,
) {
	switch inst.Unit {
	case ast.InstComponent:
		name := &inst.Name.Designator
		if c, ok := components[name.Sym]; ok {
			name.SetReference(c.Ident.Span)
		} else {
			reporter.Report(diag.Error(diag.SemNoDeclaration, name.Span,
				fmt.Sprintf("No declaration of '%s'", name.Name)))
		}

	case ast.InstEntity:
		r.resolveSelected(lib, &inst.Name, ast.UnitEntity, reporter)

	case ast.InstConfiguration:
		r.resolveSelected(lib, &inst.Name, ast.UnitConfiguration, reporter)
	}
}

// resolveSelected binds an optionally library-qualified name to a primary
// unit of the given kind. Unqualified names and `work` prefixes target the
// owning library.
func (r *DesignRoot) resolveSelected(
	lib *Library,
	name *ast.SelectedName,
	kind ast.UnitKind,
	reporter diag.Reporter,
) (*ast.DesignUnit, bool) {
	target := lib
	if name.Prefix != nil && name.Prefix.Sym != r.workSym && name.Prefix.Sym != lib.Sym {
		found, ok := r.libraryBySym(name.Prefix.Sym)
		if !ok {
			reporter.Report(diag.Error(diag.SemNoDeclaration, name.Prefix.Span,
				fmt.Sprintf("No declaration of '%s'", name.Prefix.Name)))
			return nil, false
		}
		target = found
	}

	des := &name.Designator
	if u, ok := target.primaryUnit(des.Sym, kind); ok {
		des.SetReference(u.Ident().Span)
		return u, true
	}
	reporter.Report(diag.Error(diag.SemNoPrimaryUnit, des.Span,
		fmt.Sprintf("No primary unit '%s' within '%s'", des.Name, target.Name)))
	return nil, false
}

func (r *DesignRoot) resolveConfiguration(lib *Library, u *ast.DesignUnit, reporter diag.Reporter) {
	cfg := u.Config
	name := &cfg.EntityName

	// A configuration must live in the same library as the entity it
	// configures; a foreign prefix is an error even when that entity exists.
	if name.Prefix != nil && name.Prefix.Sym != r.workSym && name.Prefix.Sym != lib.Sym {
		reporter.Report(diag.Error(diag.SemConfigOutsideLibrary, name.Span,
			fmt.Sprintf("Configuration must be within the same library '%s' as the corresponding entity", lib.Name)))
		return
	}

	ent, ok := lib.primaryUnit(name.Designator.Sym, ast.UnitEntity)
	if !ok {
		reporter.Report(diag.Error(diag.SemNoDeclaration, name.Designator.Span,
			fmt.Sprintf("No declaration of '%s'", name.Designator.Name)))
		return
	}

	// Within one source file the entity must textually precede its
	// configuration. This is an ordering error, not a missing name: it is
	// checked only once the entity is known to exist.
	entIdent := ent.Ident()
	if ent.File == u.File && entIdent.Span.Start > cfg.Ident.Span.Start {
		reporter.Report(diag.Error(diag.SemConfigBeforeEntity, cfg.Ident.Span,
			fmt.Sprintf("Configuration '%s' declared before entity '%s'", cfg.Ident.Name, entIdent.Name)))
		return
	}

	name.Designator.SetReference(entIdent.Span)
}
