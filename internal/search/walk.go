package search

import (
	"govhdl/internal/ast"
)

// Unit walks one design unit in deterministic pre-order. The source hook
// fires first so a searcher can skip whole units by file identity; then the
// unit's own identifier, then its contents following the language's nesting
// order (interface clauses before declarations before statements,
// declarative regions before their statement bodies).
//
// Traversal cannot fail: the walk either produces the value some hook
// finished with, or NotFound after visiting everything that was not pruned.
func Unit[T any](u *ast.DesignUnit, s Searcher[T]) Result[T] {
	return s.SearchSource(u.File).orElse(func() Result[T] {
		switch u.Kind {
		case ast.UnitEntity:
			e := u.Entity
			if r := searchRef(&e.Ident, s); r.IsFound() {
				return r
			}
			if r := searchInterfaceList(e.Generics, s); r.IsFound() {
				return r
			}
			if r := searchInterfaceList(e.Ports, s); r.IsFound() {
				return r
			}
			if r := searchDeclList(e.Decls, s); r.IsFound() {
				return r
			}
			return searchConcurrentList(e.Stmts, s)

		case ast.UnitArchitecture:
			a := u.Arch
			if r := searchRef(&a.Ident, s); r.IsFound() {
				return r
			}
			if r := searchRef(&a.EntityName, s); r.IsFound() {
				return r
			}
			if r := searchDeclList(a.Decls, s); r.IsFound() {
				return r
			}
			return searchConcurrentList(a.Stmts, s)

		case ast.UnitConfiguration:
			c := u.Config
			if r := searchRef(&c.Ident, s); r.IsFound() {
				return r
			}
			return searchSelected(&c.EntityName, s)

		case ast.UnitPackage:
			p := u.Pkg
			if r := searchRef(&p.Ident, s); r.IsFound() {
				return r
			}
			if r := searchInterfaceList(p.Generics, s); r.IsFound() {
				return r
			}
			return searchDeclList(p.Decls, s)

		case ast.UnitPackageBody:
			p := u.PkgBody
			if r := searchRef(&p.Ident, s); r.IsFound() {
				return r
			}
			return searchDeclList(p.Decls, s)

		case ast.UnitPackageInstance:
			p := u.PkgInst
			if r := searchRef(&p.Ident, s); r.IsFound() {
				return r
			}
			return searchSelected(&p.PackageName, s)
		}
		return NotFound[T]()
	})
}

// searchRef fires the position hook before the designator hook, so
// position-pruning searchers never see designators outside their range.
// Refs are leaves: a declined designator hook resolves to NotFound.
func searchRef[T any](ref *ast.Ref, s Searcher[T]) Result[T] {
	return s.SearchPos(ref.Span).orElse(func() Result[T] {
		return s.SearchDesignatorRef(ref).orNotFound()
	})
}

func searchSelected[T any](n *ast.SelectedName, s Searcher[T]) Result[T] {
	if n.Prefix != nil {
		if r := searchRef(n.Prefix, s); r.IsFound() {
			return r
		}
	}
	return searchRef(&n.Designator, s)
}

func searchSubtype[T any](ind *ast.SubtypeIndication, s Searcher[T]) Result[T] {
	return s.SearchSubtypeIndication(ind).orElse(func() Result[T] {
		return searchRef(&ind.TypeMark, s)
	})
}

func searchInterface[T any](d *ast.InterfaceDecl, s Searcher[T]) Result[T] {
	return s.SearchInterfaceDeclaration(d).orElse(func() Result[T] {
		return searchSubtype(&d.Subtype, s)
	})
}

func searchInterfaceList[T any](decls []ast.InterfaceDecl, s Searcher[T]) Result[T] {
	for i := range decls {
		if r := searchInterface(&decls[i], s); r.IsFound() {
			return r
		}
	}
	return NotFound[T]()
}

func searchDecl[T any](d *ast.Declaration, s Searcher[T]) Result[T] {
	return s.SearchDeclaration(d).orElse(func() Result[T] {
		switch d.Kind {
		case ast.DeclObject:
			return searchSubtype(&d.Object.Subtype, s)

		case ast.DeclComponent:
			c := d.Component
			if r := searchRef(&c.Ident, s); r.IsFound() {
				return r
			}
			if r := searchInterfaceList(c.Generics, s); r.IsFound() {
				return r
			}
			return searchInterfaceList(c.Ports, s)

		case ast.DeclType:
			// Type definitions are not searched yet.
			return NotFound[T]()

		case ast.DeclSubprogram:
			sp := d.Subprogram
			if r := searchInterfaceList(sp.Params, s); r.IsFound() {
				return r
			}
			return searchDeclList(sp.Decls, s)
		}
		return NotFound[T]()
	})
}

func searchDeclList[T any](decls []ast.Declaration, s Searcher[T]) Result[T] {
	for i := range decls {
		if r := searchDecl(&decls[i], s); r.IsFound() {
			return r
		}
	}
	return NotFound[T]()
}

func searchGenerateBody[T any](b *ast.GenerateBody, s Searcher[T]) Result[T] {
	if r := searchDeclList(b.Decls, s); r.IsFound() {
		return r
	}
	return searchConcurrentList(b.Stmts, s)
}

func searchConcurrent[T any](stmt *ast.ConcurrentStatement, s Searcher[T]) Result[T] {
	return s.SearchConcurrentStatement(stmt).orElse(func() Result[T] {
		if stmt.Label != nil {
			if r := searchRef(stmt.Label, s); r.IsFound() {
				return r
			}
		}
		switch stmt.Kind {
		case ast.ConcBlock:
			if r := searchDeclList(stmt.Block.Decls, s); r.IsFound() {
				return r
			}
			return searchConcurrentList(stmt.Block.Stmts, s)

		case ast.ConcProcess:
			if r := searchDeclList(stmt.Process.Decls, s); r.IsFound() {
				return r
			}
			return searchSequentialList(stmt.Process.Stmts, s)

		case ast.ConcInstantiation:
			return searchSelected(&stmt.Instantiation.Name, s)

		case ast.ConcForGenerate:
			return searchGenerateBody(&stmt.ForGenerate.Body, s)

		case ast.ConcIfGenerate:
			g := stmt.IfGenerate
			for i := range g.Conditionals {
				if r := searchGenerateBody(&g.Conditionals[i], s); r.IsFound() {
					return r
				}
			}
			if g.Else != nil {
				return searchGenerateBody(g.Else, s)
			}
			return NotFound[T]()

		case ast.ConcCaseGenerate:
			g := stmt.CaseGenerate
			for i := range g.Alternatives {
				if r := searchGenerateBody(&g.Alternatives[i], s); r.IsFound() {
					return r
				}
			}
			return NotFound[T]()
		}
		// Remaining concurrent forms are not searched yet.
		return NotFound[T]()
	})
}

func searchConcurrentList[T any](stmts []ast.ConcurrentStatement, s Searcher[T]) Result[T] {
	for i := range stmts {
		if r := searchConcurrent(&stmts[i], s); r.IsFound() {
			return r
		}
	}
	return NotFound[T]()
}

func searchSequentialList[T any](stmts []ast.SequentialStatement, s Searcher[T]) Result[T] {
	for i := range stmts {
		// Statement interiors are not analyzed yet; the label is the only
		// thing below a sequential statement.
		stmt := &stmts[i]
		r := s.SearchSequentialStatement(stmt).orElse(func() Result[T] {
			if stmt.Label != nil {
				return searchRef(stmt.Label, s)
			}
			return NotFound[T]()
		})
		if r.IsFound() {
			return r
		}
	}
	return NotFound[T]()
}
