// Package testkit builds design-unit trees for tests the way the parser
// would deliver them: units positioned against real VHDL snippet text, with
// occurrence spans computed from the text itself.
package testkit

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"govhdl/internal/ast"
	"govhdl/internal/diag"
	"govhdl/internal/sema"
	"govhdl/internal/source"
)

// Builder owns the file set, the interner and the design root for one test.
type Builder struct {
	FileSet  *source.FileSet
	Interner *source.Interner
	Root     *sema.DesignRoot
}

func NewBuilder() *Builder {
	interner := source.NewInterner()
	return &Builder{
		FileSet:  source.NewFileSet(),
		Interner: interner,
		Root:     sema.NewDesignRoot(interner),
	}
}

// Analyze resolves everything added so far.
func (b *Builder) Analyze() *diag.Bag {
	return sema.Analyze(b.Root)
}

// Code registers a VHDL snippet as a virtual file belonging to the named
// library and returns a handle for adding units and looking up spans.
func (b *Builder) Code(library, text string) *Code {
	name := fmt.Sprintf("file%d.vhd", b.FileSet.Len())
	file := b.FileSet.AddVirtual(name, []byte(text))
	return &Code{
		b:    b,
		File: file,
		Lib:  b.Root.EnsureLibrary(library),
		text: text,
	}
}

// Code is one snippet in one library.
type Code struct {
	b    *Builder
	File source.FileID
	Lib  *sema.Library
	text string
}

func isIdentChar(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9' || b == '_'
}

// find locates the occ-th whole-word occurrence of name (1-based) and
// panics when it does not exist: tests depend on the spans they name.
func (c *Code) find(name string, occ int) int {
	if occ < 1 {
		panic(fmt.Sprintf("occurrence index %d must be 1-based", occ))
	}
	from := 0
	remaining := occ
	for {
		i := strings.Index(c.text[from:], name)
		if i < 0 {
			panic(fmt.Sprintf("occurrence %d of %q not found in snippet", occ, name))
		}
		pos := from + i
		end := pos + len(name)
		boundedLeft := pos == 0 || !isIdentChar(c.text[pos-1])
		boundedRight := end >= len(c.text) || !isIdentChar(c.text[end])
		if boundedLeft && boundedRight {
			remaining--
			if remaining == 0 {
				return pos
			}
		}
		from = pos + 1
	}
}

func (c *Code) span(pos, length int) source.Span {
	start, err := safecast.Conv[uint32](pos)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	n, err := safecast.Conv[uint32](length)
	if err != nil {
		panic(fmt.Errorf("length overflow: %w", err))
	}
	return source.Span{File: c.File, Start: start, End: start + n}
}

// S returns the span of the occ-th whole-word occurrence of name.
func (c *Code) S(name string, occ int) source.Span {
	return c.span(c.find(name, occ), len(name))
}

// S1 is S(name, 1).
func (c *Code) S1(name string) source.Span {
	return c.S(name, 1)
}

// Ident builds an identifier occurrence positioned at S(name, occ).
func (c *Code) Ident(name string, occ int) ast.Ident {
	return ast.Ident{
		Sym:  c.b.Interner.Intern(name),
		Name: name,
		Span: c.S(name, occ),
	}
}

// Ref builds an unresolved designator occurrence at S(name, occ).
func (c *Code) Ref(name string, occ int) ast.Ref {
	return ast.Ref{Ident: c.Ident(name, occ)}
}

// Selected builds an optionally library-qualified name from the occ-th
// occurrence of the dotted text, e.g. Selected("work.ent", 1) or
// Selected("ent", 2).
func (c *Code) Selected(dotted string, occ int) ast.SelectedName {
	pos := c.find(dotted, occ)
	full := c.span(pos, len(dotted))

	dot := strings.IndexByte(dotted, '.')
	if dot < 0 {
		return ast.SelectedName{
			Designator: ast.Ref{Ident: ast.Ident{
				Sym:  c.b.Interner.Intern(dotted),
				Name: dotted,
				Span: full,
			}},
			Span: full,
		}
	}

	prefixName := dotted[:dot]
	desName := dotted[dot+1:]
	prefix := ast.Ref{Ident: ast.Ident{
		Sym:  c.b.Interner.Intern(prefixName),
		Name: prefixName,
		Span: c.span(pos, len(prefixName)),
	}}
	return ast.SelectedName{
		Prefix: &prefix,
		Designator: ast.Ref{Ident: ast.Ident{
			Sym:  c.b.Interner.Intern(desName),
			Name: desName,
			Span: c.span(pos+dot+1, len(desName)),
		}},
		Span: full,
	}
}

// AddEntity adds an entity declaration unit to the snippet's library.
func (c *Code) AddEntity(e *ast.EntityDecl) *ast.DesignUnit {
	return c.add(ast.NewEntity(c.File, e))
}

// AddArchitecture adds an architecture body unit.
func (c *Code) AddArchitecture(a *ast.ArchitectureBody) *ast.DesignUnit {
	return c.add(ast.NewArchitecture(c.File, a))
}

// AddConfiguration adds a configuration declaration unit.
func (c *Code) AddConfiguration(cfg *ast.ConfigurationDecl) *ast.DesignUnit {
	return c.add(ast.NewConfiguration(c.File, cfg))
}

// AddPackage adds a package declaration unit.
func (c *Code) AddPackage(p *ast.PackageDecl) *ast.DesignUnit {
	return c.add(ast.NewPackage(c.File, p))
}

// AddPackageBody adds a package body unit.
func (c *Code) AddPackageBody(p *ast.PackageBody) *ast.DesignUnit {
	return c.add(ast.NewPackageBody(c.File, p))
}

// AddPackageInstance adds a package instance unit.
func (c *Code) AddPackageInstance(p *ast.PackageInstance) *ast.DesignUnit {
	return c.add(ast.NewPackageInstance(c.File, p))
}

func (c *Code) add(u *ast.DesignUnit) *ast.DesignUnit {
	c.Lib.AddUnit(u)
	return u
}
