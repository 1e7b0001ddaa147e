package search

import (
	"reflect"
	"testing"

	"govhdl/internal/ast"
	"govhdl/internal/source"
)

func ref(name string, start uint32) ast.Ref {
	return ast.MakeRef(0, name, source.Span{File: 1, Start: start, End: start + uint32(len(name))})
}

// testEntity builds an entity exercising every nesting rule: generics,
// ports, declarations, and statements with nested declarative regions.
func testEntity() *ast.DesignUnit {
	comp := &ast.ComponentDecl{Ident: ref("comp", 40)}
	block := &ast.BlockStatement{
		Decls: []ast.Declaration{
			ast.ObjectDeclaration(&ast.ObjectDecl{
				Subtype: ast.SubtypeIndication{TypeMark: ref("t_block", 50)},
			}),
		},
		Stmts: []ast.ConcurrentStatement{
			ast.Instantiation(nil, &ast.InstantiationStatement{
				Unit: ast.InstComponent,
				Name: ast.SelectedName{Designator: ref("inst_target", 60)},
			}),
		},
	}
	gen := &ast.ForGenerateStatement{
		Body: ast.GenerateBody{
			Decls: []ast.Declaration{
				ast.ObjectDeclaration(&ast.ObjectDecl{
					Subtype: ast.SubtypeIndication{TypeMark: ref("t_gen", 70)},
				}),
			},
			Stmts: []ast.ConcurrentStatement{
				ast.Instantiation(nil, &ast.InstantiationStatement{
					Unit: ast.InstEntity,
					Name: ast.SelectedName{Designator: ref("gen_target", 80)},
				}),
			},
		},
	}

	e := &ast.EntityDecl{
		Ident: ref("ent", 0),
		Generics: []ast.InterfaceDecl{
			{Subtype: ast.SubtypeIndication{TypeMark: ref("t_generic", 10)}},
		},
		Ports: []ast.InterfaceDecl{
			{Subtype: ast.SubtypeIndication{TypeMark: ref("t_port", 20)}},
		},
		Decls: []ast.Declaration{
			ast.ComponentDeclaration(comp),
			ast.ObjectDeclaration(&ast.ObjectDecl{
				Subtype: ast.SubtypeIndication{TypeMark: ref("t_decl", 30)},
			}),
		},
		Stmts: []ast.ConcurrentStatement{
			{Kind: ast.ConcBlock, Block: block},
			{Kind: ast.ConcForGenerate, ForGenerate: gen},
			{Kind: ast.ConcOther},
		},
	}
	return ast.NewEntity(1, e)
}

type collectSearcher struct {
	NopSearcher[struct{}]
	names []string
}

func (c *collectSearcher) SearchDesignatorRef(r *ast.Ref) State[struct{}] {
	c.names = append(c.names, r.Name)
	return NotFinished[struct{}]()
}

func TestWalkOrderIsPreOrder(t *testing.T) {
	c := &collectSearcher{}
	if res := Unit[struct{}](testEntity(), c); res.IsFound() {
		t.Fatal("exhaustive walk must not finish with a value")
	}

	want := []string{
		"ent",
		"t_generic",
		"t_port",
		"comp", "t_decl",
		"t_block", "inst_target",
		"t_gen", "gen_target",
	}
	if !reflect.DeepEqual(c.names, want) {
		t.Fatalf("walk order = %v, want %v", c.names, want)
	}
}

type findSearcher struct {
	NopSearcher[string]
	target  string
	visited int
}

func (f *findSearcher) SearchDesignatorRef(r *ast.Ref) State[string] {
	f.visited++
	if r.Name == f.target {
		return Finished(Found(r.Name))
	}
	return NotFinished[string]()
}

func TestShortCircuitStopsWalk(t *testing.T) {
	f := &findSearcher{target: "t_port"}
	res := Unit[string](testEntity(), f)

	v, ok := res.Get()
	if !ok || v != "t_port" {
		t.Fatalf("result = (%q, %v), want (t_port, true)", v, ok)
	}
	// ent, t_generic, t_port — nothing after the hit.
	if f.visited != 3 {
		t.Fatalf("visited %d designators, want 3", f.visited)
	}
}

type pruneSearcher struct {
	NopSearcher[struct{}]
	file    source.FileID
	visited int
}

func (p *pruneSearcher) SearchSource(file source.FileID) State[struct{}] {
	if file == p.file {
		return NotFinished[struct{}]()
	}
	return Finished(NotFound[struct{}]())
}

func (p *pruneSearcher) SearchDesignatorRef(*ast.Ref) State[struct{}] {
	p.visited++
	return NotFinished[struct{}]()
}

func TestSourcePruningSkipsForeignUnits(t *testing.T) {
	p := &pruneSearcher{file: 2}
	if res := Unit[struct{}](testEntity(), p); res.IsFound() {
		t.Fatal("pruned walk must not produce a value")
	}
	if p.visited != 0 {
		t.Fatalf("visited %d designators in a pruned unit, want 0", p.visited)
	}

	p = &pruneSearcher{file: 1}
	Unit[struct{}](testEntity(), p)
	if p.visited == 0 {
		t.Fatal("matching source must be walked")
	}
}

func TestDeclinedHooksOnLeavesReturnNotFound(t *testing.T) {
	// A process full of sequential statements and an unsupported concurrent
	// form must contribute no designators and no spurious result.
	proc := &ast.ProcessStatement{
		Stmts: []ast.SequentialStatement{{}, {}},
	}
	e := &ast.EntityDecl{
		Ident: ref("ent", 0),
		Stmts: []ast.ConcurrentStatement{
			{Kind: ast.ConcProcess, Process: proc},
			{Kind: ast.ConcOther},
		},
	}

	c := &collectSearcher{}
	if res := Unit[struct{}](ast.NewEntity(1, e), c); res.IsFound() {
		t.Fatal("walk must not finish with a value")
	}
	if !reflect.DeepEqual(c.names, []string{"ent"}) {
		t.Fatalf("names = %v, want only the entity identifier", c.names)
	}
}

func TestResultAccessors(t *testing.T) {
	if NotFound[int]().IsFound() {
		t.Error("NotFound must not report found")
	}
	v, ok := Found(42).Get()
	if !ok || v != 42 {
		t.Errorf("Found(42).Get() = (%d, %v)", v, ok)
	}
}
