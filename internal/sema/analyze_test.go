package sema_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"govhdl/internal/ast"
	"govhdl/internal/sema"
	"govhdl/internal/testkit"
)

// badUnits adds one architecture of a missing entity per library, so every
// library contributes exactly one diagnostic.
func badUnits(b *testkit.Builder, libraries ...string) {
	for _, lib := range libraries {
		code := b.Code(lib, `
architecture a of missing is
begin
end architecture;
`)
		code.AddArchitecture(&ast.ArchitectureBody{
			Ident:      code.Ref("a", 1),
			EntityName: code.Ref("missing", 1),
		})
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	build := func() *testkit.Builder {
		b := testkit.NewBuilder()
		badUnits(b, "lib1", "lib2", "lib3", "lib4")
		return b
	}

	b := build()
	first := sema.Analyze(b.Root).Items()

	// Re-running on the same root must not change anything.
	again := sema.Analyze(b.Root).Items()
	if !reflect.DeepEqual(first, again) {
		t.Fatalf("second run differs:\nfirst:  %v\nsecond: %v", first, again)
	}

	// A single-job run over a fresh root sees the same result.
	serial := sema.AnalyzeWithOptions(build().Root, sema.Options{Jobs: 1}).Items()
	if !reflect.DeepEqual(first, serial) {
		t.Fatalf("serial run differs:\nparallel: %v\nserial:   %v", first, serial)
	}
}

func TestAnalyzeCapsDiagnosticsPerLibrary(t *testing.T) {
	b := testkit.NewBuilder()
	code := b.Code("libname", `
architecture a1 of missing1 is
begin
end architecture;

architecture a2 of missing2 is
begin
end architecture;
`)
	code.AddArchitecture(&ast.ArchitectureBody{
		Ident:      code.Ref("a1", 1),
		EntityName: code.Ref("missing1", 1),
	})
	code.AddArchitecture(&ast.ArchitectureBody{
		Ident:      code.Ref("a2", 1),
		EntityName: code.Ref("missing2", 1),
	})

	bag := sema.AnalyzeWithOptions(b.Root, sema.Options{MaxDiagnostics: 1})
	if bag.Len() != 1 {
		t.Fatalf("bag.Len() = %d, want 1", bag.Len())
	}
}

func TestAnalyzeCollapsesRepeatedDiagnostics(t *testing.T) {
	b := testkit.NewBuilder()
	code := b.Code("libname", `
package body pkg is
end package body;
`)
	u := code.AddPackageBody(&ast.PackageBody{Ident: code.Ref("pkg", 1)})
	// The same unit delivered twice re-reports the same violation; the
	// merged output must carry it once.
	code.Lib.AddUnit(u)

	testkit.CheckDiagnostics(t, b.Analyze(), []testkit.ExpectedDiagnostic{
		testkit.Expect(code.S1("pkg"), "No primary unit 'pkg' within 'libname'"),
	})
}

func TestLoadOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analyzer.toml")
	if err := os.WriteFile(path, []byte("max_diagnostics = 16\njobs = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := sema.LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if opts.MaxDiagnostics != 16 || opts.Jobs != 2 {
		t.Fatalf("opts = %+v, want MaxDiagnostics=16 Jobs=2", opts)
	}
}

func TestLoadOptionsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analyzer.toml")
	if err := os.WriteFile(path, []byte("jobs = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := sema.LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if opts.MaxDiagnostics != sema.DefaultOptions().MaxDiagnostics {
		t.Fatalf("MaxDiagnostics = %d, want default %d",
			opts.MaxDiagnostics, sema.DefaultOptions().MaxDiagnostics)
	}
}

func TestLoadOptionsRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analyzer.toml")
	if err := os.WriteFile(path, []byte("max_diags = 16\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := sema.LoadOptions(path); err == nil {
		t.Fatal("LoadOptions accepted an unknown key")
	}
}
