package sema

import (
	"golang.org/x/sync/errgroup"

	"govhdl/internal/diag"
)

// Analyze resolves every library in the root with default options and
// returns the collected diagnostics. Given the same unit set it produces
// the same diagnostics and the same resolved references on every run.
func Analyze(root *DesignRoot) *diag.Bag {
	return AnalyzeWithOptions(root, DefaultOptions())
}

// AnalyzeWithOptions is Analyze with explicit options.
func AnalyzeWithOptions(root *DesignRoot, opts Options) *diag.Bag {
	bags := make([]*diag.Bag, len(root.libraries))
	for i := range bags {
		bags[i] = diag.NewBag(opts.maxDiagnostics())
	}

	// Pass 1: indexing of every library must complete before any
	// resolution starts, since pass 2 looks across libraries.
	for i, lib := range root.libraries {
		lib.index(diag.BagReporter{Bag: bags[i]})
	}

	// Pass 2: libraries resolve independently against the now read-only
	// indexes. Each goroutine mutates only its own library's units and
	// writes only its own bag.
	var g errgroup.Group
	g.SetLimit(opts.jobs())
	for i, lib := range root.libraries {
		i, lib := i, lib
		g.Go(func() error {
			root.resolveLibrary(lib, diag.BagReporter{Bag: bags[i]})
			return nil
		})
	}
	_ = g.Wait() // resolution reports diagnostics, it never fails

	out := diag.NewBag(opts.maxDiagnostics())
	for _, b := range bags {
		out.Merge(b)
	}
	// A unit delivered more than once re-reports the same violations.
	out.Dedup()
	out.Sort()
	return out
}
