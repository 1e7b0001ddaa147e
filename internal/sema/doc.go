// Package sema resolves cross-unit references between VHDL design units.
//
// A DesignRoot holds named libraries of design units as delivered by the
// parser. Analyze runs two passes over the root: first every library builds
// its primary-unit index (indexing of all libraries completes before any
// resolution starts, since resolution may look across libraries), then each
// library's units are resolved against the read-only indexes. Resolution
// binds every name occurrence it can to the span of the declaration's
// identifier and reports a diagnostic for every one it cannot; a failure
// never stops sibling occurrences or sibling units.
//
// After Analyze the root answers position queries: ResolveReference maps a
// cursor to the declaration it names, FindAllReferences inverts that
// mapping. Declarations register as their own first reference, so both
// queries treat a declaration site like any other occurrence.
package sema
