// Package ast models VHDL design units as handed over by the parser.
//
// The tree is built once per analysis run and owned outright by its design
// unit; nothing is shared across units. Nodes are tagged variants (a Kind
// plus one payload pointer) rather than interface hierarchies, so traversal
// dispatches structurally.
//
// The only mutable state in the tree is Ref.Resolved: every name occurrence
// arrives from the parser unresolved and the resolver fills the slot at most
// once, after which the tree is read-only for the rest of the session.
package ast
