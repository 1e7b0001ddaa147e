package search

import (
	"govhdl/internal/ast"
	"govhdl/internal/source"
)

// Searcher is the capability set of hooks driving a walk. Each hook may
// finish the walk, prune the node's subtree, or decline (NotFinished) and
// let the walk recurse with the structural default.
//
// Embed NopSearcher to get all-declining defaults and override only the
// hooks a query needs.
type Searcher[T any] interface {
	SearchConcurrentStatement(stmt *ast.ConcurrentStatement) State[T]
	SearchSequentialStatement(stmt *ast.SequentialStatement) State[T]
	SearchDeclaration(decl *ast.Declaration) State[T]
	SearchInterfaceDeclaration(decl *ast.InterfaceDecl) State[T]
	SearchSubtypeIndication(ind *ast.SubtypeIndication) State[T]
	SearchDesignatorRef(ref *ast.Ref) State[T]
	SearchPos(span source.Span) State[T]
	SearchSource(file source.FileID) State[T]
}

// NopSearcher declines every hook. It exists to be embedded.
type NopSearcher[T any] struct{}

func (NopSearcher[T]) SearchConcurrentStatement(*ast.ConcurrentStatement) State[T] {
	return NotFinished[T]()
}

func (NopSearcher[T]) SearchSequentialStatement(*ast.SequentialStatement) State[T] {
	return NotFinished[T]()
}

func (NopSearcher[T]) SearchDeclaration(*ast.Declaration) State[T] {
	return NotFinished[T]()
}

func (NopSearcher[T]) SearchInterfaceDeclaration(*ast.InterfaceDecl) State[T] {
	return NotFinished[T]()
}

func (NopSearcher[T]) SearchSubtypeIndication(*ast.SubtypeIndication) State[T] {
	return NotFinished[T]()
}

func (NopSearcher[T]) SearchDesignatorRef(*ast.Ref) State[T] {
	return NotFinished[T]()
}

func (NopSearcher[T]) SearchPos(source.Span) State[T] {
	return NotFinished[T]()
}

func (NopSearcher[T]) SearchSource(source.FileID) State[T] {
	return NotFinished[T]()
}
