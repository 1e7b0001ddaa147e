package search

// Result is the outcome of a completed search.
type Result[T any] struct {
	found bool
	value T
}

// Found wraps a successful search value.
func Found[T any](value T) Result[T] {
	return Result[T]{found: true, value: value}
}

// NotFound is the empty result.
func NotFound[T any]() Result[T] {
	return Result[T]{}
}

// Get unpacks the result.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.found
}

// IsFound reports whether the search produced a value.
func (r Result[T]) IsFound() bool {
	return r.found
}

// State is what a Searcher hook returns for a node.
//
//   - Finished(Found(v))  terminate the whole walk, propagating v
//   - Finished(NotFound)  prune this subtree, continue with siblings
//   - NotFinished         decline; the walk recurses structurally
type State[T any] struct {
	finished bool
	result   Result[T]
}

// Finished wraps a result that stops descent into the current node.
func Finished[T any](r Result[T]) State[T] {
	return State[T]{finished: true, result: r}
}

// NotFinished lets the walk handle the node structurally.
func NotFinished[T any]() State[T] {
	return State[T]{}
}

// orElse runs nested when the hook declined, otherwise keeps the hook's
// result.
func (s State[T]) orElse(nested func() Result[T]) Result[T] {
	if s.finished {
		return s.result
	}
	return nested()
}

// orNotFound resolves a declined hook on a leaf node to NotFound.
func (s State[T]) orNotFound() Result[T] {
	return s.orElse(NotFound[T])
}
