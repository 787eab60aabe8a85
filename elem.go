package smallvec

// Cloner is implemented by element types whose duplication can fail.
//
// Plain Go values copy by assignment, which never fails; element types
// wrapping external resources (file handles, pooled buffers) may not. A
// vector duplicates Cloner elements through Clone wherever the container
// contract allows a per-element failure (appending, inserting, filling,
// copying, relocating) and rolls back its own partial state before
// propagating the element's error, wrapped in ErrElementFailed.
//
// Ownership transfer (TakeFrom, Swap) is contractually failure-free and
// therefore moves elements by assignment, never through Clone.
type Cloner[T any] interface {
	Clone() (T, error)
}

// copyElem duplicates a single element, through Clone if the element type
// implements Cloner and by assignment otherwise.
func copyElem[T any](x T) (T, error) {
	if c, ok := any(x).(Cloner[T]); ok {
		return c.Clone()
	}
	return x, nil
}
