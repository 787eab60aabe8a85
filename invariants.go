package smallvec

import "fmt"

// ErrInvalid signals a vector whose internal state violates a structural
// invariant. Check reports it; regular operations never produce it.
const ErrInvalid = VecError("vector state invalid")

// Check validates structural vector invariants.
//
// This checker is intentionally strict and should be used in tests while
// the implementation is evolving.
func (v *Vec[T, A]) Check() error {
	if v == nil {
		return fmt.Errorf("%w: nil vector", ErrInvalid)
	}
	n := v.inlineCap()
	if v.n < 0 {
		return fmt.Errorf("%w: negative element count %d", ErrInvalid, v.n)
	}
	if v.n > v.Cap() {
		return fmt.Errorf("%w: element count %d exceeds capacity %d", ErrInvalid, v.n, v.Cap())
	}
	if v.heap != nil && len(v.heap) <= n {
		return fmt.Errorf("%w: heap capacity %d not above inline capacity %d", ErrInvalid, len(v.heap), n)
	}
	return nil
}
