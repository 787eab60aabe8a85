package smallvec

// VecError is an error type for the smallvec module.
type VecError string

func (e VecError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever an index or position is outside
// the valid range of the vector.
const ErrIndexOutOfBounds = VecError("index out of bounds")

// ErrAllocFailed signals that the allocation service could not satisfy a
// storage request. The allocator's own error is wrapped and remains
// matchable with errors.Is.
const ErrAllocFailed = VecError("storage allocation failed")

// ErrElementFailed signals that a per-element copy failed while relocating,
// copying or filling. Partially constructed elements of the failing call
// have been unwound before this error is reported.
const ErrElementFailed = VecError("element operation failed")

// ErrBuilderCompleted signals that a vector builder has already completed a
// vector and it's illegal to further add elements.
const ErrBuilderCompleted = VecError("forbidden to add elements; vector has been completed")
