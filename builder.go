package smallvec

// Builder incrementally stages elements and finalizes them into a Vec.
//
// Builder collects elements at either end of the staged sequence and
// materializes the vector exactly once. After a call to Vector the builder
// is completed: further Append or Prepend calls are illegal and return
// ErrBuilderCompleted.
//
// The zero Builder is ready for use.
type Builder[T any, A any] struct {
	vec  Vec[T, A]
	done bool
}

// NewBuilder creates an empty builder.
func NewBuilder[T any, A any]() *Builder[T, A] {
	return &Builder[T, A]{}
}

// Append stages an element after the current last element.
func (b *Builder[T, A]) Append(val T) error {
	if b.done {
		return ErrBuilderCompleted
	}
	return b.vec.Push(val)
}

// Prepend stages an element before the current first element.
func (b *Builder[T, A]) Prepend(val T) error {
	if b.done {
		return ErrBuilderCompleted
	}
	return b.vec.Insert(0, val)
}

// Len returns the number of elements staged so far.
func (b *Builder[T, A]) Len() int {
	return b.vec.Len()
}

// Vector completes the builder and hands over the staged elements. The
// vector owns the staged storage; the builder is empty and completed
// afterwards.
func (b *Builder[T, A]) Vector() *Vec[T, A] {
	b.done = true
	out := &Vec[T, A]{}
	out.TakeFrom(&b.vec)
	return out
}
