/*
Package smallvec offers a growable sequence container with a small-size
optimization.

# Small Vectors

A small vector stores up to N elements inline, within its own footprint,
and transparently promotes to a separately owned heap allocation once that
threshold is exceeded. The observable interface never changes; only the
storage classification does. Small vectors exist to cut allocation overhead
for collections that are usually small: parse stacks, children lists,
scratch buffers, argument vectors.

Since Go has no integer type parameters, the inline capacity N is carried
by a second type parameter A, which must be the array type [N]T:

	v := smallvec.New[int, [8]int]()
	_ = v.Push(7)

Due to their dual storage, small vectors have performance characteristics
differing from plain Go slices:

	Operation       |  size ≤ N       |  size > N
	----------------+-----------------+-----------
	Append          |  O(1), no alloc |  amortized O(1)
	Index           |  O(1)           |  O(1)
	Move (TakeFrom) |  O(N)           |  O(1)
	Swap            |  O(N)           |  O(1)

Mutating operations that may grow storage report failures as error values
instead of panicking: allocation failures surface as ErrAllocFailed,
fallible per-element copies (element types implementing Cloner) as
ErrElementFailed. Every fallible operation either fully succeeds or
restores the exact pre-call state; moves and swaps never fail.

Small vectors are single-threaded value types. Concurrent use of one
instance from multiple goroutines without external synchronization is
unsupported. Views obtained from Slice and element pointers are invalidated
by any capacity-changing or storage-mode-changing operation.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer. All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package smallvec

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
