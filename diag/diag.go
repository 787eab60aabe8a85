/*
Package diag broadcasts small-vector failure events to interested observers.

Vectors report every failed operation here before propagating the error to
the caller. Observers such as debug consoles or test harnesses subscribe to
the stream; publishing is fire-and-forget, so a missing or slow
observer never blocks or fails a vector operation. Core container
correctness does not depend on this package.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package diag

import (
	"github.com/guiguan/caster"
)

// Event describes one failed vector operation.
type Event struct {
	Op  string // operation name, e.g. "push", "reserve", "copy"
	Err error  // the error propagated to the caller
}

// cast broadcasts failure events to all subscribers.
var cast = caster.New(nil)

// Notify publishes a failure event. It never blocks: subscribers with full
// channels miss the event.
func Notify(op string, err error) {
	if err == nil {
		return
	}
	cast.TryPub(Event{Op: op, Err: err})
}

// Subscribe registers an observer for failure events. The returned cancel
// function unsubscribes; events published afterwards are no longer
// delivered. The channel carries Event values and is buffered with the
// given capacity.
func Subscribe(capacity int) (<-chan interface{}, func()) {
	ch, ok := cast.Sub(nil, uint(capacity))
	if !ok {
		closed := make(chan interface{})
		close(closed)
		return closed, func() {}
	}
	return ch, func() { cast.Unsub(ch) }
}
