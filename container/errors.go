// Package container defines the sentinel errors shared by the map engines and
// their views. Engines wrap these with a package prefix via fmt.Errorf("%w").
package container

import "errors"

// Predefined errors for bidirectional map operations.
//
// Recoverable conditions (ErrValueChangeNotAllowed) are returned; programming
// errors (nil arguments, incomparable types, iterator misuse, concurrent
// modification) are raised as panics wrapping the corresponding sentinel, and
// ErrCorrupted is fatal: it signals that the two indexes desynchronized and
// must never occur in normal operation.
var (
	// ErrNilArgument signals a nil key or value supplied to a mutation entry point.
	ErrNilArgument = errors.New("nil key or value not permitted")

	// ErrIncomparable signals an argument whose dynamic type the active comparator rejects.
	ErrIncomparable = errors.New("argument type incompatible with comparator")

	// ErrIteratorState signals Key/Value/SetValue/Delete called before any
	// movement, or Delete called twice after one movement.
	ErrIteratorState = errors.New("iterator accessed at invalid position")

	// ErrValueChangeNotAllowed signals a mutation that would violate a sub-map
	// range or implicitly evict a pair outside the view's scope. The map is
	// unchanged when this error is reported.
	ErrValueChangeNotAllowed = errors.New("change not permitted by view")

	// ErrConcurrentModification signals a structural change detected between an
	// iterator's snapshot and a subsequent step, or a mutation performed inside
	// a compute closure.
	ErrConcurrentModification = errors.New("concurrent modification detected")

	// ErrCorrupted signals that a checked helper observed the forward and
	// reverse indexes out of lockstep.
	ErrCorrupted = errors.New("bidirectional indexes desynchronized")

	// ErrUnmodifiable signals a mutator invoked on an unmodifiable wrapper.
	ErrUnmodifiable = errors.New("map is unmodifiable")
)
