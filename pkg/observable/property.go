// Package observable provides reactive value containers.
//
// A [Property] holds a value and notifies registered observers whenever it is
// reassigned through [Property.Set]. Observers receive the value the property
// held immediately before the assignment and the value being assigned, in
// registration order, before the new value is committed.
//
// Properties are NOT thread-safe. A property and any animation bound to it
// must be accessed from a single goroutine; callers that need cross-goroutine
// updates must serialize them externally.
package observable

import (
	stderrors "errors"

	"github.com/go-drift/motion/pkg/errors"
)

// Observer receives the property's current value (old) and the value being
// assigned (new). It runs synchronously on the assigning call stack, before
// the assignment commits.
type Observer[T any] func(old, new T)

// ErrReentrantAssignment is the underlying error carried by the panic raised
// when an observer reassigns the property it is observing.
var ErrReentrantAssignment = stderrors.New("reentrant assignment during notification")

type observerEntry[T any] struct {
	id int
	fn Observer[T]
}

// Property is an observable value container.
//
// The zero Property holds the zero value of T and no observers; NewProperty
// is the usual constructor.
type Property[T any] struct {
	value     T
	observers []observerEntry[T]
	nextID    int
	notifying bool
}

// NewProperty creates a property holding initial with no observers.
func NewProperty[T any](initial T) *Property[T] {
	return &Property[T]{value: initial}
}

// Value returns the current value. It has no side effects.
func (p *Property[T]) Value() T {
	return p.value
}

// Set assigns a new value, notifying observers first.
//
// Each observer is invoked with the value the property holds at that moment
// and the value being assigned, in registration order. Only after every
// observer has returned is the backing value overwritten (notify-then-commit).
//
// Observers may assign to other properties, register further observers, or
// write to this property via SetSilently. Calling Set on the same property
// from inside one of its observers panics with a *errors.MotionError wrapping
// [ErrReentrantAssignment]: unbounded recursive notification is a programmer
// error, not a recoverable condition.
func (p *Property[T]) Set(v T) {
	if p.notifying {
		panic(&errors.MotionError{
			Op:   "observable.Property.Set",
			Kind: errors.KindState,
			Err:  ErrReentrantAssignment,
		})
	}
	p.notifying = true
	defer func() { p.notifying = false }()

	// Snapshot so observers can subscribe or unsubscribe mid-notification
	// without disturbing this pass.
	snapshot := make([]observerEntry[T], len(p.observers))
	copy(snapshot, p.observers)
	for _, e := range snapshot {
		e.fn(p.value, v)
	}
	p.value = v
}

// SetSilently commits a new value without notifying observers.
//
// This is the explicit silent counterpart to Set. Animations write each tick
// through this path so per-frame updates do not fan out through observer
// chains; only deliberate user-level assignments notify. SetSilently is legal
// at any time, including from inside an observer of this property.
func (p *Property[T]) SetSilently(v T) {
	p.value = v
}

// AddObserver registers fn and returns an unsubscribe function.
//
// Observers are notified in registration order, and that order is preserved
// when other observers are removed. Unsubscribing is idempotent; calling the
// returned function more than once has no further effect.
func (p *Property[T]) AddObserver(fn Observer[T]) func() {
	id := p.nextID
	p.nextID++
	p.observers = append(p.observers, observerEntry[T]{id: id, fn: fn})
	return func() {
		for i, e := range p.observers {
			if e.id == id {
				p.observers = append(p.observers[:i], p.observers[i+1:]...)
				return
			}
		}
	}
}

// ObserverCount returns the number of registered observers.
func (p *Property[T]) ObserverCount() int {
	return len(p.observers)
}
