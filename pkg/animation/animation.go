// Package animation drives observable property values from a start state to
// an end state over a fixed duration.
//
// # Core Components
//
//   - [Animation]: binds a begin/end value pair and a duration to an
//     [observable.Property], writing interpolated values into it as the
//     caller supplies timestamps.
//
//   - [Clock]: the injectable time source behind [Animation.Prepare].
//     Tests replace it with a fake clock instead of sleeping.
//
//   - Lerp helpers: linear interpolation for float64, int (with an explicit
//     [RoundingPolicy]), and the graphics value types.
//
// # Basic Usage
//
// Construct an animation over a property, prepare it to capture the start
// time, then advance it with the current time until it reports finished:
//
//	width := observable.NewProperty(0.0)
//	anim := animation.AnimateFloat64(width, 0, 500, 250*time.Millisecond)
//	anim.Prepare()
//	for now := animation.Now(); !anim.IsFinished(now); now = animation.Now() {
//	    anim.Advance(now)
//	    // render width.Value(), pace the loop as desired
//	}
//
// The package owns no scheduling: pacing, frame rate, and the decision to
// stop advancing all belong to the caller. Advancing writes through
// [observable.Property.SetSilently], so per-tick updates never fan out
// through the property's observers.
package animation

import (
	stderrors "errors"
	"time"

	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/observable"
)

// ErrNotPrepared is returned by Advance when the animation has not captured
// a start time yet. Call Prepare first.
var ErrNotPrepared error = &errors.MotionError{
	Op:   "animation.Advance",
	Kind: errors.KindState,
	Err:  stderrors.New("animation advanced before Prepare"),
}

// Animation interpolates a bound property from Begin to End over Duration.
//
// The lifecycle is unprepared, then running after [Animation.Prepare], then
// finished once progress reaches 1. The animation does not own the property
// it writes to; the property must outlive the animation.
//
// Animations are NOT thread-safe; an animation and its bound property belong
// to a single goroutine.
type Animation[T any] struct {
	// Begin is the value written at progress 0.
	Begin T
	// End is the value written at progress 1.
	End T
	// Duration is the length of the animation. A Duration of zero or less
	// means the animation is finished the moment it is prepared.
	Duration time.Duration
	// Lerp linearly interpolates between Begin and End. Receives the begin
	// value, end value, and progress t. Returns the interpolated value.
	Lerp func(a, b T, t float64) T

	target     *observable.Property[T]
	startTime  time.Time
	prepared   bool
	completed  bool
	onComplete *observable.Notifier
}

// New creates an animation that writes interpolated values into target.
func New[T any](target *observable.Property[T], begin, end T, duration time.Duration, lerp func(a, b T, t float64) T) *Animation[T] {
	return &Animation[T]{
		Begin:      begin,
		End:        end,
		Duration:   duration,
		Lerp:       lerp,
		target:     target,
		onComplete: observable.NewNotifier(),
	}
}

// Prepare captures the start time from the package clock and moves the
// animation into its running state. It must be called before Advance.
// Calling Prepare again is safe: it re-captures the start time and re-arms
// completion notification, restarting the animation from now.
func (a *Animation[T]) Prepare() {
	a.startTime = Now()
	a.prepared = true
	a.completed = false
}

// Progress returns the fraction of the animation elapsed at now.
//
// The result is not clamped: values above 1 report overshoot and values
// below 0 report a timestamp before the captured start time. Callers that
// want clamped writes use Advance, which interprets the fraction.
//
// Progress is defined in every state: an unprepared animation has made no
// progress, a non-positive Duration is complete immediately, and now equal
// to the start time is exactly 0.
func (a *Animation[T]) Progress(now time.Time) float64 {
	if !a.prepared {
		return 0
	}
	if a.Duration <= 0 {
		return 1
	}
	elapsed := now.Sub(a.startTime)
	if elapsed == 0 {
		return 0
	}
	return float64(elapsed) / float64(a.Duration)
}

// Value returns the interpolated value at progress t.
func (a *Animation[T]) Value(t float64) T {
	if a.Lerp == nil {
		return a.End
	}
	return a.Lerp(a.Begin, a.End, t)
}

// Advance writes the value for the given timestamp into the bound property.
//
// Progress above 1 writes exactly End and progress below 0 writes exactly
// Begin; anything between writes the interpolated value. Writes go through
// the property's silent path, so observers do not fire on ticks.
//
// The first Advance at or past completion fires the OnComplete listeners.
// Advancing an unprepared animation writes nothing and returns
// [ErrNotPrepared].
func (a *Animation[T]) Advance(now time.Time) error {
	if !a.prepared {
		return ErrNotPrepared
	}
	prog := a.Progress(now)
	switch {
	case prog > 1:
		a.target.SetSilently(a.End)
	case prog < 0:
		a.target.SetSilently(a.Begin)
	default:
		a.target.SetSilently(a.Value(prog))
	}
	if prog >= 1 && !a.completed {
		a.completed = true
		a.onComplete.Notify()
	}
	return nil
}

// IsFinished reports whether the animation has run its full duration at now.
// An unprepared animation is never finished.
func (a *Animation[T]) IsFinished(now time.Time) bool {
	return a.prepared && a.Progress(now) >= 1
}

// OnComplete adds a callback fired by the first Advance that reaches
// completion. Returns an unsubscribe function.
func (a *Animation[T]) OnComplete(fn func()) func() {
	return a.onComplete.AddListener(fn)
}

// Target returns the property this animation writes into.
func (a *Animation[T]) Target() *observable.Property[T] {
	return a.target
}
