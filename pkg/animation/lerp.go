package animation

import (
	"math"
	"time"

	"github.com/go-drift/motion/pkg/graphics"
	"github.com/go-drift/motion/pkg/observable"
)

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// RoundingPolicy selects how integer interpolation converts the floating
// intermediate back to an integer. Integer lerps lose precision somewhere;
// the policy makes the choice explicit instead of an implicit cast.
type RoundingPolicy int

const (
	// TruncatePolicy discards the fractional part, truncating toward zero.
	TruncatePolicy RoundingPolicy = iota
	// RoundPolicy rounds to the nearest integer, half away from zero.
	RoundPolicy
)

// LerpIntWith returns an integer lerp using the given rounding policy.
func LerpIntWith(policy RoundingPolicy) func(a, b int, t float64) int {
	return func(a, b int, t float64) int {
		v := float64(a) + (float64(b)-float64(a))*t
		if policy == RoundPolicy {
			return int(math.Round(v))
		}
		return int(v)
	}
}

// LerpInt linearly interpolates between two int values, truncating toward
// zero.
var LerpInt = LerpIntWith(TruncatePolicy)

// LerpPoint linearly interpolates between two Point values.
func LerpPoint(a, b graphics.Point, t float64) graphics.Point {
	return graphics.Point{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpSize linearly interpolates between two Size values.
func LerpSize(a, b graphics.Size, t float64) graphics.Size {
	return graphics.Size{
		Width:  LerpFloat64(a.Width, b.Width, t),
		Height: LerpFloat64(a.Height, b.Height, t),
	}
}

// LerpRect linearly interpolates between two Rect values.
func LerpRect(a, b graphics.Rect, t float64) graphics.Rect {
	return graphics.Rect{
		Origin: LerpPoint(a.Origin, b.Origin, t),
		Size:   LerpSize(a.Size, b.Size, t),
	}
}

// LerpColor linearly interpolates between two Color values per channel.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	r := uint8(LerpFloat64(float64(a.R()), float64(b.R()), t))
	g := uint8(LerpFloat64(float64(a.G()), float64(b.G()), t))
	bb := uint8(LerpFloat64(float64(a.B()), float64(b.B()), t))
	alpha := uint8(LerpFloat64(float64(a.A()), float64(b.A()), t))
	return graphics.RGBA8(r, g, bb, alpha)
}

// AnimateFloat64 creates an animation over a float64 property.
func AnimateFloat64(target *observable.Property[float64], begin, end float64, d time.Duration) *Animation[float64] {
	return New(target, begin, end, d, LerpFloat64)
}

// AnimateInt creates an animation over an int property, truncating toward
// zero. Use AnimateIntWith to choose a different rounding policy.
func AnimateInt(target *observable.Property[int], begin, end int, d time.Duration) *Animation[int] {
	return AnimateIntWith(target, begin, end, d, TruncatePolicy)
}

// AnimateIntWith creates an animation over an int property with an explicit
// rounding policy.
func AnimateIntWith(target *observable.Property[int], begin, end int, d time.Duration, policy RoundingPolicy) *Animation[int] {
	return New(target, begin, end, d, LerpIntWith(policy))
}

// AnimatePoint creates an animation over a Point property.
func AnimatePoint(target *observable.Property[graphics.Point], begin, end graphics.Point, d time.Duration) *Animation[graphics.Point] {
	return New(target, begin, end, d, LerpPoint)
}

// AnimateSize creates an animation over a Size property.
func AnimateSize(target *observable.Property[graphics.Size], begin, end graphics.Size, d time.Duration) *Animation[graphics.Size] {
	return New(target, begin, end, d, LerpSize)
}

// AnimateRect creates an animation over a Rect property.
func AnimateRect(target *observable.Property[graphics.Rect], begin, end graphics.Rect, d time.Duration) *Animation[graphics.Rect] {
	return New(target, begin, end, d, LerpRect)
}

// AnimateColor creates an animation over a Color property.
func AnimateColor(target *observable.Property[graphics.Color], begin, end graphics.Color, d time.Duration) *Animation[graphics.Color] {
	return New(target, begin, end, d, LerpColor)
}
