package motionlab

import "math"

// Actor is a controllable axis-aligned box. Position is the top-left corner
// in surface coordinates.
//
// Two motion models are supported. The directional model reads Dir (each
// axis -1, 0 or +1) and moves Speed units per second along it. The velocity
// model reads VX/VY, set to ±Speed from input. After either step the actor is
// clamped so it stays fully on the surface.
type Actor struct {
	X, Y          float64
	Width, Height float64
	// Speed is in units per second.
	Speed float64

	Dir    Vec2
	VX, VY float64
}

// Center places the actor in the middle of a w×h surface.
func (a *Actor) Center(w, h float64) {
	a.X = w/2 - a.Width/2
	a.Y = h/2 - a.Height/2
}

// Bounds returns the actor's rectangle.
func (a *Actor) Bounds() Rect {
	return Rect{X: a.X, Y: a.Y, Width: a.Width, Height: a.Height}
}

// SteerDirectional derives Dir.X from input. ArrowRight is checked last, so
// it wins when both horizontal arrows are held.
func (a *Actor) SteerDirectional(in InputSnapshot) {
	a.Dir = Vec2{}
	if in.Held(ArrowLeft) {
		a.Dir.X = -1
	}
	if in.Held(ArrowRight) {
		a.Dir.X = 1
	}
}

// SteerVelocity sets VX/VY to ±Speed from input. Right wins over left and
// down wins over up when both are held.
func (a *Actor) SteerVelocity(in InputSnapshot) {
	a.VX, a.VY = 0, 0
	if in.Held(ArrowLeft) {
		a.VX = -a.Speed
	}
	if in.Held(ArrowRight) {
		a.VX = a.Speed
	}
	if in.Held(ArrowUp) {
		a.VY = -a.Speed
	}
	if in.Held(ArrowDown) {
		a.VY = a.Speed
	}
}

// StepDirectional advances by Dir × Speed × dt seconds, then clamps to w×h.
func (a *Actor) StepDirectional(dt, w, h float64) {
	a.X += a.Dir.X * a.Speed * dt
	a.Y += a.Dir.Y * a.Speed * dt
	a.Clamp(w, h)
}

// StepVelocity advances by (VX, VY) × dt seconds, then clamps to w×h.
func (a *Actor) StepVelocity(dt, w, h float64) {
	a.X += a.VX * dt
	a.Y += a.VY * dt
	a.Clamp(w, h)
}

// Clamp restricts the actor to [0, w-Width] × [0, h-Height]. A surface
// smaller than the actor pins it to the origin.
func (a *Actor) Clamp(w, h float64) {
	a.X = clampAxis(a.X, a.Width, w)
	a.Y = clampAxis(a.Y, a.Height, h)
}

// clampAxis saturates v to [0, max(extent-size, 0)]. Non-finite input
// and non-finite extents collapse to 0 so NaN never leaks into entity state.
func clampAxis(v, size, extent float64) float64 {
	hi := extent - size
	// An infinite extent is treated as no surface at all, not an unbounded one.
	if !(hi > 0) || math.IsInf(hi, 0) {
		hi = 0
	}
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > hi:
		return hi
	}
	return v
}
