package motionlab

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// galleryBox is the edge length of the moving box in the stepping demos.
const galleryBox = 40.0

// FrameStepDemo moves a box a fixed distance per frame, wrapping at the
// right edge. Its speed depends on the frame rate.
type FrameStepDemo struct {
	// Step is the distance moved per frame.
	Step float64
	X    float64

	w, h float64
}

// NewMotionDemo returns the basic motion demo, 2 units per frame.
func NewMotionDemo() *FrameStepDemo {
	return &FrameStepDemo{Step: 2}
}

// NewFrameBasedDemo returns the frame-based stepping demo, 3 units per frame.
func NewFrameBasedDemo() *FrameStepDemo {
	return &FrameStepDemo{Step: 3}
}

// Controls returns nil; the demo takes no input.
func (d *FrameStepDemo) Controls() []Control { return nil }

// Reset moves the box back to the left edge.
func (d *FrameStepDemo) Reset(w, h float64) {
	d.w, d.h = w, h
	d.X = 0
}

// Update advances one frame; dt is ignored.
func (d *FrameStepDemo) Update(_ float64, _ InputSnapshot) {
	d.X = wrap(d.X+d.Step, d.w-galleryBox)
}

// Render draws the box centered vertically.
func (d *FrameStepDemo) Render(c Canvas) {
	c.Clear(ColorTransparent)
	c.FillRect(Rect{X: d.X, Y: d.h/2 - galleryBox/2, Width: galleryBox, Height: galleryBox}, playerColor)
}

// wrap returns v modulo span, or 0 when span is not positive.
func wrap(v, span float64) float64 {
	if !(span > 0) {
		return 0
	}
	return math.Mod(v, span)
}

// TimeStepDemo moves a box at a fixed speed in units per second and shows
// the instantaneous frame rate.
type TimeStepDemo struct {
	// Speed is in units per second.
	Speed float64
	X     float64

	fps  float64
	w, h float64
}

// NewTimeBasedDemo returns the time-based stepping demo at 150 units per second.
func NewTimeBasedDemo() *TimeStepDemo {
	return &TimeStepDemo{Speed: 150}
}

// Controls returns nil; the demo takes no input.
func (d *TimeStepDemo) Controls() []Control { return nil }

// Reset moves the box back to the left edge.
func (d *TimeStepDemo) Reset(w, h float64) {
	d.w, d.h = w, h
	d.X = 0
	d.fps = 0
}

// Update advances by Speed × dt and restarts at the left edge once the box
// reaches the right edge.
func (d *TimeStepDemo) Update(dt float64, _ InputSnapshot) {
	d.X += d.Speed * dt
	if d.X >= d.w-galleryBox {
		d.X = 0
	}
	if dt > 0 {
		d.fps = math.Round(1 / dt)
	}
}

// Render draws the box and the frame rate.
func (d *TimeStepDemo) Render(c Canvas) {
	c.Clear(ColorTransparent)
	c.FillRect(Rect{X: d.X, Y: d.h/2 - galleryBox/2, Width: galleryBox, Height: galleryBox}, playerColor)
	c.DebugText(fmt.Sprintf("FPS: %.0f", d.fps), 10, 8)
}

// ParticleDemo bounces a particle field around the surface, drawn either
// one fill per particle or one fill per color.
type ParticleDemo struct {
	// Optimized selects grouped drawing.
	Optimized bool
	Field     *ParticleField
	FPS       FPSCounter

	cfg     ParticleConfig
	rng     *rand.Rand
	batches ParticleBatches
}

// NewParticleDemo creates a particle demo seeded with seed.
func NewParticleDemo(cfg ParticleConfig, optimized bool, seed uint64) *ParticleDemo {
	return &ParticleDemo{
		Optimized: optimized,
		cfg:       cfg,
		rng:       NewRand(seed),
	}
}

// Controls returns nil; the demo takes no input.
func (d *ParticleDemo) Controls() []Control { return nil }

// Reset creates a fresh particle field for a w×h surface.
func (d *ParticleDemo) Reset(w, h float64) {
	cfg := d.cfg
	cfg.Width, cfg.Height = w, h
	d.Field = NewParticleField(cfg, d.rng)
	d.FPS.Reset()
	d.batches.reset(d.Field.Palette)
}

// Batches returns the grouping from the last optimized step.
func (d *ParticleDemo) Batches() *ParticleBatches {
	return &d.batches
}

// Update steps every particle one frame. dt only feeds the FPS readout.
func (d *ParticleDemo) Update(dt float64, _ InputSnapshot) {
	d.FPS.Frame(dt * 1000)
	if d.Optimized {
		d.Field.StepAndGroup(&d.batches)
		return
	}
	d.Field.Step()
}

// Render draws the particles and the FPS readout.
func (d *ParticleDemo) Render(c Canvas) {
	c.Clear(ColorTransparent)
	if d.Optimized {
		d.batches.Draw(c, d.cfg.Radius)
	} else {
		d.Field.DrawEach(c, d.cfg.Radius)
	}
	c.DebugText(d.FPS.Label(), 4, 4)
}

// ShapesDemo draws a static rectangle, circle and triangle.
type ShapesDemo struct {
	triangle [3]Vec2
}

// NewShapesDemo creates the shapes demo.
func NewShapesDemo() *ShapesDemo {
	return &ShapesDemo{triangle: [3]Vec2{{200, 90}, {240, 40}, {240, 90}}}
}

// Controls returns nil; the demo takes no input.
func (d *ShapesDemo) Controls() []Control { return nil }

// Reset does nothing; the shapes have fixed positions.
func (d *ShapesDemo) Reset(_, _ float64) {}

// Update does nothing.
func (d *ShapesDemo) Update(_ float64, _ InputSnapshot) {}

// Render draws the three shapes.
func (d *ShapesDemo) Render(c Canvas) {
	c.Clear(ColorTransparent)
	c.FillRect(Rect{X: 50, Y: 50, Width: 60, Height: 40}, Hex("#246"))
	c.FillCircle(150, 70, 25, Hex("#48c"))
	c.FillPath(d.triangle[:], Hex("#6ae"))
}
