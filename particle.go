package motionlab

import "math/rand/v2"

// Particle is a point mass with a per-frame velocity and a palette tag.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Tag    int
}

// ParticleConfig controls how a ParticleField is populated.
type ParticleConfig struct {
	// Count is the number of particles.
	Count int
	// Width and Height bound the field.
	Width, Height float64
	// Velocity is the range of each velocity component, in units per frame.
	Velocity Range
	// Hues is the number of distinct palette entries. Zero gives every
	// particle its own random hue.
	Hues int
	// Saturation and Lightness apply to every palette entry.
	Saturation, Lightness float64
	// Radius is the drawn circle radius.
	Radius float64
}

// DefaultParticleConfig matches the performance demos: 1000 particles on a
// 300×200 surface, velocities in [-1, 1), one hue per particle.
func DefaultParticleConfig() ParticleConfig {
	return ParticleConfig{
		Count:      1000,
		Width:      300,
		Height:     200,
		Velocity:   Range{Min: -1, Max: 1},
		Saturation: 0.5,
		Lightness:  0.5,
		Radius:     2,
	}
}

// ParticleField is a bounded set of particles that reflect off the surface
// edges. Steps are frame-based: velocity is a displacement per step and is
// not scaled by elapsed time.
type ParticleField struct {
	Particles []Particle
	Palette   []Color
	Width     float64
	Height    float64
}

// NewParticleField populates a field from cfg using rng.
func NewParticleField(cfg ParticleConfig, rng *rand.Rand) *ParticleField {
	n := max(cfg.Count, 0)
	w, h := sanitizeExtent(cfg.Width), sanitizeExtent(cfg.Height)

	hues := cfg.Hues
	if hues <= 0 {
		hues = n
	}
	palette := make([]Color, hues)
	for i := range palette {
		palette[i] = HSL(rng.Float64()*360, cfg.Saturation, cfg.Lightness)
	}

	f := &ParticleField{
		Particles: make([]Particle, n),
		Palette:   palette,
		Width:     w,
		Height:    h,
	}
	for i := range f.Particles {
		p := &f.Particles[i]
		p.X = rng.Float64() * w
		p.Y = rng.Float64() * h
		p.VX = cfg.Velocity.Random(rng)
		p.VY = cfg.Velocity.Random(rng)
		if cfg.Hues <= 0 {
			p.Tag = i
		} else {
			p.Tag = rng.IntN(hues)
		}
	}
	return f
}

// Color returns the palette color of p.
func (f *ParticleField) Color(p *Particle) Color {
	if p.Tag < 0 || p.Tag >= len(f.Palette) {
		return ColorWhite
	}
	return f.Palette[p.Tag]
}

// Step advances every particle by one frame.
func (f *ParticleField) Step() {
	for i := range f.Particles {
		f.stepOne(&f.Particles[i])
	}
}

// stepOne moves p by its velocity and flips the velocity of any axis that is
// out of bounds. Position is not corrected, so a fast particle can sit past
// an edge for a frame.
func (f *ParticleField) stepOne(p *Particle) {
	p.X += p.VX
	p.Y += p.VY
	if p.X < 0 || p.X > f.Width {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > f.Height {
		p.VY = -p.VY
	}
}

// DrawEach issues one circle fill per particle, switching fill color for
// every particle.
func (f *ParticleField) DrawEach(c Canvas, radius float64) {
	for i := range f.Particles {
		p := &f.Particles[i]
		c.FillCircle(p.X, p.Y, radius, f.Color(p))
	}
}
