package motionlab

import (
	"math"
	"math/rand/v2"
)

// Star depth limits. Z is drawn from [starMinZ, starMinZ+starZSpan).
const (
	starMinZ  = 1.0
	starZSpan = 3.0
	starSpeed = 50.0 // units per second at Z == 1
	starSize  = 3.0  // size at Z == 1 before the 1-unit floor
)

// Star is a decorative background point. Farther stars (larger Z) are
// smaller, slower and more transparent.
type Star struct {
	X, Y  float64
	Z     float64
	Size  float64
	Speed float64
}

// Alpha returns the star's opacity, 1/Z.
func (s *Star) Alpha() float64 {
	return 1 / s.Z
}

// Starfield is a fixed-size pool of stars scrolling down a surface. Stars
// leaving the bottom edge are recycled at the top with a fresh X and depth.
type Starfield struct {
	Stars  []Star
	width  float64
	height float64
	rng    *rand.Rand
}

// NewStarfield creates n stars scattered over a w×h surface using rng.
func NewStarfield(n int, w, h float64, rng *rand.Rand) *Starfield {
	f := &Starfield{rng: rng}
	f.Reset(n, w, h)
	return f
}

// Reset regenerates n stars for a w×h surface.
func (f *Starfield) Reset(n int, w, h float64) {
	f.width, f.height = sanitizeExtent(w), sanitizeExtent(h)
	if n < 0 {
		n = 0
	}
	if cap(f.Stars) >= n {
		f.Stars = f.Stars[:n]
	} else {
		f.Stars = make([]Star, n)
	}
	for i := range f.Stars {
		f.scatter(&f.Stars[i])
	}
}

// Update moves every star down by Speed × dt seconds.
func (f *Starfield) Update(dt float64) {
	for i := range f.Stars {
		s := &f.Stars[i]
		s.Y += s.Speed * dt
		if s.Y > f.height {
			f.scatter(s)
			s.Y = 0
		}
	}
}

// Render draws each star as a white square with depth-based alpha.
func (f *Starfield) Render(c Canvas) {
	for i := range f.Stars {
		s := &f.Stars[i]
		c.FillRect(Rect{X: s.X, Y: s.Y, Width: s.Size, Height: s.Size}, ColorWhite.WithAlpha(s.Alpha()))
	}
}

// scatter redraws position and depth, and derives size and speed from depth.
func (f *Starfield) scatter(s *Star) {
	s.X = f.rng.Float64() * f.width
	s.Y = f.rng.Float64() * f.height
	s.Z = f.rng.Float64()*starZSpan + starMinZ
	s.Size = math.Max(1, starSize/s.Z)
	s.Speed = starSpeed / s.Z
}

// sanitizeExtent maps negative and non-finite surface dimensions to 0.
func sanitizeExtent(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 1) {
		return 0
	}
	return v
}
