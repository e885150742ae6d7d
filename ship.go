package motionlab

import "math/rand/v2"

// Thruster glow geometry.
const (
	glowRadius    = 20.0
	glowOverhang  = 10.0
	glowIntensity = 0.4
)

var (
	shipColor = Hex("#4a9eff")
	glowColor = Color{R: 74.0 / 255, G: 158.0 / 255, B: 1, A: glowIntensity}
)

// ShipConfig configures the top-down ship demo.
type ShipConfig struct {
	Width, Height float64
	// Speed is in units per second.
	Speed float64
	// Stars is the starfield size.
	Stars int
	// Seed seeds the starfield generator.
	Seed uint64
}

// DefaultShipConfig returns a 50×50 ship moving 300 units per second over
// 200 stars.
func DefaultShipConfig() ShipConfig {
	return ShipConfig{Width: 50, Height: 50, Speed: 300, Stars: 200, Seed: 1}
}

// Ship is a top-down mover on a scrolling starfield. Arrow keys set the
// ship's velocity on both axes; thrusters glow opposite the direction of
// travel.
type Ship struct {
	Actor Actor
	Stars *Starfield

	cfg  ShipConfig
	w, h float64
}

// NewShip creates a ship demo.
func NewShip(cfg ShipConfig) *Ship {
	return NewShipWithRand(cfg, NewRand(cfg.Seed))
}

// NewShipWithRand creates a ship demo whose starfield draws from rng.
func NewShipWithRand(cfg ShipConfig, rng *rand.Rand) *Ship {
	return &Ship{
		cfg:   cfg,
		Stars: &Starfield{rng: rng},
	}
}

// Controls returns all four arrows.
func (s *Ship) Controls() []Control {
	return []Control{ArrowLeft, ArrowRight, ArrowUp, ArrowDown}
}

// Reset centers a stationary ship and regenerates the starfield.
func (s *Ship) Reset(w, h float64) {
	s.w, s.h = w, h
	s.Actor = Actor{Width: s.cfg.Width, Height: s.cfg.Height, Speed: s.cfg.Speed}
	s.Actor.Center(w, h)
	s.Actor.Clamp(w, h)
	s.Stars.Reset(s.cfg.Stars, w, h)
}

// Update steers from input, scrolls the stars and moves the ship.
func (s *Ship) Update(dt float64, in InputSnapshot) {
	s.Actor.SteerVelocity(in)
	s.Stars.Update(dt)
	s.Actor.StepVelocity(dt, s.w, s.h)
}

// Render draws background, stars, ship and thruster glows in that order.
func (s *Ship) Render(c Canvas) {
	c.Clear(ColorBlack)
	s.Stars.Render(c)
	a := &s.Actor
	c.FillRect(a.Bounds(), shipColor)
	renderThrusters(c, a)
}

// renderThrusters draws a glow on each edge opposite a moving axis. Each of
// the four directions is independent; only the sign of VX/VY matters.
func renderThrusters(c Canvas, a *Actor) {
	if a.VY > 0 {
		c.FillRadialGlow(
			Rect{X: a.X - glowOverhang, Y: a.Y + a.Height, Width: a.Width + 2*glowOverhang, Height: glowRadius},
			Vec2{a.X + a.Width/2, a.Y + a.Height}, glowRadius, glowColor)
	}
	if a.VY < 0 {
		c.FillRadialGlow(
			Rect{X: a.X - glowOverhang, Y: a.Y - glowRadius, Width: a.Width + 2*glowOverhang, Height: glowRadius},
			Vec2{a.X + a.Width/2, a.Y}, glowRadius, glowColor)
	}
	if a.VX < 0 {
		c.FillRadialGlow(
			Rect{X: a.X + a.Width, Y: a.Y - glowOverhang, Width: glowRadius, Height: a.Height + 2*glowOverhang},
			Vec2{a.X + a.Width, a.Y + a.Height/2}, glowRadius, glowColor)
	}
	if a.VX > 0 {
		c.FillRadialGlow(
			Rect{X: a.X - glowRadius, Y: a.Y - glowOverhang, Width: glowRadius, Height: a.Height + 2*glowOverhang},
			Vec2{a.X, a.Y + a.Height/2}, glowRadius, glowColor)
	}
}
