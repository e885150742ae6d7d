package motionlab

var playerColor = Hex("#246")

// SideScrollerConfig configures the side-scroller demo.
type SideScrollerConfig struct {
	Width, Height float64
	// Speed is in units per second.
	Speed float64
}

// DefaultSideScrollerConfig returns a 50×50 player moving 300 units per second.
func DefaultSideScrollerConfig() SideScrollerConfig {
	return SideScrollerConfig{Width: 50, Height: 50, Speed: 300}
}

// SideScroller moves a box horizontally with the left and right arrows.
type SideScroller struct {
	Player Actor

	cfg  SideScrollerConfig
	w, h float64
}

// NewSideScroller creates a side-scroller demo.
func NewSideScroller(cfg SideScrollerConfig) *SideScroller {
	return &SideScroller{cfg: cfg}
}

// Controls returns the horizontal arrows.
func (s *SideScroller) Controls() []Control {
	return []Control{ArrowLeft, ArrowRight}
}

// Reset centers a stationary player.
func (s *SideScroller) Reset(w, h float64) {
	s.w, s.h = w, h
	s.Player = Actor{Width: s.cfg.Width, Height: s.cfg.Height, Speed: s.cfg.Speed}
	s.Player.Center(w, h)
	s.Player.Clamp(w, h)
}

// Update steers from input and moves the player.
func (s *SideScroller) Update(dt float64, in InputSnapshot) {
	s.Player.SteerDirectional(in)
	s.Player.StepDirectional(dt, s.w, s.h)
}

// Render clears to transparent and draws the player.
func (s *SideScroller) Render(c Canvas) {
	c.Clear(ColorTransparent)
	c.FillRect(s.Player.Bounds(), playerColor)
}
