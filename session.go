package motionlab

import (
	"time"

	"go.uber.org/zap"
)

// Simulation is the entity model and its update/render stages for one demo.
type Simulation interface {
	// Controls returns the controls the simulation reads.
	Controls() []Control
	// Reset discards all entities and creates fresh ones for a w×h surface.
	Reset(w, h float64)
	// Update advances entity state by dt seconds.
	Update(dt float64, in InputSnapshot)
	// Render draws the current state. It must not modify entity state.
	Render(c Canvas)
}

// SessionConfig configures a Session.
type SessionConfig struct {
	Name string
	// Requester and Clock drive the session's scheduler.
	Requester FrameRequester
	Clock     Clock
	// FrameInterval is the minimum spacing between accepted frames in
	// milliseconds. Zero accepts every tick.
	FrameInterval float64
	// Width and Height are the initial surface size.
	Width, Height float64
	// Logger receives lifecycle and debug logs. Nil disables logging.
	Logger *zap.Logger
}

// Session runs one Simulation. It owns the frame clock, the input state,
// the entities and the last recorded Frame; nothing is shared with other
// sessions.
type Session struct {
	name   string
	sim    Simulation
	input  *InputState
	sched  *Scheduler
	frame  *Frame
	width  float64
	height float64

	log   *zap.Logger
	sink  EventSink
	debug bool
}

// NewSession creates a stopped session. The simulation is reset once so a
// Draw before Start has entities to show.
func NewSession(cfg SessionConfig, sim Simulation) *Session {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = NewSystemClock()
	}
	s := &Session{
		name:   cfg.Name,
		sim:    sim,
		input:  NewInputState(sim.Controls()...),
		width:  sanitizeExtent(cfg.Width),
		height: sanitizeExtent(cfg.Height),
		log:    log.With(zap.String("session", cfg.Name)),
	}
	s.frame = NewFrame(s.width, s.height)
	s.sched = NewScheduler(cfg.Requester, clock, cfg.FrameInterval, s.runFrame)
	sim.Reset(s.width, s.height)
	return s
}

// Name returns the session name.
func (s *Session) Name() string { return s.name }

// Simulation returns the simulation driven by the session.
func (s *Session) Simulation() Simulation { return s.sim }

// Input returns the session's input state.
func (s *Session) Input() *InputState { return s.input }

// Scheduler returns the session's scheduler.
func (s *Session) Scheduler() *Scheduler { return s.sched }

// Frame returns the last recorded frame. It MUST NOT be mutated.
func (s *Session) Frame() *Frame { return s.frame }

// Size returns the current surface size.
func (s *Session) Size() (float64, float64) { return s.width, s.height }

// Running reports whether the session's loop is running.
func (s *Session) Running() bool { return s.sched.Running() }

// SetEventSink sets the optional control event sink.
func (s *Session) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables per-frame timing logs at debug level.
func (s *Session) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Start resets the entities at the current size and starts the loop. It
// does nothing when the session is already running.
func (s *Session) Start() {
	if s.sched.Running() {
		return
	}
	s.sim.Reset(s.width, s.height)
	s.sched.Start()
	s.log.Info("session started",
		zap.Float64("width", s.width),
		zap.Float64("height", s.height),
		zap.Float64("frame_interval_ms", s.sched.Interval()))
}

// Stop stops the loop. The last frame stays on display.
func (s *Session) Stop() {
	if !s.sched.Running() {
		return
	}
	s.sched.Stop()
	s.log.Info("session stopped",
		zap.Uint64("ticks", s.sched.Ticks()),
		zap.Uint64("frames", s.sched.Accepted()))
}

// Resize changes the surface size, recreates the entities for it and drops
// the recorded frame, as resizing a canvas clears it.
func (s *Session) Resize(w, h float64) {
	w, h = sanitizeExtent(w), sanitizeExtent(h)
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	s.sim.Reset(w, h)
	s.frame.Reset(w, h)
	s.log.Debug("session resized", zap.Float64("width", w), zap.Float64("height", h))
}

// SetPressed applies a key event. Codes the simulation does not read are
// ignored.
func (s *Session) SetPressed(code string, pressed bool) {
	c, ok := ParseControl(code)
	if !ok || !s.input.Set(c, pressed) {
		return
	}
	if s.sink != nil {
		s.sink.EmitControl(ControlEvent{Session: s.name, Control: c, Pressed: pressed})
	}
}

// Draw presents the last recorded frame onto c.
func (s *Session) Draw(c Canvas) {
	s.frame.Submit(c)
}

// runFrame is the accepted-frame path: sample input, update, render.
func (s *Session) runFrame(elapsed float64) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	in := s.input.Sample()
	s.sim.Update(elapsed/1000, in)

	if s.debug {
		stats.updateTime = time.Since(t0)
		t0 = time.Now()
	}

	s.frame.Reset(s.width, s.height)
	s.sim.Render(s.frame)

	if s.debug {
		stats.renderTime = time.Since(t0)
		stats.elapsed = elapsed
		stats.frame = s.frame.Stats()
		s.debugLog(stats)
	}
}
