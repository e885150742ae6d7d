package motionlab

// DefaultFrameInterval is the minimum spacing between accepted frames, in
// milliseconds, for a 60 FPS cap.
const DefaultFrameInterval = 1000.0 / 60.0

// FrameFunc performs one unit of frame work. elapsed is the time since the
// previous accepted frame in milliseconds.
type FrameFunc func(elapsed float64)

// Scheduler drives a FrameFunc from display refresh callbacks. Ticks arrive
// at the refresh rate; work runs only once at least Interval milliseconds
// have passed since the last accepted frame.
//
// The scheduler has two states, stopped and running. Stop is cooperative: a
// tick already requested still fires, sees the stopped flag, and returns
// without requesting another.
type Scheduler struct {
	requester FrameRequester
	clock     Clock
	interval  float64
	frame     FrameFunc

	running bool
	last    float64
	// epoch increments on every Start so that callbacks requested by an
	// earlier run are ignored after a Stop/Start pair.
	epoch uint64

	ticks    uint64
	accepted uint64
}

// NewScheduler creates a stopped scheduler. interval is in milliseconds; zero
// accepts every tick.
func NewScheduler(req FrameRequester, clock Clock, interval float64, fn FrameFunc) *Scheduler {
	if interval < 0 {
		interval = 0
	}
	return &Scheduler{
		requester: req,
		clock:     clock,
		interval:  interval,
		frame:     fn,
	}
}

// Start moves the scheduler to running, resets the frame clock to now and
// requests the first tick. Calling Start while running does nothing.
func (s *Scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.last = s.clock.Now()
	s.epoch++
	s.request()
}

// Stop moves the scheduler to stopped. No further frame work runs.
func (s *Scheduler) Stop() {
	s.running = false
}

// Running reports whether the scheduler is in the running state.
func (s *Scheduler) Running() bool {
	return s.running
}

// Interval returns the minimum frame spacing in milliseconds.
func (s *Scheduler) Interval() float64 {
	return s.interval
}

// LastAccepted returns the timestamp of the last accepted frame, or the
// Start time when no frame has been accepted yet.
func (s *Scheduler) LastAccepted() float64 {
	return s.last
}

// Ticks returns the number of ticks processed while running.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

// Accepted returns the number of ticks that performed frame work.
func (s *Scheduler) Accepted() uint64 { return s.accepted }

// Tick processes one refresh callback for the current run.
func (s *Scheduler) Tick(timestamp float64) {
	s.tick(s.epoch, timestamp)
}

func (s *Scheduler) tick(epoch uint64, timestamp float64) {
	if !s.running || epoch != s.epoch {
		return
	}
	s.ticks++

	elapsed := timestamp - s.last
	if elapsed >= s.interval {
		s.accepted++
		if s.frame != nil {
			s.frame(elapsed)
		}
		// Drift is tolerated: the clock snaps to the tick, not to last+interval.
		s.last = timestamp
	}

	// The frame func may have stopped the loop.
	if s.running && epoch == s.epoch {
		s.request()
	}
}

func (s *Scheduler) request() {
	epoch := s.epoch
	s.requester.RequestFrame(func(ts float64) {
		s.tick(epoch, ts)
	})
}
