package motionlab

import "testing"

// frameQueue is a FrameRequester that holds callbacks until fire is called.
type frameQueue struct {
	fns []func(float64)
}

func (q *frameQueue) RequestFrame(fn func(float64)) {
	q.fns = append(q.fns, fn)
}

// fire runs every callback queued before the call with timestamp ts.
func (q *frameQueue) fire(ts float64) {
	fns := q.fns
	q.fns = nil
	for _, fn := range fns {
		fn(ts)
	}
}

func (q *frameQueue) pending() int { return len(q.fns) }

type frameRecorder struct {
	elapsed []float64
}

func (r *frameRecorder) frame(elapsed float64) {
	r.elapsed = append(r.elapsed, elapsed)
}

func newTestScheduler(interval float64) (*Scheduler, *frameQueue, *ManualClock, *frameRecorder) {
	q := &frameQueue{}
	clock := &ManualClock{}
	rec := &frameRecorder{}
	return NewScheduler(q, clock, interval, rec.frame), q, clock, rec
}

func TestSchedulerStartsStopped(t *testing.T) {
	s, q, _, _ := newTestScheduler(DefaultFrameInterval)
	if s.Running() {
		t.Error("new scheduler should be stopped")
	}
	if q.pending() != 0 {
		t.Errorf("pending = %d, want 0 before Start", q.pending())
	}
}

func TestSchedulerStartRequestsOneFrame(t *testing.T) {
	s, q, _, _ := newTestScheduler(DefaultFrameInterval)
	s.Start()
	s.Start() // no-op while running
	if !s.Running() {
		t.Fatal("Running() = false after Start")
	}
	if q.pending() != 1 {
		t.Errorf("pending = %d, want 1", q.pending())
	}
}

func TestSchedulerGating(t *testing.T) {
	tests := []struct {
		name     string
		ts       float64
		wantWork int
	}{
		{"10ms under 16.67ms interval", 10, 0},
		{"exactly one interval", DefaultFrameInterval, 1},
		{"20ms", 20, 1},
		{"long stall", 500, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, q, _, rec := newTestScheduler(DefaultFrameInterval)
			s.Start()
			q.fire(tt.ts)
			if len(rec.elapsed) != tt.wantWork {
				t.Fatalf("work ran %d times, want %d", len(rec.elapsed), tt.wantWork)
			}
			if tt.wantWork == 1 && rec.elapsed[0] != tt.ts {
				t.Errorf("elapsed = %v, want %v", rec.elapsed[0], tt.ts)
			}
			// Accepted or not, the loop keeps going.
			if q.pending() != 1 {
				t.Errorf("pending = %d, want 1", q.pending())
			}
		})
	}
}

func TestSchedulerSkippedTickKeepsLastAccepted(t *testing.T) {
	s, q, clock, rec := newTestScheduler(DefaultFrameInterval)
	clock.T = 100
	s.Start()
	q.fire(110)
	if s.LastAccepted() != 100 {
		t.Errorf("LastAccepted = %v, want 100 after skipped tick", s.LastAccepted())
	}
	q.fire(120)
	if len(rec.elapsed) != 1 || rec.elapsed[0] != 20 {
		t.Fatalf("elapsed = %v, want [20]", rec.elapsed)
	}
	if s.LastAccepted() != 120 {
		t.Errorf("LastAccepted = %v, want 120", s.LastAccepted())
	}
}

func TestSchedulerDriftSnapsToTick(t *testing.T) {
	s, q, _, rec := newTestScheduler(10)
	s.Start()
	q.fire(12) // accepted, last = 12
	q.fire(21) // 9ms since 12: skipped
	q.fire(25) // 13ms since 12: accepted
	want := []float64{12, 13}
	if len(rec.elapsed) != len(want) {
		t.Fatalf("elapsed = %v, want %v", rec.elapsed, want)
	}
	for i := range want {
		if rec.elapsed[i] != want[i] {
			t.Errorf("elapsed[%d] = %v, want %v", i, rec.elapsed[i], want[i])
		}
	}
}

func TestSchedulerStopDropsInFlightTick(t *testing.T) {
	s, q, _, rec := newTestScheduler(DefaultFrameInterval)
	s.Start()
	s.Stop()
	if s.Running() {
		t.Fatal("Running() = true after Stop")
	}
	q.fire(100)
	if len(rec.elapsed) != 0 {
		t.Errorf("work ran %d times after Stop", len(rec.elapsed))
	}
	if q.pending() != 0 {
		t.Errorf("pending = %d, want 0 after Stop", q.pending())
	}
	if s.Ticks() != 0 {
		t.Errorf("Ticks = %d, want 0", s.Ticks())
	}
}

func TestSchedulerRestartIgnoresStaleTick(t *testing.T) {
	s, q, clock, rec := newTestScheduler(DefaultFrameInterval)
	s.Start()
	s.Stop()
	clock.T = 50
	s.Start()
	if q.pending() != 2 {
		t.Fatalf("pending = %d, want 2 (stale + fresh)", q.pending())
	}
	q.fire(100)
	if len(rec.elapsed) != 1 {
		t.Fatalf("work ran %d times, want 1", len(rec.elapsed))
	}
	if rec.elapsed[0] != 50 {
		t.Errorf("elapsed = %v, want 50 from restart time", rec.elapsed[0])
	}
	if q.pending() != 1 {
		t.Errorf("pending = %d, want 1", q.pending())
	}
}

func TestSchedulerStopFromFrameFunc(t *testing.T) {
	q := &frameQueue{}
	var s *Scheduler
	calls := 0
	s = NewScheduler(q, &ManualClock{}, 0, func(float64) {
		calls++
		s.Stop()
	})
	s.Start()
	q.fire(1)
	q.fire(2)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if q.pending() != 0 {
		t.Errorf("pending = %d, want 0", q.pending())
	}
}

func TestSchedulerZeroIntervalAcceptsEveryTick(t *testing.T) {
	s, q, _, rec := newTestScheduler(-5)
	if s.Interval() != 0 {
		t.Fatalf("Interval = %v, want 0 for negative input", s.Interval())
	}
	s.Start()
	for ts := 1.0; ts <= 5; ts++ {
		q.fire(ts)
	}
	if len(rec.elapsed) != 5 {
		t.Errorf("work ran %d times, want 5", len(rec.elapsed))
	}
	if s.Ticks() != 5 || s.Accepted() != 5 {
		t.Errorf("Ticks/Accepted = %d/%d, want 5/5", s.Ticks(), s.Accepted())
	}
}

func TestSchedulerCounters(t *testing.T) {
	s, q, _, _ := newTestScheduler(10)
	s.Start()
	for _, ts := range []float64{5, 10, 15, 20, 31} {
		q.fire(ts)
	}
	// Accepted at 10, 20 and 31.
	if s.Ticks() != 5 {
		t.Errorf("Ticks = %d, want 5", s.Ticks())
	}
	if s.Accepted() != 3 {
		t.Errorf("Accepted = %d, want 3", s.Accepted())
	}
}

func TestManualClock(t *testing.T) {
	c := &ManualClock{T: 3}
	c.Advance(4.5)
	if c.Now() != 7.5 {
		t.Errorf("Now = %v, want 7.5", c.Now())
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.Now()
	b := c.Now()
	if a < 0 || b < a {
		t.Errorf("Now went from %v to %v", a, b)
	}
}
