package motionlab

import "testing"

func TestNewParticleFieldDefaults(t *testing.T) {
	cfg := DefaultParticleConfig()
	f := NewParticleField(cfg, NewRand(1))
	if len(f.Particles) != 1000 {
		t.Fatalf("len = %d, want 1000", len(f.Particles))
	}
	if len(f.Palette) != 1000 {
		t.Errorf("palette = %d, want one hue per particle", len(f.Palette))
	}
	for i, p := range f.Particles {
		if p.X < 0 || p.X >= 300 || p.Y < 0 || p.Y >= 200 {
			t.Fatalf("particle %d at (%v, %v) off the 300×200 surface", i, p.X, p.Y)
		}
		if p.VX < -1 || p.VX >= 1 || p.VY < -1 || p.VY >= 1 {
			t.Fatalf("particle %d velocity (%v, %v) outside [-1, 1)", i, p.VX, p.VY)
		}
		if p.Tag != i {
			t.Fatalf("particle %d tag = %d, want %d", i, p.Tag, i)
		}
	}
}

func TestNewParticleFieldSharedHues(t *testing.T) {
	cfg := DefaultParticleConfig()
	cfg.Hues = 8
	f := NewParticleField(cfg, NewRand(1))
	if len(f.Palette) != 8 {
		t.Fatalf("palette = %d, want 8", len(f.Palette))
	}
	for i, p := range f.Particles {
		if p.Tag < 0 || p.Tag >= 8 {
			t.Fatalf("particle %d tag = %d, want [0, 8)", i, p.Tag)
		}
	}
}

func TestParticleReflect(t *testing.T) {
	tests := []struct {
		name           string
		p              Particle
		wantX, wantY   float64
		wantVX, wantVY float64
	}{
		{"left edge", Particle{X: -5, Y: 100, VX: 3, VY: 0}, -2, 100, -3, 0},
		{"crossing left", Particle{X: 0.5, Y: 100, VX: -1, VY: 0}, -0.5, 100, 1, 0},
		{"right edge", Particle{X: 299.5, Y: 100, VX: 1, VY: 0}, 300.5, 100, -1, 0},
		{"bottom edge", Particle{X: 10, Y: 199.5, VX: 0, VY: 1}, 10, 200.5, 0, -1},
		{"top edge", Particle{X: 10, Y: 0.25, VX: 0, VY: -0.5}, 10, -0.25, 0, 0.5},
		{"on the edge is inside", Particle{X: 299, Y: 10, VX: 1, VY: 0}, 300, 10, 1, 0},
		{"interior", Particle{X: 50, Y: 50, VX: 0.5, VY: -0.5}, 50.5, 49.5, 0.5, -0.5},
		{"corner flips both", Particle{X: 0, Y: 0, VX: -1, VY: -1}, -1, -1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &ParticleField{Particles: []Particle{tt.p}, Width: 300, Height: 200}
			f.Step()
			p := f.Particles[0]
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("pos = (%v, %v), want (%v, %v)", p.X, p.Y, tt.wantX, tt.wantY)
			}
			if p.VX != tt.wantVX || p.VY != tt.wantVY {
				t.Errorf("vel = (%v, %v), want (%v, %v)", p.VX, p.VY, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestParticleStepIgnoresElapsedTime(t *testing.T) {
	a := NewParticleDemo(DefaultParticleConfig(), false, 5)
	b := NewParticleDemo(DefaultParticleConfig(), false, 5)
	a.Reset(300, 200)
	b.Reset(300, 200)
	a.Update(1.0/60, InputSnapshot{})
	b.Update(1.0/10, InputSnapshot{})
	for i := range a.Field.Particles {
		if a.Field.Particles[i] != b.Field.Particles[i] {
			t.Fatalf("particle %d depends on dt", i)
		}
	}
}

func TestParticleColor(t *testing.T) {
	f := &ParticleField{Palette: []Color{{R: 1, A: 1}}}
	if got := f.Color(&Particle{Tag: 0}); got != (Color{R: 1, A: 1}) {
		t.Errorf("Color(tag 0) = %+v", got)
	}
	if got := f.Color(&Particle{Tag: 4}); got != ColorWhite {
		t.Errorf("Color(out of range) = %+v, want white", got)
	}
}

func TestDrawEachOneFillPerParticle(t *testing.T) {
	f := NewParticleField(DefaultParticleConfig(), NewRand(2))
	frame := NewFrame(300, 200)
	f.DrawEach(frame, 2)
	st := frame.Stats()
	if st.Fills != 1000 {
		t.Errorf("Fills = %d, want 1000", st.Fills)
	}
}
