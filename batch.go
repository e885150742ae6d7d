package motionlab

// ParticleBatches groups particle positions by palette tag so each tag can
// be drawn with a single fill. Buffers are reused across frames.
type ParticleBatches struct {
	// order lists tags in the order they were first seen this frame.
	order   []int
	centers [][]Vec2
	colors  []Color
}

// Len returns the number of distinct tags in the current grouping.
func (b *ParticleBatches) Len() int {
	return len(b.order)
}

// Tags returns the tags of the current grouping in draw order. The slice
// MUST NOT be mutated.
func (b *ParticleBatches) Tags() []int {
	return b.order
}

// Centers returns the grouped positions for tag.
func (b *ParticleBatches) Centers(tag int) []Vec2 {
	if tag < 0 || tag >= len(b.centers) {
		return nil
	}
	return b.centers[tag]
}

// reset empties every group while keeping capacity.
func (b *ParticleBatches) reset(palette []Color) {
	for _, tag := range b.order {
		b.centers[tag] = b.centers[tag][:0]
	}
	b.order = b.order[:0]
	if len(b.centers) < len(palette) {
		b.centers = append(b.centers, make([][]Vec2, len(palette)-len(b.centers))...)
	}
	b.colors = append(b.colors[:0], palette...)
}

func (b *ParticleBatches) add(tag int, p Vec2) {
	if len(b.centers[tag]) == 0 {
		b.order = append(b.order, tag)
	}
	b.centers[tag] = append(b.centers[tag], p)
}

// Draw issues one FillCircles per tag. The number of fills equals Len, no
// matter how many particles there are.
func (b *ParticleBatches) Draw(c Canvas, radius float64) {
	for _, tag := range b.order {
		c.FillCircles(b.centers[tag], radius, b.colors[tag])
	}
}

// StepAndGroup advances every particle one frame and groups the new
// positions by tag in the same traversal. Particles with an out-of-range
// tag are stepped but not drawn.
func (f *ParticleField) StepAndGroup(b *ParticleBatches) {
	b.reset(f.Palette)
	for i := range f.Particles {
		p := &f.Particles[i]
		f.stepOne(p)
		if p.Tag >= 0 && p.Tag < len(f.Palette) {
			b.add(p.Tag, Vec2{p.X, p.Y})
		}
	}
}
