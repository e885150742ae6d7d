package motionlab

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// LoopTween animates one float64 field from a start to an end value and
// starts over when it finishes, like a CSS transition with an infinite
// iteration count.
type LoopTween struct {
	tween *gween.Tween
	field *float64
	Loops int
}

// NewLoopTween creates a looping tween writing into field.
func NewLoopTween(field *float64, from, to float64, duration float32, fn ease.TweenFunc) *LoopTween {
	*field = from
	return &LoopTween{
		tween: gween.New(float32(from), float32(to), duration, fn),
		field: field,
	}
}

// Update advances the tween by dt seconds and writes the value to the field.
func (t *LoopTween) Update(dt float32) {
	val, finished := t.tween.Update(dt)
	*t.field = float64(val)
	if finished {
		t.tween.Reset()
		t.Loops++
	}
}

// Reset rewinds the tween to its start value.
func (t *LoopTween) Reset() {
	t.tween.Reset()
	val, _ := t.tween.Update(0)
	*t.field = float64(val)
	t.Loops = 0
}

const (
	compareBox    = 20.0
	compareTravel = 130.0
	compareStep   = 2.0
)

var compareColor = Hex("#0000ff")

// CompareDemo runs two boxes side by side: one stepped by hand every frame
// and one driven declaratively by a linear 2-second tween.
type CompareDemo struct {
	// SteppedX moves 2 units per frame, wrapping at 130.
	SteppedX float64
	// TweenX is written by the tween.
	TweenX float64

	tween *LoopTween
}

// NewCompareDemo creates the stepped-vs-tweened comparison.
func NewCompareDemo() *CompareDemo {
	d := &CompareDemo{}
	d.tween = NewLoopTween(&d.TweenX, 0, compareTravel, 2, ease.Linear)
	return d
}

// Controls returns nil; the demo takes no input.
func (d *CompareDemo) Controls() []Control { return nil }

// Reset puts both boxes back at the left edge.
func (d *CompareDemo) Reset(_, _ float64) {
	d.SteppedX = 0
	d.tween.Reset()
}

// Update steps the hand-driven box one frame and advances the tween by dt.
func (d *CompareDemo) Update(dt float64, _ InputSnapshot) {
	d.SteppedX = wrap(d.SteppedX+compareStep, compareTravel)
	d.tween.Update(float32(dt))
}

// Render draws the stepped box on top and the tweened box below it.
func (d *CompareDemo) Render(c Canvas) {
	c.Clear(ColorTransparent)
	c.DebugText("canvas", 4, 4)
	c.FillRect(Rect{X: d.SteppedX, Y: 24, Width: compareBox, Height: compareBox}, compareColor)
	c.DebugText("tween", 4, 52)
	c.FillRect(Rect{X: d.TweenX, Y: 72, Width: compareBox, Height: compareBox}, compareColor)
}
