package motionlab

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsWindow is how much time an FPSCounter accumulates before publishing.
const fpsWindow = 1000.0

// FPSCounter counts frames and publishes a rounded rate once at least a
// second of frame time has accumulated.
type FPSCounter struct {
	frames  int
	elapsed float64
	fps     float64
	valid   bool
}

// Frame records one frame that took ms milliseconds. It reports whether a
// new rate was published.
func (c *FPSCounter) Frame(ms float64) bool {
	if !(ms >= 0) {
		return false
	}
	c.frames++
	c.elapsed += ms
	if c.elapsed < fpsWindow {
		return false
	}
	c.fps = math.Round(float64(c.frames) * 1000 / c.elapsed)
	c.valid = true
	c.frames = 0
	c.elapsed = 0
	return true
}

// FPS returns the last published rate, or 0 before the first one.
func (c *FPSCounter) FPS() float64 {
	return c.fps
}

// Label formats the rate as "FPS: n", or "FPS: --" before the first one.
func (c *FPSCounter) Label() string {
	if !c.valid {
		return "FPS: --"
	}
	return fmt.Sprintf("FPS: %.0f", c.fps)
}

// Reset clears the counter.
func (c *FPSCounter) Reset() {
	*c = FPSCounter{}
}

// drawEngineFPS prints ebiten's measured FPS and TPS in the top-left corner.
func drawEngineFPS(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}
