// Package termcanvas renders motionlab frames into a terminal grid with tcell.
//
// Each terminal cell stands for a CellW×CellH block of logical units. A fill
// paints every cell whose center lies inside the shape, blending the color
// over what is already there. Debug text is written one rune per cell.
package termcanvas

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/motionlab"
)

// Default logical size of one terminal cell. Cells are about twice as tall
// as they are wide.
const (
	DefaultCellW = 6.0
	DefaultCellH = 12.0
)

type cell struct {
	r, g, b float64
	ch      rune
}

// Canvas is a motionlab.Canvas backed by a grid of terminal cells.
type Canvas struct {
	CellW, CellH float64

	cols, rows int
	cells      []cell
}

var _ motionlab.Canvas = (*Canvas)(nil)

// New creates a cols×rows canvas with the default cell size.
func New(cols, rows int) *Canvas {
	c := &Canvas{CellW: DefaultCellW, CellH: DefaultCellH}
	c.Resize(cols, rows)
	return c
}

// Resize changes the grid dimensions and clears it to black.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	n := c.cols * c.rows
	if cap(c.cells) < n {
		c.cells = make([]cell, n)
	}
	c.cells = c.cells[:n]
	for i := range c.cells {
		c.cells[i] = cell{}
	}
}

// Grid returns the grid dimensions in cells.
func (c *Canvas) Grid() (cols, rows int) { return c.cols, c.rows }

// Size returns the logical surface dimensions.
func (c *Canvas) Size() (float64, float64) {
	return float64(c.cols) * c.CellW, float64(c.rows) * c.CellH
}

// Cell returns the resolved color and rune of a cell. Out-of-range cells
// report black and a space.
func (c *Canvas) Cell(col, row int) (motionlab.Color, rune) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return motionlab.ColorBlack, ' '
	}
	p := c.cells[row*c.cols+col]
	ch := p.ch
	if ch == 0 {
		ch = ' '
	}
	return motionlab.Color{R: p.r, G: p.g, B: p.b, A: 1}, ch
}

// Clear fills every cell with col and drops all text. The terminal has no
// transparency, so a zero-alpha color clears to black.
func (c *Canvas) Clear(col motionlab.Color) {
	a := col.A
	for i := range c.cells {
		c.cells[i] = cell{r: col.R * a, g: col.G * a, b: col.B * a}
	}
}

// FillRect paints the cells whose centers fall inside r.
func (c *Canvas) FillRect(r motionlab.Rect, col motionlab.Color) {
	c.fill(r, col, r.Contains)
}

// FillCircle paints the cells whose centers fall inside the circle.
func (c *Canvas) FillCircle(x, y, radius float64, col motionlab.Color) {
	bounds := motionlab.Rect{X: x - radius, Y: y - radius, Width: 2 * radius, Height: 2 * radius}
	r2 := radius * radius
	c.fill(bounds, col, func(px, py float64) bool {
		dx, dy := px-x, py-y
		return dx*dx+dy*dy <= r2
	})
}

// FillCircles paints every circle. Overlapping circles blend once per cell.
func (c *Canvas) FillCircles(centers []motionlab.Vec2, radius float64, col motionlab.Color) {
	if len(centers) == 0 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range centers {
		minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
	}
	bounds := motionlab.Rect{
		X: minX - radius, Y: minY - radius,
		Width: maxX - minX + 2*radius, Height: maxY - minY + 2*radius,
	}
	r2 := radius * radius
	c.fill(bounds, col, func(px, py float64) bool {
		for _, p := range centers {
			dx, dy := px-p.X, py-p.Y
			if dx*dx+dy*dy <= r2 {
				return true
			}
		}
		return false
	})
}

// FillPath paints the cells inside the closed polygon (non-zero winding).
func (c *Canvas) FillPath(points []motionlab.Vec2, col motionlab.Color) {
	if len(points) < 3 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
	}
	bounds := motionlab.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
	c.fill(bounds, col, func(px, py float64) bool {
		return winding(points, px, py) != 0
	})
}

// FillRadialGlow adds a linear falloff from col at center to nothing at
// radius, limited to clip.
func (c *Canvas) FillRadialGlow(clip motionlab.Rect, center motionlab.Vec2, radius float64, col motionlab.Color) {
	if !(radius > 0) {
		return
	}
	c0, r0, c1, r1 := c.span(clip)
	for row := r0; row < r1; row++ {
		for cl := c0; cl < c1; cl++ {
			px, py := c.center(cl, row)
			if !clip.Contains(px, py) {
				continue
			}
			d := math.Hypot(px-center.X, py-center.Y)
			if d >= radius {
				continue
			}
			a := col.A * (1 - d/radius)
			p := &c.cells[row*c.cols+cl]
			p.r = math.Min(p.r+col.R*a, 1)
			p.g = math.Min(p.g+col.G*a, 1)
			p.b = math.Min(p.b+col.B*a, 1)
		}
	}
}

// DebugText writes msg starting at the cell containing (x, y). Text that
// runs past the right edge is cut off.
func (c *Canvas) DebugText(msg string, x, y float64) {
	row := int(math.Floor(y / c.CellH))
	col := int(math.Floor(x / c.CellW))
	if row < 0 || row >= c.rows {
		return
	}
	for _, ch := range msg {
		if ch == '\n' {
			row++
			col = int(math.Floor(x / c.CellW))
			if row >= c.rows {
				return
			}
			continue
		}
		if col >= 0 && col < c.cols {
			c.cells[row*c.cols+col].ch = ch
		}
		col++
	}
}

// Flush copies the grid to screen at its top-left corner. It does not call
// Show.
func (c *Canvas) Flush(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			p := c.cells[row*c.cols+col]
			ch := p.ch
			if ch == 0 {
				ch = ' '
			}
			style := tcell.StyleDefault.
				Background(rgb(p.r, p.g, p.b)).
				Foreground(tcell.ColorWhite)
			screen.SetContent(col, row, ch, nil, style)
		}
	}
}

func (c *Canvas) fill(bounds motionlab.Rect, col motionlab.Color, inside func(x, y float64) bool) {
	if col.A <= 0 {
		return
	}
	c0, r0, c1, r1 := c.span(bounds)
	a := math.Min(col.A, 1)
	for row := r0; row < r1; row++ {
		for cl := c0; cl < c1; cl++ {
			px, py := c.center(cl, row)
			if !inside(px, py) {
				continue
			}
			p := &c.cells[row*c.cols+cl]
			p.r = col.R*a + p.r*(1-a)
			p.g = col.G*a + p.g*(1-a)
			p.b = col.B*a + p.b*(1-a)
		}
	}
}

// span returns the cell range [c0,c1)×[r0,r1) overlapping r.
func (c *Canvas) span(r motionlab.Rect) (c0, r0, c1, r1 int) {
	if c.cols == 0 || c.rows == 0 || c.CellW <= 0 || c.CellH <= 0 {
		return 0, 0, 0, 0
	}
	c0 = clampInt(int(math.Floor(r.X/c.CellW)), 0, c.cols)
	r0 = clampInt(int(math.Floor(r.Y/c.CellH)), 0, c.rows)
	c1 = clampInt(int(math.Ceil((r.X+r.Width)/c.CellW)), 0, c.cols)
	r1 = clampInt(int(math.Ceil((r.Y+r.Height)/c.CellH)), 0, c.rows)
	return c0, r0, c1, r1
}

func (c *Canvas) center(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * c.CellW, (float64(row) + 0.5) * c.CellH
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// winding returns the winding number of the polygon around (x, y).
func winding(points []motionlab.Vec2, x, y float64) int {
	w := 0
	n := len(points)
	for i := 0; i < n; i++ {
		a, b := points[i], points[(i+1)%n]
		cross := (b.X-a.X)*(y-a.Y) - (x-a.X)*(b.Y-a.Y)
		if a.Y <= y {
			if b.Y > y && cross > 0 {
				w++
			}
		} else if b.Y <= y && cross < 0 {
			w--
		}
	}
	return w
}

func rgb(r, g, b float64) tcell.Color {
	return tcell.NewRGBColor(to8(r), to8(g), to8(b))
}

func to8(v float64) int32 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return int32(math.Round(v * 255))
}
