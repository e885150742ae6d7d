package motionlab

// Canvas is a 2D draw target with its origin at the top-left and Y growing
// downward. Renderers only read entity state and write to a Canvas.
type Canvas interface {
	// Size returns the logical surface dimensions.
	Size() (w, h float64)
	// Clear fills the whole surface with c. A zero-alpha color clears to
	// transparent.
	Clear(c Color)
	// FillRect fills r with c.
	FillRect(r Rect, c Color)
	// FillCircle fills one circle.
	FillCircle(x, y, radius float64, c Color)
	// FillCircles fills every circle in a single path with one fill.
	FillCircles(centers []Vec2, radius float64, c Color)
	// FillPath fills the closed polygon through points.
	FillPath(points []Vec2, c Color)
	// FillRadialGlow additively paints a radial fade from c at center to
	// transparent at radius, restricted to clip.
	FillRadialGlow(clip Rect, center Vec2, radius float64, c Color)
	// DebugText prints msg with its top-left at (x, y).
	DebugText(msg string, x, y float64)
}

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandClear CommandType = iota
	CommandRect
	CommandCircle
	CommandCircles
	CommandPath
	CommandGlow
	CommandText
)

// DrawCommand is a single recorded draw instruction.
type DrawCommand struct {
	Type   CommandType
	Color  Color
	Rect   Rect // CommandRect; clip for CommandGlow
	Center Vec2 // CommandCircle, CommandGlow; text origin for CommandText
	Radius float64
	Text   string

	// first/count index the frame's point arena for CommandCircles and
	// CommandPath.
	first, count int
}

// FrameStats summarizes a recorded frame.
type FrameStats struct {
	Commands int
	// Fills counts fill operations; a Clear is not a fill.
	Fills int
	// StyleSwitches counts fills whose color differs from the preceding fill.
	StyleSwitches int
}

// Frame records draw commands. It implements Canvas so a renderer can draw
// into it, and replays onto any other Canvas with Submit. A session keeps
// the Frame of its last accepted tick and presents it until the next one.
type Frame struct {
	width, height float64
	commands      []DrawCommand
	points        []Vec2
}

const defaultFrameCap = 256

// NewFrame creates an empty frame for a w×h surface.
func NewFrame(w, h float64) *Frame {
	return &Frame{
		width:    w,
		height:   h,
		commands: make([]DrawCommand, 0, defaultFrameCap),
	}
}

// Reset drops all commands and sets the surface size for the next recording.
func (f *Frame) Reset(w, h float64) {
	f.width, f.height = w, h
	f.commands = f.commands[:0]
	f.points = f.points[:0]
}

// Commands returns the recorded commands. The slice MUST NOT be mutated.
func (f *Frame) Commands() []DrawCommand {
	return f.commands
}

// Points returns the vertices of a CommandCircles or CommandPath command.
func (f *Frame) Points(cmd *DrawCommand) []Vec2 {
	return f.points[cmd.first : cmd.first+cmd.count]
}

// Len returns the number of recorded commands.
func (f *Frame) Len() int {
	return len(f.commands)
}

// Equal reports whether g holds the same commands and geometry as f.
func (f *Frame) Equal(g *Frame) bool {
	if f.width != g.width || f.height != g.height || len(f.commands) != len(g.commands) {
		return false
	}
	for i := range f.commands {
		a, b := &f.commands[i], &g.commands[i]
		if a.Type != b.Type || a.Color != b.Color || a.Rect != b.Rect ||
			a.Center != b.Center || a.Radius != b.Radius || a.Text != b.Text ||
			a.count != b.count {
			return false
		}
		pa, pb := f.Points(a), g.Points(b)
		for j := range pa {
			if pa[j] != pb[j] {
				return false
			}
		}
	}
	return true
}

// Stats counts commands, fills and style switches.
func (f *Frame) Stats() FrameStats {
	st := FrameStats{Commands: len(f.commands)}
	var prev Color
	first := true
	for i := range f.commands {
		cmd := &f.commands[i]
		switch cmd.Type {
		case CommandClear, CommandText:
			continue
		}
		st.Fills++
		if first || cmd.Color != prev {
			st.StyleSwitches++
		}
		prev = cmd.Color
		first = false
	}
	return st
}

// Submit replays every command onto dst in recording order.
func (f *Frame) Submit(dst Canvas) {
	for i := range f.commands {
		cmd := &f.commands[i]
		switch cmd.Type {
		case CommandClear:
			dst.Clear(cmd.Color)
		case CommandRect:
			dst.FillRect(cmd.Rect, cmd.Color)
		case CommandCircle:
			dst.FillCircle(cmd.Center.X, cmd.Center.Y, cmd.Radius, cmd.Color)
		case CommandCircles:
			dst.FillCircles(f.Points(cmd), cmd.Radius, cmd.Color)
		case CommandPath:
			dst.FillPath(f.Points(cmd), cmd.Color)
		case CommandGlow:
			dst.FillRadialGlow(cmd.Rect, cmd.Center, cmd.Radius, cmd.Color)
		case CommandText:
			dst.DebugText(cmd.Text, cmd.Center.X, cmd.Center.Y)
		}
	}
}

// --- Canvas implementation ---

// Size returns the frame's surface size.
func (f *Frame) Size() (float64, float64) {
	return f.width, f.height
}

// Clear records a full-surface clear.
func (f *Frame) Clear(c Color) {
	f.commands = append(f.commands, DrawCommand{Type: CommandClear, Color: c})
}

// FillRect records a rectangle fill.
func (f *Frame) FillRect(r Rect, c Color) {
	f.commands = append(f.commands, DrawCommand{Type: CommandRect, Color: c, Rect: r})
}

// FillCircle records a single circle fill.
func (f *Frame) FillCircle(x, y, radius float64, c Color) {
	f.commands = append(f.commands, DrawCommand{
		Type: CommandCircle, Color: c, Center: Vec2{x, y}, Radius: radius,
	})
}

// FillCircles records one fill covering every circle. The centers are
// copied; the caller may reuse the slice.
func (f *Frame) FillCircles(centers []Vec2, radius float64, c Color) {
	first := len(f.points)
	f.points = append(f.points, centers...)
	f.commands = append(f.commands, DrawCommand{
		Type: CommandCircles, Color: c, Radius: radius, first: first, count: len(centers),
	})
}

// FillPath records a closed polygon fill. The points are copied.
func (f *Frame) FillPath(points []Vec2, c Color) {
	first := len(f.points)
	f.points = append(f.points, points...)
	f.commands = append(f.commands, DrawCommand{
		Type: CommandPath, Color: c, first: first, count: len(points),
	})
}

// FillRadialGlow records an additive radial glow.
func (f *Frame) FillRadialGlow(clip Rect, center Vec2, radius float64, c Color) {
	f.commands = append(f.commands, DrawCommand{
		Type: CommandGlow, Color: c, Rect: clip, Center: center, Radius: radius,
	})
}

// DebugText records a text overlay.
func (f *Frame) DebugText(msg string, x, y float64) {
	f.commands = append(f.commands, DrawCommand{Type: CommandText, Text: msg, Center: Vec2{x, y}})
}
