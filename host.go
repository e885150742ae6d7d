package motionlab

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// panelGap is the spacing between panels in pixels.
const panelGap = 8.0

// panelLabelHeight reserves room above each panel for its caption.
const panelLabelHeight = 16.0

// Panel is a session placed in a screen viewport.
type Panel struct {
	Session  *Session
	Viewport Rect
	// Caption is printed above the viewport.
	Caption string
}

// Host runs sessions inside an ebiten game. It acts as the display refresh
// source: frame requests are queued and fired once per ebiten Update with the
// host clock's timestamp, in the manner of requestAnimationFrame.
//
// Key events are delivered to every session before any frame callback of the
// same refresh, so a tick never sees a half-applied event.
type Host struct {
	ClearColor Color
	// Columns is the panel grid width. Zero picks a square-ish grid.
	Columns int
	// ShowFPS prints ebiten's measured FPS/TPS in the corner.
	ShowFPS bool
	// ScreenshotDir receives screenshot PNGs. Empty means "screenshots".
	ScreenshotDir string

	clock    Clock
	bindings KeyBindings
	log      *zap.Logger

	pending []func(float64)
	firing  []func(float64)
	keyBuf  []KeyEvent

	injectQueue     []KeyEvent
	script          *ScriptRunner
	screenshotQueue []string

	panels     []*Panel
	updateFunc func() error

	screenW, screenH int
	canvas           *ImageCanvas
}

// NewHost creates a host with the default key bindings and a system clock.
func NewHost(log *zap.Logger) *Host {
	if log == nil {
		log = zap.NewNop()
	}
	return &Host{
		ClearColor: Color{R: 0.1, G: 0.1, B: 0.12, A: 1},
		clock:      NewSystemClock(),
		bindings:   DefaultKeyBindings(),
		log:        log,
	}
}

// Clock returns the host's timestamp source.
func (h *Host) Clock() Clock { return h.clock }

// SetClock replaces the timestamp source.
func (h *Host) SetClock(c Clock) { h.clock = c }

// SetKeyBindings replaces the key bindings.
func (h *Host) SetKeyBindings(b KeyBindings) { h.bindings = b }

// SetUpdateFunc sets a callback run at the start of every Update, before key
// routing and frame callbacks. Returning an error ends the game.
func (h *Host) SetUpdateFunc(fn func() error) { h.updateFunc = fn }

// RequestFrame queues fn for the next refresh.
func (h *Host) RequestFrame(fn func(timestamp float64)) {
	h.pending = append(h.pending, fn)
}

// Pending returns the number of queued frame requests.
func (h *Host) Pending() int { return len(h.pending) }

// NewSession creates a session driven by this host and adds it as a panel.
// interval is the minimum frame spacing in milliseconds.
func (h *Host) NewSession(name string, sim Simulation, interval float64) *Session {
	s := NewSession(SessionConfig{
		Name:          name,
		Requester:     h,
		Clock:         h.clock,
		FrameInterval: interval,
		Logger:        h.log,
	}, sim)
	h.panels = append(h.panels, &Panel{Session: s, Caption: name})
	h.layoutPanels()
	return s
}

// Panels returns the host's panels. The returned slice MUST NOT be mutated.
func (h *Host) Panels() []*Panel {
	return h.panels
}

// Panel returns the i-th panel, or nil.
func (h *Host) Panel(i int) *Panel {
	if i < 0 || i >= len(h.panels) {
		return nil
	}
	return h.panels[i]
}

// StopAll stops every session.
func (h *Host) StopAll() {
	for _, p := range h.panels {
		p.Session.Stop()
	}
}

// StartOnly stops every other session and starts the i-th one.
func (h *Host) StartOnly(i int) {
	p := h.Panel(i)
	if p == nil {
		return
	}
	for j, q := range h.panels {
		if j != i {
			q.Session.Stop()
		}
	}
	p.Session.Start()
}

// DispatchKey delivers a key event to every session. Each session ignores
// codes it does not recognize.
func (h *Host) DispatchKey(code string, pressed bool) {
	for _, p := range h.panels {
		p.Session.SetPressed(code, pressed)
	}
}

// Refresh fires every frame request queued before this call with the given
// timestamp. Requests made by the callbacks wait for the next refresh.
func (h *Host) Refresh(timestamp float64) {
	h.firing, h.pending = h.pending, h.firing[:0]
	for i, fn := range h.firing {
		fn(timestamp)
		h.firing[i] = nil
	}
	h.firing = h.firing[:0]
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	h.keyBuf = h.bindings.AppendKeyEvents(h.keyBuf[:0])
	return h.advance(h.keyBuf, h.clock.Now())
}

// advance runs one host update: the update func, the script runner, one
// injected key, the real key events and finally the frame callbacks.
func (h *Host) advance(keys []KeyEvent, timestamp float64) error {
	if h.updateFunc != nil {
		if err := h.updateFunc(); err != nil {
			return err
		}
	}
	if h.script != nil {
		h.script.step(h)
	}
	h.processInjectedKey()
	for _, ev := range keys {
		h.DispatchKey(ev.Code, ev.Pressed)
	}
	h.Refresh(timestamp)
	return nil
}

// Draw implements ebiten.Game. Every panel presents its session's last frame.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(h.ClearColor)
	for _, p := range h.panels {
		vp := p.Viewport
		if vp.Width <= 0 || vp.Height <= 0 {
			continue
		}
		state := "stopped"
		if p.Session.Running() {
			state = "running"
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s [%s]", p.Caption, state),
			int(vp.X), int(vp.Y-panelLabelHeight))

		sub := screen.SubImage(image.Rect(
			int(vp.X), int(vp.Y),
			int(vp.X+vp.Width), int(vp.Y+vp.Height),
		)).(*ebiten.Image)
		if h.canvas == nil {
			h.canvas = NewImageCanvas(sub)
		} else {
			h.canvas.SetTarget(sub)
		}
		p.Session.Draw(h.canvas)
	}
	if h.ShowFPS {
		drawEngineFPS(screen)
	}
	h.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The logical screen follows the window, and
// panels are re-laid out whenever it changes size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.screenW || outsideHeight != h.screenH {
		h.screenW, h.screenH = outsideWidth, outsideHeight
		h.layoutPanels()
	}
	return outsideWidth, outsideHeight
}

// SetScreenSize lays the panels out for a w×h screen without ebiten.
func (h *Host) SetScreenSize(w, hgt int) {
	h.Layout(w, hgt)
}

// layoutPanels arranges panels in a grid and resizes their sessions.
func (h *Host) layoutPanels() {
	n := len(h.panels)
	if n == 0 || h.screenW <= 0 || h.screenH <= 0 {
		return
	}
	cols := h.Columns
	if cols <= 0 {
		cols = int(math.Ceil(math.Sqrt(float64(n))))
	}
	cols = min(cols, n)
	rows := (n + cols - 1) / cols

	cellW := (float64(h.screenW) - panelGap*float64(cols+1)) / float64(cols)
	cellH := (float64(h.screenH) - panelGap*float64(rows+1)) / float64(rows)
	for i, p := range h.panels {
		col, row := i%cols, i/cols
		x := panelGap + float64(col)*(cellW+panelGap)
		y := panelGap + float64(row)*(cellH+panelGap)
		p.Viewport = Rect{
			X:      math.Floor(x),
			Y:      math.Floor(y + panelLabelHeight),
			Width:  math.Max(math.Floor(cellW), 0),
			Height: math.Max(math.Floor(cellH-panelLabelHeight), 0),
		}
		p.Session.Resize(p.Viewport.Width, p.Viewport.Height)
	}
}

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	Fullscreen    bool
}

// Run opens a resizable window and runs the host until the window closes or
// the update func returns an error. Ticks follow the display refresh rate.
func Run(h *Host, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	h.log.Info("host running",
		zap.String("title", cfg.Title),
		zap.Int("panels", len(h.panels)))
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("run %q: %w", cfg.Title, err)
	}
	return nil
}
