package motionlab

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// glowTextureSize is the edge length of the shared radial falloff texture.
const glowTextureSize = 64

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
	glowTexture   *ebiten.Image
)

// ensureWhite lazily creates the 3x3 white source used for path triangles.
// Sampling the inner pixel avoids edge bleeding.
func ensureWhite() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// ensureGlowTexture lazily builds a premultiplied white disc whose alpha
// falls linearly from 1 at the center to 0 at the edge.
func ensureGlowTexture() *ebiten.Image {
	if glowTexture != nil {
		return glowTexture
	}
	img := image.NewRGBA(image.Rect(0, 0, glowTextureSize, glowTextureSize))
	half := float64(glowTextureSize) / 2
	for y := 0; y < glowTextureSize; y++ {
		for x := 0; x < glowTextureSize; x++ {
			d := math.Hypot(float64(x)+0.5-half, float64(y)+0.5-half) / half
			a := uint8(clamp01(1-d) * 255)
			img.SetRGBA(x, y, color.RGBA{a, a, a, a})
		}
	}
	glowTexture = ebiten.NewImageFromImage(img)
	return glowTexture
}

// ImageCanvas draws onto an ebiten image. Sub-images are supported: all
// coordinates are relative to the image's bounds origin.
type ImageCanvas struct {
	// AntiAlias smooths shape edges. Enabled by default.
	AntiAlias bool

	dst    *ebiten.Image
	ox, oy float64
	w, h   float64
	path   vector.Path
	verts  []ebiten.Vertex
	inds   []uint16
	op     ebiten.DrawImageOptions
	triOp  ebiten.DrawTrianglesOptions
}

// NewImageCanvas wraps dst.
func NewImageCanvas(dst *ebiten.Image) *ImageCanvas {
	c := &ImageCanvas{AntiAlias: true}
	c.SetTarget(dst)
	return c
}

// SetTarget retargets the canvas, keeping its scratch buffers.
func (c *ImageCanvas) SetTarget(dst *ebiten.Image) {
	b := dst.Bounds()
	c.dst = dst
	c.ox, c.oy = float64(b.Min.X), float64(b.Min.Y)
	c.w, c.h = float64(b.Dx()), float64(b.Dy())
}

// Size returns the target's dimensions.
func (c *ImageCanvas) Size() (float64, float64) {
	return c.w, c.h
}

// Clear fills the target with col, or clears it when col is transparent.
func (c *ImageCanvas) Clear(col Color) {
	if col.A == 0 {
		c.dst.Clear()
		return
	}
	c.dst.Fill(col)
}

// FillRect fills r.
func (c *ImageCanvas) FillRect(r Rect, col Color) {
	vector.DrawFilledRect(c.dst,
		float32(r.X+c.ox), float32(r.Y+c.oy), float32(r.Width), float32(r.Height),
		col, c.AntiAlias)
}

// FillCircle fills a single circle.
func (c *ImageCanvas) FillCircle(x, y, radius float64, col Color) {
	vector.DrawFilledCircle(c.dst, float32(x+c.ox), float32(y+c.oy), float32(radius), col, c.AntiAlias)
}

// FillCircles appends every circle to one path and fills it with a single
// DrawTriangles call.
func (c *ImageCanvas) FillCircles(centers []Vec2, radius float64, col Color) {
	if len(centers) == 0 {
		return
	}
	c.path.Reset()
	r := float32(radius)
	for _, p := range centers {
		x, y := float32(p.X+c.ox), float32(p.Y+c.oy)
		c.path.MoveTo(x+r, y)
		c.path.Arc(x, y, r, 0, 2*math.Pi, vector.Clockwise)
		c.path.Close()
	}
	c.fillPath(col)
}

// FillPath fills the closed polygon through points.
func (c *ImageCanvas) FillPath(points []Vec2, col Color) {
	if len(points) < 3 {
		return
	}
	c.path.Reset()
	c.path.MoveTo(float32(points[0].X+c.ox), float32(points[0].Y+c.oy))
	for _, p := range points[1:] {
		c.path.LineTo(float32(p.X+c.ox), float32(p.Y+c.oy))
	}
	c.path.Close()
	c.fillPath(col)
}

func (c *ImageCanvas) fillPath(col Color) {
	c.verts, c.inds = c.path.AppendVerticesAndIndicesForFilling(c.verts[:0], c.inds[:0])
	pr, pg, pb, pa := float32(col.R*col.A), float32(col.G*col.A), float32(col.B*col.A), float32(col.A)
	for i := range c.verts {
		v := &c.verts[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = pr, pg, pb, pa
	}
	c.triOp = ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: c.AntiAlias,
	}
	c.dst.DrawTriangles(c.verts, c.inds, ensureWhite(), &c.triOp)
}

// FillRadialGlow draws the shared falloff texture scaled to radius, tinted
// by col and blended additively, clipped to clip.
func (c *ImageCanvas) FillRadialGlow(clip Rect, center Vec2, radius float64, col Color) {
	if radius <= 0 || clip.Width <= 0 || clip.Height <= 0 {
		return
	}
	area := image.Rect(
		int(math.Floor(clip.X+c.ox)), int(math.Floor(clip.Y+c.oy)),
		int(math.Ceil(clip.X+clip.Width+c.ox)), int(math.Ceil(clip.Y+clip.Height+c.oy)),
	)
	clipped, ok := c.dst.SubImage(area).(*ebiten.Image)
	if !ok || clipped.Bounds().Empty() {
		return
	}
	scale := 2 * radius / glowTextureSize
	c.op.GeoM.Reset()
	c.op.GeoM.Scale(scale, scale)
	c.op.GeoM.Translate(center.X-radius+c.ox, center.Y-radius+c.oy)
	c.op.ColorScale.Reset()
	a := float32(col.A)
	c.op.ColorScale.Scale(float32(col.R)*a, float32(col.G)*a, float32(col.B)*a, a)
	c.op.Blend = BlendAdd.EbitenBlend()
	c.op.Filter = ebiten.FilterLinear
	clipped.DrawImage(ensureGlowTexture(), &c.op)
}

// DebugText prints msg with ebitenutil's debug font.
func (c *ImageCanvas) DebugText(msg string, x, y float64) {
	ebitenutil.DebugPrintAt(c.dst, msg, int(x+c.ox), int(y+c.oy))
}
