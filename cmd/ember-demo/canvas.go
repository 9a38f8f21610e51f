package main

import (
	"image"
	"image/color"
	"math"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/go-ember/ember/pkg/graphics"
)

// sdlCanvas implements graphics.Canvas over an sdl.Renderer. Text is
// rasterized with the default face into an RGBA image and uploaded as a
// texture per draw; good enough for a demo form.
type sdlCanvas struct {
	renderer *sdl.Renderer
}

func newSDLCanvas(renderer *sdl.Renderer) *sdlCanvas {
	return &sdlCanvas{renderer: renderer}
}

func (c *sdlCanvas) setColor(col graphics.Color) {
	r, g, b, a := col.Bytes()
	c.renderer.SetDrawColor(r, g, b, a)
}

func (c *sdlCanvas) FillRect(r graphics.Rect, col graphics.Color) {
	c.setColor(col)
	c.renderer.FillRect(sdlRect(r))
}

func (c *sdlCanvas) StrokeRect(r graphics.Rect, col graphics.Color) {
	c.setColor(col)
	c.renderer.DrawRect(sdlRect(r))
}

func (c *sdlCanvas) FillCircle(center graphics.Offset, radius float64, col graphics.Color) {
	c.setColor(col)
	// Horizontal spans per scanline.
	for dy := -radius; dy <= radius; dy++ {
		dx := math.Sqrt(radius*radius - dy*dy)
		y := int32(center.Y + dy)
		c.renderer.DrawLine(int32(center.X-dx), y, int32(center.X+dx), y)
	}
}

func (c *sdlCanvas) StrokeCircle(center graphics.Offset, radius float64, col graphics.Color) {
	c.setColor(col)
	const segments = 64
	prevX := int32(center.X + radius)
	prevY := int32(center.Y)
	for i := 1; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / segments
		x := int32(center.X + radius*math.Cos(angle))
		y := int32(center.Y + radius*math.Sin(angle))
		c.renderer.DrawLine(prevX, prevY, x, y)
		prevX, prevY = x, y
	}
}

func (c *sdlCanvas) DrawText(pos graphics.Offset, s string, col graphics.Color) {
	face := graphics.DefaultFace()
	size := graphics.MeasureText(face, s)
	w := int(math.Ceil(size.Width))
	h := int(math.Ceil(size.Height))
	if w == 0 || h == 0 {
		return
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r, g, b, a := col.Bytes()
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: r, G: g, B: b, A: a}),
		Face: face,
		Dot:  fixed.P(0, int(graphics.FaceAscent(face))),
	}
	d.DrawString(s)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(w), int32(h), 32, int32(img.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return
	}
	defer surface.Free()

	texture, err := c.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()

	dst := sdl.Rect{X: int32(pos.X), Y: int32(pos.Y), W: int32(w), H: int32(h)}
	c.renderer.Copy(texture, nil, &dst)
}

func sdlRect(r graphics.Rect) *sdl.Rect {
	return &sdl.Rect{
		X: int32(r.Left),
		Y: int32(r.Top),
		W: int32(r.Width()),
		H: int32(r.Height()),
	}
}
