// Package ggdraw implements draw.Context on top of a gg.Context.
package ggdraw

import (
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/mj1618/dashpanel/internal/draw"
)

type paintState struct {
	r, g, b   float64
	lineWidth float64
}

// Canvas adapts a gg.Context. gg only saves the transform on Push, so
// color and line width are saved here alongside it.
type Canvas struct {
	dc         *gg.Context
	paint      paintState
	stack      []paintState
	hasCurrent bool
	err        error
}

// New returns a transparent w x h canvas.
func New(w, h int) *Canvas {
	return Wrap(gg.NewContext(w, h))
}

// Wrap adapts an existing gg.Context.
func Wrap(dc *gg.Context) *Canvas {
	c := &Canvas{dc: dc, paint: paintState{lineWidth: 2}}
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(2)
	return c
}

// GG exposes the underlying context.
func (c *Canvas) GG() *gg.Context { return c.dc }

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

// Err returns the first rendering error reported by gg.
func (c *Canvas) Err() error { return c.err }

func (c *Canvas) keep(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

func (c *Canvas) MoveTo(x, y float64) {
	c.dc.MoveTo(x, y)
	c.hasCurrent = true
}

func (c *Canvas) LineTo(x, y float64) {
	if !c.hasCurrent {
		c.MoveTo(x, y)
		return
	}
	c.dc.LineTo(x, y)
}

// Arc is built from cubics in user space. gg transforms each control
// point, so scaled arcs become ellipses.
func (c *Canvas) Arc(xc, yc, radius, angle1, angle2 float64) {
	start := draw.ArcStart(xc, yc, radius, angle1)
	if c.hasCurrent {
		c.dc.LineTo(start.X, start.Y)
	} else {
		c.MoveTo(start.X, start.Y)
	}
	for _, s := range draw.ArcCubics(xc, yc, radius, angle1, angle2) {
		c.dc.CubicTo(s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.P3.X, s.P3.Y)
	}
}

func (c *Canvas) ClosePath() {
	c.dc.ClosePath()
}

func (c *Canvas) NewSubPath() {
	c.dc.NewSubPath()
	c.hasCurrent = false
}

func (c *Canvas) Fill() {
	c.keep(c.dc.Fill())
	c.hasCurrent = false
}

func (c *Canvas) FillPreserve() {
	c.keep(c.dc.FillPreserve())
}

func (c *Canvas) Stroke() {
	c.keep(c.dc.Stroke())
	c.hasCurrent = false
}

func (c *Canvas) SetLineWidth(width float64) {
	c.paint.lineWidth = width
	c.dc.SetLineWidth(width)
}

func (c *Canvas) SetSourceRGB(r, g, b float64) {
	c.paint.r, c.paint.g, c.paint.b = r, g, b
	c.dc.SetRGB(r, g, b)
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.paint)
	c.dc.Push()
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.paint = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.dc.Pop()
	c.dc.SetRGB(c.paint.r, c.paint.g, c.paint.b)
	c.dc.SetLineWidth(c.paint.lineWidth)
}

func (c *Canvas) Translate(tx, ty float64) {
	c.dc.Translate(tx, ty)
}

func (c *Canvas) Scale(sx, sy float64) {
	c.dc.Scale(sx, sy)
}

var _ draw.Context = (*Canvas)(nil)
