// Package rasterdraw implements draw.Context with the rasterx scanline
// rasterizer. Paths are flattened to device-space polylines first, so
// transformed arcs need no special handling.
package rasterdraw

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/gogpu/gg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/mj1618/dashpanel/internal/draw"
)

// Canvas paints into an *image.RGBA.
type Canvas struct {
	*draw.Flattener

	img    *image.RGBA
	filler *rasterx.Filler
	dasher *rasterx.Dasher

	col       color.RGBA
	lineWidth float64
}

// New returns a transparent w x h canvas.
func New(w, h int) *Canvas {
	return Wrap(image.NewRGBA(image.Rect(0, 0, w, h)))
}

// Wrap paints into an existing image.
func Wrap(img *image.RGBA) *Canvas {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Canvas{
		Flattener: draw.NewFlattener(),
		img:       img,
		filler:    rasterx.NewFiller(w, h, scanner),
		dasher:    rasterx.NewDasher(w, h, scanner),
		col:       color.RGBA{A: 255},
		lineWidth: 2,
	}
}

// Image returns the destination image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error { return png.Encode(w, c.img) }

func toFixed(p gg.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

func addPath(a rasterx.Adder, subpaths []draw.Subpath) {
	for _, sp := range subpaths {
		if len(sp.Points) == 0 {
			continue
		}
		a.Start(toFixed(sp.Points[0]))
		for _, p := range sp.Points[1:] {
			a.Line(toFixed(p))
		}
		a.Stop(sp.Closed)
	}
}

func (c *Canvas) FillPreserve() {
	c.MarkPainted()
	c.filler.Clear()
	c.filler.SetColor(c.col)
	addPath(c.filler, c.Subpaths())
	c.filler.Draw()
	c.filler.Clear()
}

func (c *Canvas) Fill() {
	c.FillPreserve()
	c.ClearPath()
}

func (c *Canvas) Stroke() {
	c.MarkPainted()
	if c.lineWidth > 0 {
		c.dasher.Clear()
		c.dasher.SetColor(c.col)
		c.dasher.SetStroke(fixed.Int26_6(c.lineWidth*64), 4*64, rasterx.ButtCap, nil, rasterx.FlatGap, rasterx.Miter, nil, 0)
		addPath(c.dasher, c.Subpaths())
		c.dasher.Draw()
		c.dasher.Clear()
	}
	c.ClearPath()
}

func (c *Canvas) SetLineWidth(width float64) {
	c.lineWidth = width
}

func (c *Canvas) SetSourceRGB(r, g, b float64) {
	c.col = color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

var _ draw.Context = (*Canvas)(nil)
