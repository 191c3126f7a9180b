package headless

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// basicfont.Face7x13 metrics.
const (
	glyphWidth  = 7
	glyphHeight = 13
	glyphAscent = 11
)

type textStyle struct {
	color color.Color
	size  float64
	bold  bool
}

func (ts textStyle) scale() float64 {
	if ts.size <= 0 {
		return 1
	}
	return ts.size / glyphHeight
}

// measureText returns the pixel extent of s at the style's size.
func measureText(s string, ts textStyle) (w, h int) {
	n := len([]rune(s))
	if n == 0 {
		return 0, 0
	}
	natural := n * glyphWidth
	if ts.bold {
		natural++
	}
	k := ts.scale()
	return int(math.Round(float64(natural) * k)), int(math.Round(glyphHeight * k))
}

// drawText draws s with its top-left corner at (x, y). Sizes other than
// the face's own are rendered at 13px and resampled.
func drawText(dst *image.RGBA, s string, x, y int, ts textStyle) {
	if s == "" {
		return
	}
	if math.Abs(ts.scale()-1) < 1e-6 {
		drawGlyphs(dst, s, x, y, ts)
		return
	}
	nw, _ := measureText(s, textStyle{bold: ts.bold, size: glyphHeight})
	tmp := image.NewRGBA(image.Rect(0, 0, nw, glyphHeight))
	drawGlyphs(tmp, s, 0, 0, ts)

	w, h := measureText(s, ts)
	if w <= 0 || h <= 0 {
		return
	}
	xdraw.BiLinear.Scale(dst, image.Rect(x, y, x+w, y+h), tmp, tmp.Bounds(), xdraw.Over, nil)
}

func drawGlyphs(dst *image.RGBA, s string, x, y int, ts textStyle) {
	src := image.NewUniform(ts.color)
	passes := 1
	if ts.bold {
		passes = 2
	}
	for i := 0; i < passes; i++ {
		d := &font.Drawer{
			Dst:  dst,
			Src:  src,
			Face: basicfont.Face7x13,
			Dot: fixed.Point26_6{
				X: fixed.I(x + i),
				Y: fixed.I(y + glyphAscent),
			},
		}
		d.DrawString(s)
	}
}

// drawTextCentered centers s inside r.
func drawTextCentered(dst *image.RGBA, s string, r image.Rectangle, ts textStyle) {
	w, h := measureText(s, ts)
	drawText(dst, s, r.Min.X+(r.Dx()-w)/2, r.Min.Y+(r.Dy()-h)/2, ts)
}

// drawTextLeft draws s at the left edge of r, vertically centered.
func drawTextLeft(dst *image.RGBA, s string, r image.Rectangle, ts textStyle) {
	_, h := measureText(s, ts)
	drawText(dst, s, r.Min.X, r.Min.Y+(r.Dy()-h)/2, ts)
}
