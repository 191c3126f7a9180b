package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mj1618/dashpanel/internal/panel"
)

// LabelMode controls what text is drawn on each annotated element.
type LabelMode int

const (
	// LabelNone disables annotation.
	LabelNone LabelMode = iota
	// LabelCoords draws "(x,y)" element origins.
	LabelCoords
	// LabelIDs draws "[id]" element ids, or "#index" for anonymous ones.
	LabelIDs
)

// ParseLabelMode maps a flag value to a LabelMode.
func ParseLabelMode(s string) (LabelMode, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return LabelNone, nil
	case "coords":
		return LabelCoords, nil
	case "ids":
		return LabelIDs, nil
	}
	return LabelNone, fmt.Errorf("unknown annotation mode %q (use none, coords or ids)", s)
}

var (
	boxColor     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	textColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Annotate draws a bounding box and label for every placed element.
func Annotate(img *image.RGBA, placed []panel.Placed, mode LabelMode) {
	if mode == LabelNone {
		return
	}
	for _, p := range placed {
		x, y, w, h := p.Bounds[0], p.Bounds[1], p.Bounds[2], p.Bounds[3]
		drawRectangle(img, x, y, x+w, y+h, boxColor)
		drawTextWithOutline(img, label(p, mode), x+w/2, y+h/2, textColor, outlineColor)
	}
}

func label(p panel.Placed, mode LabelMode) string {
	if mode == LabelIDs {
		if p.ID == "" {
			return fmt.Sprintf("#%d", p.Index)
		}
		return fmt.Sprintf("[%s]", p.ID)
	}
	return fmt.Sprintf("(%d,%d)", p.Bounds[0], p.Bounds[1])
}

// drawRectangle draws a one pixel outline clamped to the image.
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()
	x1, y1 = max(x1, bounds.Min.X), max(y1, bounds.Min.Y)
	x2, y2 = min(x2, bounds.Max.X), min(y2, bounds.Max.Y)
	if x2 <= x1 || y2 <= y1 {
		return
	}
	for x := x1; x < x2; x++ {
		img.Set(x, y1, c)
		img.Set(x, y2-1, c)
	}
	for y := y1; y < y2; y++ {
		img.Set(x1, y, c)
		img.Set(x2-1, y, c)
	}
}

// drawTextWithOutline centers text on (x, y) with a one pixel halo.
func drawTextWithOutline(img *image.RGBA, text string, x, y int, fg, outline color.Color) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Round()
	ox := x - width/2
	oy := y + (face.Ascent-face.Descent)/2

	draw := func(dx, dy int, c color.Color) {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(c),
			Face: face,
			Dot:  fixed.P(ox+dx, oy+dy),
		}
		d.DrawString(text)
	}
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx != 0 || dy != 0 {
				draw(dx, dy, outline)
			}
		}
	}
	draw(0, 0, fg)
}
