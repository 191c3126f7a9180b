package shape

import (
	"github.com/mj1618/dashpanel/internal/draw"
	"github.com/mj1618/dashpanel/internal/props"
)

// Defaults shared by every shape kind.
const (
	DefaultStrokeColor = "#ECEFF4"
	DefaultStrokeWidth = 2.0
	DefaultFillColor   = Transparent
)

// paint is the resolved fill and stroke of one shape.
type paint struct {
	fill      RGB
	hasFill   bool
	stroke    RGB
	hasStroke bool
	width     float64
}

func paintFrom(bag props.Bag) paint {
	var p paint
	p.fill, p.hasFill = ParseColor(bag.String("fill_color", DefaultFillColor))
	p.stroke, p.hasStroke = ParseColor(bag.String("stroke_color", DefaultStrokeColor))
	p.width = bag.Number("stroke_width", DefaultStrokeWidth)
	return p
}

// strokes reports whether a stroke will be drawn.
func (p paint) strokes() bool {
	return p.hasStroke && p.width > 0
}

func (p paint) visible() bool {
	return p.hasFill || p.strokes()
}

// apply fills then strokes the current path. The fill preserves the path
// only when a stroke follows it.
func (p paint) apply(ctx draw.Context) {
	if p.hasFill {
		ctx.SetSourceRGB(p.fill.R, p.fill.G, p.fill.B)
		if p.strokes() {
			ctx.FillPreserve()
		} else {
			ctx.Fill()
		}
	}
	if p.strokes() {
		ctx.SetSourceRGB(p.stroke.R, p.stroke.G, p.stroke.B)
		ctx.SetLineWidth(p.width)
		ctx.Stroke()
	}
}
