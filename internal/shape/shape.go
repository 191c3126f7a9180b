// Package shape generates the drawing operations for the seven shape
// kinds. Every function here is a pure function of kind, canvas size and
// property bag, so hosts may call it on every redraw.
package shape

import (
	"math"

	"github.com/mj1618/dashpanel/internal/draw"
	"github.com/mj1618/dashpanel/internal/model"
	"github.com/mj1618/dashpanel/internal/props"
)

// Star limits.
const (
	DefaultPoints = 5
	MinPoints     = 3
	MaxPoints     = 20
	InnerRatio    = 0.4
)

// MinArrowHead is the smallest arrowhead size before fitting to the canvas.
const MinArrowHead = 8.0

type drawFunc func(ctx draw.Context, w, h float64, bag props.Bag)

var registry = map[model.Kind]drawFunc{
	model.KindLine:     drawLine,
	model.KindRect:     drawRect,
	model.KindEllipse:  drawEllipse,
	model.KindTriangle: drawTriangle,
	model.KindDiamond:  drawDiamond,
	model.KindArrow:    drawArrow,
	model.KindStar:     drawStar,
}

// Draw emits the operations for kind on a w x h canvas. It reports false,
// drawing nothing, when kind is not a shape.
func Draw(ctx draw.Context, kind model.Kind, w, h int, bag props.Bag) bool {
	fn, ok := registry[kind]
	if !ok {
		return false
	}
	fn(ctx, float64(w), float64(h), bag)
	return true
}

// Render records the operations for one shape.
func Render(kind model.Kind, w, h int, bag props.Bag) *draw.Recorder {
	rec := &draw.Recorder{}
	Draw(rec, kind, w, h, bag)
	return rec
}

// Painter binds a kind and bag into a redraw callback. The callback reads
// bag and never writes it.
func Painter(kind model.Kind, bag props.Bag) func(ctx draw.Context, w, h int) {
	return func(ctx draw.Context, w, h int) {
		Draw(ctx, kind, w, h, bag)
	}
}

// lineEndpoints returns the segment for a line direction.
func lineEndpoints(direction string, w, h float64) (x1, y1, x2, y2 float64) {
	switch direction {
	case "vertical":
		return w / 2, 0, w / 2, h
	case "diagonal-se":
		return 0, 0, w, h
	case "diagonal-ne":
		return 0, h, w, 0
	default:
		return 0, h / 2, w, h / 2
	}
}

func drawLine(ctx draw.Context, w, h float64, bag props.Bag) {
	p := paintFrom(bag)
	if !p.strokes() {
		return
	}
	x1, y1, x2, y2 := lineEndpoints(bag.String("direction", "horizontal"), w, h)
	ctx.SetSourceRGB(p.stroke.R, p.stroke.G, p.stroke.B)
	ctx.SetLineWidth(p.width)
	ctx.MoveTo(x1, y1)
	ctx.LineTo(x2, y2)
	ctx.Stroke()
}

// inset returns the offset and remaining extent of one axis after
// insetting by half the stroke width, never going past the midpoint.
func inset(extent, strokeWidth float64) (offset, size float64) {
	offset = math.Max(strokeWidth, 0) / 2
	if offset > extent/2 {
		offset = extent / 2
	}
	return offset, extent - 2*offset
}

func drawRect(ctx draw.Context, w, h float64, bag props.Bag) {
	p := paintFrom(bag)
	if !p.visible() {
		return
	}
	rx, rw := inset(w, p.width)
	ry, rh := inset(h, p.width)

	rad := math.Min(bag.Number("border_radius", 0), math.Min(rw, rh)/2)
	if rad > 0 {
		ctx.NewSubPath()
		ctx.Arc(rx+rw-rad, ry+rad, rad, -math.Pi/2, 0)
		ctx.Arc(rx+rw-rad, ry+rh-rad, rad, 0, math.Pi/2)
		ctx.Arc(rx+rad, ry+rh-rad, rad, math.Pi/2, math.Pi)
		ctx.Arc(rx+rad, ry+rad, rad, math.Pi, 3*math.Pi/2)
		ctx.ClosePath()
	} else {
		ctx.MoveTo(rx, ry)
		ctx.LineTo(rx+rw, ry)
		ctx.LineTo(rx+rw, ry+rh)
		ctx.LineTo(rx, ry+rh)
		ctx.ClosePath()
	}
	p.apply(ctx)
}

func drawEllipse(ctx draw.Context, w, h float64, bag props.Bag) {
	p := paintFrom(bag)
	if !p.visible() {
		return
	}
	_, dw := inset(w, p.width)
	_, dh := inset(h, p.width)
	rx, ry := dw/2, dh/2
	if rx <= 0 || ry <= 0 {
		return
	}

	ctx.Save()
	ctx.Translate(w/2, h/2)
	ctx.Scale(rx, ry)
	ctx.Arc(0, 0, 1, 0, 2*math.Pi)
	ctx.Restore()
	p.apply(ctx)
}

type point struct{ x, y float64 }

func polygon(ctx draw.Context, pts []point) {
	for i, pt := range pts {
		if i == 0 {
			ctx.MoveTo(pt.x, pt.y)
		} else {
			ctx.LineTo(pt.x, pt.y)
		}
	}
	ctx.ClosePath()
}

func triangleVertices(direction string, w, h float64) []point {
	switch direction {
	case "down":
		return []point{{0, 0}, {w, 0}, {w / 2, h}}
	case "left":
		return []point{{w, 0}, {w, h}, {0, h / 2}}
	case "right":
		return []point{{0, 0}, {w, h / 2}, {0, h}}
	default:
		return []point{{w / 2, 0}, {w, h}, {0, h}}
	}
}

func drawTriangle(ctx draw.Context, w, h float64, bag props.Bag) {
	p := paintFrom(bag)
	if !p.visible() {
		return
	}
	polygon(ctx, triangleVertices(bag.String("direction", "up"), w, h))
	p.apply(ctx)
}

func drawDiamond(ctx draw.Context, w, h float64, bag props.Bag) {
	p := paintFrom(bag)
	if !p.visible() {
		return
	}
	polygon(ctx, []point{{w / 2, 0}, {w, h / 2}, {w / 2, h}, {0, h / 2}})
	p.apply(ctx)
}

func arrowEndpoints(direction string, w, h float64) (x1, y1, x2, y2 float64) {
	switch direction {
	case "left":
		return w, h / 2, 0, h / 2
	case "up":
		return w / 2, h, w / 2, 0
	case "down":
		return w / 2, 0, w / 2, h
	default:
		return 0, h / 2, w, h / 2
	}
}

// arrowHeadSize is max(8, 4*strokeWidth), shrunk so both wings stay on a
// canvas whose shaft runs along one axis.
func arrowHeadSize(strokeWidth, along, across float64) float64 {
	size := math.Max(MinArrowHead, strokeWidth*4)
	// wings reach size*sin(30°) across the shaft and size*cos(30°) back along it
	size = math.Min(size, (across/2)/math.Sin(math.Pi/6))
	size = math.Min(size, along/math.Cos(math.Pi/6))
	return math.Max(size, 0)
}

func drawArrow(ctx draw.Context, w, h float64, bag props.Bag) {
	p := paintFrom(bag)
	if !p.hasStroke {
		return
	}
	direction := bag.String("direction", "right")
	x1, y1, x2, y2 := arrowEndpoints(direction, w, h)

	ctx.SetSourceRGB(p.stroke.R, p.stroke.G, p.stroke.B)
	if p.width > 0 {
		ctx.SetLineWidth(p.width)
		ctx.MoveTo(x1, y1)
		ctx.LineTo(x2, y2)
		ctx.Stroke()
	}

	along, across := w, h
	if x1 == x2 {
		along, across = h, w
	}
	size := arrowHeadSize(p.width, along, across)
	if size == 0 {
		return
	}
	angle := math.Atan2(y2-y1, x2-x1)
	polygon(ctx, []point{
		{x2, y2},
		{x2 - size*math.Cos(angle-math.Pi/6), y2 - size*math.Sin(angle-math.Pi/6)},
		{x2 - size*math.Cos(angle+math.Pi/6), y2 - size*math.Sin(angle+math.Pi/6)},
	})
	ctx.Fill()
}

// ClampPoints limits a star's point count to [MinPoints, MaxPoints].
func ClampPoints(n int) int {
	if n < MinPoints {
		return MinPoints
	}
	if n > MaxPoints {
		return MaxPoints
	}
	return n
}

func starVertices(points int, w, h float64) []point {
	cx, cy := w/2, h/2
	outer := math.Min(w, h) / 2
	inner := outer * InnerRatio
	pts := make([]point, 0, points*2)
	for i := 0; i < points*2; i++ {
		angle := math.Pi*float64(i)/float64(points) - math.Pi/2
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts = append(pts, point{cx + r*math.Cos(angle), cy + r*math.Sin(angle)})
	}
	return pts
}

func drawStar(ctx draw.Context, w, h float64, bag props.Bag) {
	p := paintFrom(bag)
	if !p.visible() {
		return
	}
	polygon(ctx, starVertices(ClampPoints(bag.Int("points", DefaultPoints)), w, h))
	p.apply(ctx)
}
