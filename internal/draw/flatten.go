package draw

import (
	"math"

	"github.com/gogpu/gg"
)

// Subpath is a polyline in device space.
type Subpath struct {
	Points []gg.Point
	Closed bool
}

// Rect is an axis-aligned box. The zero Rect is empty.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
	NonEmpty               bool
}

// Add grows r to include p.
func (r *Rect) Add(p gg.Point) {
	if !r.NonEmpty {
		*r = Rect{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y, NonEmpty: true}
		return
	}
	r.MinX = math.Min(r.MinX, p.X)
	r.MinY = math.Min(r.MinY, p.Y)
	r.MaxX = math.Max(r.MaxX, p.X)
	r.MaxY = math.Max(r.MaxY, p.Y)
}

// Union grows r to include o.
func (r *Rect) Union(o Rect) {
	if !o.NonEmpty {
		return
	}
	r.Add(gg.Pt(o.MinX, o.MinY))
	r.Add(gg.Pt(o.MaxX, o.MaxY))
}

// Within reports whether r lies inside [0,w]x[0,h], allowing eps of slack.
func (r Rect) Within(w, h, eps float64) bool {
	if !r.NonEmpty {
		return true
	}
	return r.MinX >= -eps && r.MinY >= -eps && r.MaxX <= w+eps && r.MaxY <= h+eps
}

// Flattener is a Context that turns paths into device-space polylines.
// Painting operations only track which geometry was painted; backends
// that rasterize embed a Flattener and override them.
type Flattener struct {
	ctm   gg.Matrix
	stack []gg.Matrix

	subpaths   []Subpath
	open       bool
	hasCurrent bool
	current    gg.Point
	start      gg.Point

	painted Rect
}

// NewFlattener returns a Flattener with an identity transform.
func NewFlattener() *Flattener {
	return &Flattener{ctm: gg.Identity()}
}

func (f *Flattener) device(x, y float64) gg.Point {
	return f.ctm.TransformPoint(gg.Pt(x, y))
}

func (f *Flattener) MoveTo(x, y float64) {
	f.moveToDevice(f.device(x, y))
}

func (f *Flattener) moveToDevice(p gg.Point) {
	f.subpaths = append(f.subpaths, Subpath{Points: []gg.Point{p}})
	f.open = true
	f.hasCurrent = true
	f.current = p
	f.start = p
}

func (f *Flattener) LineTo(x, y float64) {
	f.lineToDevice(f.device(x, y))
}

func (f *Flattener) lineToDevice(p gg.Point) {
	if !f.hasCurrent {
		f.moveToDevice(p)
		return
	}
	if !f.open {
		f.moveToDevice(f.current)
	}
	sp := &f.subpaths[len(f.subpaths)-1]
	sp.Points = append(sp.Points, p)
	f.current = p
}

func (f *Flattener) Arc(xc, yc, radius, angle1, angle2 float64) {
	pts := ArcPoints(xc, yc, radius, angle1, angle2, f.arcSteps(radius, angle1, angle2))
	for i, p := range pts {
		d := f.ctm.TransformPoint(p)
		if i == 0 && !f.hasCurrent {
			f.moveToDevice(d)
			continue
		}
		f.lineToDevice(d)
	}
}

// arcSteps picks a segment count so each chord spans about two device
// pixels of arc length.
func (f *Flattener) arcSteps(radius, a1, a2 float64) int {
	a2 = NormalizeArc(a1, a2)
	scale := math.Max(math.Hypot(f.ctm.A, f.ctm.D), math.Hypot(f.ctm.B, f.ctm.E))
	n := int(math.Ceil((a2 - a1) * math.Abs(radius) * scale / 2))
	if n < 8 {
		n = 8
	}
	if n > 512 {
		n = 512
	}
	return n
}

func (f *Flattener) ClosePath() {
	if !f.open || len(f.subpaths) == 0 {
		return
	}
	f.subpaths[len(f.subpaths)-1].Closed = true
	f.open = false
	f.current = f.start
}

func (f *Flattener) NewSubPath() {
	f.open = false
	f.hasCurrent = false
}

// ClearPath drops the current path.
func (f *Flattener) ClearPath() {
	f.subpaths = nil
	f.open = false
	f.hasCurrent = false
}

// Subpaths returns the current path.
func (f *Flattener) Subpaths() []Subpath {
	return f.subpaths
}

// PathBounds returns the bounds of the current path.
func (f *Flattener) PathBounds() Rect {
	var r Rect
	for _, sp := range f.subpaths {
		for _, p := range sp.Points {
			r.Add(p)
		}
	}
	return r
}

// PaintedBounds returns the union of every path that was filled or
// stroked so far. Stroke width is not included.
func (f *Flattener) PaintedBounds() Rect {
	return f.painted
}

func (f *Flattener) Fill() {
	f.FillPreserve()
	f.ClearPath()
}

func (f *Flattener) FillPreserve() {
	f.MarkPainted()
}

func (f *Flattener) Stroke() {
	f.MarkPainted()
	f.ClearPath()
}

// MarkPainted adds the current path to the painted bounds.
func (f *Flattener) MarkPainted() {
	f.painted.Union(f.PathBounds())
}

func (f *Flattener) SetLineWidth(float64)         {}
func (f *Flattener) SetSourceRGB(_, _, _ float64) {}

func (f *Flattener) Save() {
	f.stack = append(f.stack, f.ctm)
}

func (f *Flattener) Restore() {
	if len(f.stack) == 0 {
		return
	}
	f.ctm = f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
}

func (f *Flattener) Translate(tx, ty float64) {
	f.ctm = f.ctm.Multiply(gg.Translate(tx, ty))
}

func (f *Flattener) Scale(sx, sy float64) {
	f.ctm = f.ctm.Multiply(gg.Scale(sx, sy))
}

var _ Context = (*Flattener)(nil)
