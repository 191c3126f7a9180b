package draw

import (
	"math"

	"github.com/gogpu/gg"
)

// Cubic is one cubic Bezier segment.
type Cubic struct {
	P0, C1, C2, P3 gg.Point
}

// ArcCubics approximates a circular arc with cubic segments spanning at
// most a quarter turn each. Angles are normalized as for Context.Arc.
func ArcCubics(xc, yc, r, a1, a2 float64) []Cubic {
	a2 = NormalizeArc(a1, a2)
	sweep := a2 - a1
	n := int(math.Ceil(sweep / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	segs := make([]Cubic, 0, n)
	for i := 0; i < n; i++ {
		t0 := a1 + float64(i)*step
		t1 := t0 + step
		cos0, sin0 := math.Cos(t0), math.Sin(t0)
		cos1, sin1 := math.Cos(t1), math.Sin(t1)
		segs = append(segs, Cubic{
			P0: gg.Pt(xc+r*cos0, yc+r*sin0),
			C1: gg.Pt(xc+r*(cos0-k*sin0), yc+r*(sin0+k*cos0)),
			C2: gg.Pt(xc+r*(cos1+k*sin1), yc+r*(sin1-k*cos1)),
			P3: gg.Pt(xc+r*cos1, yc+r*sin1),
		})
	}
	return segs
}

// ArcStart returns the first point of an arc.
func ArcStart(xc, yc, r, a1 float64) gg.Point {
	return gg.Pt(xc+r*math.Cos(a1), yc+r*math.Sin(a1))
}

// ArcPoints samples an arc into n+1 points, endpoints included.
func ArcPoints(xc, yc, r, a1, a2 float64, n int) []gg.Point {
	a2 = NormalizeArc(a1, a2)
	if n < 1 {
		n = 1
	}
	pts := make([]gg.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := a1 + (a2-a1)*float64(i)/float64(n)
		pts = append(pts, gg.Pt(xc+r*math.Cos(t), yc+r*math.Sin(t)))
	}
	return pts
}
