// Package draw defines the immediate-mode 2D drawing context that shape
// geometry is emitted against, plus backend-independent helpers: an op
// recorder, a path flattener and arc approximation.
package draw

import "math"

// Context is an immediate-mode drawing surface with a current path, a
// solid source color, a line width and an affine transform stack.
//
// Arc follows the usual convention: when a current point exists a straight
// segment joins it to the arc start, and an end angle smaller than the
// start angle is advanced by whole turns until it is not.
type Context interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(xc, yc, radius, angle1, angle2 float64)
	ClosePath()
	NewSubPath()

	Fill()
	FillPreserve()
	Stroke()

	SetLineWidth(width float64)
	SetSourceRGB(r, g, b float64)

	Save()
	Restore()
	Translate(tx, ty float64)
	Scale(sx, sy float64)
}

// NormalizeArc returns angle2 advanced by multiples of 2π so that it is
// not smaller than angle1.
func NormalizeArc(angle1, angle2 float64) float64 {
	for angle2 < angle1 {
		angle2 += 2 * math.Pi
	}
	return angle2
}
