package shape

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/dashpanel/internal/draw"
	"github.com/mj1618/dashpanel/internal/model"
	"github.com/mj1618/dashpanel/internal/props"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
		ok   bool
	}{
		{"#ff0000", RGB{1, 0, 0}, true},
		{"#FF0000", RGB{1, 0, 0}, true},
		{"#00ff00", RGB{0, 1, 0}, true},
		{"#000000", RGB{}, true},
		{"transparent", RGB{}, false},
		{"", RGB{}, false},
		{"#fff", RGB{}, false},
		{"ff0000", RGB{}, false},
		{"#ff00zz", RGB{}, false},
		{"#ff0000ff", RGB{}, false},
		{"red", RGB{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseColor(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want.R, got.R, 1e-9)
			assert.InDelta(t, tt.want.G, got.G, 1e-9)
			assert.InDelta(t, tt.want.B, got.B, 1e-9)
		})
	}
}

func TestParseColor_MixedCase(t *testing.T) {
	got, ok := ParseColor("#ECeff4")
	require.True(t, ok)
	assert.InDelta(t, 0xEC/255.0, got.R, 1e-9)
	assert.InDelta(t, 0xF4/255.0, got.B, 1e-9)
}

func TestDraw_NonShapeKind(t *testing.T) {
	var rec draw.Recorder
	assert.False(t, Draw(&rec, model.KindButton, 10, 10, nil))
	assert.False(t, Draw(&rec, "Hexagon", 10, 10, nil))
	assert.Empty(t, rec.Ops)
}

func TestBoundingBoxWithinCanvas(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 40}, {40, 1}, {3, 3}, {10, 50}, {50, 10}, {200, 120}}
	bags := []props.Bag{
		nil,
		{"fill_color": props.Str("#112233"), "stroke_width": props.Num(12)},
		{"fill_color": props.Str("#112233"), "border_radius": props.Num(30)},
		{"stroke_width": props.Num(0.5), "points": props.IntVal(50)},
	}
	directions := []string{"", "vertical", "diagonal-se", "diagonal-ne", "up", "down", "left", "right", "bogus"}

	for _, kind := range model.ShapeKinds {
		for _, sz := range sizes {
			for bi, base := range bags {
				for _, dir := range directions {
					bag := base.Clone()
					if bag == nil {
						bag = props.Bag{}
					}
					if dir != "" {
						bag["direction"] = props.Str(dir)
					}
					name := fmt.Sprintf("%s/%dx%d/bag%d/%s", kind, sz[0], sz[1], bi, dir)
					rec := Render(kind, sz[0], sz[1], bag)
					b := rec.PaintedBounds()
					assert.True(t, b.Within(float64(sz[0]), float64(sz[1]), 1e-6), "%s: bounds %+v", name, b)
				}
			}
		}
	}
}

func TestDraw_IsRepeatable(t *testing.T) {
	bag := props.Bag{"fill_color": props.Str("#336699"), "points": props.IntVal(7)}
	for _, kind := range model.ShapeKinds {
		first := Render(kind, 80, 60, bag)
		second := Render(kind, 80, 60, bag)
		assert.Equal(t, first.Ops, second.Ops, "kind %s", kind)
	}
	assert.Equal(t, props.Str("#336699"), bag["fill_color"])
	assert.Len(t, bag, 2)
}

func vertexCount(rec *draw.Recorder) int {
	return rec.Count(draw.OpMoveTo) + rec.Count(draw.OpLineTo)
}

func TestStar_PointsClamped(t *testing.T) {
	tests := []struct {
		points props.Value
		want   int
	}{
		{props.IntVal(1), 6},
		{props.IntVal(3), 6},
		{props.IntVal(5), 10},
		{props.IntVal(50), 40},
		{props.Num(7.9), 14},
		{props.Str("9"), 10},
	}
	for _, tt := range tests {
		rec := Render(model.KindStar, 100, 100, props.Bag{"points": tt.points})
		assert.Equal(t, tt.want, vertexCount(rec), "points=%v", tt.points.Interface())
	}
	assert.Equal(t, 3, ClampPoints(-4))
	assert.Equal(t, 20, ClampPoints(21))
}

func TestStar_FirstVertexAtTop(t *testing.T) {
	rec := Render(model.KindStar, 100, 60, nil)
	first := rec.Ops[0]
	require.Equal(t, draw.OpMoveTo, first.Code)
	assert.InDelta(t, 50, first.Args[0], 1e-9)
	assert.InDelta(t, 0, first.Args[1], 1e-9)
}

func TestRect_StraightEdges(t *testing.T) {
	rec := Render(model.KindRect, 50, 30, nil)
	assert.Equal(t, 1, rec.Count(draw.OpMoveTo))
	assert.Equal(t, 3, rec.Count(draw.OpLineTo))
	assert.Equal(t, 1, rec.Count(draw.OpClosePath))
	assert.Zero(t, rec.Count(draw.OpArc))

	first := rec.Ops[0]
	assert.Equal(t, []float64{1, 1}, first.Args, "inset by half the stroke width")
}

func TestRect_RoundedCorners(t *testing.T) {
	rec := Render(model.KindRect, 50, 30, props.Bag{"border_radius": props.Num(5)})
	assert.Equal(t, 4, rec.Count(draw.OpArc))
	assert.Equal(t, 1, rec.Count(draw.OpNewSubPath))
	assert.Equal(t, 1, rec.Count(draw.OpClosePath))
	assert.Zero(t, rec.Count(draw.OpLineTo))

	var arcs []draw.Op
	for _, op := range rec.Ops {
		if op.Code == draw.OpArc {
			arcs = append(arcs, op)
		}
	}
	// clockwise from the top-right corner
	assert.Equal(t, []float64{44, 6, 5, -math.Pi / 2, 0}, arcs[0].Args)
	assert.Equal(t, []float64{44, 24, 5, 0, math.Pi / 2}, arcs[1].Args)
	assert.Equal(t, []float64{6, 24, 5, math.Pi / 2, math.Pi}, arcs[2].Args)
	assert.Equal(t, []float64{6, 6, 5, math.Pi, 3 * math.Pi / 2}, arcs[3].Args)
}

func TestFillThenStrokeOrdering(t *testing.T) {
	rec := Render(model.KindDiamond, 40, 40, props.Bag{"fill_color": props.Str("#ff0000")})
	var codes []draw.OpCode
	for _, op := range rec.Ops {
		switch op.Code {
		case draw.OpFill, draw.OpFillPreserve, draw.OpStroke:
			codes = append(codes, op.Code)
		}
	}
	assert.Equal(t, []draw.OpCode{draw.OpFillPreserve, draw.OpStroke}, codes)
}

func TestFillWithoutStroke(t *testing.T) {
	rec := Render(model.KindTriangle, 40, 40, props.Bag{
		"fill_color":   props.Str("#ff0000"),
		"stroke_color": props.Str("transparent"),
	})
	assert.Equal(t, 1, rec.Count(draw.OpFill))
	assert.Zero(t, rec.Count(draw.OpFillPreserve))
	assert.Zero(t, rec.Count(draw.OpStroke))

	rec = Render(model.KindTriangle, 40, 40, props.Bag{
		"fill_color":   props.Str("#ff0000"),
		"stroke_width": props.Num(0),
	})
	assert.Equal(t, 1, rec.Count(draw.OpFill))
	assert.Zero(t, rec.Count(draw.OpStroke))
}

func TestTransparentNeverPaints(t *testing.T) {
	bag := props.Bag{"stroke_color": props.Str("transparent"), "fill_color": props.Str("transparent")}
	for _, kind := range model.ShapeKinds {
		rec := Render(kind, 30, 30, bag)
		assert.Zero(t, rec.Count(draw.OpFill)+rec.Count(draw.OpFillPreserve)+rec.Count(draw.OpStroke), "kind %s", kind)
	}
}

func TestMalformedColorIsNoPaint(t *testing.T) {
	rec := Render(model.KindLine, 30, 30, props.Bag{"stroke_color": props.Str("#12")})
	assert.Empty(t, rec.Ops)
}

func TestStrokeColorChannels(t *testing.T) {
	rec := Render(model.KindLine, 30, 30, props.Bag{"stroke_color": props.Str("#ff0000")})
	require.NotEmpty(t, rec.Ops)
	assert.Equal(t, draw.Op{Code: draw.OpSourceRGB, Args: []float64{1, 0, 0}}, rec.Ops[0])
}

func TestLineDirections(t *testing.T) {
	tests := []struct {
		dir  string
		want [4]float64
	}{
		{"horizontal", [4]float64{0, 10, 40, 10}},
		{"vertical", [4]float64{20, 0, 20, 20}},
		{"diagonal-se", [4]float64{0, 0, 40, 20}},
		{"diagonal-ne", [4]float64{0, 20, 40, 0}},
		{"sideways", [4]float64{0, 10, 40, 10}},
	}
	for _, tt := range tests {
		rec := Render(model.KindLine, 40, 20, props.Bag{"direction": props.Str(tt.dir)})
		var move, line []float64
		for _, op := range rec.Ops {
			switch op.Code {
			case draw.OpMoveTo:
				move = op.Args
			case draw.OpLineTo:
				line = op.Args
			}
		}
		got := [4]float64{move[0], move[1], line[0], line[1]}
		assert.Equal(t, tt.want, got, "direction %s", tt.dir)
	}
}

func TestTriangleDirections(t *testing.T) {
	tests := map[string][]point{
		"up":    {{20, 0}, {40, 20}, {0, 20}},
		"down":  {{0, 0}, {40, 0}, {20, 20}},
		"left":  {{40, 0}, {40, 20}, {0, 10}},
		"right": {{0, 0}, {40, 10}, {0, 20}},
		"nope":  {{20, 0}, {40, 20}, {0, 20}},
	}
	for dir, want := range tests {
		assert.Equal(t, want, triangleVertices(dir, 40, 20), "direction %s", dir)
	}
}

func TestEllipse_UnitCircleTransform(t *testing.T) {
	rec := Render(model.KindEllipse, 100, 50, props.Bag{"stroke_width": props.Num(4)})
	var codes []draw.OpCode
	for _, op := range rec.Ops {
		codes = append(codes, op.Code)
	}
	require.GreaterOrEqual(t, len(codes), 5)
	assert.Equal(t, []draw.OpCode{draw.OpSave, draw.OpTranslate, draw.OpScale, draw.OpArc, draw.OpRestore}, codes[:5])
	assert.Equal(t, []float64{50, 25}, rec.Ops[1].Args)
	assert.Equal(t, []float64{48, 23}, rec.Ops[2].Args)
	assert.Equal(t, []float64{0, 0, 1, 0, 2 * math.Pi}, rec.Ops[3].Args)
}

func TestArrow_HeadGeometry(t *testing.T) {
	rec := Render(model.KindArrow, 100, 40, nil)
	assert.Equal(t, 1, rec.Count(draw.OpStroke))
	assert.Equal(t, 1, rec.Count(draw.OpFill))

	// head: tip then two wings, size max(8, 2*4) = 8
	var head []draw.Op
	for i, op := range rec.Ops {
		if op.Code == draw.OpStroke {
			head = rec.Ops[i+1:]
			break
		}
	}
	require.Len(t, head, 5)
	assert.Equal(t, []float64{100, 20}, head[0].Args)
	assert.InDelta(t, 100-8*math.Cos(math.Pi/6), head[1].Args[0], 1e-9)
	assert.InDelta(t, 20+8*math.Sin(math.Pi/6), head[1].Args[1], 1e-9)
	assert.InDelta(t, 20-8*math.Sin(math.Pi/6), head[2].Args[1], 1e-9)
}

func TestArrow_HeadScalesWithStroke(t *testing.T) {
	assert.Equal(t, 8.0, arrowHeadSize(1, 100, 100))
	assert.Equal(t, 20.0, arrowHeadSize(5, 100, 100))
	// fits the canvas: across=10 allows at most 10
	assert.InDelta(t, 10, arrowHeadSize(5, 100, 10), 1e-9)
}

func TestArrow_Directions(t *testing.T) {
	for _, dir := range []string{"right", "left", "up", "down"} {
		rec := Render(model.KindArrow, 60, 60, props.Bag{"direction": props.Str(dir)})
		x1, y1, x2, y2 := arrowEndpoints(dir, 60, 60)
		assert.Equal(t, []float64{x1, y1}, rec.Ops[2].Args, dir)
		assert.Equal(t, []float64{x2, y2}, rec.Ops[3].Args, dir)
	}
}

func TestPainter(t *testing.T) {
	bag := props.Bag{"fill_color": props.Str("#010203")}
	paintFn := Painter(model.KindStar, bag)
	var a, b draw.Recorder
	paintFn(&a, 30, 30)
	paintFn(&b, 30, 30)
	assert.Equal(t, a.Ops, b.Ops)
	assert.Equal(t, Render(model.KindStar, 30, 30, bag).Ops, a.Ops)
}
