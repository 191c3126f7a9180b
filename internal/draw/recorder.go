package draw

// OpCode names a recorded drawing operation.
type OpCode string

const (
	OpMoveTo       OpCode = "move_to"
	OpLineTo       OpCode = "line_to"
	OpArc          OpCode = "arc"
	OpClosePath    OpCode = "close_path"
	OpNewSubPath   OpCode = "new_sub_path"
	OpFill         OpCode = "fill"
	OpFillPreserve OpCode = "fill_preserve"
	OpStroke       OpCode = "stroke"
	OpLineWidth    OpCode = "set_line_width"
	OpSourceRGB    OpCode = "set_source_rgb"
	OpSave         OpCode = "save"
	OpRestore      OpCode = "restore"
	OpTranslate    OpCode = "translate"
	OpScale        OpCode = "scale"
)

// Op is one recorded call with its numeric arguments.
type Op struct {
	Code OpCode    `json:"op"             yaml:"op"`
	Args []float64 `json:"args,omitempty" yaml:"args,omitempty,flow"`
}

// Recorder is a Context that records every call in order.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) add(code OpCode, args ...float64) {
	r.Ops = append(r.Ops, Op{Code: code, Args: args})
}

func (r *Recorder) MoveTo(x, y float64)             { r.add(OpMoveTo, x, y) }
func (r *Recorder) LineTo(x, y float64)             { r.add(OpLineTo, x, y) }
func (r *Recorder) Arc(xc, yc, rad, a1, a2 float64) { r.add(OpArc, xc, yc, rad, a1, a2) }
func (r *Recorder) ClosePath()                      { r.add(OpClosePath) }
func (r *Recorder) NewSubPath()                     { r.add(OpNewSubPath) }
func (r *Recorder) Fill()                           { r.add(OpFill) }
func (r *Recorder) FillPreserve()                   { r.add(OpFillPreserve) }
func (r *Recorder) Stroke()                         { r.add(OpStroke) }
func (r *Recorder) SetLineWidth(w float64)          { r.add(OpLineWidth, w) }
func (r *Recorder) SetSourceRGB(red, g, b float64)  { r.add(OpSourceRGB, red, g, b) }
func (r *Recorder) Save()                           { r.add(OpSave) }
func (r *Recorder) Restore()                        { r.add(OpRestore) }
func (r *Recorder) Translate(tx, ty float64)        { r.add(OpTranslate, tx, ty) }
func (r *Recorder) Scale(sx, sy float64)            { r.add(OpScale, sx, sy) }

// Count returns how many ops carry the given code.
func (r *Recorder) Count(code OpCode) int {
	n := 0
	for _, op := range r.Ops {
		if op.Code == code {
			n++
		}
	}
	return n
}

// Replay issues the recorded ops against ctx.
func (r *Recorder) Replay(ctx Context) {
	for _, op := range r.Ops {
		a := op.Args
		switch op.Code {
		case OpMoveTo:
			ctx.MoveTo(a[0], a[1])
		case OpLineTo:
			ctx.LineTo(a[0], a[1])
		case OpArc:
			ctx.Arc(a[0], a[1], a[2], a[3], a[4])
		case OpClosePath:
			ctx.ClosePath()
		case OpNewSubPath:
			ctx.NewSubPath()
		case OpFill:
			ctx.Fill()
		case OpFillPreserve:
			ctx.FillPreserve()
		case OpStroke:
			ctx.Stroke()
		case OpLineWidth:
			ctx.SetLineWidth(a[0])
		case OpSourceRGB:
			ctx.SetSourceRGB(a[0], a[1], a[2])
		case OpSave:
			ctx.Save()
		case OpRestore:
			ctx.Restore()
		case OpTranslate:
			ctx.Translate(a[0], a[1])
		case OpScale:
			ctx.Scale(a[0], a[1])
		}
	}
}

// PaintedBounds returns the device-space bounds of every filled or
// stroked path in the recording.
func (r *Recorder) PaintedBounds() Rect {
	f := NewFlattener()
	r.Replay(f)
	return f.PaintedBounds()
}

var _ Context = (*Recorder)(nil)
