package headless

import (
	"image"

	"github.com/mj1618/dashpanel/internal/host"
)

// Natural footprint used when no size request was made.
const (
	naturalWidth  = 100
	naturalHeight = 30
)

type base struct {
	name string
	w, h int
}

func (b *base) SetName(name string)     { b.name = name }
func (b *base) Name() string            { return b.name }
func (b *base) SetSizeRequest(w, h int) { b.w, b.h = w, h }
func (b *base) SizeRequest() (int, int) { return b.w, b.h }

func (b *base) size() (int, int) {
	w, h := b.w, b.h
	if w <= 0 {
		w = naturalWidth
	}
	if h <= 0 {
		h = naturalHeight
	}
	return w, h
}

// Placement is a child positioned inside a Fixed container.
type Placement struct {
	Widget host.Widget
	X, Y   int
}

// Fixed places children at absolute positions. Later children paint
// over earlier ones.
type Fixed struct {
	base
	children []Placement
}

func (f *Fixed) Put(child host.Widget, x, y int) {
	f.children = append(f.children, Placement{Widget: child, X: x, Y: y})
}

// Children returns the placements in insertion order.
func (f *Fixed) Children() []Placement { return f.children }

type Button struct {
	base
	host.ButtonOptions
}

type Label struct {
	base
	host.LabelOptions
}

type Entry struct {
	base
	host.EntryOptions
}

type Checkbox struct {
	base
	host.CheckboxOptions
}

type Switch struct {
	base
	host.SwitchOptions
}

type Combo struct {
	base
	host.ComboOptions
}

// ActiveText returns the selected entry, or "" when nothing is selected.
func (c *Combo) ActiveText() string {
	if c.Active < 0 || c.Active >= len(c.Items) {
		return ""
	}
	return c.Items[c.Active]
}

type Slider struct {
	base
	host.RangeOptions
}

type Spin struct {
	base
	host.RangeOptions
}

// Picture shows a decoded image file or its alt text.
type Picture struct {
	base
	host.ImageOptions
	img     image.Image
	loadErr error
}

// LoadErr returns the error from decoding FilePath, if any.
func (p *Picture) LoadErr() error { return p.loadErr }

// Loaded reports whether an image was decoded.
func (p *Picture) Loaded() bool { return p.img != nil }

type Progress struct {
	base
	host.ProgressOptions
}

type Separator struct {
	base
	host.SeparatorOptions
}

// Captioned is a leading caption paired with a child widget.
type Captioned struct {
	base
	Caption string
	Spacing int
	Child   host.Widget
}

// Canvas is a drawing surface that calls its DrawFunc on every render.
type Canvas struct {
	base
	fn      host.DrawFunc
	redraws int
}

// Redraws returns how many times the draw callback has run.
func (c *Canvas) Redraws() int { return c.redraws }
