package headless

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"github.com/gogpu/gg"

	"github.com/mj1618/dashpanel/internal/draw/ggdraw"
	"github.com/mj1618/dashpanel/internal/draw/rasterdraw"
	"github.com/mj1618/dashpanel/internal/host"
)

// surface is a widget-sized gg context that remembers the first error.
type surface struct {
	dc  *gg.Context
	err error
}

func newSurface(w, h int) *surface {
	return &surface{dc: gg.NewContext(w, h)}
}

func (s *surface) keep(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

func (s *surface) path(x, y, w, h, radius float64) {
	if radius > 0 {
		s.dc.DrawRoundedRectangle(x, y, w, h, radius)
	} else {
		s.dc.DrawRectangle(x, y, w, h)
	}
}

func (s *surface) fillRect(x, y, w, h, radius float64, c color.RGBA) {
	if c.A == 0 || w <= 0 || h <= 0 {
		return
	}
	s.path(x, y, w, h, radius)
	s.dc.SetColor(c)
	s.keep(s.dc.Fill())
}

func (s *surface) strokeRect(x, y, w, h, radius, width float64, c color.RGBA) {
	if c.A == 0 || width <= 0 || w <= 0 || h <= 0 {
		return
	}
	s.path(x, y, w, h, radius)
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.keep(s.dc.Stroke())
}

func (s *surface) line(x1, y1, x2, y2, width float64, c color.RGBA) {
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.keep(s.dc.Stroke())
}

func (s *surface) circle(cx, cy, radius float64, c color.RGBA) {
	if radius <= 0 {
		return
	}
	s.dc.DrawCircle(cx, cy, radius)
	s.dc.SetColor(c)
	s.keep(s.dc.Fill())
}

// image closes the context and returns its pixels.
func (s *surface) image() *image.RGBA {
	s.keep(s.dc.Close())
	return toRGBA(s.dc.Image())
}

// toRGBA converts any image to RGBA.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

func sizeOf(w host.Widget) (int, int) {
	width, height := w.SizeRequest()
	if width <= 0 {
		width = naturalWidth
	}
	if height <= 0 {
		height = naturalHeight
	}
	return width, height
}

type renderer struct {
	tk  *Toolkit
	err error
}

func (r *renderer) keep(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

func (r *renderer) look(name string) look {
	return resolveLook(r.tk.sheet.ForName(name))
}

func (r *renderer) window(w, h int, child host.Container) (*image.RGBA, error) {
	bg := windowBackground
	decls := r.tk.sheet.Lookup("window")
	if c, ok := decls.Color("background-color"); ok {
		bg = c
	} else if c, ok := decls.Color("background"); ok {
		bg = c
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	if child != nil {
		if img := r.widget(child, w, h); img != nil {
			draw.Draw(dst, dst.Bounds(), img, image.Point{}, draw.Over)
		}
	}
	return dst, r.err
}

// widget paints wd into a w x h image, or returns nil for widgets this
// toolkit did not create.
func (r *renderer) widget(wd host.Widget, w, h int) *image.RGBA {
	switch v := wd.(type) {
	case *Fixed:
		return r.fixed(v, w, h)
	case *Button:
		return r.button(v, w, h)
	case *Label:
		return r.label(v, w, h)
	case *Entry:
		return r.entry(v, w, h)
	case *Checkbox:
		return r.checkbox(v, w, h)
	case *Switch:
		return r.toggle(v, w, h)
	case *Combo:
		return r.combo(v, w, h)
	case *Slider:
		return r.slider(v, w, h)
	case *Spin:
		return r.spin(v, w, h)
	case *Picture:
		return r.picture(v, w, h)
	case *Progress:
		return r.progress(v, w, h)
	case *Separator:
		return r.separator(v, w, h)
	case *Captioned:
		return r.captioned(v, w, h)
	case *Canvas:
		return r.canvas(v, w, h)
	}
	return nil
}

func (r *renderer) fixed(f *Fixed, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for _, p := range f.children {
		cw, ch := sizeOf(p.Widget)
		img := r.widget(p.Widget, cw, ch)
		if img == nil {
			continue
		}
		draw.Draw(dst, img.Bounds().Add(image.Pt(p.X, p.Y)), img, image.Point{}, draw.Over)
	}
	return dst
}

// frame paints the styled box of a widget and returns its content area.
// bg and radius are the widget's own defaults, overridden by the
// stylesheet.
func (r *renderer) frame(s *surface, lk look, w, h int, bg color.RGBA, radius float64) image.Rectangle {
	if lk.hasBackground {
		bg = lk.background
	}
	if lk.radius > 0 {
		radius = lk.radius
	}
	m := lk.margin
	bw, bh := float64(w)-2*m, float64(h)-2*m
	s.fillRect(m, m, bw, bh, radius, bg)
	if lk.borderWidth > 0 {
		half := lk.borderWidth / 2
		s.strokeRect(m+half, m+half, bw-lk.borderWidth, bh-lk.borderWidth, radius, lk.borderWidth, lk.border)
	}
	inset := int(math.Round(m + lk.borderWidth + lk.padding))
	content := image.Rect(inset, inset, w-inset, h-inset)
	if content.Empty() {
		return image.Rect(0, 0, w, h)
	}
	return content
}

func (r *renderer) finish(s *surface) *image.RGBA {
	img := s.image()
	r.keep(s.err)
	return img
}

func (r *renderer) button(b *Button, w, h int) *image.RGBA {
	lk := r.look(b.name)
	s := newSurface(w, h)
	box := r.frame(s, lk, w, h, raisedColor, 4)
	ts := lk.text()
	if b.IconName == "" {
		img := r.finish(s)
		drawTextCentered(img, b.Label, box, ts)
		return img
	}

	const gap = 6
	d := math.Min(float64(box.Dy()), 16)
	tw, _ := measureText(b.Label, ts)
	group := int(d) + tw
	if b.Label != "" {
		group += gap
	}
	x0 := box.Min.X + (box.Dx()-group)/2
	cy := float64(box.Min.Y) + float64(box.Dy())/2
	s.circle(float64(x0)+d/2, cy, d/2, accentColor)
	img := r.finish(s)
	textBox := image.Rect(x0+int(d)+gap, box.Min.Y, box.Max.X, box.Max.Y)
	drawTextLeft(img, b.Label, textBox, ts)
	return img
}

func (r *renderer) label(l *Label, w, h int) *image.RGBA {
	lk := r.look(l.name)
	if l.FontSize > 0 {
		lk.fontSize = float64(l.FontSize)
	}
	s := newSurface(w, h)
	box := r.frame(s, lk, w, h, color.RGBA{}, 0)
	img := r.finish(s)
	drawTextCentered(img, l.Text, box, lk.text())
	return img
}

// field paints the sunken box shared by entries, combos and spins.
func (r *renderer) field(s *surface, lk look, w, h int) image.Rectangle {
	box := r.frame(s, lk, w, h, surfaceColor, 4)
	if lk.borderWidth <= 0 {
		m := lk.margin
		s.strokeRect(m+0.5, m+0.5, float64(w)-2*m-1, float64(h)-2*m-1, 4, 1, raisedColor)
	}
	return box
}

func (r *renderer) entry(e *Entry, w, h int) *image.RGBA {
	lk := r.look(e.name)
	s := newSurface(w, h)
	box := r.field(s, lk, w, h).Inset(2)
	img := r.finish(s)
	box.Min.X += 4
	if e.Text != "" {
		drawTextLeft(img, e.Text, box, lk.text())
	} else {
		ts := lk.text()
		ts.color = dimColor
		drawTextLeft(img, e.Placeholder, box, ts)
	}
	return img
}

func (r *renderer) checkbox(c *Checkbox, w, h int) *image.RGBA {
	lk := r.look(c.name)
	s := newSurface(w, h)
	box := r.frame(s, lk, w, h, color.RGBA{}, 0)
	const size = 14.0
	x := float64(box.Min.X) + 1
	y := float64(box.Min.Y) + (float64(box.Dy())-size)/2
	if c.Checked {
		s.fillRect(x, y, size, size, 3, accentColor)
		s.dc.MoveTo(x+3, y+size/2)
		s.dc.LineTo(x+size*0.42, y+size-4)
		s.dc.LineTo(x+size-3, y+3)
		s.dc.SetColor(windowBackground)
		s.dc.SetLineWidth(2)
		s.keep(s.dc.Stroke())
	} else {
		s.fillRect(x, y, size, size, 3, surfaceColor)
		s.strokeRect(x, y, size, size, 3, 1.5, lk.foreground)
	}
	img := r.finish(s)
	textBox := image.Rect(box.Min.X+int(size)+8, box.Min.Y, box.Max.X, box.Max.Y)
	drawTextLeft(img, c.Label, textBox, lk.text())
	return img
}

func (r *renderer) toggle(sw *Switch, w, h int) *image.RGBA {
	lk := r.look(sw.name)
	s := newSurface(w, h)
	box := r.frame(s, lk, w, h, color.RGBA{}, 0)
	tw := math.Min(44, float64(box.Dx()))
	th := math.Min(22, float64(box.Dy()))
	x := float64(box.Min.X)
	y := float64(box.Min.Y) + (float64(box.Dy())-th)/2
	track := raisedColor
	if sw.Active {
		track = accentColor
	}
	s.fillRect(x, y, tw, th, th/2, track)
	knob := th/2 - 2
	cx := x + th/2
	if sw.Active {
		cx = x + tw - th/2
	}
	s.circle(cx, y+th/2, knob, foregroundColor)
	return r.finish(s)
}

func (r *renderer) combo(c *Combo, w, h int) *image.RGBA {
	lk := r.look(c.name)
	s := newSurface(w, h)
	box := r.field(s, lk, w, h).Inset(2)
	cx := float64(box.Max.X) - 8
	cy := float64(box.Min.Y) + float64(box.Dy())/2
	s.dc.MoveTo(cx-4, cy-2)
	s.dc.LineTo(cx, cy+2)
	s.dc.LineTo(cx+4, cy-2)
	s.dc.SetColor(lk.foreground)
	s.dc.SetLineWidth(1.5)
	s.keep(s.dc.Stroke())
	img := r.finish(s)
	box.Min.X += 4
	box.Max.X -= 16
	drawTextLeft(img, c.ActiveText(), box, lk.text())
	return img
}

// fraction maps value into [0,1] over [lo,hi].
func fraction(value, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return clamp01((value - lo) / (hi - lo))
}

func clamp01(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// formatValue prints v with as many decimals as step needs.
func formatValue(v, step float64) string {
	digits := 0
	if step > 0 && step < 1 {
		digits = int(math.Ceil(-math.Log10(step) - 1e-9))
		if digits > 6 {
			digits = 6
		}
	}
	return strconv.FormatFloat(v, 'f', digits, 64)
}

func (r *renderer) slider(sl *Slider, w, h int) *image.RGBA {
	lk := r.look(sl.name)
	s := newSurface(w, h)
	box := r.frame(s, lk, w, h, color.RGBA{}, 0)
	const knob = 8.0
	x0 := float64(box.Min.X) + knob
	x1 := float64(box.Max.X) - knob
	cy := float64(box.Min.Y) + float64(box.Dy())/2
	if sl.DrawValue {
		cy = float64(box.Max.Y) - knob - 1
	}
	kx := x0 + (x1-x0)*fraction(sl.Value, sl.Min, sl.Max)
	s.fillRect(x0, cy-2, x1-x0, 4, 2, raisedColor)
	s.fillRect(x0, cy-2, kx-x0, 4, 2, accentColor)
	s.circle(kx, cy, knob, foregroundColor)
	img := r.finish(s)
	if sl.DrawValue {
		top := image.Rect(box.Min.X, box.Min.Y, box.Max.X, int(cy-knob))
		drawTextCentered(img, formatValue(sl.Value, sl.Step), top, lk.text())
	}
	return img
}

func (r *renderer) spin(sp *Spin, w, h int) *image.RGBA {
	lk := r.look(sp.name)
	s := newSurface(w, h)
	box := r.field(s, lk, w, h)
	bw := int(math.Min(24, float64(box.Dx())/3))
	minus := image.Rect(box.Max.X-2*bw, box.Min.Y, box.Max.X-bw, box.Max.Y)
	plus := image.Rect(box.Max.X-bw, box.Min.Y, box.Max.X, box.Max.Y)
	for _, b := range []image.Rectangle{minus, plus} {
		s.line(float64(b.Min.X)+0.5, float64(b.Min.Y)+3, float64(b.Min.X)+0.5, float64(b.Max.Y)-3, 1, raisedColor)
	}
	img := r.finish(s)
	ts := lk.text()
	drawTextCentered(img, "-", minus, ts)
	drawTextCentered(img, "+", plus, ts)
	text := image.Rect(box.Min.X+6, box.Min.Y, minus.Min.X-2, box.Max.Y)
	drawTextLeft(img, formatValue(sp.Value, sp.Step), text, ts)
	return img
}

func (r *renderer) picture(p *Picture, w, h int) *image.RGBA {
	lk := r.look(p.name)
	s := newSurface(w, h)
	box := r.frame(s, lk, w, h, color.RGBA{}, 0)
	if p.img == nil && p.loadErr != nil {
		s.strokeRect(float64(box.Min.X)+0.5, float64(box.Min.Y)+0.5, float64(box.Dx())-1, float64(box.Dy())-1, 0, 1, raisedColor)
	}
	img := r.finish(s)
	if p.img != nil {
		drawFitted(img, p.img, box)
		return img
	}
	drawTextCentered(img, p.AltText, box, lk.text())
	return img
}

func (r *renderer) progress(p *Progress, w, h int) *image.RGBA {
	lk := r.look(p.name)
	s := newSurface(w, h)
	box := r.frame(s, lk, w, h, color.RGBA{}, 0)
	bar := math.Min(8, float64(box.Dy()))
	y := float64(box.Min.Y) + (float64(box.Dy())-bar)/2
	if p.ShowText {
		y = float64(box.Max.Y) - bar
	}
	x := float64(box.Min.X)
	bw := float64(box.Dx())
	s.fillRect(x, y, bw, bar, bar/2, raisedColor)
	s.fillRect(x, y, bw*clamp01(p.Fraction), bar, bar/2, accentColor)
	img := r.finish(s)
	if p.ShowText {
		top := image.Rect(box.Min.X, box.Min.Y, box.Max.X, int(y))
		drawTextCentered(img, p.Text, top, lk.text())
	}
	return img
}

func (r *renderer) separator(sp *Separator, w, h int) *image.RGBA {
	lk := r.look(sp.name)
	s := newSurface(w, h)
	box := r.frame(s, lk, w, h, color.RGBA{}, 0)
	if sp.Orientation == host.Vertical {
		x := float64(box.Min.X) + float64(box.Dx())/2
		s.line(x, float64(box.Min.Y), x, float64(box.Max.Y), 1, raisedColor)
	} else {
		y := float64(box.Min.Y) + float64(box.Dy())/2
		s.line(float64(box.Min.X), y, float64(box.Max.X), y, 1, raisedColor)
	}
	return r.finish(s)
}

func (r *renderer) captioned(c *Captioned, w, h int) *image.RGBA {
	lk := r.look(c.name)
	s := newSurface(w, h)
	box := r.frame(s, lk, w, h, color.RGBA{}, 0)
	img := r.finish(s)
	ts := lk.text()
	drawTextLeft(img, c.Caption, box, ts)
	if c.Child == nil {
		return img
	}
	tw, _ := measureText(c.Caption, ts)
	x := box.Min.X + tw + c.Spacing
	cw, ch := c.Child.SizeRequest()
	if cw <= 0 {
		cw = box.Max.X - x
	}
	if ch <= 0 {
		ch = box.Dy()
	}
	if cw <= 0 || ch <= 0 {
		return img
	}
	child := r.widget(c.Child, cw, ch)
	if child == nil {
		return img
	}
	y := box.Min.Y + (box.Dy()-ch)/2
	draw.Draw(img, child.Bounds().Add(image.Pt(x, y)), child, image.Point{}, draw.Over)
	return img
}

// canvas paints the styled box, then runs the draw callback on a fresh
// context from the selected rasterizer.
func (r *renderer) canvas(c *Canvas, w, h int) *image.RGBA {
	lk := r.look(c.name)
	s := newSurface(w, h)
	r.frame(s, lk, w, h, color.RGBA{}, 0)
	img := r.finish(s)
	if c.fn == nil {
		return img
	}

	var shape image.Image
	switch r.tk.opts.Rasterizer {
	case RasterX:
		rc := rasterdraw.New(w, h)
		c.fn(rc, w, h)
		shape = rc.Image()
	default:
		gc := ggdraw.New(w, h)
		c.fn(gc, w, h)
		r.keep(gc.Err())
		shape = gc.Image()
	}
	c.redraws++
	draw.Draw(img, img.Bounds(), shape, image.Point{}, draw.Over)
	return img
}
