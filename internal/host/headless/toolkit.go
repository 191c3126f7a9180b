// Package headless is an offscreen host toolkit. It records the widget
// tree and rasterizes it on demand, so panels can be rendered to PNG,
// inspected, or shown by a presenter that only blits pixels.
package headless

import (
	"fmt"
	"image"
	"strings"

	"github.com/mj1618/dashpanel/internal/host"
)

// Rasterizer selects the backend that paints shape canvases.
type Rasterizer string

const (
	RasterGG Rasterizer = "gg"
	RasterX  Rasterizer = "rasterx"
)

// ParseRasterizer maps a flag value to a Rasterizer.
func ParseRasterizer(s string) (Rasterizer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "gg":
		return RasterGG, nil
	case "rasterx", "raster":
		return RasterX, nil
	}
	return "", fmt.Errorf("unknown rasterizer %q (use gg or rasterx)", s)
}

// Options configures a Toolkit.
type Options struct {
	Rasterizer Rasterizer
}

// Toolkit implements host.Toolkit without a display.
type Toolkit struct {
	opts  Options
	css   string
	sheet *Stylesheet
}

var _ host.Toolkit = (*Toolkit)(nil)

// New returns a toolkit with an empty stylesheet.
func New(opts Options) *Toolkit {
	if opts.Rasterizer == "" {
		opts.Rasterizer = RasterGG
	}
	return &Toolkit{opts: opts, sheet: &Stylesheet{}}
}

// Stylesheet returns the stylesheet currently applied.
func (t *Toolkit) Stylesheet() *Stylesheet { return t.sheet }

// CSS returns the raw text passed to the last ApplyStylesheet call.
func (t *Toolkit) CSS() string { return t.css }

// ApplyStylesheet replaces the active stylesheet. On a parse error the
// toolkit keeps rendering with defaults.
func (t *Toolkit) ApplyStylesheet(css string) error {
	t.css = css
	sheet, err := ParseStylesheet(css)
	t.sheet = sheet
	return err
}

func (t *Toolkit) NewWindow(opts host.WindowOptions) host.Window {
	return &Window{tk: t, opts: opts}
}

func (t *Toolkit) NewFixed() host.Container { return &Fixed{} }

func (t *Toolkit) NewButton(opts host.ButtonOptions) host.Widget {
	return &Button{ButtonOptions: opts}
}

func (t *Toolkit) NewLabel(opts host.LabelOptions) host.Widget {
	return &Label{LabelOptions: opts}
}

func (t *Toolkit) NewEntry(opts host.EntryOptions) host.Widget {
	return &Entry{EntryOptions: opts}
}

func (t *Toolkit) NewCheckbox(opts host.CheckboxOptions) host.Widget {
	return &Checkbox{CheckboxOptions: opts}
}

func (t *Toolkit) NewSwitch(opts host.SwitchOptions) host.Widget {
	return &Switch{SwitchOptions: opts}
}

func (t *Toolkit) NewCombo(opts host.ComboOptions) host.Widget {
	return &Combo{ComboOptions: opts}
}

func (t *Toolkit) NewSlider(opts host.RangeOptions) host.Widget {
	return &Slider{RangeOptions: opts}
}

func (t *Toolkit) NewSpin(opts host.RangeOptions) host.Widget {
	return &Spin{RangeOptions: opts}
}

// NewImage decodes FilePath eagerly. A failed load is kept on the widget
// and the alt text is drawn in its place.
func (t *Toolkit) NewImage(opts host.ImageOptions) host.Widget {
	p := &Picture{ImageOptions: opts}
	if opts.FilePath != "" {
		p.img, p.loadErr = loadImage(opts.FilePath)
	}
	return p
}

func (t *Toolkit) NewProgress(opts host.ProgressOptions) host.Widget {
	return &Progress{ProgressOptions: opts}
}

func (t *Toolkit) NewSeparator(opts host.SeparatorOptions) host.Widget {
	return &Separator{SeparatorOptions: opts}
}

func (t *Toolkit) NewCaptioned(caption string, spacing int, child host.Widget) host.Widget {
	return &Captioned{Caption: caption, Spacing: spacing, Child: child}
}

func (t *Toolkit) NewCanvas(w, h int, fn host.DrawFunc) host.Widget {
	return &Canvas{base: base{w: w, h: h}, fn: fn}
}

// Window is a top-level surface. It implements host.Renderer.
type Window struct {
	tk    *Toolkit
	opts  host.WindowOptions
	child host.Container
}

var _ host.Renderer = (*Window)(nil)

func (w *Window) SetChild(c host.Container) { w.child = c }
func (w *Window) Title() string             { return w.opts.Title }
func (w *Window) Size() (int, int)          { return w.opts.Width, w.opts.Height }

// Child returns the container set with SetChild.
func (w *Window) Child() host.Container { return w.child }

// Render rasterizes the window. Shape canvases run their draw callback
// on every call.
func (w *Window) Render() (*image.RGBA, error) {
	width, height := w.Size()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", width, height)
	}
	r := &renderer{tk: w.tk}
	return r.window(width, height, w.child)
}
