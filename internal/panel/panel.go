// Package panel assembles a layout into a host window: it builds every
// element, places it at its declared position and applies one stylesheet.
package panel

import (
	"errors"
	"log/slog"

	"github.com/mj1618/dashpanel/internal/factory"
	"github.com/mj1618/dashpanel/internal/host"
	"github.com/mj1618/dashpanel/internal/model"
	"github.com/mj1618/dashpanel/internal/style"
)

// Options configures Build.
type Options struct {
	// Logger receives skipped-element and stylesheet warnings. Nil uses
	// the package logger.
	Logger *slog.Logger

	// Width and Height override the document window size when positive.
	Width, Height int
}

// Placed describes an element that produced a widget.
type Placed struct {
	Index  int         `json:"index"        yaml:"index"`
	ID     string      `json:"id,omitempty" yaml:"id,omitempty"`
	Kind   model.Kind  `json:"type"         yaml:"type"`
	Class  model.Class `json:"class"        yaml:"class"`
	Bounds [4]int      `json:"bounds"       yaml:"bounds,flow"`
	Styled bool        `json:"styled"       yaml:"styled"`
	Widget host.Widget `json:"-"            yaml:"-"`
}

// Skipped describes an element left out of the window.
type Skipped struct {
	Index  int        `json:"index"        yaml:"index"`
	ID     string     `json:"id,omitempty" yaml:"id,omitempty"`
	Kind   model.Kind `json:"type"         yaml:"type"`
	Reason string     `json:"reason"       yaml:"reason"`
}

// Report is the outcome of assembling one layout.
type Report struct {
	Window     model.WindowSpec `json:"window"                  yaml:"window"`
	Placed     []Placed         `json:"placed"                  yaml:"placed"`
	Skipped    []Skipped        `json:"skipped,omitempty"       yaml:"skipped,omitempty"`
	Duplicates []string         `json:"duplicate_ids,omitempty" yaml:"duplicate_ids,omitempty"`
	Rules      int              `json:"style_rules"             yaml:"style_rules"`
	Stylesheet string           `json:"stylesheet,omitempty"    yaml:"stylesheet,omitempty"`

	// Surface is the constructed window.
	Surface host.Window `json:"-" yaml:"-"`
}

// Filter returns the placed elements matching kinds and bbox, in document
// order. Empty kinds and a nil bbox match everything.
func (r *Report) Filter(kinds []model.Kind, bbox *[4]int) []Placed {
	if len(kinds) == 0 && bbox == nil {
		return r.Placed
	}
	want := make(map[model.Kind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	var out []Placed
	for _, p := range r.Placed {
		if len(want) > 0 && !want[p.Kind] {
			continue
		}
		if bbox != nil && !model.BoundsIntersect(p.Bounds, *bbox) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Build assembles doc into a window of tk. A nil doc yields an empty
// window with default settings. Element failures are logged and recorded
// in the report; they never stop the remaining elements.
func Build(doc *model.LayoutSpec, tk host.Toolkit, opts Options) (*Report, error) {
	if tk == nil {
		return nil, errors.New("panel: nil toolkit")
	}
	log := opts.Logger
	if log == nil {
		log = Logger()
	}
	if doc == nil {
		log.Info("no layout given, starting with an empty panel")
		doc = model.EmptyLayout()
	}

	win := doc.Window
	if opts.Width > 0 {
		win.Width = opts.Width
	}
	if opts.Height > 0 {
		win.Height = opts.Height
	}

	surface := tk.NewWindow(host.WindowOptions{Title: win.Title, Width: win.Width, Height: win.Height})
	fixed := tk.NewFixed()
	surface.SetChild(fixed)

	rep := &Report{Window: win, Surface: surface, Placed: []Placed{}}

	rep.Duplicates = doc.DuplicateIDs()
	for _, id := range rep.Duplicates {
		log.Warn("duplicate element id, later style rules win", "id", id)
	}

	sheet := style.New()
	sheet.AddWindow(win.BackgroundColor)

	for i := range doc.Elements {
		el := &doc.Elements[i]
		w, err := factory.Build(el, tk)
		if err == nil && w == nil {
			err = errors.New("no visual object")
		}
		if err != nil {
			log.Warn("failed to create element", "index", i, "id", el.ID, "type", string(el.Kind), "err", err)
			rep.Skipped = append(rep.Skipped, Skipped{Index: i, ID: el.ID, Kind: el.Kind, Reason: err.Error()})
			continue
		}

		g := el.Geometry
		fixed.Put(w, g.X, g.Y)
		styled := el.ID != "" && el.Style != nil
		sheet.AddElement(el.ID, el.Style)
		rep.Placed = append(rep.Placed, Placed{
			Index:  i,
			ID:     el.ID,
			Kind:   el.Kind,
			Class:  el.Kind.Class(),
			Bounds: g.Bounds(),
			Styled: styled,
			Widget: w,
		})
		log.Debug("placed element", "index", i, "id", el.ID, "type", string(el.Kind), "x", g.X, "y", g.Y)
	}

	rep.Rules = sheet.Rules()
	rep.Stylesheet = sheet.String()
	if _, err := sheet.Compile(); err != nil {
		log.Warn("stylesheet did not compile, applying raw text", "err", err)
	}
	if err := sheet.Apply(tk); err != nil {
		log.Warn("stylesheet rejected by toolkit", "err", err)
	}
	return rep, nil
}
