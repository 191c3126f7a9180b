// Package factory turns element specs into host widgets. Shapes become
// canvases redrawn by the geometry engine; controls map to toolkit
// primitives.
package factory

import (
	"errors"
	"fmt"

	"github.com/mj1618/dashpanel/internal/host"
	"github.com/mj1618/dashpanel/internal/model"
	"github.com/mj1618/dashpanel/internal/shape"
)

var (
	// ErrInvalidArgument is returned for a nil spec or one without a type.
	ErrInvalidArgument = errors.New("invalid element")

	// ErrUnsupportedKind is returned for a type that names no known kind.
	ErrUnsupportedKind = errors.New("unsupported element type")
)

// Builder constructs the widget for one kind. Size and name are applied
// by Build afterwards.
type Builder interface {
	Build(spec *model.ElementSpec, tk host.Toolkit) host.Widget
}

// BuilderFunc adapts a function to Builder.
type BuilderFunc func(spec *model.ElementSpec, tk host.Toolkit) host.Widget

func (f BuilderFunc) Build(spec *model.ElementSpec, tk host.Toolkit) host.Widget {
	return f(spec, tk)
}

var registry = func() map[model.Kind]Builder {
	m := map[model.Kind]Builder{
		model.KindButton:    BuilderFunc(buildButton),
		model.KindLabel:     BuilderFunc(buildLabel),
		model.KindEntry:     BuilderFunc(buildEntry),
		model.KindCheckbox:  BuilderFunc(buildCheckbox),
		model.KindSwitch:    BuilderFunc(buildSwitch),
		model.KindCombo:     BuilderFunc(buildCombo),
		model.KindSlider:    BuilderFunc(buildSlider),
		model.KindSpin:      BuilderFunc(buildSpin),
		model.KindImage:     BuilderFunc(buildImage),
		model.KindProgress:  BuilderFunc(buildProgress),
		model.KindSeparator: BuilderFunc(buildSeparator),
	}
	for _, k := range model.ShapeKinds {
		m[k] = BuilderFunc(buildShape)
	}
	return m
}()

// Supported reports whether kind has a builder.
func Supported(kind model.Kind) bool {
	_, ok := registry[kind]
	return ok
}

// Build constructs the widget for spec, tags it with the element id and
// forces its size to the declared geometry. A nil widget with a nil error
// means the element produced nothing visible.
func Build(spec *model.ElementSpec, tk host.Toolkit) (host.Widget, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: nil spec", ErrInvalidArgument)
	}
	if spec.Kind == "" {
		return nil, fmt.Errorf("%w: missing type", ErrInvalidArgument)
	}
	b, ok := registry[spec.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, spec.Kind)
	}
	w := b.Build(spec, tk)
	if w == nil {
		return nil, nil
	}
	if spec.ID != "" {
		w.SetName(spec.ID)
	}
	w.SetSizeRequest(spec.Geometry.Width, spec.Geometry.Height)
	return w, nil
}

// buildShape binds a private copy of the props to the redraw callback so
// later edits to the spec cannot reach a live canvas.
func buildShape(spec *model.ElementSpec, tk host.Toolkit) host.Widget {
	if !spec.Kind.IsShape() {
		return nil
	}
	g := spec.Geometry
	return tk.NewCanvas(g.Width, g.Height, shape.Painter(spec.Kind, spec.Props.Clone()))
}
