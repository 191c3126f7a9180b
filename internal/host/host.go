package host

import "github.com/mj1618/dashpanel/internal/draw"

// DrawFunc paints a canvas of the given size. Canvases call it on every
// redraw with a fresh context.
type DrawFunc func(ctx draw.Context, w, h int)

// Widget is a constructed visual object owned by the toolkit.
type Widget interface {
	// SetName tags the widget with an identity usable as a #name selector.
	SetName(name string)
	Name() string

	// SetSizeRequest forces the widget's footprint regardless of its
	// natural size.
	SetSizeRequest(w, h int)
	SizeRequest() (w, h int)
}

// Container places children at absolute pixel positions.
type Container interface {
	Widget
	Put(child Widget, x, y int)
}

// Window is a top-level surface holding one container.
type Window interface {
	SetChild(c Container)
	Title() string
	Size() (w, h int)
}

// Toolkit constructs windows, controls and canvases.
type Toolkit interface {
	NewWindow(opts WindowOptions) Window
	NewFixed() Container

	NewButton(opts ButtonOptions) Widget
	NewLabel(opts LabelOptions) Widget
	NewEntry(opts EntryOptions) Widget
	NewCheckbox(opts CheckboxOptions) Widget
	NewSwitch(opts SwitchOptions) Widget
	NewCombo(opts ComboOptions) Widget
	NewSlider(opts RangeOptions) Widget
	NewSpin(opts RangeOptions) Widget
	NewImage(opts ImageOptions) Widget
	NewProgress(opts ProgressOptions) Widget
	NewSeparator(opts SeparatorOptions) Widget

	// NewCaptioned pairs child with a leading text caption laid out
	// horizontally with the given spacing.
	NewCaptioned(caption string, spacing int, child Widget) Widget

	// NewCanvas returns a w x h drawing surface that calls fn on redraw.
	NewCanvas(w, h int, fn DrawFunc) Widget

	// ApplyStylesheet attaches one stylesheet to every surface. A later
	// call replaces the earlier one.
	ApplyStylesheet(css string) error
}
