package host

import (
	"fmt"
	"strconv"
	"strings"
)

// Orientation of separators and captioned pairs.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation maps "vertical" to Vertical and anything else to
// Horizontal.
func ParseOrientation(s string) Orientation {
	if strings.EqualFold(s, "vertical") {
		return Vertical
	}
	return Horizontal
}

// Bounds represents a window-relative rectangle.
type Bounds struct {
	X, Y, Width, Height int
}

// Array returns the bounds as [x, y, width, height].
func (b Bounds) Array() [4]int {
	return [4]int{b.X, b.Y, b.Width, b.Height}
}

// ParseBBox parses a "x,y,w,h" string into a Bounds.
func ParseBBox(s string) (*Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid bbox %q: expected x,y,w,h", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid bbox %q: %w", s, err)
		}
		vals[i] = v
	}
	return &Bounds{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}

// ParseSize parses a "WxH" string with positive dimensions.
func ParseSize(s string) (w, h int, err error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q: expected WxH", s)
	}
	w, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	h, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q: dimensions must be positive", s)
	}
	return w, h, nil
}

// WindowOptions configures the top-level window.
type WindowOptions struct {
	Title  string
	Width  int
	Height int
}

// ButtonOptions configures a push button. A non-empty IconName makes the
// button icon-led with Label as its caption.
type ButtonOptions struct {
	Label    string
	IconName string
}

// LabelOptions configures static text. FontSize 0 keeps the default size.
type LabelOptions struct {
	Text     string
	FontSize int
}

// EntryOptions configures a single-line text field.
type EntryOptions struct {
	Text        string
	Placeholder string // shown only while Text is empty
}

// CheckboxOptions configures a check button.
type CheckboxOptions struct {
	Label   string
	Checked bool
}

// SwitchOptions configures an on/off switch.
type SwitchOptions struct {
	Active bool
}

// ComboOptions configures a drop-down. Active is -1 for no selection.
type ComboOptions struct {
	Items  []string
	Active int
}

// RangeOptions configures sliders and spin buttons.
type RangeOptions struct {
	Min, Max, Step, Value float64
	DrawValue             bool // show the value as text next to a slider
	Numeric               bool // accept typed numbers, not just dragging
}

// ImageOptions configures a picture. AltText is shown when FilePath is
// empty.
type ImageOptions struct {
	FilePath string
	AltText  string
}

// ProgressOptions configures a progress bar. Fraction is not clamped.
type ProgressOptions struct {
	Fraction float64
	ShowText bool
	Text     string
}

// SeparatorOptions configures a separator line.
type SeparatorOptions struct {
	Orientation Orientation
}
