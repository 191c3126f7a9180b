package model

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/mj1618/dashpanel/internal/props"
)

// Default element geometry, applied per field when the document omits it.
const (
	DefaultX      = 0
	DefaultY      = 0
	DefaultWidth  = 100
	DefaultHeight = 30
)

// Geometry is an element's absolute placement in window pixels.
type Geometry struct {
	X      int `json:"x"      yaml:"x"`
	Y      int `json:"y"      yaml:"y"`
	Width  int `json:"width"  yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// DefaultGeometry returns the geometry used when a document gives none.
func DefaultGeometry() Geometry {
	return Geometry{X: DefaultX, Y: DefaultY, Width: DefaultWidth, Height: DefaultHeight}
}

// Bounds returns the geometry as [x, y, width, height].
func (g Geometry) Bounds() [4]int {
	return [4]int{g.X, g.Y, g.Width, g.Height}
}

// Style holds CSS-like declarations in document order.
type Style = orderedmap.OrderedMap[string, string]

// NewStyle builds a Style from alternating key, value arguments.
func NewStyle(kv ...string) *Style {
	s := orderedmap.New[string, string]()
	for i := 0; i+1 < len(kv); i += 2 {
		s.Set(kv[i], kv[i+1])
	}
	return s
}

// ElementSpec is one entry of the document's widget list: a control or a
// shape placed at an absolute position.
type ElementSpec struct {
	ID       string                 `json:"id,omitempty"     yaml:"id,omitempty"`
	Kind     Kind                   `json:"type"             yaml:"type"`
	Geometry Geometry               `json:"geometry"         yaml:"geometry"`
	Style    *Style                 `json:"style,omitempty"  yaml:"style,omitempty"` // nil when the document declares none
	Props    props.Bag              `json:"props,omitempty"  yaml:"props,omitempty"`
	Events   map[string]interface{} `json:"events,omitempty" yaml:"events,omitempty"` // carried through, never consumed
}

// IsShape reports whether the element is drawn by the geometry engine.
func (e ElementSpec) IsShape() bool {
	return e.Kind.IsShape()
}
