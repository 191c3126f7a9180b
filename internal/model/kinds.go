package model

// Kind is the type tag of an element.
type Kind string

// Shape kinds, drawn procedurally on a canvas.
const (
	KindLine     Kind = "Line"
	KindRect     Kind = "Rect"
	KindEllipse  Kind = "Ellipse"
	KindTriangle Kind = "Triangle"
	KindDiamond  Kind = "Diamond"
	KindArrow    Kind = "Arrow"
	KindStar     Kind = "Star"
)

// Control kinds, backed by host toolkit widgets.
const (
	KindButton    Kind = "Button"
	KindLabel     Kind = "Label"
	KindEntry     Kind = "Entry"
	KindCheckbox  Kind = "Checkbox"
	KindSwitch    Kind = "Switch"
	KindCombo     Kind = "Combo"
	KindSlider    Kind = "Slider"
	KindSpin      Kind = "Spin"
	KindImage     Kind = "Image"
	KindProgress  Kind = "Progress"
	KindSeparator Kind = "Separator"
)

// Class groups kinds by how they are constructed.
type Class string

const (
	ClassShape   Class = "shape"
	ClassControl Class = "control"
	ClassUnknown Class = "unknown"
)

// ShapeKinds lists the shape kinds in declaration order.
var ShapeKinds = []Kind{KindLine, KindRect, KindEllipse, KindTriangle, KindDiamond, KindArrow, KindStar}

// ControlKinds lists the control kinds in declaration order.
var ControlKinds = []Kind{
	KindButton, KindLabel, KindEntry, KindCheckbox, KindSwitch, KindCombo,
	KindSlider, KindSpin, KindImage, KindProgress, KindSeparator,
}

// KindMap maps every known kind to its class.
var KindMap = func() map[Kind]Class {
	m := make(map[Kind]Class, len(ShapeKinds)+len(ControlKinds))
	for _, k := range ShapeKinds {
		m[k] = ClassShape
	}
	for _, k := range ControlKinds {
		m[k] = ClassControl
	}
	return m
}()

// MetaKinds maps meta-kind names to the concrete kinds they expand to.
var MetaKinds = map[string][]Kind{
	"shape":   ShapeKinds,
	"control": ControlKinds,
}

// ExpandKinds expands any meta-kinds in the given list to their concrete
// kinds. Other names pass through unchanged. Duplicates are removed.
func ExpandKinds(names []string) []Kind {
	seen := make(map[Kind]bool, len(names))
	var expanded []Kind
	add := func(k Kind) {
		if !seen[k] {
			seen[k] = true
			expanded = append(expanded, k)
		}
	}
	for _, n := range names {
		if concrete, ok := MetaKinds[n]; ok {
			for _, c := range concrete {
				add(c)
			}
		} else {
			add(Kind(n))
		}
	}
	return expanded
}

// Class returns the kind's class, or ClassUnknown.
func (k Kind) Class() Class {
	if c, ok := KindMap[k]; ok {
		return c
	}
	return ClassUnknown
}

// IsShape reports whether k is one of the seven shape kinds.
func (k Kind) IsShape() bool {
	return k.Class() == ClassShape
}

// IsControl reports whether k is one of the eleven control kinds.
func (k Kind) IsControl() bool {
	return k.Class() == ClassControl
}
