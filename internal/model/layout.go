package model

// Window defaults, used when the document leaves a field unset.
const (
	DefaultTitle        = "Dashboard Control Panel"
	DefaultWindowWidth  = 1920
	DefaultWindowHeight = 1080
)

// WindowSpec describes the top-level window.
type WindowSpec struct {
	Title           string `json:"title"                      yaml:"title"`
	Width           int    `json:"width"                      yaml:"width"`
	Height          int    `json:"height"                     yaml:"height"`
	BackgroundColor string `json:"background_color,omitempty" yaml:"background_color,omitempty"`
}

// DefaultWindow returns the window used when a document has no window block.
func DefaultWindow() WindowSpec {
	return WindowSpec{Title: DefaultTitle, Width: DefaultWindowWidth, Height: DefaultWindowHeight}
}

// LayoutSpec is a parsed document: one window and its elements in paint
// order. Elements never reference each other.
type LayoutSpec struct {
	Window   WindowSpec    `json:"window"  yaml:"window"`
	Elements []ElementSpec `json:"widgets" yaml:"widgets"`
}

// EmptyLayout returns a layout with a default window and no elements.
func EmptyLayout() *LayoutSpec {
	return &LayoutSpec{Window: DefaultWindow()}
}

// FindByID returns the last element carrying id, matching how later
// stylesheet rules win over earlier ones.
func (l *LayoutSpec) FindByID(id string) *ElementSpec {
	if l == nil || id == "" {
		return nil
	}
	for i := len(l.Elements) - 1; i >= 0; i-- {
		if l.Elements[i].ID == id {
			return &l.Elements[i]
		}
	}
	return nil
}

// DuplicateIDs returns ids used by more than one element, in order of
// their first repeat.
func (l *LayoutSpec) DuplicateIDs() []string {
	if l == nil {
		return nil
	}
	seen := make(map[string]int, len(l.Elements))
	var dups []string
	for _, el := range l.Elements {
		if el.ID == "" {
			continue
		}
		seen[el.ID]++
		if seen[el.ID] == 2 {
			dups = append(dups, el.ID)
		}
	}
	return dups
}
