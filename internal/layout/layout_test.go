package layout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mj1618/dashpanel/internal/model"
)

const sampleJSON = `{
  "window": {"title": "Ops", "width": 800, "height": 600, "background_color": "#2E3440"},
  "widgets": [
    {"id": "r1", "type": "Rect", "geometry": {"x": 10, "y": 20, "width": 50, "height": 30},
     "style": {"border_radius": "5", "padding": 4, "color": "#fff"},
     "props": {"fill_color": "#ff0000", "border_radius": 4.5}},
    {"id": "c1", "type": "Combo", "geometry": {"x": 5},
     "props": {"items": ["A", "B"], "active_index": 1},
     "events": {"changed": "log"}},
    {"type": "Label"}
  ]
}`

func TestParse_JSON(t *testing.T) {
	spec, err := Parse([]byte(sampleJSON), FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	w := spec.Window
	if w.Title != "Ops" || w.Width != 800 || w.Height != 600 || w.BackgroundColor != "#2E3440" {
		t.Errorf("unexpected window: %+v", w)
	}
	if len(spec.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(spec.Elements))
	}

	r := spec.Elements[0]
	if r.Kind != model.KindRect || r.ID != "r1" {
		t.Errorf("unexpected first element: %+v", r)
	}
	if r.Geometry != (model.Geometry{X: 10, Y: 20, Width: 50, Height: 30}) {
		t.Errorf("geometry: got %+v", r.Geometry)
	}
	if got := r.Props.String("fill_color", ""); got != "#ff0000" {
		t.Errorf("fill_color: got %q", got)
	}
	if got := r.Props.Number("border_radius", 0); got != 4.5 {
		t.Errorf("border_radius: got %v", got)
	}

	var keys, vals []string
	for p := r.Style.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
		vals = append(vals, p.Value)
	}
	wantKeys := []string{"border_radius", "padding", "color"}
	wantVals := []string{"5", "4", "#fff"}
	for i := range wantKeys {
		if i >= len(keys) || keys[i] != wantKeys[i] || vals[i] != wantVals[i] {
			t.Fatalf("style order: got %v=%v, want %v=%v", keys, vals, wantKeys, wantVals)
		}
	}

	c := spec.Elements[1]
	if c.Geometry != (model.Geometry{X: 5, Y: 0, Width: 100, Height: 30}) {
		t.Errorf("partial geometry defaults: got %+v", c.Geometry)
	}
	if c.Style != nil {
		t.Error("absent style should stay nil")
	}
	if got := c.Props.Int("active_index", 0); got != 1 {
		t.Errorf("active_index: got %d", got)
	}
	if c.Events["changed"] != "log" {
		t.Errorf("events not carried through: %v", c.Events)
	}

	l := spec.Elements[2]
	if l.Geometry != model.DefaultGeometry() {
		t.Errorf("missing geometry: got %+v", l.Geometry)
	}
	if l.Props != nil {
		t.Errorf("missing props should be nil, got %v", l.Props)
	}
}

func TestParse_WindowDefaults(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no window", `{"widgets": []}`},
		{"empty window", `{"window": {}}`},
		{"non-positive size", `{"window": {"width": 0, "height": -5}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Parse([]byte(tt.doc), FormatJSON)
			if err != nil {
				t.Fatal(err)
			}
			if spec.Window.Width != 1920 || spec.Window.Height != 1080 {
				t.Errorf("size: got %dx%d, want 1920x1080", spec.Window.Width, spec.Window.Height)
			}
			if spec.Window.Title != model.DefaultTitle {
				t.Errorf("title: got %q", spec.Window.Title)
			}
		})
	}
}

func TestParse_YAMLKeepsStyleOrder(t *testing.T) {
	doc := `
window:
  title: Yaml Panel
widgets:
  - id: lbl
    type: Label
    geometry: {x: 1, y: 2, width: 3, height: 4}
    style:
      font_size: 14
      color: "#abcdef"
      background_color: red
    props:
      label: Hello
      font_size: 18
`
	spec, err := Parse([]byte(doc), FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	el := spec.Elements[0]
	first := el.Style.Oldest()
	if first == nil || first.Key != "font_size" || first.Value != "14" {
		t.Fatalf("first style entry: got %+v", first)
	}
	if last := el.Style.Newest(); last.Key != "background_color" {
		t.Errorf("last style key: got %q", last.Key)
	}
	if got := el.Props.Int("font_size", 0); got != 18 {
		t.Errorf("font_size prop: got %d", got)
	}
	if spec.Window.Title != "Yaml Panel" {
		t.Errorf("title: got %q", spec.Window.Title)
	}
}

func TestParse_TOML(t *testing.T) {
	doc := `
[window]
title = "Toml Panel"
width = 640
height = 480

[[widgets]]
id = "s1"
type = "Star"
[widgets.geometry]
x = 3
y = 4
width = 60
height = 60
[widgets.props]
points = 6
fill_color = "#ffcc00"
[widgets.style]
margin = "2px"
color = "#000000"
`
	spec, err := Parse([]byte(doc), FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	if spec.Window.Width != 640 || spec.Window.Title != "Toml Panel" {
		t.Errorf("unexpected window: %+v", spec.Window)
	}
	el := spec.Elements[0]
	if el.Kind != model.KindStar || el.Geometry.Width != 60 {
		t.Errorf("unexpected element: %+v", el)
	}
	if got := el.Props.Int("points", 0); got != 6 {
		t.Errorf("points: got %d", got)
	}
	// TOML tables have no order; style keys come out sorted.
	if first := el.Style.Oldest(); first.Key != "color" {
		t.Errorf("first style key: got %q, want color", first.Key)
	}
}

func TestParse_InvalidRoot(t *testing.T) {
	for _, tt := range []struct {
		format Format
		doc    string
	}{
		{FormatJSON, `[1, 2]`},
		{FormatJSON, ``},
		{FormatYAML, `- a`},
		{FormatYAML, `just a string`},
	} {
		_, err := Parse([]byte(tt.doc), tt.format)
		if !errors.Is(err, ErrInvalidDocument) {
			t.Errorf("%s %q: got %v, want ErrInvalidDocument", tt.format, tt.doc, err)
		}
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"widgets": [`), FormatJSON)
	if err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLoad_PicksFormatByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "panel.yml")
	if err := os.WriteFile(path, []byte("widgets:\n  - type: Button\n"), 0644); err != nil {
		t.Fatal(err)
	}
	spec, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(spec.Elements) != 1 || spec.Elements[0].Kind != model.KindButton {
		t.Errorf("unexpected elements: %+v", spec.Elements)
	}

	if _, err := Load(filepath.Join(dir, "panel")); err == nil {
		t.Error("expected error for path without extension")
	}
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"json": FormatJSON, "YAML": FormatYAML, "yml": FormatYAML, "toml": FormatTOML} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
}
