// Package layout decodes panel documents (JSON, YAML or TOML) into the
// in-memory model.
package layout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/dashpanel/internal/model"
	"github.com/mj1618/dashpanel/internal/props"
)

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrInvalidDocument is returned when a document's root is not an object.
var ErrInvalidDocument = errors.New("layout document root must be an object")

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unknown layout format: %q (expected json, yaml, or toml)", s)
	}
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer layout format of %q: no file extension", path)
	}
	return ParseFormat(ext)
}

// Load reads and decodes the document at path.
func Load(path string) (*model.LayoutSpec, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	spec, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// Parse decodes a document in the given format.
func Parse(data []byte, format Format) (*model.LayoutSpec, error) {
	var doc document
	switch format {
	case FormatJSON:
		if err := decodeJSON(data, &doc); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := decodeYAML(data, &doc); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := decodeTOML(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported layout format: %s", format)
	}
	return doc.toModel(), nil
}

func decodeJSON(data []byte, doc *document) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ErrInvalidDocument
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := dec.Decode(doc); err != nil {
		return fmt.Errorf("json decode: %w", err)
	}
	return nil
}

func decodeYAML(data []byte, doc *document) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("yaml decode: %w", err)
	}
	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return ErrInvalidDocument
	}
	if err := root.Content[0].Decode(doc); err != nil {
		return fmt.Errorf("yaml decode: %w", err)
	}
	return nil
}

// decodeTOML goes through JSON so style tables come out ordered by key
// and the rest of the decoding path is shared.
func decodeTOML(data []byte, doc *document) error {
	var generic map[string]interface{}
	if err := toml.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("toml decode: %w", err)
	}
	b, err := json.Marshal(generic)
	if err != nil {
		return fmt.Errorf("toml decode: %w", err)
	}
	return decodeJSON(b, doc)
}

type document struct {
	Window  *windowDoc  `json:"window"  yaml:"window"`
	Widgets []widgetDoc `json:"widgets" yaml:"widgets"`
}

type windowDoc struct {
	Title           *string  `json:"title"            yaml:"title"`
	Width           *float64 `json:"width"            yaml:"width"`
	Height          *float64 `json:"height"           yaml:"height"`
	BackgroundColor *string  `json:"background_color" yaml:"background_color"`
}

type geometryDoc struct {
	X      *float64 `json:"x"      yaml:"x"`
	Y      *float64 `json:"y"      yaml:"y"`
	Width  *float64 `json:"width"  yaml:"width"`
	Height *float64 `json:"height" yaml:"height"`
}

type widgetDoc struct {
	ID       string                              `json:"id"       yaml:"id"`
	Type     string                              `json:"type"     yaml:"type"`
	Geometry *geometryDoc                        `json:"geometry" yaml:"geometry"`
	Style    *orderedmap.OrderedMap[string, any] `json:"style"    yaml:"style"`
	Props    map[string]interface{}              `json:"props"    yaml:"props"`
	Events   map[string]interface{}              `json:"events"   yaml:"events"`
}

func (d document) toModel() *model.LayoutSpec {
	spec := &model.LayoutSpec{Window: d.Window.toModel()}
	for _, w := range d.Widgets {
		spec.Elements = append(spec.Elements, w.toModel())
	}
	return spec
}

func (w *windowDoc) toModel() model.WindowSpec {
	win := model.DefaultWindow()
	if w == nil {
		return win
	}
	if w.Title != nil {
		win.Title = *w.Title
	}
	if w.Width != nil && int(*w.Width) > 0 {
		win.Width = int(*w.Width)
	}
	if w.Height != nil && int(*w.Height) > 0 {
		win.Height = int(*w.Height)
	}
	if w.BackgroundColor != nil {
		win.BackgroundColor = *w.BackgroundColor
	}
	return win
}

func (g *geometryDoc) toModel() model.Geometry {
	geo := model.DefaultGeometry()
	if g == nil {
		return geo
	}
	pick := func(v *float64, dst *int) {
		if v != nil {
			*dst = int(*v)
		}
	}
	pick(g.X, &geo.X)
	pick(g.Y, &geo.Y)
	pick(g.Width, &geo.Width)
	pick(g.Height, &geo.Height)
	return geo
}

func (w widgetDoc) toModel() model.ElementSpec {
	return model.ElementSpec{
		ID:       w.ID,
		Kind:     model.Kind(w.Type),
		Geometry: w.Geometry.toModel(),
		Style:    styleToModel(w.Style),
		Props:    props.FromMap(w.Props),
		Events:   w.Events,
	}
}

// styleToModel keeps string values as-is and renders other scalars with
// %v. Nulls and nested values are dropped.
func styleToModel(in *orderedmap.OrderedMap[string, any]) *model.Style {
	if in == nil {
		return nil
	}
	out := model.NewStyle()
	for pair := in.Oldest(); pair != nil; pair = pair.Next() {
		switch v := pair.Value.(type) {
		case nil, map[string]interface{}, []interface{}:
			continue
		case string:
			out.Set(pair.Key, v)
		default:
			out.Set(pair.Key, fmt.Sprintf("%v", v))
		}
	}
	return out
}
