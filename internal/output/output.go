package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mj1618/dashpanel/internal/draw"
	"github.com/mj1618/dashpanel/internal/model"
	"github.com/mj1618/dashpanel/internal/panel"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// InspectResult is the top-level output of the `inspect` command.
type InspectResult struct {
	Source       string           `yaml:"source,omitempty"        json:"source,omitempty"`
	Window       model.WindowSpec `yaml:"window"                  json:"window"`
	Elements     []panel.Placed   `yaml:"elements"                json:"elements"`
	Skipped      []panel.Skipped  `yaml:"skipped,omitempty"       json:"skipped,omitempty"`
	DuplicateIDs []string         `yaml:"duplicate_ids,omitempty" json:"duplicate_ids,omitempty"`
	StyleRules   int              `yaml:"style_rules"             json:"style_rules"`
}

// NewInspectResult summarizes a panel report; elements is the filtered
// subset to list.
func NewInspectResult(source string, rep *panel.Report, elements []panel.Placed) InspectResult {
	if elements == nil {
		elements = []panel.Placed{}
	}
	return InspectResult{
		Source:       source,
		Window:       rep.Window,
		Elements:     elements,
		Skipped:      rep.Skipped,
		DuplicateIDs: rep.Duplicates,
		StyleRules:   rep.Rules,
	}
}

// ShapeResult is the output of `shape --ops`.
type ShapeResult struct {
	Kind   model.Kind  `yaml:"type"                  json:"type"`
	Width  int         `yaml:"width"                 json:"width"`
	Height int         `yaml:"height"                json:"height"`
	Ops    []draw.Op   `yaml:"ops"                   json:"ops"`
	Bounds *[4]float64 `yaml:"bounds,omitempty,flow" json:"bounds,omitempty"` // painted area as [minX, minY, maxX, maxY]
}

// NewShapeResult describes a recorded shape.
func NewShapeResult(kind model.Kind, w, h int, rec *draw.Recorder) ShapeResult {
	res := ShapeResult{Kind: kind, Width: w, Height: h, Ops: rec.Ops}
	if res.Ops == nil {
		res.Ops = []draw.Op{}
	}
	if b := rec.PaintedBounds(); b.NonEmpty {
		res.Bounds = &[4]float64{b.MinX, b.MinY, b.MaxX, b.MaxY}
	}
	return res
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	return Fprint(os.Stdout, v, OutputFormat, PrettyOutput)
}

// Sprint serializes v in the given format and returns the text.
func Sprint(v interface{}, format Format, pretty bool) (string, error) {
	var buf bytes.Buffer
	if err := Fprint(&buf, v, format, pretty); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Fprint serializes v to w.
func Fprint(w io.Writer, v interface{}, format Format, pretty bool) error {
	switch format {
	case FormatJSON:
		return encodeJSON(w, v, pretty)
	case FormatYAML:
		return encodeYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	return encodeJSON(os.Stdout, v, false)
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	return encodeJSON(os.Stdout, v, true)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	return encodeYAML(os.Stdout, v)
}

func encodeJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
