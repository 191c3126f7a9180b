// Package style turns per-element style maps into one stylesheet for the
// whole panel.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"

	"github.com/mj1618/dashpanel/internal/host"
	"github.com/mj1618/dashpanel/internal/model"
)

// properties maps document style keys to CSS property names. Keys not
// listed here are ignored.
var properties = map[string]string{
	"background_color": "background",
	"color":            "color",
	"font_size":        "font-size",
	"font_weight":      "font-weight",
	"border_radius":    "border-radius",
	"border_color":     "border-color",
	"border_width":     "border-width",
	"padding":          "padding",
	"margin":           "margin",
}

// Keys returns the recognized style keys.
func Keys() []string {
	keys := make([]string, 0, len(properties))
	for k := range properties {
		keys = append(keys, k)
	}
	return keys
}

// Declaration converts one style entry into a CSS declaration body
// ("font-size: 14px"). ok is false for unknown keys.
func Declaration(key, value string) (decl string, ok bool) {
	prop, ok := properties[key]
	if !ok {
		return "", false
	}
	if key == "font_size" {
		if _, err := strconv.ParseFloat(value, 64); err == nil {
			value += "px"
		}
	}
	return prop + ": " + value, true
}

// Builder accumulates rule blocks in document order. Create one per
// document load, add rules, then Apply once.
type Builder struct {
	buf   strings.Builder
	rules int
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{}
}

// AddWindow adds the window background rule. An empty color adds nothing.
func (b *Builder) AddWindow(background string) {
	if background == "" {
		return
	}
	fmt.Fprintf(&b.buf, "window {\n  background-color: %s;\n}\n\n", background)
	b.rules++
}

// AddElement adds a "#id" rule with the recognized entries of st. An
// element without id or style adds nothing; a style with no recognized
// keys still adds an empty block.
func (b *Builder) AddElement(id string, st *model.Style) {
	if id == "" || st == nil {
		return
	}
	fmt.Fprintf(&b.buf, "#%s {\n", id)
	for pair := st.Oldest(); pair != nil; pair = pair.Next() {
		if decl, ok := Declaration(pair.Key, pair.Value); ok {
			fmt.Fprintf(&b.buf, "  %s;\n", decl)
		}
	}
	b.buf.WriteString("}\n\n")
	b.rules++
}

// Rules returns the number of rule blocks added.
func (b *Builder) Rules() int { return b.rules }

// String returns the accumulated stylesheet text.
func (b *Builder) String() string { return b.buf.String() }

// Compile parses the accumulated text.
func (b *Builder) Compile() (*css.Stylesheet, error) {
	sheet, err := parser.Parse(b.String())
	if err != nil {
		return nil, fmt.Errorf("compile stylesheet: %w", err)
	}
	return sheet, nil
}

// Apply attaches the stylesheet to every surface of tk.
func (b *Builder) Apply(tk host.Toolkit) error {
	if err := tk.ApplyStylesheet(b.String()); err != nil {
		return fmt.Errorf("apply stylesheet: %w", err)
	}
	return nil
}
