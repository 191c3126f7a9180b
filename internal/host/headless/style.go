package headless

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Nord palette used when the stylesheet says nothing.
var (
	windowBackground = color.RGBA{0x2E, 0x34, 0x40, 0xFF}
	surfaceColor     = color.RGBA{0x3B, 0x42, 0x52, 0xFF}
	raisedColor      = color.RGBA{0x4C, 0x56, 0x6A, 0xFF}
	foregroundColor  = color.RGBA{0xEC, 0xEF, 0xF4, 0xFF}
	dimColor         = color.RGBA{0x81, 0xA1, 0xC1, 0xFF}
	accentColor      = color.RGBA{0x88, 0xC0, 0xD0, 0xFF}
)

// Declarations holds the effective property values of one selector.
type Declarations map[string]string

// Stylesheet is a parsed set of rules keyed by selector. Later rules and
// later declarations override earlier ones.
type Stylesheet struct {
	rules map[string]Declarations
}

// ParseStylesheet parses CSS text. Only qualified rules are kept.
func ParseStylesheet(text string) (*Stylesheet, error) {
	sheet := &Stylesheet{rules: map[string]Declarations{}}
	if strings.TrimSpace(text) == "" {
		return sheet, nil
	}
	parsed, err := parser.Parse(text)
	if err != nil {
		return sheet, fmt.Errorf("parse stylesheet: %w", err)
	}
	for _, rule := range parsed.Rules {
		if rule.Kind != css.QualifiedRule {
			continue
		}
		for _, sel := range rule.Selectors {
			sel = strings.TrimSpace(sel)
			decls, ok := sheet.rules[sel]
			if !ok {
				decls = Declarations{}
				sheet.rules[sel] = decls
			}
			for _, d := range rule.Declarations {
				decls[strings.ToLower(d.Property)] = strings.TrimSpace(d.Value)
			}
		}
	}
	return sheet, nil
}

// Selectors returns the number of distinct selectors.
func (s *Stylesheet) Selectors() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// Lookup returns the declarations for selector, or nil.
func (s *Stylesheet) Lookup(selector string) Declarations {
	if s == nil {
		return nil
	}
	return s.rules[selector]
}

// ForName returns the declarations matching a widget tagged with name.
func (s *Stylesheet) ForName(name string) Declarations {
	if name == "" {
		return nil
	}
	return s.Lookup("#" + name)
}

// Color resolves prop as a CSS color.
func (d Declarations) Color(prop string) (color.RGBA, bool) {
	v, ok := d[prop]
	if !ok {
		return color.RGBA{}, false
	}
	return ParseCSSColor(v)
}

// Length resolves prop as a pixel length, taking the first value of a
// shorthand such as "4px 8px".
func (d Declarations) Length(prop string, def float64) float64 {
	v, ok := d[prop]
	if !ok {
		return def
	}
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return def
	}
	px, ok := parseLength(fields[0])
	if !ok {
		return def
	}
	return px
}

// Bold reports whether font-weight asks for a bold face.
func (d Declarations) Bold() bool {
	v := strings.ToLower(d["font-weight"])
	switch v {
	case "bold", "bolder":
		return true
	}
	n, err := strconv.Atoi(v)
	return err == nil && n >= 600
}

const emPixels = glyphHeight

func parseLength(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	unit := 1.0
	switch {
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "pt"):
		s = strings.TrimSuffix(s, "pt")
		unit = 4.0 / 3.0
	case strings.HasSuffix(s, "rem"):
		s = strings.TrimSuffix(s, "rem")
		unit = emPixels
	case strings.HasSuffix(s, "em"):
		s = strings.TrimSuffix(s, "em")
		unit = emPixels
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f * unit, true
}

// ParseCSSColor accepts "transparent", a named color or #rgb / #rrggbb.
func ParseCSSColor(s string) (color.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "transparent" {
		return color.RGBA{}, true
	}
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return color.RGBA{}, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, true
}

// look is the resolved appearance of one widget.
type look struct {
	background    color.RGBA
	hasBackground bool
	foreground    color.RGBA
	border        color.RGBA
	borderWidth   float64
	radius        float64
	padding       float64
	margin        float64
	fontSize      float64
	bold          bool
}

func resolveLook(d Declarations) look {
	lk := look{
		foreground: foregroundColor,
		border:     raisedColor,
		fontSize:   glyphHeight,
	}
	if c, ok := d.Color("background"); ok {
		lk.background, lk.hasBackground = c, true
	} else if c, ok := d.Color("background-color"); ok {
		lk.background, lk.hasBackground = c, true
	}
	if c, ok := d.Color("color"); ok {
		lk.foreground = c
	}
	if c, ok := d.Color("border-color"); ok {
		lk.border = c
	}
	lk.borderWidth = d.Length("border-width", 0)
	lk.radius = d.Length("border-radius", 0)
	lk.padding = d.Length("padding", 0)
	lk.margin = d.Length("margin", 0)
	if fs := d.Length("font-size", 0); fs > 0 {
		lk.fontSize = fs
	}
	lk.bold = d.Bold()
	return lk
}

func (lk look) text() textStyle {
	return textStyle{color: lk.foreground, size: lk.fontSize, bold: lk.bold}
}
