package shape

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Transparent is the literal that disables a paint.
const Transparent = "transparent"

// RGB is a solid color with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// ParseColor parses "#RRGGBB" (hex digits in either case). It returns
// false for "transparent" and for anything malformed, meaning no paint.
func ParseColor(s string) (RGB, bool) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, false
	}
	for i := 1; i < len(s); i++ {
		if !isHex(s[i]) {
			return RGB{}, false
		}
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: c.R, G: c.G, B: c.B}, true
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
