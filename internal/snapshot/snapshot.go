// Package snapshot renders panels and single shapes to encoded images
// using the headless toolkit.
package snapshot

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log/slog"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/mj1618/dashpanel/internal/draw/ggdraw"
	"github.com/mj1618/dashpanel/internal/draw/rasterdraw"
	"github.com/mj1618/dashpanel/internal/host"
	"github.com/mj1618/dashpanel/internal/host/headless"
	"github.com/mj1618/dashpanel/internal/model"
	"github.com/mj1618/dashpanel/internal/panel"
	"github.com/mj1618/dashpanel/internal/props"
	"github.com/mj1618/dashpanel/internal/shape"
)

// Image formats accepted by Encode.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpg"
)

// DefaultQuality is the JPEG quality used when none is given.
const DefaultQuality = 80

// Options configures a panel snapshot.
type Options struct {
	Rasterizer headless.Rasterizer
	Logger     *slog.Logger

	// Width and Height override the document window size when positive.
	Width, Height int

	// Scale resizes the output; values <= 0 mean 1.
	Scale float64

	// Annotate draws element boxes with the given labels.
	Annotate LabelMode
}

// Result is a rendered panel.
type Result struct {
	Report *panel.Report
	Image  image.Image
}

// Layout assembles doc on a fresh headless toolkit and rasterizes it.
func Layout(doc *model.LayoutSpec, opts Options) (*Result, error) {
	tk := headless.New(headless.Options{Rasterizer: opts.Rasterizer})
	rep, err := panel.Build(doc, tk, panel.Options{
		Logger: opts.Logger,
		Width:  opts.Width,
		Height: opts.Height,
	})
	if err != nil {
		return nil, err
	}
	r, ok := rep.Surface.(host.Renderer)
	if !ok {
		return nil, fmt.Errorf("window %T cannot be rasterized", rep.Surface)
	}
	rgba, err := r.Render()
	if err != nil {
		return nil, fmt.Errorf("render panel: %w", err)
	}
	if opts.Annotate != LabelNone {
		Annotate(rgba, rep.Placed, opts.Annotate)
	}
	return &Result{Report: rep, Image: Scale(rgba, opts.Scale)}, nil
}

// Shape draws one shape of kind on a transparent w x h canvas.
func Shape(kind model.Kind, w, h int, bag props.Bag, rasterizer headless.Rasterizer) (image.Image, error) {
	if !kind.IsShape() {
		return nil, fmt.Errorf("%q is not a shape type", kind)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid shape size %dx%d", w, h)
	}
	switch rasterizer {
	case headless.RasterX:
		c := rasterdraw.New(w, h)
		shape.Draw(c, kind, w, h, bag)
		return c.Image(), nil
	default:
		c := ggdraw.New(w, h)
		shape.Draw(c, kind, w, h, bag)
		if err := c.Err(); err != nil {
			return nil, fmt.Errorf("draw %s: %w", kind, err)
		}
		return c.Image(), nil
	}
}

// Scale resizes img by factor. Factors <= 0 or equal to 1 return img.
func Scale(img image.Image, factor float64) image.Image {
	if factor <= 0 || factor == 1 {
		return img
	}
	b := img.Bounds()
	w := int(float64(b.Dx()) * factor)
	h := int(float64(b.Dy()) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// ParseFormat normalizes an image format flag.
func ParseFormat(s string) (string, error) {
	switch strings.ToLower(s) {
	case "", "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	}
	return "", fmt.Errorf("unsupported image format: %s (use png or jpg)", s)
}

// MIMEType returns the media type for an image format.
func MIMEType(format string) string {
	if format == FormatJPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// Encode serializes img as png or jpg.
func Encode(img image.Image, format string, quality int) ([]byte, error) {
	format, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	buf := &bytes.Buffer{}
	switch format {
	case FormatJPEG:
		err = jpeg.Encode(buf, img, &jpeg.Options{Quality: quality})
	default:
		err = png.Encode(buf, img)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
