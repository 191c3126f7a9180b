package headless

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// fitRect returns the largest rectangle with src's aspect ratio centered
// in r.
func fitRect(src image.Rectangle, r image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	if sw <= 0 || sh <= 0 || r.Empty() {
		return image.Rectangle{}
	}
	w, h := r.Dx(), r.Dy()
	if w*sh > h*sw {
		w = h * sw / sh
	} else {
		h = w * sh / sw
	}
	x := r.Min.X + (r.Dx()-w)/2
	y := r.Min.Y + (r.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

func drawFitted(dst *image.RGBA, src image.Image, r image.Rectangle) {
	target := fitRect(src.Bounds(), r)
	if target.Empty() {
		return
	}
	xdraw.ApproxBiLinear.Scale(dst, target, src, src.Bounds(), xdraw.Over, nil)
}
