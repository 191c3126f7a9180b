package rlhost

import "image/color"

// copyPixels unpacks an RGBA pixel buffer with the given stride into dst,
// row by row.
func copyPixels(dst []color.RGBA, pix []uint8, stride, w, h int) {
	for y := 0; y < h; y++ {
		row := pix[y*stride:]
		for x := 0; x < w; x++ {
			i := x * 4
			dst[y*w+x] = color.RGBA{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}
		}
	}
}
