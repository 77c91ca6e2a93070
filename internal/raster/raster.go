// Package raster draws a character set into a monospace glyph strip.
//
// Building a sheet takes three steps: CellWidth measures every character and
// picks the widest, Render draws each character centred in its own cell on a
// canvas twice as high as the font size, and Crop trims the empty rows at the
// bottom of the canvas.
package raster

import (
	"errors"
	"image"
	"unicode/utf8"

	"golang.org/x/exp/slices"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/lilweege/fontsheet"
)

// ErrBlank is returned when a canvas has no visible pixels.
var ErrBlank = errors.New("raster: no visible pixels were drawn")

// GlyphWidth returns the number of pixels r occupies when drawn with face,
// which is the larger of its advance and its ink extent.
func GlyphWidth(face font.Face, r rune) int {
	bounds, advance, ok := face.GlyphBounds(r)
	w := advance.Ceil()
	if ok {
		if ink := (bounds.Max.X - bounds.Min.X).Ceil(); ink > w {
			w = ink
		}
	}
	return w
}

// CellWidth returns the widest GlyphWidth over chars.
func CellWidth(face font.Face, chars string) int {
	if chars == "" {
		return 0
	}
	widths := make([]int, 0, len(chars))
	for _, r := range chars {
		widths = append(widths, GlyphWidth(face, r))
	}
	return slices.Max(widths)
}

// Render draws chars in opaque white onto a new transparent canvas with one
// cell of cellWidth pixels per character and a height of 2*size pixels.
// Each character's advance is centred in its cell and its ascender line is
// placed on the top row, so descenders fit below without clipping.
func Render(face font.Face, chars string, cellWidth, size int) *image.RGBA {
	n := utf8.RuneCountInString(chars)
	dst := image.NewRGBA(image.Rect(0, 0, n*cellWidth, 2*size))

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
	}
	ascent := face.Metrics().Ascent
	i := 0
	for _, r := range chars {
		centre := fixed.I(i*cellWidth) + fixed.I(cellWidth)/2
		advance, _ := face.GlyphAdvance(r)
		d.Dot = fixed.Point26_6{X: centre - advance/2, Y: ascent}
		d.DrawString(string(r))
		i++
	}
	return dst
}

// BBox returns the smallest rectangle containing every pixel of img with a
// non-zero alpha value. The second result is false if there is none.
func BBox(img *image.RGBA) (image.Rectangle, bool) {
	r := img.Rect
	bb := image.Rectangle{Min: r.Max, Max: r.Min}
	found := false
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := img.Pix[img.PixOffset(r.Min.X, y):]
		for x := 0; x < r.Dx(); x++ {
			if row[4*x+3] == 0 {
				continue
			}
			found = true
			px := r.Min.X + x
			bb.Min.X = min(bb.Min.X, px)
			bb.Min.Y = min(bb.Min.Y, y)
			bb.Max.X = max(bb.Max.X, px+1)
			bb.Max.Y = max(bb.Max.Y, y+1)
		}
	}
	if !found {
		return image.Rectangle{}, false
	}
	return bb, true
}

// Crop cuts img off below the lowest visible pixel. Width, left and top are
// kept. The result is a new image with its origin at (0,0).
func Crop(img *image.RGBA) (*image.RGBA, error) {
	bb, ok := BBox(img)
	if !ok {
		return nil, ErrBlank
	}
	src := img.Rect
	src.Max.Y = bb.Max.Y

	dst := image.NewRGBA(image.Rect(0, 0, src.Dx(), src.Dy()))
	draw.Copy(dst, image.Point{}, img, src, draw.Src, nil)
	return dst, nil
}

// Build rasterises the printable ASCII range with face, which must have been
// opened at size pixels, into a cropped sheet.
func Build(face font.Face, size int) (*fontsheet.Sheet, error) {
	cw := CellWidth(face, fontsheet.Charset)
	if cw <= 0 {
		return nil, ErrBlank
	}
	img, err := Crop(Render(face, fontsheet.Charset, cw, size))
	if err != nil {
		return nil, err
	}
	return fontsheet.New(img, cw)
}
