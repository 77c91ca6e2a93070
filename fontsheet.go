// Package fontsheet holds monospace glyph sheets rasterised from TrueType and
// OpenType fonts. A sheet is a single horizontal strip with one fixed-width
// cell for every printable ASCII character, in code point order, which makes
// it easy to embed in firmware or to blit from a texture.
//
// See the fontsheet command for creating sheets from font files.
package fontsheet

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
	"unicode/utf8"
)

// The printable ASCII range covered by every sheet.
const (
	First = ' '
	Last  = '~'

	NumChars = Last - First + 1
)

// Charset lists the characters of a sheet in cell order.
var Charset = charset()

func charset() string {
	var b strings.Builder
	for c := First; c <= Last; c++ {
		b.WriteRune(c)
	}
	return b.String()
}

// Index returns the cell index of r, or false if r has no cell.
func Index(r rune) (int, bool) {
	if r < First || r > Last {
		return 0, false
	}
	return int(r - First), true
}

// Drawable is an interface which supports setting an x,y coordinate to a color.
type Drawable interface {
	Set(x, y int, c color.Color)
}

// Sheet is a glyph strip together with the width of its cells.
type Sheet struct {
	img       *image.RGBA
	cellWidth int
}

var errNoCells = errors.New("fontsheet: cell width must be positive")

// New wraps img as a sheet. The image must start at the origin and be exactly
// NumChars cells wide.
func New(img *image.RGBA, cellWidth int) (*Sheet, error) {
	if cellWidth <= 0 {
		return nil, errNoCells
	}
	if img.Rect.Min != (image.Point{}) {
		return nil, fmt.Errorf("fontsheet: image origin %v is not (0,0)", img.Rect.Min)
	}
	if w := img.Rect.Dx(); w != NumChars*cellWidth {
		return nil, fmt.Errorf("fontsheet: image width %d does not hold %d cells of %d pixels",
			w, NumChars, cellWidth)
	}
	return &Sheet{img: img, cellWidth: cellWidth}, nil
}

// Image returns the underlying canvas.
func (s *Sheet) Image() *image.RGBA { return s.img }

// CellWidth returns the width of a single character cell in pixels.
func (s *Sheet) CellWidth() int { return s.cellWidth }

// Width returns the width of the whole strip.
func (s *Sheet) Width() int { return s.img.Rect.Dx() }

// Height returns the height of the strip, which is also the glyph height.
func (s *Sheet) Height() int { return s.img.Rect.Dy() }

// Glyph returns the cell with index i as a sub-image sharing pixels with the
// sheet.
func (s *Sheet) Glyph(i int) *image.RGBA {
	r := image.Rect(i*s.cellWidth, 0, (i+1)*s.cellWidth, s.Height())
	return s.img.SubImage(r).(*image.RGBA)
}

// IsSet reports whether the pixel at x,y counts as ink. Only the red channel
// is tested, which matches the white glyphs the rasteriser draws.
func (s *Sheet) IsSet(x, y int) bool {
	if !(image.Point{x, y}.In(s.img.Rect)) {
		return false
	}
	return s.img.Pix[s.img.PixOffset(x, y)] != 0
}

// DrawRune copies the ink pixels of c onto dr in the provided color. The x,y
// position is the top-left corner of the cell. Pixels outside the glyph are
// left as-is. If c has no cell, DrawRune returns false and draws nothing.
func (s *Sheet) DrawRune(dr Drawable, x, y int, c rune, clr color.Color) bool {
	idx, ok := Index(c)
	if !ok {
		return false
	}
	x0 := idx * s.cellWidth
	for yy := 0; yy < s.Height(); yy++ {
		for xx := 0; xx < s.cellWidth; xx++ {
			if s.IsSet(x0+xx, yy) {
				dr.Set(x+xx, y+yy, clr)
			}
		}
	}
	return true
}

// DrawString draws text starting with its top-left corner at x,y, advancing
// one cell per rune.
func (s *Sheet) DrawString(dr Drawable, x, y int, text string, clr color.Color) {
	for _, c := range text {
		s.DrawRune(dr, x, y, c, clr)
		x += s.cellWidth
	}
}

// MeasureString returns the width in pixels DrawString uses for text.
func (s *Sheet) MeasureString(text string) int {
	return utf8.RuneCountInString(text) * s.cellWidth
}

///////

// StringDrawable implements Drawable so you can do FIGlet-inspired renderings
// in plain text.
type StringDrawable struct {
	lines [][]byte
}

func (s *StringDrawable) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 {
		return
	}
	for len(s.lines) <= y {
		s.lines = append(s.lines, nil)
	}

	if len(s.lines[y]) <= x {
		nb := make([]byte, 1+(x-len(s.lines[y])))
		s.lines[y] = append(s.lines[y], nb...)
	}

	s.lines[y][x] = 'X'
}

// String returns the current string representation of this Drawable.
func (s *StringDrawable) String() string {
	return s.PrefixString("")
}

// PrefixString returns the current string representation of this Drawable with a
// user-provided prefix before each line. Useful for adding output in code comments.
func (s *StringDrawable) PrefixString(p string) string {
	var b strings.Builder
	for _, line := range s.lines {
		b.WriteString(p)
		b.WriteString(strings.TrimRight(strings.ReplaceAll(string(line), "\x00", " "), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
