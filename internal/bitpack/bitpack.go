// Package bitpack packs glyph cells into bytes for embedding in firmware.
//
// Each byte holds eight horizontally adjacent pixels with the leftmost pixel
// in the most significant bit. Rows are stored in consecutive bytes, so a
// glyph of width W and height H becomes H*(W/8) bytes:
//
//	         7   0 7   0
//	         |   | |   |
//	0    XXXX      XXXX    == 0b11110000, 0b00001111
//	1    X  X      X  X    == 0b10010000, 0b00001001
//
// Cells are not padded: pixels past the last multiple of eight are dropped.
package bitpack

// Bitmap is a strip of fixed-width glyph cells, as implemented by
// *fontsheet.Sheet.
type Bitmap interface {
	IsSet(x, y int) bool
	CellWidth() int
	Height() int
}

// BytesPerRow returns the number of bytes one row of a cell packs into.
func BytesPerRow(cellWidth int) int {
	return cellWidth / 8
}

// Byte packs the eight pixels starting at x,y.
func Byte(b Bitmap, x, y int) byte {
	var v byte
	for k := 0; k < 8; k++ {
		v <<= 1
		if b.IsSet(x+k, y) {
			v |= 1
		}
	}
	return v
}

// Glyph packs cell i of b into one byte slice per row.
func Glyph(b Bitmap, i int) [][]byte {
	cw := b.CellWidth()
	n := BytesPerRow(cw)
	rows := make([][]byte, b.Height())
	for y := range rows {
		row := make([]byte, n)
		for j := range row {
			row[j] = Byte(b, cw*i+8*j, y)
		}
		rows[y] = row
	}
	return rows
}

// Size returns the number of bytes Glyph produces per cell.
func Size(b Bitmap) int {
	return b.Height() * BytesPerRow(b.CellWidth())
}
