package emit

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lilweege/fontsheet"
)

// DefaultColumns is the line width WriteDump uses when none is known.
const DefaultColumns = 80

// WriteDump prints a text rendering of every glyph, each row shown as
//
//	A  [ XX ]
//
// Glyphs are placed side by side, as many as fit in columns characters, with
// a blank line between groups.
func WriteDump(w io.Writer, s *fontsheet.Sheet, columns int) error {
	if columns <= 0 {
		columns = DefaultColumns
	}
	cw := s.CellWidth()
	block := cw + 5 // "c  [" + cells + "]"
	perLine := max(1, (columns+1)/(block+1))

	bw := bufio.NewWriter(w)
	for first := 0; first < fontsheet.NumChars; first += perLine {
		last := min(first+perLine, fontsheet.NumChars)
		if first > 0 {
			bw.WriteByte('\n')
		}
		for y := 0; y < s.Height(); y++ {
			for i := first; i < last; i++ {
				if i > first {
					bw.WriteByte(' ')
				}
				fmt.Fprintf(bw, "%c  [%s]", fontsheet.Charset[i], glyphRow(s, i, y))
			}
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

func glyphRow(s *fontsheet.Sheet, i, y int) string {
	cw := s.CellWidth()
	var b strings.Builder
	b.Grow(cw)
	for x := 0; x < cw; x++ {
		if s.IsSet(i*cw+x, y) {
			b.WriteByte('X')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
