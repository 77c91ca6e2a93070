package emit

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lilweege/fontsheet"
	"github.com/lilweege/fontsheet/internal/bitpack"
)

// WriteBits prints every glyph of the sheet as packed bytes, one binary
// literal such as "0b00111100," per line, row by row. A blank line follows
// each glyph.
func WriteBits(w io.Writer, s *fontsheet.Sheet) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < fontsheet.NumChars; i++ {
		for _, row := range bitpack.Glyph(s, i) {
			for _, b := range row {
				fmt.Fprintf(bw, "0b%08b,\n", b)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
