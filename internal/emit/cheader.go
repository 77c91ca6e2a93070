package emit

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/lilweege/fontsheet"
)

// Identifier turns s into a valid C identifier. Accents are stripped, other
// characters outside [A-Za-z0-9_] become underscores.
func Identifier(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(t, s); err == nil {
		s = stripped
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	id := b.String()
	if id == "" {
		return "font"
	}
	if id[0] >= '0' && id[0] <= '9' {
		id = "_" + id
	}
	return id
}

// WriteCHeader prints the sheet as C declarations prefixed with name: the
// cell and bitmap dimensions and a byte array holding the red channel of
// every pixel in row-major order, wrapped every CharHeight values. A comment
// banner shows name drawn with the sheet itself.
func WriteCHeader(w io.Writer, name string, s *fontsheet.Sheet) error {
	bw := bufio.NewWriter(w)

	sd := &fontsheet.StringDrawable{}
	s.DrawString(sd, 0, 0, name, nil)
	bw.WriteString(sd.PrefixString("// "))
	bw.WriteByte('\n')

	img := s.Image()
	width, height := s.Width(), s.Height()
	fmt.Fprintf(bw, "const int %sCharWidth = %d;\n", name, s.CellWidth())
	fmt.Fprintf(bw, "const int %sCharHeight = %d;\n", name, height)
	fmt.Fprintf(bw, "const int %sBitmapWidth = %d;\n", name, width)
	fmt.Fprintf(bw, "const int %sBitmapHeight = %d;\n", name, height)
	fmt.Fprintf(bw, "const unsigned char %sBitmap[%d] = {\n", name, width*height)
	n := 0
	for y := 0; y < height; y++ {
		row := img.Pix[img.PixOffset(0, y):]
		for x := 0; x < width; x++ {
			switch {
			case n == 0:
				bw.WriteByte('\t')
			case n%height == 0:
				bw.WriteString("\n\t")
			default:
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "0x%02x,", row[4*x])
			n++
		}
	}
	bw.WriteByte('\n')
	bw.WriteString("};\n")
	return bw.Flush()
}
