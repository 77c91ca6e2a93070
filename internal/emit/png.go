// Package emit writes glyph sheets in the formats the fontsheet tool
// supports: PNG images, packed bit literals, C headers and text previews.
package emit

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/lilweege/fontsheet"
)

// Basename returns the file name of fontPath without its four character
// extension, e.g. "fonts/Mono.ttf" becomes "Mono".
func Basename(fontPath string) string {
	base := filepath.Base(fontPath)
	if len(base) <= 4 {
		return base
	}
	return base[:len(base)-4]
}

// WritePNG encodes the sheet as an RGBA PNG.
func WritePNG(w io.Writer, s *fontsheet.Sheet) error {
	return png.Encode(w, s.Image())
}

// SavePNG writes the sheet to <dir>/<Basename(fontPath)>.png, replacing any
// existing file, and returns the path written.
func SavePNG(dir, fontPath string, s *fontsheet.Sheet) (string, error) {
	name := filepath.Join(dir, Basename(fontPath)+".png")
	f, err := os.Create(name)
	if err != nil {
		return "", err
	}
	if err := WritePNG(f, s); err != nil {
		f.Close()
		return "", fmt.Errorf("%s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return name, nil
}
