// Package fontface opens TrueType and OpenType fonts at a fixed pixel size.
//
// A Face bundles the rasterising face from golang.org/x/image with the font
// metadata read by seehuhn.de/go/sfnt. It owns both for the duration of a
// conversion and must be closed afterwards.
package fontface

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	xsfnt "golang.org/x/image/font/sfnt"
	"seehuhn.de/go/sfnt"
)

// Face is an open font at one size.
type Face struct {
	face font.Face
	otf  *opentype.Font
	info *sfnt.Font // nil if the metadata could not be read
	size int
}

// Info describes the font a Face was opened from.
type Info struct {
	Family         string
	PostScriptName string
	FixedPitch     bool
	NumGlyphs      int
}

// Open reads the font file at path and prepares it for rendering at size
// pixels per em.
func Open(path string, size int) (*Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse prepares the font in data for rendering at size pixels per em.
// Glyphs are rendered at 72 DPI without hinting, so one point is one pixel.
func Parse(data []byte, size int) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("fontface: invalid size %d", size)
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontface: %w", err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("fontface: %w", err)
	}

	// The metadata is informational only. Fonts the rasteriser accepts are
	// still usable when the stricter parser rejects them.
	info, _ := sfnt.Read(bytes.NewReader(data))

	return &Face{
		face: face,
		otf:  otf,
		info: info,
		size: size,
	}, nil
}

// Face returns the rasterising face.
func (f *Face) Face() font.Face { return f.face }

// Size returns the size in pixels the face was opened at.
func (f *Face) Size() int { return f.size }

// Metrics returns the scaled metrics of the face.
func (f *Face) Metrics() font.Metrics { return f.face.Metrics() }

// Info returns the font's names and pitch. The second result is false when
// the metadata could not be read.
func (f *Face) Info() (Info, bool) {
	if f.info == nil {
		return Info{NumGlyphs: f.otf.NumGlyphs()}, false
	}
	return Info{
		Family:         f.info.FamilyName,
		PostScriptName: f.info.PostScriptName(),
		FixedPitch:     f.info.IsFixedPitch(),
		NumGlyphs:      f.info.NumGlyphs(),
	}, true
}

// Missing returns the characters of chars which the font has no glyph for.
func (f *Face) Missing(chars string) []rune {
	var missing []rune
	if f.info != nil {
		if cmap, err := f.info.CMapTable.GetBest(); err == nil {
			for _, r := range chars {
				if cmap.Lookup(r) == 0 {
					missing = append(missing, r)
				}
			}
			return missing
		}
	}

	var buf xsfnt.Buffer
	for _, r := range chars {
		gid, err := f.otf.GlyphIndex(&buf, r)
		if err != nil || gid == 0 {
			missing = append(missing, r)
		}
	}
	return missing
}

// Close releases the face.
func (f *Face) Close() error {
	return f.face.Close()
}
