package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"

	"github.com/lilweege/fontsheet"
)

func monoFace(t *testing.T, size int) font.Face {
	t.Helper()
	otf, err := opentype.Parse(gomono.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { face.Close() })
	return face
}

func TestCellWidth(t *testing.T) {
	face := monoFace(t, 16)
	cw := CellWidth(face, fontsheet.Charset)

	adv, ok := face.GlyphAdvance('M')
	if !ok {
		t.Fatal("no advance for M")
	}
	if cw < adv.Ceil() {
		t.Errorf("cell width %d narrower than the advance %d", cw, adv.Ceil())
	}
	widest := 0
	for _, r := range fontsheet.Charset {
		widest = max(widest, GlyphWidth(face, r))
	}
	if cw != widest {
		t.Errorf("cell width %d, widest glyph %d", cw, widest)
	}

	if CellWidth(face, "") != 0 {
		t.Error("empty character set has a width")
	}
}

func TestBBox(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if _, ok := BBox(img); ok {
		t.Fatal("blank image has a bounding box")
	}

	img.SetRGBA(2, 3, color.RGBA{0, 0, 0, 1})
	img.SetRGBA(6, 5, color.RGBA{0xff, 0xff, 0xff, 0xff})
	img.SetRGBA(8, 8, color.RGBA{}) // transparent pixels do not count
	bb, ok := BBox(img)
	if !ok {
		t.Fatal("no bounding box")
	}
	if want := image.Rect(2, 3, 7, 6); bb != want {
		t.Errorf("BBox = %v, want %v", bb, want)
	}
}

func TestCrop(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 12, 20))
	img.Set(4, 2, color.White)
	img.Set(5, 6, color.White)

	got, err := Crop(img)
	if err != nil {
		t.Fatal(err)
	}
	// only the bottom is trimmed
	if want := image.Rect(0, 0, 12, 7); got.Rect != want {
		t.Errorf("cropped to %v, want %v", got.Rect, want)
	}
	if got.RGBAAt(5, 6) != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Error("pixels not copied")
	}

	if _, err := Crop(image.NewRGBA(image.Rect(0, 0, 4, 4))); !errors.Is(err, ErrBlank) {
		t.Errorf("blank canvas: got %v, want ErrBlank", err)
	}
}

func TestRenderCentres(t *testing.T) {
	face := monoFace(t, 16)
	cw := CellWidth(face, fontsheet.Charset)
	img := Render(face, fontsheet.Charset, cw, 16)

	if want := image.Rect(0, 0, 95*cw, 32); img.Rect != want {
		t.Fatalf("canvas is %v, want %v", img.Rect, want)
	}

	idx, _ := fontsheet.Index('|')
	cell := img.SubImage(image.Rect(idx*cw, 0, (idx+1)*cw, 32)).(*image.RGBA)
	bb, ok := BBox(cell)
	if !ok {
		t.Fatal("no ink for '|'")
	}
	mid := (bb.Min.X + bb.Max.X) - (2*idx*cw + cw)
	if mid < -3 || mid > 3 {
		t.Errorf("'|' drawn at %v, not centred in cell %d..%d", bb, idx*cw, (idx+1)*cw)
	}
	if bb.Min.Y > 8 {
		t.Errorf("'|' starts at row %d, not near the top", bb.Min.Y)
	}

	space := img.SubImage(image.Rect(0, 0, cw, 32)).(*image.RGBA)
	if _, ok := BBox(space); ok {
		t.Error("space has visible pixels")
	}
}

func TestBuild(t *testing.T) {
	face := monoFace(t, 16)
	s, err := Build(face, 16)
	if err != nil {
		t.Fatal(err)
	}
	if s.Width() != 95*CellWidth(face, fontsheet.Charset) {
		t.Errorf("sheet width %d for cell width %d", s.Width(), s.CellWidth())
	}
	if h := s.Height(); h <= 0 || h > 32 {
		t.Errorf("sheet height %d outside (0, 32]", h)
	}

	again, err := Build(face, 16)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(s.Image().Pix, again.Image().Pix) {
		t.Error("rasterising twice gave different pixels")
	}
}
