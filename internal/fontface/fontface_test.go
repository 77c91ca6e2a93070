package fontface

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lilweege/fontsheet"
)

func TestOpen(t *testing.T) {
	p := filepath.Join(t.TempDir(), "gomono.ttf")
	if err := os.WriteFile(p, gomono.TTF, 0644); err != nil {
		t.Fatal(err)
	}

	f, err := Open(p, 16)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if f.Size() != 16 {
		t.Errorf("unexpected size %d", f.Size())
	}
	m := f.Metrics()
	if m.Ascent <= 0 || m.Height <= 0 {
		t.Errorf("unexpected metrics %+v", m)
	}

	info, ok := f.Info()
	if !ok {
		t.Fatal("metadata not available")
	}
	if info.Family != "Go Mono" {
		t.Errorf("unexpected family %q", info.Family)
	}
	if !info.FixedPitch {
		t.Error("Go Mono not reported as fixed pitch")
	}
	if info.NumGlyphs == 0 {
		t.Error("no glyphs reported")
	}

	if missing := f.Missing(fontsheet.Charset); len(missing) != 0 {
		t.Errorf("Go Mono lacks %q", string(missing))
	}
	if missing := f.Missing("A一"); len(missing) != 1 || missing[0] != '一' {
		t.Errorf("unexpected missing glyphs %q", string(missing))
	}
}

func TestProportional(t *testing.T) {
	f, err := Parse(goregular.TTF, 12)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	info, ok := f.Info()
	if !ok {
		t.Fatal("metadata not available")
	}
	if info.FixedPitch {
		t.Error("Go Regular reported as fixed pitch")
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("definitely not a font"), 12); err == nil {
		t.Error("garbage accepted as a font")
	}
	if _, err := Parse(gomono.TTF, 0); err == nil {
		t.Error("zero size accepted")
	}
	if _, err := Open(filepath.Join(t.TempDir(), "missing.ttf"), 12); err == nil {
		t.Error("missing file accepted")
	}
}
