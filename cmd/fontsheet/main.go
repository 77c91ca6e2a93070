// fontsheet is a commandline tool for turning a TrueType or OpenType font into
// a monospace glyph sheet covering the printable ASCII range. Run:
//
//	./fontsheet MyFont.ttf 16
//
// to get MyFont.png in the current directory: a single strip with one cell per
// character from ' ' to '~', cropped below the lowest descender. Additional
// output goes to standard output depending on -mode:
//
//	-mode bits   every glyph row packed into bytes, printed as 0b literals
//	-mode c      a C header with the dimensions and the bitmap as a byte array
//	-mode dump   a text preview of every glyph
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/lilweege/fontsheet"
	"github.com/lilweege/fontsheet/internal/config"
	"github.com/lilweege/fontsheet/internal/emit"
	"github.com/lilweege/fontsheet/internal/fontface"
	"github.com/lilweege/fontsheet/internal/raster"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Println(err)
		os.Exit(config.ExitCode(err))
	}

	logger := log.New(os.Stderr, "fontsheet: ", 0)
	if err := run(cfg, os.Stdout, logger, terminalColumns()); err != nil {
		fmt.Println("fontsheet:", err)
		os.Exit(config.ExitCode(err))
	}
}

// terminalColumns returns the width of the terminal on stdout, if any.
func terminalColumns() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return emit.DefaultColumns
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return emit.DefaultColumns
	}
	return w
}

// run converts the font named by cfg, saves the PNG sheet and writes the
// mode-specific output to stdout. Warnings always go to logger, progress only
// with cfg.Verbose.
func run(cfg *config.Config, stdout io.Writer, logger *log.Logger, columns int) error {
	face, err := fontface.Open(cfg.FontPath, cfg.Size)
	if err != nil {
		return err
	}
	defer face.Close()

	if info, ok := face.Info(); ok {
		if cfg.Verbose {
			logger.Printf("%s: %s (%s), %d glyphs", cfg.FontPath, info.Family, info.PostScriptName, info.NumGlyphs)
		}
		if !info.FixedPitch {
			logger.Printf("warning: %s is not a fixed pitch font, narrow glyphs will be padded", cfg.FontPath)
		}
	}
	if missing := face.Missing(fontsheet.Charset); len(missing) > 0 {
		logger.Printf("warning: %s has no glyphs for %q", cfg.FontPath, string(missing))
	}

	sheet, err := raster.Build(face.Face(), cfg.Size)
	if err != nil {
		return err
	}

	name, err := emit.SavePNG(cfg.OutDir, cfg.FontPath, sheet)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logger.Printf("wrote %s: %dx%d, %d pixel cells", name, sheet.Width(), sheet.Height(), sheet.CellWidth())
	}

	switch cfg.Mode {
	case emit.Bits:
		return emit.WriteBits(stdout, sheet)
	case emit.CHeader:
		id := cfg.Name
		if id == "" {
			id = emit.Basename(cfg.FontPath)
		}
		return emit.WriteCHeader(stdout, emit.Identifier(id), sheet)
	case emit.Dump:
		return emit.WriteDump(stdout, sheet, columns)
	}
	return nil
}
