// Package config turns the command line of the fontsheet tool into a
// validated Config.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lilweege/fontsheet/internal/emit"
)

// Config is the validated input of a single conversion run.
type Config struct {
	FontPath string
	Size     int

	Mode    emit.Mode
	OutDir  string // directory receiving the PNG sheet
	Name    string // C identifier prefix, derived from FontPath when empty
	Verbose bool
}

// UsageError reports a malformed command line.
type UsageError struct {
	Program string
	Err     error // flag parsing error, if any
}

func (err *UsageError) Error() string {
	return fmt.Sprintf("Usage: %s <path/to/font.ttf> <size>", err.Program)
}

func (err *UsageError) Unwrap() error {
	return err.Err
}

// NotFoundError reports a font path that is not an existing regular file.
type NotFoundError struct {
	Path string
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("File not found: '%s' does not exist", err.Path)
}

// FiletypeError reports a font path without a .ttf or .otf suffix.
type FiletypeError struct {
	Path string
}

func (err *FiletypeError) Error() string {
	return fmt.Sprintf("Incorrect filetype: '%s' must end with .ttf or .otf", err.Path)
}

// SizeError reports a size argument that is not a positive integer.
type SizeError struct {
	Arg string
}

func (err *SizeError) Error() string {
	return fmt.Sprintf("Could not interpret '%s' as a positive integer", err.Arg)
}

// Parse validates args, the command line without the program name.
// Flags come first, followed by exactly two positional arguments: the font
// file and the size in pixels.
func Parse(program string, args []string) (*Config, error) {
	cfg := &Config{Mode: emit.PNG}

	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(&cfg.Mode, "mode", "output `mode`: png, bits, c or dump")
	fs.StringVar(&cfg.OutDir, "o", ".", "`directory` for the PNG sheet")
	fs.StringVar(&cfg.Name, "name", "", "C identifier prefix for -mode c")
	fs.BoolVar(&cfg.Verbose, "v", false, "log progress to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{Program: program, Err: err}
	}
	if fs.NArg() != 2 {
		return nil, &UsageError{Program: program}
	}

	cfg.FontPath = fs.Arg(0)
	info, err := os.Stat(cfg.FontPath)
	if err != nil || !info.Mode().IsRegular() {
		return nil, &NotFoundError{Path: cfg.FontPath}
	}
	if !strings.HasSuffix(cfg.FontPath, ".ttf") && !strings.HasSuffix(cfg.FontPath, ".otf") {
		return nil, &FiletypeError{Path: cfg.FontPath}
	}

	size, err := strconv.Atoi(fs.Arg(1))
	if err != nil || size <= 0 {
		return nil, &SizeError{Arg: fs.Arg(1)}
	}
	cfg.Size = size

	return cfg, nil
}

// ExitCode maps the outcome of a run to a process exit status. Every failure,
// whether a validation error or a conversion error, exits with 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
