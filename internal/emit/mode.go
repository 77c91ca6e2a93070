package emit

import "fmt"

// Mode selects what is written to standard output next to the PNG sheet.
type Mode int

// Output modes.
const (
	PNG     Mode = iota // PNG sheet only
	Bits                // packed bit literals, one byte per line
	CHeader             // C header with the sheet as a byte array
	Dump                // text preview of every glyph
)

var modeNames = [...]string{
	PNG:     "png",
	Bits:    "bits",
	CHeader: "c",
	Dump:    "dump",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode returns the mode with the given name.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if s == name {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("unknown output mode %q", s)
}

// Set implements flag.Value.
func (m *Mode) Set(s string) error {
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
