package core

// Color is a cell foreground color. The zero value is the terminal default.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ansi256 holds the 256-color code for each color; empty means default.
var ansi256 = [...]string{
	ColorDefault:       "",
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "240",
}

// ANSI returns the 256-color code for c, or "" for the default color and
// unknown values.
func (c Color) ANSI() string {
	if int(c) >= len(ansi256) {
		return ""
	}
	return ansi256[c]
}

// Colors returns every non-default color.
func Colors() []Color {
	out := make([]Color, 0, len(ansi256)-1)
	for c := ColorDefault + 1; int(c) < len(ansi256); c++ {
		out = append(out, c)
	}
	return out
}
