// Package palette defines the color palettes behind the built-in themes
// and converts hex colors to ANSI 256-color escape sequences.
package palette

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// SGR attribute prefixes shared by all palettes.
const (
	Bold      = "\x1b[1m"
	Faint     = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Reverse   = "\x1b[7m"
)

// Palette names the colors a theme assigns to the editor surfaces, as
// "#rrggbb" hex strings. An empty field means the terminal default.
type Palette struct {
	Prompt            string
	Hint              string
	Candidate         string
	SelectedCandidate string
	BracketMatch      string
}

// Fg returns the escape sequence selecting the 256-color entry closest
// to the given hex color. Empty or invalid input yields no sequence.
func Fg(hex string) string {
	if hex == "" {
		return ""
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("\x1b[38;5;%dm", nearestANSI256(c))
}

func nearestANSI256(c colorful.Color) int {
	best := 0
	bestDist := -1.0
	// Skip the first 16 entries: terminals remap them, so the same theme
	// would render differently per terminal.
	for i := 16; i < 256; i++ {
		d := c.DistanceLab(ansi256[i])
		if bestDist < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// ansi256 holds the xterm 256-color table. Entries 16..231 are the
// 6x6x6 color cube, 232..255 the grayscale ramp.
var ansi256 = func() [256]colorful.Color {
	var table [256]colorful.Color
	levels := [6]float64{0, 95, 135, 175, 215, 255}
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				i := 16 + 36*r + 6*g + b
				table[i] = colorful.Color{
					R: levels[r] / 255,
					G: levels[g] / 255,
					B: levels[b] / 255,
				}
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := float64(8+10*i) / 255
		table[232+i] = colorful.Color{R: v, G: v, B: v}
	}
	return table
}()

// PaletteDefault keeps close to the traditional readline look: plain
// candidates, a dim hint and a blue bracket match.
var PaletteDefault = Palette{
	Prompt:       "#5fd75f",
	Hint:         "#808080",
	BracketMatch: "#5f87ff",
}

var PaletteOneDark = Palette{
	Prompt:            "#98c379",
	Hint:              "#5c6370",
	Candidate:         "#abb2bf",
	SelectedCandidate: "#61afef",
	BracketMatch:      "#c678dd",
}

var PaletteSolarizedDark = Palette{
	Prompt:            "#859900",
	Hint:              "#586e75",
	Candidate:         "#839496",
	SelectedCandidate: "#268bd2",
	BracketMatch:      "#b58900",
}

var PaletteGruvbox = Palette{
	Prompt:            "#b8bb26",
	Hint:              "#928374",
	Candidate:         "#ebdbb2",
	SelectedCandidate: "#83a598",
	BracketMatch:      "#fe8019",
}

var PaletteNord = Palette{
	Prompt:            "#a3be8c",
	Hint:              "#4c566a",
	Candidate:         "#d8dee9",
	SelectedCandidate: "#88c0d0",
	BracketMatch:      "#ebcb8b",
}
