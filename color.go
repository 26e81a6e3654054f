// Package termgrid provides the in-memory character grid at the heart of a
// terminal emulator: a fixed-size screen of styled cells, a bounded
// scrollback history, and a cursor.
//
// This package contains:
//   - Color types and the 16-color ANSI palette
//   - Text attributes (colors plus style flags)
//   - Cell representation, including wide-character cells
//   - Line, a fixed-width row of cells
//   - Buffer, the screen/scrollback grid with cursor and editing operations
//
// Renderer frontends (cli, tcellui) draw the grid; they never mutate it
// except through the Buffer API.
package termgrid

// AnsiColor is one of the 16 standard ANSI colors, in ANSI order
// (escape-code compatible: index 1 is red, not blue).
type AnsiColor uint8

const (
	Black AnsiColor = iota // ANSI 0
	Red                    // ANSI 1
	Green                  // ANSI 2
	Yellow                 // ANSI 3
	Blue                   // ANSI 4
	Magenta                // ANSI 5
	Cyan                   // ANSI 6
	White                  // ANSI 7
	BrightBlack            // ANSI 8 (dark gray)
	BrightRed              // ANSI 9
	BrightGreen            // ANSI 10
	BrightYellow           // ANSI 11
	BrightBlue             // ANSI 12
	BrightMagenta          // ANSI 13
	BrightCyan             // ANSI 14
	BrightWhite            // ANSI 15
)

var ansiColorNames = []string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

func (a AnsiColor) String() string {
	if int(a) < len(ansiColorNames) {
		return ansiColorNames[a]
	}
	return "invalid"
}

// Color is either the terminal's default foreground/background color
// (SGR 39/49) or one of the 16 ANSI colors. The zero value is the default
// color. Colors are compared with ==.
type Color struct {
	ansi    AnsiColor
	defined bool
}

// DefaultColor returns the terminal-default color.
func DefaultColor() Color {
	return Color{}
}

// ColorOf returns the Color for a standard ANSI color.
func ColorOf(a AnsiColor) Color {
	return Color{ansi: a, defined: true}
}

// IsDefault returns true if this is the terminal-default color.
func (c Color) IsDefault() bool {
	return !c.defined
}

// Ansi returns the underlying ANSI color. ok is false for the default color.
func (c Color) Ansi() (a AnsiColor, ok bool) {
	return c.ansi, c.defined
}

func (c Color) String() string {
	if !c.defined {
		return "default"
	}
	return c.ansi.String()
}

// ToSGRCode returns the SGR color code for this color (foreground if isFg).
// Used by renderer frontends; not part of the grid model itself.
func (c Color) ToSGRCode(isFg bool) string {
	if !c.defined {
		if isFg {
			return "39"
		}
		return "49"
	}
	idx := int(c.ansi)
	if idx < 8 {
		// Normal colors: 30-37 or 40-47
		if isFg {
			return itoa(30 + idx)
		}
		return itoa(40 + idx)
	}
	// Bright colors: 90-97 or 100-107
	if isFg {
		return itoa(90 + idx - 8)
	}
	return itoa(100 + idx - 8)
}

// itoa is a simple int to string conversion
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	if i < 0 {
		return "-" + itoa(-i)
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	return string(buf[pos:])
}

// RGB holds just the red, green, blue components (used by renderers)
type RGB struct {
	R, G, B uint8
}

// Standard ANSI 16-color palette RGB values (in ANSI order)
var ANSIColorsRGB = []RGB{
	{R: 0, G: 0, B: 0},       // ANSI 0: Black
	{R: 170, G: 0, B: 0},     // ANSI 1: Red
	{R: 0, G: 170, B: 0},     // ANSI 2: Green
	{R: 170, G: 85, B: 0},    // ANSI 3: Yellow/Brown
	{R: 0, G: 0, B: 170},     // ANSI 4: Blue
	{R: 170, G: 0, B: 170},   // ANSI 5: Magenta/Purple
	{R: 0, G: 170, B: 170},   // ANSI 6: Cyan
	{R: 170, G: 170, B: 170}, // ANSI 7: White/Silver
	// Bright variants (8-15)
	{R: 85, G: 85, B: 85},    // ANSI 8: Bright Black (Dark Gray)
	{R: 255, G: 85, B: 85},   // ANSI 9: Bright Red
	{R: 85, G: 255, B: 85},   // ANSI 10: Bright Green
	{R: 255, G: 255, B: 85},  // ANSI 11: Bright Yellow
	{R: 85, G: 85, B: 255},   // ANSI 12: Bright Blue
	{R: 255, G: 85, B: 255},  // ANSI 13: Bright Magenta/Pink
	{R: 85, G: 255, B: 255},  // ANSI 14: Bright Cyan
	{R: 255, G: 255, B: 255}, // ANSI 15: White
}

// ToRGB resolves the color against the standard palette. Default colors
// resolve to light gray on black.
func (c Color) ToRGB(isFg bool) RGB {
	if !c.defined {
		if isFg {
			return RGB{R: 212, G: 212, B: 212}
		}
		return RGB{R: 30, G: 30, B: 30}
	}
	return ANSIColorsRGB[c.ansi]
}
