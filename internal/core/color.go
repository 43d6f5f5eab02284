package core

import "image/color"

// Color represents a foreground color for a screen cell.
// The value maps to an ANSI 256-color code in the terminal front end and to
// an RGBA value in the window front end.
type Color uint8

// Palette used by the game.
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
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
	ColorPink
	ColorSand
)

// ANSI returns the ANSI 256-color code for the color.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorBlue:
		return "4"
	case ColorMagenta:
		return "5"
	case ColorCyan:
		return "6"
	case ColorWhite:
		return "7"
	case ColorBrightRed:
		return "9"
	case ColorBrightGreen:
		return "10"
	case ColorBrightYellow:
		return "11"
	case ColorBrightWhite:
		return "15"
	case ColorOrange:
		return "208"
	case ColorGray:
		return "245"
	case ColorBrown:
		return "94"
	case ColorPink:
		return "204"
	case ColorSand:
		return "215"
	default:
		return ""
	}
}

// RGBA returns the color as an RGBA value for pixel renderers.
func (c Color) RGBA() color.RGBA {
	switch c {
	case ColorRed:
		return color.RGBA{0xe6, 0x45, 0x39, 0xff}
	case ColorGreen:
		return color.RGBA{0x2e, 0xb8, 0x4b, 0xff}
	case ColorYellow:
		return color.RGBA{0xf0, 0xb5, 0x41, 0xff}
	case ColorBlue:
		return color.RGBA{0x3a, 0x3f, 0x5e, 0xff}
	case ColorMagenta:
		return color.RGBA{0x4b, 0x1d, 0x52, 0xff}
	case ColorCyan:
		return color.RGBA{0x92, 0xe8, 0xc0, 0xff}
	case ColorWhite:
		return color.RGBA{0xdf, 0xe0, 0xe8, 0xff}
	case ColorBrightRed:
		return color.RGBA{0xff, 0x52, 0x77, 0xff}
	case ColorBrightGreen:
		return color.RGBA{0x00, 0xff, 0x00, 0xff}
	case ColorBrightYellow:
		return color.RGBA{0xff, 0xe0, 0x70, 0xff}
	case ColorBrightWhite:
		return color.RGBA{0xf5, 0xff, 0xe8, 0xff}
	case ColorOrange:
		return color.RGBA{0xff, 0x89, 0x33, 0xff}
	case ColorGray:
		return color.RGBA{0x8a, 0x8a, 0x8a, 0xff}
	case ColorBrown:
		return color.RGBA{0x3b, 0x20, 0x27, 0xff}
	case ColorPink:
		return color.RGBA{0xff, 0x9e, 0xc4, 0xff}
	case ColorSand:
		return color.RGBA{0xff, 0xae, 0x70, 0xff}
	default:
		return color.RGBA{0x14, 0x18, 0x2e, 0xff}
	}
}
