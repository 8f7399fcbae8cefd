package core

// Color is a foreground colour for a screen cell.
// The platform maps each value to an ANSI 256-colour code.
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
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// Pond roles.
const (
	ColorWater     = ColorBlue
	ColorSurface   = ColorBrightCyan
	ColorLine      = ColorGray
	ColorHighlight = ColorBrightYellow
	ColorCorrect   = ColorBrightGreen
	ColorWrong     = ColorBrightRed
)
