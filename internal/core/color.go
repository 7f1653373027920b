package core

// Color represents a foreground color for a screen cell.
// The game is monochrome except for the difficulty accent and a gray for
// secondary text.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorGreen
	ColorYellow
	ColorRed
)
