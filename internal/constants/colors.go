package constants

// Terminal color codes used throughout the application
const (
	ColorGray   = "8"
	ColorRed    = "9"
	ColorGreen  = "10"
	ColorYellow = "11"
	ColorBlue   = "12"
	ColorCyan   = "14"
	ColorWhite  = "15"

	// Extended colors
	ColorDarkGray = "240"
)
