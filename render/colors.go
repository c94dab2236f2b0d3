package render

import "github.com/gdamore/tcell/v2"

// RGB palette
var (
	RgbBackground  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall        = tcell.NewRGBColor(120, 120, 140) // Muted gray
	RgbGoal        = tcell.NewRGBColor(40, 42, 58)    // Barely visible zone
	RgbPaddleLeft  = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbPaddleRight = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbBall        = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbScoreboard  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBar   = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)
