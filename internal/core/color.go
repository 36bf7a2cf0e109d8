package core

import (
	"strconv"
	"strings"
)

// Color represents a foreground color for a screen cell.
// Uses the ANSI palette for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorBrown
	ColorDarkGray
)

// approximate RGB values used to match hex colors onto the palette
var paletteRGB = []struct {
	c       Color
	r, g, b int
}{
	{ColorRed, 205, 49, 49},
	{ColorGreen, 72, 187, 120},
	{ColorYellow, 236, 201, 75},
	{ColorBlue, 49, 130, 206},
	{ColorMagenta, 128, 90, 213},
	{ColorCyan, 79, 209, 197},
	{ColorWhite, 203, 213, 224},
	{ColorBrightRed, 245, 101, 101},
	{ColorBrightGreen, 104, 211, 145},
	{ColorBrightYellow, 250, 240, 137},
	{ColorBrightBlue, 99, 179, 237},
	{ColorBrightMagenta, 183, 148, 244},
	{ColorBrightCyan, 11, 197, 234},
	{ColorBrightWhite, 255, 255, 255},
	{ColorOrange, 214, 158, 46},
	{ColorGray, 160, 174, 192},
	{ColorBrown, 151, 90, 22},
	{ColorDarkGray, 45, 55, 72},
}

// ColorFromHex maps a "#rrggbb" color onto the closest palette entry.
// Malformed input yields ColorDefault.
func ColorFromHex(hex string) Color {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return ColorDefault
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ColorDefault
	}
	r, g, b := int(v>>16&0xff), int(v>>8&0xff), int(v&0xff)

	best := ColorDefault
	bestDist := -1
	for _, p := range paletteRGB {
		dr, dg, db := r-p.r, g-p.g, b-p.b
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			best, bestDist = p.c, dist
		}
	}
	return best
}
