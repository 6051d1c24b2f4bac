package ggicon

import "image/color"

// Brand palette. Alpha values are straight (non-premultiplied).
var (
	// Teal is the brand color used for the badge and document details.
	Teal = color.NRGBA{R: 16, G: 163, B: 127, A: 255}

	// White is the foreground color of the emblem.
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Emblem opacities.
const (
	alphaBadge    = 240
	alphaLobe     = 220
	alphaNode     = 200
	alphaArrow    = 255
	alphaDocument = 200
)

// withAlpha returns c with its alpha channel replaced.
func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
