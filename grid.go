package ggicon

// GridUnits is the side length of the design grid. All emblem coordinates
// are expressed in grid units and scaled by size/GridUnits before drawing.
const GridUnits = 128

// Grid maps design-grid units to pixels for one icon size.
type Grid struct {
	Size int
}

// Scale returns the pixels-per-unit factor.
func (g Grid) Scale() float64 {
	return float64(g.Size) / GridUnits
}

// Center returns the integer pixel center of the icon (floor of Size/2).
func (g Grid) Center() int {
	return g.Size / 2
}

// Trunc scales v and truncates toward zero.
//
// Every coordinate, radius and length of the emblem goes through Trunc on
// its own. Offsets are added after truncation, never before, so results can
// differ by a pixel from scaling a precomputed sum.
func (g Grid) Trunc(v float64) int {
	return int(v * g.Scale())
}
