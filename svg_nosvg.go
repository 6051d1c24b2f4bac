//go:build nosvg

package ggicon

// DefaultRasterizer returns the vector rasterizer used when none is
// configured. Built with the nosvg tag, vector conversion is compiled out
// and this is [Unavailable].
func DefaultRasterizer() Rasterizer {
	return Unavailable{}
}
