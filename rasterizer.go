package ggicon

// Rasterizer converts the vector source at src into a size x size PNG at dst.
//
// Implementations return [ErrUnavailable] when they cannot run at all. Any
// other error is a conversion failure. In both cases the pipeline falls back
// to drawing the emblem procedurally and overwrites whatever was left at dst.
type Rasterizer interface {
	Rasterize(src, dst string, size int) error
}

// RasterizerFunc adapts an ordinary function to the Rasterizer interface.
type RasterizerFunc func(src, dst string, size int) error

// Rasterize calls f(src, dst, size).
func (f RasterizerFunc) Rasterize(src, dst string, size int) error {
	return f(src, dst, size)
}

// Unavailable is a Rasterizer that always reports [ErrUnavailable].
// It is the default when the module is built with the nosvg tag.
type Unavailable struct{}

// Rasterize returns ErrUnavailable.
func (Unavailable) Rasterize(string, string, int) error {
	return ErrUnavailable
}
