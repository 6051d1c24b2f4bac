package ggicon

import "errors"

var (
	// ErrInvalidSize is returned when an icon size is not positive.
	ErrInvalidSize = errors.New("ggicon: icon size must be positive")

	// ErrUnavailable reports that the vector rasterizer cannot run at all,
	// for example because the binary was built with the nosvg tag.
	// The pipeline treats it as a signal to draw procedurally.
	ErrUnavailable = errors.New("ggicon: vector rasterizer unavailable")

	// ErrRasterize wraps failures raised while converting the SVG source.
	ErrRasterize = errors.New("ggicon: vector rasterization failed")

	// ErrPersist wraps failures to render or write the procedural icon.
	ErrPersist = errors.New("ggicon: icon could not be written")

	// ErrEnvironment wraps failures that abort the whole run, such as an
	// output directory that cannot be created.
	ErrEnvironment = errors.New("ggicon: environment failure")
)
