//go:build !nosvg

package main

import "github.com/gogpu/ggicon"

func newRasterizer(supersample int) ggicon.Rasterizer {
	return &ggicon.SVGRasterizer{Supersample: supersample}
}
