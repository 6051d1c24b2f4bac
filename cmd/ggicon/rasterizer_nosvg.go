//go:build nosvg

package main

import "github.com/gogpu/ggicon"

func newRasterizer(int) ggicon.Rasterizer {
	return ggicon.DefaultRasterizer()
}
