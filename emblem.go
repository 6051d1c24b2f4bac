package ggicon

import (
	"fmt"
	"image"
)

// node is a decorative dot in design-grid units.
type node struct {
	x, y, r float64
}

var emblemNodes = [...]node{
	{38, 58, 3.5},
	{90, 58, 3.5},
	{48, 78, 2.5},
	{80, 78, 2.5},
	{64, 68, 2},
}

// Layout returns the emblem for a size x size icon as an ordered list of
// shapes. Later shapes are drawn over earlier ones. It returns nil if size
// is not positive.
func Layout(size int) []Shape {
	if size <= 0 {
		return nil
	}
	g := Grid{Size: size}
	c := g.Center()

	shapes := make([]Shape, 0, 13)
	shapes = append(shapes, badge(g, c))
	shapes = append(shapes, lobes(g, c)...)
	shapes = append(shapes, nodes(g)...)
	shapes = append(shapes, arrow(g, c)...)
	shapes = append(shapes, document(g, c)...)
	return shapes
}

func badge(g Grid, c int) Shape {
	r := g.Trunc(58)
	return Shape{
		Name: "badge",
		Kind: ShapeEllipse,
		Box:  Box{X0: c - r, Y0: c - r, X1: c + r, Y1: c + r},
		Fill: withAlpha(Teal, alphaBadge),
	}
}

func lobes(g Grid, c int) []Shape {
	y := g.Trunc(45)
	w := g.Trunc(28)
	h := g.Trunc(20)
	dx := g.Trunc(14)
	outline := White
	return []Shape{
		{
			Name:    "lobe-left",
			Kind:    ShapeEllipse,
			Box:     centeredBox(c-dx, y, w, h),
			Fill:    withAlpha(White, alphaLobe),
			Outline: &outline,
		},
		{
			Name:    "lobe-right",
			Kind:    ShapeEllipse,
			Box:     centeredBox(c+dx, y, w, h),
			Fill:    withAlpha(White, alphaLobe),
			Outline: &outline,
		},
	}
}

func nodes(g Grid) []Shape {
	shapes := make([]Shape, 0, len(emblemNodes))
	for i, n := range emblemNodes {
		x, y, r := g.Trunc(n.x), g.Trunc(n.y), g.Trunc(n.r)
		shapes = append(shapes, Shape{
			Name: fmt.Sprintf("node-%d", i+1),
			Kind: ShapeEllipse,
			Box:  Box{X0: x - r, Y0: y - r, X1: x + r, Y1: y + r},
			Fill: withAlpha(White, alphaNode),
		})
	}
	return shapes
}

func arrow(g Grid, c int) []Shape {
	y := g.Trunc(95)
	tip := g.Trunc(8)
	shoulder := y - g.Trunc(2)
	return []Shape{
		{
			Name: "arrow-stem",
			Kind: ShapeRect,
			Box:  centeredBox(c, y, g.Trunc(4), g.Trunc(16)),
			Fill: withAlpha(White, alphaArrow),
		},
		{
			Name: "arrow-head",
			Kind: ShapePolygon,
			Points: []image.Point{
				{X: c - tip, Y: shoulder},
				{X: c, Y: y + g.Trunc(6)},
				{X: c + tip, Y: shoulder},
			},
			Fill: withAlpha(White, alphaArrow),
		},
	}
}

// document draws the file indicator. The second text line stops at a third
// of the line width right of center, so it is shorter than the first.
func document(g Grid, c int) []Shape {
	y := g.Trunc(108)
	lw := g.Trunc(10)
	y1 := y - g.Trunc(1)
	y2 := y + g.Trunc(1)
	outline := Teal
	return []Shape{
		{
			Name:    "document",
			Kind:    ShapeRect,
			Box:     centeredBox(c, y, g.Trunc(16), g.Trunc(6)),
			Fill:    withAlpha(White, alphaDocument),
			Outline: &outline,
		},
		{
			Name: "document-line-1",
			Kind: ShapeRect,
			Box:  Box{X0: c - lw/2, Y0: y1 - 1, X1: c + lw/2, Y1: y1 + 1},
			Fill: Teal,
		},
		{
			Name: "document-line-2",
			Kind: ShapeRect,
			Box:  Box{X0: c - lw/2, Y0: y2 - 1, X1: c + lw/3, Y1: y2 + 1},
			Fill: Teal,
		},
	}
}

// Render draws the emblem into a new size x size image with a transparent
// background. Shapes are painted in z-order and each replaces the pixels it
// covers, so every pixel holds exactly one palette color. The result depends
// only on size.
func Render(size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for _, s := range Layout(size) {
		if err := s.Draw(img); err != nil {
			return nil, fmt.Errorf("ggicon: render %dx%d: %w", size, size, err)
		}
	}
	return img, nil
}
