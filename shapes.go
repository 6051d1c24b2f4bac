package ggicon

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// ShapeKind identifies the primitive a Shape draws.
type ShapeKind int

const (
	// ShapeEllipse is an axis-aligned ellipse inscribed in Box.
	// Circles are ellipses with a square Box.
	ShapeEllipse ShapeKind = iota

	// ShapeRect is an axis-aligned rectangle covering Box.
	ShapeRect

	// ShapePolygon is a closed polygon through Points.
	ShapePolygon
)

// String returns the name of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeEllipse:
		return "ellipse"
	case ShapeRect:
		return "rect"
	case ShapePolygon:
		return "polygon"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// Box is an inclusive pixel bounding box: both (X0, Y0) and (X1, Y1) are
// pixels covered by the shape.
type Box struct {
	X0, Y0, X1, Y1 int
}

// centeredBox returns the box of a w x h shape around (cx, cy). Half extents
// are truncated, so odd sizes lose a pixel on each side.
func centeredBox(cx, cy, w, h int) Box {
	return Box{X0: cx - w/2, Y0: cy - h/2, X1: cx + w/2, Y1: cy + h/2}
}

// Dx returns the number of pixel columns covered by the box.
func (b Box) Dx() int { return b.X1 - b.X0 + 1 }

// Dy returns the number of pixel rows covered by the box.
func (b Box) Dy() int { return b.Y1 - b.Y0 + 1 }

// Rect returns the box as a half-open image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X0, b.Y0, b.X1+1, b.Y1+1)
}

// Shape is one drawing instruction of the emblem.
type Shape struct {
	Name    string
	Kind    ShapeKind
	Box     Box           // ShapeEllipse and ShapeRect
	Points  []image.Point // ShapePolygon, pixel indices
	Fill    color.NRGBA
	Outline *color.NRGBA // one pixel wide, drawn inside Box
}

// coverageThreshold is the mask value at or above which a pixel belongs to
// a shape. Edges are hard: a pixel is either fully painted or left alone.
const coverageThreshold = 128

// Draw paints the shape into dst. Covered pixels are replaced with Fill,
// and with Outline on the one-pixel ring inside Box; dst is not blended.
func (s Shape) Draw(dst *image.NRGBA) error {
	b := dst.Bounds()
	outer, err := s.coverage(b.Dx(), b.Dy(), 0)
	if err != nil {
		return fmt.Errorf("fill %s: %w", s.Name, err)
	}
	var inner *gg.Mask
	if s.Outline != nil {
		if inner, err = s.coverage(b.Dx(), b.Dy(), 1); err != nil {
			return fmt.Errorf("outline %s: %w", s.Name, err)
		}
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if outer.At(x, y) < coverageThreshold {
				continue
			}
			c := s.Fill
			if inner != nil && inner.At(x, y) < coverageThreshold {
				c = *s.Outline
			}
			dst.SetNRGBA(b.Min.X+x, b.Min.Y+y, c)
		}
	}
	return nil
}

// coverage rasterizes the shape, shrunk by inset pixels, into a w x h mask.
func (s Shape) coverage(w, h int, inset float64) (*gg.Mask, error) {
	dc := gg.NewContext(w, h)
	defer dc.Close()

	// Pin the scanline filler so coverage does not depend on auto-selection.
	dc.SetRasterizerMode(gg.RasterizerAnalytic)

	s.path(dc, inset)
	dc.SetColor(White)
	if err := dc.Fill(); err != nil {
		return nil, err
	}
	return gg.NewMaskFromAlpha(dc.Image()), nil
}

// path appends the shape outline to the current path, shrunk by inset
// pixels on every side. Polygons ignore inset. Pixel (x, y) spans x..x+1
// in gg coordinates.
func (s Shape) path(dc *gg.Context, inset float64) {
	switch s.Kind {
	case ShapeEllipse:
		rx := float64(s.Box.Dx())/2 - inset
		ry := float64(s.Box.Dy())/2 - inset
		cx := float64(s.Box.X0) + float64(s.Box.Dx())/2
		cy := float64(s.Box.Y0) + float64(s.Box.Dy())/2
		dc.DrawEllipse(cx, cy, max(rx, 0), max(ry, 0))
	case ShapeRect:
		w := max(float64(s.Box.Dx())-2*inset, 0)
		h := max(float64(s.Box.Dy())-2*inset, 0)
		dc.DrawRectangle(float64(s.Box.X0)+inset, float64(s.Box.Y0)+inset, w, h)
	case ShapePolygon:
		for i, p := range s.Points {
			x, y := float64(p.X)+0.5, float64(p.Y)+0.5
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		if len(s.Points) > 0 {
			dc.ClosePath()
		}
	}
}
