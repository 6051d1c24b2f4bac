package ggicon

import (
	"image"
	"image/color"
	"testing"
)

func TestShapeKindString(t *testing.T) {
	tests := []struct {
		k    ShapeKind
		want string
	}{
		{ShapeEllipse, "ellipse"},
		{ShapeRect, "rect"},
		{ShapePolygon, "polygon"},
		{ShapeKind(42), "ShapeKind(42)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("ShapeKind(%d).String() = %q, want %q", int(tt.k), got, tt.want)
		}
	}
}

func TestCenteredBox(t *testing.T) {
	tests := []struct {
		name         string
		cx, cy, w, h int
		want         Box
	}{
		{"even", 10, 10, 4, 2, Box{8, 9, 12, 11}},
		{"odd", 10, 10, 5, 3, Box{8, 9, 12, 11}},
		{"zero", 8, 11, 0, 0, Box{8, 11, 8, 11}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := centeredBox(tt.cx, tt.cy, tt.w, tt.h)
			if got != tt.want {
				t.Errorf("centeredBox() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoxExtents(t *testing.T) {
	b := Box{X0: 2, Y0: 3, X1: 5, Y1: 3}
	if b.Dx() != 4 || b.Dy() != 1 {
		t.Errorf("Dx, Dy = %d, %d, want 4, 1", b.Dx(), b.Dy())
	}
	if got, want := b.Rect(), image.Rect(2, 3, 6, 4); got != want {
		t.Errorf("Rect() = %v, want %v", got, want)
	}
}

func alphaAt(img image.Image, x, y int) uint8 {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA).A
}

func TestShapeDraw(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	tests := []struct {
		name    string
		shape   Shape
		inside  image.Point
		outside image.Point
	}{
		{
			name:    "rect",
			shape:   Shape{Name: "r", Kind: ShapeRect, Box: Box{2, 2, 5, 5}, Fill: red},
			inside:  image.Pt(3, 3),
			outside: image.Pt(8, 8),
		},
		{
			name:    "ellipse",
			shape:   Shape{Name: "e", Kind: ShapeEllipse, Box: Box{1, 1, 8, 8}, Fill: red},
			inside:  image.Pt(4, 4),
			outside: image.Pt(0, 0),
		},
		{
			name:    "single pixel",
			shape:   Shape{Name: "dot", Kind: ShapeEllipse, Box: Box{4, 7, 4, 7}, Fill: red},
			inside:  image.Pt(4, 7),
			outside: image.Pt(5, 7),
		},
		{
			name: "polygon",
			shape: Shape{
				Name:   "p",
				Kind:   ShapePolygon,
				Points: []image.Point{{0, 0}, {9, 0}, {0, 9}},
				Fill:   red,
			},
			inside:  image.Pt(1, 1),
			outside: image.Pt(8, 8),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
			if err := tt.shape.Draw(img); err != nil {
				t.Fatalf("Draw() = %v", err)
			}

			if got := img.NRGBAAt(tt.inside.X, tt.inside.Y); got != red {
				t.Errorf("pixel %v = %+v, want %+v", tt.inside, got, red)
			}
			if got := img.NRGBAAt(tt.outside.X, tt.outside.Y); got != (color.NRGBA{}) {
				t.Errorf("pixel %v = %+v, want transparent", tt.outside, got)
			}
		})
	}
}

func TestShapeDrawOutline(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 12, 12))

	blue := color.NRGBA{B: 255, A: 255}
	s := Shape{
		Name:    "framed",
		Kind:    ShapeRect,
		Box:     Box{1, 1, 10, 10},
		Fill:    White,
		Outline: &blue,
	}
	if err := s.Draw(img); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	tests := []struct {
		p    image.Point
		want color.NRGBA
	}{
		{image.Pt(1, 5), blue},
		{image.Pt(10, 5), blue},
		{image.Pt(5, 1), blue},
		{image.Pt(5, 10), blue},
		{image.Pt(2, 5), White},
		{image.Pt(5, 5), White},
		{image.Pt(0, 5), color.NRGBA{}},
		{image.Pt(11, 5), color.NRGBA{}},
	}
	for _, tt := range tests {
		if got := img.NRGBAAt(tt.p.X, tt.p.Y); got != tt.want {
			t.Errorf("pixel %v = %+v, want %+v", tt.p, got, tt.want)
		}
	}
}

// Translucent shapes overwrite what lies beneath instead of compositing.
func TestShapeDrawReplaces(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))

	under := Shape{Name: "under", Kind: ShapeRect, Box: Box{0, 0, 7, 7}, Fill: color.NRGBA{R: 255, A: 255}}
	over := Shape{Name: "over", Kind: ShapeRect, Box: Box{2, 2, 5, 5}, Fill: withAlpha(White, 100)}
	for _, s := range []Shape{under, over} {
		if err := s.Draw(img); err != nil {
			t.Fatalf("Draw(%s) = %v", s.Name, err)
		}
	}

	if got, want := img.NRGBAAt(3, 3), withAlpha(White, 100); got != want {
		t.Errorf("overlap pixel = %+v, want %+v", got, want)
	}
	if got, want := img.NRGBAAt(0, 0), (color.NRGBA{R: 255, A: 255}); got != want {
		t.Errorf("uncovered pixel = %+v, want %+v", got, want)
	}
}
