// Package ggicon generates the application icon set as PNG files.
//
// # Overview
//
// Every icon size is produced in one of two ways. When the canonical SVG
// source exists, it is rasterized at the target size. When the source is
// missing, the converter is unavailable, or conversion fails, the emblem is
// drawn procedurally with gg from a fixed list of primitive shapes.
//
// # Quick Start
//
//	import "github.com/gogpu/ggicon"
//
//	p := ggicon.New(ggicon.WithOutputDir("assets/icons"))
//	report, err := p.Run()
//	if err != nil {
//	    log.Fatal(err) // output directory could not be created
//	}
//	fmt.Printf("%d/%d icons\n", report.Successes(), report.Total())
//
// # Procedural Emblem
//
// The emblem is defined on a 128x128 design grid. [Layout] scales every
// coordinate, radius and length by size/128 and truncates each value on its
// own, then [Render] draws the shapes in a fixed order: badge, two lobes,
// five nodes, arrow stem, arrow head, document and two document lines.
// Rendering is a pure function of size.
//
// # Vector Rasterization
//
// [SVGRasterizer] uses oksvg and rasterx. Building with the nosvg tag
// replaces [DefaultRasterizer] with [Unavailable], so every icon is drawn
// procedurally:
//
//	go build -tags nosvg ./cmd/ggicon
//
// # Failure Handling
//
// Per-size failures never abort a run. They are recorded in the returned
// [Report]. Only a failure to create the output directory is returned as an
// error from [Pipeline.Run].
package ggicon

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
