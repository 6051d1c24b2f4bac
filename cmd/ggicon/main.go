// Command ggicon generates the application icon set.
//
// With no arguments it reads assets/icons/brain-memory.svg and writes
// assets/icons/icon{16,32,48,128}.png, drawing the emblem procedurally for
// every size the SVG cannot produce. Partial failures are reported on
// stdout; the exit status is non-zero only when the output directory cannot
// be created.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/ggicon"
)

func main() {
	var (
		dir         = flag.String("dir", ggicon.DefaultOutputDir, "output directory")
		source      = flag.String("source", ggicon.DefaultSource, "SVG source image")
		supersample = flag.Int("supersample", 1, "SVG supersampling factor")
		verbose     = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		ggicon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	os.Exit(run(os.Stdout,
		ggicon.WithOutputDir(*dir),
		ggicon.WithSource(*source),
		ggicon.WithRasterizer(newRasterizer(*supersample)),
	))
}

// run executes the pipeline and prints progress to w. It returns the
// process exit status.
func run(w io.Writer, opts ...ggicon.Option) int {
	fmt.Fprintf(w, "ggicon %s - icon generator\n", ggicon.Version)
	fmt.Fprintln(w, strings.Repeat("=", 50))

	p := ggicon.New(append(opts, ggicon.WithObserver(printer{w}))...)
	report, err := p.Run()
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return 1
	}

	fmt.Fprintf(w, "\nGenerated %d/%d icons\n", report.Successes(), report.Total())
	if !report.OK() {
		fmt.Fprintln(w, "\nFor better icon quality, provide the SVG source and build without the nosvg tag:")
		fmt.Fprintln(w, "    go build ./cmd/ggicon")
	}
	return 0
}

// printer reports per-size progress.
type printer struct {
	w io.Writer
}

func (p printer) SizeStarted(size int, _ string) {
	fmt.Fprintf(p.w, "Generating %dx%d icon...\n", size, size)
}

func (p printer) SizeFinished(r ggicon.Result) {
	if r.Status == ggicon.StatusDone {
		fmt.Fprintf(p.w, "  ✓ %s (%s)\n", r.Path, r.Origin)
		return
	}
	fmt.Fprintf(p.w, "  ✗ %dx%d: %v\n", r.Size, r.Size, r.Err)
}
