package ggicon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Pipeline generates the icon set. Create one with [New].
type Pipeline struct {
	opts options
}

// New creates a pipeline. Without options it generates [DefaultSizes] from
// [DefaultSource] into [DefaultOutputDir] using [DefaultRasterizer].
func New(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{opts: o}
}

// Sizes returns a copy of the configured sizes in generation order.
func (p *Pipeline) Sizes() []int {
	return slices.Clone(p.opts.sizes)
}

// OutputPath returns the file an icon of the given size is written to.
func (p *Pipeline) OutputPath(size int) string {
	return filepath.Join(p.opts.outputDir, fmt.Sprintf("icon%d.png", size))
}

// Run generates every configured size in order.
//
// Failures of a single size are recorded in the report and never stop the
// run. The returned error is non-nil only when the output directory cannot
// be created; it wraps [ErrEnvironment] and the report holds the sizes
// finished so far.
func (p *Pipeline) Run() (*Report, error) {
	report := &Report{Results: make([]Result, 0, len(p.opts.sizes))}
	for _, size := range p.opts.sizes {
		if err := os.MkdirAll(p.opts.outputDir, 0o755); err != nil {
			return report, fmt.Errorf("%w: create %s: %w", ErrEnvironment, p.opts.outputDir, err)
		}

		path := p.OutputPath(size)
		p.opts.observer.SizeStarted(size, path)
		res := p.generate(size, path)
		p.opts.observer.SizeFinished(res)
		report.Results = append(report.Results, res)
	}

	Logger().Info("ggicon: run finished",
		"successes", report.Successes(),
		"total", report.Total())
	return report, nil
}

// generate runs the vector attempt and, if it does not succeed, the
// procedural fallback for one size.
func (p *Pipeline) generate(size int, path string) Result {
	res := Result{Size: size, Path: path, Status: StatusPending}
	log := Logger().With("size", size, "path", path)

	if size <= 0 {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("%w: %d", ErrInvalidSize, size)
		log.Error("ggicon: invalid size")
		return res
	}

	ok, err := p.tryVector(size, path)
	if ok {
		res.Status = StatusDone
		res.Origin = OriginVector
		log.Info("ggicon: icon written", "origin", res.Origin)
		return res
	}
	if err != nil {
		res.VectorErr = err
		log.Warn("ggicon: vector rasterization failed, drawing procedurally", "err", err)
	}

	img, err := Render(size)
	if err == nil {
		err = p.opts.encoder.Encode(path, img)
	}
	if err != nil {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("%w: %s: %w", ErrPersist, path, err)
		log.Error("ggicon: icon generation failed", "err", err)
		return res
	}

	res.Status = StatusDone
	res.Origin = OriginProcedural
	log.Info("ggicon: icon written", "origin", res.Origin)
	return res
}

// tryVector attempts vector rasterization. It returns ok when dst was
// written. A nil error with !ok means the vector path was not available,
// which is not a failure.
func (p *Pipeline) tryVector(size int, dst string) (ok bool, err error) {
	src := p.opts.source
	if src == "" {
		return false, nil
	}
	if fi, statErr := os.Stat(src); statErr != nil || fi.IsDir() {
		Logger().Debug("ggicon: vector source not usable", "source", src, "err", statErr)
		return false, nil
	}

	defer func() {
		if r := recover(); r != nil {
			ok, err = false, fmt.Errorf("%w: panic: %v", ErrRasterize, r)
		}
	}()

	err = p.opts.rasterizer.Rasterize(src, dst, size)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrUnavailable):
		Logger().Debug("ggicon: vector rasterizer unavailable", "source", src)
		return false, nil
	case errors.Is(err, ErrRasterize):
		return false, err
	default:
		return false, fmt.Errorf("%w: %w", ErrRasterize, err)
	}
}
