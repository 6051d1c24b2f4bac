package ggicon

// Defaults used by [New] when no option overrides them.
const (
	// DefaultSource is the canonical vector image.
	DefaultSource = "assets/icons/brain-memory.svg"

	// DefaultOutputDir receives icon{size}.png files.
	DefaultOutputDir = "assets/icons"
)

// DefaultSizes returns the canonical icon sizes in generation order.
func DefaultSizes() []int {
	return []int{16, 32, 48, 128}
}

// Option configures a Pipeline during creation.
//
// Example:
//
//	// Canonical sizes and paths, SVG rasterizer when available
//	p := ggicon.New()
//
//	// Procedural only, into a scratch directory
//	p := ggicon.New(
//	    ggicon.WithOutputDir(dir),
//	    ggicon.WithRasterizer(ggicon.Unavailable{}),
//	)
type Option func(*options)

// options holds the Pipeline configuration.
type options struct {
	sizes      []int
	source     string
	outputDir  string
	rasterizer Rasterizer
	encoder    Encoder
	observer   Observer
}

// defaultOptions returns the default pipeline options.
func defaultOptions() options {
	return options{
		sizes:      DefaultSizes(),
		source:     DefaultSource,
		outputDir:  DefaultOutputDir,
		rasterizer: DefaultRasterizer(),
		encoder:    PNGEncoder{},
		observer:   nopObserver{},
	}
}

// WithSizes replaces the size list. Sizes are generated in the given order.
func WithSizes(sizes ...int) Option {
	return func(o *options) {
		o.sizes = append([]int(nil), sizes...)
	}
}

// WithSource sets the vector source path. An empty path disables the
// vector attempt.
func WithSource(path string) Option {
	return func(o *options) {
		o.source = path
	}
}

// WithOutputDir sets the directory icons are written to.
func WithOutputDir(dir string) Option {
	return func(o *options) {
		o.outputDir = dir
	}
}

// WithRasterizer sets the vector rasterizer. Nil selects [Unavailable].
func WithRasterizer(r Rasterizer) Option {
	return func(o *options) {
		if r == nil {
			r = Unavailable{}
		}
		o.rasterizer = r
	}
}

// WithEncoder sets the encoder used for procedurally drawn icons.
// Nil selects [PNGEncoder].
func WithEncoder(e Encoder) Option {
	return func(o *options) {
		if e == nil {
			e = PNGEncoder{}
		}
		o.encoder = e
	}
}

// WithObserver registers an observer for per-size progress.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs == nil {
			obs = nopObserver{}
		}
		o.observer = obs
	}
}

// Observer receives progress notifications from [Pipeline.Run].
// Calls happen on the goroutine running the pipeline, one size at a time.
type Observer interface {
	SizeStarted(size int, path string)
	SizeFinished(r Result)
}

type nopObserver struct{}

func (nopObserver) SizeStarted(int, string) {}
func (nopObserver) SizeFinished(Result)     {}
