package tonal

import (
	"github.com/jsvensson/tonal/internal/palette"
	"github.com/jsvensson/tonal/internal/quantize"
)

// DefaultMaxColors is the number of colors an image is quantized to.
const DefaultMaxColors = 128

const (
	TonalSpot      = palette.TonalSpot
	Content        = palette.Content
	Vibrant        = palette.Vibrant
	Expressive     = palette.Expressive
	VariantNeutral = palette.VariantNeutral
	Monochrome     = palette.Monochrome
)

// ScoreOptions tune how an image's seed color is chosen.
type ScoreOptions = quantize.ScoreOptions

// DefaultScoreOptions returns the standard seed scoring thresholds.
func DefaultScoreOptions() ScoreOptions {
	return quantize.DefaultScoreOptions()
}

type options struct {
	variant       Variant
	maxColors     int
	maxIterations int
	workers       int
	score         ScoreOptions
}

// Option configures FromSeed and FromImage.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		variant:   palette.TonalSpot,
		maxColors: DefaultMaxColors,
		score:     quantize.DefaultScoreOptions(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithVariant selects how palettes are derived from the seed.
func WithVariant(v Variant) Option {
	return func(o *options) { o.variant = v }
}

// WithMaxColors sets how many colors an image is reduced to before
// scoring. Values below 1 make FromImage fail with ErrInvalidInput.
func WithMaxColors(n int) Option {
	return func(o *options) { o.maxColors = n }
}

// WithMaxIterations caps the k-means refinement rounds.
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIterations = n }
}

// WithWorkers sets the goroutines used while quantizing; 0 picks a default.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithScoreOptions replaces the seed scoring thresholds.
func WithScoreOptions(s ScoreOptions) Option {
	return func(o *options) { o.score = s }
}
