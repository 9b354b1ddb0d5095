// Package quantize reduces a pixel buffer to a small set of representative
// colors and ranks them as theme seeds.
//
// Quantize runs Wu's histogram quantizer to find starting centroids and
// refines them with weighted k-means in L*a*b*. Score picks seed colors
// from the result.
package quantize

import (
	"cmp"
	"context"
	"fmt"
	"runtime"
	"slices"

	"github.com/jsvensson/tonal/internal/color"
)

const (
	DefaultMaxIterations = 10
	maxDefaultWorkers    = 8
)

// Result maps each quantized color to the number of pixels it represents.
type Result map[color.ARGB]int

// Colors returns the colors ordered by weight, heaviest first. Equal
// weights are ordered by ARGB value.
func (r Result) Colors() []color.ARGB {
	out := make([]color.ARGB, 0, len(r))
	for c := range r {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b color.ARGB) int {
		if r[a] != r[b] {
			return r[b] - r[a]
		}
		return compareARGB(a, b)
	})
	return out
}

// Total returns the number of pixels represented.
func (r Result) Total() int {
	n := 0
	for _, w := range r {
		n += w
	}
	return n
}

type options struct {
	maxIterations int
	workers       int
}

// Option configures Quantize.
type Option func(*options)

// WithMaxIterations sets the k-means iteration cap. Values below 1 use
// DefaultMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIterations = n }
}

// WithWorkers sets how many goroutines share the assignment step. Values
// below 1 use GOMAXPROCS, capped at 8.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func (o options) normalized() options {
	if o.maxIterations < 1 {
		o.maxIterations = DefaultMaxIterations
	}
	if o.workers < 1 {
		o.workers = min(runtime.GOMAXPROCS(0), maxDefaultWorkers)
	}
	return o
}

// Quantize reduces pixels to at most maxColors colors. Pixels that are not
// fully opaque are ignored. It returns an error wrapping
// color.ErrInvalidInput when maxColors is not positive or no opaque pixel
// remains.
//
// The weights of the result always sum to the number of opaque pixels, and
// the result does not depend on the order of pixels or the worker count.
func Quantize(ctx context.Context, pixels []color.ARGB, maxColors int, opts ...Option) (Result, error) {
	if maxColors <= 0 {
		return nil, fmt.Errorf("max colors %d: %w", maxColors, color.ErrInvalidInput)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	o = o.normalized()

	population := make(map[color.ARGB]int)
	for _, p := range pixels {
		if p.Opaque() {
			population[p]++
		}
	}
	if len(population) == 0 {
		return nil, fmt.Errorf("no opaque pixels: %w", color.ErrInvalidInput)
	}
	if len(population) <= maxColors {
		return Result(population), nil
	}

	distinct := make([]color.ARGB, 0, len(population))
	for c := range population {
		distinct = append(distinct, c)
	}
	slices.Sort(distinct)

	k := &kmeans{
		points:  make([]lab, len(distinct)),
		weights: make([]int, len(distinct)),
		workers: o.workers,
	}
	for i, c := range distinct {
		k.points[i] = toLab(c)
		k.weights[i] = population[c]
	}

	starts := wuQuantize(population, maxColors)
	clusters, err := k.run(ctx, starts, o.maxIterations)
	if err != nil {
		return nil, fmt.Errorf("refining clusters: %w", err)
	}

	result := make(Result, len(clusters))
	for _, cl := range clusters {
		result[fromLab(cl.center)] += cl.weight
	}
	return result, nil
}

func compareARGB(a, b color.ARGB) int {
	return cmp.Compare(a, b)
}
