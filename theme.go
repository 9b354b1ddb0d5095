// Package tonal derives Material color themes from a seed color or from
// the pixels of an image.
package tonal

import (
	"context"
	"fmt"

	"github.com/jsvensson/tonal/internal/color"
	"github.com/jsvensson/tonal/internal/hct"
	"github.com/jsvensson/tonal/internal/palette"
	"github.com/jsvensson/tonal/internal/quantize"
	"github.com/jsvensson/tonal/internal/scheme"
)

// ErrInvalidInput is wrapped by every error caused by bad input.
var ErrInvalidInput = color.ErrInvalidInput

type (
	ARGB    = color.ARGB
	HCT     = hct.Color
	Variant = palette.Variant
	Scheme  = scheme.Scheme
	Role    = scheme.Role
)

// Theme is a seed color with the palettes and schemes derived from it.
type Theme struct {
	Source   ARGB
	Seed     HCT
	Variant  Variant
	Palettes palette.Palettes
	Light    Scheme
	Dark     Scheme
}

// Scheme returns the dark scheme when dark is set, the light one otherwise.
func (t *Theme) Scheme(dark bool) Scheme {
	if dark {
		return t.Dark
	}
	return t.Light
}

// FromSeed builds the theme for a seed color.
func FromSeed(seed ARGB, opts ...Option) *Theme {
	o := newOptions(opts)
	source := seed | 0xff000000
	h := hct.FromARGB(source)
	ps := palette.Core(h, o.variant)
	return &Theme{
		Source:   source,
		Seed:     h,
		Variant:  o.variant,
		Palettes: ps,
		Light:    scheme.Build(ps, scheme.Light),
		Dark:     scheme.Build(ps, scheme.Dark),
	}
}

// FromImage quantizes pixels, picks the best scoring color as the seed and
// builds its theme. Pixels that are not fully opaque are ignored. It fails
// with ErrInvalidInput when no opaque pixel is given.
func FromImage(ctx context.Context, pixels []ARGB, opts ...Option) (*Theme, error) {
	seed, err := SeedFromImage(ctx, pixels, opts...)
	if err != nil {
		return nil, err
	}
	return FromSeed(seed, opts...), nil
}

// SeedFromImage returns the color FromImage would use as the seed.
func SeedFromImage(ctx context.Context, pixels []ARGB, opts ...Option) (ARGB, error) {
	o := newOptions(opts)
	result, err := quantize.Quantize(ctx, pixels, o.maxColors,
		quantize.WithMaxIterations(o.maxIterations),
		quantize.WithWorkers(o.workers),
	)
	if err != nil {
		return 0, fmt.Errorf("quantizing image: %w", err)
	}
	return quantize.Score(result, o.score)[0], nil
}

// ParseHex parses "#rgb", "#rrggbb" or "#aarrggbb", with or without "#".
func ParseHex(s string) (ARGB, error) {
	return color.ParseHex(s)
}

// ParseVariant parses a variant name such as "tonal_spot".
func ParseVariant(s string) (Variant, error) {
	return palette.ParseVariant(s)
}
