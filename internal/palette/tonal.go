// Package palette builds tonal palettes: one hue and chroma sampled at a
// fixed set of tones.
package palette

import (
	"github.com/jsvensson/tonal/internal/color"
	"github.com/jsvensson/tonal/internal/hct"
)

// Tones are the stops cached by every TonalPalette.
var Tones = [...]int{0, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70, 75, 80, 85, 90, 95, 98, 99, 100}

// TonalPalette holds the colors of one hue and chroma at every stop in
// Tones. It is immutable once built.
type TonalPalette struct {
	hue    float64
	chroma float64
	key    hct.Color
	stops  [len(Tones)]color.ARGB
}

// NewTonalPalette solves every stop for the given hue and chroma. Chroma
// that a tone cannot reach is clipped per stop.
func NewTonalPalette(hue, chroma float64) *TonalPalette {
	p := &TonalPalette{
		hue:    hct.SanitizeDegrees(hue),
		chroma: max(chroma, 0),
	}
	p.key = hct.New(p.hue, p.chroma, 50)
	for i, t := range Tones {
		p.stops[i] = hct.Solve(p.hue, p.chroma, float64(t))
	}
	return p
}

// FromColor returns the palette with the hue and chroma of c.
func FromColor(c hct.Color) *TonalPalette {
	return NewTonalPalette(c.Hue, c.Chroma)
}

func (p *TonalPalette) Hue() float64 { return p.hue }

func (p *TonalPalette) Chroma() float64 { return p.chroma }

// KeyColor is the palette's color at tone 50.
func (p *TonalPalette) KeyColor() hct.Color { return p.key }

// Tone returns the color at tone t. Stops are served from the cache,
// other tones are solved on demand.
func (p *TonalPalette) Tone(t float64) color.ARGB {
	if i, ok := stopIndex(t); ok {
		return p.stops[i]
	}
	return hct.Solve(p.hue, p.chroma, min(max(t, 0), 100))
}

// Stops returns the cached colors in the order of Tones.
func (p *TonalPalette) Stops() []color.ARGB {
	out := make([]color.ARGB, len(p.stops))
	copy(out, p.stops[:])
	return out
}

func stopIndex(t float64) (int, bool) {
	for i, s := range Tones {
		if float64(s) == t {
			return i, true
		}
	}
	return 0, false
}
