// Package hct implements the HCT color space: CAM16 hue and chroma with
// CIE L* as tone.
package hct

import (
	"fmt"

	"github.com/jsvensson/tonal/internal/color"
)

// Color is a color in HCT coordinates. The zero value is black.
//
// Hue is in [0, 360), Chroma is non-negative and Tone is in [0, 100].
// Every Color is backed by an sRGB color, so Chroma is the chroma the
// backing color actually reaches, which may be less than requested.
type Color struct {
	Hue    float64
	Chroma float64
	Tone   float64

	argb color.ARGB
}

// FromARGB returns the HCT coordinates of an sRGB color.
func FromARGB(c color.ARGB) Color {
	cam := CAM16FromARGB(c)
	return Color{
		Hue:    cam.Hue,
		Chroma: cam.Chroma,
		Tone:   c.Lstar(),
		argb:   c,
	}
}

// New returns the in-gamut color closest to the requested coordinates.
// Hue is wrapped, tone clamped to [0, 100] and negative chroma treated as 0.
func New(hue, chroma, tone float64) Color {
	tone = min(max(tone, 0), 100)
	chroma = max(chroma, 0)
	return FromARGB(Solve(SanitizeDegrees(hue), chroma, tone))
}

// ARGB returns the sRGB color backing c.
func (c Color) ARGB() color.ARGB {
	if c.argb == 0 {
		return color.FromRGB(0, 0, 0)
	}
	return c.argb
}

// WithHue returns c rotated to the given hue.
func (c Color) WithHue(hue float64) Color {
	return New(hue, c.Chroma, c.Tone)
}

// WithChroma returns c with the given chroma.
func (c Color) WithChroma(chroma float64) Color {
	return New(c.Hue, chroma, c.Tone)
}

// WithTone returns c with the given tone.
func (c Color) WithTone(tone float64) Color {
	return New(c.Hue, c.Chroma, tone)
}

func (c Color) String() string {
	return fmt.Sprintf("hct(%.1f, %.1f, %.1f)", c.Hue, c.Chroma, c.Tone)
}
