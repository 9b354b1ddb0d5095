package hct

import (
	"math"
	"testing"

	"github.com/jsvensson/tonal/internal/color"
)

func TestFromARGB(t *testing.T) {
	tests := []struct {
		name   string
		color  color.ARGB
		hue    float64
		chroma float64
		tone   float64
	}{
		{"red", 0xffff0000, 27.408, 113.358, 53.241},
		{"green", 0xff00ff00, 142.139, 108.410, 87.737},
		{"blue", 0xff0000ff, 282.788, 87.230, 32.302},
		{"white", 0xffffffff, 209.492, 2.869, 100.0},
		{"black", 0xff000000, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromARGB(tt.color)
			if math.Abs(got.Hue-tt.hue) > 0.01 {
				t.Errorf("Hue = %.3f, want %.3f", got.Hue, tt.hue)
			}
			if math.Abs(got.Chroma-tt.chroma) > 0.01 {
				t.Errorf("Chroma = %.3f, want %.3f", got.Chroma, tt.chroma)
			}
			if math.Abs(got.Tone-tt.tone) > 0.01 {
				t.Errorf("Tone = %.3f, want %.3f", got.Tone, tt.tone)
			}
			if got.ARGB() != tt.color {
				t.Errorf("ARGB() = %v, want %v", got.ARGB(), tt.color)
			}
		})
	}
}

func channelDistance(a, b color.ARGB) int {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return max(d(a.Red(), b.Red()), d(a.Green(), b.Green()), d(a.Blue(), b.Blue()))
}

func TestRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				c := color.FromRGB(uint8(r), uint8(g), uint8(b))
				h := FromARGB(c)
				got := New(h.Hue, h.Chroma, h.Tone).ARGB()
				if channelDistance(got, c) > 4 {
					t.Errorf("New(%v) = %v, want %v", h, got, c)
				}
			}
		}
	}
}

func TestNewPreservesTone(t *testing.T) {
	for hue := 0.0; hue < 360; hue += 30 {
		for _, chroma := range []float64{0, 10, 48, 120} {
			for tone := 0.0; tone <= 100; tone += 10 {
				got := New(hue, chroma, tone)
				if got.Hue < 0 || got.Hue >= 360 {
					t.Errorf("New(%v, %v, %v).Hue = %v, out of range", hue, chroma, tone, got.Hue)
				}
				if math.Abs(got.Tone-tone) > 1 {
					t.Errorf("New(%v, %v, %v).Tone = %.2f", hue, chroma, tone, got.Tone)
				}
			}
		}
	}
}

func TestNewClipsChroma(t *testing.T) {
	got := New(282, 200, 50)
	if got.Chroma >= 200 {
		t.Errorf("Chroma = %v, want below the requested 200", got.Chroma)
	}
	if got.Chroma < 40 {
		t.Errorf("Chroma = %v, want the most chromatic in-gamut blue", got.Chroma)
	}
	if math.Abs(got.Tone-50) > 1 {
		t.Errorf("Tone = %v, want 50", got.Tone)
	}
}

func TestNewClampsInput(t *testing.T) {
	if got := New(0, 50, 150).ARGB(); got != 0xffffffff {
		t.Errorf("New(tone 150) = %v, want white", got)
	}
	if got := New(0, 50, -5).ARGB(); got != 0xff000000 {
		t.Errorf("New(tone -5) = %v, want black", got)
	}
	if got := New(0, -10, 50).ARGB(); !isGray(got) {
		t.Errorf("New(chroma -10) = %v, want gray", got)
	}
	a, b := New(-30, 40, 60), New(330, 40, 60)
	if a.ARGB() != b.ARGB() {
		t.Errorf("New(-30) = %v, New(330) = %v", a, b)
	}
}

// isGray reports whether every channel is equal. CAM16 gives neutral
// grays a small nonzero chroma, so chroma alone cannot tell.
func isGray(c color.ARGB) bool {
	return c.Red() == c.Green() && c.Green() == c.Blue()
}

// Rounding to 8-bit channels moves a solved color by up to about one
// chroma unit, so its hue drifts by roughly atan(1/chroma). The drift is
// small for saturated colors and several degrees near gray.
func TestNewHueDrift(t *testing.T) {
	for hue := 0.0; hue < 360; hue += 15 {
		for tone := 20.0; tone <= 80; tone += 10 {
			got := New(hue, 60, tone)
			if got.Chroma < 30 {
				continue
			}
			if d := DifferenceDegrees(hue, got.Hue); d > 5 {
				t.Errorf("New(%v, 60, %v) hue = %.2f, drift %.2f at chroma %.1f", hue, tone, got.Hue, d, got.Chroma)
			}
		}
	}

	// Near gray the drift is larger but still bounded.
	if got := New(238, 10, 25); DifferenceDegrees(238, got.Hue) > 15 {
		t.Errorf("New(238, 10, 25) hue = %.2f", got.Hue)
	}
}

func TestToneIsMonotonic(t *testing.T) {
	for _, hue := range []float64{25, 140, 282} {
		prev := -1.0
		for tone := 0.0; tone <= 100; tone += 5 {
			l := New(hue, 36, tone).ARGB().Lstar()
			if l < prev {
				t.Errorf("hue %v: tone %v has L* %.2f below previous %.2f", hue, tone, l, prev)
			}
			prev = l
		}
	}
}

func TestWith(t *testing.T) {
	c := New(120, 30, 50)
	if got := c.WithTone(80); math.Abs(got.Tone-80) > 1 {
		t.Errorf("WithTone(80).Tone = %v", got.Tone)
	}
	if got := c.WithHue(200); math.Abs(got.Hue-200) > 2 {
		t.Errorf("WithHue(200).Hue = %v", got.Hue)
	}
	if got := c.WithChroma(0); !isGray(got.ARGB()) {
		t.Errorf("WithChroma(0) = %v, want gray", got)
	}
}

func TestString(t *testing.T) {
	c := Color{Hue: 282.79, Chroma: 87.23, Tone: 32.3}
	if got, want := c.String(), "hct(282.8, 87.2, 32.3)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0}, {360, 0}, {-30, 330}, {725, 5}, {359.5, 359.5},
	}
	for _, tt := range tests {
		if got := SanitizeDegrees(tt.in); got != tt.want {
			t.Errorf("SanitizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := SanitizeDegreesInt(-420); got != 300 {
		t.Errorf("SanitizeDegreesInt(-420) = %v, want 300", got)
	}
	if got := DifferenceDegrees(350, 10); got != 20 {
		t.Errorf("DifferenceDegrees(350, 10) = %v, want 20", got)
	}
}
