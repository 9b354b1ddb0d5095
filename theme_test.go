package tonal

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsvensson/tonal/internal/hct"
	"github.com/jsvensson/tonal/internal/scheme"
)

func TestFromSeedBlue(t *testing.T) {
	th := FromSeed(0xff0000ff)

	if math.Abs(th.Seed.Hue-282) > 5 {
		t.Errorf("seed hue = %.2f, want 282 +- 5", th.Seed.Hue)
	}

	primary := th.Light.Color(scheme.Primary)
	h := hct.FromARGB(primary)
	if math.Abs(h.Hue-282) > 5 {
		t.Errorf("light primary hue = %.2f, want 282 +- 5", h.Hue)
	}
	if math.Abs(h.Tone-40) > 5 {
		t.Errorf("light primary tone = %.2f, want 40 +- 5", h.Tone)
	}
	if want := th.Palettes.Primary.Tone(40); primary != want {
		t.Errorf("light primary = %v, want primary palette tone 40 %v", primary, want)
	}
	if got, want := th.Dark.Color(scheme.Primary), th.Palettes.Primary.Tone(80); got != want {
		t.Errorf("dark primary = %v, want %v", got, want)
	}
}

func TestFromSeedOptions(t *testing.T) {
	spot := FromSeed(0xff6750a4)
	mono := FromSeed(0xff6750a4, WithVariant(Monochrome))
	if spot.Variant != TonalSpot || mono.Variant != Monochrome {
		t.Fatalf("variants = %v, %v", spot.Variant, mono.Variant)
	}
	if c := hct.FromARGB(mono.Light.Color(scheme.Primary)).Chroma; c > 2 {
		t.Errorf("monochrome primary chroma = %.2f, want gray", c)
	}
	if spot.Light.Color(scheme.Primary) == mono.Light.Color(scheme.Primary) {
		t.Error("variant did not change the primary color")
	}
}

func TestThemeScheme(t *testing.T) {
	th := FromSeed(0xffeb6f92)
	if th.Scheme(true).Mode != scheme.Dark || th.Scheme(false).Mode != scheme.Light {
		t.Error("Scheme() returned the wrong mode")
	}
}

func TestFromImage(t *testing.T) {
	pixels := []ARGB{0xffff0000, 0xffff0000, 0xff0000ff, 0xffff0000}
	th, err := FromImage(context.Background(), pixels, WithMaxColors(2))
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if th.Source != 0xffff0000 {
		t.Errorf("Source = %v, want red", th.Source)
	}
	if diff := cmp.Diff(FromSeed(0xffff0000).Light.Map(), th.Light.Map()); diff != "" {
		t.Errorf("image theme differs from seed theme (-seed +image):\n%s", diff)
	}
}

func TestFromImageGrayFallsBack(t *testing.T) {
	pixels := make([]ARGB, 100)
	for i := range pixels {
		pixels[i] = 0xff808080
	}
	seed, err := SeedFromImage(context.Background(), pixels)
	if err != nil {
		t.Fatal(err)
	}
	if seed != 0xff808080 {
		t.Errorf("seed = %v, want the dominant gray", seed)
	}
}

func TestFromImageInvalid(t *testing.T) {
	tests := []struct {
		name   string
		pixels []ARGB
		opts   []Option
	}{
		{"nil", nil, nil},
		{"empty", []ARGB{}, nil},
		{"transparent", []ARGB{0x00ff0000}, nil},
		{"zero max colors", []ARGB{0xffff0000}, []Option{WithMaxColors(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := FromImage(context.Background(), tt.pixels, tt.opts...)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("FromImage() error = %v, want ErrInvalidInput", err)
			}
			if th != nil {
				t.Error("FromImage() returned a theme with an error")
			}
		})
	}
}
