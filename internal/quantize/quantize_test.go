package quantize

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsvensson/tonal/internal/color"
)

const (
	red   color.ARGB = 0xffff0000
	green color.ARGB = 0xff00ff00
	blue  color.ARGB = 0xff0000ff
)

func repeat(c color.ARGB, n int) []color.ARGB {
	out := make([]color.ARGB, n)
	for i := range out {
		out[i] = c
	}
	return out
}

// gradient returns pixels spread over many distinct colors, with uneven
// counts.
func gradient(n int) []color.ARGB {
	out := make([]color.ARGB, 0, n)
	for i := range n {
		r := uint8(i * 7)
		g := uint8(i * 13 / 5)
		b := uint8(255 - i*3)
		out = append(out, color.FromRGB(r, g, b))
		if i%5 == 0 {
			out = append(out, color.FromRGB(r, g, b))
		}
	}
	return out
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		name      string
		pixels    []color.ARGB
		maxColors int
		want      Result
	}{
		{
			name:      "three red one blue",
			pixels:    []color.ARGB{red, red, blue, red},
			maxColors: 2,
			want:      Result{red: 3, blue: 1},
		},
		{
			name:      "identical pixels",
			pixels:    repeat(green, 100),
			maxColors: 128,
			want:      Result{green: 100},
		},
		{
			name:      "fewer distinct colors than max",
			pixels:    []color.ARGB{red, green, blue, blue},
			maxColors: 16,
			want:      Result{red: 1, green: 1, blue: 2},
		},
		{
			name:      "translucent pixels ignored",
			pixels:    []color.ARGB{red, 0x80ff0000, 0x00000000},
			maxColors: 4,
			want:      Result{red: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Quantize(context.Background(), tt.pixels, tt.maxColors)
			if err != nil {
				t.Fatalf("Quantize() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Quantize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQuantizeRanksByWeight(t *testing.T) {
	got, err := Quantize(context.Background(), []color.ARGB{red, red, blue, red}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]color.ARGB{red, blue}, got.Colors()); diff != "" {
		t.Errorf("Colors() mismatch (-want +got):\n%s", diff)
	}
}

func TestQuantizeInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		pixels    []color.ARGB
		maxColors int
	}{
		{"empty", nil, 8},
		{"only transparent", []color.ARGB{0x00ffffff}, 8},
		{"zero max colors", []color.ARGB{red}, 0},
		{"negative max colors", []color.ARGB{red}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Quantize(context.Background(), tt.pixels, tt.maxColors)
			if !errors.Is(err, color.ErrInvalidInput) {
				t.Errorf("Quantize() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestQuantizeClusters(t *testing.T) {
	pixels := gradient(3000)
	for _, maxColors := range []int{1, 4, 16, 128} {
		got, err := Quantize(context.Background(), pixels, maxColors)
		if err != nil {
			t.Fatalf("Quantize(%d) error = %v", maxColors, err)
		}
		if len(got) == 0 || len(got) > maxColors {
			t.Errorf("Quantize(%d) returned %d colors", maxColors, len(got))
		}
		if got.Total() != len(pixels) {
			t.Errorf("Quantize(%d) total weight = %d, want %d", maxColors, got.Total(), len(pixels))
		}
	}
}

func TestQuantizeOrderIndependent(t *testing.T) {
	pixels := gradient(2000)
	want, err := Quantize(context.Background(), pixels, 12)
	if err != nil {
		t.Fatal(err)
	}

	shuffled := append([]color.ARGB(nil), pixels...)
	rng := rand.New(rand.NewPCG(1, 2))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	got, err := Quantize(context.Background(), shuffled, 12)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("shuffled input changed result (-want +got):\n%s", diff)
	}
}

func TestQuantizeWorkerCount(t *testing.T) {
	// Enough distinct colors that eight workers each get a partition.
	var pixels []color.ARGB
	for r := 0; r < 256; r += 8 {
		for g := 0; g < 256; g += 8 {
			for b := 0; b < 256; b += 16 {
				pixels = append(pixels, color.FromRGB(uint8(r), uint8(g), uint8(b)))
			}
		}
	}

	sequential, err := Quantize(context.Background(), pixels, 32, WithWorkers(1))
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := Quantize(context.Background(), pixels, 32, WithWorkers(8))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sequential, parallel); diff != "" {
		t.Errorf("worker count changed result (-1 worker +8 workers):\n%s", diff)
	}
}

func TestQuantizeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Quantize(ctx, gradient(500), 4)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Quantize() error = %v, want context.Canceled", err)
	}
}

func TestSplitRange(t *testing.T) {
	covered := 0
	prevEnd := 0
	for i := range 3 {
		start, end := splitRange(10, 3, i)
		if start != prevEnd {
			t.Errorf("partition %d starts at %d, want %d", i, start, prevEnd)
		}
		covered += end - start
		prevEnd = end
	}
	if covered != 10 {
		t.Errorf("partitions cover %d items, want 10", covered)
	}
}

func TestWuSeparatesClusters(t *testing.T) {
	population := map[color.ARGB]int{
		0xffff0000: 10, 0xfffe0101: 10,
		0xff0000ff: 10, 0xff0101fe: 10,
	}
	got := wuQuantize(population, 2)
	if len(got) != 2 {
		t.Fatalf("wuQuantize() = %v, want 2 colors", got)
	}
	if got[0].Red() < 200 && got[1].Red() < 200 {
		t.Errorf("wuQuantize() = %v, want one red centroid", got)
	}
}
