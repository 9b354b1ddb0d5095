package quantize

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsvensson/tonal/internal/color"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name       string
		population map[color.ARGB]int
		opts       ScoreOptions
		want       []color.ARGB
	}{
		{
			name:       "prefers the dominant chromatic color",
			population: map[color.ARGB]int{red: 3, blue: 1},
			opts:       DefaultScoreOptions(),
			want:       []color.ARGB{red, blue},
		},
		{
			name:       "drops grays",
			population: map[color.ARGB]int{0xff808080: 50, blue: 1},
			opts:       DefaultScoreOptions(),
			want:       []color.ARGB{blue},
		},
		{
			name:       "desired limits the count",
			population: map[color.ARGB]int{red: 1, green: 1, blue: 1},
			opts:       ScoreOptions{Desired: 1, Filter: true, MinChroma: 5, MaxTone: 100, TargetChroma: 48, MinProportion: 0.01},
			want:       []color.ARGB{red},
		},
		{
			name:       "falls back to the most populous color",
			population: map[color.ARGB]int{0xff101010: 1, 0xfff0f0f0: 5},
			opts:       DefaultScoreOptions(),
			want:       []color.ARGB{0xfff0f0f0},
		},
		{
			name:       "configured fallback",
			population: map[color.ARGB]int{0xff808080: 5},
			opts: func() ScoreOptions {
				o := DefaultScoreOptions()
				o.Fallback = 0xff123456
				return o
			}(),
			want: []color.ARGB{0xff123456},
		},
		{
			name:       "empty population",
			population: nil,
			opts:       DefaultScoreOptions(),
			want:       []color.ARGB{DefaultFallback},
		},
		{
			name:       "unfiltered keeps grays",
			population: map[color.ARGB]int{0xff808080: 5},
			opts:       ScoreOptions{},
			want:       []color.ARGB{0xff808080},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.population, tt.opts)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Score() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScoreToneLimits(t *testing.T) {
	// A pale yellow that passes the chroma cutoff but sits near white.
	const pale color.ARGB = 0xfffff59d
	population := map[color.ARGB]int{pale: 10, blue: 1}

	if got := Score(population, DefaultScoreOptions()); got[0] != pale {
		t.Errorf("Score() = %v, want %v first", got, pale)
	}

	opts := DefaultScoreOptions()
	opts.MaxTone = 90
	if diff := cmp.Diff([]color.ARGB{blue}, Score(population, opts)); diff != "" {
		t.Errorf("Score(MaxTone 90) mismatch (-want +got):\n%s", diff)
	}
}

func TestScoreNeverEmpty(t *testing.T) {
	populations := []map[color.ARGB]int{
		nil,
		{},
		{0xff000000: 1},
		{0xffffffff: 1, 0xff000000: 1},
		{red: 0},
	}
	for _, p := range populations {
		if got := Score(p, DefaultScoreOptions()); len(got) == 0 {
			t.Errorf("Score(%v) returned no colors", p)
		}
	}
}
