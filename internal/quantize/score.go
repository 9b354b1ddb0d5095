package quantize

import (
	"cmp"
	"math"
	"slices"

	"github.com/jsvensson/tonal/internal/color"
	"github.com/jsvensson/tonal/internal/hct"
)

// DefaultFallback is returned by Score when there is nothing to score.
const DefaultFallback color.ARGB = 0xff4285f4

const (
	proportionWeight  = 0.7
	chromaWeightBelow = 0.1
	chromaWeightAbove = 0.3
	maxHueDifference  = 90
	minHueDifference  = 15
)

// ScoreOptions tune the seed heuristic.
type ScoreOptions struct {
	// Desired is the maximum number of colors returned.
	Desired int
	// Fallback is returned when every candidate is filtered out. The zero
	// value falls back to the most populous input color instead.
	Fallback color.ARGB
	// Filter drops candidates outside the chroma, tone and proportion
	// limits below.
	Filter bool

	MinChroma     float64
	MinTone       float64
	MaxTone       float64
	TargetChroma  float64
	MinProportion float64
}

// DefaultScoreOptions returns the standard thresholds with filtering on.
func DefaultScoreOptions() ScoreOptions {
	return ScoreOptions{
		Desired:       4,
		Filter:        true,
		MinChroma:     5,
		MinTone:       0,
		MaxTone:       100,
		TargetChroma:  48,
		MinProportion: 0.01,
	}
}

func (o ScoreOptions) normalized() ScoreOptions {
	if o.Desired < 1 {
		o.Desired = 4
	}
	o.MinChroma = max(o.MinChroma, 0)
	o.MinTone = min(max(o.MinTone, 0), 100)
	if o.MaxTone <= 0 || o.MaxTone > 100 {
		o.MaxTone = 100
	}
	if o.TargetChroma <= 0 {
		o.TargetChroma = 48
	}
	o.MinProportion = min(max(o.MinProportion, 0), 1)
	return o
}

type scored struct {
	hct   hct.Color
	argb  color.ARGB
	score float64
}

// Score ranks colors by their suitability as a theme seed: common hues
// and chroma near the target score higher. The returned colors have hues
// spread as far apart as possible. The result is never empty.
func Score(population map[color.ARGB]int, opts ScoreOptions) []color.ARGB {
	opts = opts.normalized()

	keys := make([]color.ARGB, 0, len(population))
	total := 0.0
	for c, n := range population {
		if n <= 0 {
			continue
		}
		keys = append(keys, c)
		total += float64(n)
	}
	slices.Sort(keys)
	if len(keys) == 0 {
		return []color.ARGB{fallback(population, keys, opts.Fallback)}
	}

	hcts := make([]hct.Color, len(keys))
	var huePopulation [360]float64
	for i, c := range keys {
		h := hct.FromARGB(c)
		hcts[i] = h
		huePopulation[int(math.Floor(h.Hue))%360] += float64(population[c])
	}

	// Each hue excites its neighbors within 14 degrees below and 15 above.
	var excited [360]float64
	for hue := range 360 {
		proportion := huePopulation[hue] / total
		if proportion == 0 {
			continue
		}
		for i := hue - 14; i < hue+16; i++ {
			excited[hct.SanitizeDegreesInt(i)] += proportion
		}
	}

	candidates := make([]scored, 0, len(keys))
	for i, h := range hcts {
		proportion := excited[hct.SanitizeDegreesInt(int(math.Round(h.Hue)))]
		if opts.Filter {
			if h.Chroma < opts.MinChroma || proportion <= opts.MinProportion {
				continue
			}
			if h.Tone < opts.MinTone || h.Tone > opts.MaxTone {
				continue
			}
		}
		chromaWeight := chromaWeightAbove
		if h.Chroma < opts.TargetChroma {
			chromaWeight = chromaWeightBelow
		}
		candidates = append(candidates, scored{
			hct:   h,
			argb:  keys[i],
			score: proportion*100*proportionWeight + (h.Chroma-opts.TargetChroma)*chromaWeight,
		})
	}
	slices.SortStableFunc(candidates, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	var chosen []scored
	for diff := maxHueDifference; diff >= minHueDifference; diff-- {
		chosen = chosen[:0]
		for _, c := range candidates {
			if !hasNearbyHue(chosen, c.hct.Hue, float64(diff)) {
				chosen = append(chosen, c)
			}
			if len(chosen) >= opts.Desired {
				break
			}
		}
		if len(chosen) >= opts.Desired {
			break
		}
	}

	if len(chosen) == 0 {
		return []color.ARGB{fallback(population, keys, opts.Fallback)}
	}
	out := make([]color.ARGB, len(chosen))
	for i, c := range chosen {
		out[i] = c.argb
	}
	return out
}

func hasNearbyHue(chosen []scored, hue, diff float64) bool {
	for _, c := range chosen {
		if hct.DifferenceDegrees(hue, c.hct.Hue) < diff {
			return true
		}
	}
	return false
}

// fallback returns the configured fallback, or the most populous color
// (lowest ARGB on ties), or DefaultFallback for an empty population.
func fallback(population map[color.ARGB]int, sortedKeys []color.ARGB, configured color.ARGB) color.ARGB {
	if configured != 0 {
		return configured
	}
	if len(sortedKeys) == 0 {
		return DefaultFallback
	}
	best := sortedKeys[0]
	for _, c := range sortedKeys[1:] {
		if population[c] > population[best] {
			best = c
		}
	}
	return best
}
