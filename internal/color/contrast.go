package color

// ContrastRatio returns the WCAG contrast ratio between two colors, 1 to 21.
func ContrastRatio(a, b ARGB) float64 {
	return ToneContrastRatio(a.Lstar(), b.Lstar())
}

// ToneContrastRatio returns the contrast ratio between two tones. Tones are
// clamped to [0, 100].
func ToneContrastRatio(a, b float64) float64 {
	return ratioOfYs(YFromLstar(clampTone(a)), YFromLstar(clampTone(b)))
}

func ratioOfYs(a, b float64) float64 {
	lighter := max(a, b)
	darker := min(a, b)
	return (lighter + 5) / (darker + 5)
}

func clampTone(t float64) float64 {
	return min(max(t, 0), 100)
}
