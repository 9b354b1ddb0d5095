package palette

import (
	"fmt"
	"strings"

	"github.com/jsvensson/tonal/internal/color"
	"github.com/jsvensson/tonal/internal/hct"
)

// Role identifies one of the six palettes of a theme.
type Role int

const (
	Primary Role = iota + 1
	Secondary
	Tertiary
	Neutral
	NeutralVariant
	Error
)

// Roles lists every palette role in order.
var Roles = [...]Role{Primary, Secondary, Tertiary, Neutral, NeutralVariant, Error}

var roleNames = map[Role]string{
	Primary:        "primary",
	Secondary:      "secondary",
	Tertiary:       "tertiary",
	Neutral:        "neutral",
	NeutralVariant: "neutral_variant",
	Error:          "error",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Variant selects how the six palettes are derived from the seed.
type Variant int

const (
	// TonalSpot is a calm, low chroma theme anchored on the seed hue.
	TonalSpot Variant = iota
	// Content keeps the seed's own chroma for the primary palette.
	Content
	Vibrant
	Expressive
	// VariantNeutral is nearly grayscale with a hint of the seed hue.
	VariantNeutral
	Monochrome
)

var variantNames = [...]string{
	TonalSpot:      "tonal_spot",
	Content:        "content",
	Vibrant:        "vibrant",
	Expressive:     "expressive",
	VariantNeutral: "neutral",
	Monochrome:     "monochrome",
}

func (v Variant) String() string {
	if v >= 0 && int(v) < len(variantNames) {
		return variantNames[v]
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// VariantNames returns the accepted variant names.
func VariantNames() []string {
	return append([]string(nil), variantNames[:]...)
}

// ParseVariant parses a variant name such as "tonal_spot". Hyphens and
// case are ignored; the empty string is TonalSpot.
func ParseVariant(s string) (Variant, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if name == "" {
		return TonalSpot, nil
	}
	for v, n := range variantNames {
		if n == name {
			return Variant(v), nil
		}
	}
	return 0, fmt.Errorf("unknown variant %q (want one of %s): %w",
		s, strings.Join(variantNames[:], ", "), color.ErrInvalidInput)
}

// Hue breakpoints and rotations for the Vibrant and Expressive accents.
var (
	rotationHues = [...]float64{0, 41, 61, 101, 131, 181, 251, 301, 360}

	vibrantSecondary    = [...]float64{18, 15, 10, 12, 15, 18, 15, 12, 12}
	vibrantTertiary     = [...]float64{35, 30, 20, 25, 30, 35, 30, 25, 25}
	expressiveSecondary = [...]float64{45, 95, 45, 20, 45, 90, 45, 45, 45}
	expressiveTertiary  = [...]float64{120, 120, 20, 45, 20, 15, 20, 120, 120}
)

// rotate returns the seed hue shifted by the rotation of the band it
// falls in. Hues on a breakpoint are not rotated.
func rotate(hue float64, rotations [9]float64) float64 {
	for i := range len(rotationHues) - 1 {
		if hue > rotationHues[i] && hue < rotationHues[i+1] {
			return hct.SanitizeDegrees(hue + rotations[i])
		}
	}
	return hue
}

// spec is the hue and chroma a palette role takes for a seed.
type spec struct {
	hue, chroma float64
}

// derive returns the palette hue and chroma for role under v.
func (v Variant) derive(seed hct.Color, role Role) spec {
	h, c := seed.Hue, seed.Chroma
	if role == Error {
		return spec{25, 84}
	}
	switch v {
	case Content:
		return pick(role,
			spec{h, max(c, 48)}, spec{h, 16}, spec{h + 60, 24}, spec{h, 4}, spec{h, 8})
	case Vibrant:
		return pick(role,
			spec{h, 200},
			spec{rotate(h, vibrantSecondary), 24},
			spec{rotate(h, vibrantTertiary), 32},
			spec{h, 10}, spec{h, 12})
	case Expressive:
		return pick(role,
			spec{h + 240, 40},
			spec{rotate(h, expressiveSecondary), 24},
			spec{rotate(h, expressiveTertiary), 32},
			spec{h + 15, 8}, spec{h + 15, 12})
	case VariantNeutral:
		return pick(role,
			spec{h, 12}, spec{h, 8}, spec{h + 60, 16}, spec{h, 2}, spec{h, 2})
	case Monochrome:
		return spec{h, 0}
	default:
		return pick(role,
			spec{h, 36}, spec{h, 16}, spec{h + 60, 24}, spec{h, 6}, spec{h, 8})
	}
}

func pick(role Role, primary, secondary, tertiary, neutral, neutralVariant spec) spec {
	switch role {
	case Primary:
		return primary
	case Secondary:
		return secondary
	case Tertiary:
		return tertiary
	case Neutral:
		return neutral
	default:
		return neutralVariant
	}
}
