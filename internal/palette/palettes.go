package palette

import (
	"fmt"

	"github.com/jsvensson/tonal/internal/hct"
)

// FromSeed builds the palette for one role of a seed color.
func FromSeed(seed hct.Color, role Role, v Variant) *TonalPalette {
	s := v.derive(seed, role)
	return NewTonalPalette(s.hue, s.chroma)
}

// Palettes is the full set of six palettes derived from one seed.
type Palettes struct {
	Primary        *TonalPalette
	Secondary      *TonalPalette
	Tertiary       *TonalPalette
	Neutral        *TonalPalette
	NeutralVariant *TonalPalette
	Error          *TonalPalette
}

// Core derives all six palettes for the seed.
func Core(seed hct.Color, v Variant) Palettes {
	return Palettes{
		Primary:        FromSeed(seed, Primary, v),
		Secondary:      FromSeed(seed, Secondary, v),
		Tertiary:       FromSeed(seed, Tertiary, v),
		Neutral:        FromSeed(seed, Neutral, v),
		NeutralVariant: FromSeed(seed, NeutralVariant, v),
		Error:          FromSeed(seed, Error, v),
	}
}

// Get returns the palette for role. It panics on an unknown role.
func (p Palettes) Get(role Role) *TonalPalette {
	switch role {
	case Primary:
		return p.Primary
	case Secondary:
		return p.Secondary
	case Tertiary:
		return p.Tertiary
	case Neutral:
		return p.Neutral
	case NeutralVariant:
		return p.NeutralVariant
	case Error:
		return p.Error
	}
	panic(fmt.Sprintf("palette: unknown role %d", int(role)))
}
