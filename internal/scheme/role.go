package scheme

import "fmt"

// Role names one color of a scheme.
type Role int

const (
	Primary Role = iota
	OnPrimary
	PrimaryContainer
	OnPrimaryContainer
	InversePrimary
	PrimaryFixed
	PrimaryFixedDim
	OnPrimaryFixed
	OnPrimaryFixedVariant

	Secondary
	OnSecondary
	SecondaryContainer
	OnSecondaryContainer
	SecondaryFixed
	SecondaryFixedDim
	OnSecondaryFixed
	OnSecondaryFixedVariant

	Tertiary
	OnTertiary
	TertiaryContainer
	OnTertiaryContainer
	TertiaryFixed
	TertiaryFixedDim
	OnTertiaryFixed
	OnTertiaryFixedVariant

	Error
	OnError
	ErrorContainer
	OnErrorContainer

	Background
	OnBackground
	Surface
	OnSurface
	SurfaceDim
	SurfaceBright
	SurfaceContainerLowest
	SurfaceContainerLow
	SurfaceContainer
	SurfaceContainerHigh
	SurfaceContainerHighest
	SurfaceVariant
	OnSurfaceVariant
	InverseSurface
	InverseOnSurface
	SurfaceTint
	Outline
	OutlineVariant
	Shadow
	Scrim

	roleCount
)

var roleNames = [roleCount]string{
	Primary:               "primary",
	OnPrimary:             "onPrimary",
	PrimaryContainer:      "primaryContainer",
	OnPrimaryContainer:    "onPrimaryContainer",
	InversePrimary:        "inversePrimary",
	PrimaryFixed:          "primaryFixed",
	PrimaryFixedDim:       "primaryFixedDim",
	OnPrimaryFixed:        "onPrimaryFixed",
	OnPrimaryFixedVariant: "onPrimaryFixedVariant",

	Secondary:               "secondary",
	OnSecondary:             "onSecondary",
	SecondaryContainer:      "secondaryContainer",
	OnSecondaryContainer:    "onSecondaryContainer",
	SecondaryFixed:          "secondaryFixed",
	SecondaryFixedDim:       "secondaryFixedDim",
	OnSecondaryFixed:        "onSecondaryFixed",
	OnSecondaryFixedVariant: "onSecondaryFixedVariant",

	Tertiary:               "tertiary",
	OnTertiary:             "onTertiary",
	TertiaryContainer:      "tertiaryContainer",
	OnTertiaryContainer:    "onTertiaryContainer",
	TertiaryFixed:          "tertiaryFixed",
	TertiaryFixedDim:       "tertiaryFixedDim",
	OnTertiaryFixed:        "onTertiaryFixed",
	OnTertiaryFixedVariant: "onTertiaryFixedVariant",

	Error:            "error",
	OnError:          "onError",
	ErrorContainer:   "errorContainer",
	OnErrorContainer: "onErrorContainer",

	Background:              "background",
	OnBackground:            "onBackground",
	Surface:                 "surface",
	OnSurface:               "onSurface",
	SurfaceDim:              "surfaceDim",
	SurfaceBright:           "surfaceBright",
	SurfaceContainerLowest:  "surfaceContainerLowest",
	SurfaceContainerLow:     "surfaceContainerLow",
	SurfaceContainer:        "surfaceContainer",
	SurfaceContainerHigh:    "surfaceContainerHigh",
	SurfaceContainerHighest: "surfaceContainerHighest",
	SurfaceVariant:          "surfaceVariant",
	OnSurfaceVariant:        "onSurfaceVariant",
	InverseSurface:          "inverseSurface",
	InverseOnSurface:        "inverseOnSurface",
	SurfaceTint:             "surfaceTint",
	Outline:                 "outline",
	OutlineVariant:          "outlineVariant",
	Shadow:                  "shadow",
	Scrim:                   "scrim",
}

// Roles returns every role in declaration order.
func Roles() []Role {
	out := make([]Role, roleCount)
	for i := range out {
		out[i] = Role(i)
	}
	return out
}

// String returns the camelCase role name, e.g. "onPrimaryContainer".
func (r Role) String() string {
	if r >= 0 && r < roleCount {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// ParseRole looks up a role by its camelCase name.
func ParseRole(name string) (Role, bool) {
	for i, n := range roleNames {
		if n == name {
			return Role(i), true
		}
	}
	return 0, false
}
