// Package scheme maps palettes onto the named color roles of a light or
// dark scheme.
package scheme

import (
	"fmt"

	"github.com/jsvensson/tonal/internal/color"
	"github.com/jsvensson/tonal/internal/palette"
)

// Mode selects the light or dark table.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// entry is the palette and tone one role is drawn from.
type entry struct {
	palette palette.Role
	tone    float64
}

var lightTable = [roleCount]entry{
	Primary:               {palette.Primary, 40},
	OnPrimary:             {palette.Primary, 100},
	PrimaryContainer:      {palette.Primary, 90},
	OnPrimaryContainer:    {palette.Primary, 10},
	InversePrimary:        {palette.Primary, 80},
	PrimaryFixed:          {palette.Primary, 90},
	PrimaryFixedDim:       {palette.Primary, 80},
	OnPrimaryFixed:        {palette.Primary, 10},
	OnPrimaryFixedVariant: {palette.Primary, 30},

	Secondary:               {palette.Secondary, 40},
	OnSecondary:             {palette.Secondary, 100},
	SecondaryContainer:      {palette.Secondary, 90},
	OnSecondaryContainer:    {palette.Secondary, 10},
	SecondaryFixed:          {palette.Secondary, 90},
	SecondaryFixedDim:       {palette.Secondary, 80},
	OnSecondaryFixed:        {palette.Secondary, 10},
	OnSecondaryFixedVariant: {palette.Secondary, 30},

	Tertiary:               {palette.Tertiary, 40},
	OnTertiary:             {palette.Tertiary, 100},
	TertiaryContainer:      {palette.Tertiary, 90},
	OnTertiaryContainer:    {palette.Tertiary, 10},
	TertiaryFixed:          {palette.Tertiary, 90},
	TertiaryFixedDim:       {palette.Tertiary, 80},
	OnTertiaryFixed:        {palette.Tertiary, 10},
	OnTertiaryFixedVariant: {palette.Tertiary, 30},

	Error:            {palette.Error, 40},
	OnError:          {palette.Error, 100},
	ErrorContainer:   {palette.Error, 90},
	OnErrorContainer: {palette.Error, 10},

	Background:              {palette.Neutral, 98},
	OnBackground:            {palette.Neutral, 10},
	Surface:                 {palette.Neutral, 98},
	OnSurface:               {palette.Neutral, 10},
	SurfaceDim:              {palette.Neutral, 87},
	SurfaceBright:           {palette.Neutral, 98},
	SurfaceContainerLowest:  {palette.Neutral, 100},
	SurfaceContainerLow:     {palette.Neutral, 96},
	SurfaceContainer:        {palette.Neutral, 94},
	SurfaceContainerHigh:    {palette.Neutral, 92},
	SurfaceContainerHighest: {palette.Neutral, 90},
	SurfaceVariant:          {palette.NeutralVariant, 90},
	OnSurfaceVariant:        {palette.NeutralVariant, 30},
	InverseSurface:          {palette.Neutral, 20},
	InverseOnSurface:        {palette.Neutral, 95},
	SurfaceTint:             {palette.Primary, 40},
	Outline:                 {palette.NeutralVariant, 50},
	OutlineVariant:          {palette.NeutralVariant, 80},
	Shadow:                  {palette.Neutral, 0},
	Scrim:                   {palette.Neutral, 0},
}

var darkTable = [roleCount]entry{
	Primary:               {palette.Primary, 80},
	OnPrimary:             {palette.Primary, 20},
	PrimaryContainer:      {palette.Primary, 30},
	OnPrimaryContainer:    {palette.Primary, 90},
	InversePrimary:        {palette.Primary, 40},
	PrimaryFixed:          {palette.Primary, 90},
	PrimaryFixedDim:       {palette.Primary, 80},
	OnPrimaryFixed:        {palette.Primary, 10},
	OnPrimaryFixedVariant: {palette.Primary, 30},

	Secondary:               {palette.Secondary, 80},
	OnSecondary:             {palette.Secondary, 20},
	SecondaryContainer:      {palette.Secondary, 30},
	OnSecondaryContainer:    {palette.Secondary, 90},
	SecondaryFixed:          {palette.Secondary, 90},
	SecondaryFixedDim:       {palette.Secondary, 80},
	OnSecondaryFixed:        {palette.Secondary, 10},
	OnSecondaryFixedVariant: {palette.Secondary, 30},

	Tertiary:               {palette.Tertiary, 80},
	OnTertiary:             {palette.Tertiary, 20},
	TertiaryContainer:      {palette.Tertiary, 30},
	OnTertiaryContainer:    {palette.Tertiary, 90},
	TertiaryFixed:          {palette.Tertiary, 90},
	TertiaryFixedDim:       {palette.Tertiary, 80},
	OnTertiaryFixed:        {palette.Tertiary, 10},
	OnTertiaryFixedVariant: {palette.Tertiary, 30},

	Error:            {palette.Error, 80},
	OnError:          {palette.Error, 20},
	ErrorContainer:   {palette.Error, 30},
	OnErrorContainer: {palette.Error, 90},

	Background:              {palette.Neutral, 6},
	OnBackground:            {palette.Neutral, 90},
	Surface:                 {palette.Neutral, 6},
	OnSurface:               {palette.Neutral, 90},
	SurfaceDim:              {palette.Neutral, 6},
	SurfaceBright:           {palette.Neutral, 24},
	SurfaceContainerLowest:  {palette.Neutral, 4},
	SurfaceContainerLow:     {palette.Neutral, 10},
	SurfaceContainer:        {palette.Neutral, 12},
	SurfaceContainerHigh:    {palette.Neutral, 17},
	SurfaceContainerHighest: {palette.Neutral, 22},
	SurfaceVariant:          {palette.NeutralVariant, 30},
	OnSurfaceVariant:        {palette.NeutralVariant, 80},
	InverseSurface:          {palette.Neutral, 90},
	InverseOnSurface:        {palette.Neutral, 20},
	SurfaceTint:             {palette.Primary, 80},
	Outline:                 {palette.NeutralVariant, 60},
	OutlineVariant:          {palette.NeutralVariant, 30},
	Shadow:                  {palette.Neutral, 0},
	Scrim:                   {palette.Neutral, 0},
}

// A zero palette role marks a row left out of a table.
func init() {
	for _, table := range []*[roleCount]entry{&lightTable, &darkTable} {
		for r, e := range table {
			if e.palette == 0 {
				panic(fmt.Sprintf("scheme: role %v has no table entry", Role(r)))
			}
		}
	}
}

// Scheme is one color per role for a single mode.
type Scheme struct {
	Mode   Mode
	colors [roleCount]color.ARGB
}

// Build projects the palettes through the table for mode.
func Build(p palette.Palettes, mode Mode) Scheme {
	table := &lightTable
	if mode == Dark {
		table = &darkTable
	}
	s := Scheme{Mode: mode}
	for r, e := range table {
		s.colors[r] = p.Get(e.palette).Tone(e.tone)
	}
	return s
}

// Color returns the color of role. It panics on a role outside Roles.
func (s Scheme) Color(role Role) color.ARGB {
	return s.colors[role]
}

// RoleColor pairs a role with its color.
type RoleColor struct {
	Role  Role
	Color color.ARGB
}

// All returns every role with its color in declaration order.
func (s Scheme) All() []RoleColor {
	out := make([]RoleColor, roleCount)
	for r := range roleCount {
		out[r] = RoleColor{Role: r, Color: s.colors[r]}
	}
	return out
}

// Map returns the scheme keyed by role name.
func (s Scheme) Map() map[string]color.ARGB {
	out := make(map[string]color.ARGB, roleCount)
	for r := range roleCount {
		out[r.String()] = s.colors[r]
	}
	return out
}
