// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hct

import (
	"math"

	"github.com/jsvensson/tonal/internal/color"
)

var xyzToCAM16RGB = [3][3]float64{
	{0.401288, 0.650173, -0.051461},
	{-0.250268, 1.204414, 0.045854},
	{-0.002079, 0.048952, 0.953127},
}

// ViewingConditions describe the environment a color is seen in.
// The derived fields are computed once by NewViewingConditions.
type ViewingConditions struct {
	WhitePoint        [3]float64
	AdaptingLuminance float64
	BackgroundLstar   float64
	Surround          float64
	Discounting       bool

	n, aw, nbb, ncb, c, nc, fl, flRoot, z float64
	rgbD                                  [3]float64
}

// DefaultViewingConditions are sRGB-like conditions: D65 white, a gray
// background at L* 50 and an average surround.
var DefaultViewingConditions = NewViewingConditions(
	color.WhitePointD65,
	(200.0/math.Pi)*color.YFromLstar(50.0)/100.0,
	50.0,
	2.0,
	false,
)

// NewViewingConditions computes the CAM16 parameters for the given environment.
func NewViewingConditions(whitePoint [3]float64, adaptingLuminance, backgroundLstar, surround float64, discounting bool) ViewingConditions {
	vc := ViewingConditions{
		WhitePoint:        whitePoint,
		AdaptingLuminance: adaptingLuminance,
		BackgroundLstar:   max(0.1, backgroundLstar),
		Surround:          min(max(surround, 0), 2),
		Discounting:       discounting,
	}

	rgbW := color.MatMul(whitePoint, xyzToCAM16RGB)

	f := 0.8 + vc.Surround/10.0
	if f >= 0.9 {
		vc.c = lerp(0.59, 0.69, (f-0.9)*10.0)
	} else {
		vc.c = lerp(0.525, 0.59, (f-0.8)*10.0)
	}
	d := 1.0
	if !discounting {
		d = f * (1.0 - (1.0/3.6)*math.Exp((-adaptingLuminance-42.0)/92.0))
	}
	d = min(max(d, 0), 1)
	vc.nc = f
	for i := range 3 {
		vc.rgbD[i] = d*(100.0/rgbW[i]) + 1.0 - d
	}

	k := 1.0 / (5.0*adaptingLuminance + 1.0)
	k4 := k * k * k * k
	k4F := 1.0 - k4
	vc.fl = k4*adaptingLuminance + 0.1*k4F*k4F*math.Cbrt(5.0*adaptingLuminance)
	vc.flRoot = math.Pow(vc.fl, 0.25)

	vc.n = color.YFromLstar(vc.BackgroundLstar) / whitePoint[1]
	vc.z = 1.48 + math.Sqrt(vc.n)
	vc.nbb = 0.725 / math.Pow(vc.n, 0.2)
	vc.ncb = vc.nbb

	var rgbA [3]float64
	for i := range 3 {
		factor := math.Pow(vc.fl*vc.rgbD[i]*rgbW[i]/100.0, 0.42)
		rgbA[i] = 400.0 * factor / (factor + 27.13)
	}
	vc.aw = (2.0*rgbA[0] + rgbA[1] + 0.05*rgbA[2]) * vc.nbb
	return vc
}

// CAM16 holds the appearance correlates of a color.
type CAM16 struct {
	Hue          float64 // h, degrees in [0, 360)
	Chroma       float64 // C
	J            float64 // lightness
	Q            float64 // brightness
	M            float64 // colorfulness
	S            float64 // saturation
	Jstar        float64 // CAM16-UCS J*
	Astar, Bstar float64 // CAM16-UCS a*, b*
}

// CAM16FromARGB returns the appearance of the color under the default
// viewing conditions.
func CAM16FromARGB(c color.ARGB) CAM16 {
	xyz := c.XYZ()
	return CAM16FromXYZ(xyz[0], xyz[1], xyz[2], DefaultViewingConditions)
}

// CAM16FromXYZ returns the appearance of XYZ coordinates (Y in 0-100)
// under the given viewing conditions.
func CAM16FromXYZ(x, y, z float64, vc ViewingConditions) CAM16 {
	rgbC := color.MatMul([3]float64{x, y, z}, xyzToCAM16RGB)

	var rgbA [3]float64
	for i := range 3 {
		dv := vc.rgbD[i] * rgbC[i]
		af := math.Pow(vc.fl*math.Abs(dv)/100.0, 0.42)
		rgbA[i] = signum(dv) * 400.0 * af / (af + 27.13)
	}
	rA, gA, bA := rgbA[0], rgbA[1], rgbA[2]

	// redness-greenness
	a := (11.0*rA + -12.0*gA + bA) / 11.0
	// yellowness-blueness
	b := (rA + gA - 2.0*bA) / 9.0

	u := (20.0*rA + 20.0*gA + 21.0*bA) / 20.0
	p2 := (40.0*rA + 20.0*gA + bA) / 20.0

	hue := SanitizeDegrees(toDegrees(math.Atan2(b, a)))
	hueRadians := toRadians(hue)

	ac := p2 * vc.nbb
	j := 100.0 * math.Pow(ac/vc.aw, vc.c*vc.z)
	q := (4.0 / vc.c) * math.Sqrt(j/100.0) * (vc.aw + 4.0) * vc.flRoot

	huePrime := hue
	if hue < 20.14 {
		huePrime = hue + 360
	}
	eHue := 0.25 * (math.Cos(toRadians(huePrime)+2.0) + 3.8)
	p1 := 50000.0 / 13.0 * eHue * vc.nc * vc.ncb
	t := p1 * math.Hypot(a, b) / (u + 0.305)
	alpha := math.Pow(1.64-math.Pow(0.29, vc.n), 0.73) * math.Pow(t, 0.9)
	chroma := alpha * math.Sqrt(j/100.0)
	m := chroma * vc.flRoot
	s := 50.0 * math.Sqrt((alpha*vc.c)/(vc.aw+4.0))

	jstar := (1.0 + 100.0*0.007) * j / (1.0 + 0.007*j)
	mstar := 1.0 / 0.0228 * math.Log1p(0.0228*m)

	return CAM16{
		Hue:    hue,
		Chroma: chroma,
		J:      j,
		Q:      q,
		M:      m,
		S:      s,
		Jstar:  jstar,
		Astar:  mstar * math.Cos(hueRadians),
		Bstar:  mstar * math.Sin(hueRadians),
	}
}
