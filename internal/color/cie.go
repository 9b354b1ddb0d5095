package color

import "math"

// WhitePointD65 is the standard D65 white point in XYZ, scaled so Y = 100.
var WhitePointD65 = [3]float64{95.047, 100.0, 108.883}

var (
	srgbToXYZ = [3][3]float64{
		{0.41233895, 0.35762064, 0.18051042},
		{0.2126, 0.7152, 0.0722},
		{0.01932141, 0.11916382, 0.95034478},
	}
	xyzToSRGB = [3][3]float64{
		{3.2413774792388685, -1.5376652402851851, -0.49885366846268053},
		{-0.9691452513005321, 1.8758853451067872, 0.04156585616912061},
		{0.05562093689691305, -0.20395524564742123, 1.0571799111220335},
	}
)

// Linearized converts an 8-bit sRGB channel to linear RGB in [0, 100].
func Linearized(channel uint8) float64 {
	normalized := float64(channel) / 255.0
	if normalized <= 0.040449936 {
		return normalized / 12.92 * 100.0
	}
	return math.Pow((normalized+0.055)/1.055, 2.4) * 100.0
}

// Delinearized converts a linear RGB component in [0, 100] to an 8-bit
// sRGB channel, rounding and clamping.
func Delinearized(component float64) uint8 {
	normalized := component / 100.0
	var v float64
	if normalized <= 0.0031308 {
		v = normalized * 12.92
	} else {
		v = 1.055*math.Pow(normalized, 1.0/2.4) - 0.055
	}
	return clampChannel(math.Round(v * 255.0))
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// MatMul multiplies a row vector by a 3x3 matrix.
func MatMul(v [3]float64, m [3][3]float64) [3]float64 {
	return [3]float64{
		v[0]*m[0][0] + v[1]*m[0][1] + v[2]*m[0][2],
		v[0]*m[1][0] + v[1]*m[1][1] + v[2]*m[1][2],
		v[0]*m[2][0] + v[1]*m[2][1] + v[2]*m[2][2],
	}
}

// FromLinRGB converts linear RGB components in [0, 100] to an opaque color.
func FromLinRGB(linrgb [3]float64) ARGB {
	return FromRGB(Delinearized(linrgb[0]), Delinearized(linrgb[1]), Delinearized(linrgb[2]))
}

// XYZ returns the CIE XYZ coordinates of the color, Y in [0, 100].
func (c ARGB) XYZ() [3]float64 {
	return MatMul([3]float64{Linearized(c.Red()), Linearized(c.Green()), Linearized(c.Blue())}, srgbToXYZ)
}

// FromXYZ converts CIE XYZ coordinates to an opaque color, clamping out of
// gamut components.
func FromXYZ(x, y, z float64) ARGB {
	return FromLinRGB(MatMul([3]float64{x, y, z}, xyzToSRGB))
}

// Lab returns the CIE L*a*b* coordinates of the color under D65.
func (c ARGB) Lab() (l, a, b float64) {
	xyz := c.XYZ()
	fx := labF(xyz[0] / WhitePointD65[0])
	fy := labF(xyz[1] / WhitePointD65[1])
	fz := labF(xyz[2] / WhitePointD65[2])
	return 116.0*fy - 16.0, 500.0 * (fx - fy), 200.0 * (fy - fz)
}

// FromLab converts CIE L*a*b* coordinates under D65 to an opaque color.
func FromLab(l, a, b float64) ARGB {
	fy := (l + 16.0) / 116.0
	fx := a/500.0 + fy
	fz := fy - b/200.0
	return FromXYZ(
		labInvF(fx)*WhitePointD65[0],
		labInvF(fy)*WhitePointD65[1],
		labInvF(fz)*WhitePointD65[2],
	)
}

// Lstar returns the L* (perceptual lightness) of the color, 0 to 100.
func (c ARGB) Lstar() float64 {
	return LstarFromY(c.XYZ()[1])
}

// FromLstar returns the gray with the given L*.
func FromLstar(lstar float64) ARGB {
	v := Delinearized(YFromLstar(lstar))
	return FromRGB(v, v, v)
}

// YFromLstar converts an L* value to the Y of XYZ, both on a 0-100 scale.
func YFromLstar(lstar float64) float64 {
	return 100.0 * labInvF((lstar+16.0)/116.0)
}

// LstarFromY converts a Y value of XYZ to L*, both on a 0-100 scale.
func LstarFromY(y float64) float64 {
	return labF(y/100.0)*116.0 - 16.0
}

func labF(t float64) float64 {
	const e = 216.0 / 24389.0
	const kappa = 24389.0 / 27.0
	if t > e {
		return math.Cbrt(t)
	}
	return (kappa*t + 16) / 116
}

func labInvF(ft float64) float64 {
	const e = 216.0 / 24389.0
	const kappa = 24389.0 / 27.0
	ft3 := ft * ft * ft
	if ft3 > e {
		return ft3
	}
	return (116*ft - 16) / kappa
}
