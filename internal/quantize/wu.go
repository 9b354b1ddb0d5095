package quantize

import "github.com/jsvensson/tonal/internal/color"

// Wu's color quantizer: a histogram over a 5-bit RGB cube, summed into
// cumulative moments, then cut into boxes along the axis that minimizes
// the remaining variance.
const (
	wuIndexBits  = 5
	wuSideLength = 1<<wuIndexBits + 1
	wuTotalSize  = wuSideLength * wuSideLength * wuSideLength
)

type axis int

const (
	axisRed axis = iota
	axisGreen
	axisBlue
)

type box struct {
	r0, r1 int
	g0, g1 int
	b0, b1 int
	vol    int
}

type wu struct {
	weights  []float64
	momentsR []float64
	momentsG []float64
	momentsB []float64
	moments  []float64
	cubes    []box
}

func wuIndex(r, g, b int) int {
	return r*wuSideLength*wuSideLength + g*wuSideLength + b
}

// wuQuantize returns at most maxColors box means for the population.
func wuQuantize(population map[color.ARGB]int, maxColors int) []color.ARGB {
	w := &wu{
		weights:  make([]float64, wuTotalSize),
		momentsR: make([]float64, wuTotalSize),
		momentsG: make([]float64, wuTotalSize),
		momentsB: make([]float64, wuTotalSize),
		moments:  make([]float64, wuTotalSize),
	}
	w.histogram(population)
	w.cumulate()
	n := w.createBoxes(maxColors)
	return w.means(n)
}

func (w *wu) histogram(population map[color.ARGB]int) {
	for c, count := range population {
		r, g, b := int(c.Red()), int(c.Green()), int(c.Blue())
		const shift = 8 - wuIndexBits
		idx := wuIndex(r>>shift+1, g>>shift+1, b>>shift+1)
		n := float64(count)
		w.weights[idx] += n
		w.momentsR[idx] += n * float64(r)
		w.momentsG[idx] += n * float64(g)
		w.momentsB[idx] += n * float64(b)
		w.moments[idx] += n * float64(r*r+g*g+b*b)
	}
}

func (w *wu) cumulate() {
	for r := 1; r < wuSideLength; r++ {
		var area, areaR, areaG, areaB, area2 [wuSideLength]float64
		for g := 1; g < wuSideLength; g++ {
			var line, lineR, lineG, lineB, line2 float64
			for b := 1; b < wuSideLength; b++ {
				idx := wuIndex(r, g, b)
				line += w.weights[idx]
				lineR += w.momentsR[idx]
				lineG += w.momentsG[idx]
				lineB += w.momentsB[idx]
				line2 += w.moments[idx]

				area[b] += line
				areaR[b] += lineR
				areaG[b] += lineG
				areaB[b] += lineB
				area2[b] += line2

				prev := wuIndex(r-1, g, b)
				w.weights[idx] = w.weights[prev] + area[b]
				w.momentsR[idx] = w.momentsR[prev] + areaR[b]
				w.momentsG[idx] = w.momentsG[prev] + areaG[b]
				w.momentsB[idx] = w.momentsB[prev] + areaB[b]
				w.moments[idx] = w.moments[prev] + area2[b]
			}
		}
	}
}

func (w *wu) createBoxes(maxColors int) int {
	w.cubes = make([]box, maxColors)
	w.cubes[0] = box{r1: wuSideLength - 1, g1: wuSideLength - 1, b1: wuSideLength - 1}
	variances := make([]float64, maxColors)

	generated := maxColors
	next := 0
	for i := 1; i < maxColors; i++ {
		if w.cut(&w.cubes[next], &w.cubes[i]) {
			variances[next] = w.variance(w.cubes[next])
			variances[i] = w.variance(w.cubes[i])
		} else {
			variances[next] = 0
			i--
		}

		next = 0
		best := variances[0]
		for j := 1; j <= i; j++ {
			if variances[j] > best {
				best = variances[j]
				next = j
			}
		}
		if best <= 0 {
			generated = i + 1
			break
		}
	}
	return generated
}

func (w *wu) means(n int) []color.ARGB {
	out := make([]color.ARGB, 0, n)
	for i := range n {
		cube := w.cubes[i]
		weight := volume(cube, w.weights)
		if weight <= 0 {
			continue
		}
		r := volume(cube, w.momentsR) / weight
		g := volume(cube, w.momentsG) / weight
		b := volume(cube, w.momentsB) / weight
		out = append(out, color.FromRGB(uint8(r), uint8(g), uint8(b)))
	}
	return out
}

func (w *wu) variance(cube box) float64 {
	if cube.vol <= 1 {
		return 0
	}
	dr := volume(cube, w.momentsR)
	dg := volume(cube, w.momentsG)
	db := volume(cube, w.momentsB)
	xx := volume(cube, w.moments)
	return xx - (dr*dr+dg*dg+db*db)/volume(cube, w.weights)
}

func (w *wu) cut(one, two *box) bool {
	wholeR := volume(*one, w.momentsR)
	wholeG := volume(*one, w.momentsG)
	wholeB := volume(*one, w.momentsB)
	wholeW := volume(*one, w.weights)

	maxR, cutR := w.maximize(*one, axisRed, one.r0+1, one.r1, wholeR, wholeG, wholeB, wholeW)
	maxG, cutG := w.maximize(*one, axisGreen, one.g0+1, one.g1, wholeR, wholeG, wholeB, wholeW)
	maxB, cutB := w.maximize(*one, axisBlue, one.b0+1, one.b1, wholeR, wholeG, wholeB, wholeW)

	var dir axis
	var at int
	switch {
	case maxR >= maxG && maxR >= maxB:
		dir, at = axisRed, cutR
	case maxG >= maxR && maxG >= maxB:
		dir, at = axisGreen, cutG
	default:
		dir, at = axisBlue, cutB
	}
	if at < 0 {
		return false
	}

	two.r1, two.g1, two.b1 = one.r1, one.g1, one.b1
	switch dir {
	case axisRed:
		one.r1 = at
		two.r0, two.g0, two.b0 = one.r1, one.g0, one.b0
	case axisGreen:
		one.g1 = at
		two.r0, two.g0, two.b0 = one.r0, one.g1, one.b0
	case axisBlue:
		one.b1 = at
		two.r0, two.g0, two.b0 = one.r0, one.g0, one.b1
	}
	one.vol = (one.r1 - one.r0) * (one.g1 - one.g0) * (one.b1 - one.b0)
	two.vol = (two.r1 - two.r0) * (two.g1 - two.g0) * (two.b1 - two.b0)
	return true
}

// maximize finds the cut position along dir that maximizes the summed
// squared means of the two halves. It returns -1 when no cut separates
// any population.
func (w *wu) maximize(cube box, dir axis, first, last int, wholeR, wholeG, wholeB, wholeW float64) (float64, int) {
	bottomR := bottom(cube, dir, w.momentsR)
	bottomG := bottom(cube, dir, w.momentsG)
	bottomB := bottom(cube, dir, w.momentsB)
	bottomW := bottom(cube, dir, w.weights)

	best := 0.0
	at := -1
	for i := first; i < last; i++ {
		halfR := bottomR + top(cube, dir, i, w.momentsR)
		halfG := bottomG + top(cube, dir, i, w.momentsG)
		halfB := bottomB + top(cube, dir, i, w.momentsB)
		halfW := bottomW + top(cube, dir, i, w.weights)
		if halfW == 0 {
			continue
		}
		temp := (halfR*halfR + halfG*halfG + halfB*halfB) / halfW

		halfR = wholeR - halfR
		halfG = wholeG - halfG
		halfB = wholeB - halfB
		halfW = wholeW - halfW
		if halfW == 0 {
			continue
		}
		temp += (halfR*halfR + halfG*halfG + halfB*halfB) / halfW

		if temp > best {
			best = temp
			at = i
		}
	}
	return best, at
}

func volume(cube box, m []float64) float64 {
	return m[wuIndex(cube.r1, cube.g1, cube.b1)] -
		m[wuIndex(cube.r1, cube.g1, cube.b0)] -
		m[wuIndex(cube.r1, cube.g0, cube.b1)] +
		m[wuIndex(cube.r1, cube.g0, cube.b0)] -
		m[wuIndex(cube.r0, cube.g1, cube.b1)] +
		m[wuIndex(cube.r0, cube.g1, cube.b0)] +
		m[wuIndex(cube.r0, cube.g0, cube.b1)] -
		m[wuIndex(cube.r0, cube.g0, cube.b0)]
}

func bottom(cube box, dir axis, m []float64) float64 {
	switch dir {
	case axisRed:
		return -m[wuIndex(cube.r0, cube.g1, cube.b1)] +
			m[wuIndex(cube.r0, cube.g1, cube.b0)] +
			m[wuIndex(cube.r0, cube.g0, cube.b1)] -
			m[wuIndex(cube.r0, cube.g0, cube.b0)]
	case axisGreen:
		return -m[wuIndex(cube.r1, cube.g0, cube.b1)] +
			m[wuIndex(cube.r1, cube.g0, cube.b0)] +
			m[wuIndex(cube.r0, cube.g0, cube.b1)] -
			m[wuIndex(cube.r0, cube.g0, cube.b0)]
	default:
		return -m[wuIndex(cube.r1, cube.g1, cube.b0)] +
			m[wuIndex(cube.r1, cube.g0, cube.b0)] +
			m[wuIndex(cube.r0, cube.g1, cube.b0)] -
			m[wuIndex(cube.r0, cube.g0, cube.b0)]
	}
}

func top(cube box, dir axis, position int, m []float64) float64 {
	switch dir {
	case axisRed:
		return m[wuIndex(position, cube.g1, cube.b1)] -
			m[wuIndex(position, cube.g1, cube.b0)] -
			m[wuIndex(position, cube.g0, cube.b1)] +
			m[wuIndex(position, cube.g0, cube.b0)]
	case axisGreen:
		return m[wuIndex(cube.r1, position, cube.b1)] -
			m[wuIndex(cube.r1, position, cube.b0)] -
			m[wuIndex(cube.r0, position, cube.b1)] +
			m[wuIndex(cube.r0, position, cube.b0)]
	default:
		return m[wuIndex(cube.r1, cube.g1, position)] -
			m[wuIndex(cube.r1, cube.g0, position)] -
			m[wuIndex(cube.r0, cube.g1, position)] +
			m[wuIndex(cube.r0, cube.g0, position)]
	}
}
