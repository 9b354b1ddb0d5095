package quantize

import (
	"context"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/sync/errgroup"

	"github.com/jsvensson/tonal/internal/color"
)

// minPointsPerWorker keeps tiny inputs on a single goroutine.
const minPointsPerWorker = 256

type lab [3]float64

func toLab(c color.ARGB) lab {
	l, a, b := colorful.Color{
		R: float64(c.Red()) / 255,
		G: float64(c.Green()) / 255,
		B: float64(c.Blue()) / 255,
	}.Lab()
	return lab{l, a, b}
}

func fromLab(p lab) color.ARGB {
	r, g, b := colorful.Lab(p[0], p[1], p[2]).Clamped().RGB255()
	return color.FromRGB(r, g, b)
}

func distanceSquared(a, b lab) float64 {
	dl, da, db := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return dl*dl + da*da + db*db
}

// kmeans refines the starting centroids against the weighted points.
// Points must be in a fixed order; the result then depends only on the
// inputs, never on the worker count.
type kmeans struct {
	points  []lab
	weights []int
	workers int
}

type cluster struct {
	center lab
	weight int
}

func (k *kmeans) run(ctx context.Context, starts []color.ARGB, maxIterations int) ([]cluster, error) {
	centroids := make([]lab, len(starts))
	for i, s := range starts {
		centroids[i] = toLab(s)
	}

	assignment := make([]int, len(k.points))
	for i := range assignment {
		assignment[i] = -1
	}
	weights := make([]int, len(centroids))

	for range maxIterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		changed, err := k.assign(ctx, centroids, assignment)
		if err != nil {
			return nil, err
		}
		if changed == 0 {
			break
		}
		weights = k.update(centroids, assignment)
	}

	out := make([]cluster, 0, len(centroids))
	for i, c := range centroids {
		if weights[i] > 0 {
			out = append(out, cluster{center: c, weight: weights[i]})
		}
	}
	return out, nil
}

// assign moves every point to its nearest centroid and reports how many
// points changed cluster. Workers write disjoint ranges of assignment.
func (k *kmeans) assign(ctx context.Context, centroids []lab, assignment []int) (int, error) {
	workers := k.workerCount()
	changed := make([]int, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		start, end := splitRange(len(k.points), workers, w)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				nearest := nearestCentroid(k.points[i], centroids)
				if nearest != assignment[i] {
					assignment[i] = nearest
					changed[w]++
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, n := range changed {
		total += n
	}
	return total, nil
}

// update recomputes each centroid as the weighted mean of its points.
// Centroids left without points keep their position.
func (k *kmeans) update(centroids []lab, assignment []int) []int {
	sums := make([]lab, len(centroids))
	weights := make([]int, len(centroids))
	for i, p := range k.points {
		c := assignment[i]
		w := float64(k.weights[i])
		sums[c][0] += p[0] * w
		sums[c][1] += p[1] * w
		sums[c][2] += p[2] * w
		weights[c] += k.weights[i]
	}
	for i := range centroids {
		if weights[i] == 0 {
			continue
		}
		w := float64(weights[i])
		centroids[i] = lab{sums[i][0] / w, sums[i][1] / w, sums[i][2] / w}
	}
	return weights
}

func nearestCentroid(p lab, centroids []lab) int {
	best := 0
	bestDist := distanceSquared(p, centroids[0])
	for i := 1; i < len(centroids); i++ {
		if d := distanceSquared(p, centroids[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func (k *kmeans) workerCount() int {
	workers := max(k.workers, 1)
	workers = min(workers, len(k.points)/minPointsPerWorker)
	return max(workers, 1)
}

// splitRange returns the half-open range of the idx-th of n near-equal
// partitions of length items.
func splitRange(length, n, idx int) (int, int) {
	chunk := length / n
	rem := length % n
	start := idx*chunk + min(idx, rem)
	end := start + chunk
	if idx < rem {
		end++
	}
	return start, end
}
