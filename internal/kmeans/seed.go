package kmeans

import (
	"math"
	"math/rand"

	"github.com/yyyoichi/siad/internal/geom"
)

// maxGridSpan bounds the integer grid so the bounds and the width fit in an int.
const maxGridSpan = 1 << 62

// seedCentroids draws k centroids inside the integer bounding box of points.
// Each axis is sampled without replacement and the two axes are paired by index.
func seedCentroids(rd *rand.Rand, points []geom.Point, k int) []geom.Point {
	min, max := geom.Bounds(points)
	xs := sampleAxis(rd, min.X, max.X, k)
	ys := sampleAxis(rd, min.Y, max.Y, k)

	centroids := make([]geom.Point, k)
	for i := range k {
		centroids[i] = geom.Point{X: xs[i], Y: ys[i]}
	}
	return centroids
}

// sampleAxis draws k values on the integer grid of [lo, hi] truncated toward zero.
// Bounds too wide for that grid are sampled uniformly as floats in [lo, hi].
func sampleAxis(rd *rand.Rand, lo, hi float64, k int) []float64 {
	tlo, thi := math.Trunc(lo), math.Trunc(hi)
	res := make([]float64, k)
	if math.Abs(tlo) <= maxGridSpan && math.Abs(thi) <= maxGridSpan && thi-tlo < maxGridSpan {
		for i, v := range sampleDistinct(rd, int(tlo), int(thi), k) {
			res[i] = float64(v)
		}
		return res
	}
	for i := range res {
		u := rd.Float64()
		// convex combination, hi-lo itself may overflow.
		res[i] = math.Max(lo, math.Min(hi, lo*(1-u)+hi*u))
	}
	return res
}

// sampleDistinct draws k integers from [lo, hi] in random order.
// The values are distinct whenever the range holds at least k integers;
// a narrower range falls back to independent draws.
func sampleDistinct(rd *rand.Rand, lo, hi, k int) []int {
	n := hi - lo + 1
	res := make([]int, 0, k)
	if n < k {
		for range k {
			res = append(res, lo+rd.Intn(n))
		}
		return res
	}

	// Floyd's algorithm, O(k) regardless of the range width.
	seen := make(map[int]struct{}, k)
	for j := n - k; j < n; j++ {
		v := rd.Intn(j + 1)
		if _, ok := seen[v]; ok {
			v = j
		}
		seen[v] = struct{}{}
		res = append(res, lo+v)
	}
	rd.Shuffle(len(res), func(i, j int) {
		res[i], res[j] = res[j], res[i]
	})
	return res
}
