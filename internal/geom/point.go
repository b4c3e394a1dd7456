package geom

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrEmptyCandidates = errors.New("closest point query needs at least one candidate")
)

// Point is an immutable 2-D coordinate. Two points with equal coordinates are equal.
type Point struct {
	X, Y float64
}

func (p Point) vec() []float64 { return []float64{p.X, p.Y} }

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return floats.Distance(a.vec(), b.vec(), 2)
}

// ClosestIndex returns the index of the candidate nearest to p.
// Ties resolve to the first candidate in order.
func ClosestIndex(p Point, candidates []Point) (int, error) {
	if len(candidates) == 0 {
		return -1, ErrEmptyCandidates
	}
	dists := make([]float64, len(candidates))
	for i, c := range candidates {
		dists[i] = Distance(p, c)
	}
	return floats.MinIdx(dists), nil
}

// ClosestOf returns the candidate nearest to p.
func ClosestOf(p Point, candidates []Point) (Point, error) {
	i, err := ClosestIndex(p, candidates)
	if err != nil {
		return Point{}, err
	}
	return candidates[i], nil
}

// Bounds returns the bounding box of points. points must not be empty.
func Bounds(points []Point) (min, max Point) {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	return Point{floats.Min(xs), floats.Min(ys)}, Point{floats.Max(xs), floats.Max(ys)}
}
