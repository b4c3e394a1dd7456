package kmeans

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"slices"

	"github.com/yyyoichi/siad/internal/geom"
)

var (
	ErrNoPoints           = errors.New("no points to cluster")
	ErrInvalidK           = errors.New("k must be between 1 and the number of points")
	ErrNegativeIterations = errors.New("iterations must not be negative")
	ErrNotInitialized     = errors.New("centroids are not initialized")
	ErrNonFinitePoint     = errors.New("point coordinates must be finite")
)

// Engine clusters a fixed set of 2-D points into k clusters.
//
// Clusters are addressed by index in seeding order, so a centroid moving
// between iterations never changes which cluster it belongs to.
// There is no convergence check; Run stops after the requested iteration count.
type Engine struct {
	points         []geom.Point
	k              int
	clusters       []Cluster
	firstCentroids []geom.Point

	rd     *rand.Rand
	logger *slog.Logger
}

// New validates the input and returns an uninitialized engine.
// A nil rd or logger falls back to a fixed seed and a discarding logger.
func New(points []geom.Point, k int, rd *rand.Rand, logger *slog.Logger) (*Engine, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if k <= 0 || k > len(points) {
		return nil, fmt.Errorf("%w: k=%d, points=%d", ErrInvalidK, k, len(points))
	}
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, fmt.Errorf("%w: points[%d]=%v", ErrNonFinitePoint, i, p)
		}
	}
	if rd == nil {
		rd = rand.New(rand.NewSource(1))
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		points: slices.Clone(points),
		k:      k,
		rd:     rd,
		logger: logger,
	}, nil
}

// InitializeCentroids seeds k clusters from the bounding box of the points.
// Calling it again discards the current clusters and seeds anew.
func (e *Engine) InitializeCentroids() {
	e.seed(seedCentroids(e.rd, e.points, e.k))
	e.logger.Debug("centroids initialized", "k", e.k, "centroids", e.firstCentroids)
}

func (e *Engine) seed(centroids []geom.Point) {
	e.firstCentroids = slices.Clone(centroids)
	e.clusters = make([]Cluster, len(centroids))
	for i, c := range centroids {
		e.clusters[i] = Cluster{Centroid: c}
	}
}

// AssignPointsToClosestCentroid clears every member list and then appends
// each point, in input order, to the cluster with the nearest centroid.
func (e *Engine) AssignPointsToClosestCentroid() error {
	if len(e.clusters) == 0 {
		return ErrNotInitialized
	}
	centroids := make([]geom.Point, len(e.clusters))
	for i := range e.clusters {
		e.clusters[i].Members = nil
		centroids[i] = e.clusters[i].Centroid
	}
	for _, p := range e.points {
		i, err := geom.ClosestIndex(p, centroids)
		if err != nil {
			return err
		}
		e.clusters[i].Members = append(e.clusters[i].Members, p)
	}
	return nil
}

// UpdateCentroids moves every centroid to the mean of its members.
func (e *Engine) UpdateCentroids() error {
	if len(e.clusters) == 0 {
		return ErrNotInitialized
	}
	for i := range e.clusters {
		e.clusters[i].UpdateCentroid()
	}
	return nil
}

// Run seeds the centroids once and then performs exactly iterations rounds
// of assignment followed by centroid update.
func (e *Engine) Run(iterations int) ([]Cluster, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeIterations, iterations)
	}
	e.InitializeCentroids()
	for i := range iterations {
		if err := e.AssignPointsToClosestCentroid(); err != nil {
			return nil, err
		}
		if err := e.UpdateCentroids(); err != nil {
			return nil, err
		}
		e.logger.Debug("iteration done", "iteration", i+1, "centroids", e.centroids())
	}
	return e.Clusters(), nil
}

// Clusters returns a copy of the current clusters in seeding order.
func (e *Engine) Clusters() []Cluster {
	res := make([]Cluster, len(e.clusters))
	for i, c := range e.clusters {
		res[i] = c.clone()
	}
	return res
}

// FirstCentroids returns the centroids drawn by the latest seeding.
func (e *Engine) FirstCentroids() []geom.Point { return slices.Clone(e.firstCentroids) }

func (e *Engine) centroids() []geom.Point {
	res := make([]geom.Point, len(e.clusters))
	for i, c := range e.clusters {
		res[i] = c.Centroid
	}
	return res
}
