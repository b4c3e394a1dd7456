// Package siad provides two small numerical routines: 2-D k-means
// clustering and trend-adjusted exponential smoothing.
package siad

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/yyyoichi/siad/internal/geom"
	"github.com/yyyoichi/siad/internal/kmeans"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotInitialized  = kmeans.ErrNotInitialized
)

const (
	DefaultSeed       int64 = 1234567890
	DefaultIterations       = 3
)

type (
	// Point is an immutable 2-D coordinate, compared by value.
	Point = geom.Point

	// Cluster is a centroid and the points currently assigned to it.
	Cluster = kmeans.Cluster
)

func NewPoint(x, y float64) Point { return Point{X: x, Y: y} }

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 { return geom.Distance(a, b) }

// ClosestOf returns the candidate nearest to p, the first one on ties.
// It fails with ErrInvalidArgument when candidates is empty.
func ClosestOf(p Point, candidates []Point) (Point, error) {
	c, err := geom.ClosestOf(p, candidates)
	if err != nil {
		return Point{}, fmt.Errorf("%w:%w", ErrInvalidArgument, err)
	}
	return c, nil
}

// Clustering groups points into k clusters with a fresh KMeans and returns
// the clusters after the configured number of iterations (DefaultIterations
// unless WithIterations is given).
func Clustering(points []Point, k int, opts ...Option) ([]Cluster, error) {
	km, err := NewKMeans(points, k, opts...)
	if err != nil {
		return nil, err
	}
	return km.Run(km.iterations)
}

// KMeans clusters a fixed set of points.
//
// Lifecycle:
//  1. InitializeCentroids seeds k centroids inside the integer bounding box
//     of the points, drawing each axis without replacement.
//  2. AssignPointsToClosestCentroid and UpdateCentroids refine the clusters.
//
// Run performs both steps for a fixed number of iterations. There is no
// convergence check, so the result may still change with more iterations.
type KMeans struct {
	engine *kmeans.Engine

	seed       int64
	rd         *rand.Rand
	iterations int
	logger     *slog.Logger
}

// NewKMeans validates points and k (1 <= k <= len(points)) and returns an
// uninitialized KMeans. The points are copied.
func NewKMeans(points []Point, k int, opts ...Option) (*KMeans, error) {
	km := new(KMeans)
	if err := km.init(opts...); err != nil {
		return nil, err
	}
	engine, err := kmeans.New(points, k, km.rd, km.logger)
	if err != nil {
		return nil, fmt.Errorf("%w:%w", ErrInvalidArgument, err)
	}
	km.engine = engine
	return km, nil
}

func (km *KMeans) init(opts ...Option) error {
	km.seed = DefaultSeed
	km.iterations = DefaultIterations
	for _, opt := range opts {
		if err := opt(km); err != nil {
			return err
		}
	}
	if km.rd == nil {
		km.rd = rand.New(rand.NewSource(km.seed))
	}
	if km.logger == nil {
		km.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return nil
}

// InitializeCentroids seeds the clusters, replacing any existing ones.
func (km *KMeans) InitializeCentroids() { km.engine.InitializeCentroids() }

// AssignPointsToClosestCentroid rebuilds every member list from scratch.
// It returns ErrNotInitialized before InitializeCentroids.
func (km *KMeans) AssignPointsToClosestCentroid() error {
	return km.engine.AssignPointsToClosestCentroid()
}

// UpdateCentroids moves each centroid to the mean of its members.
// Clusters without members keep their centroid.
func (km *KMeans) UpdateCentroids() error { return km.engine.UpdateCentroids() }

// Run seeds the centroids and performs exactly iterations rounds of
// assignment and centroid update. Clusters are returned in seeding order.
func (km *KMeans) Run(iterations int) ([]Cluster, error) {
	clusters, err := km.engine.Run(iterations)
	if err != nil {
		if errors.Is(err, kmeans.ErrNegativeIterations) {
			return nil, fmt.Errorf("%w:%w", ErrInvalidArgument, err)
		}
		return nil, err
	}
	return clusters, nil
}

// Clusters returns a copy of the current clusters.
func (km *KMeans) Clusters() []Cluster { return km.engine.Clusters() }

// FirstCentroids returns the centroids drawn by the latest seeding.
// They are diagnostic only.
func (km *KMeans) FirstCentroids() []Point { return km.engine.FirstCentroids() }
