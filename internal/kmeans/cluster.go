package kmeans

import (
	"slices"

	"github.com/yyyoichi/siad/internal/geom"
	"gonum.org/v1/gonum/stat"
)

// Cluster is a centroid together with the points assigned to it.
type Cluster struct {
	Centroid geom.Point
	Members  []geom.Point
}

// AssignMembers replaces the member list with a copy of points.
func (c *Cluster) AssignMembers(points []geom.Point) {
	c.Members = slices.Clone(points)
}

// UpdateCentroid moves the centroid to the componentwise mean of the members.
// A cluster without members keeps its centroid.
func (c *Cluster) UpdateCentroid() {
	if len(c.Members) == 0 {
		return
	}
	xs := make([]float64, len(c.Members))
	ys := make([]float64, len(c.Members))
	for i, p := range c.Members {
		xs[i], ys[i] = p.X, p.Y
	}
	c.Centroid = geom.Point{X: stat.Mean(xs, nil), Y: stat.Mean(ys, nil)}
}

func (c Cluster) clone() Cluster {
	c.Members = slices.Clone(c.Members)
	return c
}
