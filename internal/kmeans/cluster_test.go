package kmeans

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yyyoichi/siad/internal/geom"
)

func TestCluster_UpdateCentroid(t *testing.T) {
	t.Run("mean", func(t *testing.T) {
		c := Cluster{Centroid: geom.Point{X: 9, Y: 9}}
		c.AssignMembers([]geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 3}})
		c.UpdateCentroid()
		assert.InDelta(t, 1.0, c.Centroid.X, 1e-12)
		assert.InDelta(t, 1.0, c.Centroid.Y, 1e-12)
	})
	t.Run("empty_keeps_centroid", func(t *testing.T) {
		c := Cluster{Centroid: geom.Point{X: 4, Y: -2}}
		assert.NotPanics(t, c.UpdateCentroid)
		assert.Equal(t, geom.Point{X: 4, Y: -2}, c.Centroid)
		assert.False(t, math.IsNaN(c.Centroid.X) || math.IsNaN(c.Centroid.Y))

		c.AssignMembers(nil)
		c.UpdateCentroid()
		assert.Equal(t, geom.Point{X: 4, Y: -2}, c.Centroid)
	})
}

func TestCluster_AssignMembers(t *testing.T) {
	c := Cluster{}
	c.AssignMembers([]geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}})
	c.AssignMembers([]geom.Point{{X: 3, Y: 3}})
	assert.Equal(t, []geom.Point{{X: 3, Y: 3}}, c.Members)

	// the member list does not alias the caller's slice.
	src := []geom.Point{{X: 5, Y: 5}}
	c.AssignMembers(src)
	src[0] = geom.Point{}
	assert.Equal(t, geom.Point{X: 5, Y: 5}, c.Members[0])
}
