package plane2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	plane2d "github.com/planekit/plane2d"
	"github.com/planekit/plane2d/scalar"
)

func TestPoint_Arithmetic(t *testing.T) {
	p := plane2d.NewPoint[scalar.Float64](2, 3)
	q := plane2d.NewPoint[scalar.Float64](5, -1)

	assert.Equal(t, plane2d.NewPoint[scalar.Float64](7, 2), p.Add(q))
	assert.Equal(t, plane2d.NewPoint[scalar.Float64](-3, 4), p.Sub(q))
	assert.Equal(t, plane2d.NewPoint[scalar.Float64](4, 6), p.Scale(2))
	assert.Equal(t, plane2d.NewPoint[scalar.Float64](-2, -3), p.Negate())
}

func TestPoint_CrossAndDotProduct(t *testing.T) {
	p := plane2d.NewPoint[scalar.Float64](3, 4)
	q := plane2d.NewPoint[scalar.Float64](-4, 3)

	assert.Equal(t, scalar.Float64(25), p.CrossProduct(q))
	assert.Equal(t, scalar.Float64(0), p.DotProduct(q))
}

func TestPoint_DistanceAndLength(t *testing.T) {
	origin := plane2d.NewPoint[scalar.Float64](0, 0)
	p := plane2d.NewPoint[scalar.Float64](3, 4)

	assert.Equal(t, scalar.Float64(25), origin.DistanceSquaredToPoint(p))
	assert.Equal(t, scalar.Float64(5), origin.DistanceToPoint(p))
	assert.Equal(t, scalar.Float64(5), p.Length())
}

func TestPoint_Eq(t *testing.T) {
	a := plane2d.NewPoint[scalar.Float64](1, 2)
	b := plane2d.NewPoint[scalar.Float64](1, 2)
	c := plane2d.NewPoint[scalar.Float64](1, 2.0000001)

	assert.True(t, a.Eq(b))
	assert.False(t, a.Eq(c))
}

// TestOrientationSymmetry verifies spec §8 property 1: classify([A,B],P) = -classify([B,A],P),
// with OnSegment fixed under the swap.
func TestOrientationSymmetry(t *testing.T) {
	a := plane2d.NewPoint[scalar.Float64](0, 0)
	b := plane2d.NewPoint[scalar.Float64](10, 0)
	p := plane2d.NewPoint[scalar.Float64](5, 3)

	forward := plane2d.ClassifyPointRelativeToSegment(plane2d.NewSegment(a, b), p)
	backward := plane2d.ClassifyPointRelativeToSegment(plane2d.NewSegment(b, a), p)

	assert.Equal(t, plane2d.OrientationLeft, forward)
	assert.Equal(t, plane2d.OrientationRight, backward)
}

func TestOrientationSymmetry_OnSegmentFixed(t *testing.T) {
	a := plane2d.NewPoint[scalar.Float64](0, 0)
	b := plane2d.NewPoint[scalar.Float64](10, 0)
	p := plane2d.NewPoint[scalar.Float64](5, 0)

	forward := plane2d.ClassifyPointRelativeToSegment(plane2d.NewSegment(a, b), p)
	backward := plane2d.ClassifyPointRelativeToSegment(plane2d.NewSegment(b, a), p)

	assert.Equal(t, plane2d.OrientationOnSegment, forward)
	assert.Equal(t, plane2d.OrientationOnSegment, backward)
}

// TestClassifyPointRelativeToSegment_S1 is spec §8 scenario S1: classify(seg=[(0,0),(10,0)], P=(0,5)) = Left.
func TestClassifyPointRelativeToSegment_S1(t *testing.T) {
	a := plane2d.NewPoint[scalar.Float64](0, 0)
	b := plane2d.NewPoint[scalar.Float64](10, 0)
	p := plane2d.NewPoint[scalar.Float64](0, 5)

	got := plane2d.ClassifyPointRelativeToSegment(plane2d.NewSegment(a, b), p)
	assert.Equal(t, plane2d.OrientationLeft, got)
}
