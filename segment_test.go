package plane2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	plane2d "github.com/planekit/plane2d"
	"github.com/planekit/plane2d/scalar"
)

func TestSegment_VectorAndLength(t *testing.T) {
	seg := plane2d.NewSegment(
		plane2d.NewPoint[scalar.Float64](0, 0),
		plane2d.NewPoint[scalar.Float64](3, 4),
	)

	assert.Equal(t, plane2d.NewPoint[scalar.Float64](3, 4), seg.Vector())
	assert.Equal(t, scalar.Float64(5), seg.Length())
	assert.Equal(t, plane2d.NewPoint[scalar.Float64](1.5, 2), seg.Midpoint())
}

func TestSegment_IsDegenerate(t *testing.T) {
	degenerate := plane2d.NewSegment(
		plane2d.NewPoint[scalar.Float64](1, 1),
		plane2d.NewPoint[scalar.Float64](1, 1),
	)
	nonDegenerate := plane2d.NewSegment(
		plane2d.NewPoint[scalar.Float64](1, 1),
		plane2d.NewPoint[scalar.Float64](1, 2),
	)

	assert.True(t, degenerate.IsDegenerate())
	assert.False(t, nonDegenerate.IsDegenerate())
}

func TestSegment_Eq(t *testing.T) {
	a := plane2d.NewSegment(
		plane2d.NewPoint[scalar.Float64](0, 0),
		plane2d.NewPoint[scalar.Float64](1, 1),
	)
	b := plane2d.NewSegment(
		plane2d.NewPoint[scalar.Float64](0, 0),
		plane2d.NewPoint[scalar.Float64](1, 1.0000000001),
	)
	c := plane2d.NewSegment(
		plane2d.NewPoint[scalar.Float64](0, 0),
		plane2d.NewPoint[scalar.Float64](2, 2),
	)

	assert.True(t, a.Eq(b))
	assert.False(t, a.Eq(c))
}

func TestIntersectionType_String(t *testing.T) {
	assert.Equal(t, "None", plane2d.IntersectionNone.String())
	assert.Equal(t, "Point", plane2d.IntersectionPoint.String())
	assert.Equal(t, "Overlap", plane2d.IntersectionOverlap.String())
}
