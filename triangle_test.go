package plane2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	plane2d "github.com/planekit/plane2d"
	"github.com/planekit/plane2d/scalar"
)

func TestTriangle_Vertices(t *testing.T) {
	a := plane2d.NewPoint[scalar.Float64](0, 0)
	b := plane2d.NewPoint[scalar.Float64](1, 0)
	c := plane2d.NewPoint[scalar.Float64](0, 1)
	tri := plane2d.NewTriangle(a, b, c)

	gotA, gotB, gotC := tri.Vertices()
	assert.Equal(t, a, gotA)
	assert.Equal(t, b, gotB)
	assert.Equal(t, c, gotC)
}

func TestTriangle_String(t *testing.T) {
	tri := plane2d.NewTriangle(
		plane2d.NewPoint[scalar.Float64](0, 0),
		plane2d.NewPoint[scalar.Float64](1, 0),
		plane2d.NewPoint[scalar.Float64](0, 1),
	)
	assert.Contains(t, tri.String(), "Triangle[")
}
