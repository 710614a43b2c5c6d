// Package options provides configurable settings for plane2d's geometric
// operations: a functional-options pattern (GeometryOptions / WithEpsilon)
// generalized from a bare float64 epsilon to one expressed in the caller's
// own scalar family S.
package options

import "github.com/planekit/plane2d/scalar"

// GeometryOptions holds the configurable parameters for a geometric
// operation over scalar family S.
type GeometryOptions[S scalar.Number[S]] struct {
	// Epsilon is the tolerance used for comparisons against zero. When not
	// supplied via WithEpsilon, Apply defaults it to scalar.DefaultEpsilon[S].
	Epsilon    S
	epsilonSet bool
}

// Option is a functional option that configures a GeometryOptions[S].
type Option[S scalar.Number[S]] func(*GeometryOptions[S])

// WithEpsilon sets the tolerance used for zero-comparisons in an operation
// that accepts Option[S]. Values within [-epsilon, epsilon] of zero are
// treated as zero.
func WithEpsilon[S scalar.Number[S]](epsilon S) Option[S] {
	return func(o *GeometryOptions[S]) {
		o.Epsilon = epsilon
		o.epsilonSet = true
	}
}

// Apply folds opts over a fresh GeometryOptions[S], defaulting Epsilon to
// scalar.DefaultEpsilon[S]() when WithEpsilon was not supplied.
func Apply[S scalar.Number[S]](opts ...Option[S]) GeometryOptions[S] {
	var o GeometryOptions[S]
	for _, opt := range opts {
		opt(&o)
	}
	if !o.epsilonSet {
		o.Epsilon = scalar.DefaultEpsilon[S]()
	}
	return o
}
