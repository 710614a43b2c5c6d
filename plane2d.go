// Package plane2d provides a computational-geometry kernel for 2D points,
// segments, and polygons: orientation and intersection predicates, convex
// hull, Delaunay triangulation, convex polygon Boolean operations, point
// location, and Bézier evaluation.
//
// # Coordinate system
//
// plane2d assumes a standard Cartesian coordinate system where the x-axis
// increases to the right and the y-axis increases upward. Orientation
// (counter-clockwise vs. clockwise) and the Boolean engine's ring
// conventions (CCW outer rings, CW holes) are defined relative to this
// right-handed system. The kernel makes no assumption about screen/pixel
// coordinate systems; any y-axis inversion is the caller's responsibility.
//
// # Generic scalar parameterization
//
// Every type and function in this package is generic over a scalar family S
// satisfying scalar.Number[S] (see package scalar). Two concrete families
// are provided: scalar.Float64 (binary floating point) and scalar.Decimal
// (arbitrary-precision, backed by math/big.Float). A single call must not
// mix scalar families; the kernel never converts between them internally.
//
// # Tolerance
//
// Predicates and constructors that compare bilinear quantities (cross and
// dot products) against zero take a tolerance-aware epsilon via
// options.Option[S], following scalar.CrossTolerance and
// scalar.DotTolerance (spec §4.2). Epsilon is a quantity in the same domain
// as the inputs, not a relative ratio.
//
// # Purity and concurrency
//
// Every entity this package returns is an immutable value; inputs are never
// mutated. Every operation is synchronous, reentrant, and allocates only
// what its result owns. Multiple goroutines may call any function
// concurrently provided their inputs are distinct or read-only.
//
// # Scope
//
// This package implements the numeric kernel only: primitive predicates and
// constructive algorithms over points, segments, and convex polygons. It
// does not provide constrained triangulation, general (non-convex) polygon
// Booleans, sweep-line planar subdivision, 3D geometry, or persistence
// beyond the value types it declares. A UI, decimal-string parser/formatter,
// and any coordinate-transform/rendering layer are external collaborators,
// not part of this package.
package plane2d
