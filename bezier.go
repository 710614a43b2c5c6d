// The `bezier.go` file implements Bézier curve evaluation and sampling (spec §4.11): de
// Casteljau's algorithm for arbitrary degree, closed-form Bernstein expansions for the linear,
// quadratic, and cubic cases, and uniform-parameter sampling.

package plane2d

import (
	"github.com/planekit/plane2d/scalar"
)

// EvaluateBezier evaluates the Bézier curve with control points P at parameter t using de
// Casteljau's algorithm, following spec §4.11: repeated in-place linear interpolation on a copy
// of P, O(n^2) work and O(n) memory.
//
// Requires at least one control point and t in [0, 1]; violations are surfaced as an InputError
// (spec §4.13), never silently clamped.
func EvaluateBezier[S scalar.Number[S]](controlPoints []Point[S], t S) (Point[S], error) {
	if len(controlPoints) == 0 {
		return Point[S]{}, newInputError("EvaluateBezier", "no control points", ErrNoControlPoints)
	}
	zero := scalar.Zero[S]()
	one := scalar.One[S]()
	if t.Cmp(zero) < 0 || t.Cmp(one) > 0 {
		return Point[S]{}, newInputError("EvaluateBezier", "parameter outside [0, 1]", ErrInvalidParameter)
	}

	work := make([]Point[S], len(controlPoints))
	copy(work, controlPoints)

	for level := len(work) - 1; level > 0; level-- {
		for i := 0; i < level; i++ {
			a := work[i]
			b := work[i+1]
			work[i] = NewPoint(
				a.x.Add(b.x.Sub(a.x).Mul(t)),
				a.y.Add(b.y.Sub(a.y).Mul(t)),
			)
		}
	}
	return work[0], nil
}

// EvaluateBezierLinear evaluates the two-point (degree-1) Bézier curve through p0, p1 at t via
// the direct Bernstein expansion: (1-t)*p0 + t*p1. Semantics are identical to EvaluateBezier at
// degree 1.
func EvaluateBezierLinear[S scalar.Number[S]](p0, p1 Point[S], t S) (Point[S], error) {
	if err := checkBezierParameter(t); err != nil {
		return Point[S]{}, err
	}
	one := scalar.One[S]()
	u := one.Sub(t)
	return NewPoint(
		p0.x.Mul(u).Add(p1.x.Mul(t)),
		p0.y.Mul(u).Add(p1.y.Mul(t)),
	), nil
}

// EvaluateBezierQuadratic evaluates the three-point (degree-2) Bézier curve through p0, p1, p2 at
// t via the direct Bernstein expansion: (1-t)²p0 + 2(1-t)t·p1 + t²p2. Semantics are identical to
// EvaluateBezier at degree 2.
func EvaluateBezierQuadratic[S scalar.Number[S]](p0, p1, p2 Point[S], t S) (Point[S], error) {
	if err := checkBezierParameter(t); err != nil {
		return Point[S]{}, err
	}
	one := scalar.One[S]()
	two := one.Add(one)
	u := one.Sub(t)

	uu := u.Mul(u)
	tt := t.Mul(t)
	ut2 := two.Mul(u).Mul(t)

	x := p0.x.Mul(uu).Add(p1.x.Mul(ut2)).Add(p2.x.Mul(tt))
	y := p0.y.Mul(uu).Add(p1.y.Mul(ut2)).Add(p2.y.Mul(tt))
	return NewPoint(x, y), nil
}

// EvaluateBezierCubic evaluates the four-point (degree-3) Bézier curve through p0, p1, p2, p3 at t
// via the direct Bernstein expansion: (1-t)³p0 + 3(1-t)²t·p1 + 3(1-t)t²·p2 + t³p3. Semantics are
// identical to EvaluateBezier at degree 3.
func EvaluateBezierCubic[S scalar.Number[S]](p0, p1, p2, p3 Point[S], t S) (Point[S], error) {
	if err := checkBezierParameter(t); err != nil {
		return Point[S]{}, err
	}
	one := scalar.One[S]()
	three := one.FromInt64(3)
	u := one.Sub(t)

	uuu := u.Mul(u).Mul(u)
	uut3 := three.Mul(u).Mul(u).Mul(t)
	utt3 := three.Mul(u).Mul(t).Mul(t)
	ttt := t.Mul(t).Mul(t)

	x := p0.x.Mul(uuu).Add(p1.x.Mul(uut3)).Add(p2.x.Mul(utt3)).Add(p3.x.Mul(ttt))
	y := p0.y.Mul(uuu).Add(p1.y.Mul(uut3)).Add(p2.y.Mul(utt3)).Add(p3.y.Mul(ttt))
	return NewPoint(x, y), nil
}

// checkBezierParameter validates t in [0, 1] for the closed-form evaluators.
func checkBezierParameter[S scalar.Number[S]](t S) error {
	zero := scalar.Zero[S]()
	one := scalar.One[S]()
	if t.Cmp(zero) < 0 || t.Cmp(one) > 0 {
		return newInputError("EvaluateBezier", "parameter outside [0, 1]", ErrInvalidParameter)
	}
	return nil
}

// SampleBezier returns N samples of the Bézier curve with control points P, evenly spaced at
// t = i/(N-1) for i in [0, N-1], following spec §4.11. N = 1 returns a single sample at t = 0.
// N = 0 is a user error (spec §4.13).
func SampleBezier[S scalar.Number[S]](controlPoints []Point[S], n int) ([]Point[S], error) {
	if n == 0 {
		return nil, newInputError("SampleBezier", "sample count must be >= 1", ErrInvalidSampleCount)
	}
	if len(controlPoints) == 0 {
		return nil, newInputError("SampleBezier", "no control points", ErrNoControlPoints)
	}

	out := make([]Point[S], n)
	if n == 1 {
		p, err := EvaluateBezier(controlPoints, scalar.Zero[S]())
		if err != nil {
			return nil, err
		}
		out[0] = p
		return out, nil
	}

	one := scalar.One[S]()
	denom := one.FromInt64(int64(n - 1))
	for i := 0; i < n; i++ {
		t := one.FromInt64(int64(i)).Div(denom)
		p, err := EvaluateBezier(controlPoints, t)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
