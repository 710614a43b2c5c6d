// Package scalar defines the numeric abstraction that the rest of plane2d is
// generic over, and provides its two concrete instantiations: a ~53-bit
// binary floating-point family (Float64) and an arbitrary-precision decimal
// family (Decimal) backed by math/big.
//
// Go has no operator overloading, so the field operations, ordering, and
// transcendental functions a coordinate type must support are expressed as a
// method set on a self-bounded generic interface rather than as arithmetic
// operators. Downstream packages (point, predicate, hull, delaunay, boolean,
// bezier) are generic over any type satisfying Number.
package scalar

import "fmt"

// Number is the scalar abstraction every geometric type in plane2d is
// parameterized over. A concrete type S satisfies Number[S] by providing the
// field operations, total ordering, absolute value, square root, and
// construction from integer literals and decimal strings that spec.md §4.1
// requires.
//
// Implementations must be immutable value types: every method returns a new
// S rather than mutating the receiver, matching the "pure values" contract
// the kernel guarantees for every entity it produces.
type Number[S any] interface {
	Add(S) S
	Sub(S) S
	Mul(S) S
	Div(S) S
	Neg() S
	Abs() S
	Sqrt() S

	// Cmp returns -1, 0, or +1 as the receiver is less than, equal to, or
	// greater than other.
	Cmp(other S) int
	// Sign returns -1, 0, or +1 as the receiver is negative, zero, or positive.
	Sign() int
	IsZero() bool

	// Float64 bridges to float64 for operations defined in terms of plain
	// floating point regardless of scalar family (the Boolean loop tracer's
	// angle trigonometry).
	Float64() float64

	// FromInt64 constructs the literal n in the receiver's scalar family. The
	// receiver's own value is not used, only its dynamic type; callers
	// typically call this on a zero value, e.g. `var zero S; one :=
	// zero.FromInt64(1)`.
	FromInt64(n int64) S

	// Parse constructs a value from a finite decimal string such as "3.25"
	// or "-1e-9", in the receiver's scalar family. Like FromInt64, the
	// receiver's value is irrelevant, only its dynamic type.
	Parse(s string) (S, error)

	fmt.Stringer
}

// Zero returns the additive identity of S.
func Zero[S Number[S]]() S {
	var zero S
	return zero.FromInt64(0)
}

// One returns the multiplicative identity of S.
func One[S Number[S]]() S {
	var zero S
	return zero.FromInt64(1)
}

// DefaultEpsilon returns 10⁻⁹ in the scalar family S, per spec.md §4.1. For
// the exact/decimal family this is constructed by parsing the decimal string
// "1e-9" rather than by float conversion, matching the original
// implementation's defaultEpsilon<Scalar>() (see original_source's
// PlaneOperations.h: `Scalar{"1e-9"}` for the non-floating-point branch).
func DefaultEpsilon[S Number[S]]() S {
	var zero S
	eps, err := zero.Parse("1e-9")
	if err != nil {
		// Every concrete Number implementation must be able to parse its own
		// default epsilon; a failure here indicates a broken Parse, not bad
		// input, so there is nothing a caller could recover from.
		panic(fmt.Sprintf("scalar: family %T cannot parse its own default epsilon: %v", zero, err))
	}
	return eps
}

// CrossTolerance implements spec.md §4.2's scale-aware tolerance for
// comparing a cross product against zero:
//
//	crossTolerance(ε, |u|², |v|²) = ε · (|u|² + |v|² + 1)
func CrossTolerance[S Number[S]](epsilon, uSq, vSq S) S {
	one := One[S]()
	return epsilon.Mul(uSq.Add(vSq).Add(one))
}

// DotTolerance implements spec.md §4.2's scale-aware tolerance for comparing
// a dot product against zero or a bound:
//
//	dotTolerance(ε, |u|², |v|², d) = ε · (|u|² + |v|² + |d| + 1)
func DotTolerance[S Number[S]](epsilon, uSq, vSq, d S) S {
	one := One[S]()
	return epsilon.Mul(uSq.Add(vSq).Add(d.Abs()).Add(one))
}

// NearlyZero reports whether |value| <= tolerance.
func NearlyZero[S Number[S]](value, tolerance S) bool {
	return value.Abs().Cmp(tolerance) <= 0
}

// Lt reports whether a < b.
func Lt[S Number[S]](a, b S) bool { return a.Cmp(b) < 0 }

// Le reports whether a <= b.
func Le[S Number[S]](a, b S) bool { return a.Cmp(b) <= 0 }

// Gt reports whether a > b.
func Gt[S Number[S]](a, b S) bool { return a.Cmp(b) > 0 }

// Ge reports whether a >= b.
func Ge[S Number[S]](a, b S) bool { return a.Cmp(b) >= 0 }

// Max returns the greater of a and b.
func Max[S Number[S]](a, b S) S {
	if Ge(a, b) {
		return a
	}
	return b
}

// Min returns the lesser of a and b.
func Min[S Number[S]](a, b S) S {
	if Le(a, b) {
		return a
	}
	return b
}
