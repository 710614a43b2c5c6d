package scalar

import (
	"fmt"
	"math/big"
)

// decimalPrecisionBits is the mantissa precision used for the arbitrary-
// precision scalar family. 192 bits is comfortably over 50 significant
// decimal digits (log10(2^192) ≈ 57.8), meeting spec.md §3's "≥50
// significant digits" floor for the exact/decimal family. Grounded on
// iceisfun-gomesh/algorithm/robust/predicates.go, which reaches for
// math/big.Float (there at 256 bits) whenever its float64 fast path's
// adaptive filter is inconclusive.
const decimalPrecisionBits = 192

// Decimal is the arbitrary-precision scalar family, backed by *math/big.Float
// at a fixed precision. It implements Number[Decimal] by delegating to
// big.Float's own method set, the same style used by
// iceisfun-gomesh/algorithm/robust/predicates.go's exact fallback path
// (bigFloat, det2: new big.Floats combined via Add/Sub/Mul/Quo/Sign).
//
// The zero value of Decimal has a nil underlying *big.Float; every method
// below tolerates this by treating a nil receiver field as the big.Float
// zero value, so `var d Decimal` is usable without an explicit constructor.
type Decimal struct {
	v *big.Float
}

// NewDecimal wraps an existing *big.Float as a Decimal, re-rounding it to
// decimalPrecisionBits. A nil v is treated as zero.
func NewDecimal(v *big.Float) Decimal {
	if v == nil {
		return Decimal{v: new(big.Float).SetPrec(decimalPrecisionBits)}
	}
	return Decimal{v: new(big.Float).SetPrec(decimalPrecisionBits).Set(v)}
}

// DecimalFromFloat64 constructs a Decimal from a float64, useful for bridging
// callers that already have binary-float coordinates.
func DecimalFromFloat64(f float64) Decimal {
	return Decimal{v: new(big.Float).SetPrec(decimalPrecisionBits).SetFloat64(f)}
}

func (d Decimal) big() *big.Float {
	if d.v == nil {
		return new(big.Float).SetPrec(decimalPrecisionBits)
	}
	return d.v
}

func (d Decimal) Add(o Decimal) Decimal {
	return Decimal{v: new(big.Float).SetPrec(decimalPrecisionBits).Add(d.big(), o.big())}
}

func (d Decimal) Sub(o Decimal) Decimal {
	return Decimal{v: new(big.Float).SetPrec(decimalPrecisionBits).Sub(d.big(), o.big())}
}

func (d Decimal) Mul(o Decimal) Decimal {
	return Decimal{v: new(big.Float).SetPrec(decimalPrecisionBits).Mul(d.big(), o.big())}
}

func (d Decimal) Div(o Decimal) Decimal {
	return Decimal{v: new(big.Float).SetPrec(decimalPrecisionBits).Quo(d.big(), o.big())}
}

func (d Decimal) Neg() Decimal {
	return Decimal{v: new(big.Float).SetPrec(decimalPrecisionBits).Neg(d.big())}
}

func (d Decimal) Abs() Decimal {
	return Decimal{v: new(big.Float).SetPrec(decimalPrecisionBits).Abs(d.big())}
}

func (d Decimal) Sqrt() Decimal {
	return Decimal{v: new(big.Float).SetPrec(decimalPrecisionBits).Sqrt(d.big())}
}

func (d Decimal) Cmp(o Decimal) int { return d.big().Cmp(o.big()) }
func (d Decimal) Sign() int         { return d.big().Sign() }
func (d Decimal) IsZero() bool      { return d.big().Sign() == 0 }

func (d Decimal) Float64() float64 {
	f, _ := d.big().Float64()
	return f
}

func (d Decimal) FromInt64(n int64) Decimal {
	return Decimal{v: new(big.Float).SetPrec(decimalPrecisionBits).SetInt64(n)}
}

func (d Decimal) Parse(s string) (Decimal, error) {
	v, _, err := big.ParseFloat(s, 10, decimalPrecisionBits, big.ToNearestEven)
	if err != nil {
		return Decimal{}, fmt.Errorf("scalar: parse Decimal %q: %w", s, err)
	}
	return Decimal{v: v}, nil
}

func (d Decimal) String() string { return d.big().Text('g', -1) }

var _ Number[Decimal] = Decimal{}
