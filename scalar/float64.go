package scalar

import (
	"fmt"
	"math"
	"strconv"
)

// Float64 is the binary floating-point scalar family: a defined float64 type
// implementing Number[Float64] directly via Go's built-in float arithmetic.
// This is the "~53-bit" family spec.md §3 requires.
type Float64 float64

func (f Float64) Add(o Float64) Float64 { return f + o }
func (f Float64) Sub(o Float64) Float64 { return f - o }
func (f Float64) Mul(o Float64) Float64 { return f * o }
func (f Float64) Div(o Float64) Float64 { return f / o }
func (f Float64) Neg() Float64          { return -f }
func (f Float64) Abs() Float64          { return Float64(math.Abs(float64(f))) }
func (f Float64) Sqrt() Float64         { return Float64(math.Sqrt(float64(f))) }

func (f Float64) Cmp(o Float64) int {
	switch {
	case f < o:
		return -1
	case f > o:
		return 1
	default:
		return 0
	}
}

func (f Float64) Sign() int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	default:
		return 0
	}
}

func (f Float64) IsZero() bool      { return f == 0 }
func (f Float64) Float64() float64  { return float64(f) }
func (f Float64) FromInt64(n int64) Float64 { return Float64(n) }

func (f Float64) Parse(s string) (Float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("scalar: parse Float64 %q: %w", s, err)
	}
	return Float64(v), nil
}

func (f Float64) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

var _ Number[Float64] = Float64(0)
