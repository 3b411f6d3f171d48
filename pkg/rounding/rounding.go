// Package rounding rounds float64 results to a fixed number of decimal
// places. Halves round away from zero, so 2.345 becomes 2.35 at two places
// and -2.5 becomes -3 at zero places.
package rounding

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/opd-ai/go-linalg/pkg/vector"
)

// Point is the number of digits kept after the decimal point
type Point int

// Supported precisions
const (
	Zero Point = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
)

// Valid reports whether p is between Zero and Ten
func (p Point) Valid() bool {
	return p >= Zero && p <= Ten
}

// Round rounds x to p decimal places. NaN and infinities are returned
// unchanged.
func Round(x float64, p Point) (float64, error) {
	if !p.Valid() {
		return 0, vector.NewError(vector.InvalidParameter, "rounding point %d outside [0, 10]", int(p))
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x, nil
	}
	// decimal works on the shortest decimal representation of x, so values
	// like 2.345 round as written instead of as their binary approximation.
	r, _ := decimal.NewFromFloat(x).Round(int32(p)).Float64()
	return r, nil
}

// RoundAll rounds every value in xs and returns the results in a new slice
func RoundAll(xs []float64, p Point) ([]float64, error) {
	if xs == nil {
		return nil, vector.NewError(vector.NullArgument, "values are nil")
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		r, err := Round(x, p)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
