// pkg/vector/construct.go
package vector

import (
	"cmp"
	"math"
	"math/rand"
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating point type
type Number interface {
	constraints.Integer | constraints.Float
}

// build copies and validates elems. It is the single entry point every
// constructor goes through.
func build(elems []float64) (*ArrayVector, error) {
	if elems == nil {
		return nil, NewError(NullArgument, "elements are nil")
	}
	if len(elems) == 0 {
		return nil, NewError(InvalidParameter, "vector must have at least one element")
	}
	for i, x := range elems {
		if math.IsNaN(x) {
			return nil, NewError(NullArgument, "element %d is not a number", i)
		}
	}
	return wrap(slices.Clone(elems)), nil
}

// wrap takes ownership of elems without validating them.
func wrap(elems []float64) *ArrayVector {
	var s float64
	for _, x := range elems {
		s += x * x
	}
	return &ArrayVector{e: elems, m: math.Sqrt(s)}
}

// New creates a vector from the given elements in order
func New(elems ...float64) (*ArrayVector, error) {
	if elems == nil {
		return nil, NewError(InvalidParameter, "vector must have at least one element")
	}
	return build(elems)
}

// MustNew is like New but panics on error. It is meant for tests and
// package-level fixtures.
func MustNew(elems ...float64) *ArrayVector {
	v, err := New(elems...)
	if err != nil {
		panic(err)
	}
	return v
}

// FromSlice creates a vector from a slice; the slice is copied
func FromSlice(elems []float64) (*ArrayVector, error) {
	return build(elems)
}

// FromNumbers creates a vector from a slice of any numeric type
func FromNumbers[N Number](elems []N) (*ArrayVector, error) {
	if elems == nil {
		return nil, NewError(NullArgument, "elements are nil")
	}
	out := make([]float64, len(elems))
	for i, x := range elems {
		out[i] = float64(x)
	}
	return build(out)
}

// FromSet creates a vector from the members of a set. Members are ordered
// ascending, since map iteration order is unspecified.
func FromSet[N Number](set map[N]struct{}) (*ArrayVector, error) {
	if set == nil {
		return nil, NewError(NullArgument, "set is nil")
	}
	out := make([]float64, 0, len(set))
	for x := range set {
		out = append(out, float64(x))
	}
	slices.Sort(out)
	return build(out)
}

// FromMap creates a vector from the values of m, ordered by ascending key
func FromMap[K cmp.Ordered, N Number](m map[K]N) (*ArrayVector, error) {
	if m == nil {
		return nil, NewError(NullArgument, "map is nil")
	}
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]float64, len(keys))
	for i, k := range keys {
		out[i] = float64(m[k])
	}
	return build(out)
}

// New2 creates a 2-dimensional vector
func New2(x, y float64) (*ArrayVector, error) {
	return build([]float64{x, y})
}

// New3 creates a 3-dimensional vector
func New3(x, y, z float64) (*ArrayVector, error) {
	return build([]float64{x, y, z})
}

// New4 creates a 4-dimensional vector
func New4(x, y, z, t float64) (*ArrayVector, error) {
	return build([]float64{x, y, z, t})
}

// Zero creates the zero vector of dimension d
func Zero(d int) (*ArrayVector, error) {
	return Generate(d, func(int) float64 { return 0 })
}

// Ones creates a vector of dimension d with every element set to one
func Ones(d int) (*ArrayVector, error) {
	return Generate(d, func(int) float64 { return 1 })
}

// Generate creates a vector of dimension d whose i-th element is fn(i)
func Generate(d int, fn func(i int) float64) (*ArrayVector, error) {
	if fn == nil {
		return nil, NewError(NullArgument, "generator is nil")
	}
	if d < 1 {
		return nil, NewError(InvalidParameter, "dimension must be at least 1, got %d", d)
	}
	out := make([]float64, d)
	for i := range out {
		out[i] = fn(i)
	}
	return build(out)
}

// Random creates a vector of dimension d with elements drawn uniformly from
// [lo, hi) using rng.
func Random(d int, lo, hi float64, rng *rand.Rand) (*ArrayVector, error) {
	if rng == nil {
		return nil, NewError(NullArgument, "random source is nil")
	}
	if lo > hi {
		return nil, NewError(InvalidParameter, "lower bound %g is greater than upper bound %g", lo, hi)
	}
	return Generate(d, func(int) float64 {
		return lo + rng.Float64()*(hi-lo)
	})
}
