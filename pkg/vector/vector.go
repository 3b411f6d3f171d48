// Package vector provides an immutable, dimension-tagged dense vector over
// float64 values. Every constructor funnels into a single validating builder,
// so vectors built from slices, sets, maps or discrete arguments with the same
// element sequence are indistinguishable.
package vector

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/spaolacci/murmur3"
)

// Vector is an immutable point in n-dimensional real space
type Vector interface {
	// Dimension returns the number of elements, fixed at construction.
	Dimension() int
	// Elements returns a copy of the element sequence.
	Elements() []float64
	// At returns the element at index i.
	At(i int) (float64, error)
	// Magnitude returns the Euclidean norm.
	Magnitude() float64
	// Scale returns a new vector with every element multiplied by factor.
	Scale(factor float64) Vector
	// Equals reports whether other has the same dimension and elements.
	Equals(other Vector) bool
	// Hash returns a digest consistent with Equals.
	Hash() uint64
	// Clone returns an independent copy.
	Clone() Vector
	String() string
}

// ArrayVector is the dense Vector implementation backed by a float64 slice.
// The slice is owned by the vector and never handed out.
type ArrayVector struct {
	e []float64
	m float64
}

var _ Vector = (*ArrayVector)(nil)

// Dimension returns the number of elements
func (v *ArrayVector) Dimension() int {
	return len(v.e)
}

// Elements returns a copy of the elements
func (v *ArrayVector) Elements() []float64 {
	out := make([]float64, len(v.e))
	copy(out, v.e)
	return out
}

// At returns the element at index i
func (v *ArrayVector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.e) {
		return 0, NewError(InvalidParameter, "index %d out of range [0, %d)", i, len(v.e))
	}
	return v.e[i], nil
}

// Magnitude returns the Euclidean norm of the vector
func (v *ArrayVector) Magnitude() float64 {
	return v.m
}

// IsZero reports whether every element is zero
func (v *ArrayVector) IsZero() bool {
	return v.m == 0
}

// Scale multiplies the vector by a scalar value. The result is not
// validated: a NaN factor, or an infinite factor against a zero element,
// yields NaN elements. vectorops.Scale rejects those with ErrNullArgument.
func (v *ArrayVector) Scale(factor float64) Vector {
	return v.apply(func(x float64) float64 { return x * factor })
}

func (v *ArrayVector) apply(fn func(float64) float64) *ArrayVector {
	out := make([]float64, len(v.e))
	for i, x := range v.e {
		out[i] = fn(x)
	}
	return wrap(out)
}

// Equals reports whether other has the same dimension and element values
func (v *ArrayVector) Equals(other Vector) bool {
	if IsNil(other) {
		return false
	}
	if o, ok := other.(*ArrayVector); ok {
		if v == o {
			return true
		}
		return equalElements(v.e, o.e)
	}
	return equalElements(v.e, other.Elements())
}

func equalElements(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Hash returns a murmur3 digest of the dimension and element bits.
// Negative zero hashes like positive zero since the two compare equal.
func (v *ArrayVector) Hash() uint64 {
	h := murmur3.New64()
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(len(v.e)))
	h.Write(buf)
	for _, x := range v.e {
		if x == 0 {
			x = 0
		}
		binary.LittleEndian.PutUint64(buf, math.Float64bits(x))
		h.Write(buf)
	}
	return h.Sum64()
}

// Clone returns an independent copy of the vector
func (v *ArrayVector) Clone() Vector {
	return wrap(v.Elements())
}

// Cosines returns the direction cosines of the vector
func (v *ArrayVector) Cosines() ([]float64, error) {
	if v.IsZero() {
		return nil, NewError(InvalidParameter, "direction cosines of a zero vector are undefined")
	}
	out := make([]float64, len(v.e))
	for i, x := range v.e {
		out[i] = x / v.m
	}
	return out, nil
}

// DirectionAngles returns the angle between the vector and each axis
func (v *ArrayVector) DirectionAngles(inRadians bool) ([]float64, error) {
	c, err := v.Cosines()
	if err != nil {
		return nil, err
	}
	for i, x := range c {
		r := math.Acos(math.Max(-1, math.Min(1, x)))
		if !inRadians {
			r = r * 180 / math.Pi
		}
		c[i] = r
	}
	return c, nil
}

// String renders the elements as <e1, e2, ...>
func (v *ArrayVector) String() string {
	var b strings.Builder
	b.WriteByte('<')
	for i, x := range v.e {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	b.WriteByte('>')
	return b.String()
}

// IsNil reports whether v is nil, including a nil *ArrayVector stored in
// the interface.
func IsNil(v Vector) bool {
	if v == nil {
		return true
	}
	av, ok := v.(*ArrayVector)
	return ok && av == nil
}
