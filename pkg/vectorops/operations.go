// Package vectorops provides stateless operations over vector.Vector values.
// Every function validates its arguments before computing: nil vectors fail
// with vector.ErrNullArgument and incompatible dimensions with
// vector.ErrInvalidDimension. Inputs are never modified; each call returns a
// freshly allocated result.
package vectorops

import (
	"context"
	"math"
	"sync/atomic"

	"github.com/opd-ai/go-linalg/pkg/logging"
	"github.com/opd-ai/go-linalg/pkg/vector"
)

var logger atomic.Pointer[logging.Logger]

func init() {
	logger.Store(logging.NewLogger())
}

// SetLogger replaces the logger that receives validation failures at DEBUG
// level. A nil logger silences them.
func SetLogger(l *logging.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	logger.Store(l)
}

// fail logs err against op and returns it unchanged.
func fail(op string, err error) error {
	logger.Load().Debug(context.Background(), "vector operation rejected",
		"op", op, "kind", vector.KindOf(err).String(), "error", err.Error())
	return err
}

func requireVector(op string, v vector.Vector, name string) error {
	if vector.IsNil(v) {
		return fail(op, vector.NewError(vector.NullArgument, "%s is nil", name))
	}
	return nil
}

// requirePair checks both operands are present and share a dimension.
func requirePair(op string, v1, v2 vector.Vector) error {
	if err := requireVector(op, v1, "first vector"); err != nil {
		return err
	}
	if err := requireVector(op, v2, "second vector"); err != nil {
		return err
	}
	if v1.Dimension() != v2.Dimension() {
		return fail(op, vector.NewError(vector.InvalidDimension,
			"dimensions differ: %d and %d", v1.Dimension(), v2.Dimension()))
	}
	return nil
}

// result builds the output vector of op. Arithmetic on infinite elements
// can yield NaN, which is reported rather than returned.
func result(op string, out []float64) (*vector.ArrayVector, error) {
	v, err := vector.FromSlice(out)
	if err != nil {
		return nil, fail(op, err)
	}
	return v, nil
}

// combine applies fn elementwise to two vectors of equal dimension.
func combine(op string, v1, v2 vector.Vector, fn func(x, y float64) float64) (*vector.ArrayVector, error) {
	a, b := v1.Elements(), v2.Elements()
	for i := range a {
		a[i] = fn(a[i], b[i])
	}
	return result(op, a)
}

func add(x, y float64) float64 { return x + y }
func sub(x, y float64) float64 { return x - y }

// Add returns the elementwise sum of v1 and v2
func Add(v1, v2 vector.Vector) (*vector.ArrayVector, error) {
	if err := requirePair("add", v1, v2); err != nil {
		return nil, err
	}
	return combine("add", v1, v2, add)
}

// Subtract returns the elementwise difference v1 - v2
func Subtract(v1, v2 vector.Vector) (*vector.ArrayVector, error) {
	if err := requirePair("subtract", v1, v2); err != nil {
		return nil, err
	}
	return combine("subtract", v1, v2, sub)
}

// AddAll sums the vectors left to right. A single vector yields a copy.
func AddAll(vs []vector.Vector) (*vector.ArrayVector, error) {
	return fold("add_all", vs, add)
}

// SubtractAll subtracts every subsequent vector from the first:
// vs[0] - vs[1] - vs[2] - ...
func SubtractAll(vs []vector.Vector) (*vector.ArrayVector, error) {
	return fold("subtract_all", vs, sub)
}

func fold(op string, vs []vector.Vector, fn func(x, y float64) float64) (*vector.ArrayVector, error) {
	if len(vs) == 0 {
		return nil, fail(op, vector.NewError(vector.InvalidParameter, "vector list is empty"))
	}
	for i, v := range vs {
		if vector.IsNil(v) {
			return nil, fail(op, vector.NewError(vector.NullArgument, "vector %d is nil", i))
		}
		if d := vs[0].Dimension(); v.Dimension() != d {
			return nil, fail(op, vector.NewError(vector.InvalidDimension,
				"vector %d has dimension %d, expected %d", i, v.Dimension(), d))
		}
	}
	acc := vs[0].Elements()
	for _, v := range vs[1:] {
		for i, x := range v.Elements() {
			acc[i] = fn(acc[i], x)
		}
	}
	return result(op, acc)
}

// Scale multiplies every element of v by factor
func Scale(v vector.Vector, factor float64) (*vector.ArrayVector, error) {
	if err := requireVector("scale", v, "vector"); err != nil {
		return nil, err
	}
	return mapElements("scale", v, func(x float64) float64 { return x * factor })
}

// AddScalar adds s to every element of v
func AddScalar(v vector.Vector, s float64) (*vector.ArrayVector, error) {
	if err := requireVector("add_scalar", v, "vector"); err != nil {
		return nil, err
	}
	return mapElements("add_scalar", v, func(x float64) float64 { return x + s })
}

// Inverse returns the elementwise negation of v
func Inverse(v vector.Vector) (*vector.ArrayVector, error) {
	if err := requireVector("inverse", v, "vector"); err != nil {
		return nil, err
	}
	return mapElements("inverse", v, func(x float64) float64 { return -x })
}

func mapElements(op string, v vector.Vector, fn func(float64) float64) (*vector.ArrayVector, error) {
	e := v.Elements()
	for i, x := range e {
		e[i] = fn(x)
	}
	return result(op, e)
}

// DotProduct returns the sum of elementwise products
func DotProduct(v1, v2 vector.Vector) (float64, error) {
	if err := requirePair("dot_product", v1, v2); err != nil {
		return 0, err
	}
	return dot(v1.Elements(), v2.Elements()), nil
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// CrossProduct returns the 3-dimensional cross product v1 x v2. Both
// vectors must have dimension exactly 3.
func CrossProduct(v1, v2 vector.Vector) (*vector.ArrayVector, error) {
	if err := requireVector("cross_product", v1, "first vector"); err != nil {
		return nil, err
	}
	if err := requireVector("cross_product", v2, "second vector"); err != nil {
		return nil, err
	}
	if v1.Dimension() != 3 || v2.Dimension() != 3 {
		return nil, fail("cross_product", vector.NewError(vector.InvalidDimension,
			"cross product needs two 3-dimensional vectors, got %d and %d", v1.Dimension(), v2.Dimension()))
	}
	a, b := v1.Elements(), v2.Elements()
	return result("cross_product", []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	})
}

// cosineOf returns the cosine between two non-zero vectors, clamped to
// [-1, 1]. Dividing by the root of the product of squared norms keeps
// parallel vectors at exactly 1; the product of magnitudes is the fallback
// when that product overflows or underflows.
func cosineOf(v1, v2 vector.Vector) float64 {
	a, b := v1.Elements(), v2.Elements()
	den := math.Sqrt(dot(a, a) * dot(b, b))
	if den == 0 || math.IsInf(den, 0) {
		den = v1.Magnitude() * v2.Magnitude()
	}
	return math.Max(-1, math.Min(1, dot(a, b)/den))
}

// Angle returns the angle between v1 and v2, in radians when inRadians is
// true and in degrees otherwise. The cosine is clamped to [-1, 1] so nearly
// parallel vectors never produce NaN.
func Angle(v1, v2 vector.Vector, inRadians bool) (float64, error) {
	if err := requirePair("angle", v1, v2); err != nil {
		return 0, err
	}
	if v1.Magnitude() == 0 || v2.Magnitude() == 0 {
		return 0, fail("angle", vector.NewError(vector.InvalidParameter,
			"angle with a zero-magnitude vector is undefined"))
	}
	r := math.Acos(cosineOf(v1, v2))
	if inRadians {
		return r, nil
	}
	return r * 180 / math.Pi, nil
}

// Transpose resizes v to dimension d, truncating trailing elements or
// padding with zeros. Equal dimensions yield a copy.
func Transpose(v vector.Vector, d int) (*vector.ArrayVector, error) {
	if err := requireVector("transpose", v, "vector"); err != nil {
		return nil, err
	}
	if d < 1 {
		return nil, fail("transpose", vector.NewError(vector.InvalidParameter,
			"target dimension must be at least 1, got %d", d))
	}
	out := make([]float64, d)
	copy(out, v.Elements())
	return result("transpose", out)
}
