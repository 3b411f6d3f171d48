// pkg/vectorops/projection.go
package vectorops

import (
	"math"

	"github.com/opd-ai/go-linalg/pkg/rounding"
	"github.com/opd-ai/go-linalg/pkg/vector"
)

func requireNonZero(op string, v vector.Vector, name string) error {
	if v.Magnitude() == 0 {
		return fail(op, vector.NewError(vector.InvalidParameter, "%s has zero magnitude", name))
	}
	return nil
}

func requireTolerance(op string, tol float64) error {
	if tol < 0 || math.IsNaN(tol) {
		return fail(op, vector.NewError(vector.InvalidParameter, "tolerance must be non-negative, got %g", tol))
	}
	return nil
}

// ScalarProjection returns the signed length of v projected onto onto
func ScalarProjection(v, onto vector.Vector) (float64, error) {
	if err := requirePair("scalar_projection", v, onto); err != nil {
		return 0, err
	}
	if err := requireNonZero("scalar_projection", onto, "projection target"); err != nil {
		return 0, err
	}
	return dot(v.Elements(), onto.Elements()) / onto.Magnitude(), nil
}

// VectorProjection returns the component of v parallel to onto
func VectorProjection(v, onto vector.Vector) (*vector.ArrayVector, error) {
	sp, err := ScalarProjection(v, onto)
	if err != nil {
		return nil, err
	}
	k := sp / onto.Magnitude()
	return mapElements("vector_projection", onto, func(x float64) float64 { return x * k })
}

// VectorRejection returns the component of v orthogonal to onto, so that
// projection + rejection == v.
func VectorRejection(v, onto vector.Vector) (*vector.ArrayVector, error) {
	p, err := VectorProjection(v, onto)
	if err != nil {
		return nil, err
	}
	return combine("vector_rejection", v, p, sub)
}

// cosine returns the cosine of the angle between two non-zero vectors of
// equal dimension.
func cosine(op string, v1, v2 vector.Vector) (float64, error) {
	if err := requirePair(op, v1, v2); err != nil {
		return 0, err
	}
	if err := requireNonZero(op, v1, "first vector"); err != nil {
		return 0, err
	}
	if err := requireNonZero(op, v2, "second vector"); err != nil {
		return 0, err
	}
	return cosineOf(v1, v2), nil
}

// IsParallel reports whether v1 and v2 point along the same line, in the
// same or opposite direction. tol bounds 1 - |cos θ|.
func IsParallel(v1, v2 vector.Vector, tol float64) (bool, error) {
	if err := requireTolerance("is_parallel", tol); err != nil {
		return false, err
	}
	cos, err := cosine("is_parallel", v1, v2)
	if err != nil {
		return false, err
	}
	return 1-math.Abs(cos) <= tol, nil
}

// IsOrthogonal reports whether v1 and v2 are perpendicular. tol bounds |cos θ|.
func IsOrthogonal(v1, v2 vector.Vector, tol float64) (bool, error) {
	if err := requireTolerance("is_orthogonal", tol); err != nil {
		return false, err
	}
	cos, err := cosine("is_orthogonal", v1, v2)
	if err != nil {
		return false, err
	}
	return math.Abs(cos) <= tol, nil
}

// Distance returns the Euclidean distance between v1 and v2
func Distance(v1, v2 vector.Vector) (float64, error) {
	d, err := Subtract(v1, v2)
	if err != nil {
		return 0, err
	}
	return d.Magnitude(), nil
}

// Normalize returns the unit vector in the direction of v
func Normalize(v vector.Vector) (*vector.ArrayVector, error) {
	if err := requireVector("normalize", v, "vector"); err != nil {
		return nil, err
	}
	if err := requireNonZero("normalize", v, "vector"); err != nil {
		return nil, err
	}
	m := v.Magnitude()
	return mapElements("normalize", v, func(x float64) float64 { return x / m })
}

// Round rounds every element of v to p decimal places
func Round(v vector.Vector, p rounding.Point) (*vector.ArrayVector, error) {
	if err := requireVector("round", v, "vector"); err != nil {
		return nil, err
	}
	e, err := rounding.RoundAll(v.Elements(), p)
	if err != nil {
		return nil, fail("round", err)
	}
	return result("round", e)
}

// ApproxEqual reports whether v1 and v2 have the same dimension and every
// pair of elements differs by at most tol.
func ApproxEqual(v1, v2 vector.Vector, tol float64) (bool, error) {
	if err := requireVector("approx_equal", v1, "first vector"); err != nil {
		return false, err
	}
	if err := requireVector("approx_equal", v2, "second vector"); err != nil {
		return false, err
	}
	if err := requireTolerance("approx_equal", tol); err != nil {
		return false, err
	}
	if v1.Dimension() != v2.Dimension() {
		return false, nil
	}
	a, b := v1.Elements(), v2.Elements()
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false, nil
		}
	}
	return true, nil
}
