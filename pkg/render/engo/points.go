// pkg/render/engo/points.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-linalg/pkg/vector"
)

// FromPoint converts an engo.Point into a 2-dimensional vector
func FromPoint(p engo.Point) (*vector.ArrayVector, error) {
	return vector.New2(float64(p.X), float64(p.Y))
}

// ToPoint converts a 2-dimensional vector into an engo.Point. Elements are
// narrowed to float32.
func ToPoint(v vector.Vector) (engo.Point, error) {
	if vector.IsNil(v) {
		return engo.Point{}, vector.NewError(vector.NullArgument, "vector is nil")
	}
	if v.Dimension() != 2 {
		return engo.Point{}, vector.NewError(vector.InvalidDimension,
			"engo points are 2-dimensional, got dimension %d", v.Dimension())
	}
	e := v.Elements()
	return engo.Point{X: float32(e[0]), Y: float32(e[1])}, nil
}

// ToPoints converts every vector in vs, failing on the first invalid one
func ToPoints(vs []vector.Vector) ([]engo.Point, error) {
	if vs == nil {
		return nil, vector.NewError(vector.NullArgument, "vector list is nil")
	}
	out := make([]engo.Point, len(vs))
	for i, v := range vs {
		p, err := ToPoint(v)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
