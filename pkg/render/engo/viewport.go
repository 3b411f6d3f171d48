// pkg/render/engo/viewport.go
package engo

import (
	"math"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-linalg/pkg/vector"
	"github.com/opd-ai/go-linalg/pkg/vectorops"
)

// Viewport maps 2-D world vectors onto screen points around a center with
// a zoom factor.
type Viewport struct {
	center *vector.ArrayVector
	half   *vector.ArrayVector
	zoom   float64

	minZoom float64
	maxZoom float64
}

// NewViewport creates a viewport of the given screen size centered on the
// world origin at zoom 1.
func NewViewport(width, height float64) (*Viewport, error) {
	if width <= 0 || height <= 0 {
		return nil, vector.NewError(vector.InvalidParameter,
			"viewport size must be positive, got %gx%g", width, height)
	}
	half, err := vector.New2(width/2, height/2)
	if err != nil {
		return nil, err
	}
	return &Viewport{
		center:  vector.MustNew(0, 0),
		half:    half,
		zoom:    1,
		minZoom: 0.1,
		maxZoom: 3,
	}, nil
}

// Center returns the world position at the middle of the screen
func (vp *Viewport) Center() *vector.ArrayVector {
	return vp.center
}

// SetCenter moves the viewport to a 2-D world position
func (vp *Viewport) SetCenter(center vector.Vector) error {
	if vector.IsNil(center) {
		return vector.NewError(vector.NullArgument, "center is nil")
	}
	if center.Dimension() != 2 {
		return vector.NewError(vector.InvalidDimension, "center must be 2-dimensional, got %d", center.Dimension())
	}
	c, err := vector.FromSlice(center.Elements())
	if err != nil {
		return err
	}
	vp.center = c
	return nil
}

// Zoom returns the current zoom factor
func (vp *Viewport) Zoom() float64 {
	return vp.zoom
}

// SetZoom sets the zoom factor, clamped to the viewport's limits. NaN is
// ignored.
func (vp *Viewport) SetZoom(zoom float64) {
	if math.IsNaN(zoom) {
		return
	}
	vp.zoom = vp.clampZoom(zoom)
}

// SetZoomLimits sets the minimum and maximum zoom levels
func (vp *Viewport) SetZoomLimits(lo, hi float64) error {
	if lo <= 0 || hi < lo {
		return vector.NewError(vector.InvalidParameter, "invalid zoom limits [%g, %g]", lo, hi)
	}
	vp.minZoom = lo
	vp.maxZoom = hi
	vp.zoom = vp.clampZoom(vp.zoom)
	return nil
}

func (vp *Viewport) clampZoom(zoom float64) float64 {
	if zoom < vp.minZoom {
		return vp.minZoom
	}
	if zoom > vp.maxZoom {
		return vp.maxZoom
	}
	return zoom
}

// WorldToScreen converts a world position to a screen point
func (vp *Viewport) WorldToScreen(world vector.Vector) (engo.Point, error) {
	rel, err := vectorops.Subtract(world, vp.center)
	if err != nil {
		return engo.Point{}, err
	}
	scaled, err := vectorops.Scale(rel, vp.zoom)
	if err != nil {
		return engo.Point{}, err
	}
	screen, err := vectorops.Add(scaled, vp.half)
	if err != nil {
		return engo.Point{}, err
	}
	return ToPoint(screen)
}

// ScreenToWorld converts a screen point back to a world position
func (vp *Viewport) ScreenToWorld(p engo.Point) (*vector.ArrayVector, error) {
	screen, err := FromPoint(p)
	if err != nil {
		return nil, err
	}
	rel, err := vectorops.Subtract(screen, vp.half)
	if err != nil {
		return nil, err
	}
	unzoomed, err := vectorops.Scale(rel, 1/vp.zoom)
	if err != nil {
		return nil, err
	}
	return vectorops.Add(unzoomed, vp.center)
}
