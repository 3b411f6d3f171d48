// pkg/render/engo/follow.go
package engo

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-linalg/pkg/vector"
	"github.com/opd-ai/go-linalg/pkg/vectorops"
)

// FollowSystem keeps a Viewport centered on the centroid of the entities it
// tracks, easing toward it at followSpeed per second.
type FollowSystem struct {
	viewport *Viewport

	positions map[uint64]vector.Vector
	order     []uint64

	followSpeed float64
	smoothing   bool
}

// NewFollowSystem creates a follow system driving viewport
func NewFollowSystem(viewport *Viewport) (*FollowSystem, error) {
	if viewport == nil {
		return nil, vector.NewError(vector.NullArgument, "viewport is nil")
	}
	return &FollowSystem{
		viewport:    viewport,
		positions:   make(map[uint64]vector.Vector),
		followSpeed: 2.0,
		smoothing:   true,
	}, nil
}

// Add starts tracking basic at a 2-D world position
func (fs *FollowSystem) Add(basic *ecs.BasicEntity, position vector.Vector) error {
	if basic == nil {
		return vector.NewError(vector.NullArgument, "entity is nil")
	}
	if err := checkPosition(position); err != nil {
		return err
	}
	if _, ok := fs.positions[basic.ID()]; !ok {
		fs.order = append(fs.order, basic.ID())
	}
	fs.positions[basic.ID()] = position
	return nil
}

// Move updates the position of a tracked entity
func (fs *FollowSystem) Move(basic ecs.BasicEntity, position vector.Vector) error {
	if err := checkPosition(position); err != nil {
		return err
	}
	if _, ok := fs.positions[basic.ID()]; !ok {
		return vector.NewError(vector.InvalidParameter, "entity %d is not tracked", basic.ID())
	}
	fs.positions[basic.ID()] = position
	return nil
}

func checkPosition(position vector.Vector) error {
	if vector.IsNil(position) {
		return vector.NewError(vector.NullArgument, "position is nil")
	}
	if position.Dimension() != 2 {
		return vector.NewError(vector.InvalidDimension, "position must be 2-dimensional, got %d", position.Dimension())
	}
	return nil
}

// Remove satisfies the ecs.System interface
func (fs *FollowSystem) Remove(basic ecs.BasicEntity) {
	if _, ok := fs.positions[basic.ID()]; !ok {
		return
	}
	delete(fs.positions, basic.ID())
	for i, id := range fs.order {
		if id == basic.ID() {
			fs.order = append(fs.order[:i], fs.order[i+1:]...)
			break
		}
	}
}

// Update satisfies the ecs.System interface. With nothing tracked, or a
// non-positive dt while smoothing, the viewport stays where it is.
func (fs *FollowSystem) Update(dt float32) {
	target, err := fs.Target()
	if err != nil {
		return
	}
	if !fs.smoothing {
		_ = fs.viewport.SetCenter(target)
		return
	}

	step := fs.followSpeed * float64(dt)
	if !(step > 0) {
		return
	}
	if step > 1 {
		step = 1
	}
	delta, err := vectorops.Subtract(target, fs.viewport.Center())
	if err != nil {
		return
	}
	delta, err = vectorops.Scale(delta, step)
	if err != nil {
		return
	}
	next, err := vectorops.Add(fs.viewport.Center(), delta)
	if err != nil {
		return
	}
	_ = fs.viewport.SetCenter(next)
}

// Target returns the centroid of the tracked entities
func (fs *FollowSystem) Target() (*vector.ArrayVector, error) {
	if len(fs.order) == 0 {
		return nil, vector.NewError(vector.InvalidParameter, "no entities tracked")
	}
	vs := make([]vector.Vector, len(fs.order))
	for i, id := range fs.order {
		vs[i] = fs.positions[id]
	}
	sum, err := vectorops.AddAll(vs)
	if err != nil {
		return nil, err
	}
	return vectorops.Scale(sum, 1/float64(len(vs)))
}

// SetFollowSpeed sets the fraction of the remaining distance covered per second
func (fs *FollowSystem) SetFollowSpeed(speed float64) error {
	if speed <= 0 {
		return vector.NewError(vector.InvalidParameter, "follow speed must be positive, got %g", speed)
	}
	fs.followSpeed = speed
	return nil
}

// EnableSmoothing toggles easing; when disabled Update snaps to the target
func (fs *FollowSystem) EnableSmoothing(enabled bool) {
	fs.smoothing = enabled
}

var _ ecs.System = (*FollowSystem)(nil)
