// internal/component/movement.go
package component

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// Pose is a position plus a facing angle in radians.
type Pose struct {
	X, Y   float64
	Facing float64
}

// Body is the spatial footprint of an entity.
type Body struct {
	Position        Pose
	Size            Vec2
	SelectionRadius float64
}

// NewBody derives the selection radius from the footprint. The radius is fixed
// at construction and never recomputed.
func NewBody(position Pose, size Vec2, scale float64) *Body {
	radius := (size.X + size.Y) / 4 * scale
	return &Body{
		Position:        position,
		Size:            size,
		SelectionRadius: math.Max(radius, 0),
	}
}

func (*Body) Kind() Kind { return KindBody }

// Kinematics holds linear and angular velocity. The zero value is at rest.
type Kinematics struct {
	DX, DY  float64
	Angular float64
}

func (*Kinematics) Kind() Kind { return KindKinematics }

// Thruster describes how much thrust an entity can produce.
type Thruster struct {
	Unidirectional  float64 // Thrust along the facing
	Omnidirectional float64 // Thrust in any direction
}

func (*Thruster) Kind() Kind { return KindThruster }

// PathQueue is the ordered list of waypoints an entity will follow.
type PathQueue struct {
	fifo[Vec2]
}

func (*PathQueue) Kind() Kind { return KindPathQueue }
