// internal/system/movement.go
package system

import (
	"math"

	"github.com/olivia-tucker23/bevy-space-rts/internal/component"
	"github.com/olivia-tucker23/bevy-space-rts/internal/config"
	"github.com/olivia-tucker23/bevy-space-rts/internal/entity"
	"github.com/olivia-tucker23/bevy-space-rts/internal/types"
	"github.com/olivia-tucker23/bevy-space-rts/internal/utils"
)

var (
	steerMask  = component.MaskOf(component.KindBody, component.KindKinematics, component.KindPathQueue)
	movingMask = component.MaskOf(component.KindBody, component.KindKinematics)
	mountMask  = component.MaskOf(component.KindBody, component.KindParent, component.KindSubEntity)
)

// MovementSystem steers units along their path queues and keeps sub-entities
// at their mount point on the parent.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id := range s.ecs.Query(steerMask) {
		s.steer(id, deltaTime)
	}

	for id := range s.ecs.Query(movingMask) {
		if s.ecs.Has(id, component.KindSubEntity) {
			continue
		}
		body, _ := entity.Get[component.Body](s.ecs, id)
		kin, _ := entity.Get[component.Kinematics](s.ecs, id)
		body.Position.X += kin.DX * deltaTime
		body.Position.Y += kin.DY * deltaTime
		body.Position.Facing += kin.Angular * deltaTime
	}

	// Mounts are re-derived from the hull pose so they follow turns too.
	for id := range s.ecs.Query(mountMask) {
		parent, _ := entity.Get[component.Parent](s.ecs, id)
		hull, ok := entity.Get[component.Body](s.ecs, parent.Entity)
		if !ok {
			continue
		}
		body, _ := entity.Get[component.Body](s.ecs, id)
		body.Position = utils.Offset(hull.Position, parent.Offset, 1)
	}
}

// steer points the velocity at the head of the path queue and pops waypoints
// that will be reached this tick.
func (s *MovementSystem) steer(id types.EntityID, deltaTime float64) {
	body, _ := entity.Get[component.Body](s.ecs, id)
	kin, _ := entity.Get[component.Kinematics](s.ecs, id)
	path, _ := entity.Get[component.PathQueue](s.ecs, id)

	target, ok := path.Peek()
	if !ok {
		kin.DX, kin.DY = 0, 0
		return
	}

	speed := config.DefaultMoveSpeed
	if thruster, hasThruster := entity.Get[component.Thruster](s.ecs, id); hasThruster && thruster.Unidirectional > 0 {
		speed = thruster.Unidirectional
	}

	dx := target.X - body.Position.X
	dy := target.Y - body.Position.Y
	dist := math.Hypot(dx, dy)
	moveDistance := speed * deltaTime

	if dist <= moveDistance {
		path.Pop()
		if deltaTime > 0 {
			kin.DX, kin.DY = dx/deltaTime, dy/deltaTime
		} else {
			kin.DX, kin.DY = 0, 0
		}
		return
	}
	kin.DX = dx / dist * speed
	kin.DY = dy / dist * speed
	body.Position.Facing = math.Atan2(dy, dx)
}
