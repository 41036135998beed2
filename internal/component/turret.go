// internal/component/turret.go
package component

import "github.com/olivia-tucker23/bevy-space-rts/internal/types"

// TurretMount marks an entity as a firing hardpoint.
type TurretMount struct {
	ReloadTime float64 // Seconds between shots
}

func (*TurretMount) Kind() Kind { return KindTurretMount }

// Parent points from a sub-entity back to the primary entity it belongs to.
// The reference does not own the parent: it may outlive it, and nothing on the
// parent side tracks its children.
type Parent struct {
	Entity types.EntityID
	Offset Vec2 // Mount position in the parent's frame, world units
}

func (*Parent) Kind() Kind { return KindParent }
