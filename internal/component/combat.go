// internal/component/combat.go
package component

import "github.com/olivia-tucker23/bevy-space-rts/internal/types"

// Health: hit points. Consumers keep 0 <= Current <= Max.
type Health struct {
	Max, Current int
}

// FullHealth returns a Health at its maximum.
func FullHealth(max int) *Health {
	return &Health{Max: max, Current: max}
}

func (*Health) Kind() Kind { return KindHealth }

// Shield: same contract as Health.
type Shield struct {
	Max, Current int
}

// FullShield returns a Shield at its maximum.
func FullShield(max int) *Shield {
	return &Shield{Max: max, Current: max}
}

func (*Shield) Kind() Kind { return KindShield }

// EngagementRange: detection and firing distances in world units.
type EngagementRange struct {
	Sight float64
	Fire  float64 // Range at which the unit can fire
}

func (*EngagementRange) Kind() Kind { return KindEngagementRange }

// TargetQueue is a FIFO of entities this unit intends to engage.
type TargetQueue struct {
	fifo[types.EntityID]
}

func (*TargetQueue) Kind() Kind { return KindTargetQueue }
