// internal/component/player.go
package component

import "github.com/olivia-tucker23/bevy-space-rts/internal/types"

// UnitIdentity names a unit and ties it to its owner. ID is issued once by the
// identity allocator and never changes afterwards.
type UnitIdentity struct {
	Name   string         // Human-readable name of the unit type
	Player types.PlayerID // Owning player
	ID     types.UnitID   // Global identifying number
}

func (*UnitIdentity) Kind() Kind { return KindUnitIdentity }
