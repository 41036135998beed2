// internal/event/types.go
package event

import (
	"github.com/olivia-tucker23/bevy-space-rts/internal/component"
	"github.com/olivia-tucker23/bevy-space-rts/internal/defs"
	"github.com/olivia-tucker23/bevy-space-rts/internal/types"
)

const (
	SpawnRequested EventType = "SpawnRequested" // Data: SpawnRequest
	UnitSpawned    EventType = "UnitSpawned"    // Data: UnitSpawnedData
	SpawnRejected  EventType = "SpawnRejected"  // Data: SpawnRejectedData
)

// SpawnRequest asks for one unit. Each occurrence is processed at most once;
// duplicates produce duplicate units.
type SpawnRequest struct {
	UnitType defs.UnitType
	Owner    types.PlayerID
	Position component.Pose
}

// UnitSpawnedData describes a fully assembled unit.
type UnitSpawnedData struct {
	Entity     types.EntityID
	UnitID     types.UnitID
	UnitType   defs.UnitType
	Owner      types.PlayerID
	Hardpoints []types.EntityID
}

// SpawnRejectedData reports a dropped request.
type SpawnRejectedData struct {
	Request SpawnRequest
	Reason  error
}
