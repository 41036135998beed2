// internal/app/skirmish.go
package app

import (
	"math"

	"github.com/olivia-tucker23/bevy-space-rts/internal/defs"
	"github.com/olivia-tucker23/bevy-space-rts/internal/types"
	"github.com/olivia-tucker23/bevy-space-rts/internal/utils"
)

// HostilePlayer owns the opposing side of a skirmish.
const HostilePlayer types.PlayerID = 1

// skirmishTable weights the unit types used for random fleets. Inert types are
// listed so the rejection path gets exercised too.
var skirmishTable = []utils.WeightedUnit{
	{UnitType: defs.DefaultUnit, Weight: 3},
	{UnitType: defs.Fighter, Weight: 6},
	{UnitType: defs.Tank, Weight: 1},
}

// SpawnRandom queues a random unit for owner inside the rectangle
// [minX, maxX) x [minY, maxY).
func (g *Game) SpawnRandom(owner types.PlayerID, minX, minY, maxX, maxY float64) error {
	t := g.Rng.ChooseWeighted(skirmishTable)
	x := g.Rng.Range(minX, maxX)
	y := g.Rng.Range(minY, maxY)
	facing := 0.0
	if owner != g.LocalPlayer() {
		facing = math.Pi
	}
	return g.RequestSpawn(t, owner, x, y, facing)
}

// QueueSkirmish queues perSide random units for the local player on the left
// third of the field and as many hostile units on the right third.
func (g *Game) QueueSkirmish(perSide int, width, height float64) error {
	hostile := HostilePlayer
	if hostile == g.LocalPlayer() {
		hostile++
	}
	for i := 0; i < perSide; i++ {
		if err := g.SpawnRandom(g.LocalPlayer(), 0, 0, width/3, height); err != nil {
			return err
		}
		if err := g.SpawnRandom(hostile, 2*width/3, 0, width, height); err != nil {
			return err
		}
	}
	return nil
}
