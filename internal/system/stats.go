// internal/system/stats.go
package system

import (
	"sync"

	"github.com/olivia-tucker23/bevy-space-rts/internal/defs"
	"github.com/olivia-tucker23/bevy-space-rts/internal/event"
)

// SpawnStats counts spawn outcomes per unit type. It listens on UnitSpawned
// and SpawnRejected; readers on other goroutines may call Snapshot.
type SpawnStats struct {
	mu         sync.Mutex
	spawned    map[defs.UnitType]int
	rejected   map[defs.UnitType]int
	hardpoints int
}

func NewSpawnStats(eventDispatcher *event.Dispatcher) *SpawnStats {
	s := &SpawnStats{
		spawned:  make(map[defs.UnitType]int),
		rejected: make(map[defs.UnitType]int),
	}
	if eventDispatcher != nil {
		eventDispatcher.Subscribe(event.UnitSpawned, s)
		eventDispatcher.Subscribe(event.SpawnRejected, s)
	}
	return s
}

func (s *SpawnStats) OnEvent(e event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch data := e.Data.(type) {
	case event.UnitSpawnedData:
		s.spawned[data.UnitType]++
		s.hardpoints += len(data.Hardpoints)
	case event.SpawnRejectedData:
		s.rejected[data.Request.UnitType]++
	}
}

// SpawnCounts is a point-in-time copy of SpawnStats.
type SpawnCounts struct {
	Spawned    map[defs.UnitType]int
	Rejected   map[defs.UnitType]int
	Hardpoints int
}

// Total returns the number of primary units spawned.
func (c SpawnCounts) Total() int {
	n := 0
	for _, v := range c.Spawned {
		n += v
	}
	return n
}

// TotalRejected returns the number of rejected requests.
func (c SpawnCounts) TotalRejected() int {
	n := 0
	for _, v := range c.Rejected {
		n += v
	}
	return n
}

func (s *SpawnStats) Snapshot() SpawnCounts {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := SpawnCounts{
		Spawned:    make(map[defs.UnitType]int, len(s.spawned)),
		Rejected:   make(map[defs.UnitType]int, len(s.rejected)),
		Hardpoints: s.hardpoints,
	}
	for k, v := range s.spawned {
		c.Spawned[k] = v
	}
	for k, v := range s.rejected {
		c.Rejected[k] = v
	}
	return c
}
