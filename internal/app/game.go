// internal/app/game.go
package app

import (
	"fmt"
	"math"

	"github.com/olivia-tucker23/bevy-space-rts/internal/component"
	"github.com/olivia-tucker23/bevy-space-rts/internal/config"
	"github.com/olivia-tucker23/bevy-space-rts/internal/defs"
	"github.com/olivia-tucker23/bevy-space-rts/internal/entity"
	"github.com/olivia-tucker23/bevy-space-rts/internal/event"
	"github.com/olivia-tucker23/bevy-space-rts/internal/identity"
	"github.com/olivia-tucker23/bevy-space-rts/internal/interfaces"
	"github.com/olivia-tucker23/bevy-space-rts/internal/system"
	"github.com/olivia-tucker23/bevy-space-rts/internal/types"
	"github.com/olivia-tucker23/bevy-space-rts/internal/utils"
	"github.com/olivia-tucker23/bevy-space-rts/pkg/logger"
)

// Game holds the simulation shared by every front end.
type Game struct {
	Settings        config.Settings
	ECS             *entity.ECS
	Catalogue       *defs.Catalogue
	IDs             *identity.Allocator
	EventDispatcher *event.Dispatcher
	SpawnSystem     *system.SpawnSystem
	MovementSystem  *system.MovementSystem
	SelectionSystem *system.SelectionSystem
	Stats           *system.SpawnStats
	Rng             *utils.PRNGService
	SpeedMultiplier float64

	// Game state
	gameTime      float64
	isPaused      bool
	speedLevel    int
	lastRejection string
}

// NewGame builds a simulation from settings. The unit catalogue comes from
// settings.UnitsFile when set, from the built-in table otherwise.
func NewGame(settings config.Settings, seed int64) (*Game, error) {
	catalogue, err := loadCatalogue(settings.UnitsFile)
	if err != nil {
		return nil, err
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	ids := identity.NewAllocator()
	g := &Game{
		Settings:        settings,
		ECS:             ecs,
		Catalogue:       catalogue,
		IDs:             ids,
		EventDispatcher: eventDispatcher,
		SpawnSystem:     system.NewSpawnSystem(ecs, catalogue, ids, eventDispatcher, system.SpawnConfigFrom(settings)),
		MovementSystem:  system.NewMovementSystem(ecs),
		SelectionSystem: system.NewSelectionSystem(ecs),
		Stats:           system.NewSpawnStats(eventDispatcher),
		Rng:             utils.NewPRNGService(seed),
		SpeedMultiplier: 1,
	}

	eventDispatcher.Subscribe(event.SpawnRejected, &GameEventListener{game: g})
	return g, nil
}

func loadCatalogue(path string) (*defs.Catalogue, error) {
	if path == "" {
		return defs.DefaultCatalogue()
	}
	return defs.LoadCatalogue(path)
}

// GameEventListener keeps the last spawn rejection for the HUD.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	if data, ok := e.Data.(event.SpawnRejectedData); ok {
		l.game.lastRejection = fmt.Sprintf("%s: %v", data.Request.UnitType, data.Reason)
	}
}

// Update progresses the simulation by one frame. A returned error is fatal.
func (g *Game) Update(deltaTime float64) error {
	if g.isPaused {
		return nil
	}
	dt := deltaTime * g.SpeedMultiplier
	g.gameTime += dt

	if err := g.SpawnSystem.Update(dt); err != nil {
		return err
	}
	g.MovementSystem.Update(dt)
	return nil
}

// RequestSpawn queues a unit for the next frame.
func (g *Game) RequestSpawn(t defs.UnitType, owner types.PlayerID, x, y, facing float64) error {
	return g.SpawnSystem.Enqueue(event.SpawnRequest{
		UnitType: t,
		Owner:    owner,
		Position: component.Pose{X: x, Y: y, Facing: utils.NormalizeAngle(facing)},
	})
}

// LocalPlayer is the player controlling this client.
func (g *Game) LocalPlayer() types.PlayerID {
	return g.Settings.LocalPlayer
}

func (g *Game) HandleSpeedClick() {
	g.speedLevel = (g.speedLevel + 1) % 3
	g.SpeedMultiplier = math.Pow(2, float64(g.speedLevel))
}

// SpeedLevel is 0 at normal speed and counts doublings.
func (g *Game) SpeedLevel() int {
	return g.speedLevel
}

func (g *Game) HandlePauseClick() {
	g.isPaused = !g.isPaused
	logger.Log.WithField("paused", g.isPaused).Debug("Pause toggled.")
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

// LastRejection describes the most recent rejected spawn, or "".
func (g *Game) LastRejection() string {
	return g.lastRejection
}

var _ interfaces.GameContext = (*Game)(nil)
