// internal/state/simulation_state.go
package state

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/olivia-tucker23/bevy-space-rts/internal/app"
	"github.com/olivia-tucker23/bevy-space-rts/internal/config"
	"github.com/olivia-tucker23/bevy-space-rts/internal/defs"
	"github.com/olivia-tucker23/bevy-space-rts/internal/system"
	"github.com/olivia-tucker23/bevy-space-rts/pkg/logger"
	"github.com/olivia-tucker23/bevy-space-rts/pkg/render"
)

// skirmishSize is the number of units per side queued by the R key.
const skirmishSize = 6

var spawnKeys = map[ebiten.Key]defs.UnitType{
	ebiten.Key1: defs.DefaultUnit,
	ebiten.Key2: defs.Fighter,
	ebiten.Key3: defs.Tank,
}

var _ State = (*SimulationState)(nil)

// SimulationState runs the simulation and maps input onto it.
type SimulationState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.UnitRenderer
}

func NewSimulationState(sm *StateMachine, game *app.Game) *SimulationState {
	return &SimulationState{
		sm:       sm,
		game:     game,
		renderer: render.NewUnitRenderer(),
	}
}

func (s *SimulationState) Enter() {}

func (s *SimulationState) Exit() {}

func (s *SimulationState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.game.HandlePauseClick()
		s.sm.SetState(NewPauseState(s.sm, s, s.game))
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		s.game.HandleSpeedClick()
	}

	s.handleSpawnKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		additive := ebiten.IsKeyPressed(ebiten.KeyShift)
		s.game.SelectionSystem.SelectAt(float64(x), float64(y), additive)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		queue := ebiten.IsKeyPressed(ebiten.KeyShift)
		s.game.SelectionSystem.Order(float64(x), float64(y), queue)
	}

	return s.game.Update(deltaTime)
}

func (s *SimulationState) handleSpawnKeys() {
	x, y := ebiten.CursorPosition()
	owner := s.game.LocalPlayer()
	if ebiten.IsKeyPressed(ebiten.KeyH) {
		owner = app.HostilePlayer
	}

	var err error
	for key, unitType := range spawnKeys {
		if inpututil.IsKeyJustPressed(key) {
			err = errors.Join(err, s.game.RequestSpawn(unitType, owner, float64(x), float64(y), 0))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		err = errors.Join(err, s.game.QueueSkirmish(skirmishSize, config.ScreenWidth, config.ScreenHeight))
	}
	if errors.Is(err, system.ErrQueueFull) {
		logger.Log.WithFields(logrus.Fields{
			"component": "simulation_state",
			"pending":   s.game.SpawnSystem.Pending(),
		}).Warn("Spawn queue full, request dropped.")
	}
}

func (s *SimulationState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.game)
}
