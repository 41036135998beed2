// cmd/game/main.go
package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivia-tucker23/bevy-space-rts/internal/app"
	"github.com/olivia-tucker23/bevy-space-rts/internal/config"
	"github.com/olivia-tucker23/bevy-space-rts/internal/state"
	"github.com/olivia-tucker23/bevy-space-rts/pkg/logger"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.LoadSettings(".env")
	if err != nil {
		logger.Log.Fatalf("Failed to load settings: %v", err)
	}
	logger.Init(settings.LogLevel, settings.LogFormat)

	game, err := app.NewGame(settings, 0)
	if err != nil {
		logger.Log.Fatalf("Failed to create game: %v", err)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewSimulationState(sm, game))
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Space RTS")
	logger.Log.WithField("local_player", settings.LocalPlayer).Info("Starting viewer.")
	if err := ebiten.RunGame(a); err != nil {
		logger.Log.Fatalf("Simulation stopped: %v", err)
	}
}
