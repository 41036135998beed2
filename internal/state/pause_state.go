// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivia-tucker23/bevy-space-rts/internal/interfaces"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the simulation but keeps drawing it.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	game          interfaces.GameContext
}

func NewPauseState(sm *StateMachine, prevState State, game interfaces.GameContext) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		game:          game,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Exit() {}

func (s *PauseState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.game.HandlePauseClick()
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

// Draw keeps showing the frozen simulation.
func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
}
