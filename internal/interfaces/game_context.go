// internal/interfaces/game_context.go
package interfaces

// GameContext is the slice of the simulation that screens other than the main
// one may drive.
type GameContext interface {
	HandlePauseClick()
	IsPaused() bool
	HandleSpeedClick()
	SpeedLevel() int
	GetGameTime() float64
}
