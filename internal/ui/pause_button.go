// internal/ui/pause_button.go
package ui

import (
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PauseButton draws a pause/play toggle for the raylib viewer. It holds no
// pause state of its own; the caller passes it in on every draw.
type PauseButton struct {
	X, Y          float32
	Size          float32
	PauseColor    rl.Color
	PlayColor     rl.Color
	lastClickTime time.Time
}

func NewPauseButton(x, y, size float32, pauseColor, playColor rl.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

// Clicked reports a left click inside the button and starts the click pulse.
func (b *PauseButton) Clicked(mousePos rl.Vector2) bool {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) || !rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(b.X, b.Y), b.Size*1.5) {
		return false
	}
	b.lastClickTime = time.Now()
	return true
}

func (b *PauseButton) Draw(paused bool) {
	size := b.Size * pulse(b.lastClickTime)

	if paused {
		p1 := rl.NewVector2(b.X-size, b.Y-size*1.2)
		p2 := rl.NewVector2(b.X-size, b.Y+size*1.2)
		p3 := rl.NewVector2(b.X+size, b.Y)
		rl.DrawTriangle(p1, p2, p3, b.PlayColor)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
		return
	}

	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	for _, x := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		rec := rl.NewRectangle(x, b.Y-height/2, width, height)
		rl.DrawRectangleRec(rec, b.PauseColor)
		rl.DrawRectangleLinesEx(rec, 1, rl.White)
	}
}

// pulse grows a control briefly after it was clicked.
func pulse(lastClick time.Time) float32 {
	elapsed := time.Since(lastClick).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}
