// internal/ui/speed_button.go
package ui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SpeedButton shows the simulation speed as a double chevron, one colour per
// speed level.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LevelColors   []rl.Color
	lastClickTime time.Time
}

func NewSpeedButton(x, y, size float32, levelColors []rl.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		LevelColors: levelColors,
	}
}

// Clicked reports a left click inside the button and starts the click pulse.
func (b *SpeedButton) Clicked(mousePos rl.Vector2) bool {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) || !rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(b.X, b.Y), b.Size*1.5) {
		return false
	}
	b.lastClickTime = time.Now()
	return true
}

// Draw renders the button for speed level (0 is normal speed).
func (b *SpeedButton) Draw(level int) {
	size := b.Size * pulse(b.lastClickTime)
	c := b.LevelColors[level%len(b.LevelColors)]

	height := size * 1.2
	offset := size * 0.8
	for _, dx := range []float32{0, offset} {
		p1 := rl.NewVector2(b.X-size+dx, b.Y-height/2)
		p2 := rl.NewVector2(b.X+dx, b.Y)
		p3 := rl.NewVector2(b.X-size+dx, b.Y+height/2)
		rl.DrawTriangle(p1, p2, p3, c)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
	}
}
