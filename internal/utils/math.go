// internal/utils/math.go
package utils

import (
	"math"

	"github.com/olivia-tucker23/bevy-space-rts/internal/component"
)

// Rotate turns v counter-clockwise by angle radians.
func Rotate(v component.Vec2, angle float64) component.Vec2 {
	sin, cos := math.Sincos(angle)
	return component.Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Offset returns the pose displaced by a local offset, expressed in the frame
// of p and scaled by scale. The facing is inherited.
func Offset(p component.Pose, local component.Vec2, scale float64) component.Pose {
	d := Rotate(component.Vec2{X: local.X * scale, Y: local.Y * scale}, p.Facing)
	return component.Pose{X: p.X + d.X, Y: p.Y + d.Y, Facing: p.Facing}
}

// NormalizeAngle wraps an angle into [-π, π].
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}
