package utils

import (
	"math"
	"testing"

	"github.com/olivia-tucker23/bevy-space-rts/internal/component"
	"github.com/olivia-tucker23/bevy-space-rts/internal/defs"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestRotate(t *testing.T) {
	got := Rotate(component.Vec2{X: 1, Y: 0}, math.Pi/2)
	if !near(got.X, 0) || !near(got.Y, 1) {
		t.Errorf("Rotate((1,0), π/2) = %+v, want (0,1)", got)
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		name  string
		pose  component.Pose
		local component.Vec2
		scale float64
		want  component.Pose
	}{
		{
			name:  "no facing",
			pose:  component.Pose{X: 100, Y: 50},
			local: component.Vec2{X: 460, Y: 0},
			scale: 0.1,
			want:  component.Pose{X: 146, Y: 50},
		},
		{
			name:  "facing up",
			pose:  component.Pose{X: 0, Y: 0, Facing: math.Pi / 2},
			local: component.Vec2{X: 10, Y: 0},
			scale: 1,
			want:  component.Pose{X: 0, Y: 10, Facing: math.Pi / 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Offset(tt.pose, tt.local, tt.scale)
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) || got.Facing != tt.want.Facing {
				t.Errorf("Offset() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	if got := NormalizeAngle(3 * math.Pi); !near(got, math.Pi) {
		t.Errorf("NormalizeAngle(3π) = %v", got)
	}
	if got := NormalizeAngle(-3 * math.Pi / 2); !near(got, math.Pi/2) {
		t.Errorf("NormalizeAngle(-3π/2) = %v", got)
	}
}

func TestChooseWeighted(t *testing.T) {
	rng := NewPRNGService(42)
	only := []WeightedUnit{{UnitType: defs.Fighter, Weight: 5}, {UnitType: defs.Tank, Weight: 0}}
	for i := 0; i < 50; i++ {
		if got := rng.ChooseWeighted(only); got != defs.Fighter {
			t.Fatalf("ChooseWeighted picked %v with zero weight", got)
		}
	}
	if got := rng.ChooseWeighted(nil); got != defs.DefaultUnit {
		t.Errorf("ChooseWeighted(nil) = %v", got)
	}
	if got := rng.ChooseWeighted([]WeightedUnit{{UnitType: defs.Plane}}); got != defs.Plane {
		t.Errorf("ChooseWeighted(zero weights) = %v", got)
	}
	if v := rng.Range(2, 3); v < 2 || v >= 3 {
		t.Errorf("Range(2,3) = %v", v)
	}
}
