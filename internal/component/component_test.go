package component

import (
	"slices"
	"testing"

	"github.com/olivia-tucker23/bevy-space-rts/internal/types"
)

func TestNewBody_SelectionRadius(t *testing.T) {
	tests := []struct {
		name  string
		size  Vec2
		scale float64
	}{
		{name: "default unit", size: Vec2{1350, 762}, scale: 0.1},
		{name: "fighter", size: Vec2{207, 204}, scale: 0.1},
		{name: "turret unscaled", size: Vec2{162, 168}, scale: 1},
		{name: "degenerate", size: Vec2{0, 0}, scale: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(Pose{X: 1, Y: 2, Facing: 0.5}, tt.size, tt.scale)
			want := (tt.size.X + tt.size.Y) / 4 * tt.scale
			if b.SelectionRadius != want {
				t.Errorf("SelectionRadius = %v, want %v", b.SelectionRadius, want)
			}
			if b.Position != (Pose{X: 1, Y: 2, Facing: 0.5}) {
				t.Errorf("Position = %+v", b.Position)
			}
		})
	}
}

func TestNewBody_NeverNegative(t *testing.T) {
	b := NewBody(Pose{}, Vec2{-10, -10}, 1)
	if b.SelectionRadius < 0 {
		t.Errorf("SelectionRadius = %v, want >= 0", b.SelectionRadius)
	}
}

func TestMask(t *testing.T) {
	m := MaskOf(KindSelectable, KindBody, KindHealth)
	if !m.Has(KindBody) || m.Has(KindShield) {
		t.Errorf("Has mismatch for %v", m)
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
	got := slices.Collect(m.Kinds())
	want := []Kind{KindBody, KindHealth, KindSelectable}
	if !slices.Equal(got, want) {
		t.Errorf("Kinds() = %v, want %v", got, want)
	}
	if !m.Contains(MaskOf(KindBody)) || m.Contains(MaskOf(KindShield)) {
		t.Error("Contains mismatch")
	}
	if m.Without(KindBody).Has(KindBody) {
		t.Error("Without did not clear the bit")
	}
	if s := MaskOf(KindBody, KindHealth).String(); s != "{Body Health}" {
		t.Errorf("String() = %q", s)
	}
}

func TestKind(t *testing.T) {
	if KindCount > 64 {
		t.Fatalf("%d kinds do not fit in a Mask", KindCount)
	}
	for k := Kind(0); k < KindCount; k++ {
		if k.String() == "" || k.String() == "Unknown" {
			t.Errorf("kind %d has no name", k)
		}
		tag := NewTag(k)
		if k.IsTag() != (tag != nil) {
			t.Errorf("kind %s: IsTag() = %v but NewTag returned %v", k, k.IsTag(), tag)
		}
		if tag != nil && tag.Kind() != k {
			t.Errorf("NewTag(%s).Kind() = %s", k, tag.Kind())
		}
	}
	if KindCount.String() != "Unknown" {
		t.Errorf("out of range kind String() = %q", KindCount.String())
	}
}

func TestTargetQueue(t *testing.T) {
	q := &TargetQueue{}
	if _, ok := q.Pop(); ok {
		t.Fatal("Pop on empty queue succeeded")
	}
	q.Push(types.EntityID(3))
	q.Push(types.EntityID(7))

	if front, _ := q.Peek(); front != 3 {
		t.Errorf("Peek() = %v, want e3", front)
	}
	if v, _ := q.Pop(); v != 3 {
		t.Errorf("Pop() = %v, want e3", v)
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1", q.Len())
	}
	items := q.Items()
	items[0] = 100
	if front, _ := q.Peek(); front != 7 {
		t.Error("Items() must return a copy")
	}
	q.Clear()
	if q.Len() != 0 {
		t.Error("Clear() left elements behind")
	}
}

func TestPathQueue(t *testing.T) {
	q := &PathQueue{}
	q.Push(Vec2{1, 1})
	q.Push(Vec2{2, 2})
	if got := q.Items(); !slices.Equal(got, []Vec2{{1, 1}, {2, 2}}) {
		t.Errorf("Items() = %v", got)
	}
}
