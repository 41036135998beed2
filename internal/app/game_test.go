package app

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/olivia-tucker23/bevy-space-rts/internal/component"
	"github.com/olivia-tucker23/bevy-space-rts/internal/config"
	"github.com/olivia-tucker23/bevy-space-rts/internal/defs"
	"github.com/olivia-tucker23/bevy-space-rts/internal/system"
)

func testSettings() config.Settings {
	return config.Settings{
		LocalPlayer:    config.LocalPlayerID,
		HardpointOwner: config.HardpointOwnerLocal,
		SpawnQueueSize: 64,
	}
}

func TestGameSpawnsOnUpdate(t *testing.T) {
	g, err := NewGame(testSettings(), 42)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}

	if err := g.RequestSpawn(defs.DefaultUnit, g.LocalPlayer(), 10, 20, 0); err != nil {
		t.Fatalf("RequestSpawn() error = %v", err)
	}
	if err := g.RequestSpawn(defs.Plane, g.LocalPlayer(), 0, 0, 0); err != nil {
		t.Fatalf("RequestSpawn() error = %v", err)
	}
	if g.ECS.Len() != 0 {
		t.Fatal("spawn happened before Update")
	}
	if err := g.Update(0.016); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if g.ECS.Len() != 3 {
		t.Errorf("entities = %d, want 3", g.ECS.Len())
	}
	if g.Stats.Snapshot().Total() != 1 {
		t.Errorf("stats = %+v", g.Stats.Snapshot())
	}
	if g.LastRejection() == "" {
		t.Error("rejected Plane not reported")
	}
}

func TestGamePause(t *testing.T) {
	g, err := NewGame(testSettings(), 1)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	g.HandlePauseClick()
	_ = g.RequestSpawn(defs.Fighter, g.LocalPlayer(), 0, 0, 0)
	if err := g.Update(1); err != nil {
		t.Fatal(err)
	}
	if g.ECS.Len() != 0 || g.GetGameTime() != 0 {
		t.Error("paused game advanced")
	}
	g.HandlePauseClick()
	if err := g.Update(1); err != nil {
		t.Fatal(err)
	}
	if g.ECS.Len() != 1 || g.GetGameTime() != 1 {
		t.Errorf("entities = %d, time = %v", g.ECS.Len(), g.GetGameTime())
	}
}

func TestGameSpeed(t *testing.T) {
	g, err := NewGame(testSettings(), 1)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	want := []float64{2, 4, 1}
	for _, w := range want {
		g.HandleSpeedClick()
		if g.SpeedMultiplier != w {
			t.Errorf("speed = %v, want %v", g.SpeedMultiplier, w)
		}
	}
}

func TestQueueSkirmish(t *testing.T) {
	g, err := NewGame(testSettings(), 7)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	if err := g.QueueSkirmish(5, 900, 600); err != nil {
		t.Fatalf("QueueSkirmish() error = %v", err)
	}
	if g.SpawnSystem.Pending() != 10 {
		t.Fatalf("pending = %d, want 10", g.SpawnSystem.Pending())
	}
	if err := g.Update(0.016); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	counts := g.Stats.Snapshot()
	if counts.Total()+counts.TotalRejected() != 10 {
		t.Errorf("outcomes = %d spawned + %d rejected, want 10", counts.Total(), counts.TotalRejected())
	}
	for id := range g.ECS.Query(component.MaskOf(component.KindCanBeTargeted)) {
		body, _ := g.ECS.Fragment(id, component.KindBody)
		if x := body.(*component.Body).Position.X; x < 600 {
			t.Errorf("hostile unit %s at x=%v, want right third", id, x)
		}
	}
}

func TestQueueSkirmishBackPressure(t *testing.T) {
	s := testSettings()
	s.SpawnQueueSize = 3
	g, err := NewGame(s, 7)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	if err := g.QueueSkirmish(5, 900, 600); !errors.Is(err, system.ErrQueueFull) {
		t.Errorf("QueueSkirmish() error = %v, want ErrQueueFull", err)
	}
}

func TestNewGameMissingUnitsFile(t *testing.T) {
	s := testSettings()
	s.UnitsFile = filepath.Join(t.TempDir(), "nope.json")
	if _, err := NewGame(s, 1); err == nil {
		t.Error("NewGame() with a missing units file should fail")
	}
}
