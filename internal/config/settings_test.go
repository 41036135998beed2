package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.LocalPlayer != LocalPlayerID {
		t.Errorf("LocalPlayer = %d, want %d", s.LocalPlayer, LocalPlayerID)
	}
	if s.HardpointOwner != HardpointOwnerLocal {
		t.Errorf("HardpointOwner = %q, want %q", s.HardpointOwner, HardpointOwnerLocal)
	}
	if s.SpawnQueueSize != SpawnQueueSize {
		t.Errorf("SpawnQueueSize = %d, want %d", s.SpawnQueueSize, SpawnQueueSize)
	}
}

func TestLoadSettings_Environment(t *testing.T) {
	t.Setenv("RTS_LOCAL_PLAYER", "3")
	t.Setenv("RTS_HARDPOINT_OWNER", "parent")
	t.Setenv("RTS_SPAWN_QUEUE_SIZE", "16")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.LocalPlayer != 3 || s.HardpointOwner != HardpointOwnerParent || s.SpawnQueueSize != 16 {
		t.Errorf("unexpected settings %+v", s)
	}
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{name: "owner policy", key: "RTS_HARDPOINT_OWNER", value: "nobody"},
		{name: "queue size", key: "RTS_SPAWN_QUEUE_SIZE", value: "0"},
		{name: "player", key: "RTS_LOCAL_PLAYER", value: "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadSettings(); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestLoadSettings_DotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("RTS_UNITS_FILE=/tmp/units.json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv writes into the process environment; restore it afterwards.
	t.Setenv("RTS_UNITS_FILE", "")
	os.Unsetenv("RTS_UNITS_FILE")

	s, err := LoadSettings(path, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.UnitsFile != "/tmp/units.json" {
		t.Errorf("UnitsFile = %q, want /tmp/units.json", s.UnitsFile)
	}
}
