package defs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/olivia-tucker23/bevy-space-rts/internal/component"
)

func TestDefaultCatalogue(t *testing.T) {
	c, err := DefaultCatalogue()
	if err != nil {
		t.Fatalf("DefaultCatalogue() error = %v", err)
	}
	if c.Len() != len(UnitTypes()) {
		t.Errorf("catalogue has %d entries, want one per unit type (%d)", c.Len(), len(UnitTypes()))
	}

	d, ok := c.Describe(DefaultUnit)
	if !ok {
		t.Fatal("DefaultUnit not described")
	}
	if !d.Spawnable || d.Health != 100 || d.Size != (component.Vec2{X: 1350, Y: 762}) {
		t.Errorf("unexpected DefaultUnit descriptor %+v", d)
	}
	if len(d.Hardpoints) != 2 {
		t.Fatalf("DefaultUnit hardpoints = %d, want 2", len(d.Hardpoints))
	}
	if d.Turret == nil || d.Turret.ReloadTime != 1.0 || d.Turret.Range != (RangeDef{Sight: 1000, Fire: 800}) {
		t.Errorf("unexpected turret %+v", d.Turret)
	}

	for _, inert := range []UnitType{Tank, Plane, Building} {
		d, ok := c.Describe(inert)
		if !ok {
			t.Errorf("%s should be recognised", inert)
			continue
		}
		if d.Spawnable {
			t.Errorf("%s should not be spawnable", inert)
		}
	}
}

func TestDescribe_ReturnsCopy(t *testing.T) {
	c, err := DefaultCatalogue()
	if err != nil {
		t.Fatal(err)
	}
	d, _ := c.Describe(DefaultUnit)
	d.Hardpoints[0] = component.Vec2{X: -1, Y: -1}
	d.Turret.ReloadTime = 99

	again, _ := c.Describe(DefaultUnit)
	if again.Hardpoints[0] != (component.Vec2{X: 460, Y: 0}) {
		t.Error("mutating a described hardpoint leaked into the catalogue")
	}
	if again.Turret.ReloadTime != 1.0 {
		t.Error("mutating a described turret leaked into the catalogue")
	}
}

func TestDescribe_Unknown(t *testing.T) {
	c, _ := DefaultCatalogue()
	if _, ok := c.Describe(UnitType(200)); ok {
		t.Error("Describe succeeded for an unknown unit type")
	}
}

func TestNewCatalogue_Validation(t *testing.T) {
	turret := &TurretDef{Name: "T", Size: component.Vec2{X: 1, Y: 1}, ReloadTime: 1}
	tests := []struct {
		name  string
		descs []UnitDescriptor
		want  string
	}{
		{
			name:  "duplicate",
			descs: []UnitDescriptor{{Type: Tank}, {Type: Tank}},
			want:  "duplicate",
		},
		{
			name:  "negative size",
			descs: []UnitDescriptor{{Type: Tank, Size: component.Vec2{X: -1}}},
			want:  "negative size",
		},
		{
			name:  "spawnable without health",
			descs: []UnitDescriptor{{Type: Tank, Spawnable: true}},
			want:  "needs health",
		},
		{
			name:  "hardpoints without turret",
			descs: []UnitDescriptor{{Type: Tank, Hardpoints: []component.Vec2{{X: 1}}}},
			want:  "without a turret",
		},
		{
			name:  "ownership role",
			descs: []UnitDescriptor{{Type: Tank, Turret: turret, Roles: []Role{"can_target"}}},
			want:  "cannot be granted",
		},
		{
			name:  "unknown type",
			descs: []UnitDescriptor{{Type: UnitType(77)}},
			want:  "unknown unit type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalogue(tt.descs)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParseUnitType(t *testing.T) {
	for _, ut := range UnitTypes() {
		got, err := ParseUnitType(ut.String())
		if err != nil || got != ut {
			t.Errorf("ParseUnitType(%q) = %v, %v", ut.String(), got, err)
		}
	}
	if _, err := ParseUnitType("Dreadnought"); err == nil {
		t.Error("expected error for an unknown name")
	}
	if s := UnitType(9).String(); s != "UnitType(9)" {
		t.Errorf("String() of unknown type = %q", s)
	}
}

func TestUnitType_JSON(t *testing.T) {
	var v struct {
		Type UnitType `json:"type"`
	}
	if err := json.Unmarshal([]byte(`{"type":"Fighter"}`), &v); err != nil {
		t.Fatal(err)
	}
	if v.Type != Fighter {
		t.Errorf("decoded %v, want Fighter", v.Type)
	}
	if err := json.Unmarshal([]byte(`{"type":"Zeppelin"}`), &v); err == nil {
		t.Error("expected error decoding an unknown type")
	}
	out, err := json.Marshal(v)
	if err != nil || string(out) != `{"type":"Fighter"}` {
		t.Errorf("Marshal = %s, %v", out, err)
	}
}

func TestLoadCatalogue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "units.json")
	data := `[{"id":"Tank","name":"Heavy Tank","spawnable":true,"size":{"x":10,"y":20},"health":300,"shield":50}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalogue(path)
	if err != nil {
		t.Fatalf("LoadCatalogue() error = %v", err)
	}
	d, ok := c.Describe(Tank)
	if !ok || d.Name != "Heavy Tank" || d.Shield != 50 || !d.Spawnable {
		t.Errorf("unexpected descriptor %+v", d)
	}
	if _, ok := c.Describe(DefaultUnit); ok {
		t.Error("file catalogue should only contain what the file lists")
	}

	if _, err := LoadCatalogue(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for a missing file")
	}
	if _, err := ParseCatalogue([]byte("{")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
