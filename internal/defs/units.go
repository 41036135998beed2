// internal/defs/units.go
package defs

import (
	"fmt"
	"slices"

	"github.com/olivia-tucker23/bevy-space-rts/internal/component"
)

// RangeDef holds detection and firing distances.
type RangeDef struct {
	Sight float64 `json:"sight"`
	Fire  float64 `json:"fire"`
}

// ThrustDef is copied into a Thruster fragment.
type ThrustDef struct {
	Unidirectional  float64 `json:"unidirectional"`
	Omnidirectional float64 `json:"omnidirectional"`
}

// TurretDef describes every hardpoint of a unit.
type TurretDef struct {
	Name       string         `json:"name"`
	Size       component.Vec2 `json:"size"`
	ReloadTime float64        `json:"reload_time"`
	Range      RangeDef       `json:"range"`
}

// UnitDescriptor is the static data for one unit type. Footprint and hardpoint
// offsets are in sprite pixels.
type UnitDescriptor struct {
	Type         UnitType         `json:"id"`
	Name         string           `json:"name"`
	Spawnable    bool             `json:"spawnable"` // false: recognised, but not wired up yet
	Size         component.Vec2   `json:"size"`
	Health       int              `json:"health"`
	Shield       int              `json:"shield"`
	Range        *RangeDef        `json:"range,omitempty"`
	Thrust       *ThrustDef       `json:"thrust,omitempty"`
	Hardpoints   []component.Vec2 `json:"hardpoints,omitempty"`
	Turret       *TurretDef       `json:"turret,omitempty"`
	OrderMovable bool             `json:"order_movable"`
	Roles        []Role           `json:"roles,omitempty"`
}

// clone deep-copies the descriptor so callers cannot reach the table.
func (d UnitDescriptor) clone() UnitDescriptor {
	d.Hardpoints = slices.Clone(d.Hardpoints)
	d.Roles = slices.Clone(d.Roles)
	if d.Range != nil {
		r := *d.Range
		d.Range = &r
	}
	if d.Thrust != nil {
		th := *d.Thrust
		d.Thrust = &th
	}
	if d.Turret != nil {
		tu := *d.Turret
		d.Turret = &tu
	}
	return d
}

func (d UnitDescriptor) validate() error {
	if d.Type >= unitTypeCount {
		return fmt.Errorf("unknown unit type %d", uint8(d.Type))
	}
	if d.Size.X < 0 || d.Size.Y < 0 {
		return fmt.Errorf("%s: negative size %+v", d.Type, d.Size)
	}
	if d.Health < 0 || d.Shield < 0 {
		return fmt.Errorf("%s: negative health or shield", d.Type)
	}
	if d.Spawnable && d.Health == 0 {
		return fmt.Errorf("%s: spawnable unit needs health", d.Type)
	}
	if len(d.Hardpoints) > 0 && d.Turret == nil {
		return fmt.Errorf("%s: hardpoints without a turret definition", d.Type)
	}
	if d.Turret != nil && (d.Turret.Size.X < 0 || d.Turret.Size.Y < 0 || d.Turret.ReloadTime < 0) {
		return fmt.Errorf("%s: invalid turret definition", d.Type)
	}
	for _, r := range d.Roles {
		if _, ok := r.Kind(); !ok {
			return fmt.Errorf("%s: role %q cannot be granted by a descriptor", d.Type, r)
		}
	}
	return nil
}

// Catalogue maps unit types to their descriptors. It is immutable once built.
type Catalogue struct {
	units map[UnitType]UnitDescriptor
}

// NewCatalogue validates the descriptors and builds a catalogue from them.
func NewCatalogue(descs []UnitDescriptor) (*Catalogue, error) {
	c := &Catalogue{units: make(map[UnitType]UnitDescriptor, len(descs))}
	for _, d := range descs {
		if err := d.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.units[d.Type]; dup {
			return nil, fmt.Errorf("duplicate definition for %s", d.Type)
		}
		c.units[d.Type] = d.clone()
	}
	return c, nil
}

// Describe returns the descriptor for t. The second result is false when the
// catalogue has no entry for t.
func (c *Catalogue) Describe(t UnitType) (UnitDescriptor, bool) {
	d, ok := c.units[t]
	if !ok {
		return UnitDescriptor{}, false
	}
	return d.clone(), true
}

// Len returns the number of described unit types.
func (c *Catalogue) Len() int {
	return len(c.units)
}
