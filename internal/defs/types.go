// internal/defs/types.go
package defs

import (
	"fmt"

	"github.com/olivia-tucker23/bevy-space-rts/internal/component"
)

// UnitType is the closed set of unit kinds the game knows about.
type UnitType uint8

const (
	DefaultUnit UnitType = iota
	Tank
	Plane
	Fighter
	Building

	unitTypeCount
)

var unitTypeNames = [unitTypeCount]string{
	DefaultUnit: "DefaultUnit",
	Tank:        "Tank",
	Plane:       "Plane",
	Fighter:     "Fighter",
	Building:    "Building",
}

func (t UnitType) String() string {
	if t >= unitTypeCount {
		return fmt.Sprintf("UnitType(%d)", uint8(t))
	}
	return unitTypeNames[t]
}

// ParseUnitType maps a name such as "Fighter" back to its UnitType.
func ParseUnitType(s string) (UnitType, error) {
	for t, name := range unitTypeNames {
		if name == s {
			return UnitType(t), nil
		}
	}
	return 0, fmt.Errorf("unknown unit type %q", s)
}

// UnitTypes lists every known unit type in declaration order.
func UnitTypes() []UnitType {
	out := make([]UnitType, 0, unitTypeCount)
	for t := UnitType(0); t < unitTypeCount; t++ {
		out = append(out, t)
	}
	return out
}

func (t UnitType) MarshalText() ([]byte, error) {
	if t >= unitTypeCount {
		return nil, fmt.Errorf("unknown unit type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *UnitType) UnmarshalText(text []byte) error {
	v, err := ParseUnitType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Role names a role tag a descriptor may grant regardless of ownership.
type Role string

const (
	RoleSelectable         Role = "selectable"
	RolePlayerControllable Role = "player_controllable"
)

// Kind returns the tag fragment kind for the role.
func (r Role) Kind() (component.Kind, bool) {
	switch r {
	case RoleSelectable:
		return component.KindSelectable, true
	case RolePlayerControllable:
		return component.KindPlayerControllable, true
	}
	return 0, false
}
