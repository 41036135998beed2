// internal/component/kind.go
package component

import (
	"iter"
	"math/bits"
)

// Fragment is implemented by every component that can be attached to an
// entity. Components are attached as pointers, so Kind is declared on pointer
// receivers.
type Fragment interface {
	Kind() Kind
}

// Kind enumerates the fragment types known to the store.
type Kind uint8

const (
	KindUnitIdentity Kind = iota
	KindBody
	KindKinematics
	KindHealth
	KindShield
	KindEngagementRange
	KindTargetQueue
	KindPathQueue
	KindTurretMount
	KindThruster
	KindParent

	// Role tags
	KindPlayerControllable
	KindMovableByOrder
	KindCanTarget
	KindCanBeTargeted
	KindSelectable
	KindSelected
	KindSubEntity

	KindCount
)

var kindNames = [KindCount]string{
	KindUnitIdentity:       "UnitIdentity",
	KindBody:               "Body",
	KindKinematics:         "Kinematics",
	KindHealth:             "Health",
	KindShield:             "Shield",
	KindEngagementRange:    "EngagementRange",
	KindTargetQueue:        "TargetQueue",
	KindPathQueue:          "PathQueue",
	KindTurretMount:        "TurretMount",
	KindThruster:           "Thruster",
	KindParent:             "Parent",
	KindPlayerControllable: "PlayerControllable",
	KindMovableByOrder:     "MovableByOrder",
	KindCanTarget:          "CanTarget",
	KindCanBeTargeted:      "CanBeTargeted",
	KindSelectable:         "Selectable",
	KindSelected:           "Selected",
	KindSubEntity:          "SubEntity",
}

func (k Kind) String() string {
	if k >= KindCount {
		return "Unknown"
	}
	return kindNames[k]
}

// IsTag reports whether the kind is a data-less role marker.
func (k Kind) IsTag() bool {
	return k >= KindPlayerControllable && k < KindCount
}

// Mask is a set of fragment kinds. It identifies an archetype: every entity
// with the same mask belongs to the same group.
type Mask uint64

// MaskOf builds a mask from the given kinds.
func MaskOf(kinds ...Kind) Mask {
	var m Mask
	for _, k := range kinds {
		m = m.With(k)
	}
	return m
}

func (m Mask) With(k Kind) Mask    { return m | 1<<k }
func (m Mask) Without(k Kind) Mask { return m &^ (1 << k) }
func (m Mask) Has(k Kind) bool     { return m&(1<<k) != 0 }
func (m Mask) Len() int            { return bits.OnesCount64(uint64(m)) }

// Contains reports whether every kind in sub is also in m.
func (m Mask) Contains(sub Mask) bool { return m&sub == sub }

// Kinds yields the kinds in the mask in ascending order.
func (m Mask) Kinds() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for rest := uint64(m); rest != 0; rest &= rest - 1 {
			if !yield(Kind(bits.TrailingZeros64(rest))) {
				return
			}
		}
	}
}

func (m Mask) String() string {
	s := "{"
	first := true
	for k := range m.Kinds() {
		if !first {
			s += " "
		}
		s += k.String()
		first = false
	}
	return s + "}"
}
