// internal/component/tags.go
package component

// PlayerControllable: can be selected and ordered by the user.
type PlayerControllable struct{}

// MovableByOrder: accepts manually assigned paths. Units that follow scripted
// paths (strikecraft) move without carrying this tag.
type MovableByOrder struct{}

// CanTarget: may initiate engagements. Granted to the local player's units.
type CanTarget struct{}

// CanBeTargeted: may be picked as an enemy's target.
type CanBeTargeted struct{}

type Selectable struct{}

// Selected is set by the input collaborator while the unit is selected.
type Selected struct{}

// SubEntity marks a hardpoint or any other child of a primary unit.
type SubEntity struct{}

func (*PlayerControllable) Kind() Kind { return KindPlayerControllable }
func (*MovableByOrder) Kind() Kind     { return KindMovableByOrder }
func (*CanTarget) Kind() Kind          { return KindCanTarget }
func (*CanBeTargeted) Kind() Kind      { return KindCanBeTargeted }
func (*Selectable) Kind() Kind         { return KindSelectable }
func (*Selected) Kind() Kind           { return KindSelected }
func (*SubEntity) Kind() Kind          { return KindSubEntity }

// NewTag returns the marker fragment for a tag kind, or nil if k is not a tag.
func NewTag(k Kind) Fragment {
	switch k {
	case KindPlayerControllable:
		return &PlayerControllable{}
	case KindMovableByOrder:
		return &MovableByOrder{}
	case KindCanTarget:
		return &CanTarget{}
	case KindCanBeTargeted:
		return &CanBeTargeted{}
	case KindSelectable:
		return &Selectable{}
	case KindSelected:
		return &Selected{}
	case KindSubEntity:
		return &SubEntity{}
	}
	return nil
}
