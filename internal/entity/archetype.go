// internal/entity/archetype.go
package entity

import (
	"iter"

	"github.com/olivia-tucker23/bevy-space-rts/internal/component"
	"github.com/olivia-tucker23/bevy-space-rts/internal/types"
)

// archetype groups every entity carrying exactly the same set of kinds.
type archetype struct {
	mask     component.Mask
	entities []types.EntityID
	index    int // position in ECS.archetypes
}

// entityMeta records where an entity lives.
type entityMeta struct {
	archetypeIndex int // index in ECS.archetypes
	index          int // position inside the archetype
}

// getOrCreateArchetype returns the group for mask, creating it on first use.
func (ecs *ECS) getOrCreateArchetype(mask component.Mask) *archetype {
	if idx, ok := ecs.maskToArcIndex[mask]; ok {
		return ecs.archetypes[idx]
	}
	a := &archetype{
		mask:  mask,
		index: len(ecs.archetypes),
	}
	ecs.archetypes = append(ecs.archetypes, a)
	ecs.maskToArcIndex[mask] = a.index
	return a
}

// place appends the entity to a and records its location.
func (ecs *ECS) place(id types.EntityID, a *archetype) {
	ecs.metas[id] = entityMeta{archetypeIndex: a.index, index: len(a.entities)}
	a.entities = append(a.entities, id)
}

// move regroups the entity under a new mask.
func (ecs *ECS) move(id types.EntityID, meta entityMeta, mask component.Mask) {
	ecs.removeFromArchetype(ecs.archetypes[meta.archetypeIndex], meta)
	ecs.place(id, ecs.getOrCreateArchetype(mask))
}

// removeFromArchetype swaps the last member into the freed slot.
func (ecs *ECS) removeFromArchetype(a *archetype, meta entityMeta) {
	last := len(a.entities) - 1
	if meta.index < last {
		moved := a.entities[last]
		a.entities[meta.index] = moved
		m := ecs.metas[moved]
		m.index = meta.index
		ecs.metas[moved] = m
	}
	a.entities = a.entities[:last]
}

// FragmentsOf returns the kinds grouped with the entity, or false if the entity
// belongs to no group. The lookup goes through the entity index, so it costs
// the same no matter how many groups exist. The sequence is evaluated lazily
// against the group the entity was in when FragmentsOf was called.
func (ecs *ECS) FragmentsOf(id types.EntityID) (iter.Seq[component.Kind], bool) {
	meta, ok := ecs.metas[id]
	if !ok {
		return nil, false
	}
	return ecs.archetypes[meta.archetypeIndex].mask.Kinds(), true
}

// MaskOf returns the entity's current kind set.
func (ecs *ECS) MaskOf(id types.EntityID) (component.Mask, bool) {
	meta, ok := ecs.metas[id]
	if !ok {
		return 0, false
	}
	return ecs.archetypes[meta.archetypeIndex].mask, true
}

// Archetypes yields every group shape with its current member count, in
// creation order. Empty groups are kept and reported with a zero count.
func (ecs *ECS) Archetypes() iter.Seq2[component.Mask, int] {
	return func(yield func(component.Mask, int) bool) {
		for _, a := range ecs.archetypes {
			if !yield(a.mask, len(a.entities)) {
				return
			}
		}
	}
}

// ArchetypeCount returns the number of distinct groups created so far.
func (ecs *ECS) ArchetypeCount() int {
	return len(ecs.archetypes)
}

// Query yields every entity whose kind set contains all kinds in mask. The
// store must not be mutated while the sequence is being consumed.
func (ecs *ECS) Query(mask component.Mask) iter.Seq[types.EntityID] {
	return func(yield func(types.EntityID) bool) {
		for _, a := range ecs.archetypes {
			if !a.mask.Contains(mask) {
				continue
			}
			for _, id := range a.entities {
				if !yield(id) {
					return
				}
			}
		}
	}
}
