// internal/entity/ecs.go
package entity

import (
	"errors"
	"fmt"

	"github.com/olivia-tucker23/bevy-space-rts/internal/component"
	"github.com/olivia-tucker23/bevy-space-rts/internal/types"
)

// ErrUnknownEntity is returned when an operation names an entity the store does
// not hold.
var ErrUnknownEntity = errors.New("entity: unknown entity")

// ECS stores, for every live entity, the fragments attached to it. Fragments
// live in one map per kind; entities are additionally grouped by the exact set
// of kinds they carry (see archetype.go).
//
// The store does no locking. Whoever runs the current simulation step owns it.
type ECS struct {
	nextID    types.EntityID
	fragments [component.KindCount]map[types.EntityID]component.Fragment

	metas          map[types.EntityID]entityMeta
	archetypes     []*archetype
	maskToArcIndex map[component.Mask]int
}

func NewECS() *ECS {
	ecs := &ECS{
		nextID:         1,
		metas:          make(map[types.EntityID]entityMeta),
		maskToArcIndex: make(map[component.Mask]int),
	}
	for k := range ecs.fragments {
		ecs.fragments[k] = make(map[types.EntityID]component.Fragment)
	}
	// Fresh entities start in the empty group.
	ecs.getOrCreateArchetype(0)
	return ecs
}

// NewEntity creates an entity with no fragments. Ids are never reused.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.nextID
	ecs.nextID++
	ecs.place(id, ecs.archetypes[ecs.maskToArcIndex[0]])
	return id
}

// Exists reports whether id is a live entity.
func (ecs *ECS) Exists(id types.EntityID) bool {
	_, ok := ecs.metas[id]
	return ok
}

// Len returns the number of live entities.
func (ecs *ECS) Len() int {
	return len(ecs.metas)
}

// Attach adds f to the entity, replacing any fragment of the same kind.
func (ecs *ECS) Attach(id types.EntityID, f component.Fragment) error {
	if f == nil {
		return fmt.Errorf("entity: attach nil fragment to %s", id)
	}
	kind := f.Kind()
	meta, ok := ecs.metas[id]
	if !ok {
		return fmt.Errorf("attach %s to %s: %w", kind, id, ErrUnknownEntity)
	}
	ecs.fragments[kind][id] = f

	current := ecs.archetypes[meta.archetypeIndex]
	if current.mask.Has(kind) {
		return nil
	}
	ecs.move(id, meta, current.mask.With(kind))
	return nil
}

// Detach removes the fragment of the given kind, if present. An entity left
// with no fragments is destroyed.
func (ecs *ECS) Detach(id types.EntityID, kind component.Kind) error {
	meta, ok := ecs.metas[id]
	if !ok {
		return fmt.Errorf("detach %s from %s: %w", kind, id, ErrUnknownEntity)
	}
	current := ecs.archetypes[meta.archetypeIndex]
	if !current.mask.Has(kind) {
		return nil
	}
	delete(ecs.fragments[kind], id)

	next := current.mask.Without(kind)
	if next == 0 {
		ecs.RemoveEntity(id)
		return nil
	}
	ecs.move(id, meta, next)
	return nil
}

// RemoveEntity drops the entity and every fragment attached to it. Removing an
// unknown entity is a no-op.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	meta, ok := ecs.metas[id]
	if !ok {
		return
	}
	a := ecs.archetypes[meta.archetypeIndex]
	for k := range a.mask.Kinds() {
		delete(ecs.fragments[k], id)
	}
	ecs.removeFromArchetype(a, meta)
	delete(ecs.metas, id)
}

// Has reports whether the entity carries a fragment of the given kind.
func (ecs *ECS) Has(id types.EntityID, kind component.Kind) bool {
	_, ok := ecs.fragments[kind][id]
	return ok
}

// Fragment returns the raw fragment of the given kind.
func (ecs *ECS) Fragment(id types.EntityID, kind component.Kind) (component.Fragment, bool) {
	f, ok := ecs.fragments[kind][id]
	return f, ok
}

// Get returns the entity's fragment of type T.
//
//	body, ok := entity.Get[component.Body](ecs, id)
func Get[T any, PT interface {
	*T
	component.Fragment
}](ecs *ECS, id types.EntityID) (*T, bool) {
	var zero T
	kind := PT(&zero).Kind()
	f, ok := ecs.fragments[kind][id]
	if !ok {
		return nil, false
	}
	v, ok := f.(PT)
	if !ok {
		return nil, false
	}
	return (*T)(v), true
}

// ChildrenOf returns every entity whose Parent fragment points at parent.
func (ecs *ECS) ChildrenOf(parent types.EntityID) []types.EntityID {
	var children []types.EntityID
	for id := range ecs.Query(component.MaskOf(component.KindParent)) {
		if p, ok := Get[component.Parent](ecs, id); ok && p.Entity == parent {
			children = append(children, id)
		}
	}
	return children
}
