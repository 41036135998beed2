// internal/system/selection.go
package system

import (
	"math"
	"slices"

	"github.com/olivia-tucker23/bevy-space-rts/internal/component"
	"github.com/olivia-tucker23/bevy-space-rts/internal/entity"
	"github.com/olivia-tucker23/bevy-space-rts/internal/types"
	"github.com/olivia-tucker23/bevy-space-rts/pkg/logger"
	"github.com/sirupsen/logrus"
)

var (
	selectableMask = component.MaskOf(component.KindBody, component.KindSelectable)
	selectedMask   = component.MaskOf(component.KindSelected)
	orderableMask  = component.MaskOf(component.KindSelected, component.KindMovableByOrder, component.KindPathQueue)
)

// SelectionSystem handles the local player's selection and move orders.
type SelectionSystem struct {
	ecs *entity.ECS
}

func NewSelectionSystem(ecs *entity.ECS) *SelectionSystem {
	return &SelectionSystem{ecs: ecs}
}

// SelectAt selects the selectable unit whose selection circle contains the
// point, preferring the closest centre. Unless additive is set the previous
// selection is cleared first, even when nothing is hit.
func (s *SelectionSystem) SelectAt(x, y float64, additive bool) types.EntityID {
	if !additive {
		s.ClearSelection()
	}

	hit := types.NilEntity
	best := math.Inf(1)
	for id := range s.ecs.Query(selectableMask) {
		if s.ecs.Has(id, component.KindSubEntity) {
			continue
		}
		body, _ := entity.Get[component.Body](s.ecs, id)
		d := math.Hypot(x-body.Position.X, y-body.Position.Y)
		if d <= body.SelectionRadius && d < best {
			hit, best = id, d
		}
	}
	if hit == types.NilEntity {
		return hit
	}
	if err := s.ecs.Attach(hit, &component.Selected{}); err != nil {
		logger.Log.WithField("component", "selection_system").WithError(err).Error("Failed to select unit.")
		return types.NilEntity
	}
	return hit
}

// ClearSelection removes Selected from every entity.
func (s *SelectionSystem) ClearSelection() {
	for _, id := range s.Selected() {
		if err := s.ecs.Detach(id, component.KindSelected); err != nil {
			logger.Log.WithField("component", "selection_system").WithError(err).Error("Failed to deselect unit.")
		}
	}
}

// Selected returns the selected entities in ascending id order.
func (s *SelectionSystem) Selected() []types.EntityID {
	ids := slices.Collect(s.ecs.Query(selectedMask))
	slices.Sort(ids)
	return ids
}

// Order sends every selected, order-movable unit to (x, y). With queue set the
// waypoint is appended to the existing path, otherwise it replaces it. It
// returns the number of units that accepted the order.
func (s *SelectionSystem) Order(x, y float64, queue bool) int {
	n := 0
	for id := range s.ecs.Query(orderableMask) {
		path, _ := entity.Get[component.PathQueue](s.ecs, id)
		if !queue {
			path.Clear()
		}
		path.Push(component.Vec2{X: x, Y: y})
		n++
	}
	if n > 0 {
		logger.Log.WithFields(logrus.Fields{
			"component": "selection_system",
			"units":     n,
			"queued":    queue,
		}).Debug("Move order issued.")
	}
	return n
}
