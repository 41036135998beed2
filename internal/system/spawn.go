// internal/system/spawn.go
package system

import (
	"errors"
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/olivia-tucker23/bevy-space-rts/internal/component"
	"github.com/olivia-tucker23/bevy-space-rts/internal/config"
	"github.com/olivia-tucker23/bevy-space-rts/internal/defs"
	"github.com/olivia-tucker23/bevy-space-rts/internal/event"
	"github.com/olivia-tucker23/bevy-space-rts/internal/identity"
	"github.com/olivia-tucker23/bevy-space-rts/internal/types"
	"github.com/olivia-tucker23/bevy-space-rts/internal/utils"
	"github.com/olivia-tucker23/bevy-space-rts/pkg/logger"
	"github.com/sirupsen/logrus"
)

var (
	// ErrUnsupportedUnitType means the unit type is unknown or not wired to a
	// fragment set. Nothing was created.
	ErrUnsupportedUnitType = errors.New("unsupported unit type")
	// ErrAllocatorExhausted halts the spawn system for good.
	ErrAllocatorExhausted = errors.New("unit id allocator exhausted")
	// ErrStoreInconsistency means the store rejected an operation on an entity
	// the pipeline had just created.
	ErrStoreInconsistency = errors.New("store inconsistency")
	ErrQueueFull          = errors.New("spawn queue full")
)

// Store is what the spawn pipeline needs from the entity/fragment store.
type Store interface {
	NewEntity() types.EntityID
	Attach(id types.EntityID, f component.Fragment) error
	Detach(id types.EntityID, kind component.Kind) error
	Exists(id types.EntityID) bool
	FragmentsOf(id types.EntityID) (iter.Seq[component.Kind], bool)
}

// Catalogue resolves unit types to descriptors.
type Catalogue interface {
	Describe(t defs.UnitType) (defs.UnitDescriptor, bool)
}

// SpawnStage is a step of the spawn state machine.
type SpawnStage uint8

const (
	StageReceived SpawnStage = iota
	StageDescribed
	StageIdentified
	StagePrimaryAssembled
	StageSubEntitiesAssembled
	StageComplete
	StageRejected
)

func (s SpawnStage) String() string {
	switch s {
	case StageReceived:
		return "Received"
	case StageDescribed:
		return "Described"
	case StageIdentified:
		return "Identified"
	case StagePrimaryAssembled:
		return "PrimaryAssembled"
	case StageSubEntitiesAssembled:
		return "SubEntitiesAssembled"
	case StageComplete:
		return "Complete"
	case StageRejected:
		return "Rejected"
	}
	return fmt.Sprintf("SpawnStage(%d)", uint8(s))
}

// SpawnConfig parameterises a SpawnSystem.
type SpawnConfig struct {
	LocalPlayer    types.PlayerID
	HardpointOwner config.HardpointOwner
	QueueSize      int
	Scale          float64 // Sprite pixels to world units
}

// DefaultSpawnConfig returns the compiled-in defaults.
func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		LocalPlayer:    config.LocalPlayerID,
		HardpointOwner: config.HardpointOwnerLocal,
		QueueSize:      config.SpawnQueueSize,
		Scale:          config.SpriteScale,
	}
}

// SpawnConfigFrom builds a SpawnConfig from runtime settings.
func SpawnConfigFrom(s config.Settings) SpawnConfig {
	cfg := DefaultSpawnConfig()
	cfg.LocalPlayer = s.LocalPlayer
	cfg.HardpointOwner = s.HardpointOwner
	cfg.QueueSize = s.SpawnQueueSize
	return cfg
}

// SpawnSystem turns spawn requests into assembled units. Requests may be
// enqueued from any goroutine; Spawn and Update must run on the goroutine that
// owns the store.
type SpawnSystem struct {
	ecs             Store
	catalogue       Catalogue
	ids             *identity.Allocator
	eventDispatcher *event.Dispatcher
	cfg             SpawnConfig

	requests chan event.SpawnRequest
	halted   atomic.Bool
	warned   bool
}

func NewSpawnSystem(ecs Store, catalogue Catalogue, ids *identity.Allocator, eventDispatcher *event.Dispatcher, cfg SpawnConfig) *SpawnSystem {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = config.SpawnQueueSize
	}
	if cfg.HardpointOwner == "" {
		cfg.HardpointOwner = config.HardpointOwnerLocal
	}
	s := &SpawnSystem{
		ecs:             ecs,
		catalogue:       catalogue,
		ids:             ids,
		eventDispatcher: eventDispatcher,
		cfg:             cfg,
		requests:        make(chan event.SpawnRequest, cfg.QueueSize),
	}
	if eventDispatcher != nil {
		eventDispatcher.Subscribe(event.SpawnRequested, s)
	}
	return s
}

// Enqueue queues a request for the next Update. It never blocks.
func (s *SpawnSystem) Enqueue(req event.SpawnRequest) error {
	select {
	case s.requests <- req:
		return nil
	default:
		return ErrQueueFull
	}
}

// Pending returns the number of queued requests.
func (s *SpawnSystem) Pending() int {
	return len(s.requests)
}

// Halted reports whether id exhaustion has shut the system down.
func (s *SpawnSystem) Halted() bool {
	return s.halted.Load()
}

// OnEvent queues SpawnRequested events.
func (s *SpawnSystem) OnEvent(e event.Event) {
	if e.Type != event.SpawnRequested {
		return
	}
	req, ok := e.Data.(event.SpawnRequest)
	if !ok {
		logger.Log.WithField("component", "spawn_system").Warnf("SpawnRequested event with %T payload ignored.", e.Data)
		return
	}
	if err := s.Enqueue(req); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "spawn_system",
			"unit_type": req.UnitType.String(),
		}).WithError(err).Warn("Spawn request dropped.")
	}
}

// Update processes every request queued so far, one after another. Rejected
// requests are logged and dropped; a hard failure stops the drain and is
// returned.
func (s *SpawnSystem) Update(deltaTime float64) error {
	for {
		select {
		case req := <-s.requests:
			if _, err := s.Spawn(req); err != nil && !errors.Is(err, ErrUnsupportedUnitType) {
				return err
			}
		default:
			return nil
		}
	}
}

// Spawn assembles the unit described by req and returns its primary entity.
// A request for an unknown or inert unit type fails with
// ErrUnsupportedUnitType before the store is touched.
func (s *SpawnSystem) Spawn(req event.SpawnRequest) (types.EntityID, error) {
	stage := StageReceived
	log := logger.Log.WithFields(logrus.Fields{
		"component": "spawn_system",
		"unit_type": req.UnitType.String(),
		"owner":     req.Owner,
	})
	enter := func(next SpawnStage) {
		stage = next
		log.WithField("stage", stage).Debug("Spawn stage reached.")
	}

	if s.halted.Load() {
		enter(StageRejected)
		err := fmt.Errorf("spawn %s: %w", req.UnitType, ErrAllocatorExhausted)
		s.dispatch(event.SpawnRejected, event.SpawnRejectedData{Request: req, Reason: err})
		return types.NilEntity, err
	}

	desc, ok := s.catalogue.Describe(req.UnitType)
	if !ok || !desc.Spawnable {
		enter(StageRejected)
		err := fmt.Errorf("%w: %s", ErrUnsupportedUnitType, req.UnitType)
		log.Info("Unit not spawned.")
		s.dispatch(event.SpawnRejected, event.SpawnRejectedData{Request: req, Reason: err})
		return types.NilEntity, err
	}
	enter(StageDescribed)

	// Every id the unit needs is claimed up front so exhaustion is found
	// before anything is created.
	first, err := s.ids.Reserve(1 + len(desc.Hardpoints))
	if err != nil {
		s.halted.Store(true)
		enter(StageRejected)
		log.WithError(err).Error("Unit id space exhausted, spawning halted.")
		err = fmt.Errorf("spawn %s: %w: %w", req.UnitType, ErrAllocatorExhausted, err)
		s.dispatch(event.SpawnRejected, event.SpawnRejectedData{Request: req, Reason: err})
		return types.NilEntity, err
	}
	if !s.warned && s.ids.NearExhaustion(config.IDExhaustionWarnFraction) {
		s.warned = true
		log.WithField("remaining", s.ids.Remaining()).Warn("Unit id space nearly exhausted.")
	}

	id := s.ecs.NewEntity()
	if err := s.attach(id, &component.UnitIdentity{Name: desc.Name, Player: req.Owner, ID: first}); err != nil {
		return s.fail(log, stage, err)
	}
	enter(StageIdentified)

	if err := s.attach(id, s.primaryFragments(desc, req)...); err != nil {
		return s.fail(log, stage, err)
	}
	enter(StagePrimaryAssembled)

	hardpoints := make([]types.EntityID, 0, len(desc.Hardpoints))
	for i, offset := range desc.Hardpoints {
		child := s.ecs.NewEntity()
		frags := s.hardpointFragments(desc, req, id, offset, first+types.UnitID(1+i))
		if err := s.attach(child, frags...); err != nil {
			return s.fail(log, stage, err)
		}
		hardpoints = append(hardpoints, child)
	}
	enter(StageSubEntitiesAssembled)

	enter(StageComplete)
	log.WithFields(logrus.Fields{
		"entity":     id,
		"unit_id":    first,
		"hardpoints": len(hardpoints),
	}).Info("Unit spawned.")
	s.dispatch(event.UnitSpawned, event.UnitSpawnedData{
		Entity:     id,
		UnitID:     first,
		UnitType:   req.UnitType,
		Owner:      req.Owner,
		Hardpoints: hardpoints,
	})
	return id, nil
}

// primaryFragments lists what a primary unit carries besides its identity.
func (s *SpawnSystem) primaryFragments(desc defs.UnitDescriptor, req event.SpawnRequest) []component.Fragment {
	frags := []component.Fragment{
		&component.Kinematics{},
		component.FullHealth(desc.Health),
		component.NewBody(req.Position, desc.Size, s.cfg.Scale),
		&component.TargetQueue{},
		&component.PathQueue{},
	}
	if desc.Shield > 0 {
		frags = append(frags, component.FullShield(desc.Shield))
	}
	if desc.Range != nil {
		frags = append(frags, &component.EngagementRange{Sight: desc.Range.Sight, Fire: desc.Range.Fire})
	}
	if desc.Thrust != nil {
		frags = append(frags, &component.Thruster{
			Unidirectional:  desc.Thrust.Unidirectional,
			Omnidirectional: desc.Thrust.Omnidirectional,
		})
	}
	for _, role := range desc.Roles {
		if kind, ok := role.Kind(); ok {
			frags = append(frags, component.NewTag(kind))
		}
	}

	// Targeting role is fixed here, at spawn time, from the owner alone.
	if req.Owner == s.cfg.LocalPlayer {
		frags = append(frags, &component.CanTarget{})
		if desc.OrderMovable {
			frags = append(frags, &component.MovableByOrder{})
		}
	} else {
		frags = append(frags, &component.CanBeTargeted{})
	}
	return append(frags, &component.Selectable{})
}

// hardpointFragments lists the fragments of one turret sub-entity.
func (s *SpawnSystem) hardpointFragments(desc defs.UnitDescriptor, req event.SpawnRequest, parent types.EntityID, offset component.Vec2, unitID types.UnitID) []component.Fragment {
	turret := desc.Turret
	name := turret.Name
	if name == "" {
		name = config.TurretName
	}
	owner := s.cfg.LocalPlayer
	if s.cfg.HardpointOwner == config.HardpointOwnerParent {
		owner = req.Owner
	}
	mount := component.Vec2{X: offset.X * s.cfg.Scale, Y: offset.Y * s.cfg.Scale}
	return []component.Fragment{
		&component.UnitIdentity{Name: name, Player: owner, ID: unitID},
		component.NewBody(utils.Offset(req.Position, mount, 1), turret.Size, s.cfg.Scale),
		&component.Kinematics{},
		&component.EngagementRange{Sight: turret.Range.Sight, Fire: turret.Range.Fire},
		&component.TargetQueue{},
		&component.TurretMount{ReloadTime: turret.ReloadTime},
		&component.SubEntity{},
		&component.Parent{Entity: parent, Offset: mount},
	}
}

func (s *SpawnSystem) attach(id types.EntityID, frags ...component.Fragment) error {
	for _, f := range frags {
		if err := s.ecs.Attach(id, f); err != nil {
			return fmt.Errorf("%w: %w", ErrStoreInconsistency, err)
		}
	}
	return nil
}

func (s *SpawnSystem) fail(log *logrus.Entry, stage SpawnStage, err error) (types.EntityID, error) {
	log.WithField("stage", stage).WithError(err).Error("Store rejected a freshly created entity.")
	return types.NilEntity, err
}

func (s *SpawnSystem) dispatch(t event.EventType, data interface{}) {
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: t, Data: data})
	}
}
