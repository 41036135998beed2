// cmd/spawnbench/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/olivia-tucker23/bevy-space-rts/internal/component"
	"github.com/olivia-tucker23/bevy-space-rts/internal/config"
	"github.com/olivia-tucker23/bevy-space-rts/internal/defs"
	"github.com/olivia-tucker23/bevy-space-rts/internal/entity"
	"github.com/olivia-tucker23/bevy-space-rts/internal/event"
	"github.com/olivia-tucker23/bevy-space-rts/internal/identity"
	"github.com/olivia-tucker23/bevy-space-rts/internal/system"
	"github.com/olivia-tucker23/bevy-space-rts/internal/types"
	"github.com/olivia-tucker23/bevy-space-rts/pkg/logger"
)

// shard is one store with its own spawn system. Only the shard's consumer
// goroutine touches the store.
type shard struct {
	ecs     *entity.ECS
	spawner *system.SpawnSystem
	stats   *system.SpawnStats
}

var benchMix = []defs.UnitType{defs.DefaultUnit, defs.Fighter, defs.Fighter, defs.Tank}

func main() {
	shards := flag.Int("shards", 4, "number of independent stores sharing one id allocator")
	profilePath := flag.String("profile-path", ".", "directory for profile output")
	flag.Parse()

	settings, err := config.LoadSettings(".env")
	if err != nil {
		logger.Log.Fatalf("Failed to load settings: %v", err)
	}
	logger.Init(settings.LogLevel, settings.LogFormat)
	if *shards <= 0 || settings.BenchProducers <= 0 {
		logger.Log.Fatal("shards and RTS_BENCH_PRODUCERS must be positive")
	}

	defer startProfile(settings.ProfileMode, *profilePath).Stop()

	catalogue, err := defs.DefaultCatalogue()
	if settings.UnitsFile != "" {
		catalogue, err = defs.LoadCatalogue(settings.UnitsFile)
	}
	if err != nil {
		logger.Log.Fatalf("Failed to load unit catalogue: %v", err)
	}

	ids := identity.NewAllocator()
	cfg := system.SpawnConfigFrom(settings)
	pool := make([]*shard, *shards)
	for i := range pool {
		ecs := entity.NewECS()
		dispatcher := event.NewDispatcher()
		pool[i] = &shard{
			ecs:     ecs,
			spawner: system.NewSpawnSystem(ecs, catalogue, ids, dispatcher, cfg),
			stats:   system.NewSpawnStats(dispatcher),
		}
	}

	start := time.Now()
	if err := run(context.Background(), settings, pool); err != nil {
		logger.Log.Fatalf("Benchmark failed: %v", err)
	}
	elapsed := time.Since(start)

	if err := checkUnique(pool); err != nil {
		logger.Log.Fatalf("Benchmark failed: %v", err)
	}
	report(pool, ids, elapsed)
}

func startProfile(mode, path string) interface{ Stop() } {
	opts := []func(*profile.Profile){profile.ProfilePath(path), profile.NoShutdownHook}
	switch mode {
	case "mem":
		opts = append(opts, profile.MemProfile)
	case "block":
		opts = append(opts, profile.BlockProfile)
	case "mutex":
		opts = append(opts, profile.MutexProfile)
	case "trace":
		opts = append(opts, profile.TraceProfile)
	default:
		opts = append(opts, profile.CPUProfile)
	}
	return profile.Start(opts...)
}

// run feeds every shard from the producers while one consumer per shard drains
// its queue, then waits until all queues are empty.
func run(ctx context.Context, settings config.Settings, pool []*shard) error {
	consumers, cctx := errgroup.WithContext(ctx)
	producersDone := make(chan struct{})

	for _, sh := range pool {
		consumers.Go(func() error {
			for {
				if err := sh.spawner.Update(0); err != nil {
					return err
				}
				select {
				case <-producersDone:
					if sh.spawner.Pending() == 0 {
						return nil
					}
				case <-cctx.Done():
					return cctx.Err()
				default:
					runtime.Gosched()
				}
			}
		})
	}

	limit := rate.Inf
	if settings.BenchRate > 0 {
		limit = rate.Limit(settings.BenchRate)
	}
	perProducer := settings.BenchRequests / settings.BenchProducers

	producers, pctx := errgroup.WithContext(cctx)
	for p := 0; p < settings.BenchProducers; p++ {
		limiter := rate.NewLimiter(limit, 1)
		owner := types.PlayerID(p % 2)
		producers.Go(func() error {
			for i := 0; i < perProducer; i++ {
				if err := limiter.Wait(pctx); err != nil {
					return err
				}
				req := event.SpawnRequest{
					UnitType: benchMix[i%len(benchMix)],
					Owner:    owner,
					Position: component.Pose{X: float64(i), Y: float64(p)},
				}
				if err := enqueue(pctx, pool[(p+i)%len(pool)], req); err != nil {
					return err
				}
			}
			return nil
		})
	}

	perr := producers.Wait()
	close(producersDone)
	cerr := consumers.Wait()
	return errors.Join(perr, cerr)
}

// enqueue retries while the shard's queue is full.
func enqueue(ctx context.Context, sh *shard, req event.SpawnRequest) error {
	for {
		err := sh.spawner.Enqueue(req)
		if !errors.Is(err, system.ErrQueueFull) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(100 * time.Microsecond):
		}
	}
}

// checkUnique verifies that no unit id was handed out twice across shards.
func checkUnique(pool []*shard) error {
	seen := make(map[types.UnitID]int)
	for i, sh := range pool {
		for id := range sh.ecs.Query(component.MaskOf(component.KindUnitIdentity)) {
			ident, _ := entity.Get[component.UnitIdentity](sh.ecs, id)
			if prev, dup := seen[ident.ID]; dup {
				return fmt.Errorf("unit id %d issued to shard %d and shard %d", ident.ID, prev, i)
			}
			seen[ident.ID] = i
		}
	}
	return nil
}

func report(pool []*shard, ids *identity.Allocator, elapsed time.Duration) {
	spawned, rejected, entities := 0, 0, 0
	for i, sh := range pool {
		c := sh.stats.Snapshot()
		spawned += c.Total()
		rejected += c.TotalRejected()
		entities += sh.ecs.Len()
		logger.Log.WithFields(logrus.Fields{
			"shard":      i,
			"spawned":    c.Total(),
			"rejected":   c.TotalRejected(),
			"entities":   sh.ecs.Len(),
			"archetypes": sh.ecs.ArchetypeCount(),
		}).Info("Shard finished.")
	}
	logger.Log.WithFields(logrus.Fields{
		"spawned":      spawned,
		"rejected":     rejected,
		"entities":     entities,
		"ids_issued":   ids.Issued(),
		"elapsed":      elapsed,
		"spawns_per_s": fmt.Sprintf("%.0f", float64(spawned)/elapsed.Seconds()),
	}).Info("Spawn benchmark finished.")
}
