package identity

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/olivia-tucker23/bevy-space-rts/internal/types"
	"golang.org/x/sync/errgroup"
)

func TestAllocator_StartsAtZeroAndIncreases(t *testing.T) {
	a := NewAllocator()
	var prev types.UnitID
	for i := 0; i < 1000; i++ {
		id, err := a.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if i == 0 && id != 0 {
			t.Fatalf("first id = %d, want 0", id)
		}
		if i > 0 && id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}

// Past the old 8-bit counter range ids keep increasing instead of wrapping.
func TestAllocator_NoWrapPast256(t *testing.T) {
	a := NewAllocator()
	for i := 0; i < 300; i++ {
		id, err := a.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if int(id) != i {
			t.Fatalf("id = %d, want %d", id, i)
		}
	}
}

func TestAllocator_Reserve(t *testing.T) {
	a := NewAllocator()
	if _, err := a.Next(); err != nil {
		t.Fatal(err)
	}
	first, err := a.Reserve(3)
	if err != nil {
		t.Fatalf("Reserve(3) error = %v", err)
	}
	if first != 1 {
		t.Errorf("Reserve(3) first = %d, want 1", first)
	}
	next, _ := a.Next()
	if next != 4 {
		t.Errorf("Next() after reserve = %d, want 4", next)
	}
	if _, err := a.Reserve(0); err == nil {
		t.Error("Reserve(0) expected error")
	}
}

func TestAllocator_Exhaustion(t *testing.T) {
	a := NewAllocatorWithLimit(3)
	for i := 0; i < 3; i++ {
		if _, err := a.Next(); err != nil {
			t.Fatalf("Next() #%d error = %v", i, err)
		}
	}
	if _, err := a.Next(); !errors.Is(err, ErrExhausted) {
		t.Fatalf("Next() past limit error = %v, want ErrExhausted", err)
	}
	if a.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", a.Remaining())
	}
	// A failed call must not move the counter.
	if a.Issued() != 3 {
		t.Errorf("Issued() = %d, want 3", a.Issued())
	}
}

func TestAllocator_ReserveIsAllOrNothing(t *testing.T) {
	a := NewAllocatorWithLimit(4)
	if _, err := a.Reserve(3); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Reserve(2); !errors.Is(err, ErrExhausted) {
		t.Fatalf("Reserve(2) error = %v, want ErrExhausted", err)
	}
	id, err := a.Next()
	if err != nil || id != 3 {
		t.Fatalf("Next() = %d, %v; want 3, nil", id, err)
	}
}

func TestAllocator_NearExhaustion(t *testing.T) {
	a := NewAllocatorWithLimit(100)
	if a.NearExhaustion(0.1) {
		t.Error("fresh allocator reported near exhaustion")
	}
	if _, err := a.Reserve(91); err != nil {
		t.Fatal(err)
	}
	if !a.NearExhaustion(0.1) {
		t.Error("expected near exhaustion with 9 of 100 ids left")
	}
}

func TestAllocator_Concurrent(t *testing.T) {
	const (
		workers = 8
		perWork = 2000
	)
	a := NewAllocator()

	var mu sync.Mutex
	all := make([]types.UnitID, 0, workers*perWork)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			local := make([]types.UnitID, 0, perWork)
			for i := 0; i < perWork; i++ {
				id, err := a.Next()
				if err != nil {
					return err
				}
				// Per caller the sequence is strictly increasing.
				if len(local) > 0 && id <= local[len(local)-1] {
					t.Errorf("non-monotonic id %d after %d", id, local[len(local)-1])
				}
				local = append(local, id)
			}
			mu.Lock()
			all = append(all, local...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("allocation failed: %v", err)
	}

	slices.Sort(all)
	for i, id := range all {
		if int(id) != i {
			t.Fatalf("ids are not a dense unique range: position %d holds %d", i, id)
		}
	}
}
