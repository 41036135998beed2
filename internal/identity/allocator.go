// Package identity issues unit identifiers.
package identity

import (
	"errors"
	"math"
	"sync/atomic"

	"github.com/olivia-tucker23/bevy-space-rts/internal/types"
)

// ErrExhausted is returned once every identifier below the limit has been
// issued. The allocator never wraps around.
var ErrExhausted = errors.New("identity: unit id space exhausted")

// Allocator hands out strictly increasing unit ids starting at 0. It is safe
// for concurrent use and never blocks: allocation is a CAS loop on a single
// counter.
type Allocator struct {
	next  atomic.Uint64
	limit uint64
}

// NewAllocator returns an allocator covering the full UnitID range.
func NewAllocator() *Allocator {
	return NewAllocatorWithLimit(math.MaxUint32 + 1)
}

// NewAllocatorWithLimit returns an allocator that issues ids in [0, limit).
// Limits above the UnitID range are clamped to it.
func NewAllocatorWithLimit(limit uint64) *Allocator {
	if limit > math.MaxUint32+1 {
		limit = math.MaxUint32 + 1
	}
	return &Allocator{limit: limit}
}

// Next returns a value strictly greater than any value returned before.
func (a *Allocator) Next() (types.UnitID, error) {
	return a.Reserve(1)
}

// Reserve claims n consecutive ids and returns the first one. Either the whole
// block is claimed or nothing is.
func (a *Allocator) Reserve(n int) (types.UnitID, error) {
	if n <= 0 {
		return 0, errors.New("identity: reserve count must be positive")
	}
	for {
		cur := a.next.Load()
		if cur+uint64(n) > a.limit {
			return 0, ErrExhausted
		}
		if a.next.CompareAndSwap(cur, cur+uint64(n)) {
			return types.UnitID(cur), nil
		}
	}
}

// Issued returns how many ids have been handed out so far.
func (a *Allocator) Issued() uint64 {
	return a.next.Load()
}

// Remaining returns how many ids can still be issued.
func (a *Allocator) Remaining() uint64 {
	return a.limit - a.next.Load()
}

// NearExhaustion reports whether fewer than fraction*limit ids remain.
func (a *Allocator) NearExhaustion(fraction float64) bool {
	return float64(a.Remaining()) < fraction*float64(a.limit)
}
