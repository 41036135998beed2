// internal/types/types.go
package types

import "strconv"

// EntityID is the store-issued handle of an entity. It carries no data of its
// own; zero is never issued.
type EntityID uint64

// NilEntity marks an absent entity reference.
const NilEntity EntityID = 0

func (id EntityID) String() string {
	return "e" + strconv.FormatUint(uint64(id), 10)
}

// UnitID is the global identifying number of a unit, issued by the identity
// allocator. Values are never reused.
type UnitID uint32

// PlayerID identifies the owner of a unit.
type PlayerID uint32
