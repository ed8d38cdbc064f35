// Package ecs implements a pool-based Entity Component System runtime.
//
// The world is owned by a process-wide Manager. Entities live in named,
// power-of-two-sized pools and recycle their slots through a FIFO free
// queue. Components are plain Go structs embedding ComponentBase; each
// concrete component type is assigned a small unique id the first time it
// is seen, which indexes both its dense store and the 256-bit Signature
// kept per entity. Systems embed SystemBase, declare a component filter
// and a pool selection, and run once per tick in ascending priority order
// against the entities whose signatures cover their filter.
//
// The runtime is single-threaded by contract: all state is mutated through
// the Manager from one goroutine. Mutating world structure from inside a
// System's Update (creating or killing entities, attaching or removing
// components) is not supported; defer such work to after the tick.
package ecs

import "math"

// MaxComponentTypes is the number of distinct component types the runtime
// can track. It fixes the width of Signature.
const MaxComponentTypes = 256

const (
	// DefaultPoolName is the reserved name of the pool installed when the
	// Manager is acquired. It can never be deleted, detached or re-created.
	DefaultPoolName = "DEFAULT"
	// DefaultPoolSize is the capacity of the default pool.
	DefaultPoolSize = 2048
)

// EntityID identifies a live entity. Ids are assigned from a monotonic
// counter that wraps at InvalidEntityID.
type EntityID uint32

// EntityIndex is an entity's fixed slot position inside its pool.
type EntityIndex uint32

// ComponentID is a component's per-type instance id.
type ComponentID uint32

// ComponentIndex is a component's slot position inside its type's store.
type ComponentIndex uint32

// UniqueID is the small integer assigned to each distinct component type on
// first sighting. Valid values are below MaxComponentTypes.
type UniqueID uint32

// Sentinel values. Each is the maximum of its underlying integer type and
// never identifies a real entity, component, slot or type.
const (
	InvalidEntityID       EntityID       = math.MaxUint32
	InvalidEntityIndex    EntityIndex    = math.MaxUint32
	InvalidComponentID    ComponentID    = math.MaxUint32
	InvalidComponentIndex ComponentIndex = math.MaxUint32
	InvalidUniqueID       UniqueID       = math.MaxUint32
)
