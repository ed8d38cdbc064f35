package ecs

import "sort"

// Entity is a fixed slot inside an EntityPool. It carries identity only:
// an id from a wrapping counter, its slot index, its pool's name, the
// alive and sleep flags, its component Signature and, per component type,
// the set of store indices of its attached components. Entities are
// created and mutated only through the Manager; a killed slot keeps its
// address and is revived in place on reuse.
type Entity struct {
	indices   map[UniqueID][]ComponentIndex
	poolName  string
	id        EntityID
	index     EntityIndex
	signature Signature
	alive     bool
	sleep     bool
}

func newEntity(poolName string, index EntityIndex) *Entity {
	return &Entity{
		indices:  make(map[UniqueID][]ComponentIndex),
		poolName: poolName,
		id:       InvalidEntityID,
		index:    index,
	}
}

// ID returns the entity's id, or InvalidEntityID if it is dead.
func (e *Entity) ID() EntityID {
	return e.id
}

// SlotIndex returns the entity's fixed slot index inside its pool.
func (e *Entity) SlotIndex() EntityIndex {
	return e.index
}

// PoolName returns the name of the pool that owns the entity.
func (e *Entity) PoolName() string {
	return e.poolName
}

// Alive reports whether the entity is live.
func (e *Entity) Alive() bool {
	return e.alive
}

// Signature returns the entity's component type mask.
func (e *Entity) Signature() Signature {
	return e.signature
}

// Sleep excludes the entity from system views until Wake is called.
func (e *Entity) Sleep() {
	e.sleep = true
}

// Wake re-includes the entity in system views.
func (e *Entity) Wake() {
	e.sleep = false
}

// Sleeping reports whether the entity is excluded from system views.
func (e *Entity) Sleeping() bool {
	return e.sleep
}

// Kill destroys the entity through the Manager: every attached component
// is freed, the signature is zeroed and the slot goes to the front of its
// pool's free queue. No-op when the Manager singleton is not live.
func (e *Entity) Kill() {
	if instance != nil {
		instance.KillEntity(e)
	}
}

// revive marks the slot live under a fresh id.
func (e *Entity) revive(id EntityID) {
	e.alive = true
	e.sleep = false
	e.id = id
}

// reset returns the slot to its dead state. Component store cleanup is the
// Manager's job; this only wipes the entity-side bookkeeping.
func (e *Entity) reset() {
	e.alive = false
	e.sleep = false
	e.id = InvalidEntityID
	e.signature = Signature{}
	e.indices = make(map[UniqueID][]ComponentIndex)
}

// addIndex records a store index for the type and sets the signature bit.
// Indices are kept in ascending order.
func (e *Entity) addIndex(uid UniqueID, index ComponentIndex) {
	list := e.indices[uid]
	pos := sort.Search(len(list), func(i int) bool { return list[i] >= index })
	list = append(list, 0)
	copy(list[pos+1:], list[pos:])
	list[pos] = index
	e.indices[uid] = list
	e.signature.Set(uid)
}

// removeIndex drops a store index for the type, clearing the signature bit
// when no instance of the type remains. Reports whether the index was
// tracked.
func (e *Entity) removeIndex(uid UniqueID, index ComponentIndex) bool {
	list, ok := e.indices[uid]
	if !ok {
		return false
	}
	pos := sort.Search(len(list), func(i int) bool { return list[i] >= index })
	if pos >= len(list) || list[pos] != index {
		return false
	}
	list = append(list[:pos], list[pos+1:]...)
	if len(list) == 0 {
		delete(e.indices, uid)
		e.signature.Clear(uid)
	} else {
		e.indices[uid] = list
	}
	return true
}

// indexesOf returns the ascending store indices for the type. The returned
// slice is the entity's own bookkeeping and must not be mutated.
func (e *Entity) indexesOf(uid UniqueID) []ComponentIndex {
	return e.indices[uid]
}

// hasIndex reports whether a specific store index is tracked for the type.
func (e *Entity) hasIndex(uid UniqueID, index ComponentIndex) bool {
	list, ok := e.indices[uid]
	if !ok {
		return false
	}
	pos := sort.Search(len(list), func(i int) bool { return list[i] >= index })
	return pos < len(list) && list[pos] == index
}
