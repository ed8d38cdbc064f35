package ecs

import (
	"reflect"
	"sort"
)

// Manager owns the whole world: every pool, every component store and
// every system. Exactly one Manager exists per process; obtain it with
// Acquire and tear it down with Release. All mutation flows through its
// methods (or entity methods that delegate back to it) from a single
// goroutine.
type Manager struct {
	pools         []*EntityPool
	poolsByName   map[string]*EntityPool
	compTypes     map[reflect.Type]UniqueID
	stores        []*componentStore
	systems       []System
	systemTypes   map[reflect.Type]System
	gather        []*Entity
	errorCallback ErrorCallback
	idCounter     EntityID
	nextUniqueID  UniqueID
}

var instance *Manager

// Acquire returns the process-wide Manager, constructing it on first use.
// Construction installs the default pool with DefaultPoolSize slots.
func Acquire() *Manager {
	if instance == nil {
		instance = newManager()
	}
	return instance
}

// Release tears the singleton down, destroying all pools, components and
// systems. A subsequent Acquire builds a fresh world.
func Release() {
	instance = nil
}

// Valid reports whether the singleton is live.
func Valid() bool {
	return instance != nil
}

func newManager() *Manager {
	m := &Manager{
		poolsByName: make(map[string]*EntityPool),
		compTypes:   make(map[reflect.Type]UniqueID),
		systemTypes: make(map[reflect.Type]System),
	}
	m.installPool(NewEntityPool(DefaultPoolName, DefaultPoolSize))
	return m
}

// Clear restores the just-initialized state: the default pool is emptied,
// every other pool, every component and every system is gone and all
// counters start over. The error callback survives.
func (m *Manager) Clear() {
	m.pools = nil
	m.poolsByName = make(map[string]*EntityPool)
	m.compTypes = make(map[reflect.Type]UniqueID)
	m.stores = nil
	m.systems = nil
	m.systemTypes = make(map[reflect.Type]System)
	m.gather = nil
	m.idCounter = 0
	m.nextUniqueID = 0
	m.installPool(NewEntityPool(DefaultPoolName, DefaultPoolSize))
}

func (m *Manager) installPool(p *EntityPool) {
	m.pools = append(m.pools, p)
	m.poolsByName[p.name] = p
}

// ---- pools ----

// CreatePool installs a new pool. The name must be non-empty, not the
// reserved default and not already in use; size must be positive and is
// rounded up to the next power of two.
func (m *Manager) CreatePool(name string, size int) bool {
	if name == "" || name == DefaultPoolName {
		m.sendError(ErrInvalidPoolName)
		return false
	}
	if _, exists := m.poolsByName[name]; exists {
		m.sendError(ErrDuplicatePoolName)
		return false
	}
	p := NewEntityPool(name, size)
	if p == nil {
		m.sendError(ErrInvalidPoolName)
		return false
	}
	m.installPool(p)
	return true
}

// AddPool installs a detached pool under its own name. The reserved
// default name and names already in use are rejected.
func (m *Manager) AddPool(p *EntityPool) bool {
	if p == nil || p.name == "" || p.name == DefaultPoolName {
		m.sendError(ErrInvalidPoolName)
		return false
	}
	if _, exists := m.poolsByName[p.name]; exists {
		m.sendError(ErrDuplicatePoolName)
		return false
	}
	m.installPool(p)
	return true
}

// DeletePool destroys a pool and every entity in it. The default pool
// cannot be deleted.
func (m *Manager) DeletePool(name string) bool {
	p := m.DetachPool(name)
	if p == nil {
		return false
	}
	for _, e := range p.slots {
		if e.alive {
			m.freeComponentsOf(e)
		}
		e.reset()
	}
	return true
}

// DetachPool removes a pool from the Manager and hands ownership to the
// caller. Detached pools keep their entities and can be re-installed with
// AddPool. The default pool cannot be detached.
func (m *Manager) DetachPool(name string) *EntityPool {
	if name == "" || name == DefaultPoolName {
		m.sendError(ErrInvalidPoolName)
		return nil
	}
	for i, p := range m.pools {
		if p.name == name {
			m.pools = append(m.pools[:i], m.pools[i+1:]...)
			delete(m.poolsByName, name)
			return p
		}
	}
	m.sendError(ErrPoolNotFound)
	return nil
}

// GetPool returns the named pool, or nil if it is unknown.
func (m *Manager) GetPool(name string) *EntityPool {
	p, ok := m.poolsByName[name]
	if !ok {
		m.sendError(ErrPoolNotFound)
		return nil
	}
	return p
}

// HasPoolName reports whether a pool with the name is installed.
func (m *Manager) HasPoolName(name string) bool {
	_, ok := m.poolsByName[name]
	return ok
}

// GetPoolSize returns the named pool's capacity, or 0 if it is unknown.
func (m *Manager) GetPoolSize(name string) int {
	p, ok := m.poolsByName[name]
	if !ok {
		m.sendError(ErrPoolNotFound)
		return 0
	}
	return p.Capacity()
}

// ResizePool changes a pool's capacity. The new size is rounded up to the
// next power of two. Growing appends fresh free slots; shrinking drops the
// trailing slots, destroying any live entities in the dropped range and
// filtering out-of-range indices from the free queue.
func (m *Manager) ResizePool(name string, newSize int) bool {
	if name == "" {
		m.sendError(ErrInvalidPoolName)
		return false
	}
	p, ok := m.poolsByName[name]
	if !ok {
		m.sendError(ErrPoolNotFound)
		return false
	}
	if newSize <= 0 {
		return false
	}
	capacity := nextPowerOfTwo(newSize)
	current := len(p.slots)
	switch {
	case capacity > current:
		for i := current; i < capacity; i++ {
			p.slots = append(p.slots, newEntity(p.name, EntityIndex(i)))
			p.freeIndices.pushBack(EntityIndex(i))
		}
	case capacity < current:
		for _, e := range p.slots[capacity:] {
			if e.alive {
				m.freeComponentsOf(e)
				e.reset()
			}
		}
		p.slots = p.slots[:capacity]
		kept := p.freeIndices[:0]
		for _, index := range p.freeIndices {
			if int(index) < capacity {
				kept = append(kept, index)
			}
		}
		p.freeIndices = kept
	}
	return true
}

// ---- entities ----

// nextEntityID returns the next id from the wrapping counter.
func (m *Manager) nextEntityID() EntityID {
	id := m.idCounter
	m.idCounter++
	if m.idCounter == InvalidEntityID {
		m.idCounter = 0
	}
	return id
}

// CreateEntity revives a free slot in the default pool and returns it, or
// nil when the pool is full.
func (m *Manager) CreateEntity() *Entity {
	return m.CreateEntityIn(DefaultPoolName)
}

// CreateEntityIn revives a free slot in the named pool. The slot is the
// head of the pool's free queue; the entity comes back alive under a fresh
// id with an empty signature.
func (m *Manager) CreateEntityIn(poolName string) *Entity {
	if poolName == "" {
		m.sendError(ErrInvalidPoolName)
		return nil
	}
	p, ok := m.poolsByName[poolName]
	if !ok {
		m.sendError(ErrPoolNotFound)
		return nil
	}
	e := p.acquireSlot()
	if e == nil {
		m.sendError(ErrPoolFull)
		return nil
	}
	e.revive(m.nextEntityID())
	return e
}

// GetEntityByID scans every pool for a live entity with the id.
func (m *Manager) GetEntityByID(id EntityID) *Entity {
	if id == InvalidEntityID {
		m.sendError(ErrInvalidEntityID)
		return nil
	}
	for _, p := range m.pools {
		if e := p.GetEntityByID(id); e != nil {
			return e
		}
	}
	m.sendError(ErrEntityNotFound)
	return nil
}

// GetAllEntitiesInPool appends the named pool's live entities to out in
// slot-index order and returns the extended slice.
func (m *Manager) GetAllEntitiesInPool(name string, out []*Entity) ([]*Entity, bool) {
	p, ok := m.poolsByName[name]
	if !ok {
		m.sendError(ErrPoolNotFound)
		return out, false
	}
	for _, e := range p.slots {
		if e.alive {
			out = append(out, e)
		}
	}
	return out, true
}

// MoveEntityToPool transfers a live entity to another pool, preserving its
// id and component attachments. The target slot comes off the target's
// free queue; the vacated source slot takes the displaced dead slot's
// place and returns to the source's free queue.
func (m *Manager) MoveEntityToPool(e *Entity, targetName string) bool {
	if e == nil || !e.alive {
		m.sendError(ErrInvalidEntityID)
		return false
	}
	if targetName == "" {
		m.sendError(ErrInvalidPoolName)
		return false
	}
	target, ok := m.poolsByName[targetName]
	if !ok {
		m.sendError(ErrPoolNotFound)
		return false
	}
	if target.name == e.poolName {
		return true
	}
	source, ok := m.poolsByName[e.poolName]
	if !ok {
		m.sendError(ErrPoolNotFound)
		return false
	}
	targetIndex, ok := target.freeIndices.popFront()
	if !ok {
		m.sendError(ErrPoolFull)
		return false
	}
	displaced := target.slots[targetIndex]
	sourceIndex := e.index

	target.slots[targetIndex] = e
	e.poolName = target.name
	e.index = targetIndex

	displaced.poolName = source.name
	displaced.index = sourceIndex
	source.slots[sourceIndex] = displaced
	source.releaseSlot(sourceIndex)
	return true
}

// KillEntity destroys a live entity: every attached component is freed,
// the signature and index map are cleared, the id becomes invalid and the
// slot index goes to the front of the pool's free queue so it is reused
// first.
func (m *Manager) KillEntity(e *Entity) {
	if e == nil || !e.alive {
		return
	}
	m.freeComponentsOf(e)
	index := e.index
	e.reset()
	if p, ok := m.poolsByName[e.poolName]; ok {
		p.releaseSlot(index)
	}
}

// freeComponentsOf releases every store slot the entity occupies.
func (m *Manager) freeComponentsOf(e *Entity) {
	for uid, indices := range e.indices {
		store := m.storeAt(uid)
		if store == nil {
			continue
		}
		for _, index := range indices {
			if c := store.at(index); c != nil {
				c.base().detach()
			}
			store.freeSlot(index)
		}
	}
}

// ---- component type registry ----

// uniqueIDFor returns the unique id for a component type, assigning the
// next free id on first sighting when allocate is set. The boolean is
// false when the type is unknown (allocate unset) or the id space is
// exhausted.
func (m *Manager) uniqueIDFor(t reflect.Type, allocate bool) (UniqueID, bool) {
	if uid, ok := m.compTypes[t]; ok {
		return uid, true
	}
	if !allocate {
		return InvalidUniqueID, false
	}
	if int(m.nextUniqueID) >= MaxComponentTypes {
		m.sendError(ErrMaxComponentTypesReached)
		return InvalidUniqueID, false
	}
	uid := m.nextUniqueID
	m.nextUniqueID++
	m.compTypes[t] = uid
	return uid, true
}

// storeFor returns the store for a unique id, creating it on first use.
func (m *Manager) storeFor(uid UniqueID) *componentStore {
	for int(uid) >= len(m.stores) {
		m.stores = append(m.stores, nil)
	}
	if m.stores[uid] == nil {
		m.stores[uid] = newComponentStore()
	}
	return m.stores[uid]
}

// storeAt returns the store for a unique id, or nil if none exists yet.
func (m *Manager) storeAt(uid UniqueID) *componentStore {
	if int(uid) >= len(m.stores) {
		return nil
	}
	return m.stores[uid]
}

// ---- scheduler ----

// insertSystem places s into the priority-ordered system list.
func (m *Manager) insertSystem(s System) {
	m.systems = append(m.systems, s)
	sort.SliceStable(m.systems, func(i, j int) bool {
		return m.systems[i].systemBase().priority < m.systems[j].systemBase().priority
	})
}

// hasPriority reports whether a registered system already uses the priority.
func (m *Manager) hasPriority(priority int) bool {
	for _, s := range m.systems {
		if s.systemBase().priority == priority {
			return true
		}
	}
	return false
}

// Update runs one tick: systems execute in ascending priority order, each
// active system receiving the live, awake entities whose signatures cover
// its filter. Entities are gathered from the default pool first (when
// enabled), then the system's pool names in the order they were added,
// slot-index ascending within each pool. An empty filter matches nothing.
// The view slice is reused between systems; systems must not retain it.
func (m *Manager) Update(delta float64) {
	for _, s := range m.systems {
		base := s.systemBase()
		if !base.active {
			continue
		}
		m.gather = m.gather[:0]
		if !base.filter.IsZero() {
			if base.useDefault {
				m.gatherFrom(DefaultPoolName, base.filter)
			}
			for _, name := range base.poolNames {
				m.gatherFrom(name, base.filter)
			}
		}
		s.Update(delta, m.gather)
	}
}

// gatherFrom appends the named pool's matching entities to the gather
// buffer. Unknown pool names contribute nothing.
func (m *Manager) gatherFrom(name string, filter Signature) {
	p, ok := m.poolsByName[name]
	if !ok {
		return
	}
	for _, e := range p.slots {
		if e.alive && !e.sleep && e.signature.Contains(filter) {
			m.gather = append(m.gather, e)
		}
	}
}
