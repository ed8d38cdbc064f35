package ecs

import "reflect"

// The component API is generic in the component's concrete type, the way
// the registry maps each type to its unique id. T must be a struct
// embedding ComponentBase; functions return their zero result when it is
// not.

// CreateComponent returns a fresh, detached component of type T. The
// type's unique id is assigned on first sighting; nil is returned when
// the id space is exhausted.
func CreateComponent[T any](m *Manager) *T {
	c := new(T)
	comp, ok := any(c).(Component)
	if !ok {
		return nil
	}
	uid, ok := m.uniqueIDFor(reflect.TypeFor[T](), true)
	if !ok {
		return nil
	}
	b := comp.base()
	b.uniqueID = uid
	b.id = InvalidComponentID
	b.index = InvalidComponentIndex
	b.ownerID = InvalidEntityID
	return c
}

// AddComponent creates a component of type T and attaches it to e,
// returning the component. The store slot, instance id, unique id and
// owner are assigned on attach. Returns nil when e is not alive or the
// type space is exhausted.
func AddComponent[T any](m *Manager, e *Entity) *T {
	c := CreateComponent[T](m)
	if c == nil {
		return nil
	}
	if !AddComponentInstance(m, e, c) {
		return nil
	}
	return c
}

// AddComponentInstance attaches a pre-created component to e. It fails
// when c is nil, e is not alive, or c is already occupying a store slot
// (a component has at most one owner at a time).
func AddComponentInstance[T any](m *Manager, e *Entity, c *T) bool {
	if c == nil || e == nil || !e.alive {
		return false
	}
	comp, ok := any(c).(Component)
	if !ok {
		return false
	}
	uid, ok := m.uniqueIDFor(reflect.TypeFor[T](), true)
	if !ok {
		return false
	}
	store := m.storeFor(uid)
	b := comp.base()
	if b.index != InvalidComponentIndex && store.at(b.index) == comp {
		return false
	}
	index := store.allocate(comp)
	b.id = store.nextID()
	b.index = index
	b.uniqueID = uid
	b.ownerID = e.id
	e.addIndex(uid, index)
	return true
}

// HasComponent reports whether e has at least one component of type T
// attached, by signature bit.
func HasComponent[T any](m *Manager, e *Entity) bool {
	if e == nil {
		return false
	}
	uid, ok := m.uniqueIDFor(reflect.TypeFor[T](), false)
	if !ok {
		return false
	}
	return e.signature.Test(uid)
}

// HasComponentInstance reports whether this exact component is attached
// to e.
func HasComponentInstance[T any](m *Manager, e *Entity, c *T) bool {
	if e == nil || c == nil {
		return false
	}
	comp, ok := any(c).(Component)
	if !ok {
		return false
	}
	b := comp.base()
	uid, ok := m.uniqueIDFor(reflect.TypeFor[T](), false)
	if !ok || b.uniqueID != uid {
		return false
	}
	store := m.storeAt(uid)
	if store == nil || store.at(b.index) != comp {
		return false
	}
	return e.hasIndex(uid, b.index)
}

// GetComponent returns the component of type T attached to e with the
// smallest store index, or nil if e has none.
func GetComponent[T any](m *Manager, e *Entity) *T {
	if e == nil {
		return nil
	}
	uid, ok := m.uniqueIDFor(reflect.TypeFor[T](), false)
	if !ok {
		return nil
	}
	indices := e.indexesOf(uid)
	if len(indices) == 0 {
		return nil
	}
	store := m.storeAt(uid)
	if store == nil {
		return nil
	}
	c, _ := any(store.at(indices[0])).(*T)
	return c
}

// GetComponents returns every component of type T attached to e in
// ascending store-index order.
func GetComponents[T any](m *Manager, e *Entity) []*T {
	if e == nil {
		return nil
	}
	uid, ok := m.uniqueIDFor(reflect.TypeFor[T](), false)
	if !ok {
		return nil
	}
	indices := e.indexesOf(uid)
	if len(indices) == 0 {
		return nil
	}
	store := m.storeAt(uid)
	if store == nil {
		return nil
	}
	out := make([]*T, 0, len(indices))
	for _, index := range indices {
		if c, ok := any(store.at(index)).(*T); ok {
			out = append(out, c)
		}
	}
	return out
}

// RemoveComponent detaches and destroys the component of type T with the
// given instance id. It fails when no such component is attached to e.
func RemoveComponent[T any](m *Manager, e *Entity, id ComponentID) bool {
	if e == nil {
		return false
	}
	uid, ok := m.uniqueIDFor(reflect.TypeFor[T](), false)
	if !ok {
		return false
	}
	store := m.storeAt(uid)
	if store == nil {
		return false
	}
	for _, index := range e.indexesOf(uid) {
		c := store.at(index)
		if c == nil || c.base().id != id {
			continue
		}
		return m.detachComponent(e, uid, index, c)
	}
	return false
}

// RemoveComponentInstance detaches and destroys this exact component. It
// fails when the component is not owned by e.
func RemoveComponentInstance[T any](m *Manager, e *Entity, c *T) bool {
	if e == nil || c == nil {
		return false
	}
	comp, ok := any(c).(Component)
	if !ok {
		return false
	}
	b := comp.base()
	if b.ownerID != e.id {
		return false
	}
	uid, ok := m.uniqueIDFor(reflect.TypeFor[T](), false)
	if !ok {
		return false
	}
	store := m.storeAt(uid)
	if store == nil || store.at(b.index) != comp {
		return false
	}
	return m.detachComponent(e, uid, b.index, comp)
}

// RemoveComponents detaches and destroys every component of type T
// attached to e. It returns false when e had none.
func RemoveComponents[T any](m *Manager, e *Entity) bool {
	if e == nil {
		return false
	}
	uid, ok := m.uniqueIDFor(reflect.TypeFor[T](), false)
	if !ok {
		return false
	}
	indices := e.indexesOf(uid)
	if len(indices) == 0 {
		return false
	}
	store := m.storeAt(uid)
	removed := append([]ComponentIndex(nil), indices...)
	for _, index := range removed {
		var c Component
		if store != nil {
			c = store.at(index)
		}
		m.detachComponent(e, uid, index, c)
	}
	return true
}

// DeleteComponent destroys a component. If it is attached and tracked by
// its owner, the attachment is removed first (clearing the owner's
// signature bit when no instance of the type remains); orphaned
// components are simply invalidated. The caller must drop its reference
// afterwards.
func DeleteComponent[T any](m *Manager, c *T) bool {
	if c == nil {
		return false
	}
	comp, ok := any(c).(Component)
	if !ok {
		return false
	}
	b := comp.base()
	if b.ownerID != InvalidEntityID {
		if e := m.findEntity(b.ownerID); e != nil && e.hasIndex(b.uniqueID, b.index) {
			return m.detachComponent(e, b.uniqueID, b.index, comp)
		}
	}
	b.detach()
	return true
}

// detachComponent frees the store slot, unlinks the entity bookkeeping
// and invalidates the component record.
func (m *Manager) detachComponent(e *Entity, uid UniqueID, index ComponentIndex, c Component) bool {
	if store := m.storeAt(uid); store != nil {
		store.freeSlot(index)
	}
	e.removeIndex(uid, index)
	if c != nil {
		c.base().detach()
	}
	return true
}

// findEntity resolves an id across all pools without error reporting.
func (m *Manager) findEntity(id EntityID) *Entity {
	if id == InvalidEntityID {
		return nil
	}
	for _, p := range m.pools {
		if e := p.GetEntityByID(id); e != nil {
			return e
		}
	}
	return nil
}
