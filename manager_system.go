package ecs

import "reflect"

// The system API mirrors the component API: generic in the system's
// concrete type, which doubles as its registry key. S must be a struct
// embedding SystemBase and implementing Update.

// CreateSystem registers a new system of type S at the given priority and
// returns it. Registration fails when S is already registered or another
// system holds the same priority. A fresh system is active, has an empty
// filter and scans the default pool.
func CreateSystem[S any](m *Manager, priority int) *S {
	s := new(S)
	sys, ok := any(s).(System)
	if !ok {
		return nil
	}
	t := reflect.TypeFor[S]()
	if _, exists := m.systemTypes[t]; exists {
		m.sendError(ErrDuplicateSystem)
		return nil
	}
	if m.hasPriority(priority) {
		m.sendError(ErrDuplicateSystem)
		return nil
	}
	base := sys.systemBase()
	base.priority = priority
	base.active = true
	base.useDefault = true
	m.systemTypes[t] = sys
	m.insertSystem(sys)
	return s
}

// DeleteSystem unregisters and destroys the system of type S. The caller
// must drop any reference to it afterwards.
func DeleteSystem[S any](m *Manager) bool {
	t := reflect.TypeFor[S]()
	sys, exists := m.systemTypes[t]
	if !exists {
		return false
	}
	delete(m.systemTypes, t)
	for i, s := range m.systems {
		if s == sys {
			m.systems = append(m.systems[:i], m.systems[i+1:]...)
			break
		}
	}
	return true
}

// HasSystem reports whether a system of type S is registered.
func HasSystem[S any](m *Manager) bool {
	_, exists := m.systemTypes[reflect.TypeFor[S]()]
	return exists
}

// GetSystem returns the registered system of type S, or nil.
func GetSystem[S any](m *Manager) *S {
	sys, exists := m.systemTypes[reflect.TypeFor[S]()]
	if !exists {
		return nil
	}
	s, _ := any(sys).(*S)
	return s
}

// AddComponentType adds component type T to the system's filter. It fails
// when T has never been registered, i.e. no component of that type has
// ever been created.
func AddComponentType[T any](m *Manager, s System) bool {
	if s == nil {
		return false
	}
	uid, ok := m.uniqueIDFor(reflect.TypeFor[T](), false)
	if !ok {
		m.sendError(ErrComponentTypeUnknown)
		return false
	}
	s.systemBase().filter.Set(uid)
	return true
}

// RemoveComponentType removes component type T from the system's filter.
func RemoveComponentType[T any](m *Manager, s System) bool {
	if s == nil {
		return false
	}
	uid, ok := m.uniqueIDFor(reflect.TypeFor[T](), false)
	if !ok {
		return false
	}
	s.systemBase().filter.Clear(uid)
	return true
}
