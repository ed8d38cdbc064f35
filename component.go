package ecs

// Component is the contract every component type satisfies by embedding
// ComponentBase. The Manager maintains the base record; user code only
// reads it.
type Component interface {
	base() *ComponentBase
}

// ComponentBase carries the bookkeeping the Manager keeps per component:
// the per-type instance id, the slot the component occupies in its type's
// store, the type's unique id and the owning entity's id. A detached
// component owns InvalidEntityID.
//
// Embed it as the first field of a component struct:
//
//	type Health struct {
//		ecs.ComponentBase
//		HP int
//	}
type ComponentBase struct {
	id       ComponentID
	index    ComponentIndex
	uniqueID UniqueID
	ownerID  EntityID
}

func (b *ComponentBase) base() *ComponentBase { return b }

// ID returns the component's per-type instance id.
func (b *ComponentBase) ID() ComponentID {
	return b.id
}

// Index returns the component's slot in its type's store, or
// InvalidComponentIndex when detached.
func (b *ComponentBase) Index() ComponentIndex {
	return b.index
}

// UniqueID returns the small integer identifying the component's concrete
// type.
func (b *ComponentBase) UniqueID() UniqueID {
	return b.uniqueID
}

// OwnerID returns the id of the owning entity, or InvalidEntityID when the
// component is not attached.
func (b *ComponentBase) OwnerID() EntityID {
	return b.ownerID
}

// detach resets the attachment bookkeeping, keeping the type's unique id.
func (b *ComponentBase) detach() {
	b.id = InvalidComponentID
	b.index = InvalidComponentIndex
	b.ownerID = InvalidEntityID
}
