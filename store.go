package ecs

// componentStore holds every live component of one concrete type in a
// dense slot vector. Vacated slots are recycled through a FIFO free queue;
// each store also runs the wrapping instance-id counter for its type.
type componentStore struct {
	slots       []Component
	freeIndices []ComponentIndex
	idCounter   ComponentID
}

func newComponentStore() *componentStore {
	return &componentStore{}
}

// allocate places c in a slot and returns its index, reusing the oldest
// freed slot before growing the vector.
func (s *componentStore) allocate(c Component) ComponentIndex {
	if len(s.freeIndices) > 0 {
		index := s.freeIndices[0]
		s.freeIndices = s.freeIndices[1:]
		s.slots[index] = c
		return index
	}
	s.slots = append(s.slots, c)
	return ComponentIndex(len(s.slots) - 1)
}

// freeSlot empties the slot and queues its index for reuse.
func (s *componentStore) freeSlot(index ComponentIndex) {
	if int(index) >= len(s.slots) || s.slots[index] == nil {
		return
	}
	s.slots[index] = nil
	s.freeIndices = append(s.freeIndices, index)
}

// at returns the component occupying the slot, or nil.
func (s *componentStore) at(index ComponentIndex) Component {
	if int(index) >= len(s.slots) {
		return nil
	}
	return s.slots[index]
}

// count returns the number of occupied slots.
func (s *componentStore) count() int {
	return len(s.slots) - len(s.freeIndices)
}

// nextID returns the next instance id. The counter wraps to zero at the
// sentinel, so extremely long-lived worlds can observe id reuse.
func (s *componentStore) nextID() ComponentID {
	id := s.idCounter
	s.idCounter++
	if s.idCounter == InvalidComponentID {
		s.idCounter = 0
	}
	return id
}
