package ecs

import "math/bits"

// indexDeque is the pool free queue. Seeded slots are consumed from the
// front in FIFO order; freshly killed slots go back on the front so they
// are reused first.
type indexDeque []EntityIndex

func (q *indexDeque) pushBack(i EntityIndex) {
	*q = append(*q, i)
}

func (q *indexDeque) pushFront(i EntityIndex) {
	*q = append(*q, 0)
	copy((*q)[1:], *q)
	(*q)[0] = i
}

func (q *indexDeque) popFront() (EntityIndex, bool) {
	if len(*q) == 0 {
		return InvalidEntityIndex, false
	}
	i := (*q)[0]
	*q = (*q)[1:]
	return i, true
}

// nextPowerOfTwo rounds n up to the nearest power of two. n must be > 0.
func nextPowerOfTwo(n int) int {
	return 1 << bits.Len(uint(n-1))
}

// EntityPool is a named, fixed-capacity array of entity slots. Capacity is
// rounded up to the next power of two at construction and changes only
// through Manager.ResizePool. Slots never move: an entity keeps its slot
// index and address for as long as the pool holds it.
type EntityPool struct {
	name        string
	slots       []*Entity
	freeIndices indexDeque
}

// NewEntityPool builds a detached pool that can be installed with
// Manager.AddPool. It returns nil for an empty name or a non-positive
// size. The free queue is seeded with every slot in ascending order.
func NewEntityPool(name string, size int) *EntityPool {
	if name == "" || size <= 0 {
		return nil
	}
	capacity := nextPowerOfTwo(size)
	p := &EntityPool{
		name:        name,
		slots:       make([]*Entity, capacity),
		freeIndices: make(indexDeque, 0, capacity),
	}
	for i := range p.slots {
		p.slots[i] = newEntity(name, EntityIndex(i))
		p.freeIndices.pushBack(EntityIndex(i))
	}
	return p
}

// Name returns the pool's name.
func (p *EntityPool) Name() string {
	return p.name
}

// Capacity returns the pool's slot count, always a power of two.
func (p *EntityPool) Capacity() int {
	return len(p.slots)
}

// CountAlive returns the number of live entities in the pool.
func (p *EntityPool) CountAlive() int {
	return p.Count(true)
}

// Count returns the number of entities in the pool. With onlyAlive false
// it counts every slot, dead or alive.
func (p *EntityPool) Count(onlyAlive bool) int {
	if !onlyAlive {
		return len(p.slots)
	}
	count := 0
	for _, e := range p.slots {
		if e.alive {
			count++
		}
	}
	return count
}

// GetEntityByID scans the slots for a live entity with the given id,
// returning nil when no live entity carries it.
func (p *EntityPool) GetEntityByID(id EntityID) *Entity {
	for _, e := range p.slots {
		if e.alive && e.id == id {
			return e
		}
	}
	return nil
}

// acquireSlot pops the head of the free queue and returns the slot, or nil
// when the pool is full.
func (p *EntityPool) acquireSlot() *Entity {
	index, ok := p.freeIndices.popFront()
	if !ok {
		return nil
	}
	return p.slots[index]
}

// releaseSlot returns a slot index to the front of the free queue.
func (p *EntityPool) releaseSlot(index EntityIndex) {
	p.freeIndices.pushFront(index)
}

// reseed resets every slot to dead and rebuilds the free queue in
// ascending order. Component cleanup happens in the Manager before this
// is called.
func (p *EntityPool) reseed() {
	p.freeIndices = p.freeIndices[:0]
	for i, e := range p.slots {
		e.reset()
		p.freeIndices.pushBack(EntityIndex(i))
	}
}
