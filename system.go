package ecs

// System is the contract every system type satisfies by embedding
// SystemBase and implementing Update. Update receives the tick delta and
// the entities matching the system's filter across its selected pools;
// the view is only valid for the duration of the call and must not be
// retained.
type System interface {
	Update(delta float64, entities []*Entity)
	systemBase() *SystemBase
}

// SystemBase carries a system's scheduling metadata: its priority (lower
// runs earlier, unique across registered systems), its active flag, its
// component filter and the pools it scans. A freshly registered system is
// active, has an empty filter and scans the default pool.
//
// Embed it as the first field of a system struct:
//
//	type Movement struct {
//		ecs.SystemBase
//	}
type SystemBase struct {
	poolNames  []string
	priority   int
	filter     Signature
	active     bool
	useDefault bool
}

func (b *SystemBase) systemBase() *SystemBase { return b }

// Priority returns the system's scheduling priority.
func (b *SystemBase) Priority() int {
	return b.priority
}

// Filter returns the system's component requirement mask.
func (b *SystemBase) Filter() Signature {
	return b.filter
}

// Activate includes the system in subsequent ticks.
func (b *SystemBase) Activate() {
	b.active = true
}

// Deactivate excludes the system from subsequent ticks. Deactivating a
// system mid-tick also skips it for the remainder of that tick.
func (b *SystemBase) Deactivate() {
	b.active = false
}

// IsActive reports whether the system participates in ticks.
func (b *SystemBase) IsActive() bool {
	return b.active
}

// AddPoolName adds a pool to the system's scan set. Adding the reserved
// default name is equivalent to EnableDefaultPool. Unknown names are
// tolerated and simply yield no entities.
func (b *SystemBase) AddPoolName(name string) {
	if name == "" {
		return
	}
	if name == DefaultPoolName {
		b.useDefault = true
		return
	}
	for _, n := range b.poolNames {
		if n == name {
			return
		}
	}
	b.poolNames = append(b.poolNames, name)
}

// RemovePoolName drops a pool from the system's scan set.
func (b *SystemBase) RemovePoolName(name string) {
	if name == DefaultPoolName {
		b.useDefault = false
		return
	}
	for i, n := range b.poolNames {
		if n == name {
			b.poolNames = append(b.poolNames[:i], b.poolNames[i+1:]...)
			return
		}
	}
}

// EnableDefaultPool includes the default pool in the system's scan set.
func (b *SystemBase) EnableDefaultPool() {
	b.useDefault = true
}

// DisableDefaultPool excludes the default pool from the system's scan set.
func (b *SystemBase) DisableDefaultPool() {
	b.useDefault = false
}

// UsesDefaultPool reports whether the default pool is scanned.
func (b *SystemBase) UsesDefaultPool() bool {
	return b.useDefault
}

// PoolNames returns the non-default pool names the system scans, in the
// order they were added. The returned slice must not be mutated.
func (b *SystemBase) PoolNames() []string {
	return b.poolNames
}
