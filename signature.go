package ecs

// Signature represents a set of up to MaxComponentTypes component unique
// ids as a fixed-width bitmask. The zero value is the empty set. An entity
// carries one Signature describing its attached component types; a system
// carries one describing the types it requires.
type Signature [4]uint64

// Set enables the bit for the given unique id.
func (s *Signature) Set(bit UniqueID) {
	i := bit >> 6 // (bit / 64) to find the uint64 word
	o := bit & 63 // (bit % 64) to find the bit offset
	s[i] |= uint64(1) << uint64(o)
}

// Clear disables the bit for the given unique id.
func (s *Signature) Clear(bit UniqueID) {
	i := bit >> 6
	o := bit & 63
	s[i] &= ^(uint64(1) << uint64(o))
}

// Test reports whether the bit for the given unique id is set.
func (s Signature) Test(bit UniqueID) bool {
	i := bit >> 6
	o := bit & 63
	return (s[i] & (uint64(1) << uint64(o))) != 0
}

// And returns the bitwise intersection of two signatures.
func (s Signature) And(other Signature) Signature {
	var out Signature
	out[0] = s[0] & other[0]
	out[1] = s[1] & other[1]
	out[2] = s[2] & other[2]
	out[3] = s[3] & other[3]
	return out
}

// Equals reports whether two signatures contain exactly the same bits.
func (s Signature) Equals(other Signature) bool {
	return s == other
}

// Contains reports whether every bit set in sub is also set in s. A system
// filter matches an entity when the entity's signature contains the filter.
func (s Signature) Contains(sub Signature) bool {
	return (s[0]&sub[0]) == sub[0] &&
		(s[1]&sub[1]) == sub[1] &&
		(s[2]&sub[2]) == sub[2] &&
		(s[3]&sub[3]) == sub[3]
}

// IsZero reports whether no bit is set.
func (s Signature) IsZero() bool {
	return s == Signature{}
}

// Uint64 returns the lowest 64 bits of the mask. Unique ids are assigned
// from zero upward, so worlds with at most 64 component types can compare
// whole signatures as plain integers.
func (s Signature) Uint64() uint64 {
	return s[0]
}
