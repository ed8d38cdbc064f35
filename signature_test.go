package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignatureSetClearTest(t *testing.T) {
	var s Signature
	assert.True(t, s.IsZero())

	s.Set(0)
	s.Set(3)
	s.Set(200)
	assert.True(t, s.Test(0))
	assert.True(t, s.Test(3))
	assert.True(t, s.Test(200))
	assert.False(t, s.Test(1))
	assert.False(t, s.IsZero())

	s.Clear(3)
	assert.False(t, s.Test(3))
	assert.True(t, s.Test(0))
	assert.True(t, s.Test(200))
}

func TestSignatureUint64(t *testing.T) {
	var s Signature
	s.Set(0)
	s.Set(1)
	assert.Equal(t, uint64(3), s.Uint64())
	s.Clear(0)
	assert.Equal(t, uint64(2), s.Uint64())
}

func TestSignatureAndContains(t *testing.T) {
	var entity, filter Signature
	entity.Set(0)
	entity.Set(1)
	entity.Set(70)
	filter.Set(1)
	filter.Set(70)

	assert.True(t, entity.And(filter).Equals(filter))
	assert.True(t, entity.Contains(filter))
	assert.False(t, filter.Contains(entity))

	filter.Set(130)
	assert.False(t, entity.Contains(filter))
}

func TestSignatureEquals(t *testing.T) {
	var a, b Signature
	a.Set(5)
	b.Set(5)
	assert.True(t, a.Equals(b))
	b.Set(64)
	assert.False(t, a.Equals(b))
}

func TestSignatureHighWords(t *testing.T) {
	var s Signature
	for _, bit := range []UniqueID{63, 64, 127, 128, 191, 192, 255} {
		s.Set(bit)
		assert.True(t, s.Test(bit), "bit %d", bit)
	}
	for _, bit := range []UniqueID{63, 64, 127, 128, 191, 192, 255} {
		s.Clear(bit)
		assert.False(t, s.Test(bit), "bit %d", bit)
	}
	assert.True(t, s.IsZero())
}
