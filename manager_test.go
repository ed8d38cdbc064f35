package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volt2d/ecs"
)

// --- Test Components ---

type HealthComponent struct {
	ecs.ComponentBase
	HP int
}

type PositionComponent struct {
	ecs.ComponentBase
	X, Y int
}

type TestC1 struct {
	ecs.ComponentBase
}

type TestC2 struct {
	ecs.ComponentBase
}

// setup acquires a fresh Manager and schedules its teardown.
func setup(t *testing.T) *ecs.Manager {
	t.Helper()
	ecs.Release()
	m := ecs.Acquire()
	t.Cleanup(ecs.Release)
	return m
}

func TestAcquireReleaseValid(t *testing.T) {
	ecs.Release()
	assert.False(t, ecs.Valid())

	m := ecs.Acquire()
	require.NotNil(t, m)
	assert.True(t, ecs.Valid())
	assert.Same(t, m, ecs.Acquire(), "Acquire returns the same instance")

	assert.True(t, m.HasPoolName(ecs.DefaultPoolName))
	assert.Equal(t, ecs.DefaultPoolSize, m.GetPoolSize(ecs.DefaultPoolName))

	ecs.Release()
	assert.False(t, ecs.Valid())
}

func TestCreateEntityAndKillReuse(t *testing.T) {
	m := setup(t)

	e := m.CreateEntity()
	require.NotNil(t, e)
	assert.Equal(t, ecs.EntityID(0), e.ID(), "first id is 0")
	assert.Equal(t, ecs.DefaultPoolName, e.PoolName())
	assert.True(t, e.Alive())

	slot := e.SlotIndex()
	m.KillEntity(e)
	assert.False(t, e.Alive())
	assert.Equal(t, ecs.InvalidEntityID, e.ID())
	assert.True(t, e.Signature().IsZero())

	// the freshly killed slot is reused first, under a new id
	e2 := m.CreateEntity()
	require.NotNil(t, e2)
	assert.Equal(t, slot, e2.SlotIndex())
	assert.Equal(t, ecs.EntityID(1), e2.ID())
}

func TestEntityKillDelegatesToManager(t *testing.T) {
	m := setup(t)
	e := m.CreateEntity()
	require.NotNil(t, e)
	e.Kill()
	assert.False(t, e.Alive())
	assert.Equal(t, ecs.InvalidEntityID, e.ID())
}

func TestCreatePoolValidation(t *testing.T) {
	m := setup(t)
	var lastCode ecs.ErrorCode
	m.SetErrorCallback(func(code ecs.ErrorCode, msg string) {
		lastCode = code
		assert.Equal(t, code.String(), msg)
	})

	assert.False(t, m.CreatePool("", 8))
	assert.Equal(t, ecs.ErrInvalidPoolName, lastCode)

	assert.False(t, m.CreatePool(ecs.DefaultPoolName, 8))
	assert.Equal(t, ecs.ErrInvalidPoolName, lastCode)

	assert.False(t, m.CreatePool("P", 0))
	assert.Equal(t, ecs.ErrInvalidPoolName, lastCode)

	assert.True(t, m.CreatePool("P", 8))
	assert.False(t, m.CreatePool("P", 8))
	assert.Equal(t, ecs.ErrDuplicatePoolName, lastCode)
}

func TestPoolSizeRoundsUp(t *testing.T) {
	m := setup(t)
	require.True(t, m.CreatePool("ROUND", 6))
	assert.Equal(t, 8, m.GetPoolSize("ROUND"))
}

func TestDeletePool(t *testing.T) {
	m := setup(t)
	require.True(t, m.CreatePool("P", 4))
	e := m.CreateEntityIn("P")
	require.NotNil(t, e)
	c := ecs.AddComponent[HealthComponent](m, e)
	require.NotNil(t, c)

	assert.False(t, m.DeletePool(ecs.DefaultPoolName))
	assert.False(t, m.DeletePool(""))
	assert.False(t, m.DeletePool("UNKNOWN"))

	assert.True(t, m.DeletePool("P"))
	assert.False(t, m.HasPoolName("P"))
	assert.Equal(t, ecs.InvalidEntityID, c.OwnerID(), "components of destroyed entities are detached")
}

func TestDetachAndAddPool(t *testing.T) {
	m := setup(t)
	require.True(t, m.CreatePool("P", 4))
	e := m.CreateEntityIn("P")
	require.NotNil(t, e)
	id := e.ID()

	assert.Nil(t, m.DetachPool(ecs.DefaultPoolName))
	p := m.DetachPool("P")
	require.NotNil(t, p)
	assert.False(t, m.HasPoolName("P"))
	assert.Nil(t, m.GetEntityByID(id), "entities of a detached pool are not resolvable")
	assert.Equal(t, 1, p.CountAlive(), "the detached pool keeps its entities")

	assert.True(t, m.AddPool(p))
	assert.True(t, m.HasPoolName("P"))
	assert.Same(t, e, m.GetEntityByID(id))
	assert.False(t, m.AddPool(p), "duplicate name is rejected")
}

func TestPoolFullAndResize(t *testing.T) {
	m := setup(t)
	require.True(t, m.CreatePool("TWO", 2))

	e1 := m.CreateEntityIn("TWO")
	e2 := m.CreateEntityIn("TWO")
	require.NotNil(t, e1)
	require.NotNil(t, e2)
	assert.Nil(t, m.CreateEntityIn("TWO"), "third creation fails on a full pool")

	def := m.CreateEntity()
	require.NotNil(t, def)
	assert.False(t, m.MoveEntityToPool(def, "TWO"), "move into a full pool fails")

	require.True(t, m.ResizePool("TWO", 4))
	assert.Equal(t, 4, m.GetPoolSize("TWO"))
	assert.NotNil(t, m.CreateEntityIn("TWO"))
	assert.NotNil(t, m.CreateEntityIn("TWO"))
	assert.Nil(t, m.CreateEntityIn("TWO"))
}

func TestResizePoolShrinkAndGrowBack(t *testing.T) {
	m := setup(t)
	require.True(t, m.CreatePool("P", 4))
	var kept, dropped *ecs.Entity
	for i := 0; i < 4; i++ {
		e := m.CreateEntityIn("P")
		require.NotNil(t, e)
		if i == 0 {
			kept = e
		}
		if i == 3 {
			dropped = e
		}
	}
	c := ecs.AddComponent[HealthComponent](m, dropped)
	require.NotNil(t, c)

	require.True(t, m.ResizePool("P", 2))
	assert.Equal(t, 2, m.GetPoolSize("P"))
	assert.True(t, kept.Alive(), "entities in retained slots survive a shrink")
	assert.False(t, dropped.Alive(), "entities in dropped slots are destroyed")
	assert.Equal(t, ecs.InvalidEntityID, c.OwnerID())

	require.True(t, m.ResizePool("P", 4))
	assert.True(t, kept.Alive())
	e := m.CreateEntityIn("P")
	require.NotNil(t, e)
	assert.GreaterOrEqual(t, int(e.SlotIndex()), 2, "grown slots are fresh")
}

func TestCreateEntityErrors(t *testing.T) {
	m := setup(t)
	var lastCode ecs.ErrorCode
	m.SetErrorCallback(func(code ecs.ErrorCode, _ string) { lastCode = code })

	assert.Nil(t, m.CreateEntityIn(""))
	assert.Equal(t, ecs.ErrInvalidPoolName, lastCode)

	assert.Nil(t, m.CreateEntityIn("NOPE"))
	assert.Equal(t, ecs.ErrPoolNotFound, lastCode)
}

func TestGetEntityByIDScansAllPools(t *testing.T) {
	m := setup(t)
	require.True(t, m.CreatePool("P", 4))
	a := m.CreateEntity()
	b := m.CreateEntityIn("P")
	require.NotNil(t, a)
	require.NotNil(t, b)

	assert.Same(t, a, m.GetEntityByID(a.ID()))
	assert.Same(t, b, m.GetEntityByID(b.ID()))

	var lastCode ecs.ErrorCode
	m.SetErrorCallback(func(code ecs.ErrorCode, _ string) { lastCode = code })
	assert.Nil(t, m.GetEntityByID(ecs.InvalidEntityID))
	assert.Equal(t, ecs.ErrInvalidEntityID, lastCode)
	assert.Nil(t, m.GetEntityByID(4242))
	assert.Equal(t, ecs.ErrEntityNotFound, lastCode)

	m.KillEntity(b)
	assert.Nil(t, m.GetEntityByID(b.ID()), "dead entities are not resolvable")
}

func TestGetAllEntitiesInPool(t *testing.T) {
	m := setup(t)
	e1 := m.CreateEntity()
	e2 := m.CreateEntity()
	e3 := m.CreateEntity()
	require.NotNil(t, e3)
	m.KillEntity(e2)

	out, ok := m.GetAllEntitiesInPool(ecs.DefaultPoolName, nil)
	require.True(t, ok)
	require.Len(t, out, 2)
	assert.Same(t, e1, out[0])
	assert.Same(t, e3, out[1])

	_, ok = m.GetAllEntitiesInPool("NOPE", nil)
	assert.False(t, ok)
}

func TestMoveEntityToPool(t *testing.T) {
	m := setup(t)
	require.True(t, m.CreatePool("P", 2))
	e := m.CreateEntity()
	require.NotNil(t, e)
	c := ecs.AddComponent[HealthComponent](m, e)
	require.NotNil(t, c)
	c.HP = 10
	id := e.ID()

	require.True(t, m.MoveEntityToPool(e, "P"))
	assert.Equal(t, "P", e.PoolName())
	assert.Equal(t, id, e.ID(), "id survives the move")
	assert.Same(t, c, ecs.GetComponent[HealthComponent](m, e), "attachments survive the move")
	assert.Equal(t, 10, c.HP)
	assert.Same(t, e, m.GetEntityByID(id))

	// the vacated default slot is free again
	assert.Equal(t, 0, m.GetPool(ecs.DefaultPoolName).CountAlive())

	dead := m.CreateEntity()
	m.KillEntity(dead)
	assert.False(t, m.MoveEntityToPool(dead, "P"), "dead entities cannot move")
	assert.False(t, m.MoveEntityToPool(e, "NOPE"))
}

func TestClearRestoresInitialState(t *testing.T) {
	m := setup(t)
	require.True(t, m.CreatePool("P", 4))
	e := m.CreateEntity()
	require.NotNil(t, e)
	require.NotNil(t, ecs.AddComponent[HealthComponent](m, e))
	require.NotNil(t, ecs.CreateSystem[HealthSystem](m, 0))

	m.Clear()
	assert.True(t, m.HasPoolName(ecs.DefaultPoolName))
	assert.False(t, m.HasPoolName("P"))
	assert.Equal(t, ecs.DefaultPoolSize, m.GetPoolSize(ecs.DefaultPoolName))
	assert.Equal(t, 0, m.GetPool(ecs.DefaultPoolName).CountAlive())
	assert.False(t, ecs.HasSystem[HealthSystem](m))

	// counters restart
	e = m.CreateEntity()
	require.NotNil(t, e)
	assert.Equal(t, ecs.EntityID(0), e.ID())

	// a second Clear yields the same observable state
	m.Clear()
	assert.True(t, m.HasPoolName(ecs.DefaultPoolName))
	assert.Equal(t, ecs.DefaultPoolSize, m.GetPoolSize(ecs.DefaultPoolName))
	assert.Equal(t, 0, m.GetPool(ecs.DefaultPoolName).CountAlive())
	e = m.CreateEntity()
	require.NotNil(t, e)
	assert.Equal(t, ecs.EntityID(0), e.ID())
}
