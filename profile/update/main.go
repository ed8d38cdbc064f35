// Profiling:
// go build ./profile/update
// go tool pprof -http=":8000" -nodefraction=0.001 ./update cpu.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/volt2d/ecs"
)

type position struct {
	ecs.ComponentBase
	X, Y float64
}

type velocity struct {
	ecs.ComponentBase
	VX, VY float64
}

type movement struct {
	ecs.SystemBase
	m *ecs.Manager
}

func (s *movement) Update(delta float64, entities []*ecs.Entity) {
	for _, e := range entities {
		p := ecs.GetComponent[position](s.m, e)
		v := ecs.GetComponent[velocity](s.m, e)
		p.X += v.VX * delta
		p.Y += v.VY * delta
	}
}

func main() {
	ticks := 100000
	entities := 2048
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(ticks, entities)
	p.Stop()
}

func run(ticks, count int) {
	m := ecs.Acquire()
	defer ecs.Release()

	for i := 0; i < count; i++ {
		e := m.CreateEntity()
		if e == nil {
			break
		}
		ecs.AddComponent[position](m, e)
		v := ecs.AddComponent[velocity](m, e)
		v.VX, v.VY = 1, -1
	}
	s := ecs.CreateSystem[movement](m, 0)
	s.m = m
	ecs.AddComponentType[position](m, s)
	ecs.AddComponentType[velocity](m, s)

	for i := 0; i < ticks; i++ {
		m.Update(1.0 / 60.0)
	}
}
