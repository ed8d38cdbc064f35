// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/volt2d/ecs"
)

type comp1 struct {
	ecs.ComponentBase
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters)
	p.Stop()
}

func run(rounds, iters int) {
	for i := 0; i < rounds; i++ {
		m := ecs.Acquire()
		for j := 0; j < iters; j++ {
			e := m.CreateEntity()
			if e == nil {
				break
			}
			ecs.AddComponent[comp1](m, e)
		}
		entities, _ := m.GetAllEntitiesInPool(ecs.DefaultPoolName, nil)
		for _, e := range entities {
			m.KillEntity(e)
		}
		ecs.Release()
	}
}
