// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/brindlework/ecs"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		w := ecs.NewWorld(numEntities)
		sys := ecs.NewSystem(w)
		ecs.Match[comp1](sys)
		ecs.Match[comp2](sys)

		for i := 0; i < iters; i++ {
			for n := 0; n < numEntities; n++ {
				w.CreateEntityWith(func(b *ecs.EntityBuilder) {
					ecs.With(b, comp1{})
					ecs.With(b, comp2{})
				})
			}
			matched := append([]ecs.Entity{}, sys.Matching().Values()...)
			for _, e := range matched {
				c1, _ := ecs.GetComponent[comp1](w, e)
				c2, _ := ecs.GetComponent[comp2](w, e)
				c1.V += c2.V
				c1.W += c2.W
			}
			for _, e := range matched {
				w.DestroyEntity(e)
			}
		}
	}
}
