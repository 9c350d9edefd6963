// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query mem.prof

package main

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/brindlework/ecs"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

type comp5 struct {
	V int64
	W int64
}

type comp6 struct {
	V int64
	W int64
}

func main() {
	// CPU Profiling
	f, _ := os.Create("cpu.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	count := 50
	iters := 10000
	entities := 100000
	run(count, iters, entities)

	// Memory Profiling
	memFile, _ := os.Create("mem.prof")
	defer memFile.Close()
	runtime.GC() // Trigger garbage collection
	_ = pprof.WriteHeapProfile(memFile)
}

func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		w := ecs.NewWorld(numEntities)
		sys := ecs.NewSystem(w)
		ecs.Match[comp1](sys)
		ecs.Match[comp2](sys)

		for n := 0; n < numEntities; n++ {
			w.CreateEntityWith(func(b *ecs.EntityBuilder) {
				ecs.With(b, comp1{})
				ecs.With(b, comp2{})
				ecs.With(b, comp3{})
				ecs.With(b, comp4{})
				ecs.With(b, comp5{})
				ecs.With(b, comp6{})
			})
		}

		for i := 0; i < iters; i++ {
			for _, e := range sys.Matching().Values() {
				c1, _ := ecs.GetComponent[comp1](w, e)
				c2, _ := ecs.GetComponent[comp2](w, e)
				c1.V += c2.V
				c1.W += c2.W
			}
		}
	}
}
