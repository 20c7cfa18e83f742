// Package bench measures the persistent engines against each other:
// wall time for randomized insert and delete passes, and the
// allocation footprint of building each version history.  Timing
// cells run concurrently, since engine instances are independent;
// the allocation pass runs alone, since memory statistics are
// process-global.
package bench

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/verstree/verstree/logging"
	"github.com/verstree/verstree/persistent"
	"github.com/verstree/verstree/persistent/fatnode"
	"github.com/verstree/verstree/persistent/full"
	"github.com/verstree/verstree/persistent/naive"
	"github.com/verstree/verstree/persistent/nodecopy"
)

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a == b {
		return 0
	}
	return +1
}

// engine is the minimal update surface the harness drives, one
// version per key as the application workloads do.
type engine interface {
	insert(keys []int)
	remove(keys []int)
}

type partialEngine struct {
	tree persistent.Engine[int]
}

func (e *partialEngine) insert(keys []int) {
	for _, k := range keys {
		e.tree.Insert(k)
	}
}

func (e *partialEngine) remove(keys []int) {
	for _, k := range keys {
		e.tree.Delete(k)
	}
}

// fullEngine drives the full-persistence engine linearly, always
// forking off the version it last created.
type fullEngine struct {
	tree *full.Tree[int]
	last *full.Version
}

func (e *fullEngine) insert(keys []int) {
	for _, k := range keys {
		e.last = e.tree.Insert(k, e.last)
	}
}

func (e *fullEngine) remove(keys []int) {
	for _, k := range keys {
		if v := e.tree.Delete(k, e.last); v != nil {
			e.last = v
		}
	}
}

func newEngine(name string) engine {
	switch name {
	case "naive":
		return &partialEngine{tree: naive.New(cmpInt)}
	case "fatnode":
		return &partialEngine{tree: fatnode.New(cmpInt)}
	case "nodecopy":
		return &partialEngine{tree: nodecopy.New(cmpInt)}
	case "full":
		return &fullEngine{tree: full.New(cmpInt)}
	default:
		panic(fmt.Sprintf("bench: unknown engine %q", name))
	}
}

type Runner struct {
	config *Configuration
	logger *logging.Logger
}

func NewRunner(config *Configuration, logger *logging.Logger) *Runner {
	return &Runner{config: config, logger: logger}
}

// Run executes every scenario cell and returns the collected report.
func (r *Runner) Run() (*Report, error) {
	report := NewReport()

	for _, scenario := range r.config.Scenarios {
		cells, err := r.runScenario(scenario)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		report.Cells = append(report.Cells, cells...)
	}

	r.logger.Info("bench: %d scenarios, %d cells, report %s",
		len(r.config.Scenarios), len(report.Cells), report.Identifier)
	return report, nil
}

func (r *Runner) runScenario(scenario Scenario) ([]Cell, error) {
	rng := rand.New(rand.NewSource(scenario.Seed))

	type workload struct {
		inserts []int
		deletes []int
	}
	loads := make(map[int]workload, len(scenario.Sizes))
	for _, size := range scenario.Sizes {
		w := workload{inserts: rng.Perm(size)}
		if scenario.Deletes {
			w.deletes = rng.Perm(size)
		}
		loads[size] = w
	}

	cells := make([]Cell, len(scenario.Engines)*len(scenario.Sizes))

	// timing pass: independent instances, run concurrently
	g := errgroup.Group{}
	g.SetLimit(runtime.NumCPU())
	for i, name := range scenario.Engines {
		for j, size := range scenario.Sizes {
			idx := i*len(scenario.Sizes) + j
			name, size := name, size
			g.Go(func() error {
				load := loads[size]
				e := newEngine(name)

				start := time.Now()
				e.insert(load.inserts)
				insertTime := time.Since(start)

				var deleteTime time.Duration
				if scenario.Deletes {
					start = time.Now()
					e.remove(load.deletes)
					deleteTime = time.Since(start)
				}

				cells[idx] = Cell{
					Scenario: scenario.Name,
					Engine:   name,
					Size:     size,
					Insert:   insertTime,
					Delete:   deleteTime,
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// allocation pass: one instance at a time, the counters are
	// process-global
	for i, name := range scenario.Engines {
		for j, size := range scenario.Sizes {
			idx := i*len(scenario.Sizes) + j
			load := loads[size]

			var before, after runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&before)

			e := newEngine(name)
			e.insert(load.inserts)
			if scenario.Deletes {
				e.remove(load.deletes)
			}

			runtime.ReadMemStats(&after)
			cells[idx].Bytes = after.TotalAlloc - before.TotalAlloc

			r.logger.Trace("bench", "%s/%s n=%d insert=%s delete=%s alloc=%d",
				scenario.Name, name, size, cells[idx].Insert, cells[idx].Delete, cells[idx].Bytes)

			// keep the instance alive until after the second
			// measurement
			runtime.KeepAlive(e)
		}
	}

	return cells, nil
}
