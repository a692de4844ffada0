package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	random "mad-maze/pkg/core"
	"mad-maze/pkg/maze"
)

type scenario struct {
	kind   maze.Kind
	seed   int64
	width  int
	height int
}

func (s scenario) String() string {
	return fmt.Sprintf("%s %dx%d seed=%d", s.kind, s.width, s.height, s.seed)
}

type scenarioResult struct {
	scenario scenario
	steps    int
	stats    maze.Stats
	elapsed  time.Duration
	err      error
}

type summary struct {
	kind      maze.Kind
	runs      int
	failures  int
	minSteps  int
	maxSteps  int
	sumSteps  int
	sumDeads  int
	sumCells  int
	totalTime time.Duration
}

func main() {
	log.SetPrefix("[maze] ")
	width := flag.Int("width", 30, "maze width in cells")
	height := flag.Int("height", 30, "maze height in cells")
	seeds := flag.Int("seeds", 50, "seeds to run per algorithm")
	algo := flag.String("algo", "", "restrict the sweep to one algorithm")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	kinds := maze.Kinds()
	if *algo != "" {
		kind, err := maze.ParseKind(*algo)
		if err != nil {
			log.Fatal(err)
		}
		kinds = []maze.Kind{kind}
	}
	if *workers <= 0 {
		*workers = 1
	}

	var sets []scenario
	for _, kind := range kinds {
		for seed := 1; seed <= *seeds; seed++ {
			sets = append(sets, scenario{kind: kind, seed: int64(seed), width: *width, height: *height})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %dx%d)\n", len(sets), *workers, *width, *height)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(sc)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	byKind := map[maze.Kind]*summary{}
	failed := false
	for res := range results {
		if res.err != nil || !res.stats.Perfect {
			failed = true
			log.Printf("FAIL %s: err=%v stats=%+v", res.scenario, res.err, res.stats)
		}
		sum, ok := byKind[res.scenario.kind]
		if !ok {
			sum = &summary{kind: res.scenario.kind}
			byKind[res.scenario.kind] = sum
		}
		sum.add(res)
	}

	all := make([]*summary, 0, len(byKind))
	for _, s := range byKind {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].kind < all[j].kind })

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, s := range all {
		fmt.Println(s)
	}
	if failed {
		os.Exit(1)
	}
}

func runScenario(sc scenario) scenarioResult {
	res := scenarioResult{scenario: sc}
	start := time.Now()
	gen, err := maze.NewWithSource(sc.width, sc.height, random.NewRNG(sc.seed))
	if err != nil {
		res.err = err
		return res
	}
	if err := gen.StartGeneration(sc.kind); err != nil {
		res.err = err
		return res
	}
	for {
		finished, err := gen.GenerationStep()
		if err != nil {
			res.err = err
			return res
		}
		if finished {
			break
		}
	}
	res.elapsed = time.Since(start)
	res.steps = gen.Steps()
	res.stats = maze.Analyze(gen.Grid())
	return res
}

func (s *summary) add(res scenarioResult) {
	s.runs++
	if res.err != nil || !res.stats.Perfect {
		s.failures++
		return
	}
	if s.sumSteps == 0 || res.steps < s.minSteps {
		s.minSteps = res.steps
	}
	if res.steps > s.maxSteps {
		s.maxSteps = res.steps
	}
	s.sumSteps += res.steps
	s.sumDeads += res.stats.DeadEnds
	s.sumCells += res.stats.Cells
	s.totalTime += res.elapsed
}

func (s *summary) String() string {
	ok := s.runs - s.failures
	if ok == 0 {
		return fmt.Sprintf("%-24s runs=%d failures=%d", s.kind.Title(), s.runs, s.failures)
	}
	return fmt.Sprintf("%-24s runs=%d failures=%d steps[min=%d avg=%.1f max=%d] deadEnds=%.1f%% avgTime=%s",
		s.kind.Title(), s.runs, s.failures, s.minSteps, float64(s.sumSteps)/float64(ok), s.maxSteps,
		100*float64(s.sumDeads)/float64(s.sumCells), (s.totalTime / time.Duration(ok)).Round(time.Microsecond))
}
