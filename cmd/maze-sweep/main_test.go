package main

import (
	"strings"
	"testing"

	"mad-maze/pkg/maze"
)

func TestRunScenarioProducesPerfectMazes(t *testing.T) {
	for _, kind := range maze.Kinds() {
		res := runScenario(scenario{kind: kind, seed: 3, width: 8, height: 5})
		if res.err != nil {
			t.Fatalf("%s: %v", kind, res.err)
		}
		if !res.stats.Perfect {
			t.Fatalf("%s: not perfect: %+v", kind, res.stats)
		}
		if res.steps == 0 {
			t.Fatalf("%s: no steps recorded", kind)
		}
	}
}

func TestRunScenarioReportsBadDimensions(t *testing.T) {
	res := runScenario(scenario{kind: maze.Prim, seed: 1, width: 0, height: 4})
	if res.err == nil {
		t.Fatal("expected an error for a zero-width maze")
	}
}

func TestSummaryAggregates(t *testing.T) {
	s := &summary{kind: maze.Backtracking}
	s.add(scenarioResult{steps: 10, stats: maze.Stats{Cells: 5, DeadEnds: 2, Perfect: true}})
	s.add(scenarioResult{steps: 30, stats: maze.Stats{Cells: 5, DeadEnds: 1, Perfect: true}})
	s.add(scenarioResult{stats: maze.Stats{Perfect: false}})

	if s.runs != 3 || s.failures != 1 {
		t.Fatalf("runs=%d failures=%d", s.runs, s.failures)
	}
	if s.minSteps != 10 || s.maxSteps != 30 {
		t.Fatalf("steps range [%d,%d]", s.minSteps, s.maxSteps)
	}
	out := s.String()
	if !strings.Contains(out, "avg=20.0") || !strings.Contains(out, "deadEnds=30.0%") {
		t.Fatalf("unexpected summary %q", out)
	}
}
