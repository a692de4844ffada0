package maze

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-maze/pkg/core"
)

const maxTestSteps = 1_000_000

type wallSnapshot struct {
	vertical, horizontal []bool
}

func snapshot(g *Grid) wallSnapshot {
	return wallSnapshot{slices.Clone(g.vertical), slices.Clone(g.horizontal)}
}

func runToCompletion(t *testing.T, m *Generator) []WallChange {
	t.Helper()
	var all []WallChange
	for i := 0; i < maxTestSteps; i++ {
		res, err := m.GenerationStepWithChanges()
		require.NoError(t, err)
		all = append(all, res.Changes...)
		if res.Finished {
			return all
		}
	}
	t.Fatalf("generation did not finish within %d steps", maxTestSteps)
	return nil
}

func TestEveryAlgorithmProducesPerfectMaze(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {2, 2}, {5, 5}, {13, 8}, {30, 30}}
	for _, kind := range Kinds() {
		for _, size := range sizes {
			for seed := int64(1); seed <= 3; seed++ {
				name := fmt.Sprintf("%s/%dx%d/seed%d", kind, size[0], size[1], seed)
				t.Run(name, func(t *testing.T) {
					m, err := NewWithSource(size[0], size[1], core.NewRNG(seed))
					require.NoError(t, err)
					require.NoError(t, m.GenerateMaze(kind))

					st := Analyze(m.Grid())
					require.True(t, st.Perfect, "stats %+v\n%s", st, m.Grid())
					assert.Equal(t, size[0]*size[1]-1, st.Passages)
					assert.False(t, m.Active())
				})
			}
		}
	}
}

func TestWallTransitionsAreMonotonic(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			m, err := NewWithSource(9, 7, core.NewRNG(11))
			require.NoError(t, err)
			require.NoError(t, m.StartGeneration(kind))

			// Carving algorithms only open walls; division only closes them.
			closing := !kind.Carves()
			for i := 0; i < maxTestSteps; i++ {
				before := snapshot(m.Grid())
				res, err := m.GenerationStepWithChanges()
				require.NoError(t, err)
				after := snapshot(m.Grid())

				flipped := 0
				for idx := range after.vertical {
					if before.vertical[idx] != after.vertical[idx] {
						require.Equal(t, closing, after.vertical[idx], "vertical bit %d moved the wrong way", idx)
						flipped++
					}
					if before.horizontal[idx] != after.horizontal[idx] {
						require.Equal(t, closing, after.horizontal[idx], "horizontal bit %d moved the wrong way", idx)
						flipped++
					}
				}
				require.Equal(t, len(res.Changes), flipped, "every reported change is exactly one flip")
				for _, c := range res.Changes {
					require.Equal(t, closing, m.Grid().Closed(c))
				}
				if res.Finished {
					return
				}
			}
			t.Fatal("run did not finish")
		})
	}
}

func TestReplayMatchesInstantGeneration(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			const w, h, seed = 12, 9, 2024

			instant, err := NewWithSource(w, h, core.NewRNG(seed))
			require.NoError(t, err)
			require.NoError(t, instant.GenerateMaze(kind))

			stepped, err := NewWithSource(w, h, core.NewRNG(seed))
			require.NoError(t, err)
			require.NoError(t, stepped.StartGeneration(kind))
			changes := runToCompletion(t, stepped)

			replay, err := NewGrid(w, h)
			require.NoError(t, err)
			if kind.Carves() {
				replay.Fill()
			} else {
				replay.Clear()
			}
			for _, c := range changes {
				require.True(t, replay.set(c, !kind.Carves()), "change %+v replayed twice", c)
			}

			assert.Equal(t, snapshot(instant.Grid()), snapshot(replay))
			assert.Equal(t, snapshot(instant.Grid()), snapshot(stepped.Grid()))
			assert.Equal(t, instant.Steps(), stepped.Steps())
		})
	}
}

func TestKruskalFinishesWithinCandidateCount(t *testing.T) {
	m, err := NewWithSource(5, 5, core.NewRNG(5))
	require.NoError(t, err)
	require.NoError(t, m.StartGeneration(Kruskal))

	candidates := 2 * 5 * 4
	steps := 0
	finished := false
	for steps < 10000 && !finished {
		res, err := m.GenerationStepWithChanges()
		require.NoError(t, err)
		assert.LessOrEqual(t, len(res.Changes), 1)
		finished = res.Finished
		steps++
	}
	require.True(t, finished)
	assert.LessOrEqual(t, steps, candidates)
	assert.GreaterOrEqual(t, steps, 5*5-1)
	assert.True(t, Analyze(m.Grid()).Perfect)
}

func TestBacktrackingVisitsEachCellTwice(t *testing.T) {
	m, err := NewWithSource(6, 4, core.NewRNG(9))
	require.NoError(t, err)
	require.NoError(t, m.GenerateMaze(Backtracking))
	// One push and one pop per cell.
	assert.Equal(t, 2*6*4, m.Steps())
}

func TestStepWithoutGeneration(t *testing.T) {
	m, err := NewWithSource(4, 4, core.NewRNG(1))
	require.NoError(t, err)

	finished, err := m.GenerationStep()
	require.ErrorIs(t, err, ErrNoActiveGeneration)
	assert.False(t, finished)

	res, err := m.GenerationStepWithChanges()
	require.ErrorIs(t, err, ErrNoActiveGeneration)
	assert.Empty(t, res.Changes)
	assert.Nil(t, m.CellLayers())

	require.NoError(t, m.GenerateMaze(Prim))
	_, err = m.GenerationStep()
	require.ErrorIs(t, err, ErrNoActiveGeneration, "finished runs are discarded")
	kind, ok := m.Algorithm()
	assert.True(t, ok)
	assert.Equal(t, Prim, kind)
}

func TestGridOperationsDiscardActiveRun(t *testing.T) {
	ops := map[string]func(m *Generator) error{
		"clear":  func(m *Generator) error { m.ClearGrid(); return nil },
		"fill":   func(m *Generator) error { m.FillGrid(); return nil },
		"resize": func(m *Generator) error { return m.ResizeGrid(8, 3) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			m, err := NewWithSource(6, 6, core.NewRNG(3))
			require.NoError(t, err)
			require.NoError(t, m.StartGeneration(Wilson))
			for i := 0; i < 5; i++ {
				_, err := m.GenerationStep()
				require.NoError(t, err)
			}
			require.NoError(t, op(m))
			assert.False(t, m.Active())
			_, err = m.GenerationStep()
			require.ErrorIs(t, err, ErrNoActiveGeneration)
			_, ok := m.Algorithm()
			assert.False(t, ok)
		})
	}
}

func TestStartGenerationSupersedesRun(t *testing.T) {
	m, err := NewWithSource(6, 6, core.NewRNG(4))
	require.NoError(t, err)
	require.NoError(t, m.StartGeneration(Backtracking))
	for i := 0; i < 10; i++ {
		_, err := m.GenerationStep()
		require.NoError(t, err)
	}
	require.NoError(t, m.StartGeneration(RecursiveDivision))
	assert.Equal(t, 0, m.Steps())
	assert.Equal(t, 1, Analyze(m.Grid()).Components, "division starts from an open grid")

	runToCompletion(t, m)
	assert.True(t, Analyze(m.Grid()).Perfect)
}

func TestResizeThenQuery(t *testing.T) {
	m, err := NewWithSource(30, 30, core.NewRNG(8))
	require.NoError(t, err)
	require.NoError(t, m.GenerateMaze(Kruskal))

	require.NoError(t, m.ResizeGrid(5, 12))
	assert.Equal(t, 5, m.Width())
	assert.Equal(t, 12, m.Height())
	for y := 0; y < 12; y++ {
		for x := 0; x < 4; x++ {
			_, err := m.HasVerticalWall(x, y)
			require.NoError(t, err)
		}
	}
	_, err = m.HasVerticalWall(4, 0)
	require.ErrorIs(t, err, ErrOutOfRange)

	require.ErrorIs(t, m.ResizeGrid(0, 12), ErrInvalidDimensions)
	assert.Equal(t, 5, m.Width())
}

func TestUnknownAlgorithm(t *testing.T) {
	m, err := NewWithSource(3, 3, core.NewRNG(1))
	require.NoError(t, err)
	require.ErrorIs(t, m.StartGeneration(Kind(42)), ErrUnknownAlgorithm)
	require.ErrorIs(t, m.GenerateMaze(Kind(42)), ErrUnknownAlgorithm)
}

func TestLayerShapes(t *testing.T) {
	expect := map[Kind][]string{
		Backtracking:      {"visited", "path"},
		Prim:              {"maze", "frontier"},
		Wilson:            {"maze", "walk"},
		RecursiveDivision: {"chamber"},
	}
	for kind, names := range expect {
		t.Run(kind.String(), func(t *testing.T) {
			m, err := NewWithSource(8, 8, core.NewRNG(12))
			require.NoError(t, err)
			require.NoError(t, m.StartGeneration(kind))
			for i := 0; i < 6; i++ {
				finished, err := m.GenerationStep()
				require.NoError(t, err)
				require.False(t, finished)
			}
			layers := m.CellLayers()
			var got []string
			for _, l := range layers {
				got = append(got, l.Name)
				for _, p := range l.Cells {
					assert.True(t, m.Grid().Contains(p), "layer %s holds %v", l.Name, p)
				}
			}
			assert.Equal(t, names, got)
			_, ok := m.CurrentPosition()
			assert.True(t, ok)
		})
	}
}

func TestBacktrackingPathEndsAtCurrent(t *testing.T) {
	m, err := NewWithSource(5, 5, core.NewRNG(6))
	require.NoError(t, err)
	require.NoError(t, m.StartGeneration(Backtracking))
	for i := 0; i < 8; i++ {
		_, err := m.GenerationStep()
		require.NoError(t, err)
	}
	layers := m.CellLayers()
	require.Len(t, layers, 2)
	path := layers[1].Cells
	require.NotEmpty(t, path)
	cur, ok := m.CurrentPosition()
	require.True(t, ok)
	assert.Equal(t, cur, path[len(path)-1])
	assert.Equal(t, Point{}, path[0])
	assert.GreaterOrEqual(t, len(layers[0].Cells), len(path))
}

func TestKruskalLayersGroupComponents(t *testing.T) {
	m, err := NewWithSource(6, 6, core.NewRNG(21))
	require.NoError(t, err)
	require.NoError(t, m.StartGeneration(Kruskal))
	for i := 0; i < 20; i++ {
		_, err := m.GenerationStep()
		require.NoError(t, err)
	}
	layers := m.CellLayers()
	require.NotEmpty(t, layers)
	edge := layers[len(layers)-1]
	assert.Equal(t, "edge", edge.Name)
	assert.Len(t, edge.Cells, 2)

	seen := map[Point]bool{}
	for _, l := range layers[:len(layers)-1] {
		assert.Equal(t, "set", l.Name)
		assert.GreaterOrEqual(t, len(l.Cells), 2)
		for _, p := range l.Cells {
			assert.False(t, seen[p], "cell %v in two sets", p)
			seen[p] = true
		}
	}
}

func TestBacktrackingWithFixedSequence(t *testing.T) {
	m, err := NewWithSource(3, 1, core.NewSequence(0))
	require.NoError(t, err)
	require.NoError(t, m.StartGeneration(Backtracking))

	var changes []WallChange
	steps := 0
	for {
		res, err := m.GenerationStepWithChanges()
		require.NoError(t, err)
		steps++
		changes = append(changes, res.Changes...)
		if res.Finished {
			break
		}
	}
	assert.Equal(t, 6, steps)
	assert.Equal(t, []WallChange{{X: 0, Y: 0, Type: Vertical}, {X: 1, Y: 0, Type: Vertical}}, changes)
}

func TestWilsonErasesLoops(t *testing.T) {
	// Draws: seed cell 0, walk from cell 2, step west, step east back onto
	// the walk, step west again, then west into the maze.
	m, err := NewWithSource(3, 1, core.NewSequence(0, 0, 0, 0, 0, 1))
	require.NoError(t, err)
	require.NoError(t, m.StartGeneration(Wilson))

	step := func() StepResult {
		res, err := m.GenerationStepWithChanges()
		require.NoError(t, err)
		return res
	}
	walk := func() []Point { return m.CellLayers()[1].Cells }

	require.Empty(t, step().Changes)
	assert.Equal(t, []Point{{0, 0}}, m.CellLayers()[0].Cells)

	step()
	assert.Equal(t, []Point{{2, 0}}, walk())
	step()
	assert.Equal(t, []Point{{2, 0}, {1, 0}}, walk())
	res := step()
	assert.Empty(t, res.Changes)
	assert.Equal(t, []Point{{2, 0}}, walk(), "loop back to the walk start is erased")
	step()
	assert.Equal(t, []Point{{2, 0}, {1, 0}}, walk())

	res = step()
	require.True(t, res.Finished)
	assert.Equal(t, []WallChange{{X: 1, Y: 0, Type: Vertical}, {X: 0, Y: 0, Type: Vertical}}, res.Changes)
	assert.True(t, Analyze(m.Grid()).Perfect)
}

func TestDivisionWithFixedSequence(t *testing.T) {
	// Square chamber: coin 0 picks a horizontal cut at row 0 with the gap
	// in column 1.
	m, err := NewWithSource(2, 2, core.NewSequence(0, 0, 1))
	require.NoError(t, err)
	require.NoError(t, m.StartGeneration(RecursiveDivision))

	res, err := m.GenerationStepWithChanges()
	require.NoError(t, err)
	assert.False(t, res.Finished)
	assert.Equal(t, []WallChange{{X: 0, Y: 0, Type: Horizontal}}, res.Changes)
	cur, ok := m.CurrentPosition()
	require.True(t, ok)
	assert.Equal(t, Point{X: 1, Y: 0}, cur)

	steps := 1
	for {
		res, err := m.GenerationStepWithChanges()
		require.NoError(t, err)
		steps++
		assert.Empty(t, res.Changes, "corridor chambers are never split")
		if res.Finished {
			break
		}
	}
	assert.Equal(t, 3, steps)
	assert.True(t, Analyze(m.Grid()).Perfect)
}

func TestDivisionLeavesCorridorOpen(t *testing.T) {
	m, err := NewWithSource(1, 9, core.NewRNG(1))
	require.NoError(t, err)
	require.NoError(t, m.StartGeneration(RecursiveDivision))
	res, err := m.GenerationStepWithChanges()
	require.NoError(t, err)
	assert.True(t, res.Finished)
	assert.Empty(t, res.Changes)
	assert.True(t, Analyze(m.Grid()).Perfect)
}

func TestSingleCellNeedsNoChanges(t *testing.T) {
	for _, kind := range Kinds() {
		m, err := NewWithSource(1, 1, core.NewRNG(1))
		require.NoError(t, err)
		require.NoError(t, m.StartGeneration(kind))
		assert.Empty(t, runToCompletion(t, m), kind.String())
		assert.LessOrEqual(t, m.Steps(), 2, kind.String())
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds() {
		got, err := ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}
	got, err := ParseKind("Recursive-Division")
	require.NoError(t, err)
	assert.Equal(t, RecursiveDivision, got)
	_, err = ParseKind("eller")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Equal(t, "Wilson's Algorithm", Wilson.Title())
}
