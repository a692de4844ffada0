package maze

import (
	"fmt"

	"mad-maze/pkg/core"
)

// algorithm is the resumable progress state of one generation run. Each
// step performs exactly one unit of work against the grid and returns the
// wall bits it flipped, in application order.
type algorithm interface {
	step(g *Grid, rng core.Source) (changes []WallChange, finished bool)
	layers(g *Grid) []CellLayer
	current() (Point, bool)
}

// newAlgorithm resets g to the starting state kind requires and returns
// fresh progress state for it.
func newAlgorithm(kind Kind, g *Grid, rng core.Source) (algorithm, error) {
	switch kind {
	case Backtracking:
		g.Fill()
		return newBacktracker(g), nil
	case Prim:
		g.Fill()
		return newPrimState(g), nil
	case Kruskal:
		g.Fill()
		return newKruskalState(g, rng), nil
	case Wilson:
		g.Fill()
		return newWilsonState(g), nil
	case RecursiveDivision:
		g.Clear()
		return newDivisionState(g), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(kind))
}

// carve opens the wall between two adjacent cells and appends the change
// when the bit actually flipped.
func carve(g *Grid, a, b Point, changes []WallChange) []WallChange {
	c := between(a, b)
	if g.set(c, false) {
		changes = append(changes, c)
	}
	return changes
}

// markedCells lists the points whose flag is set, in row-major order.
func markedCells(g *Grid, marks []bool) []Point {
	var cells []Point
	for idx, ok := range marks {
		if ok {
			cells = append(cells, g.point(idx))
		}
	}
	return cells
}
