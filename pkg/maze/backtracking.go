package maze

import "mad-maze/pkg/core"

// backtracker is a randomized depth-first search. The stack holds the live
// path from the start cell to the cell being extended.
type backtracker struct {
	visited []bool
	stack   []Point
	started bool
	nbuf    []Point
	cands   []Point
}

func newBacktracker(g *Grid) *backtracker {
	return &backtracker{
		visited: make([]bool, g.w*g.h),
		nbuf:    make([]Point, 0, 4),
		cands:   make([]Point, 0, 4),
	}
}

func (b *backtracker) step(g *Grid, rng core.Source) ([]WallChange, bool) {
	if !b.started {
		b.started = true
		b.push(g, Point{})
		return nil, false
	}
	if len(b.stack) == 0 {
		return nil, true
	}

	top := b.stack[len(b.stack)-1]
	b.nbuf = g.neighbors(top, b.nbuf)
	candidates := b.cands[:0]
	for _, n := range b.nbuf {
		if !b.visited[g.index(n.X, n.Y)] {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		b.stack = b.stack[:len(b.stack)-1]
		return nil, len(b.stack) == 0
	}

	next := candidates[rng.IntN(len(candidates))]
	changes := carve(g, top, next, nil)
	b.push(g, next)
	return changes, false
}

func (b *backtracker) push(g *Grid, p Point) {
	b.visited[g.index(p.X, p.Y)] = true
	b.stack = append(b.stack, p)
}

func (b *backtracker) layers(g *Grid) []CellLayer {
	return []CellLayer{
		{Name: "visited", Cells: markedCells(g, b.visited)},
		{Name: "path", Cells: append([]Point(nil), b.stack...)},
	}
}

func (b *backtracker) current() (Point, bool) {
	if len(b.stack) == 0 {
		return Point{}, false
	}
	return b.stack[len(b.stack)-1], true
}
