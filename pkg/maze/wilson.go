package maze

import "mad-maze/pkg/core"

// wilsonState builds a uniform spanning tree from loop-erased random walks.
// A walk wanders the full grid graph until it touches the maze, then the
// whole path is carved at once.
type wilsonState struct {
	inMaze []bool

	// remaining holds the indices of cells outside the maze; remPos maps a
	// cell index to its slot in remaining, or -1.
	remaining []int
	remPos    []int

	walk    []Point
	walkPos []int // slot in walk per cell index, or -1
	started bool
	last    Point
	nbuf    []Point
}

func newWilsonState(g *Grid) *wilsonState {
	n := g.w * g.h
	w := &wilsonState{
		inMaze:    make([]bool, n),
		remaining: make([]int, n),
		remPos:    make([]int, n),
		walkPos:   make([]int, n),
		nbuf:      make([]Point, 0, 4),
	}
	for i := 0; i < n; i++ {
		w.remaining[i] = i
		w.remPos[i] = i
		w.walkPos[i] = -1
	}
	return w
}

func (w *wilsonState) step(g *Grid, rng core.Source) ([]WallChange, bool) {
	if len(w.walk) == 0 {
		if len(w.remaining) == 0 {
			return nil, true
		}
		idx := w.remaining[rng.IntN(len(w.remaining))]
		if !w.started {
			w.started = true
			w.join(idx)
			w.last = g.point(idx)
			return nil, len(w.remaining) == 0
		}
		w.walk = append(w.walk, g.point(idx))
		w.walkPos[idx] = 0
		w.last = g.point(idx)
		return nil, false
	}

	head := w.walk[len(w.walk)-1]
	w.nbuf = g.neighbors(head, w.nbuf)
	next := w.nbuf[rng.IntN(len(w.nbuf))]
	ni := g.index(next.X, next.Y)
	w.last = next

	if pos := w.walkPos[ni]; pos >= 0 {
		for _, q := range w.walk[pos+1:] {
			w.walkPos[g.index(q.X, q.Y)] = -1
		}
		w.walk = w.walk[:pos+1]
		return nil, false
	}

	if !w.inMaze[ni] {
		w.walkPos[ni] = len(w.walk)
		w.walk = append(w.walk, next)
		return nil, false
	}

	changes := make([]WallChange, 0, len(w.walk))
	for i, q := range w.walk {
		to := next
		if i+1 < len(w.walk) {
			to = w.walk[i+1]
		}
		changes = carve(g, q, to, changes)
		qi := g.index(q.X, q.Y)
		w.walkPos[qi] = -1
		w.join(qi)
	}
	w.walk = w.walk[:0]
	return changes, len(w.remaining) == 0
}

// join moves the cell at idx into the maze.
func (w *wilsonState) join(idx int) {
	w.inMaze[idx] = true
	slot := w.remPos[idx]
	last := len(w.remaining) - 1
	moved := w.remaining[last]
	w.remaining[slot] = moved
	w.remPos[moved] = slot
	w.remaining = w.remaining[:last]
	w.remPos[idx] = -1
}

func (w *wilsonState) layers(g *Grid) []CellLayer {
	return []CellLayer{
		{Name: "maze", Cells: markedCells(g, w.inMaze)},
		{Name: "walk", Cells: append([]Point(nil), w.walk...)},
	}
}

func (w *wilsonState) current() (Point, bool) {
	if len(w.walk) > 0 {
		return w.walk[len(w.walk)-1], true
	}
	return w.last, w.started
}
