package maze

import "mad-maze/pkg/core"

// frontierEdge is a closed wall between an in-maze cell and cell.
type frontierEdge struct {
	wall WallChange
	cell Point
}

// primState grows the maze from a random cell by opening a random frontier
// wall each step. Stale entries whose far cell joined the maze in the
// meantime are discarded when drawn.
type primState struct {
	inMaze   []bool
	frontier []frontierEdge
	started  bool
	last     Point
	nbuf     []Point
}

func newPrimState(g *Grid) *primState {
	return &primState{
		inMaze: make([]bool, g.w*g.h),
		nbuf:   make([]Point, 0, 4),
	}
}

func (p *primState) step(g *Grid, rng core.Source) ([]WallChange, bool) {
	if !p.started {
		p.started = true
		p.add(g, Point{X: rng.IntN(g.w), Y: rng.IntN(g.h)})
		return nil, len(p.frontier) == 0
	}
	if len(p.frontier) == 0 {
		return nil, true
	}

	i := rng.IntN(len(p.frontier))
	edge := p.frontier[i]
	last := len(p.frontier) - 1
	p.frontier[i] = p.frontier[last]
	p.frontier = p.frontier[:last]

	if p.inMaze[g.index(edge.cell.X, edge.cell.Y)] {
		return nil, len(p.frontier) == 0
	}
	var changes []WallChange
	if g.set(edge.wall, false) {
		changes = append(changes, edge.wall)
	}
	p.add(g, edge.cell)
	return changes, len(p.frontier) == 0
}

// add marks c as part of the maze and queues its walls towards cells that
// are still outside.
func (p *primState) add(g *Grid, c Point) {
	p.inMaze[g.index(c.X, c.Y)] = true
	p.last = c
	p.nbuf = g.neighbors(c, p.nbuf)
	for _, n := range p.nbuf {
		if p.inMaze[g.index(n.X, n.Y)] {
			continue
		}
		p.frontier = append(p.frontier, frontierEdge{wall: between(c, n), cell: n})
	}
}

func (p *primState) layers(g *Grid) []CellLayer {
	seen := make([]bool, len(p.inMaze))
	var frontier []Point
	for _, e := range p.frontier {
		idx := g.index(e.cell.X, e.cell.Y)
		if seen[idx] || p.inMaze[idx] {
			continue
		}
		seen[idx] = true
		frontier = append(frontier, e.cell)
	}
	return []CellLayer{
		{Name: "maze", Cells: markedCells(g, p.inMaze)},
		{Name: "frontier", Cells: frontier},
	}
}

func (p *primState) current() (Point, bool) { return p.last, p.started }
