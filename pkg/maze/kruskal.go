package maze

import "mad-maze/pkg/core"

// disjointSet is a union-find over cell indices with path compression and
// union by rank.
type disjointSet struct {
	parent []int32
	rank   []uint8
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int32, n), rank: make([]uint8, n)}
	for i := range ds.parent {
		ds.parent[i] = int32(i)
	}
	return ds
}

func (ds *disjointSet) find(i int) int {
	root := i
	for int(ds.parent[root]) != root {
		root = int(ds.parent[root])
	}
	for int(ds.parent[i]) != root {
		next := int(ds.parent[i])
		ds.parent[i] = int32(root)
		i = next
	}
	return root
}

// union merges the sets holding a and b and reports whether they differed.
func (ds *disjointSet) union(a, b int) bool {
	x, y := ds.find(a), ds.find(b)
	if x == y {
		return false
	}
	switch {
	case ds.rank[x] > ds.rank[y]:
		ds.parent[y] = int32(x)
	case ds.rank[x] < ds.rank[y]:
		ds.parent[x] = int32(y)
	default:
		ds.parent[y] = int32(x)
		ds.rank[x]++
	}
	return true
}

// kruskalState walks a shuffled list of every interior wall and opens the
// ones that join two different components.
type kruskalState struct {
	sets   *disjointSet
	walls  []WallChange
	cursor int
	unions int
	target int
}

func newKruskalState(g *Grid, rng core.Source) *kruskalState {
	walls := make([]WallChange, 0, 2*g.w*g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if x < g.w-1 {
				walls = append(walls, WallChange{X: x, Y: y, Type: Vertical})
			}
			if y < g.h-1 {
				walls = append(walls, WallChange{X: x, Y: y, Type: Horizontal})
			}
		}
	}
	core.Shuffle(rng, len(walls), func(i, j int) { walls[i], walls[j] = walls[j], walls[i] })
	return &kruskalState{
		sets:   newDisjointSet(g.w * g.h),
		walls:  walls,
		target: g.w*g.h - 1,
	}
}

func (k *kruskalState) step(g *Grid, _ core.Source) ([]WallChange, bool) {
	if k.unions == k.target || k.cursor >= len(k.walls) {
		return nil, true
	}
	wall := k.walls[k.cursor]
	k.cursor++

	a, b := wall.Cells()
	if !k.sets.union(g.index(a.X, a.Y), g.index(b.X, b.Y)) {
		return nil, false
	}
	k.unions++
	var changes []WallChange
	if g.set(wall, false) {
		changes = append(changes, wall)
	}
	return changes, k.unions == k.target
}

// layers reports one layer per multi-cell component, ordered by the
// component's first cell in row-major order, then the two cells of the wall
// examined last.
func (k *kruskalState) layers(g *Grid) []CellLayer {
	n := g.w * g.h
	size := make([]int, n)
	for i := 0; i < n; i++ {
		size[k.sets.find(i)]++
	}
	slot := make(map[int]int)
	var out []CellLayer
	for i := 0; i < n; i++ {
		root := k.sets.find(i)
		if size[root] < 2 {
			continue
		}
		s, ok := slot[root]
		if !ok {
			s = len(out)
			slot[root] = s
			out = append(out, CellLayer{Name: "set"})
		}
		out[s].Cells = append(out[s].Cells, g.point(i))
	}
	if k.cursor > 0 {
		a, b := k.walls[k.cursor-1].Cells()
		out = append(out, CellLayer{Name: "edge", Cells: []Point{a, b}})
	}
	return out
}

func (k *kruskalState) current() (Point, bool) {
	if k.cursor == 0 {
		return Point{}, false
	}
	a, _ := k.walls[k.cursor-1].Cells()
	return a, true
}
