package maze

// Stats summarizes the passage graph of a grid: cells are nodes and every
// open interior wall is an edge.
type Stats struct {
	Cells      int
	Passages   int
	Components int
	DeadEnds   int
	// Perfect is true when the passage graph is a spanning tree.
	Perfect bool
}

// Analyze computes Stats for g.
func Analyze(g *Grid) Stats {
	n := g.w * g.h
	sets := newDisjointSet(n)
	degree := make([]int, n)
	st := Stats{Cells: n, Components: n}
	link := func(a, b int) {
		st.Passages++
		degree[a]++
		degree[b]++
		if sets.union(a, b) {
			st.Components--
		}
	}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			idx := g.index(x, y)
			if x < g.w-1 && !g.vertical[idx] {
				link(idx, idx+1)
			}
			if y < g.h-1 && !g.horizontal[idx] {
				link(idx, idx+g.w)
			}
		}
	}
	for _, d := range degree {
		if d == 1 {
			st.DeadEnds++
		}
	}
	st.Perfect = st.Components == 1 && st.Passages == n-1
	return st
}
