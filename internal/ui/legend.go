package ui

import (
	"mad-maze/internal/core"
	"mad-maze/pkg/maze"
)

// LegendEntry names one layer and the cell value it is painted with.
type LegendEntry struct {
	Name string
	Cell uint8
}

// Legend lists the distinct layers of g's active run in draw order, then the
// current cell. Repeated layers such as Kruskal sets appear once.
func Legend(g *maze.Generator) []LegendEntry {
	layers := g.CellLayers()
	if len(layers) == 0 {
		return nil
	}
	seen := map[string]bool{}
	var out []LegendEntry
	for _, l := range layers {
		if seen[l.Name] {
			continue
		}
		seen[l.Name] = true
		out = append(out, LegendEntry{Name: l.Name, Cell: core.LayerCell(l.Name, 0)})
	}
	if _, ok := g.CurrentPosition(); ok {
		out = append(out, LegendEntry{Name: "current", Cell: core.CellCurrent})
	}
	return out
}
