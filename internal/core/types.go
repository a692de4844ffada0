package core

// Size describes the dimensions of a maze grid in cells.
type Size struct {
	W int
	H int
}

// Sim is the contract the hosts drive: something with a name and a cell
// grid that advances one unit of work per Step.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Cell values written by Session.Cells. Values from CellSetBase upwards
// identify Kruskal components and wrap around.
const (
	CellNone uint8 = iota
	CellVisited
	CellPath
	CellMaze
	CellFrontier
	CellWalk
	CellChamber
	CellEdge
	CellCurrent

	CellSetBase uint8 = 16
)

var layerCells = map[string]uint8{
	"visited":  CellVisited,
	"path":     CellPath,
	"maze":     CellMaze,
	"frontier": CellFrontier,
	"walk":     CellWalk,
	"chamber":  CellChamber,
	"edge":     CellEdge,
}

// LayerCell maps a layer name to the cell value used to paint it. ordinal
// counts earlier layers sharing the same name.
func LayerCell(name string, ordinal int) uint8 {
	if v, ok := layerCells[name]; ok {
		return v
	}
	span := 256 - int(CellSetBase)
	return CellSetBase + uint8(ordinal%span)
}
