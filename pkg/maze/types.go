package maze

import (
	"fmt"
	"strings"
)

// Point identifies a cell by column and row.
type Point struct {
	X, Y int
}

// WallType selects which of a cell's two stored walls a change refers to.
type WallType uint8

const (
	// Vertical is the wall between (x, y) and (x+1, y).
	Vertical WallType = iota
	// Horizontal is the wall between (x, y) and (x, y+1).
	Horizontal
)

func (t WallType) String() string {
	switch t {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return fmt.Sprintf("WallType(%d)", uint8(t))
}

// WallChange records one wall bit flip applied during a step. Carving
// algorithms only ever open walls; RecursiveDivision only ever closes them.
type WallChange struct {
	X, Y int
	Type WallType
}

// Cells returns the two cells separated by the wall.
func (c WallChange) Cells() (Point, Point) {
	if c.Type == Vertical {
		return Point{c.X, c.Y}, Point{c.X + 1, c.Y}
	}
	return Point{c.X, c.Y}, Point{c.X, c.Y + 1}
}

// CellLayer is a named set of cells used to highlight algorithm progress.
// Within the slice returned by CellLayers, a later layer has higher priority.
type CellLayer struct {
	Name  string
	Cells []Point
}

// StepResult is the outcome of a single generation step.
type StepResult struct {
	Finished bool
	Changes  []WallChange
}

// Kind selects a generation algorithm.
type Kind uint8

const (
	Backtracking Kind = iota
	Prim
	Kruskal
	Wilson
	RecursiveDivision
)

var kindNames = [...]struct{ token, title string }{
	Backtracking:      {"backtracking", "Recursive Backtracking"},
	Prim:              {"prim", "Randomized Prim"},
	Kruskal:           {"kruskal", "Kruskal's Algorithm"},
	Wilson:            {"wilson", "Wilson's Algorithm"},
	RecursiveDivision: {"division", "Recursive Division"},
}

// Kinds lists every supported algorithm in declaration order.
func Kinds() []Kind {
	return []Kind{Backtracking, Prim, Kruskal, Wilson, RecursiveDivision}
}

// Valid reports whether k names a supported algorithm.
func (k Kind) Valid() bool { return int(k) < len(kindNames) }

// String returns the short token used on command lines.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k].token
}

// Title returns the human-readable algorithm name.
func (k Kind) Title() string {
	if !k.Valid() {
		return k.String()
	}
	return kindNames[k].title
}

// Carves reports whether the algorithm starts from a fully walled grid and
// removes walls. RecursiveDivision is the only algorithm that adds walls.
func (k Kind) Carves() bool { return k != RecursiveDivision }

// ParseKind resolves a token such as "prim" or "recursive-division".
func ParseKind(s string) (Kind, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	token = strings.NewReplacer("-", "", "_", "", " ", "").Replace(token)
	switch token {
	case "backtracking", "backtrack", "dfs":
		return Backtracking, nil
	case "prim":
		return Prim, nil
	case "kruskal":
		return Kruskal, nil
	case "wilson":
		return Wilson, nil
	case "division", "recursivedivision":
		return RecursiveDivision, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}
