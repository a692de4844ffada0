// Package maze generates perfect mazes on a rectangular grid with five
// algorithms, either in one call or one unit of work at a time so a host can
// animate the run at any pace it likes.
//
// A Generator is not safe for concurrent use; hosts that share one across
// goroutines must serialize access.
package maze

import (
	"fmt"

	"mad-maze/pkg/core"
)

// Generator owns a Grid and, while a stepwise run is in progress, the
// algorithm state driving it.
type Generator struct {
	grid   *Grid
	rng    core.Source
	algo   algorithm
	kind   Kind
	ran    bool
	steps  int
	active bool
}

// New returns a generator for a fully walled w*h grid drawing randomness
// from a cryptographically keyed stream.
func New(w, h int) (*Generator, error) {
	return NewWithSource(w, h, core.NewSecureRNG())
}

// NewWithSource is New with an injected randomness source. Identically
// seeded sources produce identical mazes.
func NewWithSource(w, h int, src core.Source) (*Generator, error) {
	grid, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = core.NewSecureRNG()
	}
	return &Generator{grid: grid, rng: src}, nil
}

// Grid exposes the wall state for read access.
func (m *Generator) Grid() *Grid { return m.grid }

// Width returns the grid width in cells.
func (m *Generator) Width() int { return m.grid.Width() }

// Height returns the grid height in cells.
func (m *Generator) Height() int { return m.grid.Height() }

// HasVerticalWall reports the wall between (x, y) and (x+1, y).
func (m *Generator) HasVerticalWall(x, y int) (bool, error) {
	return m.grid.HasVerticalWall(x, y)
}

// HasHorizontalWall reports the wall between (x, y) and (x, y+1).
func (m *Generator) HasHorizontalWall(x, y int) (bool, error) {
	return m.grid.HasHorizontalWall(x, y)
}

// ClearGrid opens every wall and abandons any run in progress.
func (m *Generator) ClearGrid() {
	m.discard()
	m.grid.Clear()
}

// FillGrid closes every wall and abandons any run in progress.
func (m *Generator) FillGrid() {
	m.discard()
	m.grid.Fill()
}

// ResizeGrid changes the dimensions, leaves the grid fully walled and
// abandons any run in progress. Invalid dimensions leave everything intact.
func (m *Generator) ResizeGrid(w, h int) error {
	if err := m.grid.Resize(w, h); err != nil {
		return err
	}
	m.discard()
	return nil
}

// GenerateMaze runs kind to completion from its starting state.
func (m *Generator) GenerateMaze(kind Kind) error {
	if err := m.StartGeneration(kind); err != nil {
		return err
	}
	for {
		_, finished := m.algo.step(m.grid, m.rng)
		m.steps++
		if finished {
			break
		}
	}
	m.finish()
	return nil
}

// StartGeneration resets the grid to the starting state kind requires and
// prepares a fresh run without advancing it.
func (m *Generator) StartGeneration(kind Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(kind))
	}
	m.discard()
	algo, err := newAlgorithm(kind, m.grid, m.rng)
	if err != nil {
		return err
	}
	m.algo = algo
	m.kind = kind
	m.ran = true
	m.active = true
	return nil
}

// GenerationStep advances the active run by one unit of work and reports
// whether it finished. Without an active run it returns
// ErrNoActiveGeneration and leaves the grid untouched.
func (m *Generator) GenerationStep() (bool, error) {
	res, err := m.GenerationStepWithChanges()
	return res.Finished, err
}

// GenerationStepWithChanges is GenerationStep that also returns the wall
// bits flipped during the step, in the order they were applied.
func (m *Generator) GenerationStepWithChanges() (StepResult, error) {
	if !m.active {
		return StepResult{}, ErrNoActiveGeneration
	}
	changes, finished := m.algo.step(m.grid, m.rng)
	m.steps++
	if finished {
		m.finish()
	}
	return StepResult{Finished: finished, Changes: changes}, nil
}

// CellLayers snapshots the active run's visualization layers, lowest
// priority first. It returns nil when no run is active.
func (m *Generator) CellLayers() []CellLayer {
	if !m.active {
		return nil
	}
	return m.algo.layers(m.grid)
}

// CurrentPosition returns the cell the active run touched most recently.
func (m *Generator) CurrentPosition() (Point, bool) {
	if !m.active {
		return Point{}, false
	}
	return m.algo.current()
}

// Active reports whether a stepwise run is in progress.
func (m *Generator) Active() bool { return m.active }

// Algorithm returns the kind of the current or most recent run. The grid
// operations that abandon a run also forget it.
func (m *Generator) Algorithm() (Kind, bool) { return m.kind, m.ran }

// Steps returns the number of steps consumed by the current or most recent
// run.
func (m *Generator) Steps() int { return m.steps }

func (m *Generator) finish() {
	m.algo = nil
	m.active = false
}

func (m *Generator) discard() {
	m.algo = nil
	m.active = false
	m.ran = false
	m.steps = 0
}
