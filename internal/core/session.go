package core

import (
	"errors"
	"strconv"
	"time"

	random "mad-maze/pkg/core"
	"mad-maze/pkg/maze"
)

// Grid size bounds offered to users. The engine itself accepts far larger
// grids.
const (
	MinGridSize     = 5
	MaxGridSize     = 200
	DefaultGridSize = 30
)

// SessionConfig selects the initial state of a Session.
type SessionConfig struct {
	Kind    maze.Kind
	Width   int
	Height  int
	Speed   int
	Seed    int64 // 0 draws a fresh secure seed per run
	Instant bool
}

// Session is the host-side controller shared by the GUI and the terminal
// front end. It owns a Generator, paces its steps and collects the wall
// changes a renderer still has to apply.
type Session struct {
	gen     *maze.Generator
	kind    maze.Kind
	seed    int64
	pacer   *StepPacer
	cells   *ByteGrid
	paused  bool
	instant bool
	done    bool

	pending []maze.WallChange
	dirty   bool
	err     error
}

// NewSession builds a generator for cfg and starts the first run.
func NewSession(cfg SessionConfig) (*Session, error) {
	if !cfg.Kind.Valid() {
		return nil, maze.ErrUnknownAlgorithm
	}
	gen, err := maze.NewWithSource(cfg.Width, cfg.Height, newSource(cfg.Seed))
	if err != nil {
		return nil, err
	}
	s := &Session{
		gen:     gen,
		kind:    cfg.Kind,
		seed:    cfg.Seed,
		pacer:   NewStepPacer(cfg.Speed),
		cells:   NewByteGrid(cfg.Width, cfg.Height),
		instant: cfg.Instant,
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

func newSource(seed int64) random.Source {
	if seed == 0 {
		return random.NewSecureRNG()
	}
	return random.NewRNG(seed)
}

// Name returns the display title of the selected algorithm.
func (s *Session) Name() string { return s.kind.Title() }

// Size returns the grid dimensions.
func (s *Session) Size() Size { return Size{W: s.gen.Width(), H: s.gen.Height()} }

// Generator exposes the underlying engine for read access.
func (s *Session) Generator() *maze.Generator { return s.gen }

// Kind returns the selected algorithm.
func (s *Session) Kind() maze.Kind { return s.kind }

// Seed returns the seed used for the current generator.
func (s *Session) Seed() int64 { return s.seed }

// Speed returns the pacing speed.
func (s *Session) Speed() int { return s.pacer.Speed() }

// SetSpeed changes the pacing speed.
func (s *Session) SetSpeed(speed int) { s.pacer.SetSpeed(speed) }

// Paused reports whether paced stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// TogglePause flips the paused flag.
func (s *Session) TogglePause() {
	s.paused = !s.paused
	s.pacer.Reset()
}

// Instant reports whether restarts generate the whole maze at once.
func (s *Session) Instant() bool { return s.instant }

// SetInstant selects instant or animated restarts.
func (s *Session) SetInstant(v bool) { s.instant = v }

// Done reports whether the current run has finished.
func (s *Session) Done() bool { return s.done }

// Steps returns the number of steps the current run consumed.
func (s *Session) Steps() int { return s.gen.Steps() }

// Err returns the last error raised by Reset.
func (s *Session) Err() error { return s.err }

// Restart begins a new run of the selected algorithm.
func (s *Session) Restart() error {
	s.pacer.Reset()
	s.pending = s.pending[:0]
	s.dirty = true
	s.done = false
	if s.instant {
		if err := s.gen.GenerateMaze(s.kind); err != nil {
			return err
		}
		s.done = true
		return nil
	}
	return s.gen.StartGeneration(s.kind)
}

// SetKind selects another algorithm and restarts.
func (s *Session) SetKind(kind maze.Kind) error {
	if !kind.Valid() {
		return maze.ErrUnknownAlgorithm
	}
	s.kind = kind
	return s.Restart()
}

// Reset replaces the randomness source with one seeded from seed and
// restarts.
func (s *Session) Reset(seed int64) {
	gen, err := maze.NewWithSource(s.gen.Width(), s.gen.Height(), newSource(seed))
	if err != nil {
		s.err = err
		return
	}
	s.gen = gen
	s.seed = seed
	s.err = s.Restart()
}

// Resize changes the grid dimensions and restarts.
func (s *Session) Resize(w, h int) error {
	if err := s.gen.ResizeGrid(w, h); err != nil {
		return err
	}
	s.cells.Resize(w, h)
	return s.Restart()
}

// Clear opens every wall and abandons the run.
func (s *Session) Clear() {
	s.gen.ClearGrid()
	s.dirty = true
	s.done = false
}

// Fill closes every wall and abandons the run.
func (s *Session) Fill() {
	s.gen.FillGrid()
	s.dirty = true
	s.done = false
}

// Step advances the run by exactly one step regardless of pacing.
func (s *Session) Step() { s.run(1) }

// Advance runs as many steps as dt is worth at the current speed and returns
// the count actually run.
func (s *Session) Advance(dt time.Duration) int {
	if s.paused || !s.gen.Active() {
		return 0
	}
	return s.run(s.pacer.Advance(dt))
}

// Tick is Advance measured against the wall clock.
func (s *Session) Tick() int {
	if s.paused || !s.gen.Active() {
		return 0
	}
	return s.run(s.pacer.Tick())
}

func (s *Session) run(n int) int {
	ran := 0
	for ; ran < n; ran++ {
		res, err := s.gen.GenerationStepWithChanges()
		if errors.Is(err, maze.ErrNoActiveGeneration) {
			break
		}
		s.pending = append(s.pending, res.Changes...)
		if res.Finished {
			s.done = true
			ran++
			break
		}
	}
	// Past a certain backlog a full redraw is cheaper than replaying it.
	if len(s.pending) > 2*s.gen.Width()*s.gen.Height() {
		s.pending = s.pending[:0]
		s.dirty = true
	}
	return ran
}

// Drain hands over the wall changes accumulated since the previous call.
// full reports that the renderer must redraw from the grid instead.
func (s *Session) Drain() (changes []maze.WallChange, full bool) {
	changes = append([]maze.WallChange(nil), s.pending...)
	full = s.dirty
	s.pending = s.pending[:0]
	s.dirty = false
	if full {
		changes = nil
	}
	return changes, full
}

// Cells rasterizes the active run's layers and current position.
func (s *Session) Cells() []uint8 {
	layers := s.gen.CellLayers()
	s.cells.Paint(layers)
	if p, ok := s.gen.CurrentPosition(); ok {
		s.cells.Mark(p, CellCurrent)
	}
	return s.cells.Cells()
}

// Parameters reports the session state for the HUD.
func (s *Session) Parameters() ParameterSnapshot {
	state := "running"
	switch {
	case s.done:
		state = "done"
	case !s.gen.Active():
		state = "idle"
	case s.paused:
		state = "paused"
	}
	size := s.Size()
	return ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Run", Params: []Parameter{
			{Key: "algorithm", Label: "Algorithm", Type: ParamTypeString, Value: s.kind.Title()},
			{Key: "state", Label: "State", Type: ParamTypeString, Value: state},
			{Key: "steps", Label: "Steps", Type: ParamTypeInt, Value: strconv.Itoa(s.gen.Steps())},
			{Key: "instant", Label: "Instant", Type: ParamTypeBool, Value: strconv.FormatBool(s.instant)},
		}},
		{Name: "Controls", Params: []Parameter{
			{Key: "speed", Label: "Speed", Type: ParamTypeInt, Value: strconv.Itoa(s.pacer.Speed())},
			{Key: "width", Label: "Width", Type: ParamTypeInt, Value: strconv.Itoa(size.W)},
			{Key: "height", Label: "Height", Type: ParamTypeInt, Value: strconv.Itoa(size.H)},
		}},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (s *Session) ParameterControls() []ParameterControl {
	return []ParameterControl{
		{Key: "speed", Label: "Speed", Step: 5, Min: MinSpeed, Max: MaxSpeed},
		{Key: "width", Label: "Width", Step: 5, Min: MinGridSize, Max: MaxGridSize},
		{Key: "height", Label: "Height", Step: 5, Min: MinGridSize, Max: MaxGridSize},
	}
}

// SetIntParameter applies a HUD adjustment.
func (s *Session) SetIntParameter(key string, value int) bool {
	size := s.Size()
	switch key {
	case "speed":
		s.SetSpeed(value)
		return true
	case "width":
		return s.Resize(ClampGridSize(value), size.H) == nil
	case "height":
		return s.Resize(size.W, ClampGridSize(value)) == nil
	}
	return false
}

// ClampGridSize limits v to [MinGridSize, MaxGridSize].
func ClampGridSize(v int) int {
	if v < MinGridSize {
		return MinGridSize
	}
	if v > MaxGridSize {
		return MaxGridSize
	}
	return v
}
