package maze

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridRejectsInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {MaxDimension + 1, 1}} {
		_, err := NewGrid(dims[0], dims[1])
		require.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
	}
	g, err := NewGrid(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Width())
	assert.Equal(t, 1, g.Height())
}

func TestBorderWallQueriesAreOutOfRange(t *testing.T) {
	g, err := NewGrid(5, 5)
	require.NoError(t, err)

	_, err = g.HasVerticalWall(4, 0)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = g.HasHorizontalWall(0, 4)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = g.HasVerticalWall(-1, 0)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = g.HasHorizontalWall(5, 0)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = g.HasVerticalWall(0, 5)
	require.ErrorIs(t, err, ErrOutOfRange)

	ok, err := g.HasVerticalWall(3, 4)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = g.HasHorizontalWall(4, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.True(t, g.Closed(WallChange{X: 4, Y: 0, Type: Vertical}), "border counts as closed")
}

func TestFillAndClearAreIdempotent(t *testing.T) {
	g, err := NewGrid(6, 4)
	require.NoError(t, err)

	g.Fill()
	v, h := slices.Clone(g.vertical), slices.Clone(g.horizontal)
	g.Fill()
	assert.Equal(t, v, g.vertical)
	assert.Equal(t, h, g.horizontal)
	assert.Equal(t, 6*4, Analyze(g).Components)

	g.Clear()
	v, h = slices.Clone(g.vertical), slices.Clone(g.horizontal)
	g.Clear()
	assert.Equal(t, v, g.vertical)
	assert.Equal(t, h, g.horizontal)
	st := Analyze(g)
	assert.Equal(t, 1, st.Components)
	assert.Equal(t, 5*4+6*3, st.Passages)
}

func TestResizeReinitializesWalls(t *testing.T) {
	g, err := NewGrid(4, 4)
	require.NoError(t, err)
	g.Clear()

	require.NoError(t, g.Resize(7, 3))
	assert.Equal(t, 7, g.Width())
	assert.Equal(t, 3, g.Height())
	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			ok, err := g.HasVerticalWall(x, y)
			require.NoError(t, err)
			assert.True(t, ok, "vertical (%d,%d)", x, y)
		}
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 7; x++ {
			ok, err := g.HasHorizontalWall(x, y)
			require.NoError(t, err)
			assert.True(t, ok, "horizontal (%d,%d)", x, y)
		}
	}

	err = g.Resize(0, 3)
	require.True(t, errors.Is(err, ErrInvalidDimensions))
	assert.Equal(t, 7, g.Width(), "failed resize must not touch the grid")
}

func TestGridString(t *testing.T) {
	g, err := NewGrid(2, 2)
	require.NoError(t, err)
	g.set(WallChange{X: 0, Y: 0, Type: Vertical}, false)
	g.set(WallChange{X: 1, Y: 0, Type: Horizontal}, false)

	expect := "" +
		"+---+---+\n" +
		"|       |\n" +
		"+---+   +\n" +
		"|   |   |\n" +
		"+---+---+\n"
	assert.Equal(t, expect, g.String())
}

func TestAnalyzeDetectsCycle(t *testing.T) {
	g, err := NewGrid(2, 2)
	require.NoError(t, err)
	g.Clear()
	st := Analyze(g)
	assert.Equal(t, 4, st.Passages)
	assert.Equal(t, 1, st.Components)
	assert.False(t, st.Perfect)
	assert.Zero(t, st.DeadEnds)
}
