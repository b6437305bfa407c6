package entity

import (
	"testing"

	"github.com/rocketscienceinc/pokemonou-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Occupy(t *testing.T) {
	t.Run("Writes icon into an empty cell", func(t *testing.T) {
		// Given: an empty 4x4 board
		board := NewBoard(4)

		// When: occupying (1,2)
		err := board.Occupy(Position{X: 1, Y: 2}, "🐶", nil)

		// Then: the icon is stored at that cell
		require.NoError(t, err)
		icon, err := board.At(Position{X: 1, Y: 2})
		require.NoError(t, err)
		assert.Equal(t, "🐶", icon)
	})

	t.Run("Rejects positions outside the board", func(t *testing.T) {
		// Given: an empty 4x4 board
		board := NewBoard(4)

		// When: occupying a cell past the edge
		err := board.Occupy(Position{X: 4, Y: 0}, "🐶", nil)

		// Then: ErrOutOfBounds is returned
		require.ErrorIs(t, err, apperror.ErrOutOfBounds)
	})

	t.Run("Rejects a cell held by the same class", func(t *testing.T) {
		// Given: a board with a pokemon at (0,0)
		board := NewBoard(4)
		require.NoError(t, board.Occupy(Position{}, "🐶", nil))

		// When: another pokemon tries to occupy the same cell
		err := board.Occupy(Position{}, "🐱", func(string) bool { return true })

		// Then: ErrCellOccupied is returned and the cell is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		icon, _ := board.At(Position{})
		assert.Equal(t, "🐶", icon)
	})

	t.Run("Allows an opposite class occupant", func(t *testing.T) {
		// Given: a board with a pokemon at (0,0)
		board := NewBoard(4)
		require.NoError(t, board.Occupy(Position{}, "🐶", nil))

		// When: a trainer occupies the same cell
		err := board.Occupy(Position{}, "👮", func(string) bool { return false })

		// Then: the trainer icon is shown
		require.NoError(t, err)
		icon, _ := board.At(Position{})
		assert.Equal(t, "👮", icon)
	})
}

func TestBoard_Vacate(t *testing.T) {
	// Given: a board with one occupied cell
	board := NewBoard(3)
	require.NoError(t, board.Occupy(Position{X: 2, Y: 2}, "🐶", nil))

	// When: vacating it twice and vacating an out of range cell
	board.Vacate(Position{X: 2, Y: 2})
	board.Vacate(Position{X: 2, Y: 2})
	board.Vacate(Position{X: -1, Y: 7})

	// Then: every cell is empty
	assert.Len(t, board.EmptyCells(), 9)
}

func TestBoard_CellsIsACopy(t *testing.T) {
	// Given: a board with one occupied cell
	board := NewBoard(2)
	require.NoError(t, board.Occupy(Position{X: 1, Y: 0}, "🐶", nil))

	// When: mutating the returned grid
	cells := board.Cells()
	cells[0][1] = EmptyCell

	// Then: the board keeps its icon
	icon, _ := board.At(Position{X: 1, Y: 0})
	assert.Equal(t, "🐶", icon)
}
