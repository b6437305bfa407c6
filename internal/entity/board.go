package entity

import (
	"fmt"

	"github.com/rocketscienceinc/pokemonou-backend/internal/apperror"
)

const EmptyCell = ""

// Board - N×N occupancy grid, indexed as cells[y][x].
type Board struct {
	size  int
	cells [][]string
}

func NewBoard(size int) *Board {
	cells := make([][]string, size)
	for y := range cells {
		cells[y] = make([]string, size)
	}

	return &Board{size: size, cells: cells}
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) Contains(pos Position) bool {
	return pos.X >= 0 && pos.X < that.size && pos.Y >= 0 && pos.Y < that.size
}

func (that *Board) At(pos Position) (string, error) {
	if !that.Contains(pos) {
		return EmptyCell, fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, pos)
	}

	return that.cells[pos.Y][pos.X], nil
}

// Occupy writes icon into pos. blocks reports whether the current occupant
// belongs to the mover's class; such a cell is refused.
func (that *Board) Occupy(pos Position, icon string, blocks func(occupant string) bool) error {
	occupant, err := that.At(pos)
	if err != nil {
		return err
	}

	if occupant != EmptyCell && occupant != icon && blocks != nil && blocks(occupant) {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, pos)
	}

	that.cells[pos.Y][pos.X] = icon

	return nil
}

func (that *Board) Vacate(pos Position) {
	if !that.Contains(pos) {
		return
	}

	that.cells[pos.Y][pos.X] = EmptyCell
}

func (that *Board) EmptyCells() []Position {
	var free []Position
	for y, row := range that.cells {
		for x, cell := range row {
			if cell == EmptyCell {
				free = append(free, Position{X: x, Y: y})
			}
		}
	}

	return free
}

// Cells returns a copy of the grid.
func (that *Board) Cells() [][]string {
	out := make([][]string, that.size)
	for y, row := range that.cells {
		out[y] = append([]string(nil), row...)
	}

	return out
}
