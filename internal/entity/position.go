package entity

import "fmt"

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// InvalidPosition is returned when a registration is ignored.
var InvalidPosition = Position{X: -1, Y: -1}

func (that Position) IsValid() bool {
	return that.X >= 0 && that.Y >= 0
}

// Clamp pulls each coordinate independently into [0,size).
func (that Position) Clamp(size int) Position {
	return Position{X: clamp(that.X, size), Y: clamp(that.Y, size)}
}

// DistanceSq is the squared euclidean distance; ordering is the same as the real distance.
func (that Position) DistanceSq(other Position) int {
	dx := that.X - other.X
	dy := that.Y - other.Y
	return dx*dx + dy*dy
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.X, that.Y)
}

func clamp(v, size int) int {
	if v < 0 {
		return 0
	}
	if v >= size {
		return size - 1
	}
	return v
}
