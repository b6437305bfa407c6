package agent

import "github.com/rocketscienceinc/pokemonou-backend/internal/entity"

// Strategy picks the next cell given where the agent is and where the
// nearest opponent is.
type Strategy interface {
	Next(self, opponent entity.Position, boardSize int) entity.Position
}

// Chase steps one cell toward the opponent on each axis.
type Chase struct{}

func (Chase) Next(self, opponent entity.Position, boardSize int) entity.Position {
	next := entity.Position{
		X: self.X + sign(opponent.X-self.X),
		Y: self.Y + sign(opponent.Y-self.Y),
	}

	return next.Clamp(boardSize)
}

// Flee moves to the neighbouring cell farthest from the opponent. Against
// a wall that means sliding along it.
type Flee struct{}

var steps = []entity.Position{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

func (Flee) Next(self, opponent entity.Position, boardSize int) entity.Position {
	best, bestDist := self, self.DistanceSq(opponent)

	for _, step := range steps {
		next := entity.Position{X: self.X + step.X, Y: self.Y + step.Y}
		if next.Clamp(boardSize) != next {
			continue
		}
		if dist := next.DistanceSq(opponent); dist > bestDist {
			best, bestDist = next, dist
		}
	}

	return best
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
