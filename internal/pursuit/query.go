package pursuit

import (
	"fmt"

	"github.com/rocketscienceinc/pokemonou-backend/internal/apperror"
	"github.com/rocketscienceinc/pokemonou-backend/internal/entity"
)

// CheckBoard returns the position of the closest agent of the opposite
// class, or pos itself when there is none. Captured evaders are ignored.
// Ties go to the lexicographically smallest name.
func (that *Coordinator) CheckBoard(class entity.Class, pos entity.Position) (entity.Position, error) {
	if !class.Valid() {
		return pos, fmt.Errorf("%w: %q", apperror.ErrInvalidClass, class)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return that.nearestOpposite(class, pos), nil
}

func (that *Coordinator) nearestOpposite(class entity.Class, pos entity.Position) entity.Position {
	candidates := that.agents(class.Opposite())

	best := pos
	bestDist := -1

	for _, name := range sortedNames(candidates) {
		agent := candidates[name]
		if agent.IsCaptured() {
			continue
		}

		dist := pos.DistanceSq(agent.Position)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = agent.Position, dist
		}
	}

	return best
}
