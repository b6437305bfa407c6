package pursuit

import (
	"fmt"

	"github.com/rocketscienceinc/pokemonou-backend/internal/apperror"
	"github.com/rocketscienceinc/pokemonou-backend/internal/entity"
)

type Registration struct {
	Icon     string          `json:"icon"`
	Position entity.Position `json:"position"`
	// Registered is false when the name was already taken in its class.
	Registered bool `json:"registered"`
}

// Initialize registers a new agent on a random empty cell. A second call
// with a known name is ignored and answers with entity.InvalidPosition.
func (that *Coordinator) Initialize(name string, class entity.Class) (Registration, error) {
	if name == "" {
		return Registration{}, apperror.ErrEmptyName
	}
	if !class.Valid() {
		return Registration{}, fmt.Errorf("%w: %q", apperror.ErrInvalidClass, class)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	agents := that.agents(class)
	if _, ok := agents[name]; ok {
		return Registration{Position: entity.InvalidPosition}, nil
	}

	pos, err := that.pickEmptyCell()
	if err != nil {
		return Registration{}, err
	}

	icon, err := that.pools[class].Allocate(that.rng)
	if err != nil {
		return Registration{}, fmt.Errorf("failed to allocate %s icon: %w", class, err)
	}

	if err = that.board.Occupy(pos, icon, nil); err != nil {
		return Registration{}, fmt.Errorf("failed to place %s %s: %w", class, name, err)
	}

	agent := entity.NewAgent(name, class, icon, pos)
	agents[name] = agent
	that.iconOwner[icon] = agent

	that.log.Append(EventJoined, name, fmt.Sprintf("%s %s %s joined at %s", class, name, icon, pos))

	return Registration{Icon: icon, Position: pos, Registered: true}, nil
}

// pickEmptyCell tries random cells a bounded number of times, then picks
// uniformly among whatever empty cells remain.
func (that *Coordinator) pickEmptyCell() (entity.Position, error) {
	size := that.board.Size()

	for n := 0; n < that.maxPlacementAttempts; n++ {
		pos := entity.Position{X: that.rng.Intn(size), Y: that.rng.Intn(size)}
		if icon, _ := that.board.At(pos); icon == entity.EmptyCell {
			return pos, nil
		}
	}

	free := that.board.EmptyCells()
	if len(free) == 0 {
		return entity.InvalidPosition, apperror.ErrBoardFull
	}

	return free[that.rng.Intn(len(free))], nil
}
