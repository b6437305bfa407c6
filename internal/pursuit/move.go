package pursuit

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/pokemonou-backend/internal/apperror"
	"github.com/rocketscienceinc/pokemonou-backend/internal/entity"
)

// Move clamps target into the board and moves the agent there. A move onto
// a cell held by the same class is refused and the current position is
// returned with nothing changed. The server's record of the agent's
// position is authoritative; a stale from is only reported in the log.
// Step length is not limited: clamping is the only check on the target.
func (that *Coordinator) Move(name string, class entity.Class, from, target entity.Position, icon string) (entity.Position, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	agent, err := that.lookup(name, class)
	if err != nil {
		return from, err
	}

	if icon != "" && icon != agent.Icon {
		return agent.Position, fmt.Errorf("%w: %s %s", apperror.ErrIconMismatch, class, name)
	}

	// captured evaders are off the board for good
	if agent.IsCaptured() {
		return agent.Position, nil
	}

	current := agent.Position
	target = target.Clamp(that.board.Size())
	if target == current {
		return current, nil
	}

	if err = that.board.Occupy(target, agent.Icon, that.blockedFor(agent, target)); err != nil {
		if errors.Is(err, apperror.ErrCellOccupied) {
			return current, nil
		}
		return current, fmt.Errorf("failed to move %s %s: %w", class, name, err)
	}

	that.leave(agent, current)
	agent.MoveTo(target)

	text := fmt.Sprintf("%s %s %s moved from %s to %s", class, name, agent.Icon, current, target)
	if from != current {
		text += fmt.Sprintf(" (client reported %s)", from)
	}
	that.log.Append(EventMoved, name, text)

	return target, nil
}

// leave clears the agent's icon from pos and shows any other live agent
// still standing there.
func (that *Coordinator) leave(agent *entity.Agent, pos entity.Position) {
	if icon, _ := that.board.At(pos); icon != agent.Icon {
		return
	}

	that.board.Vacate(pos)

	for _, other := range that.iconOwner {
		if other == agent || other.IsCaptured() || other.Position != pos {
			continue
		}
		_ = that.board.Occupy(pos, other.Icon, nil)
		return
	}
}
