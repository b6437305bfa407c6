package pursuit

import (
	"fmt"

	"github.com/rocketscienceinc/pokemonou-backend/internal/apperror"
	"github.com/rocketscienceinc/pokemonou-backend/internal/entity"
)

// Capture catches the first live evader, by name, standing on the seeker's
// cell. The seeker's recorded position is used; pos only has to agree with
// it. CaptureFailed is returned when nobody is there.
func (that *Coordinator) Capture(seekerName string, pos entity.Position) (string, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	seeker, ok := that.seekers[seekerName]
	if !ok {
		if _, isEvader := that.evaders[seekerName]; isEvader {
			return CaptureFailed, fmt.Errorf("%w: capture by %s %s", apperror.ErrWrongClass, entity.Evader, seekerName)
		}
		return CaptureFailed, fmt.Errorf("%w: %s %s", apperror.ErrAgentNotFound, entity.Seeker, seekerName)
	}

	if pos != seeker.Position {
		return CaptureFailed, nil
	}

	for _, name := range sortedNames(that.evaders) {
		evader := that.evaders[name]
		if evader.IsCaptured() || evader.Position != seeker.Position {
			continue
		}

		evader.CapturedBy = seeker.Name
		seeker.Pokedex = append(seeker.Pokedex, evader.Name)

		// the cell now shows only the seeker
		_ = that.board.Occupy(seeker.Position, seeker.Icon, nil)

		that.log.Append(EventCaptured, seeker.Name, fmt.Sprintf("%s %s %s captured %s %s %s at %s",
			entity.Seeker, seeker.Name, seeker.Icon, entity.Evader, evader.Name, evader.Icon, seeker.Position))

		that.refreshStatus()

		return evader.Name, nil
	}

	return CaptureFailed, nil
}

// Captured names the seeker that caught the evader, or Free.
func (that *Coordinator) Captured(evaderName string) (string, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	evader, ok := that.evaders[evaderName]
	if !ok {
		return Free, fmt.Errorf("%w: %s %s", apperror.ErrAgentNotFound, entity.Evader, evaderName)
	}

	if !evader.IsCaptured() {
		return Free, nil
	}

	return evader.CapturedBy, nil
}
