package pursuit

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/pokemonou-backend/internal/apperror"
	"github.com/rocketscienceinc/pokemonou-backend/internal/entity"
)

// ShowPath appends the agent's full movement history to the log and returns the line.
func (that *Coordinator) ShowPath(name string, class entity.Class) (string, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	agent, err := that.lookup(name, class)
	if err != nil {
		return "", err
	}

	steps := make([]string, 0, len(agent.Path))
	for _, pos := range agent.Path {
		steps = append(steps, pos.String())
	}

	text := fmt.Sprintf("%s %s %s path: %s", class, name, agent.Icon, strings.Join(steps, " -> "))
	that.log.Append(EventPath, name, text)

	return text, nil
}

// ShowPokedex appends the seeker's captures, in capture order, to the log.
func (that *Coordinator) ShowPokedex(seekerName string) (string, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	seeker, ok := that.seekers[seekerName]
	if !ok {
		return "", fmt.Errorf("%w: %s %s", apperror.ErrAgentNotFound, entity.Seeker, seekerName)
	}

	caught := "(empty)"
	if len(seeker.Pokedex) > 0 {
		entries := make([]string, 0, len(seeker.Pokedex))
		for _, name := range seeker.Pokedex {
			entries = append(entries, name+" "+that.evaders[name].Icon)
		}
		caught = strings.Join(entries, ", ")
	}

	text := fmt.Sprintf("%s %s %s pokedex: %s", entity.Seeker, seekerName, seeker.Icon, caught)
	that.log.Append(EventPokedex, seekerName, text)

	return text, nil
}
