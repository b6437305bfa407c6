package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/pokemonou-backend/internal/apperror"
)

// Class - the side an agent plays on.
type Class string

const (
	Seeker Class = "trainer"
	Evader Class = "pokemon"
)

func ParseClass(raw string) (Class, error) {
	switch Class(strings.ToLower(strings.TrimSpace(raw))) {
	case Seeker:
		return Seeker, nil
	case Evader:
		return Evader, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidClass, raw)
	}
}

func (that Class) Valid() bool {
	return that == Seeker || that == Evader
}

func (that Class) Opposite() Class {
	if that == Seeker {
		return Evader
	}
	return Seeker
}

type Agent struct {
	Name     string     `json:"name"`
	Class    Class      `json:"class"`
	Icon     string     `json:"icon"`
	Position Position   `json:"position"`
	Path     []Position `json:"path"`

	// Pokedex holds captured evader names in capture order. Seekers only.
	Pokedex []string `json:"pokedex,omitempty"`
	// CapturedBy is the seeker that caught this evader. Evaders only.
	CapturedBy string `json:"captured_by,omitempty"`
}

func NewAgent(name string, class Class, icon string, pos Position) *Agent {
	agent := &Agent{
		Name:     name,
		Class:    class,
		Icon:     icon,
		Position: pos,
		Path:     []Position{pos},
	}

	if class == Seeker {
		agent.Pokedex = []string{}
	}

	return agent
}

func (that *Agent) IsSeeker() bool {
	return that.Class == Seeker
}

func (that *Agent) IsCaptured() bool {
	return that.CapturedBy != ""
}

func (that *Agent) MoveTo(pos Position) {
	that.Position = pos
	that.Path = append(that.Path, pos)
}

// Clone returns a deep copy safe to hand to readers outside the coordinator lock.
func (that *Agent) Clone() Agent {
	cp := *that
	cp.Path = append([]Position(nil), that.Path...)
	if that.Pokedex != nil {
		cp.Pokedex = append([]string{}, that.Pokedex...)
	}
	return cp
}
