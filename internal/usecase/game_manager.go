package usecase

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/pokemonou-backend/internal/entity"
	"github.com/rocketscienceinc/pokemonou-backend/internal/metrics"
	"github.com/rocketscienceinc/pokemonou-backend/internal/pursuit"
)

type coordinatorDep interface {
	Initialize(name string, class entity.Class) (pursuit.Registration, error)
	CheckBoard(class entity.Class, pos entity.Position) (entity.Position, error)
	Move(name string, class entity.Class, from, target entity.Position, icon string) (entity.Position, error)
	Capture(seeker string, pos entity.Position) (string, error)
	Captured(evader string) (string, error)
	ShowPath(name string, class entity.Class) (string, error)
	ShowPokedex(seeker string) (string, error)
	GameStatus() pursuit.Status
	Snapshot() pursuit.Snapshot
	EventsSince(seq int) []pursuit.Event
	BoardSize() int
}

// GameManager is the entry point transports use. It adds logging, metrics
// and game-over notification around the coordinator.
type GameManager struct {
	logger *slog.Logger
	game   coordinatorDep

	overOnce sync.Once
	over     chan struct{}
}

func NewGameManager(logger *slog.Logger, game coordinatorDep) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		game:   game,
		over:   make(chan struct{}),
	}
}

// Done is closed the first time the game is seen to be over.
func (that *GameManager) Done() <-chan struct{} {
	return that.over
}

func (that *GameManager) Initialize(name string, class entity.Class) (pursuit.Registration, error) {
	log := that.logger.With("method", "Initialize", "agent", name, "class", class)

	reg, err := that.game.Initialize(name, class)
	if err != nil {
		log.Error("failed to register agent", "error", err)
		return reg, fmt.Errorf("failed to register %s %s: %w", class, name, err)
	}

	if !reg.Registered {
		log.Warn("agent already registered, ignoring")
		return reg, nil
	}

	metrics.AgentRegistered(string(class))
	log.Info("agent registered", "icon", reg.Icon, "position", reg.Position)

	return reg, nil
}

func (that *GameManager) CheckBoard(class entity.Class, pos entity.Position) (entity.Position, error) {
	target, err := that.game.CheckBoard(class, pos)
	if err != nil {
		return pos, fmt.Errorf("failed to check board: %w", err)
	}

	return target, nil
}

func (that *GameManager) Move(name string, class entity.Class, from, target entity.Position, icon string) (entity.Position, error) {
	log := that.logger.With("method", "Move", "agent", name, "class", class)

	pos, err := that.game.Move(name, class, from, target, icon)
	if err != nil {
		log.Error("failed to move agent", "error", err)
		return pos, fmt.Errorf("failed to move: %w", err)
	}

	if clamped := target.Clamp(that.game.BoardSize()); pos != clamped {
		if that.isCaptured(name, class) {
			log.Debug("captured pokemon cannot move", "position", pos)
			return pos, nil
		}

		metrics.MoveRejected()
		log.Debug("move refused", "position", pos, "target", clamped)
	}

	return pos, nil
}

// isCaptured reports whether name is a pokemon already in some pokedex.
func (that *GameManager) isCaptured(name string, class entity.Class) bool {
	if class != entity.Evader {
		return false
	}

	owner, err := that.game.Captured(name)

	return err == nil && owner != pursuit.Free
}

func (that *GameManager) Capture(seeker string, pos entity.Position) (string, error) {
	log := that.logger.With("method", "Capture", "agent", seeker)

	caught, err := that.game.Capture(seeker, pos)
	if err != nil {
		log.Error("failed to capture", "error", err)
		return caught, fmt.Errorf("failed to capture: %w", err)
	}

	if caught != pursuit.CaptureFailed {
		metrics.CaptureRecorded()
		log.Info("pokemon captured", "pokemon", caught, "position", pos)
		that.checkOver()
	}

	return caught, nil
}

func (that *GameManager) Captured(evader string) (string, error) {
	owner, err := that.game.Captured(evader)
	if err != nil {
		return owner, fmt.Errorf("failed to look up capture: %w", err)
	}

	return owner, nil
}

func (that *GameManager) ShowPath(name string, class entity.Class) error {
	if _, err := that.game.ShowPath(name, class); err != nil {
		return fmt.Errorf("failed to show path: %w", err)
	}

	return nil
}

func (that *GameManager) ShowPokedex(seeker string) error {
	if _, err := that.game.ShowPokedex(seeker); err != nil {
		return fmt.Errorf("failed to show pokedex: %w", err)
	}

	return nil
}

func (that *GameManager) GameStatus() pursuit.Status {
	status := that.game.GameStatus()
	if status == pursuit.StatusOver {
		that.markOver()
	}

	return status
}

func (that *GameManager) Snapshot() pursuit.Snapshot {
	return that.game.Snapshot()
}

func (that *GameManager) EventsSince(seq int) []pursuit.Event {
	return that.game.EventsSince(seq)
}

func (that *GameManager) checkOver() {
	if that.game.GameStatus() == pursuit.StatusOver {
		that.markOver()
	}
}

func (that *GameManager) markOver() {
	that.overOnce.Do(func() {
		that.logger.Info("game over, every pokemon has been captured")
		close(that.over)
	})
}

func (that *GameManager) BoardSize() int {
	return that.game.BoardSize()
}
