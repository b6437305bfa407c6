package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/pokemonou-backend/internal/entity"
	"github.com/rocketscienceinc/pokemonou-backend/internal/protocol"
	"github.com/rocketscienceinc/pokemonou-backend/internal/pursuit"
)

var ErrNameTaken = errors.New("agent name is already registered")

const DefaultTurn = 200 * time.Millisecond

type caller interface {
	Call(ctx context.Context, action string, req any, resp protocol.Response) error
}

type Config struct {
	Name     string
	Class    entity.Class
	Turn     time.Duration
	Strategy Strategy
}

// Runner plays one agent until the game ends, it is captured, or ctx is done.
type Runner struct {
	logger *slog.Logger
	client caller
	conf   Config

	icon      string
	position  entity.Position
	boardSize int
}

func NewRunner(logger *slog.Logger, client caller, conf Config) *Runner {
	if conf.Turn <= 0 {
		conf.Turn = DefaultTurn
	}
	if conf.Strategy == nil {
		conf.Strategy = Chase{}
		if conf.Class == entity.Evader {
			conf.Strategy = Flee{}
		}
	}

	return &Runner{
		logger: logger.With("component", "agent", "agent", conf.Name, "class", conf.Class),
		client: client,
		conf:   conf,
	}
}

func (that *Runner) Position() entity.Position {
	return that.position
}

func (that *Runner) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	if err := that.initialize(ctx); err != nil {
		return err
	}

	log.Info("registered", "icon", that.icon, "position", that.position, "board_size", that.boardSize)

	ticker := time.NewTicker(that.conf.Turn)
	defer ticker.Stop()

	for {
		over, err := that.gameOver(ctx)
		if err != nil {
			return err
		}
		if over {
			log.Info("game over")
			return that.report(ctx)
		}

		done, err := that.turn(ctx)
		if err != nil {
			return err
		}
		if done {
			return that.report(ctx)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (that *Runner) initialize(ctx context.Context) error {
	var resp protocol.InitializeResponse
	req := protocol.InitializeRequest{Identity: that.identity()}
	if err := that.client.Call(ctx, protocol.ActionInitialize, req, &resp); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	if !resp.Registered {
		return fmt.Errorf("%w: %s", ErrNameTaken, that.conf.Name)
	}

	that.icon = resp.Icon
	that.position = resp.Position
	that.boardSize = resp.BoardSize

	return nil
}

// turn plays one round. It reports done when this agent has nothing left to do.
func (that *Runner) turn(ctx context.Context) (bool, error) {
	if that.conf.Class == entity.Seeker {
		return false, that.seekerTurn(ctx)
	}

	return that.evaderTurn(ctx)
}

// seekerTurn tries a capture, moves toward the nearest pokemon and tries again.
func (that *Runner) seekerTurn(ctx context.Context) error {
	caught, err := that.capture(ctx)
	if err != nil || caught {
		return err
	}

	if err = that.step(ctx); err != nil {
		return err
	}

	_, err = that.capture(ctx)

	return err
}

func (that *Runner) evaderTurn(ctx context.Context) (bool, error) {
	var resp protocol.CapturedResponse
	if err := that.client.Call(ctx, protocol.ActionCaptured, protocol.CapturedRequest{Name: that.conf.Name}, &resp); err != nil {
		return false, fmt.Errorf("failed to check capture: %w", err)
	}

	if resp.Trainer != pursuit.Free {
		that.logger.Info("captured", "trainer", resp.Trainer)
		return true, nil
	}

	return false, that.step(ctx)
}

func (that *Runner) step(ctx context.Context) error {
	var board protocol.CheckBoardResponse
	req := protocol.CheckBoardRequest{Identity: that.identity(), Position: that.position}
	if err := that.client.Call(ctx, protocol.ActionCheckBoard, req, &board); err != nil {
		return fmt.Errorf("failed to check board: %w", err)
	}

	next := that.conf.Strategy.Next(that.position, board.Position, that.boardSize)
	if next == that.position {
		return nil
	}

	var moved protocol.MoveResponse
	move := protocol.MoveRequest{Identity: that.identity(), From: that.position, To: next, Icon: that.icon}
	if err := that.client.Call(ctx, protocol.ActionMove, move, &moved); err != nil {
		return fmt.Errorf("failed to move: %w", err)
	}

	if moved.Position != next {
		that.logger.Debug("move refused", "target", next)
	}
	that.position = moved.Position

	return nil
}

func (that *Runner) capture(ctx context.Context) (bool, error) {
	var resp protocol.CaptureResponse
	req := protocol.CaptureRequest{Name: that.conf.Name, Position: that.position}
	if err := that.client.Call(ctx, protocol.ActionCapture, req, &resp); err != nil {
		return false, fmt.Errorf("failed to capture: %w", err)
	}

	if resp.Pokemon == pursuit.CaptureFailed {
		return false, nil
	}

	that.logger.Info("caught a pokemon", "pokemon", resp.Pokemon, "position", that.position)

	return true, nil
}

func (that *Runner) gameOver(ctx context.Context) (bool, error) {
	var resp protocol.GameStatusResponse
	if err := that.client.Call(ctx, protocol.ActionGameStatus, protocol.GameStatusRequest{Identity: that.identity()}, &resp); err != nil {
		return false, fmt.Errorf("failed to get game status: %w", err)
	}

	return resp.Status == pursuit.StatusOver, nil
}

// report asks the server to log this agent's path and, for trainers, its pokedex.
func (that *Runner) report(ctx context.Context) error {
	var ack protocol.AckResponse
	if err := that.client.Call(ctx, protocol.ActionShowPath, protocol.ShowPathRequest{Identity: that.identity()}, &ack); err != nil {
		return fmt.Errorf("failed to show path: %w", err)
	}

	if that.conf.Class != entity.Seeker {
		return nil
	}

	if err := that.client.Call(ctx, protocol.ActionShowPokedex, protocol.ShowPokedexRequest{Name: that.conf.Name}, &ack); err != nil {
		return fmt.Errorf("failed to show pokedex: %w", err)
	}

	return nil
}

func (that *Runner) identity() protocol.Identity {
	return protocol.Identity{Name: that.conf.Name, Class: that.conf.Class}
}
