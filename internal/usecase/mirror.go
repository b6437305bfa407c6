package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/pokemonou-backend/internal/pursuit"
)

type eventRepoDep interface {
	Append(ctx context.Context, events []pursuit.Event) error
}

type boardRepoDep interface {
	Save(ctx context.Context, snapshot *pursuit.Snapshot) error
}

type snapshotSourceDep interface {
	Snapshot() pursuit.Snapshot
	EventsSince(seq int) []pursuit.Event
}

// Mirror copies the action log and board snapshot to external storage so
// renderers outside the process can follow the game. It never reads back.
type Mirror struct {
	logger *slog.Logger
	source snapshotSourceDep
	events eventRepoDep
	board  boardRepoDep

	cursor int
}

func NewMirror(logger *slog.Logger, source snapshotSourceDep, events eventRepoDep, board boardRepoDep) *Mirror {
	return &Mirror{
		logger: logger.With("component", "mirror"),
		source: source,
		events: events,
		board:  board,
	}
}

// Sync pushes events newer than the last successful sync and the current board.
func (that *Mirror) Sync(ctx context.Context) error {
	events := that.source.EventsSince(that.cursor)
	if err := that.events.Append(ctx, events); err != nil {
		return fmt.Errorf("failed to mirror events: %w", err)
	}

	if len(events) > 0 {
		that.cursor = events[len(events)-1].Seq
	}

	snapshot := that.source.Snapshot()
	if err := that.board.Save(ctx, &snapshot); err != nil {
		return fmt.Errorf("failed to mirror board: %w", err)
	}

	return nil
}

// Run syncs every interval until ctx is done, then makes one last sync.
func (that *Mirror) Run(ctx context.Context, interval time.Duration) {
	log := that.logger.With("method", "Run")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), interval)
			if err := that.Sync(flushCtx); err != nil {
				log.Error("final sync failed", "error", err)
			}
			cancel()
			return
		case <-ticker.C:
			if err := that.Sync(ctx); err != nil {
				log.Error("sync failed", "error", err)
			}
		}
	}
}
