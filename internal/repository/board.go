package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/pokemonou-backend/internal/pursuit"
)

var ErrSnapshotNotFound = errors.New("board snapshot not found")

type BoardRepository interface {
	Save(ctx context.Context, snapshot *pursuit.Snapshot) error
	Get(ctx context.Context) (*pursuit.Snapshot, error)
}

type dbBoard struct {
	client *redis.Client
	key    string
}

func NewBoardRepository(client *redis.Client, prefix string) BoardRepository {
	return &dbBoard{
		client: client,
		key:    prefix + ":board",
	}
}

func (that *dbBoard) Save(ctx context.Context, snapshot *pursuit.Snapshot) error {
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal snapshot: %w", err)
	}

	if err = that.client.Set(ctx, that.key, snapshotJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot: %w", err)
	}

	return nil
}

func (that *dbBoard) Get(ctx context.Context) (*pursuit.Snapshot, error) {
	response, err := that.client.Get(ctx, that.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var snapshot pursuit.Snapshot
	if err = json.Unmarshal([]byte(response), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}
