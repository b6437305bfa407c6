package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/pokemonou-backend/internal/config"
)

// RedisStorage holds the client shared by the mirror repositories.
type RedisStorage struct {
	Connection *redis.Client
}

// NewRedisStorage - connects to the redis described by conf and checks it answers.
func NewRedisStorage(ctx context.Context, conf config.Redis) (*RedisStorage, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:        conf.GetRedisAddr(),
		Password:    conf.Password,
		DB:          conf.DB,
		DialTimeout: conf.DialTimeout,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", conf.GetRedisAddr(), err)
	}

	return &RedisStorage{Connection: conn}, nil
}

// DropPrefix deletes every key under prefix. Mirrors of an earlier game
// would otherwise mix with the new one.
func (that *RedisStorage) DropPrefix(ctx context.Context, prefix string) error {
	iter := that.Connection.Scan(ctx, 0, prefix+":*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys under %s: %w", prefix, err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := that.Connection.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete keys under %s: %w", prefix, err)
	}

	return nil
}

func (that *RedisStorage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("failed to close Redis connection: %w", err)
	}

	return nil
}
