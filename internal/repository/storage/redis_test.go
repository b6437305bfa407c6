package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/pokemonou-backend/internal/config"
	"github.com/rocketscienceinc/pokemonou-backend/internal/repository/storage"
	"github.com/rocketscienceinc/pokemonou-backend/testing/suite"
)

func TestRedisStorage_DropPrefix(t *testing.T) {
	ctx, st := suite.New(t)
	conn := st.Storage.Connection

	// Given: keys from an earlier game and from another prefix
	require.NoError(t, conn.Set(ctx, st.Prefix()+":board", "{}", 0).Err())
	require.NoError(t, conn.RPush(ctx, st.Prefix()+":log", "a", "b").Err())
	require.NoError(t, conn.Set(ctx, "other:board", "{}", 0).Err())

	// When: the prefix is dropped
	require.NoError(t, st.Storage.DropPrefix(ctx, st.Prefix()))

	// Then: only the other prefix is left
	n, err := conn.Exists(ctx, st.Prefix()+":board", st.Prefix()+":log").Result()
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = conn.Exists(ctx, "other:board").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestNewRedisStorage_Unreachable(t *testing.T) {
	// Given: nothing listening on the port
	conf := config.Redis{Host: "127.0.0.1", Port: "1", DialTimeout: 100 * time.Millisecond}

	// When: connecting
	_, err := storage.NewRedisStorage(context.Background(), conf)

	// Then: the address is part of the error
	require.Error(t, err)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}
