package repository

import (
	"testing"

	"github.com/rocketscienceinc/pokemonou-backend/internal/pursuit"
	"github.com/rocketscienceinc/pokemonou-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_Append(t *testing.T) {
	ctx, st := suite.New(t)

	eventRepo := NewEventRepository(st.Storage.Connection, st.Prefix())

	// Given: two batches of events
	first := []pursuit.Event{
		{Seq: 1, Kind: pursuit.EventJoined, Agent: "ash", Text: "trainer ash joined"},
		{Seq: 2, Kind: pursuit.EventJoined, Agent: "pikachu", Text: "pokemon pikachu joined"},
	}
	second := []pursuit.Event{
		{Seq: 3, Kind: pursuit.EventMoved, Agent: "ash", Text: "trainer ash moved"},
	}

	// When: both are appended and an empty batch is ignored
	require.NoError(t, eventRepo.Append(ctx, first))
	require.NoError(t, eventRepo.Append(ctx, nil))
	require.NoError(t, eventRepo.Append(ctx, second))

	// Then: the list keeps order
	n, err := eventRepo.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	events, err := eventRepo.Range(ctx, 0, -1)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, 1, events[0].Seq)
	assert.Equal(t, pursuit.EventMoved, events[2].Kind)

	tail, err := eventRepo.Range(ctx, -1, -1)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, "trainer ash moved", tail[0].Text)
}
