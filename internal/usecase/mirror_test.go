package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/pokemonou-backend/internal/pursuit"
	mockedUseCase "github.com/rocketscienceinc/pokemonou-backend/mocks/usecase"
)

var errRedisDown = errors.New("redis down")

func TestMirror_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("Pushes new events and advances the cursor", func(t *testing.T) {
		// Given: two new events and a snapshot
		source := mockedUseCase.NewMocksnapshotSourceDep(t)
		events := mockedUseCase.NewMockeventRepoDep(t)
		board := mockedUseCase.NewMockboardRepoDep(t)
		mirror := NewMirror(discard, source, events, board)

		batch := []pursuit.Event{{Seq: 1, Text: "a"}, {Seq: 2, Text: "b"}}
		snap := pursuit.Snapshot{Size: 4, LastSeq: 2}

		source.EXPECT().EventsSince(0).Return(batch).Once()
		source.EXPECT().EventsSince(2).Return([]pursuit.Event(nil)).Once()
		source.EXPECT().Snapshot().Return(snap).Twice()
		events.EXPECT().Append(ctx, batch).Return(nil).Once()
		events.EXPECT().Append(ctx, []pursuit.Event(nil)).Return(nil).Once()
		board.EXPECT().
			Save(ctx, mock.MatchedBy(func(s *pursuit.Snapshot) bool { return s.LastSeq == 2 })).
			Return(nil).
			Twice()

		// When: syncing twice
		require.NoError(t, mirror.Sync(ctx))
		require.NoError(t, mirror.Sync(ctx))

		// Then: the second sync asked only for newer events
		assert.Equal(t, 2, mirror.cursor)
	})

	t.Run("Keeps the cursor when the push fails", func(t *testing.T) {
		// Given: an event store that is down once
		source := mockedUseCase.NewMocksnapshotSourceDep(t)
		events := mockedUseCase.NewMockeventRepoDep(t)
		board := mockedUseCase.NewMockboardRepoDep(t)
		mirror := NewMirror(discard, source, events, board)

		batch := []pursuit.Event{{Seq: 1, Text: "a"}}
		source.EXPECT().EventsSince(0).Return(batch).Twice()
		events.EXPECT().Append(ctx, batch).Return(errRedisDown).Once()
		events.EXPECT().Append(ctx, batch).Return(nil).Once()
		source.EXPECT().Snapshot().Return(pursuit.Snapshot{}).Once()
		board.EXPECT().Save(ctx, mock.Anything).Return(nil).Once()

		// When: the first sync fails and the second succeeds
		err := mirror.Sync(ctx)
		require.ErrorIs(t, err, errRedisDown)
		require.NoError(t, mirror.Sync(ctx))

		// Then: the same batch was retried
		assert.Equal(t, 1, mirror.cursor)
	})
}
