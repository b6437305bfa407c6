package agent

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/pokemonou-backend/internal/entity"
	"github.com/rocketscienceinc/pokemonou-backend/internal/pursuit"
	"github.com/rocketscienceinc/pokemonou-backend/internal/usecase"
	"github.com/rocketscienceinc/pokemonou-backend/transport/websocket"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func startServer(t *testing.T, expected int) (*pursuit.Coordinator, string) {
	t.Helper()

	game, err := pursuit.New(pursuit.Options{
		BoardSize:       4,
		ExpectedEvaders: expected,
		Rand:            rand.New(rand.NewSource(11)),
	})
	require.NoError(t, err)

	server := websocket.New(discard, usecase.NewGameManager(discard, game), websocket.Options{})
	httpServer := httptest.NewServer(server.Handler())
	t.Cleanup(httpServer.Close)

	return game, "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/ws"
}

func dial(t *testing.T, ctx context.Context, url string) *Client {
	t.Helper()

	client, err := Dial(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestRunner_TrainerCatchesStillPokemon(t *testing.T) {
	// Given
	game, url := startServer(t, 1)
	_, err := game.Initialize("snorlax", entity.Evader)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	runner := NewRunner(discard, dial(t, ctx, url), Config{Name: "ash", Class: entity.Seeker, Turn: time.Millisecond})

	// When
	err = runner.Run(ctx)

	// Then
	require.NoError(t, err)
	assert.Equal(t, pursuit.StatusOver, game.GameStatus())

	owner, err := game.Captured("snorlax")
	require.NoError(t, err)
	assert.Equal(t, "ash", owner)

	var kinds []pursuit.EventKind
	for _, event := range game.EventsSince(0) {
		kinds = append(kinds, event.Kind)
	}
	assert.Contains(t, kinds, pursuit.EventPath)
	assert.Contains(t, kinds, pursuit.EventPokedex)
}

func TestRunner_PokemonStopsWhenCaptured(t *testing.T) {
	// Given
	game, url := startServer(t, 2)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	runner := NewRunner(discard, dial(t, ctx, url), Config{Name: "pikachu", Class: entity.Evader, Turn: time.Hour})
	require.NoError(t, runner.initialize(ctx))

	reg, err := game.Initialize("ash", entity.Seeker)
	require.NoError(t, err)

	pos := reg.Position
	for n := 0; n < 8; n++ {
		if pos == runner.Position() {
			break
		}
		pos, err = game.Move("ash", entity.Seeker, pos, Chase{}.Next(pos, runner.Position(), 4), reg.Icon)
		require.NoError(t, err)
	}
	require.Equal(t, runner.Position(), pos)

	caught, err := game.Capture("ash", runner.Position())
	require.NoError(t, err)
	require.Equal(t, "pikachu", caught)

	// When
	done, err := runner.turn(ctx)

	// Then
	require.NoError(t, err)
	assert.True(t, done)
}

func TestRunner_DuplicateNameIsFatal(t *testing.T) {
	// Given
	game, url := startServer(t, 1)
	_, err := game.Initialize("ash", entity.Seeker)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	runner := NewRunner(discard, dial(t, ctx, url), Config{Name: "ash", Class: entity.Seeker})

	// When
	err = runner.Run(ctx)

	// Then
	require.ErrorIs(t, err, ErrNameTaken)
}
