package render

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/pokemonou-backend/internal/entity"
	"github.com/rocketscienceinc/pokemonou-backend/internal/pursuit"
)

func TestDraw(t *testing.T) {
	// Given
	snap := pursuit.Snapshot{
		Cells: [][]string{
			{"", "A"},
			{"B", ""},
		},
		Status:   pursuit.StatusActive,
		Captured: 1,
		Expected: 3,
	}

	// When
	var buf bytes.Buffer
	Draw(&buf, snap)

	// Then
	assert.Equal(t, "· A\nB ·\nstatus: active, captured 1/3\n", buf.String())
}

func newGame(t *testing.T) *pursuit.Coordinator {
	t.Helper()

	game, err := pursuit.New(pursuit.Options{
		BoardSize:       3,
		ExpectedEvaders: 1,
		Rand:            rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)

	return game
}

func TestRenderer_Frame(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("prints each event once", func(t *testing.T) {
		// Given
		game := newGame(t)
		var out bytes.Buffer
		renderer := New(logger, game, &out)

		_, err := game.Initialize("ash", entity.Seeker)
		require.NoError(t, err)

		// When
		renderer.Frame()
		first := out.String()
		out.Reset()
		renderer.Frame()
		second := out.String()

		// Then
		assert.Contains(t, first, "[1] ")
		assert.NotContains(t, second, "[1] ")
		assert.Equal(t, 4, strings.Count(second, "\n"))
	})

	t.Run("run draws a final frame on cancel", func(t *testing.T) {
		// Given
		game := newGame(t)
		var out bytes.Buffer
		renderer := New(logger, game, &out)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When
		renderer.Run(ctx, time.Hour)

		// Then
		assert.Contains(t, out.String(), "status: active, captured 0/1")
	})
}

type laggingSource struct {
	snap   pursuit.Snapshot
	events []pursuit.Event
}

func (that *laggingSource) Snapshot() pursuit.Snapshot {
	return that.snap
}

func (that *laggingSource) EventsSince(seq int) []pursuit.Event {
	var out []pursuit.Event
	for _, event := range that.events {
		if event.Seq > seq {
			out = append(out, event)
		}
	}

	return out
}

func TestRenderer_FrameStopsAtSnapshot(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Given: a log that grew past the snapshot between the two reads
	source := &laggingSource{
		snap: pursuit.Snapshot{Cells: [][]string{{""}}, Status: pursuit.StatusActive, LastSeq: 1},
		events: []pursuit.Event{
			{Seq: 1, Text: "ash joined"},
			{Seq: 2, Text: "ash moved"},
		},
	}
	var out bytes.Buffer
	renderer := New(logger, source, &out)

	// When: drawing a frame, then another once the board has caught up
	renderer.Frame()
	first := out.String()

	out.Reset()
	source.snap.LastSeq = 2
	renderer.Frame()
	second := out.String()

	// Then: each event shows up with the board it belongs to, once
	assert.Contains(t, first, "[1] ash joined")
	assert.NotContains(t, first, "ash moved")
	assert.NotContains(t, second, "ash joined")
	assert.Contains(t, second, "[2] ash moved")
}
