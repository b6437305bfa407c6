package websocket

import (
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/pokemonou-backend/internal/entity"
	"github.com/rocketscienceinc/pokemonou-backend/internal/protocol"
	"github.com/rocketscienceinc/pokemonou-backend/internal/pursuit"
	"github.com/rocketscienceinc/pokemonou-backend/internal/usecase"
)

func newTestServer(t *testing.T, opts Options) *gorilla.Conn {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	game, err := pursuit.New(pursuit.Options{
		BoardSize:       5,
		ExpectedEvaders: 1,
		Rand:            rand.New(rand.NewSource(7)),
	})
	require.NoError(t, err)

	server := New(logger, usecase.NewGameManager(logger, game), opts)

	httpServer := httptest.NewServer(server.Handler())
	t.Cleanup(httpServer.Close)

	url := "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/ws"
	conn, _, err := gorilla.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func call(t *testing.T, conn *gorilla.Conn, action string, req, resp any) {
	t.Helper()

	raw, err := json.Marshal(req)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(protocol.Message{Action: action, Payload: raw}))

	var reply protocol.Message
	require.NoError(t, conn.ReadJSON(&reply))
	require.NoError(t, json.Unmarshal(reply.Payload, resp))
}

func TestServer_Actions(t *testing.T) {
	conn := newTestServer(t, Options{})

	t.Run("initialize registers an agent and reports the board size", func(t *testing.T) {
		// Given
		req := protocol.InitializeRequest{Identity: protocol.Identity{Name: "ash", Class: entity.Seeker}}

		// When
		var resp protocol.InitializeResponse
		call(t, conn, protocol.ActionInitialize, req, &resp)

		// Then
		require.NoError(t, resp.Err())
		assert.True(t, resp.Registered)
		assert.NotEmpty(t, resp.Icon)
		assert.Equal(t, 5, resp.BoardSize)
		assert.True(t, resp.Position.IsValid())
	})

	t.Run("duplicate initialize returns the invalid position", func(t *testing.T) {
		// Given
		req := protocol.InitializeRequest{Identity: protocol.Identity{Name: "ash", Class: entity.Seeker}}

		// When
		var resp protocol.InitializeResponse
		call(t, conn, protocol.ActionInitialize, req, &resp)

		// Then
		require.NoError(t, resp.Err())
		assert.False(t, resp.Registered)
		assert.Equal(t, entity.InvalidPosition, resp.Position)
	})

	t.Run("invalid class is a bad request", func(t *testing.T) {
		// Given
		req := protocol.InitializeRequest{Identity: protocol.Identity{Name: "gary", Class: "rival"}}

		// When
		var resp protocol.InitializeResponse
		call(t, conn, protocol.ActionInitialize, req, &resp)

		// Then
		require.Error(t, resp.Err())
		assert.Equal(t, protocol.CodeBadRequest, resp.Code)
	})

	t.Run("check board without opponents echoes the position", func(t *testing.T) {
		// Given
		pos := entity.Position{X: 2, Y: 3}

		// When
		var resp protocol.CheckBoardResponse
		call(t, conn, protocol.ActionCheckBoard, protocol.CheckBoardRequest{
			Identity: protocol.Identity{Name: "ash", Class: entity.Seeker},
			Position: pos,
		}, &resp)

		// Then
		require.NoError(t, resp.Err())
		assert.Equal(t, pos, resp.Position)
	})

	t.Run("captured for an unknown pokemon is not found", func(t *testing.T) {
		// When
		var resp protocol.CapturedResponse
		call(t, conn, protocol.ActionCaptured, protocol.CapturedRequest{Name: "mew"}, &resp)

		// Then
		assert.Equal(t, protocol.CodeNotFound, resp.Code)
	})

	t.Run("capture by a pokemon is the wrong class", func(t *testing.T) {
		// Given
		var reg protocol.InitializeResponse
		call(t, conn, protocol.ActionInitialize, protocol.InitializeRequest{
			Identity: protocol.Identity{Name: "pikachu", Class: entity.Evader},
		}, &reg)
		require.True(t, reg.Registered)

		// When
		var resp protocol.CaptureResponse
		call(t, conn, protocol.ActionCapture, protocol.CaptureRequest{Name: "pikachu", Position: reg.Position}, &resp)

		// Then
		assert.Equal(t, protocol.CodeWrongClass, resp.Code)
	})

	t.Run("game status is active while pokemon roam", func(t *testing.T) {
		// When
		var resp protocol.GameStatusResponse
		call(t, conn, protocol.ActionGameStatus, protocol.GameStatusRequest{}, &resp)

		// Then
		assert.Equal(t, pursuit.StatusActive, resp.Status)
	})

	t.Run("unknown action keeps the connection open", func(t *testing.T) {
		// When
		var resp protocol.AckResponse
		call(t, conn, "teleport", struct{}{}, &resp)

		// Then
		assert.Equal(t, protocol.CodeUnknownAction, resp.Code)

		var status protocol.GameStatusResponse
		call(t, conn, protocol.ActionGameStatus, protocol.GameStatusRequest{}, &status)
		assert.Equal(t, pursuit.StatusActive, status.Status)
	})
}

func TestServer_MalformedFrame(t *testing.T) {
	conn := newTestServer(t, Options{})

	// Given
	require.NoError(t, conn.WriteMessage(gorilla.TextMessage, []byte("{not json")))

	// When
	var reply protocol.Message
	require.NoError(t, conn.ReadJSON(&reply))

	// Then
	var failure protocol.Failure
	require.NoError(t, json.Unmarshal(reply.Payload, &failure))
	assert.Equal(t, protocol.CodeBadRequest, failure.Code)
}

func TestServer_RateLimitedConnectionIsDelayedNotDropped(t *testing.T) {
	conn := newTestServer(t, Options{RequestsPerSecond: 100, Burst: 1})

	for n := 0; n < 3; n++ {
		var resp protocol.GameStatusResponse
		call(t, conn, protocol.ActionGameStatus, protocol.GameStatusRequest{}, &resp)
		assert.Equal(t, pursuit.StatusActive, resp.Status)
	}
}

func TestServer_Routes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	game, err := pursuit.New(pursuit.Options{BoardSize: 3, ExpectedEvaders: 1})
	require.NoError(t, err)

	handler := New(logger, usecase.NewGameManager(logger, game), Options{}).Handler()

	t.Run("plain GET is refused by the upgrader", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("other methods are not allowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ws", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("unknown paths are not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/game", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
