package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	gorilla "github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/rocketscienceinc/pokemonou-backend/internal/entity"
	"github.com/rocketscienceinc/pokemonou-backend/internal/metrics"
	"github.com/rocketscienceinc/pokemonou-backend/internal/protocol"
	"github.com/rocketscienceinc/pokemonou-backend/internal/pursuit"
)

const (
	readLimit    = 64 << 10
	writeTimeout = 10 * time.Second
)

type uGame interface {
	Initialize(name string, class entity.Class) (pursuit.Registration, error)
	CheckBoard(class entity.Class, pos entity.Position) (entity.Position, error)
	Move(name string, class entity.Class, from, target entity.Position, icon string) (entity.Position, error)
	Capture(seeker string, pos entity.Position) (string, error)
	Captured(evader string) (string, error)
	ShowPath(name string, class entity.Class) error
	ShowPokedex(seeker string) error
	GameStatus() pursuit.Status
	BoardSize() int
}

type handlerFunc func(ctx context.Context, payload json.RawMessage) (protocol.Response, error)

type Options struct {
	// RequestsPerSecond and Burst limit each connection. Zero disables the limit.
	RequestsPerSecond float64
	Burst             int
}

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	opts     Options
	upgrader gorilla.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame, opts Options) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		opts:   opts,
		upgrader: gorilla.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// agents are not browsers
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	server.handlers = map[string]handlerFunc{
		protocol.ActionInitialize:  server.handleInitialize,
		protocol.ActionCheckBoard:  server.handleCheckBoard,
		protocol.ActionMove:        server.handleMove,
		protocol.ActionCapture:     server.handleCapture,
		protocol.ActionCaptured:    server.handleCaptured,
		protocol.ActionShowPath:    server.handleShowPath,
		protocol.ActionShowPokedex: server.handleShowPokedex,
		protocol.ActionGameStatus:  server.handleGameStatus,
	}

	return server
}

func (that *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/ws", that.upgradeToWebSocket)

	return router
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket", "request_id", middleware.GetReqID(req.Context()))

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	metrics.ConnectionOpened()
	defer metrics.ConnectionClosed()

	log.Info("WebSocket connection established", "remote", req.RemoteAddr)

	if err = that.handleMessages(req.Context(), conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - answers one request at a time until the peer goes away.
func (that *Server) handleMessages(ctx context.Context, conn *gorilla.Conn) error {
	log := that.logger.With("method", "handleMessages")

	conn.SetReadLimit(readLimit)
	limiter := that.newLimiter()

	for {
		var message protocol.Message
		if err := conn.ReadJSON(&message); err != nil {
			if gorilla.IsCloseError(err, gorilla.CloseNormalClosure, gorilla.CloseGoingAway) {
				return nil
			}
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				log.Warn("failed to decode message", "error", err)
				if err = that.send(conn, "", protocol.Failure{Error: err.Error(), Code: protocol.CodeBadRequest}); err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		if limiter != nil && !limiter.Allow() {
			metrics.RateLimited()
			if err := limiter.Wait(ctx); err != nil {
				return fmt.Errorf("connection closed while throttled: %w", err)
			}
		}

		reply := that.dispatch(ctx, &message)
		if err := that.send(conn, message.Action, reply); err != nil {
			return err
		}
	}
}

func (that *Server) dispatch(ctx context.Context, message *protocol.Message) protocol.Response {
	handler, ok := that.handlers[message.Action]
	if !ok {
		that.logger.Warn("unknown action", "action", message.Action)
		return protocol.Failure{Error: fmt.Sprintf("unknown action %q", message.Action), Code: protocol.CodeUnknownAction}
	}

	started := time.Now()
	reply, err := handler(ctx, message.Payload)
	if err != nil {
		metrics.RecordRequest(message.Action, time.Since(started), err)
		return protocol.Failure{Error: err.Error(), Code: protocol.CodeBadRequest}
	}

	metrics.RecordRequest(message.Action, time.Since(started), reply.Err())

	return reply
}

func (that *Server) send(conn *gorilla.Conn, action string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err = conn.WriteJSON(protocol.Message{Action: action, Payload: raw}); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}

func (that *Server) newLimiter() *rate.Limiter {
	if that.opts.RequestsPerSecond <= 0 {
		return nil
	}

	burst := that.opts.Burst
	if burst <= 0 {
		burst = 1
	}

	return rate.NewLimiter(rate.Limit(that.opts.RequestsPerSecond), burst)
}
