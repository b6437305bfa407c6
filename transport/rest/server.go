// Package rest exposes a read-only HTTP view of the running game for
// renderers and operators. Agents never use it.
package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rocketscienceinc/pokemonou-backend/internal/metrics"
	"github.com/rocketscienceinc/pokemonou-backend/internal/pursuit"
)

type uGame interface {
	Snapshot() pursuit.Snapshot
	EventsSince(seq int) []pursuit.Event
}

type eventStore interface {
	Range(ctx context.Context, start, stop int64) ([]pursuit.Event, error)
	Len(ctx context.Context) (int64, error)
}

type boardStore interface {
	Get(ctx context.Context) (*pursuit.Snapshot, error)
}

type RouterConfig struct {
	Logger *slog.Logger
	Game   uGame

	// Events and Board serve ?source=redis. Nil when the mirror is off.
	Events eventStore
	Board  boardStore

	// CORSOrigins defaults to localhost on any port.
	CORSOrigins []string

	DisableLogging bool
}

type handlers struct {
	logger *slog.Logger
	game   uGame

	events eventStore
	board  boardStore
}

// NewRouter builds the routes without starting anything.
func NewRouter(cfg RouterConfig) *echo.Echo {
	log := cfg.Logger.With("component", "rest")

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.Use(middleware.RequestID())
	if !cfg.DisableLogging {
		router.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogMethod:    true,
			LogURI:       true,
			LogStatus:    true,
			LogLatency:   true,
			LogRequestID: true,
			LogError:     true,
			LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
				log.Info("request",
					"method", v.Method, "uri", v.URI, "status", v.Status,
					"latency", v.Latency, "request_id", v.RequestID, "error", v.Error)
				return nil
			},
		}))
	}
	router.Use(middleware.Recover())

	origins := cfg.CORSOrigins
	if origins == nil {
		origins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}
	router.Use(echo.WrapMiddleware(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})))

	h := &handlers{
		logger: log,
		game:   cfg.Game,
		events: cfg.Events,
		board:  cfg.Board,
	}

	router.GET("/ping", h.ping)
	router.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := router.Group("/api")
	api.GET("/board", h.getBoard)
	api.GET("/log", h.getEvents)
	api.GET("/status", h.getStatus)

	return router
}

// Start - serves handler on port until ctx is done.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
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
