package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/pokemonou-backend/internal/config"
	"github.com/rocketscienceinc/pokemonou-backend/internal/pursuit"
	"github.com/rocketscienceinc/pokemonou-backend/internal/render"
	"github.com/rocketscienceinc/pokemonou-backend/internal/repository"
	"github.com/rocketscienceinc/pokemonou-backend/internal/repository/storage"
	"github.com/rocketscienceinc/pokemonou-backend/internal/usecase"
	"github.com/rocketscienceinc/pokemonou-backend/transport/rest"
	"github.com/rocketscienceinc/pokemonou-backend/transport/websocket"
)

// GameOverGrace is how long agents get to send their final reports after the game ends.
const GameOverGrace = 3 * time.Second

// RunApp - runs the game server until a signal arrives or the game is over.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	game, err := pursuit.New(pursuit.Options{
		BoardSize:            conf.Game.BoardSize,
		ExpectedEvaders:      conf.Game.ExpectedPokemon,
		SeekerIcons:          conf.Game.TrainerIcons,
		EvaderIcons:          conf.Game.PokemonIcons,
		MaxPlacementAttempts: conf.Game.MaxPlacementAttempts,
	})
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	gameUseCase := usecase.NewGameManager(logger, game)

	var (
		eventRepo repository.EventRepository
		boardRepo repository.BoardRepository
	)

	if conf.Redis.Enabled {
		redisStorage, redisErr := storage.NewRedisStorage(ctx, conf.Redis)
		if redisErr != nil {
			return fmt.Errorf("could not connect to redis storage: %w", redisErr)
		}

		defer func() {
			if closeErr := redisStorage.Close(); closeErr != nil {
				log.Error("could not close redis storage", "error", closeErr)
			}
		}()

		if dropErr := redisStorage.DropPrefix(ctx, conf.Redis.KeyPrefix); dropErr != nil {
			return fmt.Errorf("could not clear previous mirror: %w", dropErr)
		}

		eventRepo = repository.NewEventRepository(redisStorage.Connection, conf.Redis.KeyPrefix)
		boardRepo = repository.NewBoardRepository(redisStorage.Connection, conf.Redis.KeyPrefix)
		mirror := usecase.NewMirror(logger, gameUseCase, eventRepo, boardRepo)

		mirrorDone := make(chan struct{})
		go func() {
			defer close(mirrorDone)
			mirror.Run(ctx, conf.Redis.MirrorInterval)
		}()

		// final flush before the redis connection closes
		defer func() {
			cancel()
			<-mirrorDone
		}()
	}

	renderer := render.New(logger, gameUseCase, os.Stdout)
	go renderer.Run(ctx, conf.Game.RenderInterval)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		router := rest.NewRouter(rest.RouterConfig{
			Logger: logger,
			Game:   gameUseCase,
			Events: eventRepo,
			Board:  boardRepo,
		})
		if httpErr := rest.Start(ctx, conf.HTTPPort, router); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameUseCase, websocket.Options{
			RequestsPerSecond: conf.RateLimit.RequestsPerSecond,
			Burst:             conf.RateLimit.Burst,
		})
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-gameUseCase.Done():
		log.Info("Game over, shutting down after grace period", "grace", GameOverGrace)
		select {
		case <-time.After(GameOverGrace):
		case <-ctx.Done():
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
