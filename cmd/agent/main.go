package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/pokemonou-backend/internal/agent"
	"github.com/rocketscienceinc/pokemonou-backend/internal/entity"
)

func main() {
	var (
		server   = flag.String("server", "ws://localhost:50051/ws", "game server websocket url")
		name     = flag.String("name", "", "agent name, must be unique per class")
		class    = flag.String("class", "", "trainer or pokemon, defaults to the hostname prefix")
		turn     = flag.Duration("turn", agent.DefaultTurn, "delay between turns")
		logLevel = flag.String("log-level", "info", "debug, info, warn or error")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(*logLevel)}))

	hostname, _ := os.Hostname()

	role, err := resolveClass(*class, hostname)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *name == "" {
		*name = defaultName(role, hostname)
	}

	if err = run(logger, *server, agent.Config{Name: *name, Class: role, Turn: *turn}); err != nil {
		logger.Error("agent stopped", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, server string, conf agent.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := agent.Dial(dialCtx, server)
	if err != nil {
		return err
	}
	defer client.Close()

	err = agent.NewRunner(logger, client, conf).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// resolveClass prefers the flag and falls back to a hostname like trainer1 or pokemon3.
func resolveClass(flagValue, hostname string) (entity.Class, error) {
	if flagValue != "" {
		return entity.ParseClass(flagValue)
	}

	for _, class := range []entity.Class{entity.Seeker, entity.Evader} {
		if strings.HasPrefix(strings.ToLower(hostname), string(class)) {
			return class, nil
		}
	}

	return "", fmt.Errorf("cannot tell the class from hostname %q, pass -class", hostname)
}

func defaultName(class entity.Class, hostname string) string {
	if strings.HasPrefix(strings.ToLower(hostname), string(class)) {
		return hostname
	}

	return fmt.Sprintf("%s-%s", class, uuid.NewString()[:8])
}

func parseLevel(raw string) slog.Level {
	switch raw {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
