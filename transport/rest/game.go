package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/pokemonou-backend/internal/pursuit"
	"github.com/rocketscienceinc/pokemonou-backend/internal/repository"
)

const (
	sourceMemory = "memory"
	sourceRedis  = "redis"
)

var (
	errBadSource      = errors.New("source must be memory or redis")
	errBadSince       = errors.New("since must be a non-negative integer")
	errMirrorDisabled = errors.New("redis mirror is disabled")
)

type statusResponse struct {
	Status   pursuit.Status `json:"status"`
	Captured int            `json:"captured"`
	Expected int            `json:"expected"`
}

type eventsResponse struct {
	Events []pursuit.Event `json:"events"`
	Next   int             `json:"next"`
}

// getBoard - returns the live board, or the copy last mirrored to redis.
func (that *handlers) getBoard(ctx echo.Context) error {
	fromRedis, err := that.fromRedis(ctx)
	if err != nil {
		return err
	}

	if !fromRedis {
		return ctx.JSON(http.StatusOK, that.game.Snapshot())
	}

	snapshot, err := that.board.Get(ctx.Request().Context())
	if errors.Is(err, repository.ErrSnapshotNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		that.logger.Error("failed to read mirrored board", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// getEvents - returns log entries after the ?since= sequence number.
func (that *handlers) getEvents(ctx echo.Context) error {
	fromRedis, err := that.fromRedis(ctx)
	if err != nil {
		return err
	}

	since := 0
	if raw := ctx.QueryParam("since"); raw != "" {
		since, err = strconv.Atoi(raw)
		if err != nil || since < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, errBadSince.Error())
		}
	}

	var events []pursuit.Event
	if fromRedis {
		events, err = that.mirroredEvents(ctx, since)
		if err != nil {
			that.logger.Error("failed to read mirrored log", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
		}
	} else {
		events = that.game.EventsSince(since)
	}

	next := since
	if len(events) > 0 {
		next = events[len(events)-1].Seq
	}

	return ctx.JSON(http.StatusOK, eventsResponse{Events: events, Next: next})
}

// mirroredEvents reads from the redis list, where index i holds sequence i+1.
func (that *handlers) mirroredEvents(ctx echo.Context, since int) ([]pursuit.Event, error) {
	reqCtx := ctx.Request().Context()

	n, err := that.events.Len(reqCtx)
	if err != nil {
		return nil, err
	}

	if int64(since) >= n {
		return nil, nil
	}

	return that.events.Range(reqCtx, int64(since), -1)
}

func (that *handlers) getStatus(ctx echo.Context) error {
	snapshot := that.game.Snapshot()

	return ctx.JSON(http.StatusOK, statusResponse{
		Status:   snapshot.Status,
		Captured: snapshot.Captured,
		Expected: snapshot.Expected,
	})
}

func (that *handlers) fromRedis(ctx echo.Context) (bool, error) {
	switch ctx.QueryParam("source") {
	case "", sourceMemory:
		return false, nil
	case sourceRedis:
		if that.events == nil || that.board == nil {
			return false, echo.NewHTTPError(http.StatusNotFound, errMirrorDisabled.Error())
		}
		return true, nil
	default:
		return false, echo.NewHTTPError(http.StatusBadRequest, errBadSource.Error())
	}
}
