package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/pokemonou-backend/internal/entity"
	"github.com/rocketscienceinc/pokemonou-backend/internal/protocol"
)

func decode(payload json.RawMessage, req any) error {
	if len(payload) == 0 {
		return fmt.Errorf("payload is required")
	}

	if err := json.Unmarshal(payload, req); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return nil
}

func parseIdentity(id protocol.Identity) (entity.Class, error) {
	if id.Name == "" {
		return "", fmt.Errorf("name is required")
	}

	return entity.ParseClass(string(id.Class))
}

func (that *Server) handleInitialize(_ context.Context, payload json.RawMessage) (protocol.Response, error) {
	var req protocol.InitializeRequest
	if err := decode(payload, &req); err != nil {
		return nil, err
	}

	class, err := parseIdentity(req.Identity)
	if err != nil {
		return nil, err
	}

	reg, err := that.uGame.Initialize(req.Name, class)

	return protocol.InitializeResponse{
		Icon:       reg.Icon,
		Position:   reg.Position,
		Registered: reg.Registered,
		BoardSize:  that.uGame.BoardSize(),
		Failure:    protocol.FailureFrom(err),
	}, nil
}

func (that *Server) handleCheckBoard(_ context.Context, payload json.RawMessage) (protocol.Response, error) {
	var req protocol.CheckBoardRequest
	if err := decode(payload, &req); err != nil {
		return nil, err
	}

	class, err := parseIdentity(req.Identity)
	if err != nil {
		return nil, err
	}

	target, err := that.uGame.CheckBoard(class, req.Position)

	return protocol.CheckBoardResponse{Position: target, Failure: protocol.FailureFrom(err)}, nil
}

func (that *Server) handleMove(_ context.Context, payload json.RawMessage) (protocol.Response, error) {
	var req protocol.MoveRequest
	if err := decode(payload, &req); err != nil {
		return nil, err
	}

	class, err := parseIdentity(req.Identity)
	if err != nil {
		return nil, err
	}

	pos, err := that.uGame.Move(req.Name, class, req.From, req.To, req.Icon)

	return protocol.MoveResponse{Position: pos, Failure: protocol.FailureFrom(err)}, nil
}

func (that *Server) handleCapture(_ context.Context, payload json.RawMessage) (protocol.Response, error) {
	var req protocol.CaptureRequest
	if err := decode(payload, &req); err != nil {
		return nil, err
	}

	caught, err := that.uGame.Capture(req.Name, req.Position)

	return protocol.CaptureResponse{Pokemon: caught, Failure: protocol.FailureFrom(err)}, nil
}

func (that *Server) handleCaptured(_ context.Context, payload json.RawMessage) (protocol.Response, error) {
	var req protocol.CapturedRequest
	if err := decode(payload, &req); err != nil {
		return nil, err
	}

	owner, err := that.uGame.Captured(req.Name)

	return protocol.CapturedResponse{Trainer: owner, Failure: protocol.FailureFrom(err)}, nil
}

func (that *Server) handleShowPath(_ context.Context, payload json.RawMessage) (protocol.Response, error) {
	var req protocol.ShowPathRequest
	if err := decode(payload, &req); err != nil {
		return nil, err
	}

	class, err := parseIdentity(req.Identity)
	if err != nil {
		return nil, err
	}

	err = that.uGame.ShowPath(req.Name, class)

	return protocol.AckResponse{OK: err == nil, Failure: protocol.FailureFrom(err)}, nil
}

func (that *Server) handleShowPokedex(_ context.Context, payload json.RawMessage) (protocol.Response, error) {
	var req protocol.ShowPokedexRequest
	if err := decode(payload, &req); err != nil {
		return nil, err
	}

	err := that.uGame.ShowPokedex(req.Name)

	return protocol.AckResponse{OK: err == nil, Failure: protocol.FailureFrom(err)}, nil
}

func (that *Server) handleGameStatus(_ context.Context, _ json.RawMessage) (protocol.Response, error) {
	return protocol.GameStatusResponse{Status: that.uGame.GameStatus()}, nil
}
