// Package protocol defines the messages exchanged between agents and the
// server. Each action has its own request and response type.
package protocol

import (
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/pokemonou-backend/internal/apperror"
	"github.com/rocketscienceinc/pokemonou-backend/internal/entity"
	"github.com/rocketscienceinc/pokemonou-backend/internal/pursuit"
)

const (
	ActionInitialize  = "initialize"
	ActionCheckBoard  = "check_board"
	ActionMove        = "move"
	ActionCapture     = "capture"
	ActionCaptured    = "captured"
	ActionShowPath    = "show_path"
	ActionShowPokedex = "show_pokedex"
	ActionGameStatus  = "game_status"
)

// Message is one frame on the wire, in either direction.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Identity struct {
	Name  string       `json:"name"`
	Class entity.Class `json:"class"`
}

// Failure is embedded in every response.
type Failure struct {
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}

func (that Failure) Err() error {
	if that.Error == "" {
		return nil
	}

	return &RemoteError{Code: that.Code, Message: that.Error}
}

type Response interface {
	Err() error
}

type InitializeRequest struct {
	Identity
}

type InitializeResponse struct {
	Icon       string          `json:"icon"`
	Position   entity.Position `json:"position"`
	Registered bool            `json:"registered"`
	BoardSize  int             `json:"board_size"`
	Failure
}

type CheckBoardRequest struct {
	Identity
	Position entity.Position `json:"position"`
}

type CheckBoardResponse struct {
	Position entity.Position `json:"position"`
	Failure
}

type MoveRequest struct {
	Identity
	From entity.Position `json:"from"`
	To   entity.Position `json:"to"`
	Icon string          `json:"icon"`
}

type MoveResponse struct {
	Position entity.Position `json:"position"`
	Failure
}

type CaptureRequest struct {
	Name     string          `json:"name"`
	Position entity.Position `json:"position"`
}

type CaptureResponse struct {
	Pokemon string `json:"pokemon"`
	Failure
}

type CapturedRequest struct {
	Name string `json:"name"`
}

type CapturedResponse struct {
	Trainer string `json:"trainer"`
	Failure
}

type ShowPathRequest struct {
	Identity
}

type ShowPokedexRequest struct {
	Name string `json:"name"`
}

type AckResponse struct {
	OK bool `json:"ok"`
	Failure
}

type GameStatusRequest struct {
	Identity
}

type GameStatusResponse struct {
	Status pursuit.Status `json:"status"`
	Failure
}

const (
	CodeBadRequest    = "bad_request"
	CodeUnknownAction = "unknown_action"
	CodeNotFound      = "not_found"
	CodeWrongClass    = "wrong_class"
	CodeInvalidClass  = "invalid_class"
	CodePoolExhausted = "pool_exhausted"
	CodeBoardFull     = "board_full"
	CodeInternal      = "internal"
)

// FailureFrom turns err into the response error fields.
func FailureFrom(err error) Failure {
	if err == nil {
		return Failure{}
	}

	return Failure{Error: err.Error(), Code: codeOf(err)}
}

func codeOf(err error) string {
	switch {
	case errors.Is(err, apperror.ErrPoolExhausted):
		return CodePoolExhausted
	case errors.Is(err, apperror.ErrBoardFull):
		return CodeBoardFull
	case errors.Is(err, apperror.ErrAgentNotFound):
		return CodeNotFound
	case errors.Is(err, apperror.ErrWrongClass), errors.Is(err, apperror.ErrIconMismatch):
		return CodeWrongClass
	case errors.Is(err, apperror.ErrInvalidClass), errors.Is(err, apperror.ErrEmptyName):
		return CodeInvalidClass
	default:
		return CodeInternal
	}
}

// RemoteError is what a client sees for a response carrying an error.
type RemoteError struct {
	Code    string
	Message string
}

func (that *RemoteError) Error() string {
	return that.Code + ": " + that.Message
}
