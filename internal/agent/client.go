// Package agent drives one trainer or pokemon against a game server.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	gorilla "github.com/gorilla/websocket"

	"github.com/rocketscienceinc/pokemonou-backend/internal/protocol"
)

// Client makes one request at a time over a websocket connection.
type Client struct {
	mu   sync.Mutex
	conn *gorilla.Conn
}

func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := gorilla.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", url, err)
	}

	return &Client{conn: conn}, nil
}

func (that *Client) Close() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	_ = that.conn.WriteControl(
		gorilla.CloseMessage,
		gorilla.FormatCloseMessage(gorilla.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)

	return that.conn.Close()
}

// Call sends req under action and decodes the reply into resp. An error
// carried in the reply is returned as *protocol.RemoteError.
func (that *Client) Call(ctx context.Context, action string, req any, resp protocol.Response) error {
	raw, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", action, err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if deadline, ok := ctx.Deadline(); ok {
		_ = that.conn.SetWriteDeadline(deadline)
		_ = that.conn.SetReadDeadline(deadline)
	} else {
		_ = that.conn.SetWriteDeadline(time.Time{})
		_ = that.conn.SetReadDeadline(time.Time{})
	}

	if err = that.conn.WriteJSON(protocol.Message{Action: action, Payload: raw}); err != nil {
		return fmt.Errorf("failed to send %s: %w", action, err)
	}

	var reply protocol.Message
	if err = that.conn.ReadJSON(&reply); err != nil {
		return fmt.Errorf("failed to read %s reply: %w", action, err)
	}

	if err = json.Unmarshal(reply.Payload, resp); err != nil {
		return fmt.Errorf("failed to unmarshal %s reply: %w", action, err)
	}

	return resp.Err()
}
