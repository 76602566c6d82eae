package client

import (
	"context"
	"fmt"
	"strings"

	"hr-dashboard-api/pkg/models"

	"github.com/gorilla/websocket"
)

// Watch subscribes to GET /ws and calls fn for each change event until ctx is done,
// the connection fails, or fn returns an error.
func (c *Client) Watch(ctx context.Context, fn func(models.Event) error) error {
	wsURL, err := websocketURL(c.BaseURL)
	if err != nil {
		return err
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL+"/ws", nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", wsURL, err)
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		var evt models.Event
		if err := conn.ReadJSON(&evt); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		if err := fn(evt); err != nil {
			return err
		}
	}
}

func websocketURL(base string) (string, error) {
	switch {
	case strings.HasPrefix(base, "https://"):
		return "wss://" + strings.TrimPrefix(base, "https://"), nil
	case strings.HasPrefix(base, "http://"):
		return "ws://" + strings.TrimPrefix(base, "http://"), nil
	default:
		return "", fmt.Errorf("unsupported base url %q", base)
	}
}
