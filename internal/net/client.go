package net

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/gorilla/websocket"
)

// Watch connects to a hub's /ws endpoint and calls fn for every snapshot
// until ctx is done or the connection drops. It returns nil when ctx ends it.
func Watch(ctx context.Context, url string, fn func(Message)) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", url, err)
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("read from %s: %w", url, err)
		}
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WATCH] Ignoring malformed message: %v", err)
			continue
		}
		if msg.Type != MessagePaths {
			continue
		}
		fn(msg)
	}
}
