package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
)

// Message types of the graphql-ws subprotocol.
const (
	wsMsgConnectionInit  = "connection_init"
	wsMsgConnectionAck   = "connection_ack"
	wsMsgConnectionError = "connection_error"
	wsMsgKeepAlive       = "ka"
	wsMsgStart           = "start"
	wsMsgStop            = "stop"
	wsMsgData            = "data"
	wsMsgError           = "error"
	wsMsgComplete        = "complete"
)

const wsHandshakeTimeout = 10 * time.Second

type wsMessage struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type wsStartPayload struct {
	OperationName string                 `json:"operationName"`
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

// subscribe opens a graphql-ws connection for one operation and delivers
// each data payload on the returned channel. The channel closes when the
// server completes the subscription, an error frame arrives, or ctx is
// cancelled. Connection-level failures after setup are logged, not
// retried.
func (c *Client) subscribe(ctx context.Context, op Operation, variables map[string]interface{}) (<-chan json.RawMessage, error) {
	wsURL, err := websocketURL(c.endpoint)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	if err := c.authorize(ctx, header); err != nil {
		return nil, err
	}

	dialer := websocket.Dialer{
		Subprotocols:     []string{"graphql-ws"},
		HandshakeTimeout: wsHandshakeTimeout,
	}
	conn, _, err := dialer.DialContext(ctx, wsURL, header)
	if err != nil {
		return nil, fmt.Errorf("subscription %s: failed to connect: %w", op.Name, err)
	}

	if err := conn.WriteJSON(wsMessage{Type: wsMsgConnectionInit, Payload: json.RawMessage("{}")}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("subscription %s: init failed: %w", op.Name, err)
	}
	if err := awaitAck(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("subscription %s: %w", op.Name, err)
	}

	startPayload, err := json.Marshal(wsStartPayload{
		OperationName: op.Name,
		Query:         op.Document,
		Variables:     variables,
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("subscription %s: %w", op.Name, err)
	}
	if err := conn.WriteJSON(wsMessage{ID: "1", Type: wsMsgStart, Payload: startPayload}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("subscription %s: start failed: %w", op.Name, err)
	}

	events := make(chan json.RawMessage)

	// Closing the connection unblocks the blocked ReadJSON below.
	go func() {
		<-ctx.Done()
		conn.WriteJSON(wsMessage{ID: "1", Type: wsMsgStop})
		conn.Close()
	}()

	go func() {
		defer close(events)
		for {
			var msg wsMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if ctx.Err() == nil {
					c.logger.Printf("Subscription %s: connection closed: %s", op.Name, err)
				}
				return
			}

			switch msg.Type {
			case wsMsgKeepAlive:
				// ignore
			case wsMsgData:
				var envelope graphqlResponse
				if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
					c.logger.Printf("Subscription %s: malformed payload: %s", op.Name, err)
					continue
				}
				if len(envelope.Errors) > 0 {
					c.logger.Printf("Subscription %s: %s", op.Name, envelope.Errors.Error())
					continue
				}
				select {
				case events <- envelope.Data:
				case <-ctx.Done():
					return
				}
			case wsMsgError:
				c.logger.Printf("Subscription %s: server error: %s", op.Name, msg.Payload)
				return
			case wsMsgComplete:
				return
			}
		}
	}()

	return events, nil
}

func awaitAck(conn *websocket.Conn) error {
	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return fmt.Errorf("no connection ack: %w", err)
		}
		switch msg.Type {
		case wsMsgConnectionAck:
			return nil
		case wsMsgKeepAlive:
			// tolerated before the ack
		case wsMsgConnectionError:
			return fmt.Errorf("connection rejected: %s", msg.Payload)
		default:
			return fmt.Errorf("unexpected message %q before ack", msg.Type)
		}
	}
}

func websocketURL(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
		// already a websocket URL
	default:
		return "", fmt.Errorf("invalid endpoint %q: unsupported scheme %s", endpoint, u.Scheme)
	}
	return u.String(), nil
}
