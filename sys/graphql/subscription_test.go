package graphql_test

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookline-admin/res/auth"
	"bookline-admin/sys/graphql"
)

type wsFrame struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// fakeSubscriptionServer speaks just enough of the graphql-ws
// subprotocol to drive the client: ack the init, then run script
// against the received start frame.
func fakeSubscriptionServer(t *testing.T, script func(t *testing.T, conn *websocket.Conn, start wsFrame)) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{Subprotocols: []string{"graphql-ws"}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		var init wsFrame
		if err := conn.ReadJSON(&init); err != nil {
			t.Errorf("reading init: %v", err)
			return
		}
		if init.Type != "connection_init" {
			t.Errorf("expected connection_init, got %q", init.Type)
			return
		}
		if err := conn.WriteJSON(wsFrame{Type: "connection_ack"}); err != nil {
			return
		}

		var start wsFrame
		if err := conn.ReadJSON(&start); err != nil {
			t.Errorf("reading start: %v", err)
			return
		}
		if start.Type != "start" {
			t.Errorf("expected start, got %q", start.Type)
			return
		}

		script(t, conn, start)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func subscriptionClient(t *testing.T, srv *httptest.Server) *graphql.Client {
	t.Helper()
	return graphql.New(&graphql.Config{
		Endpoint: srv.URL,
		Logger:   log.New(io.Discard, "", 0),
		Tokens:   auth.StaticToken("test-token"),
	})
}

func TestWatchReservations(t *testing.T) {
	srv := fakeSubscriptionServer(t, func(t *testing.T, conn *websocket.Conn, start wsFrame) {
		var payload struct {
			OperationName string                 `json:"operationName"`
			Variables     map[string]interface{} `json:"variables"`
		}
		require.NoError(t, json.Unmarshal(start.Payload, &payload))
		assert.Equal(t, "WatchReservations", payload.OperationName)
		assert.Equal(t, "hotel-1", payload.Variables["businessId"])

		// A keep-alive in the stream must be ignored.
		conn.WriteJSON(wsFrame{Type: "ka"})
		conn.WriteJSON(wsFrame{
			ID:   start.ID,
			Type: "data",
			Payload: json.RawMessage(`{"data":{"reservationChanged":{
				"id":"reservation-9","businessId":"hotel-1","status":"CONFIRMED",
				"checkIn":"2024-06-02","checkOut":"2024-06-05","partySize":2,
				"guest":{"id":"guest-1","firstName":"Ana","lastName":"Costa","email":"ana@example.com"}
			}}}`),
		})
		conn.WriteJSON(wsFrame{ID: start.ID, Type: "complete"})
	})

	client := subscriptionClient(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changes, err := client.WatchReservations(ctx, "hotel-1")
	require.NoError(t, err)

	reservation, ok := <-changes
	require.True(t, ok)
	assert.Equal(t, "reservation-9", reservation.ID)
	assert.Equal(t, "CONFIRMED", string(reservation.Status))
	assert.Equal(t, "2024-06-02", reservation.CheckIn.String())
	assert.Equal(t, "Ana", reservation.Guest.FirstName)

	// complete closes the stream
	_, ok = <-changes
	assert.False(t, ok)
}

func TestWatchReservations_CancelStopsStream(t *testing.T) {
	srv := fakeSubscriptionServer(t, func(t *testing.T, conn *websocket.Conn, start wsFrame) {
		// Hold the stream open until the client goes away.
		for {
			var frame wsFrame
			if err := conn.ReadJSON(&frame); err != nil {
				return
			}
			if frame.Type == "stop" {
				return
			}
		}
	})

	client := subscriptionClient(t, srv)

	ctx, cancel := context.WithCancel(context.Background())
	changes, err := client.WatchReservations(ctx, "hotel-1")
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-changes:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not close after cancellation")
	}
}

func TestWatchReservations_ConnectionRejected(t *testing.T) {
	upgrader := websocket.Upgrader{Subprotocols: []string{"graphql-ws"}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var init wsFrame
		if err := conn.ReadJSON(&init); err != nil {
			return
		}
		conn.WriteJSON(wsFrame{Type: "connection_error", Payload: json.RawMessage(`{"message":"no"}`)})
	}))
	t.Cleanup(srv.Close)

	client := subscriptionClient(t, srv)

	_, err := client.WatchReservations(context.Background(), "hotel-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection rejected")
}
