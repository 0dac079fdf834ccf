package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"mlb-scores-service/internal/domain/games"
)

func dialHub(t *testing.T, ctx context.Context, hub *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(NewHandler(ctx, hub, nil))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("client count = %d, want %d", hub.ClientCount(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubBroadcastsScoreboard(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil, nil)
	go hub.Run(ctx)

	conn := dialHub(t, ctx, hub)
	waitForClients(t, hub, 1)

	sb := games.NewScoreboardResponse("2025-07-04", nil)
	sb.Games = append(sb.Games, games.GameSummary{ID: 745804, Status: "Final", IsFinal: true})
	hub.Broadcast(sb)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event Event
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("read event: %v", err)
	}
	if event.Type != "scoreboard" {
		t.Errorf("type = %q", event.Type)
	}
	if event.Date != "2025-07-04" {
		t.Errorf("date = %q", event.Date)
	}
	if len(event.Payload.Games) != 1 || event.Payload.Games[0].ID != 745804 {
		t.Errorf("payload = %+v", event.Payload)
	}
}

func TestHubDropsDisconnectedClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil, nil)
	go hub.Run(ctx)

	conn := dialHub(t, ctx, hub)
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)

	// Broadcasting with no clients should not panic or block.
	hub.Broadcast(games.NewScoreboardResponse("2025-07-04", nil))
}

func TestHubReleasesClientsAfterShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil, nil)
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}

	// A pump tearing down after the hub has stopped must not block on
	// unregister, and a late registration must get a closed send channel.
	c := &Client{ID: "late", send: make(chan Event, 1)}
	finished := make(chan struct{})
	go func() {
		hub.Unregister(c)
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("unregister blocked after shutdown")
	}

	hub.Register(c)
	if _, ok := <-c.send; ok {
		t.Fatal("send channel should be closed after post-shutdown register")
	}
}
