package stream

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"aquarium/internal/aquarium"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

type rawMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func read(t *testing.T, conn *websocket.Conn) rawMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg rawMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

func TestViewerReceivesWelcomeAndFrames(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	conn := dial(t, srv)
	defer conn.Close()

	welcome := read(t, conn)
	if welcome.Type != "welcome" {
		t.Fatalf("expected welcome first, got %q", welcome.Type)
	}
	var w WelcomePayload
	if err := json.Unmarshal(welcome.Payload, &w); err != nil {
		t.Fatalf("decode welcome: %v", err)
	}
	if _, err := uuid.Parse(w.ID); err != nil {
		t.Fatalf("viewer id %q is not a uuid: %v", w.ID, err)
	}
	if hub.Clients() != 1 {
		t.Fatalf("expected one registered viewer, got %d", hub.Clients())
	}

	tank := aquarium.New()
	tank.Step(1.0 / 60)
	if err := hub.Broadcast(tank.Frame()); err != nil {
		t.Fatalf("broadcast: %v", err)
	}
	msg := read(t, conn)
	if msg.Type != "frame" {
		t.Fatalf("expected frame message, got %q", msg.Type)
	}
	var f aquarium.Frame
	if err := json.Unmarshal(msg.Payload, &f); err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	if f.Index != 1 || len(f.Fish) != tank.School().Len() {
		t.Fatalf("unexpected frame %d with %d fish", f.Index, len(f.Fish))
	}
}

func TestViewerDisconnectUnregisters(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv)
	read(t, conn)
	conn.Close()

	deadline := time.Now().Add(5 * time.Second)
	for hub.Clients() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("viewer was not removed after disconnecting")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestRunStepsUntilCancelled(t *testing.T) {
	tank := aquarium.New()
	hub := NewHub()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := Run(ctx, tank, hub, 120); err != nil {
		t.Fatalf("run: %v", err)
	}
	if tank.Frames() == 0 {
		t.Fatal("run should have stepped the tank")
	}
	if err := Run(context.Background(), tank, hub, 0); err == nil {
		t.Fatal("zero tps should be rejected")
	}
}
