package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tilerace/tilerace-server/internal/config"
	"github.com/tilerace/tilerace-server/internal/game"
)

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	nop := zerolog.Nop()
	coord := game.New(game.NewMemoryStore(), &nop)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go coord.Run(ctx)

	cfg := config.Config{
		Addr:              ":0",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}

	server := NewServer(coord, &cfg, &nop)
	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func TestHealthEndpoint(t *testing.T) {
	ts := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestCreateAndGetRoom(t *testing.T) {
	ts := startTestServer(t)

	body := bytes.NewBufferString(`{"host":{"id":"h1","name":"Host","color":"#ef4444","ready":false}}`)
	resp, err := ts.Client().Post(ts.URL+"/rooms", "application/json", body)
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var created game.Room
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode created room: %v", err)
	}
	if len(created.Code) != 4 {
		t.Fatalf("unexpected code %q", created.Code)
	}

	getResp, err := ts.Client().Get(ts.URL + "/rooms/" + created.Code)
	if err != nil {
		t.Fatalf("get request failed: %v", err)
	}
	defer getResp.Body.Close()

	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", getResp.StatusCode)
	}

	var room game.Room
	if err := json.NewDecoder(getResp.Body).Decode(&room); err != nil {
		t.Fatalf("decode room: %v", err)
	}
	if room.Started {
		t.Fatal("new room must not be started")
	}
	if len(room.Players) != 1 {
		t.Fatalf("expected 1 player, got %d", len(room.Players))
	}
	host := room.Players[0]
	if host.Tile != 1 || !host.IsHost {
		t.Fatalf("unexpected host record: %+v", host)
	}
}

func TestCreateRoomRejectsInvalidHost(t *testing.T) {
	ts := startTestServer(t)

	for _, body := range []string{
		`{}`,
		`{"host":{}}`,
		`{"host":{"id":"","name":"x","color":"#fff","ready":false}}`,
		`not json`,
	} {
		resp, err := ts.Client().Post(ts.URL+"/rooms", "application/json", bytes.NewBufferString(body))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, resp.StatusCode)
		}
	}
}

func TestGetRoomNotFound(t *testing.T) {
	ts := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/rooms/0000")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if errResp.Error != "not found" {
		t.Fatalf("unexpected error body: %+v", errResp)
	}
}

func TestListRoomsSnapshot(t *testing.T) {
	ts := startTestServer(t)

	body := bytes.NewBufferString(`{"host":{"id":"h1","name":"Host","color":"#ef4444","ready":false}}`)
	resp, err := ts.Client().Post(ts.URL+"/rooms", "application/json", body)
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	var created game.Room
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode created room: %v", err)
	}
	resp.Body.Close()

	listResp, err := ts.Client().Get(ts.URL + "/rooms")
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	defer listResp.Body.Close()

	var snapshot map[string]game.Room
	if err := json.NewDecoder(listResp.Body).Decode(&snapshot); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if _, ok := snapshot[created.Code]; !ok {
		t.Fatalf("snapshot missing room %s", created.Code)
	}
}
