package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ContactBook/internal/config"
	"ContactBook/internal/modules/contact/domain/entity"
	"ContactBook/internal/modules/contact/domain/event"
	"ContactBook/internal/modules/contact/infrastructure/realtime"
	"ContactBook/pkg/util/myjwt"
	"ContactBook/pkg/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func newWsServer(t *testing.T, signer *myjwt.Signer) (*httptest.Server, *ws.Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hub := ws.NewHub()
	r := gin.New()
	r.GET("/contact/ws", NewWsHandler(hub, signer).Connect)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, hub
}

func wsURL(srv *httptest.Server, query string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/contact/ws?" + query
}

func waitForClients(t *testing.T, hub *ws.Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Count() != n {
		if time.Now().After(deadline) {
			t.Fatalf("hub has %d clients, want %d", hub.Count(), n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestWsReceivesContactEvents(t *testing.T) {
	srv, hub := newWsServer(t, nil)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "client_id=c-1"), nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()
	waitForClients(t, hub, 1)

	evt := event.ContactEvent{
		EventId: "e-1",
		Type:    event.TypeContactAdded,
		Contact: entity.NewContact("John Doe", "john.doe@example.com", "1234567890"),
	}
	if err := realtime.NewHubPublisher(hub).Publish(context.Background(), evt); err != nil {
		t.Fatal(err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got event.ContactEvent
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if got.EventId != "e-1" || got.Contact != evt.Contact {
		t.Errorf("got %+v", got)
	}

	conn.Close()
	waitForClients(t, hub, 0)
}

func TestWsRejectsBadRequests(t *testing.T) {
	signer, err := myjwt.NewSigner(config.JwtConfig{Key: "secret"}, "ContactBook")
	if err != nil {
		t.Fatal(err)
	}
	srv, hub := newWsServer(t, signer)

	token, err := signer.GenerateToken("c-1", "alice")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		query string
		want  int
	}{
		{"", http.StatusBadRequest},
		{"client_id=c-1", http.StatusUnauthorized},
		{"client_id=c-2&token=" + token, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, tt.query), nil)
		if err == nil {
			t.Fatalf("query %q: expected handshake failure", tt.query)
		}
		if resp == nil || resp.StatusCode != tt.want {
			t.Errorf("query %q: resp = %v, want status %d", tt.query, resp, tt.want)
		}
	}

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "client_id=c-1&token="+token), nil)
	if err != nil {
		t.Fatalf("Dial() with token error = %v", err)
	}
	defer conn.Close()
	waitForClients(t, hub, 1)
}
