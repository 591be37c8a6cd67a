package events

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/personalweb/portfolio-backend/internal/portfolio"
	"github.com/personalweb/portfolio-backend/internal/portfolio/domain"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/events"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := ws.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"welcome"}`, string(msg))
	return ws
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.Count() == n }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastsChangeEvents(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	gin.SetMode(gin.TestMode)

	hub := NewHub(nil)
	r := gin.New()
	r.GET("/events", WSHandler(hub))
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, b := dial(t, srv), dial(t, srv)
	waitForClients(t, hub, 2)

	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	hub.Hook()(context.Background(), portfolio.ChangeEvent{
		Collection: domain.CollectionSkills, Action: portfolio.ActionCreated, ID: "42", At: at,
	})

	for _, ws := range []*websocket.Conn{a, b} {
		_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, msg, err := ws.ReadMessage()
		require.NoError(t, err)

		var ev portfolio.ChangeEvent
		require.NoError(t, json.Unmarshal(msg, &ev))
		assert.Equal(t, "42", ev.ID)
		assert.Equal(t, domain.CollectionSkills, ev.Collection)
		assert.Equal(t, portfolio.ActionCreated, ev.Action)
	}

	require.NoError(t, a.Close())
	waitForClients(t, hub, 1)

	require.NoError(t, b.Close())
	waitForClients(t, hub, 0)
}

func TestHub_CloseDisconnectsClients(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	gin.SetMode(gin.TestMode)

	hub := NewHub(nil)
	r := gin.New()
	r.GET("/events", WSHandler(hub))
	srv := httptest.NewServer(r)
	defer srv.Close()

	ws := dial(t, srv)
	defer ws.Close()
	waitForClients(t, hub, 1)

	hub.Close()
	assert.Equal(t, 0, hub.Count())

	_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := ws.ReadMessage()
	assert.Error(t, err)
}
