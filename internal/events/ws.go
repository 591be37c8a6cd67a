package events

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the admin group sits behind the CORS and admin guard middleware
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler upgrades the request and keeps the client subscribed until it
// disconnects. Incoming messages are ignored.
func WSHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		// greet before joining the hub so this write never races a broadcast
		_ = ws.WriteMessage(websocket.TextMessage, []byte(`{"type":"welcome"}`))

		hub.Add(ws)
		hub.logger.Debug("websocket client connected", zap.Int("clients", hub.Count()))

		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		hub.Remove(ws)
		hub.logger.Debug("websocket client disconnected")
	}
}
