package controllers

import (
	"StarBoard/middlewares"
	"StarBoard/websocket"
	"log/slog"

	"github.com/gin-gonic/gin"
)

var WebSocketHub *websocket.Hub

func SetWebSocketHub(hub *websocket.Hub) {
	WebSocketHub = hub
}

// ServeWs upgrades a logged in parent's request to a websocket that receives
// star events.
func ServeWs(c *gin.Context) {
	parent := middlewares.CurrentParent(c)
	if err := websocket.ServeWs(WebSocketHub, c.Writer, c.Request, parent.ID); err != nil {
		// the upgrader has already written an error response
		slog.WarnContext(c.Request.Context(), "Websocket upgrade failed", "parent_id", parent.ID, "error", err)
	}
}
