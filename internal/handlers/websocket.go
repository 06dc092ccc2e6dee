package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/mehedihasan2004/parcel-pro-server/internal/services"
)

// WebSocketHandler handles WebSocket connections
func WebSocketHandler(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")

		// Convert Gin's ResponseWriter to http.ResponseWriter
		services.HandleWebSocket(hub, c.Writer, c.Request, email)
	}
}
