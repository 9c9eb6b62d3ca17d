// internal/handlers/ws/ws_handler.go
package ws

import (
	"net/http"

	"fleetflow-service/internal/events"
	"fleetflow-service/internal/pkg/jwt"
	"fleetflow-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type EventStreamHandler struct {
	hub        *events.Hub
	jwtManager *jwt.Manager
	logger     *zap.Logger
}

func NewEventStreamHandler(hub *events.Hub, jwtManager *jwt.Manager, logger *zap.Logger) *EventStreamHandler {
	return &EventStreamHandler{
		hub:        hub,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// HandleConnection authenticates then upgrades the connection and attaches
// it to the event hub. Browsers cannot set headers on websocket requests, so
// the token also rides in the query string.
func (h *EventStreamHandler) HandleConnection(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = c.GetHeader("Authorization")
	}
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "missing authentication token", nil)
		return
	}

	claims, err := h.jwtManager.Verify(token)
	if err != nil {
		h.logger.Warn("websocket authentication failed",
			zap.Error(err),
			zap.String("ip", c.ClientIP()),
		)
		response.Error(c, http.StatusUnauthorized, "authentication failed", err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed",
			zap.Error(err),
			zap.String("ip", c.ClientIP()),
		)
		return
	}

	client := events.NewClient(h.hub, conn, claims.UserID)
	client.Start()
}
