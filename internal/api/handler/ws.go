package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"firportal/backend/internal/auth"
	"firportal/backend/internal/casefeed"
	"firportal/backend/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The browser client runs on a different origin; CORS policy is
	// enforced at the router level.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// FeedWebSocket upgrades the connection and subscribes the officer to
// the live case feed. RequireRole has already vetted the session.
func (h *Handler) FeedWebSocket(c *gin.Context) {
	user := auth.CurrentUser(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to upgrade connection"})
		return
	}

	client := &casefeed.WebSocketClient{
		ID:     uuid.New().String(),
		UserID: user.ID,
		Conn:   conn,
		Hub:    h.Hub,
		Send:   make(chan models.FIREvent, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
