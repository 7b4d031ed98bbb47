// Package handler exposes the HTTP surface consumed by the portal and
// the review console.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"firportal/backend/internal/auth"
	"firportal/backend/internal/casefeed"
	"firportal/backend/internal/fir"
	"firportal/backend/internal/interrogation"
	"firportal/backend/internal/models"
	"firportal/backend/internal/store"
	"firportal/backend/internal/voice"
)

// Handler holds the services behind the HTTP routes.
type Handler struct {
	FIRs           *fir.Service
	Interrogations *interrogation.Service
	Sessions       *auth.SessionManager
	Hub            *casefeed.Hub
	Transcriber    voice.Transcriber
}

// NewHandler creates the HTTP handler over the given services.
func NewHandler(firs *fir.Service, interrogations *interrogation.Service, sessions *auth.SessionManager, hub *casefeed.Hub, transcriber voice.Transcriber) *Handler {
	return &Handler{
		FIRs:           firs,
		Interrogations: interrogations,
		Sessions:       sessions,
		Hub:            hub,
		Transcriber:    transcriber,
	}
}

// RegisterRoutes wires every route onto the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	r.POST("/auth/login", h.Login)

	authed := r.Group("/", auth.RequireAuth(h.Sessions))
	authed.POST("/auth/logout", h.Logout)
	authed.GET("/auth/me", h.Me)

	authed.POST("/firs", h.CreateFIR)
	authed.GET("/firs/mine", h.MyFIRs)
	authed.GET("/firs/:id", h.GetFIR)
	authed.POST("/transcriptions", h.Transcribe)

	review := authed.Group("/", auth.RequireRole(models.RoleOfficer, models.RoleAdmin))
	review.GET("/firs", h.ListFIRs)
	review.PATCH("/firs/:id/status", h.UpdateFIRStatus)
	review.GET("/stats", h.Stats)
	review.GET("/ws/feed", h.FeedWebSocket)

	review.POST("/interrogations", h.CreateInterrogation)
	review.GET("/interrogations/:id", h.GetInterrogation)
	review.GET("/firs/:id/interrogations", h.ListInterrogations)
	review.POST("/interrogations/:id/transcript", h.AttachTranscript)
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "firportal"})
}

// writeError maps the service error taxonomy onto HTTP status codes.
// Every documented failure is local to one request.
func writeError(c *gin.Context, err error) {
	var validation *fir.ValidationError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.Is(err, auth.ErrAuthFailure):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, fir.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, voice.ErrDeviceUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
