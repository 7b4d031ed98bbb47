package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"firportal/backend/internal/auth"
	"firportal/backend/internal/interrogation"
)

// CreateInterrogation records a new interrogation session against a
// FIR.
func (h *Handler) CreateInterrogation(c *gin.Context) {
	var input interrogation.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, err := h.Interrogations.Create(input, auth.CurrentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetInterrogation returns one session.
func (h *Handler) GetInterrogation(c *gin.Context) {
	session, err := h.Interrogations.GetByID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ListInterrogations returns the sessions recorded against a FIR.
func (h *Handler) ListInterrogations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sessions": h.Interrogations.ListForFIR(c.Param("id"))})
}

type attachTranscriptRequest struct {
	Transcript string `json:"transcript"`
}

// AttachTranscript stores a delivered transcript on a session.
func (h *Handler) AttachTranscript(c *gin.Context) {
	var req attachTranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, err := h.Interrogations.AttachTranscript(c.Param("id"), req.Transcript)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
