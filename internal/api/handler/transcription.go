package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"firportal/backend/internal/voice"
)

type transcribeRequest struct {
	// Clip is the recorded audio, base64-encoded.
	Clip string `json:"clip" binding:"required"`
}

// Transcribe runs the transcription collaborator on an uploaded clip
// and suggests a FIR title from the result. The filing form uses this
// to pre-fill its fields after a voice recording.
func (h *Handler) Transcribe(c *gin.Context) {
	var req transcribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "clip is required"})
		return
	}

	clip, err := base64.StdEncoding.DecodeString(req.Clip)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "clip must be base64 encoded"})
		return
	}

	transcript, err := h.Transcriber.Transcribe(c.Request.Context(), clip)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transcript":     transcript,
		"suggestedTitle": voice.SuggestTitle(transcript),
	})
}
