package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"firportal/backend/internal/auth"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login resolves the credential pair and establishes a session. The
// response does not reveal which field was wrong.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, err := auth.ResolveCredentials(strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.Sessions.Establish(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Logout ends the current session, revoking its token.
func (h *Handler) Logout(c *gin.Context) {
	bearer := c.GetHeader("Authorization")
	token := strings.TrimPrefix(bearer, "Bearer ")
	if err := h.Sessions.End(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to end session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// Me returns the session user.
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": auth.CurrentUser(c)})
}
