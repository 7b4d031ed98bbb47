package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"firportal/backend/internal/auth"
	"firportal/backend/internal/fir"
	"firportal/backend/internal/stats"
)

// CreateFIR files a new report for the session user.
func (h *Handler) CreateFIR(c *gin.Context) {
	var input fir.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.FIRs.Create(c.Request.Context(), input, auth.CurrentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// MyFIRs lists the session user's own reports.
func (h *Handler) MyFIRs(c *gin.Context) {
	user := auth.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"firs": h.FIRs.ListForReporter(user.ID)})
}

// ListFIRs lists all reports with the query filters applied.
// Officer/admin only.
func (h *Handler) ListFIRs(c *gin.Context) {
	filter := fir.Filter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
	}
	c.JSON(http.StatusOK, gin.H{"firs": h.FIRs.ListAll(filter)})
}

// GetFIR returns one report. Citizens may only fetch their own; the
// review roles may fetch any.
func (h *Handler) GetFIR(c *gin.Context) {
	record, err := h.FIRs.GetByID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	user := auth.CurrentUser(c)
	if !user.Role.CanReview() && record.ReportedBy.ID != user.ID {
		writeError(c, fir.ErrForbidden)
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateFIRStatus transitions a report's status, optionally appending
// an audit comment. Officer/admin only.
func (h *Handler) UpdateFIRStatus(c *gin.Context) {
	var input fir.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.FIRs.UpdateStatus(c.Request.Context(), c.Param("id"), input, auth.CurrentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Stats returns the dashboard summary. Officer/admin only.
func (h *Handler) Stats(c *gin.Context) {
	firs := h.FIRs.ListAll(fir.Filter{})
	c.JSON(http.StatusOK, gin.H{
		"summary":   stats.Summarize(firs),
		"attention": stats.AttentionList(firs),
	})
}
