// Package stats derives the aggregate counts shown on the review
// console dashboard.
package stats

import (
	"sort"

	"firportal/backend/internal/models"
)

// Summary is the dashboard roll-up of the current FIR collection.
type Summary struct {
	Total      int                     `json:"total"`
	ByStatus   map[models.Status]int   `json:"byStatus"`
	ByPriority map[models.Priority]int `json:"byPriority"`
}

// Summarize counts the records per status and priority. Every known
// status and priority appears in the result, zero or not, so dashboard
// cards never have to guard against missing keys.
func Summarize(firs []*models.FIR) Summary {
	s := Summary{
		Total: len(firs),
		ByStatus: map[models.Status]int{
			models.StatusPending:   0,
			models.StatusReviewing: 0,
			models.StatusApproved:  0,
			models.StatusRejected:  0,
			models.StatusCompleted: 0,
		},
		ByPriority: map[models.Priority]int{
			models.PriorityLow:    0,
			models.PriorityMedium: 0,
			models.PriorityHigh:   0,
		},
	}
	for _, f := range firs {
		s.ByStatus[f.Status]++
		s.ByPriority[f.Priority]++
	}
	return s
}

// AttentionList orders open records for the dashboard: highest
// priority first, oldest first within a priority. Completed and
// rejected records are excluded. The input is not modified.
func AttentionList(firs []*models.FIR) []*models.FIR {
	var open []*models.FIR
	for _, f := range firs {
		if f.Status == models.StatusCompleted || f.Status == models.StatusRejected {
			continue
		}
		open = append(open, f)
	}
	sort.SliceStable(open, func(i, j int) bool {
		if open[i].Priority.Rank() != open[j].Priority.Rank() {
			return open[i].Priority.Rank() > open[j].Priority.Rank()
		}
		return open[i].CreatedAt.Before(open[j].CreatedAt)
	})
	return open
}
