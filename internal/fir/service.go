// Package fir implements the FIR lifecycle: creation, retrieval,
// filtering and the status-update workflow with its append-only audit
// trail.
package fir

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"firportal/backend/internal/models"
	"firportal/backend/internal/store"
)

// EventPublisher receives a FIREvent whenever a record is created or
// its status changes. The live case feed subscribes on the other end.
type EventPublisher interface {
	PublishFIREvent(ctx context.Context, event models.FIREvent) error
}

// NopPublisher discards events. Used by the admin CLI and in tests that
// do not care about the feed.
type NopPublisher struct{}

func (NopPublisher) PublishFIREvent(context.Context, models.FIREvent) error { return nil }

// CreateInput carries the fields captured by the filing form.
type CreateInput struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Location     string          `json:"location"`
	IncidentDate string          `json:"incidentDate"`
	Priority     models.Priority `json:"priority"`
}

// Filter narrows ListAll. Zero values (or "all") disable a dimension;
// the dimensions combine conjunctively.
type Filter struct {
	Status   string
	Priority string
	Search   string
}

// UpdateStatusInput carries an officer's status-update action.
type UpdateStatusInput struct {
	Status models.Status `json:"status"`
	// Comment is appended to the audit trail when non-blank. Required
	// when the status does not change.
	Comment string `json:"comment"`
	// AssignTo optionally records the handling officer's display name.
	AssignTo string `json:"assignTo"`
}

// Service owns the business rules over the store. Construct one per
// process; it is safe for concurrent use. Mutations of an existing
// record run as a single critical section inside the store.
type Service struct {
	Store  store.Store
	Events EventPublisher
}

// NewService creates a new FIR service.
func NewService(s store.Store, events EventPublisher) *Service {
	if events == nil {
		events = NopPublisher{}
	}
	return &Service{Store: s, Events: events}
}

// Create validates the filing input and inserts a new record in pending
// state with an empty audit trail. This is the only creation path.
func (s *Service) Create(ctx context.Context, input CreateInput, reporter *models.User) (*models.FIR, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, invalidField("title", "required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, invalidField("description", "required")
	}
	if strings.TrimSpace(input.Location) == "" {
		return nil, invalidField("location", "required")
	}
	if strings.TrimSpace(input.IncidentDate) == "" {
		return nil, invalidField("incidentDate", "required")
	}
	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return nil, invalidField("priority", "unknown priority")
	}

	now := time.Now().UTC()
	record := &models.FIR{
		ID:           "fir-" + uuid.New().String(),
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		ReportedBy:   models.Reporter{ID: reporter.ID, Name: reporter.Name},
		Location:     strings.TrimSpace(input.Location),
		IncidentDate: strings.TrimSpace(input.IncidentDate),
		Status:       models.StatusPending,
		Priority:     priority,
		Updates:      []models.FIRUpdate{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.SaveFIR(record); err != nil {
		return nil, err
	}
	s.publish(ctx, models.EventFIRCreated, record)
	return record, nil
}

// GetByID looks up one record. store.ErrNotFound is an expected outcome
// for stale links.
func (s *Service) GetByID(id string) (*models.FIR, error) {
	return s.Store.GetFIR(id)
}

// ListForReporter returns the reporter's own records in insertion
// order. Records belonging to other reporters are never included, even
// though all records live in one shared store.
func (s *Service) ListForReporter(reporterID string) []*models.FIR {
	var out []*models.FIR
	for _, f := range s.Store.ListFIRs() {
		if f.ReportedBy.ID == reporterID {
			out = append(out, f)
		}
	}
	return out
}

// ListAll returns all records matching the filter, in insertion order.
// Filtering is a pure view over the store: it never mutates and is
// re-derivable at any time.
func (s *Service) ListAll(filter Filter) []*models.FIR {
	var out []*models.FIR
	for _, f := range s.Store.ListFIRs() {
		if matches(f, filter) {
			out = append(out, f)
		}
	}
	return out
}

func matches(f *models.FIR, filter Filter) bool {
	if filter.Status != "" && filter.Status != "all" && string(f.Status) != filter.Status {
		return false
	}
	if filter.Priority != "" && filter.Priority != "all" && string(f.Priority) != filter.Priority {
		return false
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	if search == "" {
		return true
	}
	for _, field := range []string{f.Title, f.Description, f.ID, f.Location, f.ReportedBy.Name} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// UpdateStatus is the only mutation path for an existing FIR. The
// acting user must be an officer or admin. A no-op status change
// requires a comment; a non-blank comment always appends one audit
// entry stamped with the actor. On any failure the stored record is
// left unchanged.
func (s *Service) UpdateStatus(ctx context.Context, id string, input UpdateStatusInput, actor *models.User) (*models.FIR, error) {
	// Role check comes first so a citizen cannot probe ids.
	if actor == nil || !actor.Role.CanReview() {
		return nil, ErrForbidden
	}
	if !input.Status.Valid() {
		return nil, invalidField("status", "unknown status")
	}

	comment := strings.TrimSpace(input.Comment)

	// The validate-append-assign cycle runs under the store's write
	// lock; two officers updating the same record cannot overwrite each
	// other's audit entries.
	updated, err := s.Store.MutateFIR(id, func(record *models.FIR) error {
		if record.Status == input.Status && comment == "" {
			return invalidField("comment", "no-op update requires a comment")
		}
		if !transitionAllowed(record.Status, input.Status) {
			return invalidField("status", "transition not allowed")
		}

		now := time.Now().UTC()
		if comment != "" {
			record.Updates = append(record.Updates, models.FIRUpdate{
				Date:        now,
				Comment:     comment,
				OfficerID:   actor.ID,
				OfficerName: actor.Name,
			})
			record.UpdatedAt = now
		}
		if record.Status != input.Status {
			record.UpdatedAt = now
		}
		record.Status = input.Status
		if assign := strings.TrimSpace(input.AssignTo); assign != "" {
			record.AssignedOfficer = assign
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, models.EventStatusChanged, updated)
	return updated, nil
}

// transitionAllowed is the single decision point for the status graph.
// Every state may currently move to every other, including no-ops:
// officers are allowed to correct mistakes. Tighten here if that ever
// changes; callers stay untouched.
func transitionAllowed(from, to models.Status) bool {
	_ = from
	_ = to
	return true
}

func (s *Service) publish(ctx context.Context, eventType string, record *models.FIR) {
	event := models.FIREvent{Type: eventType, FIR: record.Clone()}
	if err := s.Events.PublishFIREvent(ctx, event); err != nil {
		// Feed delivery is best-effort; the mutation already succeeded.
		log.Printf("fir: publish %s event for %s failed: %v", eventType, record.ID, err)
	}
}
