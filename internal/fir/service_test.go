package fir_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firportal/backend/internal/fir"
	"firportal/backend/internal/models"
	"firportal/backend/internal/store"
)

var (
	citizen = &models.User{ID: "1", Name: "John Citizen", Email: "john@example.com", Role: models.RoleCitizen}
	officer = &models.User{ID: "2", Name: "Officer Smith", Email: "smith@police.gov", Role: models.RoleOfficer}
	admin   = &models.User{ID: "3", Name: "Admin User", Email: "admin@system.gov", Role: models.RoleAdmin}
)

// recordingPublisher captures published events for assertions. Guarded
// so concurrent updates can publish into it.
type recordingPublisher struct {
	mu     sync.Mutex
	events []models.FIREvent
}

func (p *recordingPublisher) PublishFIREvent(_ context.Context, event models.FIREvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func newService(t *testing.T, seed bool) (*fir.Service, *recordingPublisher) {
	t.Helper()
	s := store.NewMemoryStore()
	if seed {
		require.NoError(t, store.Seed(s))
	}
	pub := &recordingPublisher{}
	return fir.NewService(s, pub), pub
}

func validInput() fir.CreateInput {
	return fir.CreateInput{
		Title:        "Stolen Bicycle",
		Description:  "My bicycle was taken from the rack outside the library.",
		Location:     "City Library",
		IncidentDate: "2023-08-01",
		Priority:     models.PriorityLow,
	}
}

func TestCreate_NewRecordIsPendingWithEmptyTrail(t *testing.T) {
	svc, pub := newService(t, false)

	record, err := svc.Create(context.Background(), validInput(), citizen)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, record.Status)
	assert.Empty(t, record.Updates)
	assert.NotNil(t, record.Updates, "updates must be an empty slice, not nil")
	assert.Equal(t, record.CreatedAt, record.UpdatedAt)
	assert.Equal(t, models.Reporter{ID: citizen.ID, Name: citizen.Name}, record.ReportedBy)
	assert.NotEmpty(t, record.ID)

	require.Len(t, pub.events, 1)
	assert.Equal(t, models.EventFIRCreated, pub.events[0].Type)
}

func TestCreate_DefaultsPriorityToMedium(t *testing.T) {
	svc, _ := newService(t, false)

	input := validInput()
	input.Priority = ""
	record, err := svc.Create(context.Background(), input, citizen)
	require.NoError(t, err)
	assert.Equal(t, models.PriorityMedium, record.Priority)
}

func TestCreate_RejectsMissingFields(t *testing.T) {
	svc, pub := newService(t, false)

	tests := []struct {
		name   string
		mutate func(*fir.CreateInput)
	}{
		{"missing title", func(in *fir.CreateInput) { in.Title = "" }},
		{"blank title", func(in *fir.CreateInput) { in.Title = "   " }},
		{"missing description", func(in *fir.CreateInput) { in.Description = "" }},
		{"missing location", func(in *fir.CreateInput) { in.Location = "" }},
		{"missing incident date", func(in *fir.CreateInput) { in.IncidentDate = "" }},
		{"unknown priority", func(in *fir.CreateInput) { in.Priority = "urgent" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input, citizen)
			var validation *fir.ValidationError
			require.ErrorAs(t, err, &validation)
		})
	}

	assert.Empty(t, svc.ListAll(fir.Filter{}), "failed creations must not insert records")
	assert.Empty(t, pub.events, "failed creations must not publish events")
}

func TestGetByID_UnknownIDIsNotFound(t *testing.T) {
	svc, _ := newService(t, true)

	_, err := svc.GetByID("fir-999")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListForReporter_NeverLeaksOtherReports(t *testing.T) {
	svc, _ := newService(t, true)

	mine := svc.ListForReporter("1")
	require.Len(t, mine, 2)
	for _, f := range mine {
		assert.Equal(t, "1", f.ReportedBy.ID)
	}
	assert.Equal(t, "fir-001", mine[0].ID, "insertion order must be preserved")
	assert.Equal(t, "fir-002", mine[1].ID)

	assert.Empty(t, svc.ListForReporter("no-such-reporter"))
}

func TestListAll_FiltersConjunctively(t *testing.T) {
	svc, _ := newService(t, true)

	high := svc.ListAll(fir.Filter{Priority: "high"})
	require.Len(t, high, 1)
	assert.Equal(t, "fir-002", high[0].ID)

	mall := svc.ListAll(fir.Filter{Search: "mall"})
	require.Len(t, mall, 1)
	assert.Equal(t, "fir-001", mall[0].ID)

	// Case-insensitive match across fields.
	park := svc.ListAll(fir.Filter{Search: "CENTRAL PARK"})
	require.Len(t, park, 1)
	assert.Equal(t, "fir-004", park[0].ID)

	// Conjunctive: medium priority AND reviewing status.
	both := svc.ListAll(fir.Filter{Status: "reviewing", Priority: "medium"})
	require.Len(t, both, 1)
	assert.Equal(t, "fir-001", both[0].ID)

	// "all" disables a dimension.
	assert.Len(t, svc.ListAll(fir.Filter{Status: "all", Priority: "all"}), 4)
}

func TestListAll_IsIdempotentAndOrderPreserving(t *testing.T) {
	svc, _ := newService(t, true)

	first := svc.ListAll(fir.Filter{Status: "pending"})
	second := svc.ListAll(fir.Filter{Status: "pending"})
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}

	// Equal to the pending subsequence of the unfiltered list.
	var pending []string
	for _, f := range svc.ListAll(fir.Filter{}) {
		if f.Status == models.StatusPending {
			pending = append(pending, f.ID)
		}
	}
	var filtered []string
	for _, f := range first {
		filtered = append(filtered, f.ID)
	}
	assert.Equal(t, pending, filtered)
}

func TestUpdateStatus_NoOpWithoutCommentFails(t *testing.T) {
	svc, pub := newService(t, true)

	before, err := svc.GetByID("fir-002")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), "fir-002", fir.UpdateStatusInput{
		Status:  models.StatusPending,
		Comment: "   ",
	}, officer)
	var validation *fir.ValidationError
	require.ErrorAs(t, err, &validation)

	after, err := svc.GetByID("fir-002")
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed update must leave the record unchanged")
	assert.Empty(t, pub.events)
}

func TestUpdateStatus_AppendsExactlyOneAuditEntry(t *testing.T) {
	svc, pub := newService(t, true)

	before, err := svc.GetByID("fir-002")
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), "fir-002", fir.UpdateStatusInput{
		Status:  models.StatusReviewing,
		Comment: "Assigning officer",
	}, officer)
	require.NoError(t, err)

	assert.Equal(t, models.StatusReviewing, updated.Status)
	require.Len(t, updated.Updates, 1)
	entry := updated.Updates[0]
	assert.Equal(t, "Assigning officer", entry.Comment)
	assert.Equal(t, officer.ID, entry.OfficerID)
	assert.Equal(t, officer.Name, entry.OfficerName)
	assert.True(t, updated.UpdatedAt.After(before.UpdatedAt), "updatedAt must be strictly greater")
	assert.Equal(t, before.CreatedAt, updated.CreatedAt)

	// The change is visible through every read path.
	stored, err := svc.GetByID("fir-002")
	require.NoError(t, err)
	assert.Equal(t, models.StatusReviewing, stored.Status)
	require.Len(t, stored.Updates, 1)

	require.Len(t, pub.events, 1)
	assert.Equal(t, models.EventStatusChanged, pub.events[0].Type)
}

func TestUpdateStatus_SameStatusWithCommentAppends(t *testing.T) {
	svc, _ := newService(t, true)

	updated, err := svc.UpdateStatus(context.Background(), "fir-002", fir.UpdateStatusInput{
		Status:  models.StatusPending,
		Comment: "Still gathering details from the reporter",
	}, officer)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)
	require.Len(t, updated.Updates, 1)
}

func TestUpdateStatus_ConcurrentUpdatesKeepEveryAuditEntry(t *testing.T) {
	svc, _ := newService(t, true)

	const officers = 100
	start := make(chan struct{})
	errs := make(chan error, officers)

	var wg sync.WaitGroup
	for i := 0; i < officers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, err := svc.UpdateStatus(context.Background(), "fir-002", fir.UpdateStatusInput{
				Status:  models.StatusReviewing,
				Comment: fmt.Sprintf("note %d", i),
			}, officer)
			errs <- err
		}(i)
	}
	close(start)
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	// The trail is append-only: every successful update left its entry.
	stored, err := svc.GetByID("fir-002")
	require.NoError(t, err)
	assert.Len(t, stored.Updates, officers)
}

func TestUpdateStatus_CitizenIsForbidden(t *testing.T) {
	svc, pub := newService(t, true)

	before, err := svc.GetByID("fir-002")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), "fir-002", fir.UpdateStatusInput{
		Status:  models.StatusApproved,
		Comment: "approving my own report",
	}, citizen)
	assert.ErrorIs(t, err, fir.ErrForbidden)

	after, err := svc.GetByID("fir-002")
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Empty(t, pub.events)
}

func TestUpdateStatus_AdminIsAllowed(t *testing.T) {
	svc, _ := newService(t, true)

	updated, err := svc.UpdateStatus(context.Background(), "fir-004", fir.UpdateStatusInput{
		Status:  models.StatusCompleted,
		Comment: "Case closed after recovery of the phone",
	}, admin)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
}

func TestUpdateStatus_UnknownIDIsNotFound(t *testing.T) {
	svc, _ := newService(t, true)

	_, err := svc.UpdateStatus(context.Background(), "fir-999", fir.UpdateStatusInput{
		Status:  models.StatusReviewing,
		Comment: "ok",
	}, officer)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateStatus_InvalidStatusRejected(t *testing.T) {
	svc, _ := newService(t, true)

	_, err := svc.UpdateStatus(context.Background(), "fir-002", fir.UpdateStatusInput{
		Status:  "archived",
		Comment: "ok",
	}, officer)
	var validation *fir.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestUpdateStatus_AssignsOfficer(t *testing.T) {
	svc, _ := newService(t, true)

	updated, err := svc.UpdateStatus(context.Background(), "fir-002", fir.UpdateStatusInput{
		Status:   models.StatusReviewing,
		Comment:  "Taking this case",
		AssignTo: "Officer Smith",
	}, officer)
	require.NoError(t, err)
	assert.Equal(t, "Officer Smith", updated.AssignedOfficer)
}

// Scenario from the reference data set: seed, filter, search, then
// Officer Smith moves fir-002 into review.
func TestReferenceScenario(t *testing.T) {
	svc, _ := newService(t, true)

	high := svc.ListAll(fir.Filter{Priority: "high"})
	require.Len(t, high, 1)
	assert.Equal(t, "fir-002", high[0].ID)

	mall := svc.ListAll(fir.Filter{Search: "mall"})
	require.Len(t, mall, 1)
	assert.Equal(t, "fir-001", mall[0].ID)

	before, err := svc.GetByID("fir-002")
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), "fir-002", fir.UpdateStatusInput{
		Status:  models.StatusReviewing,
		Comment: "Assigning officer",
	}, officer)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReviewing, updated.Status)
	assert.Len(t, updated.Updates, 1)
	assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
}
