package interrogation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firportal/backend/internal/fir"
	"firportal/backend/internal/interrogation"
	"firportal/backend/internal/models"
	"firportal/backend/internal/store"
)

var (
	officer = &models.User{ID: "2", Name: "Officer Smith", Role: models.RoleOfficer}
	citizen = &models.User{ID: "1", Name: "John Citizen", Role: models.RoleCitizen}
)

func newService(t *testing.T) *interrogation.Service {
	t.Helper()
	s := store.NewMemoryStore()
	require.NoError(t, store.Seed(s))
	return interrogation.NewService(s)
}

func validInput() interrogation.CreateInput {
	return interrogation.CreateInput{
		FIRID:    "fir-002",
		AudioURL: "/interrogation-audio-2.mp3",
		Speakers: []models.Speaker{
			{
				ID:   "speaker-1",
				Name: "Officer Smith",
				Segments: []models.Segment{
					{Start: 0, End: 12.5, Text: "When did you last see the laptop?"},
				},
			},
		},
	}
}

func TestCreate_RecordsSession(t *testing.T) {
	svc := newService(t)

	session, err := svc.Create(validInput(), officer)
	require.NoError(t, err)
	assert.Equal(t, "fir-002", session.FIRID)
	assert.Equal(t, officer.ID, session.CreatedBy)
	assert.NotEmpty(t, session.ID)
	assert.False(t, session.Date.IsZero())

	listed := svc.ListForFIR("fir-002")
	require.Len(t, listed, 1)
	assert.Equal(t, session.ID, listed[0].ID)
}

func TestCreate_CitizenIsForbidden(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(validInput(), citizen)
	assert.ErrorIs(t, err, fir.ErrForbidden)
}

func TestCreate_UnknownFIRIsNotFound(t *testing.T) {
	svc := newService(t)

	input := validInput()
	input.FIRID = "fir-999"
	_, err := svc.Create(input, officer)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreate_RejectsMalformedSegments(t *testing.T) {
	svc := newService(t)

	input := validInput()
	input.Speakers[0].Segments = []models.Segment{{Start: 20, End: 10, Text: "backwards"}}
	_, err := svc.Create(input, officer)
	var validation *fir.ValidationError
	require.ErrorAs(t, err, &validation)

	input = validInput()
	input.Speakers[0].Segments = []models.Segment{{Start: 5, End: 5, Text: "zero length"}}
	_, err = svc.Create(input, officer)
	require.ErrorAs(t, err, &validation)
}

func TestCreate_RequiresAudioURL(t *testing.T) {
	svc := newService(t)

	input := validInput()
	input.AudioURL = "  "
	_, err := svc.Create(input, officer)
	var validation *fir.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestAttachTranscript(t *testing.T) {
	svc := newService(t)

	session, err := svc.Create(validInput(), officer)
	require.NoError(t, err)

	updated, err := svc.AttachTranscript(session.ID, "Full conversation transcript.")
	require.NoError(t, err)
	assert.Equal(t, "Full conversation transcript.", updated.Transcript)

	stored, err := svc.GetByID(session.ID)
	require.NoError(t, err)
	assert.Equal(t, "Full conversation transcript.", stored.Transcript)
}

func TestAttachTranscript_Validation(t *testing.T) {
	svc := newService(t)

	_, err := svc.AttachTranscript("int-001", "   ")
	var validation *fir.ValidationError
	require.ErrorAs(t, err, &validation)

	_, err = svc.AttachTranscript("int-999", "text")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
