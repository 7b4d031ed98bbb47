// Package interrogation manages recorded interrogation sessions tied to
// FIRs. Sessions reference a FIR by id only; the FIR does not own them.
package interrogation

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"firportal/backend/internal/fir"
	"firportal/backend/internal/models"
	"firportal/backend/internal/store"
)

// CreateInput carries a new interrogation recording.
type CreateInput struct {
	FIRID    string           `json:"firId"`
	AudioURL string           `json:"audioUrl"`
	Date     time.Time        `json:"date"`
	Speakers []models.Speaker `json:"speakers"`
}

// Service owns the interrogation-session rules over the store.
type Service struct {
	Store store.Store
}

// NewService creates a new interrogation service.
func NewService(s store.Store) *Service {
	return &Service{Store: s}
}

// Create records a new session. Only officers and admins may record
// interrogations, the target FIR must exist and every diarized segment
// must satisfy start < end.
func (s *Service) Create(input CreateInput, creator *models.User) (*models.InterrogationSession, error) {
	if creator == nil || !creator.Role.CanReview() {
		return nil, fir.ErrForbidden
	}
	if strings.TrimSpace(input.AudioURL) == "" {
		return nil, &fir.ValidationError{Field: "audioUrl", Message: "required"}
	}
	if _, err := s.Store.GetFIR(input.FIRID); err != nil {
		return nil, err
	}
	for _, sp := range input.Speakers {
		for _, seg := range sp.Segments {
			if seg.Start >= seg.End {
				return nil, &fir.ValidationError{Field: "segments", Message: "segment start must precede end"}
			}
		}
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	session := &models.InterrogationSession{
		ID:        "int-" + uuid.New().String(),
		FIRID:     input.FIRID,
		AudioURL:  strings.TrimSpace(input.AudioURL),
		Speakers:  input.Speakers,
		Date:      date,
		CreatedBy: creator.ID,
	}
	if err := s.Store.SaveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetByID looks up one session.
func (s *Service) GetByID(id string) (*models.InterrogationSession, error) {
	return s.Store.GetSession(id)
}

// ListForFIR returns the sessions recorded against a FIR, in insertion
// order.
func (s *Service) ListForFIR(firID string) []*models.InterrogationSession {
	return s.Store.ListSessionsForFIR(firID)
}

// AttachTranscript stores the transcript delivered by the transcription
// collaborator.
func (s *Service) AttachTranscript(id, transcript string) (*models.InterrogationSession, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, &fir.ValidationError{Field: "transcript", Message: "required"}
	}
	return s.Store.MutateSession(id, func(session *models.InterrogationSession) error {
		session.Transcript = transcript
		return nil
	})
}
