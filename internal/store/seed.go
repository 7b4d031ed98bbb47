package store

import (
	"time"

	"firportal/backend/internal/models"
)

// Seed loads the demo data set: four reference FIRs and one
// interrogation session. Used by the server in demo mode and by tests
// that need a known store state.
func Seed(s Store) error {
	for _, f := range DemoFIRs() {
		if err := s.SaveFIR(f); err != nil {
			return err
		}
	}
	for _, sess := range DemoSessions() {
		if err := s.SaveSession(sess); err != nil {
			return err
		}
	}
	return nil
}

// DemoFIRs returns fresh copies of the reference FIR records
// fir-001..fir-004.
func DemoFIRs() []*models.FIR {
	return []*models.FIR{
		{
			ID:          "fir-001",
			Title:       "Stolen Vehicle",
			Description: "My car was stolen from the parking lot of Westfield Mall on July 10th around 6 PM. It's a blue Honda Civic 2018 with license plate ABC123.",
			ReportedBy:  models.Reporter{ID: "1", Name: "John Citizen"},
			Location:    "Westfield Mall, City Center",
			IncidentDate: "2023-07-10",
			Status:       models.StatusReviewing,
			Priority:     models.PriorityMedium,
			AssignedOfficer: "Officer Smith",
			Updates: []models.FIRUpdate{
				{
					Date:        time.Date(2023, 7, 11, 9, 30, 0, 0, time.UTC),
					Comment:     "FIR received and under initial review",
					OfficerID:   "2",
					OfficerName: "Officer Smith",
				},
			},
			CreatedAt: time.Date(2023, 7, 10, 18, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 7, 11, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:          "fir-002",
			Title:       "Apartment Break-in",
			Description: "I returned from work to find my apartment door broken and some valuables missing, including my laptop and watch.",
			ReportedBy:  models.Reporter{ID: "1", Name: "John Citizen"},
			Location:    "123 Elm Street, Apartment 4B",
			IncidentDate: "2023-07-15",
			Status:       models.StatusPending,
			Priority:     models.PriorityHigh,
			Updates:      []models.FIRUpdate{},
			CreatedAt:    time.Date(2023, 7, 15, 20, 15, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2023, 7, 15, 20, 15, 0, 0, time.UTC),
		},
		{
			ID:          "fir-003",
			Title:       "Workplace Harassment",
			Description: "I've been facing verbal harassment from my manager for the past month. Despite complaints to HR, no action has been taken.",
			ReportedBy:  models.Reporter{ID: "3", Name: "Jane Doe"},
			Location:    "TechCorp Inc., Tech Park",
			IncidentDate: "2023-07-05",
			Status:       models.StatusCompleted,
			Priority:     models.PriorityMedium,
			AssignedOfficer: "Officer Johnson",
			Updates: []models.FIRUpdate{
				{
					Date:        time.Date(2023, 7, 6, 10, 0, 0, 0, time.UTC),
					Comment:     "FIR received, assigned for investigation",
					OfficerID:   "4",
					OfficerName: "Officer Johnson",
				},
				{
					Date:        time.Date(2023, 7, 12, 16, 30, 0, 0, time.UTC),
					Comment:     "Investigation completed, report filed with HR",
					OfficerID:   "4",
					OfficerName: "Officer Johnson",
				},
			},
			CreatedAt: time.Date(2023, 7, 5, 14, 20, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 7, 12, 16, 30, 0, 0, time.UTC),
		},
		{
			ID:          "fir-004",
			Title:       "Phone Snatched",
			Description: "My phone was snatched by two men on a motorcycle near Central Park yesterday evening around 7 PM.",
			ReportedBy:  models.Reporter{ID: "5", Name: "Robert Chen"},
			Location:    "Central Park East Entrance",
			IncidentDate: "2023-07-18",
			Status:       models.StatusApproved,
			Priority:     models.PriorityMedium,
			AssignedOfficer: "Officer Smith",
			Updates: []models.FIRUpdate{
				{
					Date:        time.Date(2023, 7, 19, 8, 45, 0, 0, time.UTC),
					Comment:     "FIR registered, CCTV footage requested from park authorities",
					OfficerID:   "2",
					OfficerName: "Officer Smith",
				},
			},
			CreatedAt: time.Date(2023, 7, 18, 19, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 7, 19, 8, 45, 0, 0, time.UTC),
		},
	}
}

// DemoSessions returns fresh copies of the reference interrogation
// sessions.
func DemoSessions() []*models.InterrogationSession {
	return []*models.InterrogationSession{
		{
			ID:         "int-001",
			FIRID:      "fir-001",
			AudioURL:   "/interrogation-audio-1.mp3",
			Transcript: "Sample transcript content would appear here with full conversation details...",
			Speakers: []models.Speaker{
				{
					ID:   "speaker-1",
					Name: "Officer Smith",
					Segments: []models.Segment{
						{Start: 0, End: 15.5, Text: "Can you tell me where you were on the evening of July 10th?", Emotion: "neutral"},
						{Start: 30.2, End: 45.7, Text: "And did you notice anyone suspicious near your vehicle earlier that day?", Emotion: "curious"},
					},
				},
				{
					ID:   "speaker-2",
					Name: "Suspect",
					Segments: []models.Segment{
						{Start: 16.0, End: 29.8, Text: "I was at the mall, shopping at the electronics store. I parked my car around 5:30 PM.", Emotion: "nervous"},
						{Start: 46.2, End: 65.5, Text: "Not really, there were a lot of people in the parking lot. I don't remember seeing anything unusual.", Emotion: "uncertain"},
					},
				},
			},
			Date:      time.Date(2023, 7, 12, 0, 0, 0, 0, time.UTC),
			CreatedBy: "2",
		},
	}
}
