package models

import "time"

// Segment is one diarized slice of an interrogation recording.
// Start and End are offsets into the audio in seconds; Start < End.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
	// Emotion is the label produced by the (mocked) emotion analysis.
	// Free-form, not an enumeration.
	Emotion string `json:"emotion,omitempty"`
}

// Speaker groups the segments attributed to one voice in a recording.
type Speaker struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Segments []Segment `json:"segments"`
}

// InterrogationSession represents one recorded interrogation tied to a
// FIR. The FIRID is a weak reference: lookup only, no ownership.
type InterrogationSession struct {
	ID         string    `json:"id"`
	FIRID      string    `json:"firId"`
	AudioURL   string    `json:"audioUrl"`
	Transcript string    `json:"transcript,omitempty"`
	Speakers   []Speaker `json:"speakers,omitempty"`
	Date       time.Time `json:"date"`
	// CreatedBy is the id of the officer who recorded the session.
	CreatedBy string `json:"createdBy"`
}
