package models

// Event types carried on the live case feed.
const (
	EventFIRCreated    = "fir_created"
	EventStatusChanged = "status_changed"
)

// FIREvent is the message broadcast to connected review consoles
// whenever a FIR is created or its status changes.
type FIREvent struct {
	Type string `json:"type"` // "fir_created", "status_changed"
	FIR  *FIR   `json:"fir"`
}
