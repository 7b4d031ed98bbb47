package models

import "time"

// Status is the review state of a FIR. The natural lifecycle is
// pending -> reviewing -> approved/rejected -> completed, but any
// transition is currently permitted (see fir.Service).
type Status string

const (
	StatusPending   Status = "pending"
	StatusReviewing Status = "reviewing"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReviewing, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Label returns the display name shown in list views.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusReviewing:
		return "Under Review"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	case StatusCompleted:
		return "Completed"
	}
	return string(s)
}

// Color returns the badge color used by the front end for this status.
func (s Status) Color() string {
	switch s {
	case StatusPending:
		return "yellow"
	case StatusReviewing:
		return "blue"
	case StatusApproved:
		return "green"
	case StatusRejected:
		return "red"
	case StatusCompleted:
		return "gray"
	}
	return "gray"
}

// Priority is the urgency assigned to a FIR at filing time.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities for display, highest urgency first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 0
	}
	return -1
}

// Label returns the display name for the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	}
	return string(p)
}

// Color returns the badge color used by the front end for this priority.
func (p Priority) Color() string {
	switch p {
	case PriorityLow:
		return "gray"
	case PriorityMedium:
		return "orange"
	case PriorityHigh:
		return "red"
	}
	return "gray"
}

// Reporter is the snapshot of the citizen who filed a FIR, taken at
// creation time. It is not a live reference to the user record.
type Reporter struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FIRUpdate is one append-only audit entry on a FIR, attributed to the
// acting officer. Entries are never reordered or deleted.
type FIRUpdate struct {
	Date        time.Time `json:"date"`
	Comment     string    `json:"comment"`
	OfficerID   string    `json:"officerId"`
	OfficerName string    `json:"officerName"`
}

// FIR represents one filed First Information Report.
type FIR struct {
	// ID is the unique, stable identifier of the report.
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ReportedBy  Reporter `json:"reportedBy"`
	Location    string   `json:"location"`
	// IncidentDate is the date the incident occurred, as reported.
	IncidentDate string   `json:"incidentDate"`
	Status       Status   `json:"status"`
	Priority     Priority `json:"priority"`
	// AssignedOfficer is the display name of the officer handling the
	// case, empty until one is assigned.
	AssignedOfficer string `json:"assignedOfficer,omitempty"`
	// Updates holds the audit trail in insertion order.
	Updates   []FIRUpdate `json:"updates"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Clone returns a deep copy so callers can mutate the result without
// touching stored state.
func (f *FIR) Clone() *FIR {
	out := *f
	out.Updates = make([]FIRUpdate, len(f.Updates))
	copy(out.Updates, f.Updates)
	return &out
}
