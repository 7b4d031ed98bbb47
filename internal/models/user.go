package models

// Role classifies what a user is allowed to see and do.
// It is a closed set; branch on it exhaustively.
type Role string

const (
	RoleCitizen Role = "citizen"
	RoleOfficer Role = "officer"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RoleOfficer, RoleAdmin:
		return true
	}
	return false
}

// CanReview reports whether the role may act on FIRs filed by others
// (the aggregate list, status updates, interrogations).
func (r Role) CanReview() bool {
	return r == RoleOfficer || r == RoleAdmin
}

// User represents an account in the system.
// Immutable once issued for a session; FIR records snapshot the reporter's
// id and name rather than referencing the user directly.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
