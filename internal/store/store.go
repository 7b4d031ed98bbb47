// Package store owns the canonical collection of FIR records and
// interrogation sessions. The backing implementation is in-memory and
// process-lifetime; everything above it talks to the Store interface so
// a persistent implementation can be swapped in later.
package store

import (
	"errors"

	"firportal/backend/internal/models"
)

// ErrNotFound is returned for lookups of unknown ids. It is a normal,
// expected outcome (stale links), not a fault.
var ErrNotFound = errors.New("record not found")

// Store is the persistence boundary for FIRs and interrogation sessions.
type Store interface {
	// SaveFIR inserts a new record. The id must not already exist.
	SaveFIR(fir *models.FIR) error
	// GetFIR returns a copy of the record, or ErrNotFound.
	GetFIR(id string) (*models.FIR, error)
	// ListFIRs returns copies of all records in insertion order.
	ListFIRs() []*models.FIR
	// UpdateFIR atomically replaces an existing record, or returns
	// ErrNotFound. Readers never observe a partial write.
	UpdateFIR(fir *models.FIR) error
	// MutateFIR applies fn to the stored record and returns a copy of
	// the result. The whole read-modify-write runs as one critical
	// section, so concurrent mutations never lose each other's changes.
	// If fn returns an error the record is left unchanged and the error
	// is returned as-is.
	MutateFIR(id string, fn func(*models.FIR) error) (*models.FIR, error)

	SaveSession(session *models.InterrogationSession) error
	GetSession(id string) (*models.InterrogationSession, error)
	// ListSessionsForFIR returns the sessions referencing the given FIR,
	// in insertion order.
	ListSessionsForFIR(firID string) []*models.InterrogationSession
	// UpdateSession atomically replaces an existing session.
	UpdateSession(session *models.InterrogationSession) error
	// MutateSession is MutateFIR for interrogation sessions.
	MutateSession(id string, fn func(*models.InterrogationSession) error) (*models.InterrogationSession, error)
}
