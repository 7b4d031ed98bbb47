// Package auth resolves credentials against the demo account directory
// and manages sessions as revocable JWTs backed by Redis records.
package auth

import (
	"errors"

	"firportal/backend/internal/models"
)

// ErrAuthFailure is returned for any bad credential pair. It does not
// reveal which field was wrong.
var ErrAuthFailure = errors.New("invalid email or password")

type account struct {
	user     models.User
	password string
}

// Demo accounts. There is no registration flow in this scope; the
// directory is fixed for the lifetime of the process.
var directory = []account{
	{
		user:     models.User{ID: "1", Name: "John Citizen", Email: "john@example.com", Role: models.RoleCitizen},
		password: "password123",
	},
	{
		user:     models.User{ID: "2", Name: "Officer Smith", Email: "smith@police.gov", Role: models.RoleOfficer},
		password: "police123",
	},
	{
		user:     models.User{ID: "3", Name: "Admin User", Email: "admin@system.gov", Role: models.RoleAdmin},
		password: "admin123",
	},
}

// ResolveCredentials matches the pair against the directory and returns
// the user without the password, or ErrAuthFailure.
func ResolveCredentials(email, password string) (*models.User, error) {
	for _, a := range directory {
		if a.user.Email == email && a.password == password {
			u := a.user
			return &u, nil
		}
	}
	return nil, ErrAuthFailure
}
