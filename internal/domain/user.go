package domain

import (
	"time"
)

// Profile carries the optional extended attributes of a user. Only the
// admin flag matters to this service.
type Profile struct {
	Admin bool `json:"admin"`
}

// User is the identity record attached to reviews, comments, and reports.
// Authentication happens upstream; this service only resolves ids.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Profile   *Profile  `json:"profile,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user has admin rights. Users without a
// profile are never admins.
func (u *User) IsAdmin() bool {
	return u.Profile != nil && u.Profile.Admin
}
