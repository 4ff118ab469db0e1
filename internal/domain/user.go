package domain

import "time"

type Role string

const (
	RoleSeeker   Role = "SEEKER"
	RoleProvider Role = "PROVIDER"
	RoleAdmin    Role = "ADMIN"
)

// Valid reports whether r is one of the three platform roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSeeker, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID                 int64     `json:"id"`
	Email              string    `json:"email"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	Role               Role      `json:"role"`
	IsActive           bool      `json:"is_active"`
	EmailNotifications bool      `json:"email_notifications"`
	CreatedAt          time.Time `json:"created_at"`
}

func (u User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	return u.FirstName + " " + u.LastName
}
