package domain

import "time"

// User is the domain entity for a user account.
type User struct {
	ID                int64
	Username          string
	Email             string
	PasswordHash      string
	DisplayName       *string
	Bio               *string
	ProfilePictureURL *string
	CreatedAt         time.Time
}
