package dto

import "time"

// RegisterRequest is the JSON body for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=1,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=1"`
}

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the short user summary returned by auth endpoints.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse is returned after register and login. Token is an opaque
// session id sent back as Authorization: Bearer on later requests.
type AuthResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Token   string        `json:"token,omitempty"`
	User    *UserResponse `json:"user,omitempty"`
}

// UserProfileResponse is the full profile for GET/PUT /user/settings.
type UserProfileResponse struct {
	ID                int64     `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	DisplayName       *string   `json:"display_name"`
	Bio               *string   `json:"bio"`
	ProfilePictureURL *string   `json:"profile_picture_url"`
	CreatedAt         time.Time `json:"created_at"`
}

// UpdateProfileRequest is the JSON body for PUT /user/settings. Nil fields
// are left unchanged.
type UpdateProfileRequest struct {
	Username          *string `json:"username" binding:"omitempty,min=1,max=120"`
	Email             *string `json:"email" binding:"omitempty,email"`
	DisplayName       *string `json:"display_name"`
	Bio               *string `json:"bio"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}

// DeleteAccountRequest requires password confirmation before the account
// and everything it owns is removed.
type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}
