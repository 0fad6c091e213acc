package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Profile represents one application user record per verified identity.
// SubjectID is immutable and unique; CreatedAt is set once on first
// sighting and LastLoginAt is refreshed on every successful bootstrap.
type Profile struct {
	SubjectID   uuid.UUID `json:"subject_id" db:"subject_id"`
	Phone       string    `json:"phone,omitempty" db:"phone"`
	Email       string    `json:"email,omitempty" db:"email"`
	Role        string    `json:"role" db:"role"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	LastLoginAt time.Time `json:"last_login_at" db:"last_login_at"`
}

// BootstrapResult is returned by the bootstrap endpoint
type BootstrapResult struct {
	Profile      *Profile `json:"profile"`
	IsNewUser    bool     `json:"is_new_user"`
	SessionToken string   `json:"session_token"`
	ExpiresAt    int64    `json:"expires_at"`
}

// BootstrapRequest is the optional bootstrap body; a guest session id
// triggers a best-effort cart merge after login
type BootstrapRequest struct {
	GuestSessionID string `json:"guest_session_id,omitempty"`
}

// RoleChangeRequest is the administrative claims-assignment payload
type RoleChangeRequest struct {
	SubjectID string `json:"subject_id" validate:"required"`
	Role      string `json:"role" validate:"required"`
}
