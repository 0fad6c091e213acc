package models

import (
	"time"
)

// Verification channels
const (
	ChannelSMS   = "sms"
	ChannelEmail = "email"
)

// Challenge is the ephemeral record of an outstanding one-time code.
// Only the bcrypt hash of the code is stored; the record is deleted on
// successful confirmation and superseded by any newer request for the
// same destination.
type Challenge struct {
	Ref          string    `json:"ref"`
	Destination  string    `json:"destination"`
	Channel      string    `json:"channel"`
	CodeHash     string    `json:"code_hash"`
	AttemptsLeft int       `json:"attempts_left"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// RequestCodeRequest asks for a one-time code to be dispatched
type RequestCodeRequest struct {
	Destination  string `json:"destination" validate:"required"`
	CaptchaToken string `json:"captcha_token" validate:"required"`
}

// RequestCodeResponse returns the handle for the outstanding challenge
type RequestCodeResponse struct {
	ChallengeRef string `json:"challenge_ref"`
	ExpiresAt    int64  `json:"expires_at"`
}

// ConfirmCodeRequest confirms a previously requested code
type ConfirmCodeRequest struct {
	ChallengeRef string `json:"challenge_ref" validate:"required"`
	Code         string `json:"code" validate:"required"`
}

// AssertionResponse carries the signed identity assertion issued on a
// successful confirmation
type AssertionResponse struct {
	Assertion string `json:"assertion"`
	ExpiresAt int64  `json:"expires_at"`
}

// CodeDispatchEvent is published for the out-of-band delivery worker
type CodeDispatchEvent struct {
	Destination string    `json:"destination"`
	Channel     string    `json:"channel"`
	Code        string    `json:"code"`
	ExpiresAt   time.Time `json:"expires_at"`
}
