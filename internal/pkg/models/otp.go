package models

import (
	"time"
)

// OTP represents a one-time passcode issued to a guild member
type OTP struct {
	ID        int64     `json:"id" db:"id"`
	DiscordID string    `json:"discord_id" db:"discord_id"`
	Character string    `json:"character" db:"character"`
	Code      string    `json:"otp" db:"otp"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}

// IsExpired reports whether the code is no longer valid at t
func (o *OTP) IsExpired(t time.Time) bool {
	return !t.Before(o.ExpiresAt)
}

// OTPRequest represents a request to send a passcode to a character's owner
type OTPRequest struct {
	Character string `json:"character" validate:"required"`
}

// MissingVerifyFieldsMessage is the single client message for a verify
// request lacking the character, the passcode, or both
const MissingVerifyFieldsMessage = "Missing character or OTP"

// VerifyRequest represents a request to verify OTP
type VerifyRequest struct {
	Character string `json:"character" validate:"required"`
	OTP       string `json:"otp" validate:"required"`
}

// StatusResponse is the acknowledgement body used by mutating endpoints
type StatusResponse struct {
	Status string `json:"status"`
}

// TokenResponse carries the session token after a successful verification
type TokenResponse struct {
	Token string `json:"token"`
}
