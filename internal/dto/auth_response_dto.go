package dto

import "time"

// LoginResponse carries the issued access token; the refresh token travels as
// an HTTP-only cookie.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}
