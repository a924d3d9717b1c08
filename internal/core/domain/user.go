package domain

import "time"

// UserRole gates approval actions; managers and admins may approve or reject.
type UserRole string

const (
	RoleClerk   UserRole = "CLERK"
	RoleManager UserRole = "MANAGER"
	RoleAdmin   UserRole = "ADMIN"
)

// CanApprove reports whether the role may act on pending vouchers.
func (r UserRole) CanApprove() bool {
	return r == RoleManager || r == RoleAdmin
}

// User represents an application user.
type User struct {
	UserID                 string     `json:"userID"`
	Username               string     `json:"username"`
	Name                   string     `json:"name"`
	Email                  string     `json:"email"`
	Role                   UserRole   `json:"role"`
	PasswordHash           string     `json:"-"`
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// GoogleUserInfo is the subset of the Google userinfo payload used for SSO sign-in.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
