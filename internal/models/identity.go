package models

import "time"

// Roles recognised by the API.
const (
	RoleAppraiser = "appraiser"
	RoleAdmin     = "admin"
)

// Identity is the authenticated caller resolved from a session token.
type Identity struct {
	ExpiresAt time.Time `json:"expiresAt"`
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
}

// HasRole reports whether the identity satisfies role. Admins satisfy every role.
func (i *Identity) HasRole(role string) bool {
	if i == nil {
		return false
	}
	return i.Role == role || i.Role == RoleAdmin
}
