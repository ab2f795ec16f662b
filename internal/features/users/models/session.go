package users_models

import (
	users_enums "allocboard/internal/features/users/enums"
)

// Session is the transient identity carried by a signed token for the
// lifetime of a login. The role inside it is resolved once at callback
// time; a role change takes effect at the next login.
type Session struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Email string           `json:"email"`
	Photo string           `json:"photo"`
	Role  users_enums.Role `json:"role"`
}

func (s *Session) HasAnyRole(roles ...users_enums.Role) bool {
	for _, role := range roles {
		if s.Role == role {
			return true
		}
	}

	return false
}
