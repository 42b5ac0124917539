package domain

import (
	"slices"
	"strings"
)

// Session is the authenticated identity of the process. Permissions are a
// snapshot of PermissionsFor(Role) taken when the session was created and are
// never recomputed afterwards.
type Session struct {
	ID          string       `json:"id"`
	Email       string       `json:"email"`
	Name        string       `json:"name"`
	Role        Role         `json:"role"`
	Permissions []Permission `json:"permissions"`
}

// Has reports whether the session carries perm.
func (s Session) Has(perm Permission) bool {
	return slices.Contains(s.Permissions, perm)
}

// NameFromEmail derives a display name from the local part of an email.
func NameFromEmail(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	return local
}
