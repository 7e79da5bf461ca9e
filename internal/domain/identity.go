package domain

import "strings"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Identity is the authenticated caller of a request. It is rebuilt from the
// users table on every request, so a role change applies to the next call.
type Identity struct {
	UserID uint
	Email  string
	Role   string
}

// IsAdministrator is the single authorization predicate of the service.
func IsAdministrator(id Identity) bool {
	return id.UserID != 0 && strings.EqualFold(strings.TrimSpace(id.Role), RoleAdmin)
}

// NormalizeRole maps stored role values onto the known roles; unknown values become RoleUser.
func NormalizeRole(role string) string {
	if strings.EqualFold(strings.TrimSpace(role), RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}
