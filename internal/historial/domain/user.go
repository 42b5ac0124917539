package domain

import "strings"

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// SystemUser is an entry of the staff directory managed by administrators.
// It is bookkeeping only: logging in never consults it.
type SystemUser struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Role        Role         `json:"role"`
	Permissions []Permission `json:"permissions"`
	Status      UserStatus   `json:"status"`
	CreatedAt   string       `json:"createdAt"`
}

type SystemUserInput struct {
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Role        string       `json:"role"`
	Permissions []Permission `json:"permissions"`
	Status      UserStatus   `json:"status"`
}

func (in SystemUserInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return invalid("Complete todos los campos requeridos")
	}
	if in.Role != "" {
		if _, ok := ParseRole(in.Role); !ok {
			return invalid("rol desconocido: " + in.Role)
		}
	}
	switch in.Status {
	case "", UserActive, UserInactive:
	default:
		return invalid("estado de usuario desconocido: " + string(in.Status))
	}
	return nil
}

// Apply copies in onto u. Omitted fields keep u's current values; on a new
// entry the role defaults to patient, the permissions to the role's table
// entry and the status to active. Changing the role without listing
// permissions resets them to the new role's entry.
func (in SystemUserInput) Apply(u *SystemUser) {
	role, ok := ParseRole(in.Role)
	if !ok {
		role = u.Role
		if !role.Valid() {
			role = RolePatient
		}
	}
	roleChanged := role != u.Role

	u.Name = strings.TrimSpace(in.Name)
	u.Email = strings.ToLower(strings.TrimSpace(in.Email))
	u.Role = role
	switch {
	case in.Permissions != nil:
		u.Permissions = in.Permissions
	case u.Permissions == nil || roleChanged:
		u.Permissions = PermissionsFor(role)
	}
	if in.Status != "" {
		u.Status = in.Status
	} else if u.Status == "" {
		u.Status = UserActive
	}
}
